// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"fillmore-labs.com/mute/transform"
)

const stdinName = "<stdin>"

func renderStats(w io.Writer, outcomes []outcome) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"File",
		"Size",
		"Functions",
		"Hooks",
		"Forwarded",
		"Updaters",
		"Reads",
		"Unwrapped",
		"Status",
	})

	var (
		total transform.Stats
		size  uint64
	)

	for _, o := range outcomes {
		total.Add(o.stats)
		size += uint64(o.size)

		name := o.name
		if name == "" {
			name = stdinName
		}

		table.Append(statsRow(name, humanize.Bytes(uint64(o.size)), o.stats, o.status.String()))
	}

	table.SetFooter(statsRow("Total", humanize.Bytes(size), total, strconv.Itoa(len(outcomes))))
	table.Render()
}

func statsRow(name, size string, s transform.Stats, status string) []string {
	return []string{
		name,
		size,
		humanize.Comma(int64(s.Functions)),
		humanize.Comma(int64(s.Declarations)),
		humanize.Comma(int64(s.Forwarded)),
		humanize.Comma(int64(s.Assignments)),
		humanize.Comma(int64(s.Reads)),
		humanize.Comma(int64(s.Unwrapped)),
		status,
	}
}
