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

package rewrite

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/mute/internal/astutil"
	"fillmore-labs.com/mute/internal/config"
	"fillmore-labs.com/mute/internal/marker"
	"fillmore-labs.com/mute/internal/report"
	"fillmore-labs.com/mute/internal/scope"
	"fillmore-labs.com/mute/internal/site"
	"fillmore-labs.com/mute/internal/syntax"
)

// Stage rewrites the function scopes of one compile unit.
type Stage struct {
	conventions config.Conventions
	behavior    config.Behavior
	marker      marker.State
	memory      *site.Memory
	scanner     scope.Scanner
}

// New creates a rewrite stage for a compile unit with the resolved marker state.
func New(conventions config.Conventions, behavior config.Behavior, state marker.State, memory *site.Memory) *Stage {
	var exclude string
	if state.Active {
		exclude = state.Alias
	}

	return &Stage{
		conventions: conventions,
		behavior:    behavior,
		marker:      state,
		memory:      memory,
		scanner:     scope.Scanner{Sigil: conventions.Sigil, Exclude: exclude},
	}
}

// Rewrite walks root once, rewriting reactive declarations, assignments and reads in every function.
func (s *Stage) Rewrite(ctx context.Context, currentFile astutil.CurrentFile, root *syntax.Node) (Stats, report.Diagnostics) {
	defer trace.StartRegion(ctx, "Rewrite").End()

	w := walker{
		Stage:       s,
		currentFile: currentFile,
	}

	w.walk(root, nil)

	return w.stats, w.diagnostics
}
