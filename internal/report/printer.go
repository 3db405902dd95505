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

package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
)

// Printer writes diagnostics in the conventional file:line:col format.
type Printer struct {
	W     io.Writer
	Color bool
}

// NewPrinter creates a [Printer] that colors its output when f is a terminal.
func NewPrinter(f *os.File) Printer {
	fd := f.Fd()

	return Printer{W: f, Color: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
}

// Print writes all diagnostics, one per line.
func (p Printer) Print(diags Diagnostics) error {
	for _, d := range diags {
		if err := p.print(d); err != nil {
			return err
		}
	}

	return nil
}

func (p Printer) print(d Diagnostic) error {
	if !p.Color {
		_, err := fmt.Fprintf(p.W, "%s: %s: %s\n", d.Pos, d.Severity, d.Message)

		return err
	}

	color := colorRed
	if d.Severity == Warning {
		color = colorYellow
	}

	_, err := fmt.Fprintf(p.W, "%s%s%s: %s%s%s: %s\n",
		colorBold, d.Pos, colorReset, color, d.Severity, colorReset, d.Message)

	return err
}
