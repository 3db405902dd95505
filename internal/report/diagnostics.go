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
	"errors"
	"fmt"
	"strconv"
)

// Severity grades a [Diagnostic].
type Severity uint8

const (
	// Error diagnostics fail the compile unit.
	Error Severity = iota

	// Warning diagnostics are reported, but the output is still produced.
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"

	case Warning:
		return "warning"

	default:
		return "Severity(" + strconv.Itoa(int(s)) + ")"
	}
}

// Position is a location in a compile unit. Line and Column are 1-based.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	name := p.Filename
	if name == "" {
		name = "-"
	}

	if p.Line == 0 {
		return name
	}

	return name + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Diagnostic is a problem found while rewriting a compile unit.
type Diagnostic struct {
	Pos      Position
	Severity Severity
	Message  string
	Err      error // sentinel classifying the problem, may be nil
}

// Error implements [error].
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Severity, d.Message)
}

// Unwrap returns the classifying error.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Diagnostics is the list of problems of one compile unit.
type Diagnostics []Diagnostic

// Report appends a diagnostic.
func (d *Diagnostics) Report(diag Diagnostic) {
	*d = append(*d, diag)
}

// HasErrors reports whether there is at least one error diagnostic.
func (d Diagnostics) HasErrors() bool {
	for _, diag := range d {
		if diag.Severity == Error {
			return true
		}
	}

	return false
}

// Err joins the error diagnostics, or returns nil if there are none.
func (d Diagnostics) Err() error {
	var errs []error

	for _, diag := range d {
		if diag.Severity == Error {
			errs = append(errs, diag)
		}
	}

	return errors.Join(errs...)
}
