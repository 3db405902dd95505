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
	"errors"
	"fmt"

	"fillmore-labs.com/mute/internal/report"
	"fillmore-labs.com/mute/internal/scope"
	"fillmore-labs.com/mute/internal/syntax"
)

var (
	// ErrUpdateExpression classifies increments and decrements of reactive variables.
	// The operand is rewritten to its accessor, so the state is not updated.
	ErrUpdateExpression = errors.New("update expression does not update state")

	// ErrShorthandProperty classifies shorthand object properties naming a reactive variable.
	// The property carries the state tuple instead of the value.
	ErrShorthandProperty = errors.New("shorthand property holds the state tuple")
)

// checkUpdate warns about `$a++` and `--$a` on reactive variables.
func (w *walker) checkUpdate(update *syntax.Node, chain *scope.Chain) {
	for arg := range update.NamedChildren() {
		if arg.Kind == syntax.KindIdentifier && w.memory.Reactive(chain, arg.Text()) {
			w.warn(update, ErrUpdateExpression, arg.Text())
		}

		return // single operand
	}
}

// checkShorthand warns about `{$a}` on reactive variables.
func (w *walker) checkShorthand(prop *syntax.Node, chain *scope.Chain) {
	if w.memory.Reactive(chain, prop.Text()) {
		w.warn(prop, ErrShorthandProperty, prop.Text())
	}
}

func (w *walker) warn(n *syntax.Node, err error, name string) {
	w.diagnostics.Report(report.Diagnostic{
		Pos:      w.currentFile.Position(n.Span.Start),
		Severity: report.Warning,
		Message:  fmt.Sprintf("%v on reactive variable %s", err, name),
		Err:      err,
	})
}
