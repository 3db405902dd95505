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
	"strings"

	"fillmore-labs.com/mute/internal/config"
	"fillmore-labs.com/mute/internal/report"
	"fillmore-labs.com/mute/internal/scope"
	"fillmore-labs.com/mute/internal/syntax"
)

// ErrUnsupportedOperator classifies compound assignments to reactive variables that can't be folded.
var ErrUnsupportedOperator = errors.New("unsupported assignment operator")

// foldable lists the compound assignment operators with their binary operator.
var foldable = map[string]string{
	"+=": "+",
	"-=": "-",
	"*=": "*",
	"/=": "/",
}

// rewriteAssignment turns a statement-level assignment to a reactive identifier into an updater call.
func (w *walker) rewriteAssignment(stmt *syntax.Node, chain *scope.Chain) {
	assign := firstNamed(stmt)
	if assign == nil {
		return
	}

	switch assign.Kind {
	case syntax.KindAssignmentExpression, syntax.KindAugmentedAssignmentExpression:

	default:
		return // ++, -- and other expressions are not handled
	}

	left, right := assign.Child(syntax.FieldLeft), assign.Child(syntax.FieldRight)
	if left == nil || right == nil || left.Kind != syntax.KindIdentifier {
		return
	}

	name := left.Text()
	if !w.memory.Reactive(chain, name) {
		return
	}

	span := assign.Span
	updater := w.memory.Updater(name, left.Span)

	var call *syntax.Node

	switch op := operator(assign); op {
	case "=":
		call = syntax.NewCall(updater, span, right)

	default:
		bin, ok := foldable[op]
		if ok {
			call = syntax.NewCall(updater, span, syntax.NewBinary(bin, w.memory.Accessor(name, left.Span), right, right.Span))

			break
		}

		if !w.unsupported(assign, name, op) {
			return
		}

		call = syntax.NewCall(updater, span)
	}

	if !w.replace(assign, call) {
		return
	}

	w.memory.Add(call)
	w.stats.Assignments++
}

// unsupported reports an operator that can't be folded and
// returns whether the assignment should still be replaced by an empty updater call.
func (w *walker) unsupported(assign *syntax.Node, name, op string) bool {
	lenient := w.behavior.Enabled(config.Lenient)

	severity := report.Error
	if lenient {
		severity = report.Warning
	}

	w.diagnostics.Report(report.Diagnostic{
		Pos:      w.currentFile.Position(assign.Span.Start),
		Severity: severity,
		Message:  fmt.Sprintf("%v %q on reactive variable %s", ErrUnsupportedOperator, op, name),
		Err:      ErrUnsupportedOperator,
	})

	return lenient
}

// operator returns the assignment operator of assign.
func operator(assign *syntax.Node) string {
	if op := assign.Child(syntax.FieldOperator); op != nil {
		return op.Text()
	}

	for _, c := range assign.Children {
		if !c.Named && strings.HasSuffix(c.Text(), "=") {
			return c.Text()
		}
	}

	return ""
}

func firstNamed(n *syntax.Node) *syntax.Node {
	for c := range n.NamedChildren() {
		if c.Kind == syntax.KindComment {
			continue
		}

		return c
	}

	return nil
}
