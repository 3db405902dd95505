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
	"fillmore-labs.com/mute/internal/astutil"
	"fillmore-labs.com/mute/internal/config"
	"fillmore-labs.com/mute/internal/report"
	"fillmore-labs.com/mute/internal/scope"
	"fillmore-labs.com/mute/internal/syntax"
)

type walker struct {
	// Stage is the embedded per-unit configuration and memory.
	*Stage

	currentFile astutil.CurrentFile
	diagnostics report.Diagnostics
	stats       Stats
}

// walk visits n and its subtree. chain is the reactive scope chain of the enclosing functions,
// nil outside of any function.
func (w *walker) walk(n *syntax.Node, chain *scope.Chain) {
	switch {
	// keep-sorted start newline_separated=yes
	case n.Kind == syntax.KindExpressionStatement:
		if chain != nil {
			w.rewriteAssignment(n, chain)
		}

	case n.Kind == syntax.KindIdentifier:
		if chain != nil {
			w.rewriteIdentifier(n, chain)
		}

		return // leaf

	case n.Kind == syntax.KindLexicalDeclaration, n.Kind == syntax.KindVariableDeclaration:
		if chain != nil {
			w.rewriteDeclaration(n, chain)
		}

	case n.Kind == syntax.KindShorthandProperty:
		if chain != nil {
			w.checkShorthand(n, chain)
		}

		return // leaf

	case n.Kind == syntax.KindUpdateExpression:
		if chain != nil {
			w.checkUpdate(n, chain)
		}

	case scope.IsFunction(n):
		if !w.behavior.Enabled(config.IgnoreDirectives) && w.currentFile.NoLintFunction(n) {
			return
		}

		w.stats.Functions++
		chain = chain.Push(w.scanner.Scan(n))
	// keep-sorted end
	}

	w.walkChildren(n, chain)
}

// walkChildren visits the children of n. A slot whose occupant is replaced while
// being visited is visited again with the new occupant.
func (w *walker) walkChildren(n *syntax.Node, chain *scope.Chain) {
	for i := 0; i < len(n.Children); i++ {
		child := n.Children[i]
		w.walk(child, chain)

		for i < len(n.Children) && n.Children[i] != child {
			child = n.Children[i]
			w.walk(child, chain)
		}
	}
}

func (w *walker) replace(old, repl *syntax.Node) bool {
	if !syntax.Replace(old, repl) {
		astutil.InternalError(&w.diagnostics, w.currentFile, old, "can't replace detached %s", old.Kind)

		return false
	}

	return true
}
