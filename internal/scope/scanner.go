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

package scope

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"fillmore-labs.com/mute/internal/astutil"
	"fillmore-labs.com/mute/internal/syntax"
)

// IsFunction reports whether n opens a function scope the rewriter visits.
//
// Method definitions are not included, class components have no hooks.
func IsFunction(n *syntax.Node) bool {
	if !n.Named {
		return false
	}

	switch n.Kind {
	case syntax.KindFunctionDeclaration,
		syntax.KindGeneratorFunctionDeclaration,
		syntax.KindFunctionExpression,
		syntax.KindFunction,
		syntax.KindGeneratorFunction,
		syntax.KindArrowFunction:
		return true

	default:
		return false
	}
}

// isScopeBoundary reports whether n starts a scope that hides its var declarations.
func isScopeBoundary(n *syntax.Node) bool {
	if !n.Named {
		return false
	}

	switch n.Kind {
	case syntax.KindClass, syntax.KindClassDeclaration, "method_definition", "class_static_block":
		return true

	default:
		return IsFunction(n)
	}
}

// Scanner enumerates the reactive bindings of a function's own scope.
type Scanner struct {
	// Sigil is the reactive name prefix.
	Sigil string

	// Exclude is a name never considered reactive, the escape hatch alias.
	Exclude string
}

// Scan returns the sigil-named bindings of fn in declaration order, without duplicates.
// Nested functions are not scanned.
func (s Scanner) Scan(fn *syntax.Node) []string {
	ids := slices.SortedStableFunc(Bindings(fn), func(a, b *syntax.Node) int {
		return cmp.Compare(a.Span.Start, b.Span.Start)
	})

	var names []string

	for _, id := range ids {
		name := id.Text()
		if !strings.HasPrefix(name, s.Sigil) || name == s.Exclude || slices.Contains(names, name) {
			continue
		}

		names = append(names, name)
	}

	return names
}

// Bindings iterates over the identifiers bound in the function scope of fn.
func Bindings(fn *syntax.Node) iter.Seq[*syntax.Node] {
	return func(yield func(*syntax.Node) bool) {
		b := binder{yield: yield}
		b.function(fn)
	}
}

type binder struct {
	yield func(*syntax.Node) bool
	done  bool
}

func (b *binder) emit(id *syntax.Node) {
	if b.done || id == nil {
		return
	}

	if !b.yield(id) {
		b.done = true
	}
}

func (b *binder) pattern(p *syntax.Node) {
	if p == nil {
		return
	}

	for id := range astutil.AllPatternNames(p) {
		b.emit(id)
	}
}

func (b *binder) function(fn *syntax.Node) {
	switch fn.Kind {
	case syntax.KindFunctionExpression, syntax.KindFunction, syntax.KindGeneratorFunction:
		// The name of a function expression is bound inside the function
		b.emit(fn.Child(syntax.FieldName))
	}

	b.pattern(fn.Child(syntax.FieldParameters))
	b.pattern(fn.Child(syntax.FieldParameter))

	body := fn.Child(syntax.FieldBody)
	if body == nil || body.Kind != syntax.KindStatementBlock {
		return // expression body
	}

	for stmt := range body.NamedChildren() {
		switch stmt.Kind {
		case syntax.KindLexicalDeclaration:
			b.declaration(stmt)

		case syntax.KindFunctionDeclaration, syntax.KindGeneratorFunctionDeclaration, syntax.KindClassDeclaration:
			b.emit(stmt.Child(syntax.FieldName))
		}
	}

	b.hoisted(body)
}

func (b *binder) declaration(decl *syntax.Node) {
	for id := range astutil.AllDeclaredNames(decl) {
		b.emit(id)
	}
}

// hoisted emits the var declarations of n, not crossing scope boundaries.
func (b *binder) hoisted(n *syntax.Node) {
	for _, c := range n.Children {
		if b.done {
			return
		}

		switch {
		case c.Kind == syntax.KindVariableDeclaration:
			b.declaration(c)

		case isScopeBoundary(c):
			continue
		}

		b.hoisted(c)
	}
}
