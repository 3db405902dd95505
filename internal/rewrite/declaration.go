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
	"slices"

	"fillmore-labs.com/mute/internal/scope"
	"fillmore-labs.com/mute/internal/syntax"
)

const constKeyword = "const"

// rewriteDeclaration turns the reactive declarators of a let, const or var list into state hooks.
func (w *walker) rewriteDeclaration(decl *syntax.Node, chain *scope.Chain) {
	for _, d := range slices.Clone(decl.Children) {
		if d.Kind != syntax.KindVariableDeclarator || w.memory.Contains(d) {
			continue
		}

		name := d.Child(syntax.FieldName)
		if name == nil || name.Kind != syntax.KindIdentifier || !w.memory.Reactive(chain, name.Text()) {
			continue // destructured names receive hook tuples from their source
		}

		w.forceConst(decl)

		if w.forward(d) {
			continue
		}

		w.wrap(d, name)
	}
}

// forceConst replaces the declaration keyword, since the hook tuple is never reassigned.
func (w *walker) forceConst(decl *syntax.Node) {
	kw := decl.Child(syntax.FieldKind)
	if kw == nil {
		for _, c := range decl.Children {
			if !c.Named && c.IsLeaf() {
				kw = c

				break
			}
		}
	}

	if kw == nil || kw.Text() == constKeyword {
		return
	}

	kw.SetText(constKeyword)
	kw.Kind = constKeyword
	decl.Kind = syntax.KindLexicalDeclaration
}

// forward strips an escape hatch wrapper from the initializer of d, keeping the raw hook handle.
func (w *walker) forward(d *syntax.Node) bool {
	value := d.Child(syntax.FieldValue)
	if !w.marker.IsEscapeCall(value) {
		return false
	}

	arg := firstArgument(value)
	if arg == nil {
		return false
	}

	if !w.replace(value, arg) {
		return false
	}

	w.memory.Add(arg)
	w.memory.Add(d)
	w.stats.Forwarded++

	return true
}

// wrap replaces d by name = Namespace.Hook(init).
func (w *walker) wrap(d, name *syntax.Node) {
	span := d.Span

	hook := syntax.NewMember(
		syntax.NewIdentifier(w.conventions.HookNamespace, span),
		syntax.NewPropertyIdentifier(w.conventions.HookName, span),
		span,
	)

	var call *syntax.Node
	if value := d.Child(syntax.FieldValue); value != nil {
		call = syntax.NewCall(hook, span, value)
	} else {
		call = syntax.NewCall(hook, span)
	}

	repl := syntax.NewDeclarator(name, call, span)

	if !w.replace(d, repl) {
		return
	}

	w.memory.Add(repl)
	w.stats.Declarations++
}

// firstArgument returns the first argument of call, or nil if there are none.
func firstArgument(call *syntax.Node) *syntax.Node {
	args := call.Child(syntax.FieldArguments)
	if args == nil || args.Kind != syntax.KindArguments {
		return nil
	}

	for arg := range args.NamedChildren() {
		if arg.Kind == syntax.KindComment {
			continue
		}

		return arg
	}

	return nil
}
