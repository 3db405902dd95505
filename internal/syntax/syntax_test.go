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

package syntax_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/mute/internal/syntax"
)

func TestParsePrintLossless(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"comment_only", "// nothing here\n"},
		{"declaration", "let $a = 1;\n"},
		{"import", "import { $mut as m } from 'mute'\nimport * as React from \"react\";\n"},
		{"jsx", "function C() {\n  return <div a={$b}  c=\"d\">{ $b.name }</div>;\n}\n"},
		{"arrow", "const f = ($x, { y = 2, ...rest }) => $x += y\n"},
		{"leading_space", "\n\n   x = 1 /* trailing */\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := Parse(t.Context(), []byte(tt.src))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if got := string(tree.Bytes()); got != tt.src {
				t.Errorf("Got %q, want %q", got, tt.src)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()

	_, err := Parse(t.Context(), []byte("function C() {\n  let = ;\n"))
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("Got error %v, want %v", err, ErrSyntax)
	}
}

func TestFields(t *testing.T) {
	t.Parallel()

	tree, err := Parse(t.Context(), []byte("let $a = f(1);"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var declarator *Node
	for n := range tree.Root.Preorder() {
		if n.Kind == KindVariableDeclarator {
			declarator = n

			break
		}
	}

	if declarator == nil {
		t.Fatal("No declarator found")
	}

	if name := declarator.Child(FieldName); name == nil || name.Text() != "$a" {
		t.Errorf("Got name %v, want $a", name)
	}

	value := declarator.Child(FieldValue)
	if value == nil || value.Kind != KindCallExpression {
		t.Fatalf("Got value %v, want call expression", value)
	}

	if fn := value.Child(FieldFunction); fn == nil || fn.Text() != "f" {
		t.Errorf("Got function %v, want f", fn)
	}

	if kw := declarator.Parent.Child(FieldKind); kw == nil || kw.Text() != "let" {
		t.Errorf("Got keyword %v, want let", kw)
	}
}

func TestBuilders(t *testing.T) {
	t.Parallel()

	var span Span

	tests := [...]struct {
		name string
		node *Node
		want string
	}{
		{
			"subscript",
			NewSubscript(NewIdentifier("$a", span), NewNumber("0", span), span),
			"$a[0]",
		},
		{
			"member",
			NewMember(NewIdentifier("React", span), NewPropertyIdentifier("useState", span), span),
			"React.useState",
		},
		{
			"call_none",
			NewCall(NewIdentifier("f", span), span),
			"f()",
		},
		{
			"call_two",
			NewCall(NewIdentifier("f", span), span, NewNumber("1", span), NewIdentifier("x", span)),
			"f(1, x)",
		},
		{
			"binary",
			NewBinary("+", NewIdentifier("a", span), NewNumber("1", span), span),
			"a + 1",
		},
		{
			"declarator",
			NewDeclarator(NewIdentifier("$a", span), NewNumber("1", span), span),
			"$a = 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.node.Text(); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReplaceRemove(t *testing.T) {
	t.Parallel()

	tree, err := Parse(t.Context(), []byte("import x from 'y';\nfoo(a, b);\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var a *Node
	for n := range tree.Root.Preorder() {
		if n.Kind == KindIdentifier && n.Text() == "a" {
			a = n

			break
		}
	}

	if a == nil {
		t.Fatal("Identifier a not found")
	}

	repl := NewSubscript(NewIdentifier("a", a.Span), NewNumber("0", a.Span), a.Span)
	if !Replace(a, repl) {
		t.Fatal("Replace failed")
	}

	if a.Parent != nil || repl.Parent == nil {
		t.Error("Parent links not updated")
	}

	if imp := tree.Root.ChildOfKind(KindImportStatement); imp == nil || !Remove(imp) {
		t.Fatal("Remove failed")
	}

	const want = "foo(a[0], b);\n"
	if got := string(tree.Bytes()); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if Replace(a, repl) {
		t.Error("Replace of a detached node succeeded")
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	span := Span{Start: 3, End: 5}
	orig := NewSubscript(NewIdentifier("$a", Span{}), NewNumber("1", Span{}), Span{})

	c := orig.Clone()
	c.Stamp(span)

	if c.Text() != orig.Text() {
		t.Errorf("Got %q, want %q", c.Text(), orig.Text())
	}

	if c.Children[0] == orig.Children[0] || c.Children[0].Parent != c {
		t.Error("Clone shares children")
	}

	if c.Children[0].Span != span || orig.Children[0].Span == span {
		t.Error("Stamp did not apply to the clone only")
	}
}
