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

package astutil_test

import (
	"reflect"
	"slices"
	"testing"

	. "fillmore-labs.com/mute/internal/astutil"
	"fillmore-labs.com/mute/internal/report"
	"fillmore-labs.com/mute/internal/syntax"
	"fillmore-labs.com/mute/internal/testsource"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		comment string
		want    bool
	}{
		{"//nolint:mute", true},
		{"// nolint:all", true},
		{"//nolint:gosec,Mute", true},
		{"//nolint:scopeguard", false},
		{"// not a directive", false},
		{"/* nolint:mute */", false},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			t.Parallel()

			if got := CommentHasNoLint(tt.comment); got != tt.want {
				t.Errorf("Got %t, want %t", got, tt.want)
			}
		})
	}
}

func TestGenerated(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want bool
	}{
		{"go_style", "// Code generated by bundler. DO NOT EDIT.\nlet a = 1;\n", true},
		{"tag", "/** @generated */\nlet a = 1;\n", true},
		{"late", "let a = 1;\n// Code generated by bundler. DO NOT EDIT.\n", false},
		{"plain", "// hand written\nlet a = 1;\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, cf := testsource.Parse(t, tt.src)
			if got := cf.Generated(); got != tt.want {
				t.Errorf("Got %t, want %t", got, tt.want)
			}
		})
	}
}

func TestNoLint(t *testing.T) {
	t.Parallel()

	const src = `//nolint:mute
function A() {}

//nolint:mute
export const B = () => {}

function C() {}
`

	tree, cf := testsource.Parse(t, src)

	if !cf.NoLintFile() {
		t.Error("Expected file-level directive")
	}

	got := make(map[string]bool)

	for _, fn := range testsource.FindAll(tree.Root, syntax.KindFunctionDeclaration, "") {
		got[fn.Child(syntax.FieldName).Text()] = cf.NoLintFunction(fn)
	}

	arrow := testsource.Find(tree.Root, syntax.KindArrowFunction, "")
	got["B"] = cf.NoLintFunction(arrow)

	want := map[string]bool{"A": true, "B": true, "C": false}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}

func TestPosition(t *testing.T) {
	t.Parallel()

	const src = "let a;\nlet b;\n"

	_, cf := testsource.Parse(t, src)

	want := report.Position{Filename: "test.jsx", Offset: 11, Line: 2, Column: 5}
	if got := cf.Position(11); got != want {
		t.Errorf("Got %v, want %v", got, want)
	}
}

func TestAllDeclaredNames(t *testing.T) {
	t.Parallel()

	tree, _ := testsource.Parse(t, "const {a, b: [c, ...d], e = 1, ...f} = x, g = 2;")

	decl := testsource.Find(tree.Root, syntax.KindLexicalDeclaration, "")

	var got []string
	for id := range AllDeclaredNames(decl) {
		got = append(got, id.Text())
	}

	if want := []string{"a", "c", "d", "e", "f", "g"}; !slices.Equal(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}
