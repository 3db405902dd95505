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

package rewrite_test

import (
	"errors"
	"testing"

	"fillmore-labs.com/mute/internal/config"
	"fillmore-labs.com/mute/internal/marker"
	"fillmore-labs.com/mute/internal/report"
	. "fillmore-labs.com/mute/internal/rewrite"
	"fillmore-labs.com/mute/internal/site"
	"fillmore-labs.com/mute/internal/syntax"
	"fillmore-labs.com/mute/internal/testsource"
)

const escapeImport = "import { $mut } from \"mute\";\n"

func newStage(t *testing.T, tree *syntax.Tree, behavior config.Behavior) *Stage {
	t.Helper()

	conventions := config.DefaultConventions()
	r := marker.Resolver{Package: conventions.MarkerPackage, Export: conventions.EscapeHatch}
	state, _ := r.Resolve(t.Context(), tree.Root)

	return New(conventions, behavior, state, site.New())
}

func rewrite(t *testing.T, src string, behavior config.Behavior) (string, Stats, report.Diagnostics) {
	t.Helper()

	tree, cf := testsource.Parse(t, src)
	stage := newStage(t, tree, behavior)

	stats, diags := stage.Rewrite(t.Context(), cf, tree.Root)

	return string(tree.Bytes()), stats, diags
}

func TestRewrite(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want string
	}{
		{
			name: "declaration",
			src:  `function C() { let $a = 1; }`,
			want: `function C() { const $a = React.useState(1); }`,
		},
		{
			name: "declaration_without_init",
			src:  `function C() { let $a; }`,
			want: `function C() { const $a = React.useState(); }`,
		},
		{
			name: "var_declaration",
			src:  `function C() { var $a = {name: "reaper"}; }`,
			want: `function C() { const $a = React.useState({name: "reaper"}); }`,
		},
		{
			name: "declaration_reads_init",
			src:  `function C() { let $a = 1; let $b = $a * 2; }`,
			want: `function C() { const $a = React.useState(1); const $b = React.useState($a[0] * 2); }`,
		},
		{
			name: "escape_declaration",
			src:  escapeImport + `function C() { let $b = $mut(React.useState(1)); }`,
			want: `function C() { const $b = React.useState(1); }`,
		},
		{
			name: "escape_forwards_reactive",
			src:  escapeImport + `function C({$count}) { const $x = $mut($count); return $x; }`,
			want: `function C({$count}) { const $x = $count; return $x[0]; }`,
		},
		{
			name: "escape_renamed",
			src:  "import { $mut as m } from 'mute';\n" + `function C() { let $x = m(x); let $m = 1; }`,
			want: `function C() { const $x = x; const $m = React.useState(1); }`,
		},
		{
			name: "escape_inactive",
			src:  `function C() { let $x = $mut(x); }`,
			want: `function C() { const $x = React.useState($mut(x)); }`,
		},
		{
			name: "non_reactive",
			src:  `function C() { let a = 1; a = 2; return a; }`,
			want: `function C() { let a = 1; a = 2; return a; }`,
		},
		{
			name: "assignment",
			src:  `function C() { let $a = 0; $a = 5; }`,
			want: `function C() { const $a = React.useState(0); $a[1](5); }`,
		},
		{
			name: "assignment_reads_rhs",
			src:  `function C() { let $a = 0; $a = $a + 1; }`,
			want: `function C() { const $a = React.useState(0); $a[1]($a[0] + 1); }`,
		},
		{
			name: "compound_add",
			src:  `function C() { let $a = 0; $a += 1; }`,
			want: `function C() { const $a = React.useState(0); $a[1]($a[0] + 1); }`,
		},
		{
			name: "compound_sub",
			src:  `function C() { let $a = 0; $a -= x; }`,
			want: `function C() { const $a = React.useState(0); $a[1]($a[0] - x); }`,
		},
		{
			name: "compound_mul",
			src:  `function C() { let $a = 0; $a *= 2; }`,
			want: `function C() { const $a = React.useState(0); $a[1]($a[0] * 2); }`,
		},
		{
			name: "compound_div",
			src:  `function C() { let $a = 0; $a /= $a; }`,
			want: `function C() { const $a = React.useState(0); $a[1]($a[0] / $a[0]); }`,
		},
		{
			name: "nested_assignment_untouched",
			src:  `function C() { let $a = 0; f($a = 1); }`,
			want: `function C() { const $a = React.useState(0); f($a = 1); }`,
		},
		{
			name: "read",
			src:  `function C() { let $a = 0; return $a + 1; }`,
			want: `function C() { const $a = React.useState(0); return $a[0] + 1; }`,
		},
		{
			name: "member_read",
			src:  `function C() { let $a = {}; return $a.name; }`,
			want: `function C() { const $a = React.useState({}); return $a[0].name; }`,
		},
		{
			name: "object_value",
			src:  `function C() { let $a = 0; return { $a: $a, ...$a }; }`,
			want: `function C() { const $a = React.useState(0); return { $a: $a[0], ...$a[0] }; }`,
		},
		{
			name: "jsx",
			src:  `function C() { let $a = 0; return <Comp $a={$a} onClick={f}>{$a}</Comp>; }`,
			want: `function C() { const $a = React.useState(0); return <Comp $a={$a[0]} onClick={f}>{$a[0]}</Comp>; }`,
		},
		{
			name: "unwrap",
			src:  escapeImport + `function C() { let $a = 0; return <Comp $count={$mut($a)}>{$mut($a)[0]}</Comp>; }`,
			want: `function C() { const $a = React.useState(0); return <Comp $count={$a}>{$a[0]}</Comp>; }`,
		},
		{
			name: "explicit_access",
			src:  `function C() { let $a = 0; return $a[1]; }`,
			want: `function C() { const $a = React.useState(0); return $a[1]; }`,
		},
		{
			name: "parameters",
			src:  `function C({$count, ...props}) { return $count; }`,
			want: `function C({$count, ...props}) { return $count[0]; }`,
		},
		{
			name: "destructured_declaration",
			src:  `function C(props) { const {$count2: x, $count3} = props; return $count3 + x; }`,
			want: `function C(props) { const {$count2: x, $count3} = props; return $count3[0] + x; }`,
		},
		{
			name: "closure",
			src:  `function C() { let $a = 0; const f = () => { $a = $a + 1; }; }`,
			want: `function C() { const $a = React.useState(0); const f = () => { $a[1]($a[0] + 1); }; }`,
		},
		{
			name: "siblings_isolated",
			src:  "function A() { let $a = 0; }\nfunction B() { return $a; }",
			want: "function A() { const $a = React.useState(0); }\nfunction B() { return $a; }",
		},
		{
			name: "module_scope",
			src:  "let $a = 0;\n$a = 1;\n",
			want: "let $a = 0;\n$a = 1;\n",
		},
		{
			name: "arrow_component",
			src:  `const C = () => { let $a = 0; return $a; };`,
			want: `const C = () => { const $a = React.useState(0); return $a[0]; };`,
		},
		{
			name: "function_expression",
			src:  `const C = function () { let $a = 0; return $a; };`,
			want: `const C = function () { const $a = React.useState(0); return $a[0]; };`,
		},
		{
			name: "nolint_function",
			src:  "//nolint:mute\nfunction C() { let $a = 0; }",
			want: "//nolint:mute\nfunction C() { let $a = 0; }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _, diags := rewrite(t, tt.src, config.DefaultBehavior())
			if len(diags) > 0 {
				t.Errorf("Got unexpected diagnostics: %v", diags.Err())
			}

			if got != tt.want {
				t.Errorf("Got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestIgnoreDirectives(t *testing.T) {
	t.Parallel()

	const (
		src  = "//nolint:mute\nfunction C() { let $a = 0; }"
		want = "//nolint:mute\nfunction C() { const $a = React.useState(0); }"
	)

	got, _, _ := rewrite(t, src, config.NewBitMask(config.IgnoreDirectives))
	if got != want {
		t.Errorf("Got\n%s\nwant\n%s", got, want)
	}
}

func TestUnsupportedOperator(t *testing.T) {
	t.Parallel()

	const src = `function C() { let $a = 1; $a %= 2; }`

	tests := [...]struct {
		name     string
		behavior config.Behavior
		want     string
		severity report.Severity
	}{
		{
			name:     "strict",
			behavior: config.DefaultBehavior(),
			want:     `function C() { const $a = React.useState(1); $a %= 2; }`,
			severity: report.Error,
		},
		{
			name:     "lenient",
			behavior: config.NewBitMask(config.Lenient),
			want:     `function C() { const $a = React.useState(1); $a[1](); }`,
			severity: report.Warning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _, diags := rewrite(t, src, tt.behavior)
			if got != tt.want {
				t.Errorf("Got\n%s\nwant\n%s", got, tt.want)
			}

			if len(diags) != 1 {
				t.Fatalf("Got %d diagnostics, want 1", len(diags))
			}

			d := diags[0]
			if d.Severity != tt.severity || !errors.Is(d, ErrUnsupportedOperator) {
				t.Errorf("Got diagnostic %v, want %s %v", d, tt.severity, ErrUnsupportedOperator)
			}

			if d.Pos.Line != 1 || d.Pos.Column != 28 {
				t.Errorf("Got position %v, want 1:28", d.Pos)
			}
		})
	}
}

func TestRewriteWarnings(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		src    string
		want   string
		err    error
		column int
	}{
		{
			name:   "postfix_update",
			src:    `function C() { let $a = 0; $a++; }`,
			want:   `function C() { const $a = React.useState(0); $a[0]++; }`,
			err:    ErrUpdateExpression,
			column: 28,
		},
		{
			name:   "prefix_update",
			src:    `function C() { let $a = 0; --$a; }`,
			want:   `function C() { const $a = React.useState(0); --$a[0]; }`,
			err:    ErrUpdateExpression,
			column: 28,
		},
		{
			name:   "shorthand_property",
			src:    `function C() { let $a = 0; return {$a}; }`,
			want:   `function C() { const $a = React.useState(0); return {$a}; }`,
			err:    ErrShorthandProperty,
			column: 36,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _, diags := rewrite(t, tt.src, config.DefaultBehavior())
			if got != tt.want {
				t.Errorf("Got\n%s\nwant\n%s", got, tt.want)
			}

			if len(diags) != 1 {
				t.Fatalf("Got %d diagnostics, want 1", len(diags))
			}

			d := diags[0]
			if d.Severity != report.Warning || !errors.Is(d, tt.err) {
				t.Errorf("Got diagnostic %v, want warning %v", d, tt.err)
			}

			if d.Pos.Line != 1 || d.Pos.Column != tt.column {
				t.Errorf("Got position %v, want 1:%d", d.Pos, tt.column)
			}

			if diags.HasErrors() {
				t.Error("Warnings must not fail the rewrite")
			}
		})
	}
}

func TestRewriteNoWarnings(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
	}{
		{"plain_update", `function C() { let a = 0; a++; }`},
		{"plain_shorthand", `function C() { let $a = 0; const b = 1; return {b}; }`},
		{"outside_function", "let $a = 0;\n$a++;\nexport default {$a};\n"},
		{"pair", `function C() { let $a = 0; return {$a: $a}; }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, _, diags := rewrite(t, tt.src, config.DefaultBehavior()); len(diags) > 0 {
				t.Errorf("Got unexpected diagnostics: %v", diags)
			}
		})
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	const src = escapeImport + `function C() {
  let $a = 0, $b = $mut(React.useState(1));
  const onPress = () => { $a = 1; $b += $a; };
  return <Comp $count={$mut($a)}>{$b}</Comp>;
}`

	_, got, _ := rewrite(t, src, config.DefaultBehavior())

	want := Stats{
		Functions:    2,
		Declarations: 1,
		Forwarded:    1,
		Assignments:  2,
		Reads:        2,
		Unwrapped:    1,
	}
	if got != want {
		t.Errorf("Got %+v, want %+v", got, want)
	}

	if !got.Changed() {
		t.Error("Expected changes")
	}
}

func TestRewriteIdempotent(t *testing.T) {
	t.Parallel()

	const src = escapeImport + `function C({$count}) {
  let $a = {name: "reaper"};
  const $x = $mut($count);
  const onPress = () => { $a = {...$a, name: "x"}; $x -= 1; };
  return <Comp $count={$mut($a)} onClick={onPress}>{$a.name}{$mut($x)[0]}</Comp>;
}`

	tree, cf := testsource.Parse(t, src)
	stage := newStage(t, tree, config.DefaultBehavior())

	_, diags := stage.Rewrite(t.Context(), cf, tree.Root)
	if len(diags) > 0 {
		t.Fatalf("Got unexpected diagnostics: %v", diags.Err())
	}

	first := string(tree.Bytes())

	stats, _ := stage.Rewrite(t.Context(), cf, tree.Root)

	if second := string(tree.Bytes()); second != first {
		t.Errorf("Second rewrite changed output:\n%s\nwant\n%s", second, first)
	}

	if stats.Changed() {
		t.Errorf("Second rewrite reported changes: %+v", stats)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		id   string
		want Role
	}{
		{"declarator", `let $a = 1;`, "$a", DeclarationTarget},
		{"declarator_value", `let b = $a;`, "$a", PlainRead},
		{"assignment", `$a = 1;`, "$a", AssignmentTarget},
		{"augmented", `$a += 1;`, "$a", AssignmentTarget},
		{"assignment_value", `b = $a;`, "$a", PlainRead},
		{"parameter", `function f($a) {}`, "$a", DeclarationTarget},
		{"arrow_parameter", `const f = $a => 1;`, "$a", DeclarationTarget},
		{"default_parameter", `function f($a = 1) {}`, "$a", DeclarationTarget},
		{"function_name", `function $a() {}`, "$a", DeclarationTarget},
		{"catch", `try {} catch ($a) {}`, "$a", DeclarationTarget},
		{"for_of_declaration", `for (const $a of xs) {}`, "$a", DeclarationTarget},
		{"pair_value", `x = {k: $a};`, "$a", PlainRead},
		{"generated_value", `$a[0];`, "$a", GeneratedAccess},
		{"generated_setter", `$a[1](2);`, "$a", GeneratedAccess},
		{"other_index", `$a[2];`, "$a", PlainRead},
		{"computed_index", `$a[i];`, "$a", PlainRead},
		{"call_argument", `f($a);`, "$a", PlainRead},
		{"update", `$a++;`, "$a", PlainRead},
		{"jsx_child", `<div>{$a}</div>;`, "$a", PlainRead},
		{"jsx_value", `<div k={$a} />;`, "$a", PlainRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, _ := testsource.Parse(t, tt.src)

			id := testsource.Find(tree.Root, syntax.KindIdentifier, tt.id)
			if id == nil {
				t.Fatalf("Identifier %s not found", tt.id)
			}

			if got := Classify(id); got != tt.want {
				t.Errorf("Got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRoleString(t *testing.T) {
	t.Parallel()

	if got, want := GeneratedAccess.String(), "generated"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if got, want := Role(42).String(), "Role(42)"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
