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

// Package marker recognizes and removes the import of the compile-time escape hatch.
package marker

import (
	"context"
	"log/slog"
	"runtime/trace"
	"slices"
	"strings"

	"fillmore-labs.com/mute/internal/syntax"
)

// State records whether the escape hatch is imported in a compile unit, and under which name.
type State struct {
	Active bool
	Alias  string
}

// IsAlias reports whether id names the escape hatch.
func (s State) IsAlias(id *syntax.Node) bool {
	return s.Active && id.Kind == syntax.KindIdentifier && id.Text() == s.Alias
}

// IsEscapeCall reports whether n is a call of the escape hatch.
func (s State) IsEscapeCall(n *syntax.Node) bool {
	if !s.Active || n == nil || n.Kind != syntax.KindCallExpression {
		return false
	}

	fn := n.Child(syntax.FieldFunction)

	return fn != nil && s.IsAlias(fn)
}

// LogValue implements [slog.LogValuer].
func (s State) LogValue() slog.Value {
	if !s.Active {
		return slog.StringValue("inactive")
	}

	return slog.StringValue(s.Alias)
}

// Resolver finds the marker imports of a compile unit.
type Resolver struct {
	// Package is the import source of the marker package.
	Package string

	// Export is the escape hatch's exported name.
	Export string
}

// Resolve removes every top-level import of the marker package from root and
// returns the escape-hatch state with the number of removed statements.
func (r Resolver) Resolve(ctx context.Context, root *syntax.Node) (State, int) {
	defer trace.StartRegion(ctx, "Marker").End()

	var (
		state   State
		removed int
	)

	for _, n := range slices.Clone(root.Children) {
		if n.Kind != syntax.KindImportStatement || importSource(n) != r.Package {
			continue
		}

		if alias, ok := r.alias(n); ok {
			state = State{Active: true, Alias: alias}
		}

		if syntax.Remove(n) {
			removed++
		}
	}

	return state, removed
}

// alias finds the local name of the escape-hatch specifier in an import statement.
func (r Resolver) alias(imp *syntax.Node) (string, bool) {
	clause := imp.ChildOfKind(syntax.KindImportClause)
	if clause == nil {
		return "", false // side-effect import
	}

	named := clause.ChildOfKind(syntax.KindNamedImports)
	if named == nil {
		return "", false
	}

	for spec := range named.NamedChildren() {
		if spec.Kind != syntax.KindImportSpecifier {
			continue
		}

		name := spec.Child(syntax.FieldName)
		if name == nil || unquote(name) != r.Export {
			continue
		}

		if alias := spec.Child(syntax.FieldAlias); alias != nil {
			return alias.Text(), true
		}

		return name.Text(), true
	}

	return "", false
}

func importSource(imp *syntax.Node) string {
	src := imp.Child(syntax.FieldSource)
	if src == nil {
		return ""
	}

	return unquote(src)
}

// unquote returns the contents of a string literal or the text of an identifier.
func unquote(n *syntax.Node) string {
	if n.Kind != syntax.KindString {
		return n.Text()
	}

	var b strings.Builder

	for c := range n.NamedChildren() {
		b.WriteString(c.Text())
	}

	return b.String()
}
