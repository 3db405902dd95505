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

package astutil

import (
	"iter"

	"fillmore-labs.com/mute/internal/syntax"
)

// AllPatternNames iterates over the identifiers bound by a binding pattern,
// including destructuring, defaults and rest elements.
func AllPatternNames(pattern *syntax.Node) iter.Seq[*syntax.Node] {
	return func(yield func(*syntax.Node) bool) {
		patternNames(pattern, yield)
	}
}

func patternNames(n *syntax.Node, yield func(*syntax.Node) bool) bool {
	if n == nil {
		return true
	}

	switch n.Kind {
	case syntax.KindIdentifier, syntax.KindShorthandPropertyPattern:
		return yield(n)

	case syntax.KindPairPattern:
		return patternNames(n.Child(syntax.FieldValue), yield)

	case syntax.KindAssignmentPattern, syntax.KindObjectAssignmentPattern:
		return patternNames(n.Child(syntax.FieldLeft), yield)

	case syntax.KindObjectPattern, syntax.KindArrayPattern, syntax.KindRestPattern, syntax.KindFormalParameters:
		for c := range n.NamedChildren() {
			if !patternNames(c, yield) {
				return false
			}
		}
	}

	return true
}

// AllDeclaredNames iterates over the identifiers bound by a let, const or var declaration.
func AllDeclaredNames(decl *syntax.Node) iter.Seq[*syntax.Node] {
	return func(yield func(*syntax.Node) bool) {
		for _, d := range decl.Children {
			if d.Kind != syntax.KindVariableDeclarator {
				continue
			}

			if !patternNames(d.Child(syntax.FieldName), yield) {
				return
			}
		}
	}
}
