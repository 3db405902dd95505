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

import "fillmore-labs.com/mute/internal/syntax"

//go:generate go tool stringer -type Role -linecomment

// Role is the syntactic role of an identifier, decided from its immediate parent.
type Role uint8

const (
	// PlainRead is any position that evaluates the identifier.
	PlainRead Role = iota // read

	// DeclarationTarget is a position binding the identifier.
	DeclarationTarget // declaration

	// AssignmentTarget is the left side of an assignment.
	AssignmentTarget // assignment

	// PropertyKey is the key of an object literal property.
	PropertyKey // key

	// AttributeName is the name of a markup attribute.
	AttributeName // attribute

	// GeneratedAccess is the object of a hook tuple index access.
	GeneratedAccess // generated
)

// Rewritable reports whether an identifier in this role is replaced by its accessor.
func (r Role) Rewritable() bool {
	return r == PlainRead
}

// Classify determines the role of identifier id.
func Classify(id *syntax.Node) Role {
	p := id.Parent
	if p == nil {
		return PlainRead
	}

	switch p.Kind {
	// keep-sorted start newline_separated=yes
	case syntax.KindArrayPattern, syntax.KindFormalParameters, syntax.KindRestPattern,
		syntax.KindImportClause, syntax.KindImportSpecifier, syntax.KindNamespaceImport:
		return DeclarationTarget

	case syntax.KindArrowFunction:
		if id.Field == syntax.FieldParameter {
			return DeclarationTarget
		}

	case syntax.KindAssignmentExpression, syntax.KindAugmentedAssignmentExpression:
		if id.Field == syntax.FieldLeft {
			return AssignmentTarget
		}

	case syntax.KindAssignmentPattern, syntax.KindObjectAssignmentPattern:
		if id.Field == syntax.FieldLeft {
			return DeclarationTarget
		}

	case syntax.KindCatchClause:
		if id.Field == syntax.FieldParameter {
			return DeclarationTarget
		}

	case syntax.KindClass, syntax.KindClassDeclaration,
		syntax.KindFunction, syntax.KindFunctionDeclaration, syntax.KindFunctionExpression,
		syntax.KindGeneratorFunction, syntax.KindGeneratorFunctionDeclaration:
		if id.Field == syntax.FieldName {
			return DeclarationTarget
		}

	case syntax.KindForInStatement:
		if id.Field == syntax.FieldLeft {
			if p.Child(syntax.FieldKind) != nil {
				return DeclarationTarget
			}

			return AssignmentTarget
		}

	case syntax.KindJSXAttribute:
		if id.Index() == 0 {
			return AttributeName
		}

	case syntax.KindPair:
		if id.Field == syntax.FieldKey {
			return PropertyKey
		}

	case syntax.KindPairPattern:
		if id.Field == syntax.FieldValue {
			return DeclarationTarget
		}

	case syntax.KindSubscriptExpression:
		if id.Field == syntax.FieldObject && IsHookIndex(p.Child(syntax.FieldIndex)) {
			return GeneratedAccess
		}

	case syntax.KindVariableDeclarator:
		if id.Field == syntax.FieldName {
			return DeclarationTarget
		}
	// keep-sorted end
	}

	return PlainRead
}

// IsHookIndex reports whether index is the literal 0 or 1.
func IsHookIndex(index *syntax.Node) bool {
	if index == nil || index.Kind != syntax.KindNumber {
		return false
	}

	switch index.Text() {
	case "0", "1":
		return true

	default:
		return false
	}
}
