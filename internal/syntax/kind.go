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

package syntax

// Kind is the grammar symbol of a [Node], as named by the tree-sitter JavaScript grammar.
// Anonymous tokens use their literal text as kind.
type Kind string

// Node kinds used by the rewriter.
const (
	// keep-sorted start
	KindArguments                     Kind = "arguments"
	KindArrayPattern                  Kind = "array_pattern"
	KindArrowFunction                 Kind = "arrow_function"
	KindAssignmentExpression          Kind = "assignment_expression"
	KindAssignmentPattern             Kind = "assignment_pattern"
	KindAugmentedAssignmentExpression Kind = "augmented_assignment_expression"
	KindBinaryExpression              Kind = "binary_expression"
	KindCallExpression                Kind = "call_expression"
	KindCatchClause                   Kind = "catch_clause"
	KindClass                         Kind = "class"
	KindClassDeclaration              Kind = "class_declaration"
	KindComment                       Kind = "comment"
	KindExportStatement               Kind = "export_statement"
	KindExpressionStatement           Kind = "expression_statement"
	KindForInStatement                Kind = "for_in_statement"
	KindFormalParameters              Kind = "formal_parameters"
	KindFunction                      Kind = "function"
	KindFunctionDeclaration           Kind = "function_declaration"
	KindFunctionExpression            Kind = "function_expression"
	KindGeneratorFunction             Kind = "generator_function"
	KindGeneratorFunctionDeclaration  Kind = "generator_function_declaration"
	KindIdentifier                    Kind = "identifier"
	KindImportClause                  Kind = "import_clause"
	KindImportSpecifier               Kind = "import_specifier"
	KindImportStatement               Kind = "import_statement"
	KindJSXAttribute                  Kind = "jsx_attribute"
	KindLexicalDeclaration            Kind = "lexical_declaration"
	KindMemberExpression              Kind = "member_expression"
	KindNamedImports                  Kind = "named_imports"
	KindNamespaceImport               Kind = "namespace_import"
	KindNumber                        Kind = "number"
	KindObjectAssignmentPattern       Kind = "object_assignment_pattern"
	KindObjectPattern                 Kind = "object_pattern"
	KindPair                          Kind = "pair"
	KindPairPattern                   Kind = "pair_pattern"
	KindProgram                       Kind = "program"
	KindPropertyIdentifier            Kind = "property_identifier"
	KindRestPattern                   Kind = "rest_pattern"
	KindShorthandProperty             Kind = "shorthand_property_identifier"
	KindShorthandPropertyPattern      Kind = "shorthand_property_identifier_pattern"
	KindStatementBlock                Kind = "statement_block"
	KindString                        Kind = "string"
	KindStringFragment                Kind = "string_fragment"
	KindSubscriptExpression           Kind = "subscript_expression"
	KindUpdateExpression              Kind = "update_expression"
	KindVariableDeclaration           Kind = "variable_declaration"
	KindVariableDeclarator            Kind = "variable_declarator"
	// keep-sorted end
)

// Field names used by the rewriter.
const (
	// keep-sorted start
	FieldAlias      = "alias"
	FieldArguments  = "arguments"
	FieldBody       = "body"
	FieldFunction   = "function"
	FieldIndex      = "index"
	FieldKey        = "key"
	FieldKind       = "kind"
	FieldLeft       = "left"
	FieldName       = "name"
	FieldObject     = "object"
	FieldOperator   = "operator"
	FieldParameter  = "parameter"
	FieldParameters = "parameters"
	FieldProperty   = "property"
	FieldRight      = "right"
	FieldSource     = "source"
	FieldValue      = "value"
	// keep-sorted end
)

// knownFields are resolved for every node during conversion.
var knownFields = [...]string{
	FieldAlias, FieldArguments, FieldBody, FieldFunction, FieldIndex, FieldKey, FieldKind, FieldLeft,
	FieldName, FieldObject, FieldOperator, FieldParameter, FieldParameters, FieldProperty, FieldRight,
	FieldSource, FieldValue,
}
