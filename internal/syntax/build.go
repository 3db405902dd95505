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

// NewIdentifier creates an identifier leaf.
func NewIdentifier(name string, span Span) *Node {
	return &Node{Kind: KindIdentifier, Span: span, Named: true, text: name}
}

// NewPropertyIdentifier creates a property identifier leaf, as used after a dot.
func NewPropertyIdentifier(name string, span Span) *Node {
	return &Node{Kind: KindPropertyIdentifier, Span: span, Named: true, text: name}
}

// NewNumber creates a numeric literal leaf.
func NewNumber(literal string, span Span) *Node {
	return &Node{Kind: KindNumber, Span: span, Named: true, text: literal}
}

func newToken(text string, span Span) *Node {
	return &Node{Kind: Kind(text), Span: span, text: text}
}

// NewSubscript creates object[index].
func NewSubscript(object, index *Node, span Span) *Node {
	return compose(KindSubscriptExpression, span,
		part{node: object, field: FieldObject},
		part{node: newToken("[", span)},
		part{node: index, field: FieldIndex},
		part{node: newToken("]", span)},
	)
}

// NewMember creates object.property.
func NewMember(object, property *Node, span Span) *Node {
	return compose(KindMemberExpression, span,
		part{node: object, field: FieldObject},
		part{node: newToken(".", span)},
		part{node: property, field: FieldProperty},
	)
}

// NewCall creates function(args...).
func NewCall(function *Node, span Span, args ...*Node) *Node {
	parts := make([]part, 0, 2*len(args)+1)
	parts = append(parts, part{node: newToken("(", span)})

	for i, arg := range args {
		if i > 0 {
			parts = append(parts, part{node: newToken(",", span)}, part{node: arg, sep: " "})

			continue
		}

		parts = append(parts, part{node: arg})
	}

	parts = append(parts, part{node: newToken(")", span)})

	arguments := compose(KindArguments, span, parts...)

	return compose(KindCallExpression, span,
		part{node: function, field: FieldFunction},
		part{node: arguments, field: FieldArguments},
	)
}

// NewBinary creates left op right.
func NewBinary(op string, left, right *Node, span Span) *Node {
	return compose(KindBinaryExpression, span,
		part{node: left, field: FieldLeft},
		part{node: newToken(op, span), field: FieldOperator, sep: " "},
		part{node: right, field: FieldRight, sep: " "},
	)
}

// NewDeclarator creates name = value.
func NewDeclarator(name, value *Node, span Span) *Node {
	return compose(KindVariableDeclarator, span,
		part{node: name, field: FieldName},
		part{node: newToken("=", span), sep: " "},
		part{node: value, field: FieldValue, sep: " "},
	)
}

// part is a child of a synthetic node with the separator preceding it.
type part struct {
	node  *Node
	field string
	sep   string
}

func compose(kind Kind, span Span, parts ...part) *Node {
	n := &Node{
		Kind:     kind,
		Span:     span,
		Named:    true,
		Children: make([]*Node, 0, len(parts)),
		gaps:     make([]string, 0, len(parts)+1),
	}

	for _, p := range parts {
		if p.node.Parent != nil {
			Remove(p.node)
		}

		p.node.Parent, p.node.Field = n, p.field
		n.Children = append(n.Children, p.node)
		n.gaps = append(n.gaps, p.sep)
	}

	n.gaps = append(n.gaps, "")

	return n
}
