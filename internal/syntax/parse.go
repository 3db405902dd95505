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

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// ErrSyntax is returned when the source can't be parsed completely.
var ErrSyntax = errors.New("syntax error")

// Tree is a parsed compile unit.
type Tree struct {
	Root *Node

	prefix, suffix string
}

// Bytes prints the tree, including all modifications.
func (t *Tree) Bytes() []byte {
	return []byte(t.prefix + t.Root.Text() + t.suffix)
}

// Parse parses JavaScript source with JSX markup into a mutable tree.
func Parse(ctx context.Context, src []byte) (*Tree, error) {
	defer trace.StartRegion(ctx, "Parse").End()

	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	st, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer st.Close()

	root := st.RootNode()
	if root.HasError() {
		return nil, syntaxError(root)
	}

	start, end := int(root.StartByte()), int(root.EndByte())

	return &Tree{
		Root:   convert(root, "", src),
		prefix: string(src[:start]),
		suffix: string(src[end:]),
	}, nil
}

func syntaxError(root *sitter.Node) error {
	bad := firstError(root)
	if bad == nil {
		return ErrSyntax
	}

	p := bad.StartPoint()

	what := "unexpected input"
	if bad.IsMissing() {
		what = fmt.Sprintf("missing %q", bad.Type())
	}

	return fmt.Errorf("%w at %d:%d: %s", ErrSyntax, p.Row+1, p.Column+1, what)
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsMissing() || n.Type() == "ERROR" {
		return n
	}

	if !n.HasError() {
		return nil
	}

	for i := range int(n.ChildCount()) {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}

	return nil
}

type fieldKey struct {
	start, end uint32
	kind       string
}

func convert(sn *sitter.Node, field string, src []byte) *Node {
	start, end := int(sn.StartByte()), int(sn.EndByte())

	n := &Node{
		Kind:  Kind(sn.Type()),
		Field: field,
		Span:  Span{Start: start, End: end},
		Named: sn.IsNamed(),
	}

	count := int(sn.ChildCount())
	if count == 0 {
		n.text = string(src[start:end])

		return n
	}

	fields := childFields(sn)

	n.Children = make([]*Node, 0, count)
	n.gaps = make([]string, 0, count+1)

	pos := start
	for i := range count {
		sc := sn.Child(i)
		cs, ce := int(sc.StartByte()), int(sc.EndByte())

		n.gaps = append(n.gaps, between(src, pos, cs))

		child := convert(sc, fields[fieldKey{sc.StartByte(), sc.EndByte(), sc.Type()}], src)
		child.Parent = n
		n.Children = append(n.Children, child)

		pos = max(pos, ce)
	}

	n.gaps = append(n.gaps, between(src, pos, end))

	return n
}

// childFields maps the children of sn to the field names the rewriter inspects.
func childFields(sn *sitter.Node) map[fieldKey]string {
	var fields map[fieldKey]string

	for _, f := range knownFields {
		fc := sn.ChildByFieldName(f)
		if fc == nil {
			continue
		}

		if fields == nil {
			fields = make(map[fieldKey]string)
		}

		fields[fieldKey{fc.StartByte(), fc.EndByte(), fc.Type()}] = f
	}

	return fields
}

func between(src []byte, from, to int) string {
	if to <= from {
		return ""
	}

	return string(src[from:to])
}
