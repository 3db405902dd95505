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
	"iter"
	"slices"
	"strings"
)

// Span is a half-open byte range in the original source.
// Synthetic nodes carry the span of the site they replace.
type Span struct {
	Start, End int
}

// Node is a mutable, lossless syntax tree node.
//
// A leaf holds its source text. An interior node holds its children and the
// separators between them: gaps[i] precedes Children[i], and the last gap
// trails the last child, so len(gaps) == len(Children)+1.
type Node struct {
	Kind     Kind
	Field    string // field name in the parent, empty if none
	Span     Span
	Named    bool
	Parent   *Node
	Children []*Node

	text string
	gaps []string
}

// IsLeaf reports whether n is a token without children.
func (n *Node) IsLeaf() bool {
	return n.gaps == nil
}

// Text returns the source text of n, including synthetic replacements.
func (n *Node) Text() string {
	if n.IsLeaf() {
		return n.text
	}

	var b strings.Builder
	n.writeTo(&b)

	return b.String()
}

// SetText replaces the text of a leaf.
func (n *Node) SetText(text string) {
	if !n.IsLeaf() {
		return
	}

	n.text = text
}

// Child returns the first child in field, or nil.
func (n *Node) Child(field string) *Node {
	for _, c := range n.Children {
		if c.Field == field {
			return c
		}
	}

	return nil
}

// ChildOfKind returns the first child of the given kind, or nil.
func (n *Node) ChildOfKind(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}

	return nil
}

// NamedChildren iterates over the named children of n.
func (n *Node) NamedChildren() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.Children {
			if c.Named && !yield(c) {
				return
			}
		}
	}
}

// Preorder iterates over n and all its descendants in depth-first order.
// The callback must not restructure the tree.
func (n *Node) Preorder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.preorder(yield)
	}
}

func (n *Node) preorder(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}

	for _, c := range n.Children {
		if !c.preorder(yield) {
			return false
		}
	}

	return true
}

// Index returns the position of n in its parent's children, or -1.
func (n *Node) Index() int {
	if n.Parent == nil {
		return -1
	}

	return slices.Index(n.Parent.Children, n)
}

// PrevSibling returns the child preceding n in its parent, or nil.
func (n *Node) PrevSibling() *Node {
	if i := n.Index(); i > 0 {
		return n.Parent.Children[i-1]
	}

	return nil
}

// Replace puts repl into the slot of old and reports whether old was attached.
// repl inherits old's field name and is detached from its previous parent.
func Replace(old, repl *Node) bool {
	i := old.Index()
	if i < 0 {
		return false
	}

	parent := old.Parent

	if repl.Parent != nil {
		Remove(repl)
	}

	repl.Parent, repl.Field = parent, old.Field
	parent.Children[i] = repl
	old.Parent = nil

	return true
}

// Remove detaches n from its parent, dropping the separator preceding it.
// The first child drops the separator following it instead, unless it is the only child.
func Remove(n *Node) bool {
	i := n.Index()
	if i < 0 {
		return false
	}

	gap := i
	if i == 0 && len(n.Parent.Children) > 1 {
		gap = 1
	}

	parent := n.Parent
	parent.Children = slices.Delete(parent.Children, i, i+1)
	parent.gaps = slices.Delete(parent.gaps, gap, gap+1)
	n.Parent = nil

	return true
}

// Clone returns a deep copy of n without a parent.
func (n *Node) Clone() *Node {
	c := &Node{
		Kind:  n.Kind,
		Field: n.Field,
		Span:  n.Span,
		Named: n.Named,
		text:  n.text,
		gaps:  slices.Clone(n.gaps),
	}

	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			cc := child.Clone()
			cc.Parent = c
			c.Children[i] = cc
		}
	}

	return c
}

// Stamp sets the span of n and all its descendants.
func (n *Node) Stamp(span Span) {
	for d := range n.Preorder() {
		d.Span = span
	}
}

func (n *Node) writeTo(b *strings.Builder) {
	if n.IsLeaf() {
		b.WriteString(n.text)

		return
	}

	for i, c := range n.Children {
		b.WriteString(n.gaps[i])
		c.writeTo(b)
	}

	b.WriteString(n.gaps[len(n.Children)])
}
