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

// Package testsource parses source fragments for tests.
package testsource

import (
	"context"
	"testing"

	"fillmore-labs.com/mute/internal/astutil"
	"fillmore-labs.com/mute/internal/syntax"
)

const filename = "test.jsx"

// Parse parses a complete compile unit.
func Parse(tb testing.TB, src string) (*syntax.Tree, astutil.CurrentFile) {
	tb.Helper()

	tree, err := syntax.Parse(context.Background(), []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return tree, astutil.NewCurrentFile(filename, []byte(src), tree)
}

// ParseBody wraps src into a component function and returns the tree and that function.
func ParseBody(tb testing.TB, src string) (*syntax.Tree, *syntax.Node) {
	tb.Helper()

	const (
		header = "function Component() {\n"
		suffix = "\n}\n"
	)

	tree, _ := Parse(tb, header+src+suffix)

	fn := Find(tree.Root, syntax.KindFunctionDeclaration, "")
	if fn == nil {
		tb.Fatal("Can't find function")
	}

	return tree, fn
}

// Find returns the first node of kind in preorder, with text if non-empty.
func Find(root *syntax.Node, kind syntax.Kind, text string) *syntax.Node {
	for n := range root.Preorder() {
		if n.Kind == kind && (text == "" || n.Text() == text) {
			return n
		}
	}

	return nil
}

// FindAll returns all nodes of kind with text in preorder.
func FindAll(root *syntax.Node, kind syntax.Kind, text string) []*syntax.Node {
	var nodes []*syntax.Node

	for n := range root.Preorder() {
		if n.Kind == kind && (text == "" || n.Text() == text) {
			nodes = append(nodes, n)
		}
	}

	return nodes
}
