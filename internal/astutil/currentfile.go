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
	"bytes"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/mute/internal/report"
	"fillmore-labs.com/mute/internal/syntax"
)

const mute = "mute"

// CurrentFile holds per-unit information needed across all functions of a compile unit.
type CurrentFile struct {
	name      string
	root      *syntax.Node
	lines     []int // offsets of line starts
	generated bool
}

// NewCurrentFile indexes the lines of src, which tree was parsed from.
func NewCurrentFile(name string, src []byte, tree *syntax.Tree) CurrentFile {
	if tree == nil || tree.Root == nil {
		return CurrentFile{}
	}

	lines := []int{0}
	for i, b := range src {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}

	return CurrentFile{
		name:      name,
		root:      tree.Root,
		lines:     lines,
		generated: isGenerated(tree.Root),
	}
}

// Valid reports whether the file was initialized from a parsed tree.
func (c CurrentFile) Valid() bool {
	return c.root != nil
}

// Name is the file name used in diagnostics.
func (c CurrentFile) Name() string {
	return c.name
}

// Generated reports whether the unit carries a generated-code marker.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Position converts a byte offset into a diagnostic position.
func (c CurrentFile) Position(offset int) report.Position {
	i, found := slices.BinarySearch(c.lines, offset)
	if !found {
		i--
	}

	if i < 0 {
		return report.Position{Filename: c.name, Offset: offset}
	}

	return report.Position{
		Filename: c.name,
		Offset:   offset,
		Line:     i + 1,
		Column:   offset - c.lines[i] + 1,
	}
}

// NoLintFile reports whether the first comment of the unit disables the rewriter.
func (c CurrentFile) NoLintFile() bool {
	if c.root == nil || len(c.root.Children) == 0 {
		return false
	}

	first := c.root.Children[0]

	return first.Kind == syntax.KindComment && CommentHasNoLint(first.Text())
}

// NoLintFunction reports whether the statement declaring fn is directly preceded by a nolint comment.
func (c CurrentFile) NoLintFunction(fn *syntax.Node) bool {
	stmt := declaringStatement(fn)
	if stmt == nil {
		return false
	}

	prev := stmt.PrevSibling()

	return prev != nil && prev.Kind == syntax.KindComment && CommentHasNoLint(prev.Text())
}

// declaringStatement finds the statement a function is declared in, if it is
// a function declaration or the initializer of a variable.
func declaringStatement(fn *syntax.Node) *syntax.Node {
	stmt := fn

	if p := fn.Parent; p != nil && p.Kind == syntax.KindVariableDeclarator && fn.Field == syntax.FieldValue {
		stmt = p.Parent
	}

	if stmt == nil {
		return nil
	}

	if p := stmt.Parent; p != nil && p.Kind == syntax.KindExportStatement {
		stmt = p
	}

	return stmt
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint reports whether comment is a nolint directive naming this tool or all linters.
func CommentHasNoLint(comment string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == mute || l == "all" {
			return true
		}
	}

	return false
}

var (
	generatedPrefix = []byte("// Code generated ")
	generatedSuffix = []byte(" DO NOT EDIT.")
	generatedTag    = []byte("@generated")
)

// isGenerated checks the leading comments of the unit for a generated-code marker.
func isGenerated(root *syntax.Node) bool {
	for _, n := range root.Children {
		if n.Kind != syntax.KindComment {
			return false
		}

		text := []byte(n.Text())
		if bytes.Contains(text, generatedTag) {
			return true
		}

		for line := range bytes.Lines(text) {
			line = bytes.TrimRight(line, "\r\n")
			if bytes.HasPrefix(line, generatedPrefix) && bytes.HasSuffix(line, generatedSuffix) {
				return true
			}
		}
	}

	return false
}
