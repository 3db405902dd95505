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

package site

import (
	"fillmore-labs.com/mute/internal/scope"
	"fillmore-labs.com/mute/internal/syntax"
)

// Hook state tuple indices.
const (
	valueIndex  = "0"
	setterIndex = "1"
)

// Memory is the per-unit table of ledger and memoized expressions.
// It is never shared between compile units.
type Memory struct {
	Ledger

	accessors map[string]*syntax.Node
	updaters  map[string]*syntax.Node
	verdicts  map[verdictKey]bool
}

type verdictKey struct {
	chain *scope.Chain
	name  string
}

// New creates empty per-unit memory.
func New() *Memory {
	return &Memory{
		Ledger:    NewLedger(),
		accessors: make(map[string]*syntax.Node),
		updaters:  make(map[string]*syntax.Node),
		verdicts:  make(map[verdictKey]bool),
	}
}

// Accessor returns a fresh name[0] expression carrying span.
func (m *Memory) Accessor(name string, span syntax.Span) *syntax.Node {
	return instantiate(m.accessors, name, valueIndex, span)
}

// Updater returns a fresh name[1] expression carrying span.
func (m *Memory) Updater(name string, span syntax.Span) *syntax.Node {
	return instantiate(m.updaters, name, setterIndex, span)
}

// instantiate clones the memoized template, since a node can only have one parent.
func instantiate(memo map[string]*syntax.Node, name, index string, span syntax.Span) *syntax.Node {
	tmpl, ok := memo[name]
	if !ok {
		var zero syntax.Span
		tmpl = syntax.NewSubscript(syntax.NewIdentifier(name, zero), syntax.NewNumber(index, zero), zero)
		memo[name] = tmpl
	}

	n := tmpl.Clone()
	n.Stamp(span)

	return n
}

// Reactive reports whether name is reactive in the function scope chain.
func (m *Memory) Reactive(chain *scope.Chain, name string) bool {
	k := verdictKey{chain: chain, name: name}

	if v, ok := m.verdicts[k]; ok {
		return v
	}

	v := chain.Contains(name)
	m.verdicts[k] = v

	return v
}
