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
	mapset "github.com/deckarep/golang-set/v2"

	"fillmore-labs.com/mute/internal/syntax"
)

// Key identifies a node by kind and source span.
type Key struct {
	Kind  syntax.Kind
	Start int
	End   int
}

// KeyOf returns the ledger key of n.
func KeyOf(n *syntax.Node) Key {
	return Key{Kind: n.Kind, Start: n.Span.Start, End: n.Span.End}
}

// Ledger records nodes already produced or handled, preventing repeated rewrites.
type Ledger struct {
	keys mapset.Set[Key]
}

// NewLedger creates an empty [Ledger].
func NewLedger() Ledger {
	return Ledger{keys: mapset.NewThreadUnsafeSet[Key]()}
}

// Add records n.
func (l Ledger) Add(n *syntax.Node) {
	l.keys.Add(KeyOf(n))
}

// AddKey records a node that is no longer in the tree.
func (l Ledger) AddKey(k Key) {
	l.keys.Add(k)
}

// Contains reports whether n has been recorded.
func (l Ledger) Contains(n *syntax.Node) bool {
	return l.keys.Contains(KeyOf(n))
}

// Len returns the number of recorded nodes.
func (l Ledger) Len() int {
	return l.keys.Cardinality()
}
