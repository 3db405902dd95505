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

package scope

import (
	"iter"
	"slices"
)

// Chain is an immutable list of reactive sets, one link per enclosing function.
// The nil *Chain is the empty chain of module scope.
type Chain struct {
	parent *Chain
	names  []string
}

// Push returns the chain extended by the reactive names of an inner function.
// Every call creates a new link, so links identify function scopes.
func (c *Chain) Push(names []string) *Chain {
	return &Chain{parent: c, names: names}
}

// Contains reports whether name is reactive in any enclosing function.
func (c *Chain) Contains(name string) bool {
	for l := c; l != nil; l = l.parent {
		if slices.Contains(l.names, name) {
			return true
		}
	}

	return false
}

// Names iterates over the reactive names of the innermost function.
func (c *Chain) Names() iter.Seq[string] {
	if c == nil {
		return func(func(string) bool) {}
	}

	return slices.Values(c.names)
}

// Depth returns the number of enclosing functions.
func (c *Chain) Depth() int {
	d := 0
	for l := c; l != nil; l = l.parent {
		d++
	}

	return d
}
