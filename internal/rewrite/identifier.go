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

import (
	"fillmore-labs.com/mute/internal/scope"
	"fillmore-labs.com/mute/internal/syntax"
)

// rewriteIdentifier replaces a reactive read by its accessor and unwraps escape hatch calls.
func (w *walker) rewriteIdentifier(id *syntax.Node, chain *scope.Chain) {
	if w.memory.Contains(id) || w.marker.IsAlias(id) {
		return
	}

	if call := w.escapeCall(id); call != nil {
		span := call.Span
		if !w.replace(call, id) {
			return
		}

		id.Span = span
		w.memory.Add(id)
		w.stats.Unwrapped++

		return
	}

	if !Classify(id).Rewritable() || !w.memory.Reactive(chain, id.Text()) {
		return
	}

	if !w.replace(id, w.memory.Accessor(id.Text(), id.Span)) {
		return
	}

	w.stats.Reads++
}

// escapeCall returns the escape hatch call id is a direct argument of, or nil.
func (w *walker) escapeCall(id *syntax.Node) *syntax.Node {
	args := id.Parent
	if args == nil || args.Kind != syntax.KindArguments {
		return nil
	}

	if call := args.Parent; w.marker.IsEscapeCall(call) {
		return call
	}

	return nil
}
