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

// Package rewrite turns reactive locals of component functions into state hook calls.
//
// # Overview
//
// A single walk over the compile unit visits every function. Entering a function
// pushes its sigil-named bindings onto a scope chain; inside, three rewrites run:
//
//   - declarations of reactive names become hook constructor calls,
//     or lose their escape hatch wrapper;
//   - statement-level assignments become updater calls;
//   - plain reads become accessor reads.
//
// # Example
//
// Before:
//
//	function Counter() {
//	    let $count = 0;
//	    const inc = () => { $count += 1; };
//	    return <button onClick={inc}>{$count}</button>;
//	}
//
// After:
//
//	function Counter() {
//	    const $count = React.useState(0);
//	    const inc = () => { $count[1]($count[0] + 1); };
//	    return <button onClick={inc}>{$count[0]}</button>;
//	}
//
// Identifiers in binding positions, object keys and markup attribute names are
// never rewritten. Sites produced by the rewriter are recorded in a per-unit ledger
// so repeated visits leave them alone.
package rewrite
