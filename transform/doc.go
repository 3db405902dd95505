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

// Package transform implements the mute source rewriter.
//
// # Overview
//
// Mute turns local variables of UI component functions whose name starts
// with a sigil ($ by default) into React state hooks, so mutable-looking code
// compiles to idiomatic hook calls.
//
// # Example
//
// Before:
//
//	function Counter() {
//	    let $count = 0;
//	    const onClick = () => { $count += 1; };
//	    return <button onClick={onClick}>{$count}</button>;
//	}
//
// After:
//
//	function Counter() {
//	    const $count = React.useState(0);
//	    const onClick = () => { $count[1]($count[0] + 1); };
//	    return <button onClick={onClick}>{$count[0]}</button>;
//	}
//
// # Escape Hatch
//
// Importing $mut from the "mute" package declares a raw hook handle or
// passes one on without reading it:
//
//	import { $mut } from "mute";
//
//	function Parent() {
//	    let $a = 0;
//	    const $b = $mut(React.useState(1));
//	    return <Child $count={$mut($a)} />;
//	}
//
// The marker import is always removed from the output.
package transform
