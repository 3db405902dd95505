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
	"errors"
	"fmt"

	"fillmore-labs.com/mute/internal/report"
	"fillmore-labs.com/mute/internal/syntax"
)

// ErrInternal classifies diagnostics caused by inconsistencies in the rewriter itself.
var ErrInternal = errors.New("internal error")

// InternalError reports an internal inconsistency at node n.
func InternalError(r *report.Diagnostics, c CurrentFile, n *syntax.Node, format string, args ...any) {
	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	var offset int
	if n != nil {
		offset = n.Span.Start
	}

	r.Report(report.Diagnostic{
		Pos:      c.Position(offset),
		Severity: report.Error,
		Message:  string(msg),
		Err:      ErrInternal,
	})
}
