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

import "log/slog"

// Stats counts the rewrites performed in a compile unit.
type Stats struct {
	// Functions is the number of visited function scopes.
	Functions int

	// Declarations is the number of declarators turned into state hooks.
	Declarations int

	// Forwarded is the number of declarators whose escape hatch wrapper was stripped.
	Forwarded int

	// Assignments is the number of assignments turned into updater calls.
	Assignments int

	// Reads is the number of reads turned into accessors.
	Reads int

	// Unwrapped is the number of escape hatch calls replaced by their argument.
	Unwrapped int

	// RemovedImports is the number of removed marker imports.
	RemovedImports int
}

// Changed reports whether any rewrite happened.
func (s Stats) Changed() bool {
	return s != Stats{Functions: s.Functions}
}

// Add accumulates the counts of o.
func (s *Stats) Add(o Stats) {
	s.Functions += o.Functions
	s.Declarations += o.Declarations
	s.Forwarded += o.Forwarded
	s.Assignments += o.Assignments
	s.Reads += o.Reads
	s.Unwrapped += o.Unwrapped
	s.RemovedImports += o.RemovedImports
}

// LogValue implements [slog.LogValuer].
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("functions", s.Functions),
		slog.Int("declarations", s.Declarations),
		slog.Int("forwarded", s.Forwarded),
		slog.Int("assignments", s.Assignments),
		slog.Int("reads", s.Reads),
		slog.Int("unwrapped", s.Unwrapped),
		slog.Int("removedImports", s.RemovedImports),
	)
}
