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

package transform

import (
	"context"

	"fillmore-labs.com/mute/internal/astutil"
	"fillmore-labs.com/mute/internal/config"
	"fillmore-labs.com/mute/internal/report"
	"fillmore-labs.com/mute/internal/rewrite"
	"fillmore-labs.com/mute/internal/run"
	"fillmore-labs.com/mute/internal/syntax"
)

type (
	// Stats count the rewrites performed in a compile unit.
	Stats = rewrite.Stats

	// Diagnostic is an error or warning found while rewriting.
	Diagnostic = report.Diagnostic

	// Diagnostics is the list of problems of one compile unit.
	Diagnostics = report.Diagnostics

	// Position is a location in a compile unit.
	Position = report.Position
)

// Errors returned by [Transformer.Transform], to be checked with [errors.Is].
var (
	// ErrSyntax means the source could not be parsed.
	ErrSyntax = syntax.ErrSyntax

	// ErrUnsupportedOperator means a compound assignment to a reactive variable can't be rewritten.
	ErrUnsupportedOperator = rewrite.ErrUnsupportedOperator

	// ErrInvalidConvention means a configured name can't be used in generated code.
	ErrInvalidConvention = config.ErrInvalidConvention

	// ErrInternal means the rewriter hit an inconsistency.
	ErrInternal = astutil.ErrInternal
)

// Result is the outcome of rewriting one compile unit.
type Result struct {
	// Code is the rewritten source.
	Code []byte

	// Stats count the performed rewrites.
	Stats Stats

	// Diagnostics are the reported problems, including warnings.
	Diagnostics Diagnostics

	// Skipped is set when the unit was excluded, Code is the input then.
	Skipped bool
}

// Transformer rewrites compile units. It is safe for concurrent use, every call of
// [Transformer.Transform] works on its own state.
type Transformer struct {
	opts run.Options
}

// New creates a [Transformer] configured by opts.
func New(opts ...Option) *Transformer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	return &Transformer{opts: *r}
}

// Transform rewrites src. filename is only used in diagnostics.
//
// When err wraps [ErrUnsupportedOperator] the result still holds the diagnostics and
// the partially rewritten code.
func (t *Transformer) Transform(ctx context.Context, filename string, src []byte) (Result, error) {
	res, err := t.opts.Run(ctx, filename, src)

	return Result{
		Code:        res.Output,
		Stats:       res.Stats,
		Diagnostics: res.Diagnostics,
		Skipped:     res.Skipped,
	}, err
}
