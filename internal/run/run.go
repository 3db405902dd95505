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

package run

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/mute/internal/astutil"
	"fillmore-labs.com/mute/internal/config"
	"fillmore-labs.com/mute/internal/marker"
	"fillmore-labs.com/mute/internal/report"
	"fillmore-labs.com/mute/internal/rewrite"
	"fillmore-labs.com/mute/internal/site"
	"fillmore-labs.com/mute/internal/syntax"
)

// Result is the outcome of rewriting one compile unit.
type Result struct {
	// Output is the rewritten source. It is the unchanged input for skipped units.
	Output []byte

	// Stats count the performed rewrites.
	Stats rewrite.Stats

	// Diagnostics lists errors and warnings, in source order.
	Diagnostics report.Diagnostics

	// Skipped is set for generated or excluded units.
	Skipped bool
}

// Run rewrites a single compile unit. All state is local to this call.
func (r *Options) Run(ctx context.Context, filename string, src []byte) (Result, error) {
	if err := r.Conventions.Validate(); err != nil {
		return Result{}, err
	}

	ctx, task := trace.NewTask(ctx, "Mute")
	defer task.End()

	trace.Log(ctx, "file", filename)

	tree, err := syntax.Parse(ctx, src)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", displayName(filename), err)
	}

	currentFile := astutil.NewCurrentFile(filename, src, tree)

	// Skip generated files
	if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		r.log(ctx, slog.LevelDebug, "skipping generated file", filename)

		return Result{Output: src, Skipped: true}, nil
	}

	// Skip files with nolint comment
	if !r.Behavior.Enabled(config.IgnoreDirectives) && currentFile.NoLintFile() {
		r.log(ctx, slog.LevelDebug, "skipping excluded file", filename)

		return Result{Output: src, Skipped: true}, nil
	}

	// Stage 1: resolve and remove the marker import
	resolver := marker.Resolver{Package: r.Conventions.MarkerPackage, Export: r.Conventions.EscapeHatch}
	state, removed := resolver.Resolve(ctx, tree.Root)

	// Stage 2: rewrite all function scopes in one walk
	stage := rewrite.New(r.Conventions, r.Behavior, state, site.New())
	stats, diagnostics := stage.Rewrite(ctx, currentFile, tree.Root)
	stats.RemovedImports = removed

	// Stage 3: print
	result := Result{
		Output:      tree.Bytes(),
		Stats:       stats,
		Diagnostics: diagnostics,
	}

	r.log(ctx, slog.LevelDebug, "rewrote file", filename,
		slog.Any("marker", state), slog.Any("stats", stats), slog.Int("diagnostics", len(diagnostics)))

	return result, diagnostics.Err()
}

func (r *Options) log(ctx context.Context, level slog.Level, msg, filename string, attrs ...slog.Attr) {
	if r.Logger == nil {
		return
	}

	attrs = append([]slog.Attr{slog.String("file", displayName(filename))}, attrs...)
	r.Logger.LogAttrs(ctx, level, msg, attrs...)
}

func displayName(filename string) string {
	if filename == "" {
		return "<stdin>"
	}

	return filename
}
