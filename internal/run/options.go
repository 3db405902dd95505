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
	"log/slog"

	"fillmore-labs.com/mute/internal/config"
)

// Options represent the configuration of the rewrite pipeline.
type Options struct {
	// Conventions hold the recognized and generated names.
	Conventions config.Conventions

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Logger receives per-unit debug records. Nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns the React conventions with default behavior.
func DefaultOptions() *Options {
	return &Options{
		Conventions: config.DefaultConventions(),
		Behavior:    config.DefaultBehavior(),
	}
}
