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

package settings

import "fillmore-labs.com/mute/transform"

// Settings is the content of a mute settings file.
type Settings struct {
	// Sigil is the prefix marking reactive variables.
	Sigil *string `json:"sigil,omitzero"`
	// MarkerPackage is the import source of the escape hatch.
	MarkerPackage *string `json:"marker-package,omitzero"`
	// EscapeHatch is the exported name of the escape hatch.
	EscapeHatch *string `json:"escape-hatch,omitzero"`
	// HookNamespace is the object the state hook is called on.
	HookNamespace *string `json:"hook-namespace,omitzero"`
	// HookName is the state hook function.
	HookName *string `json:"hook-name,omitzero"`
	// Lenient degrades unsupported compound assignments to an empty updater call.
	Lenient *bool `json:"lenient,omitzero"`
	// Generated enables rewriting of generated files.
	Generated *bool `json:"generated,omitzero"`
	// IgnoreDirectives disables //nolint:mute comments.
	IgnoreDirectives *bool `json:"ignore-directives,omitzero"`
}

// Options converts the set fields to transformer options.
func (s Settings) Options() []transform.Option {
	var opts []transform.Option

	opts = appendOption(opts, s.Sigil, transform.WithSigil)
	opts = appendOption(opts, s.MarkerPackage, transform.WithMarkerPackage)
	opts = appendOption(opts, s.EscapeHatch, transform.WithEscapeHatch)
	opts = appendOption(opts, s.HookNamespace, transform.WithHookNamespace)
	opts = appendOption(opts, s.HookName, transform.WithHookName)
	opts = appendOption(opts, s.Lenient, transform.WithLenient)
	opts = appendOption(opts, s.Generated, transform.WithGenerated)
	if s.IgnoreDirectives != nil {
		opts = append(opts, transform.WithDirectives(!*s.IgnoreDirectives))
	}

	return opts
}

func appendOption[T any](opts []transform.Option, value *T, constructor func(T) transform.Option) []transform.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
