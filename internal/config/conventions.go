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

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidConvention is returned when a naming convention can't be used in generated code.
var ErrInvalidConvention = errors.New("invalid naming convention")

// Conventions are the names the rewriter recognizes and generates.
type Conventions struct {
	// Sigil is the prefix marking reactive variables.
	Sigil string

	// MarkerPackage is the import source of the escape hatch.
	MarkerPackage string

	// EscapeHatch is the exported name of the compile-time escape hatch.
	EscapeHatch string

	// HookNamespace is the object the state hook is called on.
	HookNamespace string

	// HookName is the state hook function.
	HookName string
}

// DefaultConventions returns the React conventions.
func DefaultConventions() Conventions {
	return Conventions{
		Sigil:         "$",
		MarkerPackage: "mute",
		EscapeHatch:   "$mut",
		HookNamespace: "React",
		HookName:      "useState",
	}
}

// Validate checks that all names are usable in generated code.
func (c Conventions) Validate() error {
	if c.Sigil == "" {
		return fmt.Errorf("%w: empty sigil", ErrInvalidConvention)
	}

	if !isIdentifier("a" + c.Sigil) {
		return fmt.Errorf("%w: sigil %q is not an identifier prefix", ErrInvalidConvention, c.Sigil)
	}

	if c.MarkerPackage == "" {
		return fmt.Errorf("%w: empty marker package", ErrInvalidConvention)
	}

	for _, n := range [...]struct{ what, name string }{
		{"escape hatch", c.EscapeHatch},
		{"hook namespace", c.HookNamespace},
		{"hook name", c.HookName},
	} {
		if !isIdentifier(n.name) {
			return fmt.Errorf("%w: %s %q is not an identifier", ErrInvalidConvention, n.what, n.name)
		}
	}

	return nil
}

// LogValue implements [slog.LogValuer].
func (c Conventions) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("sigil", c.Sigil),
		slog.String("marker", c.MarkerPackage),
		slog.String("escape", c.EscapeHatch),
		slog.String("hook", c.HookNamespace+"."+c.HookName),
	)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	first, _ := utf8.DecodeRuneInString(s)
	if unicode.IsDigit(first) {
		return false
	}

	for _, r := range s {
		if r != '$' && r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
