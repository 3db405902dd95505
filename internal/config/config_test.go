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

package config_test

import (
	"errors"
	"slices"
	"testing"

	. "fillmore-labs.com/mute/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(Lenient)

	if !b.Enabled(Lenient) || b.Enabled(IncludeGenerated) {
		t.Errorf("Got %v, want only Lenient", b.LogValue())
	}

	b.Set(IncludeGenerated, true)
	b.Set(Lenient, false)
	b.Enable(IgnoreDirectives)

	if got, want := slices.Collect(b.All()), []Config{IncludeGenerated, IgnoreDirectives}; !slices.Equal(got, want) {
		t.Errorf("Got flags %v, want %v", got, want)
	}

	if got, want := b.LogValue().String(), "0x5"; got != want {
		t.Errorf("Got %s, want %s", got, want)
	}
}

func TestConventionsValidate(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		modify func(*Conventions)
		valid  bool
	}{
		{"default", func(*Conventions) {}, true},
		{"underscore_sigil", func(c *Conventions) { c.Sigil = "_" }, true},
		{"empty_sigil", func(c *Conventions) { c.Sigil = "" }, false},
		{"dash_sigil", func(c *Conventions) { c.Sigil = "-" }, false},
		{"empty_package", func(c *Conventions) { c.MarkerPackage = "" }, false},
		{"dotted_hook", func(c *Conventions) { c.HookName = "use.State" }, false},
		{"digit_namespace", func(c *Conventions) { c.HookNamespace = "9React" }, false},
		{"preact", func(c *Conventions) { c.HookNamespace, c.HookName = "hooks", "useSignal" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := DefaultConventions()
			tt.modify(&c)

			err := c.Validate()
			if tt.valid && err != nil {
				t.Errorf("Got unexpected error: %v", err)
			}

			if !tt.valid && !errors.Is(err, ErrInvalidConvention) {
				t.Errorf("Got %v, want %v", err, ErrInvalidConvention)
			}
		})
	}
}
