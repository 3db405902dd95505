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

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/golangci/plugin-module-register/register"
	"gopkg.in/yaml.v3"
)

// FileNames are the settings file names searched by [Find], in order.
var FileNames = [...]string{".mute.yaml", ".mute.yml"}

// ErrNotFound is returned by [Find] when no settings file exists.
var ErrNotFound = errors.New("settings file not found")

// Parse decodes YAML settings.
func Parse(data []byte) (Settings, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("can't parse settings: %w", err)
	}

	if raw == nil {
		return Settings{}, nil // empty document
	}

	for key := range raw {
		if !knownKeys[key] {
			delete(raw, key) // unknown keys are ignored
		}
	}

	s, err := register.DecodeSettings[Settings](raw)
	if err != nil {
		return Settings{}, fmt.Errorf("can't decode settings: %w", err)
	}

	return s, nil
}

// knownKeys are the json names of the [Settings] fields.
var knownKeys = func() map[string]bool {
	t := reflect.TypeFor[Settings]()
	keys := make(map[string]bool, t.NumField())

	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		keys[name] = true
	}

	return keys
}()

// Load reads and decodes the settings file at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Find searches dir and its parents for a settings file.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)

			info, err := os.Stat(path)
			switch {
			case err == nil && !info.IsDir():
				return path, nil

			case err != nil && !errors.Is(err, fs.ErrNotExist):
				return "", err
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}

		dir = parent
	}
}
