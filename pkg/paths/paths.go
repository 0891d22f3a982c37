// Copyright 2025 walteh LLC
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

// Package paths resolves rule and config paths against a fixed base directory.
package paths

import (
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 📂 Resolver absolutizes relative paths against a base directory
type Resolver struct {
	base string
}

// 🏭 NewResolver creates a resolver rooted at base. A relative base is
// absolutized against the working directory.
func NewResolver(base string) (*Resolver, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, errors.Errorf("resolving base directory %q: %w", base, err)
	}
	return &Resolver{base: abs}, nil
}

// Base returns the absolute base directory.
func (r *Resolver) Base() string {
	return r.base
}

// 🔒 Abs returns p unchanged (cleaned) when it is already absolute, and
// joined onto the base otherwise. The empty path stays empty.
func (r *Resolver) Abs(p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(r.base, p)
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
