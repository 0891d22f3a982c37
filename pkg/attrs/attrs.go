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

// Package attrs reads and writes host file attributes and scopes temporary
// attribute changes around metadata edits.
package attrs

import (
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🏷️ Attributes is a bitmask of host file attributes.
// Values match the Windows FILE_ATTRIBUTE_* constants.
type Attributes uint32

const (
	ReadOnly  Attributes = 0x01
	Hidden    Attributes = 0x02
	System    Attributes = 0x04
	Directory Attributes = 0x10
	Archive   Attributes = 0x20
	Normal    Attributes = 0x80
)

// ErrUnsupportedPlatform is returned by NewStore on hosts without
// per-file attribute support.
var ErrUnsupportedPlatform = errors.Base("folder icons are only supported on windows")

// Has reports whether all bits of other are set.
func (a Attributes) Has(other Attributes) bool {
	return a&other == other
}

// String returns a string representation of Attributes
func (a Attributes) String() string {
	names := []struct {
		bit  Attributes
		name string
	}{
		{ReadOnly, "readonly"},
		{Hidden, "hidden"},
		{System, "system"},
		{Directory, "directory"},
		{Archive, "archive"},
		{Normal, "normal"},
	}

	var parts []string
	for _, n := range names {
		if a.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// 💾 Store reads and writes attributes of filesystem entries.
type Store interface {
	Get(ctx context.Context, path string) (Attributes, error)
	Set(ctx context.Context, path string, attrs Attributes) error
}
