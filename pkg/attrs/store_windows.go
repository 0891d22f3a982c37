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

//go:build windows

package attrs

import (
	"context"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/sys/windows"
)

// 🪟 winStore uses GetFileAttributesW / SetFileAttributesW.
type winStore struct{}

// NewStore returns the host attribute store.
func NewStore() (Store, error) {
	return winStore{}, nil
}

func (winStore) Get(ctx context.Context, path string) (Attributes, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, errors.Errorf("encoding path %q: %w", path, err)
	}
	a, err := windows.GetFileAttributes(p)
	if err != nil {
		return 0, errors.Errorf("getting attributes of %s: %w", path, err)
	}
	return Attributes(a), nil
}

func (winStore) Set(ctx context.Context, path string, attrs Attributes) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return errors.Errorf("encoding path %q: %w", path, err)
	}
	if err := windows.SetFileAttributes(p, uint32(attrs)); err != nil {
		return errors.Errorf("setting attributes of %s: %w", path, err)
	}
	return nil
}
