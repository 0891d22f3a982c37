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

// Package attrstest provides an in-memory attrs.Store for tests on any OS.
package attrstest

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/walteh/foldericon/pkg/attrs"
	"gitlab.com/tozd/go/errors"
)

// Change is one recorded Set call.
type Change struct {
	Path  string
	Attrs attrs.Attributes
}

// MemStore keeps attributes in memory while checking existence on the real
// filesystem, so it behaves like the host store against t.TempDir trees.
type MemStore struct {
	mu      sync.Mutex
	attrs   map[string]attrs.Attributes
	history []Change
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{attrs: make(map[string]attrs.Attributes)}
}

func (m *MemStore) Get(ctx context.Context, path string) (attrs.Attributes, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, errors.Errorf("getting attributes of %s: %w", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if a, ok := m.attrs[filepath.Clean(path)]; ok {
		return a, nil
	}
	if info.IsDir() {
		return attrs.Directory, nil
	}
	return attrs.Normal, nil
}

func (m *MemStore) Set(ctx context.Context, path string, a attrs.Attributes) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Errorf("setting attributes of %s: %w", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.attrs[filepath.Clean(path)] = a
	m.history = append(m.history, Change{Path: filepath.Clean(path), Attrs: a})
	return nil
}

// Preset stores a without recording a change.
func (m *MemStore) Preset(path string, a attrs.Attributes) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attrs[filepath.Clean(path)] = a
}

// History returns the Set calls made for path, in order.
func (m *MemStore) History(path string) []attrs.Attributes {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []attrs.Attributes
	for _, c := range m.history {
		if c.Path == filepath.Clean(path) {
			out = append(out, c.Attrs)
		}
	}
	return out
}
