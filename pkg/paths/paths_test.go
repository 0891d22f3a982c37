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

package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverAbs(t *testing.T) {
	base := t.TempDir()
	r, err := NewResolver(base)
	require.NoError(t, err, "creating resolver should succeed")

	abs := filepath.Join(base, "already", "abs")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "relative", in: "icons/a", want: filepath.Join(base, "icons", "a")},
		{name: "dot_relative", in: "./icons/a", want: filepath.Join(base, "icons", "a")},
		{name: "parent_relative", in: "../x", want: filepath.Join(filepath.Dir(base), "x")},
		{name: "absolute", in: abs, want: abs},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Abs(tt.in)
			assert.Equal(t, tt.want, got, "resolved path should match")
			if got != "" {
				assert.True(t, filepath.IsAbs(got), "resolved path should be absolute")
			}
		})
	}
}

func TestNewResolverRelativeBase(t *testing.T) {
	r, err := NewResolver("some/dir")
	require.NoError(t, err, "creating resolver should succeed")
	assert.True(t, filepath.IsAbs(r.Base()), "base should be absolutized")
}

func TestExecutableDir(t *testing.T) {
	dir, err := ExecutableDir()
	require.NoError(t, err, "locating executable dir should succeed")
	assert.True(t, filepath.IsAbs(dir), "executable dir should be absolute")
}
