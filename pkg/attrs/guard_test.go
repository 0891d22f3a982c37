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

package attrs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/foldericon/pkg/attrs"
	"github.com/walteh/foldericon/pkg/attrs/attrstest"
	"gitlab.com/tozd/go/errors"
)

// 🔧 MockStore is a mock implementation of the attrs.Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, path string) (attrs.Attributes, error) {
	result := m.Called(ctx, path)
	return result.Get(0).(attrs.Attributes), result.Error(1)
}

func (m *MockStore) Set(ctx context.Context, path string, a attrs.Attributes) error {
	result := m.Called(ctx, path, a)
	return result.Error(0)
}

func testCtx(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644), "writing file should succeed")
}

func TestAcquireExistingFile(t *testing.T) {
	ctx := testCtx(t)
	store := attrstest.NewMemStore()
	path := filepath.Join(t.TempDir(), "desktop.ini")
	writeFile(t, path)
	store.Preset(path, attrs.Hidden|attrs.System)

	g, err := attrs.Acquire(ctx, store, path, attrs.Hidden|attrs.System)
	require.NoError(t, err, "acquire should succeed")

	got, err := store.Get(ctx, path)
	require.NoError(t, err, "get should succeed")
	assert.Equal(t, attrs.Normal, got, "file should be normal while held")

	require.NoError(t, g.Release(ctx), "release should succeed")
	assert.Equal(t, []attrs.Attributes{attrs.Normal, attrs.Hidden | attrs.System}, store.History(path), "attribute sequence should match")
}

func TestAcquireMissingFileCreatedLater(t *testing.T) {
	ctx := testCtx(t)
	store := attrstest.NewMemStore()
	path := filepath.Join(t.TempDir(), "desktop.ini")

	g, err := attrs.Acquire(ctx, store, path, attrs.Hidden|attrs.System)
	require.NoError(t, err, "acquire should succeed for a missing file")
	assert.Empty(t, store.History(path), "missing file should not be touched")

	writeFile(t, path)
	require.NoError(t, g.Release(ctx), "release should succeed")
	assert.Equal(t, []attrs.Attributes{attrs.Hidden | attrs.System}, store.History(path), "created file should get release attributes")
}

func TestAcquireMissingFileNeverCreated(t *testing.T) {
	ctx := testCtx(t)
	store := attrstest.NewMemStore()
	path := filepath.Join(t.TempDir(), "desktop.ini")

	g, err := attrs.Acquire(ctx, store, path, attrs.Hidden)
	require.NoError(t, err, "acquire should succeed")
	require.NoError(t, g.Release(ctx), "release of a missing file is a no-op")
	assert.Empty(t, store.History(path), "nothing should be set")
}

func TestCaptureRestoresExactMask(t *testing.T) {
	ctx := testCtx(t)
	store := attrstest.NewMemStore()
	path := filepath.Join(t.TempDir(), "desktop.ini")
	writeFile(t, path)

	before := attrs.Hidden | attrs.System | attrs.Archive | attrs.ReadOnly
	store.Preset(path, before)

	g, err := attrs.Capture(ctx, store, path)
	require.NoError(t, err, "capture should succeed")

	got, err := store.Get(ctx, path)
	require.NoError(t, err, "get should succeed")
	assert.Equal(t, attrs.Normal, got, "file should be normal while held")

	require.NoError(t, g.Release(ctx), "release should succeed")
	got, err = store.Get(ctx, path)
	require.NoError(t, err, "get should succeed")
	assert.Equal(t, before, got, "captured mask should be restored exactly")
}

func TestReleaseIntoKeepsFirstError(t *testing.T) {
	ctx := testCtx(t)
	path := filepath.Join(t.TempDir(), "desktop.ini")
	writeFile(t, path)

	store := &MockStore{}
	store.On("Set", mock.Anything, path, attrs.Normal).Return(nil)
	store.On("Set", mock.Anything, path, attrs.Hidden).Return(errors.New("denied"))

	g, err := attrs.Acquire(ctx, store, path, attrs.Hidden)
	require.NoError(t, err, "acquire should succeed")

	first := errors.New("write failed")
	err = first
	g.ReleaseInto(ctx, &err)
	assert.Equal(t, first, err, "earlier error should be kept")

	err = nil
	g.ReleaseInto(ctx, &err)
	require.Error(t, err, "release error should be reported")
	assert.Contains(t, err.Error(), "denied", "release error should carry the cause")

	store.AssertExpectations(t)
}

func TestCaptureGetError(t *testing.T) {
	ctx := testCtx(t)
	store := &MockStore{}
	store.On("Get", mock.Anything, "x").Return(attrs.Attributes(0), errors.New("no access"))

	_, err := attrs.Capture(ctx, store, "x")
	require.Error(t, err, "capture should fail")
	assert.Contains(t, err.Error(), "reading attributes of x: no access", "error should be wrapped")
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttributesString(t *testing.T) {
	assert.Equal(t, "hidden|system", (attrs.Hidden | attrs.System).String(), "combined attributes")
	assert.Equal(t, "normal", attrs.Normal.String(), "normal")
	assert.Equal(t, "none", attrs.Attributes(0).String(), "empty mask")
	assert.True(t, (attrs.Hidden | attrs.System).Has(attrs.Hidden), "has hidden")
	assert.False(t, attrs.Hidden.Has(attrs.Hidden|attrs.System), "hidden alone lacks system")
}
