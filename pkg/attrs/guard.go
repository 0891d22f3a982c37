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

package attrs

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔒 Guard holds a file in the Normal state for the duration of an edit.
//
// Release must be deferred right after a successful Acquire or Capture so
// the file never stays Normal past the edit, on success or failure.
type Guard struct {
	store    Store
	path     string
	release  Attributes
	captured bool
}

// Acquire prepares path for writing: if it exists it is set to Normal.
// Release sets it to release if it exists by then.
func Acquire(ctx context.Context, store Store, path string, release Attributes) (*Guard, error) {
	exists, err := fileExists(path)
	if err != nil {
		return nil, err
	}
	if exists {
		if err := store.Set(ctx, path, Normal); err != nil {
			return nil, errors.Errorf("setting %s normal: %w", path, err)
		}
	}
	return &Guard{store: store, path: path, release: release}, nil
}

// Capture records the current attributes of path and sets it to Normal.
// Release restores exactly the captured attributes.
func Capture(ctx context.Context, store Store, path string) (*Guard, error) {
	before, err := store.Get(ctx, path)
	if err != nil {
		return nil, errors.Errorf("reading attributes of %s: %w", path, err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Stringer("attributes", before).Msg("captured attributes")

	if err := store.Set(ctx, path, Normal); err != nil {
		return nil, errors.Errorf("setting %s normal: %w", path, err)
	}
	return &Guard{store: store, path: path, release: before, captured: true}, nil
}

// Release applies the follow-up attributes. It is a no-op when the file
// does not exist.
func (g *Guard) Release(ctx context.Context) error {
	exists, err := fileExists(g.path)
	if err != nil {
		return err
	}
	if !exists {
		if g.captured {
			zerolog.Ctx(ctx).Warn().Str("path", g.path).Msg("file disappeared before attributes could be restored")
		}
		return nil
	}
	if err := g.store.Set(ctx, g.path, g.release); err != nil {
		return errors.Errorf("setting %s %s: %w", g.path, g.release, err)
	}
	return nil
}

// ReleaseInto runs Release and records its error in *errp unless an
// earlier error is already there. Use with defer.
func (g *Guard) ReleaseInto(ctx context.Context, errp *error) {
	if err := g.Release(ctx); err != nil && *errp == nil {
		*errp = err
	}
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}
