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

// Package icon places icon files inside target folders, converting other
// image formats to ICO on the way.
package icon

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/walteh/foldericon/pkg/attrs"
	"gitlab.com/tozd/go/errors"
)

// Extension is the icon container extension.
const Extension = ".ico"

// 📦 Materializer ensures an icon file exists inside a target folder
type Materializer struct {
	store attrs.Store
	codec Codec
	sizes []int
}

// 🏭 NewMaterializer creates a materializer. A nil codec selects ImageCodec.
func NewMaterializer(store attrs.Store, codec Codec) *Materializer {
	if codec == nil {
		codec = NewImageCodec()
	}
	return &Materializer{
		store: store,
		codec: codec,
		sizes: DefaultSizes,
	}
}

// IsIcon reports whether path already has the icon extension.
func IsIcon(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

// IconFileName returns the name the icon gets inside the target folder:
// the base name for icon sources, the stem plus ".ico" otherwise.
func IconFileName(src string) string {
	base := filepath.Base(src)
	if IsIcon(src) {
		return base
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + Extension
}

// 🎯 Materialize copies or converts src into folder, hides the result and
// returns its file name. An existing icon is unprotected for the write and
// hidden again afterwards, even when the write fails.
func (m *Materializer) Materialize(ctx context.Context, folder, src string) (_ string, err error) {
	logger := zerolog.Ctx(ctx)

	name := IconFileName(src)
	dst := filepath.Join(folder, name)

	g, err := attrs.Acquire(ctx, m.store, dst, attrs.Hidden)
	if err != nil {
		return "", errors.Errorf("unprotecting existing icon: %w", err)
	}
	defer g.ReleaseInto(ctx, &err)

	switch {
	case !IsIcon(src):
		logger.Debug().Str("source", src).Str("destination", dst).Msg("converting image to icon")
		if err := m.codec.Convert(ctx, src, dst, m.sizes); err != nil {
			return "", err
		}
	case sameFile(src, dst):
		logger.Debug().Str("icon", dst).Msg("icon already in place")
	default:
		if err := copyFile(src, dst); err != nil {
			return "", errors.Errorf("copying icon: %w", err)
		}
	}

	ev := logger.Debug().Str("icon", dst)
	if info, err := os.Stat(dst); err == nil {
		ev = ev.Str("size", humanize.Bytes(uint64(info.Size())))
	}
	ev.Msg("icon materialized")

	return name, nil
}

// sameFile reports whether a and b name the same existing file.
func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}

	if _, err := io.Copy(destination, source); err != nil {
		destination.Close()
		return errors.Errorf("copying file: %w", err)
	}

	if err := destination.Close(); err != nil {
		return errors.Errorf("closing destination file: %w", err)
	}
	return nil
}
