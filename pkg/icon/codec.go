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

package icon

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// 🔄 Codec rasterizes an arbitrary image file into an icon file.
type Codec interface {
	Convert(ctx context.Context, src, dst string, sizes []int) error
}

// ConversionError reports a source image that could not be turned into an icon.
type ConversionError struct {
	Source string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("converting %s: %v", e.Source, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ImageCodec decodes png, jpeg, gif, bmp, tiff and webp sources.
type ImageCodec struct{}

// NewImageCodec creates the default codec
func NewImageCodec() *ImageCodec {
	return &ImageCodec{}
}

// Convert decodes src and writes it to dst as an ICO container.
func (c *ImageCodec) Convert(ctx context.Context, src, dst string, sizes []int) error {
	f, err := os.Open(src)
	if err != nil {
		return &ConversionError{Source: src, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return &ConversionError{Source: src, Err: err}
	}
	zerolog.Ctx(ctx).Debug().
		Str("source", src).
		Str("format", format).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("decoded source image")

	out, err := os.Create(dst)
	if err != nil {
		return errors.Errorf("creating icon file: %w", err)
	}

	if err := EncodeICO(out, img, sizes); err != nil {
		out.Close()
		return &ConversionError{Source: src, Err: err}
	}

	if err := out.Close(); err != nil {
		return errors.Errorf("closing icon file: %w", err)
	}
	return nil
}
