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
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"io"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/image/draw"
)

// DefaultSizes is the set of square representations written into converted icons.
var DefaultSizes = []int{256}

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
	maxIconSize   = 256
)

// 🎨 EncodeICO writes img as an ICO container with one PNG-compressed
// square entry per size. Non-square images are scaled to fit and centered
// on a transparent canvas.
func EncodeICO(w io.Writer, img image.Image, sizes []int) error {
	if len(sizes) == 0 {
		return errors.New("no icon sizes requested")
	}

	frames := make([][]byte, 0, len(sizes))
	for _, size := range sizes {
		if size <= 0 || size > maxIconSize {
			return errors.Errorf("icon size %d out of range 1..%d", size, maxIconSize)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, fit(img, size)); err != nil {
			return errors.Errorf("encoding %dx%d frame: %w", size, size, err)
		}
		frames = append(frames, buf.Bytes())
	}

	var out bytes.Buffer

	// ICONDIR
	binary.Write(&out, binary.LittleEndian, uint16(0))           // reserved
	binary.Write(&out, binary.LittleEndian, uint16(1))           // type: icon
	binary.Write(&out, binary.LittleEndian, uint16(len(frames))) // count

	// ICONDIRENTRY per frame
	offset := uint32(icoHeaderSize + icoEntrySize*len(frames))
	for i, size := range sizes {
		dim := byte(size)
		if size >= maxIconSize {
			dim = 0 // 0 means 256
		}
		out.WriteByte(dim)                                  // width
		out.WriteByte(dim)                                  // height
		out.WriteByte(0)                                    // color palette
		out.WriteByte(0)                                    // reserved
		binary.Write(&out, binary.LittleEndian, uint16(1))  // planes
		binary.Write(&out, binary.LittleEndian, uint16(32)) // bits per pixel
		binary.Write(&out, binary.LittleEndian, uint32(len(frames[i])))
		binary.Write(&out, binary.LittleEndian, offset)
		offset += uint32(len(frames[i]))
	}

	for _, f := range frames {
		out.Write(f)
	}

	if _, err := w.Write(out.Bytes()); err != nil {
		return errors.Errorf("writing icon: %w", err)
	}
	return nil
}

// fit scales img into a size x size canvas, preserving aspect ratio.
func fit(img image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return dst
	}

	tw, th := size, size
	if w > h {
		th = max(1, h*size/w)
	} else if h > w {
		tw = max(1, w*size/h)
	}
	x0 := (size - tw) / 2
	y0 := (size - th) / 2

	draw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+tw, y0+th), img, b, draw.Src, nil)
	return dst
}
