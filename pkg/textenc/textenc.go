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

// Package textenc detects and preserves the byte-order-mark encoding of small
// text files such as rule files and desktop.ini.
package textenc

import (
	"bytes"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies how a text file was stored on disk.
type Encoding int

const (
	UTF8    Encoding = iota // plain UTF-8, no BOM
	UTF8BOM                 // UTF-8 with a leading BOM
	UTF16LE                 // UTF-16 little endian with BOM
	UTF16BE                 // UTF-16 big endian with BOM
	ANSI                    // no BOM and not UTF-8: the Windows-1252 code page
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// String returns a string representation of Encoding
func (e Encoding) String() string {
	switch e {
	case UTF8BOM:
		return "utf-8-bom"
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	case ANSI:
		return "windows-1252"
	default:
		return "utf-8"
	}
}

func (e Encoding) codec() encoding.Encoding {
	switch e {
	case UTF8BOM:
		return unicode.UTF8BOM
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case ANSI:
		return charmap.Windows1252
	default:
		return unicode.UTF8
	}
}

// Detect reports the encoding implied by the leading bytes of b. Text
// without a BOM that is not valid UTF-8 is taken to be ANSI.
func Detect(b []byte) Encoding {
	switch {
	case bytes.HasPrefix(b, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(b, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(b, bomUTF16BE):
		return UTF16BE
	case !utf8.Valid(b):
		return ANSI
	default:
		return UTF8
	}
}

// 🔍 Decode converts b to a UTF-8 string without BOM and reports the
// encoding it was stored in.
func Decode(b []byte) (string, Encoding, error) {
	enc := Detect(b)
	out, err := enc.codec().NewDecoder().Bytes(b)
	if err != nil {
		return "", enc, errors.Errorf("decoding %s text: %w", enc, err)
	}
	return string(out), enc, nil
}

// 📝 Encode converts s back into the on-disk representation of e. Text the
// code page of e cannot represent is an error, never a lossy substitute.
func (e Encoding) Encode(s string) ([]byte, error) {
	out, err := e.codec().NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Errorf("encoding %s text: %w", e, err)
	}
	return out, nil
}
