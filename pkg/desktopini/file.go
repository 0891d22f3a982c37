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

// Package desktopini edits the per-folder desktop.ini that points a folder
// at its custom icon.
package desktopini

import (
	"bytes"
	"os"
	"slices"
	"strings"

	"github.com/walteh/foldericon/pkg/textenc"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/ini.v1"
)

// desktop.ini
// [.ShellClassInfo]
// IconResource = xxx.ico,0
const (
	FileName = "desktop.ini"
	Section  = ".ShellClassInfo"
	IconKey  = "IconResource"
)

var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	AllowBooleanKeys:        true,
	PreserveSurroundedQuote: true,
	KeyValueDelimiters:      "=",
}

// 📄 File is a parsed desktop.ini that remembers how it was encoded.
type File struct {
	path    string
	cfg     *ini.File
	enc     textenc.Encoding
	trailer string // comment lines after the last key, which ini drops
}

// IconResourceValue selects the first icon resource inside iconName.
func IconResourceValue(iconName string) string {
	return iconName + ",0"
}

// Load parses path, or returns an empty file when it does not exist.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{path: path, cfg: ini.Empty(loadOptions), enc: textenc.UTF8}, nil
		}
		return nil, errors.Errorf("reading %s: %w", path, err)
	}

	text, enc, err := textenc.Decode(data)
	if err != nil {
		return nil, errors.Errorf("decoding %s: %w", path, err)
	}

	cfg, err := ini.LoadSources(loadOptions, []byte(text))
	if err != nil {
		return nil, errors.Errorf("parsing %s: %w", path, err)
	}

	return &File{path: path, cfg: cfg, enc: enc, trailer: trailingComments(text)}, nil
}

// trailingComments returns the comment block that ends text, if any.
func trailingComments(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	start := len(lines)
	for start > 0 {
		line := strings.TrimSpace(lines[start-1])
		if line != "" && !strings.HasPrefix(line, ";") && !strings.HasPrefix(line, "#") {
			break
		}
		start--
	}

	var comments []string
	for _, line := range lines[start:] {
		if strings.TrimSpace(line) != "" {
			comments = append(comments, line)
		}
	}
	if len(comments) == 0 {
		return ""
	}
	return strings.Join(comments, ini.LineBreak) + ini.LineBreak
}

// Encoding returns the on-disk text encoding.
func (f *File) Encoding() textenc.Encoding {
	return f.enc
}

// IconResource returns the configured icon resource, if any.
func (f *File) IconResource() (string, bool) {
	sec, err := f.cfg.GetSection(Section)
	if err != nil || !slices.Contains(sec.KeyStrings(), IconKey) {
		return "", false
	}
	return sec.Key(IconKey).String(), true
}

// SetIconResource points the folder at iconName, creating the section if needed.
func (f *File) SetIconResource(iconName string) {
	f.cfg.Section(Section).Key(IconKey).SetValue(IconResourceValue(iconName))
}

// RemoveIconResource deletes the icon key and reports whether it was present.
func (f *File) RemoveIconResource() bool {
	sec, err := f.cfg.GetSection(Section)
	if err != nil || !slices.Contains(sec.KeyStrings(), IconKey) {
		return false
	}
	sec.DeleteKey(IconKey)
	return true
}

// 💾 Save writes the file back in its original encoding.
func (f *File) Save() error {
	var buf bytes.Buffer
	if _, err := f.cfg.WriteTo(&buf); err != nil {
		return errors.Errorf("rendering %s: %w", f.path, err)
	}

	text := buf.String()
	if f.trailer != "" && !strings.HasSuffix(text, f.trailer) {
		if text != "" && !strings.HasSuffix(text, "\n") {
			text += ini.LineBreak
		}
		text += f.trailer
	}

	data, err := f.enc.Encode(text)
	if err != nil {
		return errors.Errorf("encoding %s: %w", f.path, err)
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return errors.Errorf("writing %s: %w", f.path, err)
	}
	return nil
}
