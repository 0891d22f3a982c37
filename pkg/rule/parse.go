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

package rule

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/foldericon/pkg/paths"
	"github.com/walteh/foldericon/pkg/textenc"
	"gitlab.com/tozd/go/errors"
)

const (
	// IgnoreMarker starts a comment line.
	IgnoreMarker = "#"
	// FieldSeparator splits the folder and icon fields of an edit rule.
	FieldSeparator = ":"
	// FormatError is the ErrorInfo of an edit line without exactly two fields.
	FormatError = "format error"
)

// ErrRuleFileNotFound is returned when the rule file does not exist.
var ErrRuleFileNotFound = errors.Base("rule file does not exist")

// 📖 ParseEditFile reads an edit rule file.
func ParseEditFile(ctx context.Context, path string, r *paths.Resolver) ([]*Rule, error) {
	return parseFile(ctx, path, func(rd io.Reader) ([]*Rule, error) {
		return ParseEdit(ctx, rd, r)
	})
}

// 📖 ParseRecoverFile reads a recover rule file.
func ParseRecoverFile(ctx context.Context, path string, r *paths.Resolver) ([]*Rule, error) {
	return parseFile(ctx, path, func(rd io.Reader) ([]*Rule, error) {
		return ParseRecover(ctx, rd, r)
	})
}

func parseFile(ctx context.Context, path string, parse func(io.Reader) ([]*Rule, error)) ([]*Rule, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("parsing rule file")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("%w: %s", ErrRuleFileNotFound, path)
		}
		return nil, errors.Errorf("reading rule file: %w", err)
	}

	text, _, err := textenc.Decode(data)
	if err != nil {
		return nil, errors.Errorf("decoding rule file %s: %w", path, err)
	}

	rules, err := parse(strings.NewReader(text))
	if err != nil {
		return nil, errors.Errorf("parsing rule file %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("rules", len(rules)).Msg("parsed rule file")
	return rules, nil
}

// ParseEdit parses `<folder>:<icon>` lines. Lines that do not split into
// exactly two non-empty fields become failed rules with empty paths.
func ParseEdit(ctx context.Context, rd io.Reader, r *paths.Resolver) ([]*Rule, error) {
	return scan(rd, func(line string, number int) *Rule {
		fields := splitFields(line)
		if len(fields) != 2 {
			zerolog.Ctx(ctx).Debug().Int("line", number).Str("source", line).Msg("malformed edit rule")
			return &Rule{
				Source:     line,
				LineNumber: number,
				Status:     StatusFailed,
				ErrorInfo:  FormatError,
				Kind:       KindEdit,
			}
		}
		return &Rule{
			Source:     line,
			LineNumber: number,
			Status:     StatusPending,
			FolderPath: r.Abs(fields[0]),
			ErrorInfo:  NoError,
			Kind:       KindEdit,
			IconPath:   r.Abs(fields[1]),
		}
	})
}

// ParseRecover parses folder lines; the whole trimmed line is the folder.
func ParseRecover(ctx context.Context, rd io.Reader, r *paths.Resolver) ([]*Rule, error) {
	return scan(rd, func(line string, number int) *Rule {
		return &Rule{
			Source:     line,
			LineNumber: number,
			Status:     StatusPending,
			FolderPath: r.Abs(line),
			ErrorInfo:  NoError,
			Kind:       KindRecover,
		}
	})
}

func scan(rd io.Reader, build func(line string, number int) *Rule) ([]*Rule, error) {
	s := bufio.NewScanner(rd)
	rules := make([]*Rule, 0, 16)

	number := 0
	for s.Scan() {
		number++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, IgnoreMarker) {
			continue
		}
		rules = append(rules, build(line, number))
	}

	if err := s.Err(); err != nil {
		return nil, errors.Errorf("scanning rules: %w", err)
	}

	return rules, nil
}

func splitFields(line string) []string {
	parts := strings.Split(line, FieldSeparator)
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}
