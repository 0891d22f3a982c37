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

// Package report renders the fixed-width outcome table of a run.
package report

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/foldericon/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

// 🎨 Table layout
const (
	ColumnSeparator = " | "
	titleEdit       = "Edit folder icon result"
	titleRecover    = "Recover default icon result"
)

// Headers are the column labels, in order.
var Headers = []string{"[status]", "[folder abs path]", "[line number]", "[source]", "[error info]"}

// Title returns the first report line for the given mode.
func Title(mode rule.Kind) string {
	if mode == rule.KindEdit {
		return titleEdit
	}
	return titleRecover
}

// Row returns the cells of r in column order.
func Row(r *rule.Rule) []string {
	info := r.ErrorInfo
	if info == "" {
		info = rule.NoError
	}
	return []string{r.Status.String(), r.FolderPath, strconv.Itoa(r.LineNumber), r.Source, info}
}

// 📊 Render lays out the outcome table, one row per rule in order.
func Render(rules []*rule.Rule, mode rule.Kind) []string {
	rows := make([][]string, 0, len(rules))
	for _, r := range rules {
		rows = append(rows, Row(r))
	}

	widths := columnWidths(Headers, rows)

	total := len(ColumnSeparator) * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}

	lines := make([]string, 0, len(rows)+5)
	lines = append(lines,
		Title(mode),
		strings.Repeat("=", total),
		formatRow(Headers, widths),
		strings.Repeat("-", total),
	)
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths))
	}
	lines = append(lines, strings.Repeat("=", total))

	return lines
}

func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}
	return widths
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
	}
	return strings.Join(padded, ColumnSeparator)
}

// 💾 Write replaces the file at path with lines joined by newlines,
// creating parent directories as needed.
func Write(ctx context.Context, path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Info().Str("path", path).Msg("result report written")
	return nil
}
