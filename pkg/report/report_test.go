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

package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/foldericon/pkg/rule"
)

func sampleRules() []*rule.Rule {
	return []*rule.Rule{
		{Source: "./icons/a:./src/a.png", LineNumber: 3, Status: rule.StatusSuccess, FolderPath: "/base/icons/a", ErrorInfo: rule.NoError},
		{Source: "bad-line-no-colon", LineNumber: 12, Status: rule.StatusFailed, ErrorInfo: rule.FormatError},
		{Source: "文件夹:x.png", LineNumber: 14, Status: rule.StatusPending, FolderPath: "/base/文件夹", ErrorInfo: rule.NoError},
	}
}

func TestRenderLayout(t *testing.T) {
	lines := Render(sampleRules(), rule.KindEdit)
	require.Len(t, lines, 3+5, "title, rules, header, separators and rows expected")

	assert.Equal(t, "Edit folder icon result", lines[0], "title")

	width := utf8.RuneCountInString(lines[2])
	assert.Equal(t, strings.Repeat("=", width), lines[1], "top rule should span the row width")
	assert.Equal(t, strings.Repeat("-", width), lines[3], "header rule should span the row width")
	assert.Equal(t, strings.Repeat("=", width), lines[len(lines)-1], "closing rule should span the row width")

	for i, line := range lines[2 : len(lines)-1] {
		if i == 1 {
			continue
		}
		assert.Equal(t, width, utf8.RuneCountInString(line), "row %d should be rectangular", i)
		assert.Len(t, strings.Split(line, ColumnSeparator), len(Headers), "row %d should have every column", i)
	}
}

func TestRenderExact(t *testing.T) {
	rules := []*rule.Rule{
		{Source: "a:b", LineNumber: 1, Status: rule.StatusSuccess, FolderPath: "/x/a", ErrorInfo: rule.NoError},
	}

	want := []string{
		"Recover default icon result",
		strings.Repeat("=", 8+3+17+3+13+3+8+3+12),
		"[status] | [folder abs path] | [line number] | [source] | [error info]",
		strings.Repeat("-", 8+3+17+3+13+3+8+3+12),
		"success  | /x/a              | 1             | a:b      | None        ",
		strings.Repeat("=", 8+3+17+3+13+3+8+3+12),
	}

	assert.Equal(t, want, Render(rules, rule.KindRecover), "rendered table should match")
}

func TestRenderColumnWidths(t *testing.T) {
	rules := sampleRules()
	rules[0].ErrorInfo = "a considerably longer error message than the header"
	lines := Render(rules, rule.KindEdit)

	header := strings.Split(lines[2], ColumnSeparator)
	for i := range Headers {
		w := utf8.RuneCountInString(header[i])
		assert.GreaterOrEqual(t, w, utf8.RuneCountInString(Headers[i]), "column %d should fit its header", i)
		for _, r := range rules {
			assert.GreaterOrEqual(t, w, utf8.RuneCountInString(Row(r)[i]), "column %d should fit every cell", i)
		}
	}
	assert.Equal(t, utf8.RuneCountInString(rules[0].ErrorInfo), utf8.RuneCountInString(header[4]), "widest cell sets the width")
}

func TestRenderEmpty(t *testing.T) {
	lines := Render(nil, rule.KindRecover)
	require.Len(t, lines, 5, "empty report still has a frame")
	assert.Equal(t, strings.Join(Headers, ColumnSeparator), lines[2], "header of an empty report is unpadded")
}

func TestRowEmptyErrorInfo(t *testing.T) {
	row := Row(&rule.Rule{LineNumber: 7})
	assert.Equal(t, []string{"pending", "", "7", "", rule.NoError}, row, "empty error info should render the sentinel")
}

func TestWriteOverwrites(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	path := filepath.Join(t.TempDir(), "result", "result.txt")

	require.NoError(t, Write(ctx, path, []string{"first", "run", "with", "more", "lines"}), "first write should succeed")
	require.NoError(t, Write(ctx, path, []string{"second", "run"}), "second write should succeed")

	got, err := os.ReadFile(path)
	require.NoError(t, err, "reading should succeed")
	assert.Equal(t, "second\nrun", string(got), "report should be regenerated, not appended")

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be gone")
}
