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
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/foldericon/pkg/paths"
	"github.com/walteh/foldericon/pkg/textenc"
	"gitlab.com/tozd/go/errors"
)

func testEnv(t *testing.T) (context.Context, *paths.Resolver) {
	t.Helper()
	r, err := paths.NewResolver(t.TempDir())
	require.NoError(t, err, "creating resolver should succeed")
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	return ctx, r
}

func TestParseEdit(t *testing.T) {
	ctx, r := testEnv(t)

	input := strings.Join([]string{
		"# comment line",
		"",
		"./icons/a:./src/a.png",
		"bad-line-no-colon",
		"  icons/b : src/b.ico  ",
		"a:b:c",
		"   # indented comment",
		"folder::icon.png",
		":only-one",
	}, "\n")

	rules, err := ParseEdit(ctx, strings.NewReader(input), r)
	require.NoError(t, err, "parsing should succeed")
	require.Len(t, rules, 6, "comments and blank lines should not produce rules")

	tests := []struct {
		idx        int
		line       int
		status     Status
		folder     string
		icon       string
		errorInfo  string
		wantSource string
	}{
		{idx: 0, line: 3, status: StatusPending, folder: r.Abs("icons/a"), icon: r.Abs("src/a.png"), errorInfo: NoError, wantSource: "./icons/a:./src/a.png"},
		{idx: 1, line: 4, status: StatusFailed, errorInfo: FormatError, wantSource: "bad-line-no-colon"},
		{idx: 2, line: 5, status: StatusPending, folder: r.Abs("icons/b"), icon: r.Abs("src/b.ico"), errorInfo: NoError, wantSource: "icons/b : src/b.ico"},
		{idx: 3, line: 6, status: StatusFailed, errorInfo: FormatError, wantSource: "a:b:c"},
		{idx: 4, line: 8, status: StatusPending, folder: r.Abs("folder"), icon: r.Abs("icon.png"), errorInfo: NoError, wantSource: "folder::icon.png"},
		{idx: 5, line: 9, status: StatusFailed, errorInfo: FormatError, wantSource: ":only-one"},
	}

	for _, tt := range tests {
		got := rules[tt.idx]
		assert.Equal(t, tt.line, got.LineNumber, "line number of rule %d should match", tt.idx)
		assert.Equal(t, tt.status, got.Status, "status of rule %d should match", tt.idx)
		assert.Equal(t, tt.folder, got.FolderPath, "folder of rule %d should match", tt.idx)
		assert.Equal(t, tt.icon, got.IconPath, "icon of rule %d should match", tt.idx)
		assert.Equal(t, tt.errorInfo, got.ErrorInfo, "error info of rule %d should match", tt.idx)
		assert.Equal(t, tt.wantSource, got.Source, "source of rule %d should match", tt.idx)
		assert.Equal(t, KindEdit, got.Kind, "kind of rule %d should be edit", tt.idx)
	}
}

func TestParseRecover(t *testing.T) {
	ctx, r := testEnv(t)

	abs := filepath.Join(r.Base(), "abs", "dir")
	input := "#skip\r\nicons/a\r\n\r\n  " + abs + "  \r\nwith:colon\r\n"

	rules, err := ParseRecover(ctx, strings.NewReader(input), r)
	require.NoError(t, err, "parsing should succeed")
	require.Len(t, rules, 3, "should produce one rule per active line")

	assert.Equal(t, 2, rules[0].LineNumber, "first rule line")
	assert.Equal(t, r.Abs("icons/a"), rules[0].FolderPath, "relative folder should be absolutized")
	assert.Equal(t, 4, rules[1].LineNumber, "second rule line")
	assert.Equal(t, abs, rules[1].FolderPath, "absolute folder should be kept")
	assert.Equal(t, r.Abs("with:colon"), rules[2].FolderPath, "recover lines are not split")

	for _, got := range rules {
		assert.Equal(t, StatusPending, got.Status, "recover rules start pending")
		assert.Equal(t, NoError, got.ErrorInfo, "recover rules start without error")
		assert.Equal(t, KindRecover, got.Kind, "kind should be recover")
		assert.Empty(t, got.IconPath, "recover rules carry no icon")
	}
}

func TestParseFileMissing(t *testing.T) {
	ctx, r := testEnv(t)

	_, err := ParseEditFile(ctx, filepath.Join(r.Base(), "missing.txt"), r)
	require.Error(t, err, "missing edit rule file should fail")
	assert.True(t, errors.Is(err, ErrRuleFileNotFound), "error should be ErrRuleFileNotFound")

	_, err = ParseRecoverFile(ctx, filepath.Join(r.Base(), "missing.txt"), r)
	require.Error(t, err, "missing recover rule file should fail")
	assert.True(t, errors.Is(err, ErrRuleFileNotFound), "error should be ErrRuleFileNotFound")
}

func TestParseEditFileWithBOM(t *testing.T) {
	ctx, r := testEnv(t)

	raw, err := textenc.UTF16LE.Encode("# header\nicons/a:src/a.png\n")
	require.NoError(t, err, "encoding should succeed")

	path := filepath.Join(r.Base(), "edit_rule.txt")
	require.NoError(t, os.WriteFile(path, raw, 0644), "writing rule file should succeed")

	rules, err := ParseEditFile(ctx, path, r)
	require.NoError(t, err, "parsing should succeed")
	require.Len(t, rules, 1, "should produce one rule")
	assert.Equal(t, 2, rules[0].LineNumber, "line number should count the comment")
	assert.Equal(t, r.Abs("icons/a"), rules[0].FolderPath, "folder should match")
}

func TestRuleTransitions(t *testing.T) {
	r := &Rule{Status: StatusPending, ErrorInfo: NoError}
	assert.True(t, r.Pending(), "new rule should be pending")

	r.Fail("boom")
	assert.Equal(t, StatusFailed, r.Status, "status should be failed")
	assert.Equal(t, "boom", r.ErrorInfo, "error info should be recorded")
	assert.False(t, r.Pending(), "failed rule is not pending")

	r2 := &Rule{ErrorInfo: NoError}
	r2.Succeed()
	assert.Equal(t, StatusSuccess, r2.Status, "status should be success")
	assert.Equal(t, "success", r2.Status.String(), "status string")
	assert.Equal(t, "pending", StatusPending.String(), "pending string")
	assert.Equal(t, "failed", StatusFailed.String(), "failed string")
}
