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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_rule_outcome",
			op: func(t *testing.T, logger *Logger) {
				logger.LogRuleOutcome(context.Background(), RuleOutcome{
					Folder: "/data/photos",
					Source: "photos:icon.png",
					Line:   3,
					Status: "success",
					Error:  "None",
				})
			},
			wantLogs: []string{
				"✓ success    /data/photos (line 3)",
			},
		},
		{
			name: "log_run",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(context.Background(), RunOperation{
					Mode:     "edit",
					RulePath: "/rules/edit_rule.txt",
					Rules:    2,
				})
			},
			wantLogs: []string{
				"[edit /rules/edit_rule.txt]",
			},
		},
		{
			name: "log_warnings",
			op: func(t *testing.T, logger *Logger) {
				logger.Warning("warning message")
				logger.Warningf("%s does not exist, skipping", "/x/desktop.ini")
			},
			wantLogs: []string{
				"⚠️  warning message",
				"⚠️  /x/desktop.ini does not exist, skipping",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("editing folder icons")
			},
			wantLogs: []string{
				"foldericon • editing folder icons",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestRuleOutcomeFormatting(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		op   RuleOutcome
		want string
	}{
		{
			name: "success",
			op:   RuleOutcome{Folder: "/x/a", Line: 1, Status: "success", Error: "None"},
			want: "    ✓ success    /x/a (line 1)",
		},
		{
			name: "failed",
			op:   RuleOutcome{Folder: "/x/b", Line: 2, Status: "failed", Error: "icon does not exist"},
			want: "    ✗ failed     /x/b (line 2): icon does not exist",
		},
		{
			name: "pending",
			op:   RuleOutcome{Folder: "/x/c", Line: 3, Status: "pending"},
			want: "    • pending    /x/c (line 3)",
		},
		{
			name: "format_error_shows_source",
			op:   RuleOutcome{Source: "no separator", Line: 4, Status: "failed", Error: "format error"},
			want: "    ✗ failed     no separator (line 4): format error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(io.Discard, zerolog.Nop())
			assert.Equal(t, tt.want, logger.formatRuleOutcome(tt.op), "formatted output should match")
		})
	}
}

func TestEndRunSummary(t *testing.T) {
	logger := New(io.Discard, zerolog.Nop())
	ctx := context.Background()

	logger.StartRun(ctx, RunOperation{Mode: "recover", RulePath: "r.txt", Rules: 4})
	logger.LogRuleOutcome(ctx, RuleOutcome{Status: "success"})
	logger.LogRuleOutcome(ctx, RuleOutcome{Status: "success"})
	logger.LogRuleOutcome(ctx, RuleOutcome{Status: "failed", Error: "x"})
	logger.LogRuleOutcome(ctx, RuleOutcome{Status: "pending"})

	s := logger.EndRun(ctx)
	assert.Equal(t, Summary{Succeeded: 2, Failed: 1, Pending: 1}, s)
	assert.Equal(t, 4, s.Total())

	assert.Equal(t, Summary{}, logger.EndRun(ctx), "a second EndRun has nothing to count")
}
