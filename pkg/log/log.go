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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	ruleIndent  = 4  // spaces to indent rule entries
	statusWidth = 10 // Width for status text
)

// 🎯 RuleOutcome is the console view of one processed rule
type RuleOutcome struct {
	Folder string // Absolute folder path
	Source string // Raw rule line
	Line   int    // 1-based line in the rule file
	Status string // pending / success / failed
	Error  string // Failure reason, empty or "None" when there is none
}

// 📦 RunOperation describes one edit or recover run
type RunOperation struct {
	Mode     string // edit or recover
	RulePath string // Rule file being processed
	Rules    int    // Number of parsed rules
}

// 📊 Summary counts the outcomes logged during a run
type Summary struct {
	Succeeded int
	Failed    int
	Pending   int
}

// Total returns the number of outcomes.
func (s Summary) Total() int {
	return s.Succeeded + s.Failed + s.Pending
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentRun *RunOperation
	outcomes   []RuleOutcome
}

// 🏭 New creates a new logger that prints to console and mirrors every
// line to zlog
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 formatRuleOutcome formats a rule outcome for display
func (l *Logger) formatRuleOutcome(op RuleOutcome) string {
	var symbol rune
	var symbolColor color.Attribute
	switch op.Status {
	case "success":
		symbol = '✓'
		symbolColor = color.FgGreen
	case "failed":
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '•'
		symbolColor = color.FgYellow
	}

	folder := op.Folder
	if folder == "" {
		folder = op.Source
	}

	line := fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", ruleIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", statusWidth, op.Status),
		folder,
		color.New(color.Faint).Sprintf("(line %d)", op.Line))

	if op.Error != "" && op.Error != "None" {
		line += ": " + color.New(color.FgRed).Sprint(op.Error)
	}
	return line
}

// 📝 LogRuleOutcome logs the outcome of one rule
func (l *Logger) LogRuleOutcome(ctx context.Context, op RuleOutcome) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.outcomes = append(l.outcomes, op)

	fmt.Fprintln(l.console, l.formatRuleOutcome(op))

	ev := l.zlog.Info()
	if op.Status == "failed" {
		ev = l.zlog.Warn()
	}
	ev.
		Str("folder", op.Folder).
		Str("source", op.Source).
		Int("line", op.Line).
		Str("status", op.Status).
		Str("error", op.Error).
		Msg("rule processed")
}

// 📝 StartRun starts a new run
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentRun = &op
	l.outcomes = nil

	fmt.Fprintf(l.console, "[%s %s]\n",
		color.New(color.FgMagenta).Sprint(op.Mode),
		color.New(color.FgCyan).Sprint(op.RulePath))

	l.zlog.Info().
		Str("mode", op.Mode).
		Str("rules_file", op.RulePath).
		Int("rules", op.Rules).
		Msg("starting run")
}

// 📝 EndRun ends the current run and returns its summary
func (l *Logger) EndRun(ctx context.Context) Summary {
	l.mu.Lock()
	defer l.mu.Unlock()

	var s Summary
	for _, op := range l.outcomes {
		switch op.Status {
		case "success":
			s.Succeeded++
		case "failed":
			s.Failed++
		default:
			s.Pending++
		}
	}

	if l.currentRun == nil {
		return s
	}

	l.zlog.Info().
		Str("mode", l.currentRun.Mode).
		Int("succeeded", s.Succeeded).
		Int("failed", s.Failed).
		Int("pending", s.Pending).
		Msg("run complete")

	l.currentRun = nil
	l.outcomes = nil
	return s
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nameText := color.New(color.Bold, color.FgCyan).Sprint("foldericon")
	fmt.Fprintf(l.console, "\n%s %s\n\n", nameText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
