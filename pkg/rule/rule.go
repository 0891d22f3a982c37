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

// Package rule models the lines of edit and recover rule files.
package rule

// 📊 Status represents the processing state of a rule
type Status int

const (
	StatusPending Status = iota // not processed, or skipped
	StatusSuccess               // applied
	StatusFailed                // rejected or errored
)

// String returns a string representation of Status
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Kind discriminates the payload carried by a Rule.
type Kind int

const (
	KindEdit Kind = iota
	KindRecover
)

// NoError is the ErrorInfo of a rule that has not failed.
const NoError = "None"

// 📄 Rule is one active line of a rule file.
//
// Paths are absolute whenever non-empty. IconPath is only set for KindEdit.
type Rule struct {
	Source     string // trimmed line text, for reporting
	LineNumber int    // 1-based position in the file
	Status     Status
	FolderPath string
	ErrorInfo  string

	Kind     Kind
	IconPath string
}

// Fail marks the rule as failed with msg.
func (r *Rule) Fail(msg string) {
	r.Status = StatusFailed
	r.ErrorInfo = msg
}

// Succeed marks the rule as applied.
func (r *Rule) Succeed() {
	r.Status = StatusSuccess
}

// Pending reports whether the rule still needs processing.
func (r *Rule) Pending() bool {
	return r.Status == StatusPending
}
