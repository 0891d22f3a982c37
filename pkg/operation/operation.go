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

package operation

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/foldericon/pkg/attrs"
	"github.com/walteh/foldericon/pkg/config"
	"github.com/walteh/foldericon/pkg/desktopini"
	"github.com/walteh/foldericon/pkg/icon"
	"github.com/walteh/foldericon/pkg/log"
	"github.com/walteh/foldericon/pkg/paths"
	"github.com/walteh/foldericon/pkg/report"
	"github.com/walteh/foldericon/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

// 🚨 Per-rule failures recorded as the rule's error info
var (
	ErrFolderNotFound = errors.Base("target folder does not exist")
	ErrNotAFolder     = errors.Base("target path is not a folder")
	ErrIconNotFound   = errors.Base("icon does not exist")
)

// 🎯 Operation is one edit or recover run over a rule file
type Operation interface {
	// Execute parses the rule file, applies every rule and writes the report
	Execute(ctx context.Context) error
	// Rules returns the rules in file order with their final status
	Rules() []*rule.Rule
	// Mode returns the kind of rules this operation consumes
	Mode() rule.Kind
}

// 🔧 Options contains the collaborators of an operation
type Options struct {
	// Config is the resolved run configuration
	Config *config.Config
	// Resolver absolutizes paths found in rule files
	Resolver *paths.Resolver
	// Store reads and writes file attributes
	Store attrs.Store
	// Materializer places icons in folders; built from Store when nil
	Materializer *icon.Materializer
	// Editor edits desktop.ini; built from Store when nil
	Editor *desktopini.Editor
	// Console echoes rule outcomes; optional
	Console *log.Logger
}

func (o *Options) validate() error {
	if o.Config == nil {
		return errors.Errorf("config is required")
	}
	if o.Resolver == nil {
		return errors.Errorf("resolver is required")
	}
	if o.Store == nil {
		return errors.Errorf("attribute store is required")
	}
	if o.Materializer == nil {
		o.Materializer = icon.NewMaterializer(o.Store, nil)
	}
	if o.Editor == nil {
		o.Editor = desktopini.NewEditor(o.Store)
	}
	return nil
}

// 📦 BaseOperation holds what edit and recover share
type BaseOperation struct {
	Options
	mode  rule.Kind
	rules []*rule.Rule
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options, mode rule.Kind) (BaseOperation, error) {
	if err := opts.validate(); err != nil {
		return BaseOperation{}, errors.Errorf("invalid options: %w", err)
	}
	return BaseOperation{Options: opts, mode: mode}, nil
}

func (op *BaseOperation) Rules() []*rule.Rule {
	return op.rules
}

func (op *BaseOperation) Mode() rule.Kind {
	return op.mode
}

func (op *BaseOperation) modeName() string {
	if op.mode == rule.KindRecover {
		return string(config.ModeRecover)
	}
	return string(config.ModeEdit)
}

// 🔁 run applies fn to every pending, selected rule in order. A failing rule
// is marked failed and the batch moves on. The report is written even when
// the context is cancelled between rules.
func (op *BaseOperation) run(ctx context.Context, rulePath string, fn func(ctx context.Context, r *rule.Rule) error) (err error) {
	logger := zerolog.Ctx(ctx)

	if op.Console != nil {
		op.Console.StartRun(ctx, log.RunOperation{Mode: op.modeName(), RulePath: rulePath, Rules: len(op.rules)})
	}

	defer func() {
		if op.Console != nil {
			op.Console.EndRun(ctx)
		}
		if werr := report.Write(ctx, op.Config.ResultPath, report.Render(op.rules, op.mode)); werr != nil && err == nil {
			err = errors.Errorf("writing report: %w", werr)
		}
	}()

	for _, r := range op.rules {
		if cerr := ctx.Err(); cerr != nil {
			return errors.Errorf("operation cancelled: %w", cerr)
		}

		if r.Pending() && !op.Config.Selects(r.FolderPath) {
			logger.Debug().Str("folder", r.FolderPath).Int("line", r.LineNumber).Msg("rule filtered out")
			op.record(ctx, r)
			continue
		}

		if r.Pending() {
			if ferr := fn(ctx, r); ferr != nil {
				logger.Debug().Err(ferr).Str("folder", r.FolderPath).Int("line", r.LineNumber).Msg("rule failed")
				r.Fail(ferr.Error())
			}
		}

		op.record(ctx, r)
	}

	return nil
}

func (op *BaseOperation) record(ctx context.Context, r *rule.Rule) {
	if op.Console == nil {
		return
	}
	op.Console.LogRuleOutcome(ctx, log.RuleOutcome{
		Folder: r.FolderPath,
		Source: r.Source,
		Line:   r.LineNumber,
		Status: r.Status.String(),
		Error:  r.ErrorInfo,
	})
}

// warn reports a soft problem on the console, or only to the process log
// when there is no console.
func (op *BaseOperation) warn(ctx context.Context, format string, args ...interface{}) {
	if op.Console != nil {
		op.Console.Warningf(format, args...)
		return
	}
	zerolog.Ctx(ctx).Warn().Msgf(format, args...)
}

// statPath returns the file info for path, or nil when it does not exist.
func statPath(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Errorf("checking %s: %w", path, err)
	}
	return info, nil
}
