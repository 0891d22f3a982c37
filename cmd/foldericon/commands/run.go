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

package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/walteh/foldericon/cmd/foldericon/opts"
	"github.com/walteh/foldericon/pkg/config"
	"github.com/walteh/foldericon/pkg/log"
	"github.com/walteh/foldericon/pkg/operation"
	"github.com/walteh/foldericon/pkg/paths"
	"gitlab.com/tozd/go/errors"
)

type newOperationFunc func(operation.Options) (operation.Operation, error)

// 🏃 run executes one batch and prints its summary
func run(ctx context.Context, ro *opts.RootOpts, cfg *config.Config, resolver *paths.Resolver, mode config.Mode, rulePath string, newOp newOperationFunc) error {
	logger := zerolog.Ctx(ctx)

	store, err := ro.NewStore()
	if err != nil {
		return errors.Errorf("opening attribute store: %w", err)
	}

	console := log.New(ro.Console, *logger)

	op, err := newOp(operation.Options{
		Config:   cfg,
		Resolver: resolver,
		Store:    store,
		Console:  console,
	})
	if err != nil {
		return errors.Errorf("creating %s operation: %w", mode, err)
	}

	console.Header(fmt.Sprintf("%s rules from %s", mode, rulePath))

	if err := operation.NewRunner(logger).Run(ctx, op); err != nil {
		return err
	}

	ro.UserLogger.LogSummary(operation.Summarize(op.Rules()), cfg.ResultPath)
	return nil
}
