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

package opts

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/foldericon/cmd/foldericon/ui"
	"github.com/walteh/foldericon/pkg/attrs"
	"github.com/walteh/foldericon/pkg/config"
	"github.com/walteh/foldericon/pkg/paths"
	"gitlab.com/tozd/go/errors"
)

// 🚩 Flag names shared by the root and sub commands
const (
	FlagConfig          = "config"
	FlagDebug           = "debug"
	FlagResultPath      = "result-path"
	FlagBaseDir         = "base-dir"
	FlagOnly            = "only"
	FlagEditRulePath    = "edit-rule-path"
	FlagMakeDirs        = "make-dirs"
	FlagRecoverRulePath = "recover-rule-path"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile      string
	Debug           bool
	ResultPath      string
	BaseDir         string
	Only            []string
	EditRulePath    string
	MakeDirs        bool
	RecoverRulePath string

	// NewStore opens the attribute store of the host
	NewStore func() (attrs.Store, error)
	// Console receives the per rule outcome lines
	Console io.Writer
	// UserLogger prints banners and summaries
	UserLogger *ui.UserLogger
}

// 🎯 Resolve builds the run configuration for mode: defaults, then the
// config file, then every flag the user set explicitly. Relative paths
// end up under the base directory, which falls back to the directory of
// the executable.
func (o *RootOpts) Resolve(ctx context.Context, cmd *cobra.Command, mode config.Mode) (*config.Config, *paths.Resolver, error) {
	logger := zerolog.Ctx(ctx)

	cfg := config.Default()

	if o.ConfigFile != "" {
		fileCfg, err := config.Load(ctx, o.ConfigFile)
		if err != nil {
			return nil, nil, errors.Errorf("loading config: %w", err)
		}
		cfg.Merge(fileCfg)
	}

	flags := cmd.Flags()
	if flags.Changed(FlagResultPath) {
		cfg.ResultPath = o.ResultPath
	}
	if flags.Changed(FlagBaseDir) {
		cfg.BaseDir = o.BaseDir
	}
	if flags.Changed(FlagOnly) {
		cfg.Only = append([]string(nil), o.Only...)
	}
	if flags.Changed(FlagDebug) {
		cfg.Debug = o.Debug
	}
	if flags.Changed(FlagEditRulePath) {
		cfg.EditRulePath = o.EditRulePath
	}
	if flags.Changed(FlagMakeDirs) {
		cfg.MakeDirs = o.MakeDirs
	}
	if flags.Changed(FlagRecoverRulePath) {
		cfg.RecoverRulePath = o.RecoverRulePath
	}

	// a config file can ask for debug output too
	SetupLogging(cfg.Debug)

	base := cfg.BaseDir
	if base == "" {
		dir, err := paths.ExecutableDir()
		if err != nil {
			return nil, nil, err
		}
		base = dir
	}

	resolver, err := paths.NewResolver(base)
	if err != nil {
		return nil, nil, err
	}
	cfg.Resolve(resolver)

	if err := cfg.Validate(mode); err != nil {
		return nil, nil, errors.Errorf("invalid config: %w", err)
	}

	logger.Debug().Str("config", cfg.String()).Msg("configuration resolved")
	return cfg, resolver, nil
}

// SetupLogging raises the process log level when debug output was asked for
func SetupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
