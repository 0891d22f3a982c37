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
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/foldericon/cmd/foldericon/opts"
	"github.com/walteh/foldericon/pkg/config"
	"github.com/walteh/foldericon/pkg/operation"
)

// NewRecoverCmd creates a new recover command
func NewRecoverCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Restore the default icon of folders",
		Long: `Recover reads the recover rule file, one folder per line, and removes the
custom icon from each folder's desktop.ini. Folders without a desktop.ini
are left pending. A per rule outcome is written to the result file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, resolver, err := ro.Resolve(ctx, cmd, config.ModeRecover)
			if err != nil {
				return err
			}

			ctx = zerolog.Ctx(ctx).With().Str("command", "recover").Logger().WithContext(ctx)
			return run(ctx, ro, cfg, resolver, config.ModeRecover, cfg.RecoverRulePath, operation.NewRecoverOperation)
		},
	}

	cmd.Flags().StringVarP(&ro.RecoverRulePath, opts.FlagRecoverRulePath, "r", config.DefaultRecoverRulePath, "recover rule file path")

	return cmd
}
