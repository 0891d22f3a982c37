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

// NewEditCmd creates a new edit command
func NewEditCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Apply custom icons to folders",
		Long: `Edit reads the edit rule file and gives every listed folder a custom icon.
Each line has the form <folder>:<icon>. For every rule it will:
1. Check the folder (creating it with --make-dirs)
2. Copy the icon into the folder, converting images to .ico
3. Point the folder's desktop.ini at the icon
4. Mark the folder read-only so the shell honors desktop.ini
A per rule outcome is written to the result file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, resolver, err := ro.Resolve(ctx, cmd, config.ModeEdit)
			if err != nil {
				return err
			}

			ctx = zerolog.Ctx(ctx).With().Str("command", "edit").Logger().WithContext(ctx)
			return run(ctx, ro, cfg, resolver, config.ModeEdit, cfg.EditRulePath, operation.NewEditOperation)
		},
	}

	cmd.Flags().StringVarP(&ro.EditRulePath, opts.FlagEditRulePath, "e", config.DefaultEditRulePath, "edit rule file path")
	cmd.Flags().BoolVarP(&ro.MakeDirs, opts.FlagMakeDirs, "m", false, "create missing target folders")

	return cmd
}
