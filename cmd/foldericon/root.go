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

package main

import (
	"github.com/spf13/cobra"
	"github.com/walteh/foldericon/cmd/foldericon/commands"
	"github.com/walteh/foldericon/cmd/foldericon/opts"
	"github.com/walteh/foldericon/pkg/config"
)

// newRootCmd creates the root command with every sub command attached
func newRootCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "foldericon",
		Short: "Bulk apply or remove custom folder icons",
		Long: `foldericon applies custom icons to folders (edit) or restores their default
icon (recover), driven by plain text rule files. Relative paths are resolved
against the base directory, which defaults to the directory of the binary.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.SetupLogging(ro.Debug)
			return nil
		},
	}

	addRootFlags(cmd, ro)

	cmd.AddCommand(
		commands.NewEditCmd(ro),
		commands.NewRecoverCmd(ro),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, ro *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&ro.ConfigFile, opts.FlagConfig, "c", "", "config file path (.yaml, .hcl, .json)")
	cmd.PersistentFlags().BoolVarP(&ro.Debug, opts.FlagDebug, "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&ro.ResultPath, opts.FlagResultPath, "s", config.DefaultResultPath, "result report path")
	cmd.PersistentFlags().StringVar(&ro.BaseDir, opts.FlagBaseDir, "", "directory relative paths are resolved against (default: the binary's directory)")
	cmd.PersistentFlags().StringSliceVar(&ro.Only, opts.FlagOnly, nil, "only process folders matching these glob patterns")
}
