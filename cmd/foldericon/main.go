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
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/foldericon/cmd/foldericon/opts"
	"github.com/walteh/foldericon/cmd/foldericon/ui"
	"github.com/walteh/foldericon/pkg/attrs"
)

func main() {
	// Setup logging
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	ctx := logger.WithContext(context.Background())

	// Create user logger
	userLogger := ui.NewUserLogger(ctx)

	ro := &opts.RootOpts{
		NewStore:   attrs.NewStore,
		Console:    os.Stdout,
		UserLogger: userLogger,
	}

	if err := newRootCmd(ro).ExecuteContext(ctx); err != nil {
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
