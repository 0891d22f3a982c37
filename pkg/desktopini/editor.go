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

package desktopini

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/foldericon/pkg/attrs"
)

// ProtectedAttributes is applied to desktop.ini after every edit.
const ProtectedAttributes = attrs.Hidden | attrs.System

// 🔧 Editor performs guarded read-modify-write edits of desktop.ini
type Editor struct {
	store attrs.Store
}

// 🏭 NewEditor creates a new editor
func NewEditor(store attrs.Store) *Editor {
	return &Editor{store: store}
}

// Path returns the desktop.ini path for folder.
func Path(folder string) string {
	return filepath.Join(folder, FileName)
}

// 🎨 SetIcon points folder at iconName, keeping every other setting.
// The file ends up hidden and system.
func (e *Editor) SetIcon(ctx context.Context, folder, iconName string) (err error) {
	path := Path(folder)

	g, err := attrs.Acquire(ctx, e.store, path, ProtectedAttributes)
	if err != nil {
		return err
	}
	defer g.ReleaseInto(ctx, &err)

	f, err := Load(path)
	if err != nil {
		return err
	}

	f.SetIconResource(iconName)

	if err := f.Save(); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Str("icon", iconName).Msg("desktop.ini updated")
	return nil
}

// 🧹 ClearIcon removes the icon key from folder's desktop.ini and restores
// the attributes the file had before the edit. A missing folder or file is
// not an error; found is false in that case.
func (e *Editor) ClearIcon(ctx context.Context, folder string) (found bool, err error) {
	logger := zerolog.Ctx(ctx)
	path := Path(folder)

	if _, err := os.Stat(folder); os.IsNotExist(err) {
		logger.Warn().Str("folder", folder).Msg("target folder does not exist")
		return false, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Warn().Str("path", path).Msg("desktop.ini does not exist")
		return false, nil
	}

	g, err := attrs.Capture(ctx, e.store, path)
	if err != nil {
		return false, err
	}
	defer g.ReleaseInto(ctx, &err)

	f, err := Load(path)
	if err != nil {
		return false, err
	}

	if !f.RemoveIconResource() {
		logger.Info().Str("path", path).Msg("no icon configured")
		return false, nil
	}

	if err := f.Save(); err != nil {
		return false, err
	}

	logger.Debug().Str("path", path).Msg("icon removed from desktop.ini")
	return true, nil
}
