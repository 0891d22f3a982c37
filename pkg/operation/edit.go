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

	"github.com/walteh/foldericon/pkg/attrs"
	"github.com/walteh/foldericon/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

// FolderAttributes marks an edited folder so the shell reads its desktop.ini.
const FolderAttributes = attrs.ReadOnly

// 🎨 NewEditOperation creates an operation that applies the icons listed in
// the edit rule file
func NewEditOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts, rule.KindEdit)
	if err != nil {
		return nil, err
	}
	return &editOperation{BaseOperation: base}, nil
}

type editOperation struct {
	BaseOperation
}

// 🏃 Execute runs the edit operation
func (op *editOperation) Execute(ctx context.Context) error {
	rules, err := rule.ParseEditFile(ctx, op.Config.EditRulePath, op.Resolver)
	if err != nil {
		return err
	}
	op.rules = rules

	return op.run(ctx, op.Config.EditRulePath, op.applyRule)
}

// 📄 applyRule sets the icon of one folder
func (op *editOperation) applyRule(ctx context.Context, r *rule.Rule) error {
	info, err := statPath(r.FolderPath)
	if err != nil {
		return err
	}
	switch {
	case info == nil && op.Config.MakeDirs:
		op.warn(ctx, "target folder %s does not exist, creating it", r.FolderPath)
		if err := os.MkdirAll(r.FolderPath, 0o755); err != nil {
			return errors.Errorf("creating target folder: %w", err)
		}
	case info == nil:
		return ErrFolderNotFound
	case !info.IsDir():
		return ErrNotAFolder
	}

	iconInfo, err := statPath(r.IconPath)
	if err != nil {
		return err
	}
	if iconInfo == nil || iconInfo.IsDir() {
		return ErrIconNotFound
	}

	name, err := op.Materializer.Materialize(ctx, r.FolderPath, r.IconPath)
	if err != nil {
		return err
	}

	if err := op.Editor.SetIcon(ctx, r.FolderPath, name); err != nil {
		return err
	}

	if err := op.Store.Set(ctx, r.FolderPath, FolderAttributes); err != nil {
		return errors.Errorf("marking folder: %w", err)
	}

	r.Succeed()
	return nil
}
