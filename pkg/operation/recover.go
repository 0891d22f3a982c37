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

	"github.com/walteh/foldericon/pkg/desktopini"
	"github.com/walteh/foldericon/pkg/rule"
)

// 🧹 NewRecoverOperation creates an operation that removes the icons of the
// folders listed in the recover rule file
func NewRecoverOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts, rule.KindRecover)
	if err != nil {
		return nil, err
	}
	return &recoverOperation{BaseOperation: base}, nil
}

type recoverOperation struct {
	BaseOperation
}

// 🏃 Execute runs the recover operation
func (op *recoverOperation) Execute(ctx context.Context) error {
	rules, err := rule.ParseRecoverFile(ctx, op.Config.RecoverRulePath, op.Resolver)
	if err != nil {
		return err
	}
	op.rules = rules

	return op.run(ctx, op.Config.RecoverRulePath, op.recoverRule)
}

// recoverRule clears the icon of one folder. A missing folder or
// desktop.ini leaves the rule pending.
func (op *recoverOperation) recoverRule(ctx context.Context, r *rule.Rule) error {
	info, err := statPath(r.FolderPath)
	if err != nil {
		return err
	}
	if info == nil {
		op.warn(ctx, "target folder %s does not exist, skipping", r.FolderPath)
		return nil
	}

	iniInfo, err := statPath(desktopini.Path(r.FolderPath))
	if err != nil {
		return err
	}
	if iniInfo == nil {
		op.warn(ctx, "%s does not exist, skipping", desktopini.Path(r.FolderPath))
		return nil
	}

	if _, err := op.Editor.ClearIcon(ctx, r.FolderPath); err != nil {
		return err
	}

	r.Succeed()
	return nil
}
