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

/*
Package operation applies edit and recover rule files to folders.

	+-------------+
	|  Operation  |
	| (edit/recv) |
	+------+------+
	       |
	+------+------+      +-------------+
	|  per rule   +----->+   report    |
	| (in order)  |      | (result.txt)|
	+------+------+      +-------------+
	       |
	+------+------+------+
	|             |      |
	icon     desktopini  attrs

🎯 Purpose:
- Parses the rule file for the selected mode
- Applies every pending rule in file order
- Records each outcome on the rule and echoes it to the console
- Writes the fixed-width report once the batch ends

🔄 Edit flow, per rule:
1. Check the target folder (create it with make_dirs)
2. Check the icon source
3. Copy or convert the icon into the folder
4. Point desktop.ini at it
5. Mark the folder read-only

🔄 Recover flow, per rule:
1. Skip (leave pending) when the folder or its desktop.ini is missing
2. Remove the icon key, restoring the file's attributes afterwards

⚡ A failing rule never stops the batch. Only a missing rule file or a
failure to write the report ends a run with an error.

🔍 Example:

	op, err := operation.NewEditOperation(operation.Options{
		Config:   cfg,
		Resolver: resolver,
		Store:    store,
		Console:  console,
	})
	if err != nil {
		return err
	}
	err = operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op)
*/
package operation
