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
Package config manages run configuration for foldericon.

	            +-------------+
	            |   Config    |
	            |  (per run)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+-----+
	|   YAML   | |   HCL    | | JSON(C)   |
	|  Parser  | |  Parser  | |  Parser   |
	+----------+ +----------+ +-----------+

🎯 Purpose:
- Holds the rule file, result file and base directory locations
- Loads an optional config file in any registered format
- Resolves relative paths against the base directory
- Validates the settings before a run starts

🔄 Flow:
1. Start from Default()
2. Merge a loaded config file on top
3. Apply explicitly set command line flags
4. Resolve against the base directory
5. Validate for the selected mode

🔍 Example:

	cfg := config.Default()
	fileCfg, err := config.Load(ctx, "foldericon.yaml")
	if err != nil {
		return err
	}
	cfg.Merge(fileCfg)
	cfg.Resolve(resolver)
	if err := cfg.Validate(config.ModeEdit); err != nil {
		return err
	}
*/
package config
