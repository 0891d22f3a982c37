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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/foldericon/pkg/paths"
	"gitlab.com/tozd/go/errors"
)

// 🗂️ Default locations, relative to the base directory
const (
	DefaultEditRulePath    = "rules/edit_rule.txt"
	DefaultRecoverRulePath = "rules/recover_rule.txt"
	DefaultResultPath      = "result/result.txt"
)

// Mode selects which rule file a run consumes.
type Mode string

const (
	ModeEdit    Mode = "edit"
	ModeRecover Mode = "recover"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config is the configuration of one run
type Config struct {
	EditRulePath    string   `json:"edit_rule_path,omitempty" yaml:"edit_rule_path,omitempty" hcl:"edit_rule_path,optional"`
	RecoverRulePath string   `json:"recover_rule_path,omitempty" yaml:"recover_rule_path,omitempty" hcl:"recover_rule_path,optional"`
	ResultPath      string   `json:"result_path,omitempty" yaml:"result_path,omitempty" hcl:"result_path,optional"`
	BaseDir         string   `json:"base_dir,omitempty" yaml:"base_dir,omitempty" hcl:"base_dir,optional"`
	Debug           bool     `json:"debug,omitempty" yaml:"debug,omitempty" hcl:"debug,optional"`
	MakeDirs        bool     `json:"make_dirs,omitempty" yaml:"make_dirs,omitempty" hcl:"make_dirs,optional"`
	Only            []string `json:"only,omitempty" yaml:"only,omitempty" hcl:"only,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		EditRulePath:    DefaultEditRulePath,
		RecoverRulePath: DefaultRecoverRulePath,
		ResultPath:      DefaultResultPath,
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// a relative base_dir is relative to the config file itself
	if cfg.BaseDir != "" && !filepath.IsAbs(cfg.BaseDir) {
		cfg.BaseDir = filepath.Join(filepath.Dir(path), cfg.BaseDir)
	}

	return cfg, nil
}

// Merge overlays the non-zero fields of other onto cfg.
func (cfg *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.EditRulePath != "" {
		cfg.EditRulePath = other.EditRulePath
	}
	if other.RecoverRulePath != "" {
		cfg.RecoverRulePath = other.RecoverRulePath
	}
	if other.ResultPath != "" {
		cfg.ResultPath = other.ResultPath
	}
	if other.BaseDir != "" {
		cfg.BaseDir = other.BaseDir
	}
	if len(other.Only) > 0 {
		cfg.Only = append([]string(nil), other.Only...)
	}
	cfg.Debug = cfg.Debug || other.Debug
	cfg.MakeDirs = cfg.MakeDirs || other.MakeDirs
}

// 🔒 Resolve absolutizes every path and filter pattern against r.
func (cfg *Config) Resolve(r *paths.Resolver) {
	cfg.BaseDir = r.Base()
	cfg.EditRulePath = r.Abs(cfg.EditRulePath)
	cfg.RecoverRulePath = r.Abs(cfg.RecoverRulePath)
	cfg.ResultPath = r.Abs(cfg.ResultPath)
	for i, pattern := range cfg.Only {
		cfg.Only[i] = filepath.ToSlash(r.Abs(pattern))
	}
}

// 🔍 Validate checks that the configuration can drive a run in mode.
func (cfg *Config) Validate(mode Mode) error {
	switch mode {
	case ModeEdit:
		if cfg.EditRulePath == "" {
			return errors.Errorf("edit_rule_path is required")
		}
	case ModeRecover:
		if cfg.RecoverRulePath == "" {
			return errors.Errorf("recover_rule_path is required")
		}
	default:
		return errors.Errorf("unknown mode %q", mode)
	}

	if cfg.ResultPath == "" {
		return errors.Errorf("result_path is required")
	}

	for _, pattern := range cfg.Only {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid only pattern %q", pattern)
		}
	}

	return nil
}

// Selects reports whether folder passes the only filters. No filters
// selects everything.
func (cfg *Config) Selects(folder string) bool {
	if len(cfg.Only) == 0 {
		return true
	}
	target := filepath.ToSlash(folder)
	for _, pattern := range cfg.Only {
		if ok, err := doublestar.Match(pattern, target); err == nil && ok {
			return true
		}
	}
	return false
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("edit=%s recover=%s result=%s base=%s make_dirs=%t debug=%t only=%v",
		cfg.EditRulePath, cfg.RecoverRulePath, cfg.ResultPath, cfg.BaseDir, cfg.MakeDirs, cfg.Debug, cfg.Only)
}
