//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads editor settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/timburks/modal/pkg/editor"
	modal "github.com/timburks/modal/pkg/types"
)

// Config holds the settings that can be changed in ~/.modal.yaml.
type Config struct {
	StartMode string `yaml:"start-mode"` // "command" or "insert"
	AutoPair  *bool  `yaml:"auto-pair"`
	TabWidth  *int   `yaml:"tab-width"`
	UndoLimit int    `yaml:"undo-limit"`
	LogFile   string `yaml:"log-file"`
	HistoryDB string `yaml:"history-db"` // empty disables persistent history
}

// DefaultPath returns ~/.modal.yaml.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".modal.yaml")
}

func Default() *Config {
	home := os.Getenv("HOME")
	return &Config{
		StartMode: "command",
		LogFile:   filepath.Join(home, ".modallog"),
		HistoryDB: filepath.Join(home, ".modal.db"),
	}
}

// Load reads the file at path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if _, err = c.Mode(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if c.UndoLimit < 0 || (c.TabWidth != nil && *c.TabWidth < 0) {
		return nil, fmt.Errorf("reading %s: negative limits are not allowed", path)
	}
	return c, nil
}

// Mode returns the mode the editor starts in.
func (c *Config) Mode() (modal.Mode, error) {
	switch c.StartMode {
	case "", "command":
		return modal.ModeCommand, nil
	case "insert":
		return modal.ModeInsert, nil
	}
	return modal.ModeCommand, fmt.Errorf("unknown start mode %q", c.StartMode)
}

// EditorOptions returns the editing options, with defaults for unset values.
func (c *Config) EditorOptions() editor.Options {
	options := editor.DefaultOptions()
	if c.AutoPair != nil {
		options.AutoPair = *c.AutoPair
	}
	if c.TabWidth != nil {
		options.TabWidth = *c.TabWidth
	}
	options.UndoLimit = c.UndoLimit
	return options
}
