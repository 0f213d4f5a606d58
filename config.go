// Copyright 2025 Naren Yellavula
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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const configFileName = ".arbor.yaml"

type DemoConfig struct {
	Count    int    `yaml:"count"`
	MaxValue int    `yaml:"max_value"`
	Seed     uint64 `yaml:"seed"`
}

type OutputConfig struct {
	Color    bool `yaml:"color"`
	Progress bool `yaml:"progress"`
	Indent   int  `yaml:"indent"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Demo   DemoConfig   `yaml:"demo"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

var defaultConfig = Config{
	Demo: DemoConfig{
		Count:    95,
		MaxValue: 512,
	},
	Output: OutputConfig{
		Color:    true,
		Progress: true,
		Indent:   5,
	},
	Log: LogConfig{
		Level: "warn",
	},
}

// LoadConfig reads ~/.arbor.yaml. A missing or unreadable file yields the
// defaults; keys absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig
		return &fallback, errors.Wrapf(err, "parsing %s", configPath)
	}
	if err := config.validate(); err != nil {
		fallback := defaultConfig
		return &fallback, errors.Wrapf(err, "validating %s", configPath)
	}
	return &config, nil
}

func (c *Config) validate() error {
	if c.Demo.Count < 0 {
		return errors.Newf("demo.count must not be negative, got %d", c.Demo.Count)
	}
	if c.Demo.MaxValue < 2 {
		return errors.Newf("demo.max_value must be at least 2, got %d", c.Demo.MaxValue)
	}
	if c.Demo.Count > c.Demo.MaxValue-1 {
		return errors.Newf("demo.count %d exceeds the %d values below max_value", c.Demo.Count, c.Demo.MaxValue-1)
	}
	if c.Output.Indent < 1 {
		return errors.Newf("output.indent must be positive, got %d", c.Output.Indent)
	}
	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return errors.Wrap(err, "marshalling default config")
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}

// displaySettings prints the active configuration, creating the file with
// defaults first when it does not exist yet.
func displaySettings(w io.Writer, configPath string) error {
	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")
		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		created = true
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 Arbor Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	}

	fmt.Fprintf(w, "🌳 %sDemo:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %scount%s: %d\n", Green, Reset, config.Demo.Count)
	fmt.Fprintf(w, "  • %smax_value%s: %d\n", Green, Reset, config.Demo.MaxValue)
	if config.Demo.Seed == 0 {
		fmt.Fprintf(w, "  • %sseed%s: 0 (time based)\n\n", Green, Reset)
	} else {
		fmt.Fprintf(w, "  • %sseed%s: %d\n\n", Green, Reset, config.Demo.Seed)
	}

	fmt.Fprintf(w, "🖨  %sOutput:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %scolor%s: %t\n", Green, Reset, config.Output.Color)
	fmt.Fprintf(w, "  • %sprogress%s: %t\n", Green, Reset, config.Output.Progress)
	fmt.Fprintf(w, "  • %sindent%s: %d\n\n", Green, Reset, config.Output.Indent)

	fmt.Fprintf(w, "📜 %sLog:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %slevel%s: %s\n\n", Green, Reset, config.Log.Level)

	fmt.Fprintf(w, "💡 Command line flags override these values for a single run.\n")
	return nil
}
