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
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	asciiLogo := `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
███████║██████╔╝██████╔╝██║   ██║██████╔╝
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝
Grow, balance and walk binary search trees from the terminal [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var config *Config
	var logLevel string

	var rootCmd = &cobra.Command{
		Use:           "arbor",
		Version:       version,
		Long:          asciiLogo,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config, err = LoadConfig()
			if cmd.Flags().Changed("log-level") {
				config.Log.Level = logLevel
			}
			if logErr := setupLogging(os.Stderr, config.Log.Level); logErr != nil {
				log.Warn().Err(logErr).Msg("Falling back to warn level")
			}
			if err != nil {
				log.Warn().Err(err).Msg("Failed to load configuration. Using default settings.")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the demo when no subcommand is provided
			return runDemo(ctx, os.Stdout, demoOptionsFrom(config, newPalette(config.Output.Color), os.Stderr))
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Build an unbalanced and an AVL tree from random values and exercise every operation",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Demo grows both trees from the same random distinct values and prints them, their statistics, traversals and conversions`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyDemoFlags(cmd, config)
			if err := config.validate(); err != nil {
				return err
			}
			return runDemo(ctx, os.Stdout, demoOptionsFrom(config, newPalette(config.Output.Color), os.Stderr))
		},
	}

	var cmdCompare = &cobra.Command{
		Use:   "compare",
		Short: "Plot tree height after each insertion, unbalanced versus AVL",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Compare charts how the height of both trees grows as the same values are inserted`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyDemoFlags(cmd, config)
			if err := config.validate(); err != nil {
				return err
			}
			return runCompare(ctx, os.Stdout, demoOptionsFrom(config, newPalette(config.Output.Color), os.Stderr))
		},
	}

	for _, c := range []*cobra.Command{cmdDemo, cmdCompare} {
		c.Flags().Int("count", 0, "number of distinct values")
		c.Flags().Int("max", 0, "values are drawn from [1, max)")
		c.Flags().Uint64("seed", 0, "random seed, 0 for time based")
		c.Flags().Bool("no-color", false, "disable colored output")
	}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Open an interactive prompt on a single tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell reads one command per line; type help for the list`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := newShell(os.Stdout, newPalette(config.Output.Color), config.Output.Indent)
			return sh.run(ctx, os.Stdin)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show Arbor settings, creating ~/.arbor.yaml when missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := getConfigPath()
			if err != nil {
				return err
			}
			return displaySettings(os.Stdout, configPath)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Arbor usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the arbor CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Arbor version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(cmdDemo, cmdCompare, cmdShell, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("arbor failed")
	}
}

// applyDemoFlags overrides configuration values with the flags the user set.
func applyDemoFlags(cmd *cobra.Command, config *Config) {
	flags := cmd.Flags()
	if flags.Changed("count") {
		config.Demo.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("max") {
		config.Demo.MaxValue, _ = flags.GetInt("max")
	}
	if flags.Changed("seed") {
		config.Demo.Seed, _ = flags.GetUint64("seed")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		config.Output.Color = false
	}
}
