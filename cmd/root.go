/*
Copyright 2024 The freqtrade-operator Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cmd wires the operator's three subcommands (crds, controller,
// webhook) under one cobra root command.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	groupRun   = "group-run"
	groupOther = "group-other"
)

// Version is the operator's build version, set via -ldflags at build time.
var Version = "dev"

// RootCmd is the operator's root CLI command.
var RootCmd = &cobra.Command{
	Use:          "freqtrade-operator",
	SilenceUsage: true,
	Short:        "freqtrade-operator manages the lifecycle of Bot custom resources",
	Long: `freqtrade-operator manages the lifecycle of Bot custom resources:
it materialises and converges their dependent Kubernetes objects, and
serves the admission webhook that validates them.`,
}

// Execute runs the root command, exiting 1 on error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddGroup(
		&cobra.Group{ID: groupRun, Title: "Run Commands:"},
		&cobra.Group{ID: groupOther, Title: "Other Commands:"},
	)
	RootCmd.SetHelpCommandGroupID(groupOther)
	RootCmd.SetCompletionCommandGroupID(groupOther)

	RootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Path to a JSON or YAML configuration file. Overrides built-in defaults; overridden in turn by BOTS_-prefixed environment variables.")
}

var configFile string
