/*
NaiveSystems Analyze - A tool for static code analysis
Copyright (C) 2023  Naive Systems Ltd.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Command pylint_pycharm runs pylint and prints its messages with absolute
// paths so that PyCharm can link them to the source.
//
// Usage:
//
//	pylint_pycharm <module or package> [--virtualenv=<path>] [--msg-template=<t>] [--<pylint flag>...]
//
// Its own settings are read from the YAML file named by
// PYLINT_PYCHARM_CONFIG.
package main

import (
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"naive.systems/pylint_pycharm/adapter"
	"naive.systems/pylint_pycharm/options"
)

var rootCmd = &cobra.Command{
	Use:   "pylint_pycharm <module or package> [--flag[=value]]...",
	Short: "Run pylint and print messages PyCharm can link to",
	// Every argument belongs to pylint or to the partitioner.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               run,
}

var exitCode int

func run(cmd *cobra.Command, argv []string) error {
	cfg, err := options.LoadFromEnv()
	if err != nil {
		return err
	}
	if err := cfg.InitLogging(); err != nil {
		return err
	}
	code, err := adapter.Convert(cfg, append([]string{cmd.CommandPath()}, argv...), cmd.OutOrStdout())
	if err != nil {
		glog.Fatalf("adapter.Convert: %v", err)
	}
	exitCode = code
	return nil
}

func main() {
	defer glog.Flush()
	if err := rootCmd.Execute(); err != nil {
		glog.Fatal(err)
	}
	glog.Flush()
	os.Exit(exitCode)
}
