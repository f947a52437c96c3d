// Copyright © 2025 The Homeport Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"

	"github.com/gonvenience/bunt"
	"github.com/gonvenience/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// colormode is used by the CLI parser to store the user's color preference
// for further internal processing into the gonvenience/bunt setting.
var colormode string

// debugMode enables verbose diagnostic output across subcommands.
var debugMode bool

// cfgFile optionally points at a YAML config file that viper reads at
// startup (its path is reported under --debug). No subcommand reads a
// setting from it; options come from command-line flags only.
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "specimen",
	Short: "Run YAML-defined, data-driven test specifications",
	Long: `
specimen is a data-driven test runner. It reads specification files written
in YAML, resolves FOCUS/PENDING annotations and inherited data matrices, and
expands every selected leaf into the tiles a host test harness executes.

This binary only offers the diagnostic subcommands (tiles, check); actually
running a specification against real assertions requires a Go program that
supplies the callback, since the behavior under test cannot be expressed in
YAML.
`,
}

// Execute adds all child commands to the root command and runs it. It is
// called by main.main() and returns the command's own error, which may
// carry an ExitCode for the caller to act on.
func Execute() error {
	return rootCmd.Execute()
}

// RootCmd returns the root command, for tests that need to drive it with
// their own arguments.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.specimen.yaml)")
	rootCmd.PersistentFlags().StringVarP(&colormode, "color", "c", "auto", "specify color usage: on, off, or auto")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "enable debug output")
	rootCmd.PersistentFlags().IntVarP(&term.FixedTerminalWidth, "fixed-width", "w", -1, "disable terminal width detection and use the provided fixed value")
	rootCmd.PersistentFlags().IntVar(&term.FixedTerminalHeight, "fixed-height", -1, "disable terminal height detection and use the provided fixed value")

	rootCmd.AddCommand(tilesCmd)
	rootCmd.AddCommand(checkCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".specimen")
	}

	viper.SetEnvPrefix("SPECIMEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && debugMode {
		fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
	}

	if setting, err := bunt.ParseSetting(colormode); err == nil {
		bunt.ColorSetting = setting
	}
}
