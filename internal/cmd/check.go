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
	"github.com/spf13/cobra"

	"github.com/ditrit/specimen-go/pkg/specimen"
)

var checkShowHash bool

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate specification files and report their leaf fingerprints",
	Long: `
check parses and inherits every given specification file, reporting any
schema violation as an error and any tokenizer failure or flag-parser
warning as a diagnostic. With --hash, it also prints each selected leaf's
structural fingerprint, letting a host assert that a specification's
resolved shape has not silently drifted between two runs.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := loadFiles(args)
		if err != nil {
			return err
		}

		leaves, diagnostics, warnings, stat, err := specimen.Plan(files, specimen.DefaultConfig())
		if err != nil {
			return errorWithExitCode{value: 1, cause: bunt.Errorf("Coral{*schema error*}: %w", err)}
		}

		for _, d := range diagnostics {
			fmt.Fprintln(os.Stderr, bunt.Sprintf("Coral{*%s*}", d.String()))
		}
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, bunt.Sprintf("Gold{*%s*}", w.String()))
		}

		fmt.Printf("%d leaf node(s) selected, %d focused, %d pending\n", len(leaves), stat.FocusCount, stat.SkipCount)

		if checkShowHash {
			for _, leaf := range leaves {
				hash, err := leaf.DataMatrix.Hash()
				if err != nil {
					return errorWithExitCode{value: 1, cause: err}
				}
				fmt.Printf("  %s  %016x\n", leaf.Position.String(), hash)
			}
		}

		if len(diagnostics) > 0 {
			return errorWithExitCode{value: 1, cause: fmt.Errorf("%d file(s) failed to parse", len(diagnostics))}
		}

		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkShowHash, "hash", false, "print each selected leaf's structural fingerprint")
}
