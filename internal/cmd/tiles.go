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
	"github.com/gonvenience/neat"
	"github.com/spf13/cobra"

	"github.com/ditrit/specimen-go/pkg/specimen"
)

var tilesReserveAbout bool

var tilesCmd = &cobra.Command{
	Use:   "tiles <file>...",
	Short: "Expand specification files into their tiles without running them",
	Long: `
tiles resolves FOCUS/PENDING selection and inherited data matrices the same
way a real run would, and prints, for every selected leaf, the ordered list
of tiles its data matrix expands to. It never invokes any test behavior: it
is a way to eyeball what a callback would be asked to handle before wiring
one up.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := loadFiles(args)
		if err != nil {
			return err
		}

		cfg := specimen.DefaultConfig()
		cfg.ReserveAboutKey = tilesReserveAbout

		leaves, diagnostics, warnings, stat, err := specimen.Plan(files, cfg)
		if err != nil {
			return errorWithExitCode{value: 1, cause: err}
		}

		for _, d := range diagnostics {
			fmt.Fprintln(os.Stderr, d.String())
		}
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, w.String())
		}

		for _, leaf := range leaves {
			fmt.Println(bunt.Sprintf("Aquamarine{*%s*}", leaf.Position.String()))

			it := leaf.DataMatrix.Product()
			for index := 1; ; index++ {
				tile, ok := it.Next()
				if !ok {
					break
				}

				output, err := neat.NewOutputProcessor(false, true, nil).ToYAML(map[string]string(tile))
				if err != nil {
					return err
				}
				fmt.Printf("  [%d] %s\n", index, output)
			}
		}

		if line := flagStatLine(stat); line != "" {
			fmt.Fprintln(os.Stderr, line)
		}

		return nil
	},
}

func init() {
	tilesCmd.Flags().BoolVar(&tilesReserveAbout, "reserve-about-key", true, "treat 'about' as reserved alongside flag/content")
}
