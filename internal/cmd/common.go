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
	"strings"

	"github.com/gonvenience/bunt"

	"github.com/ditrit/specimen-go/pkg/specimen"
)

// loadFiles reads every named path into a specimen.File, failing the whole
// command (as an ExitCode) the first time a path cannot be read.
func loadFiles(paths []string) ([]specimen.File, error) {
	files := make([]specimen.File, 0, len(paths))
	for _, path := range paths {
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, errorWithExitCode{value: 2, cause: fmt.Errorf("failed to read %s: %w", humanReadableFilename(path), err)}
		}

		files = append(files, specimen.File{Path: path, Contents: string(contents)})
	}

	return files, nil
}

func humanReadableFilename(filename string) string {
	return bunt.Sprintf("_*%s*_", filename)
}

// flagStatLine renders the focused/pending counts encountered during
// selection, omitting whichever clause is zero, or "" if both are.
func flagStatLine(stat specimen.FlagStat) string {
	var clauses []string
	if stat.FocusCount > 0 {
		clauses = append(clauses, fmt.Sprintf("%d focused node(s)", stat.FocusCount))
	}
	if stat.SkipCount > 0 {
		clauses = append(clauses, fmt.Sprintf("%d pending node(s)", stat.SkipCount))
	}

	if len(clauses) == 0 {
		return ""
	}

	return "Encountered " + strings.Join(clauses, " and ")
}
