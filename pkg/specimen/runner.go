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

package specimen

import (
	"fmt"
	"strings"
	"time"
)

// File is a single specification file handed to Run, identified by the path
// a host would use to reload it (and that is injected into every one of its
// root slabs' data matrix under the filepath key).
type File struct {
	Path     string
	Contents string
}

// Callback is invoked once per tile of a leaf slab's data matrix. A nil
// error means the tile passed. A non-nil error whose message begins with
// "ABORT" is treated as an abort rather than an ordinary failure: it is
// counted and reported separately, and the remaining tiles of the leaf are
// still invoked.
type Callback func(tile Tile) error

// Config carries the run's two Open-Question resolutions (§4 Open
// Questions of the distilled spec): whether `about` is reserved alongside
// `flag`/`content`, and whether a callback panic is recovered into a
// Panicked outcome or left to crash the host process.
type Config struct {
	ReserveAboutKey bool
	RecoverPanics   bool
}

// DefaultConfig returns the Config a host normally passes to Run: about is
// reserved, and panics are recovered. Run has no implicit default; the zero
// Config reserves only flag/content and does not recover panics.
func DefaultConfig() Config {
	return Config{ReserveAboutKey: true, RecoverPanics: true}
}

// outcome classifies a single tile invocation.
type outcome int

const (
	outcomePristine outcome = iota
	outcomeFailed
	outcomeAborted
	outcomePanicked
)

// Plan runs C1 through C6 over files without executing anything: it parses
// every file, builds and inherits each document's data matrix, resolves
// focus, and flattens the result to the ordered set of leaf slabs a runner
// would expand into tiles. It is exported so host tooling (this package's
// own Run, and the CLI's tiles/check subcommands) can inspect a
// specification's shape without supplying a callback.
func Plan(files []File, cfg Config) (leaves []*Slab, diagnostics []Diagnostic, warnings []Warning, stat FlagStat, err error) {
	var documents []*Slab

	for _, file := range files {
		slabs, fileDiagnostics, parseErr := ParseFile(file.Path, file.Contents)
		diagnostics = append(diagnostics, fileDiagnostics...)
		if parseErr != nil {
			return nil, diagnostics, nil, FlagStat{}, parseErr
		}

		for _, slab := range slabs {
			inherited := NewMultiStringMap()
			inherited.Set(filepathKey, []string{file.Path})

			if err := Populate(slab, inherited, cfg.ReserveAboutKey); err != nil {
				return nil, diagnostics, nil, FlagStat{}, err
			}

			warnings = append(warnings, collectWarnings(slab)...)
			documents = append(documents, slab)
		}
	}

	root := &Slab{
		Position:   Position{File: "<run>"},
		Flag:       FlagNone,
		IsLeaf:     false,
		DataMatrix: NewMultiStringMap(),
		Children:   documents,
	}

	focusedRoots, selectionStat := SelectFocused(root, func(pos Position, msg string) {
		warnings = append(warnings, Warning{Position: pos, Message: msg})
	})

	for _, fr := range focusedRoots {
		leaves = append(leaves, ExtractLeaves(fr)...)
	}

	return leaves, diagnostics, warnings, selectionStat, nil
}

// Run parses files, resolves focus, expands every resulting leaf's data
// matrix into tiles, and invokes callback once per tile. It writes a
// human-readable report to sink: diagnostics and warnings before the first
// tile, then, once every tile has run, the failure lines, the flag-stat line
// and the summary. The returned bool is false if any tile failed, aborted or
// panicked, or true if every tile in the run passed. err is non-nil only for
// a library-level failure: a schema violation in one of files, or an error
// returned by sink.Flush. The error results of the individual writes to
// sink are not checked.
func Run(callback Callback, files []File, sink Sink, cfg Config) (bool, error) {
	start := time.Now()

	leaves, diagnostics, warnings, stat, err := Plan(files, cfg)
	if err != nil {
		return false, err
	}

	for _, d := range diagnostics {
		fmt.Fprintln(sink, d.String())
	}

	for _, w := range warnings {
		fmt.Fprintln(sink, dimGray(w.String()))
	}

	var (
		passed, failed, aborted, panicked int
		reportLines                       []string
	)

	for _, leaf := range leaves {
		it := leaf.DataMatrix.Product()
		for index := 0; ; index++ {
			tile, ok := it.Next()
			if !ok {
				break
			}

			switch result, message := invoke(callback, tile, cfg); result {
			case outcomePristine:
				passed++

			case outcomeFailed:
				failed++
				reportLines = append(reportLines, reportLine("FAIL", leaf.Position, index, message))

			case outcomeAborted:
				aborted++
				reportLines = append(reportLines, reportLine("ABORT", leaf.Position, index, message))

			case outcomePanicked:
				panicked++
				reportLines = append(reportLines, reportLine("PANIC", leaf.Position, index, message))
			}
		}
	}

	for _, line := range reportLines {
		fmt.Fprintln(sink, line)
	}

	if line := flagStatLine(stat); line != "" {
		fmt.Fprintln(sink, italic(line))
	}

	total := passed + failed + aborted + panicked
	success := failed == 0 && aborted == 0 && panicked == 0

	verdict := "SUCCESS"
	if !success {
		verdict = "FAILURE"
	}

	fmt.Fprintln(sink, dimGray(fmt.Sprintf("Ran %d tiles in %dms", total, time.Since(start).Milliseconds())))
	fmt.Fprintln(sink, colorizeSummary(
		fmt.Sprintf("%s -- %d Passed | %d Failed | %d Aborted | %d Panicked", verdict, passed, failed, aborted, panicked),
		passed, total,
	))

	if err := sink.Flush(); err != nil {
		return false, err
	}

	return success, nil
}

// invoke runs callback over a single tile, turning a panic (when
// cfg.RecoverPanics is set) or an ABORT-prefixed error into their
// respective outcomes.
func invoke(callback Callback, tile Tile, cfg Config) (result outcome, message string) {
	if cfg.RecoverPanics {
		defer func() {
			if r := recover(); r != nil {
				result, message = outcomePanicked, fmt.Sprint(r)
			}
		}()
	}

	err := callback(tile)
	switch {
	case err == nil:
		return outcomePristine, ""
	case strings.HasPrefix(err.Error(), "ABORT"):
		return outcomeAborted, err.Error()
	default:
		return outcomeFailed, err.Error()
	}
}

// flagStatLine renders the focused/pending counts encountered during
// selection, omitting whichever clause is zero, or "" if both are. It never
// ends in a trailing period.
func flagStatLine(stat FlagStat) string {
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

func reportLine(tag string, pos Position, index int, message string) string {
	return fmt.Sprintf("%s[%s][%d]: %s", bold(tag), pos, index, message)
}
