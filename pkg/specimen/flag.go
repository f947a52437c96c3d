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
	"unicode"

	"github.com/texttheater/golang-levenshtein/levenshtein"
	yamlv3 "gopkg.in/yaml.v3"
)

// Flag is the three-valued tag a slab may carry.
type Flag int

const (
	// FlagNone is the default, unflagged state.
	FlagNone Flag = iota
	// FlagSkip prunes a slab and its subtree from selection and execution.
	FlagSkip
	// FlagFocus marks a slab (or its focused descendants) for selection.
	FlagFocus
)

func (f Flag) String() string {
	switch f {
	case FlagSkip:
		return "Skip"
	case FlagFocus:
		return "Focus"
	default:
		return "None"
	}
}

// Warning is a non-fatal diagnostic produced while parsing or selecting.
// Run writes warnings to its output sink (§6.4); the CLI's check and tiles
// subcommands print them to stderr.
type Warning struct {
	Position Position
	Message  string
}

func (w Warning) String() string {
	return fmt.Sprintf("Warning(%s): %s", w.Position, w.Message)
}

// parseFlag reads the `flag` scalar of a mapping node and turns it into a
// Flag, collecting warnings along the way. It is fatal (third return) if
// node is not a string scalar.
func parseFlag(pos Position, node *yamlv3.Node) (Flag, []Warning, error) {
	text, ok := stringValue(node)
	if !ok {
		return FlagNone, nil, fmt.Errorf("%s: the flag value must be a string", pos)
	}

	var (
		flag     = FlagNone
		flagWord string
		both     bool
		warnings []Warning
	)

	for _, word := range strings.Split(text, " ") {
		switch word {
		case "":
			continue

		case "FOCUS":
			if flag == FlagSkip {
				both = true
			}
			flag = FlagFocus
			flagWord = word

		case "PENDING":
			if flag == FlagFocus {
				both = true
			}
			flag = FlagSkip
			flagWord = word

		default:
			if isAllUpper(word) {
				warnings = append(warnings, Warning{
					Position: pos,
					Message:  fmt.Sprintf("Unrecognized all uppercase flag %q. It has been ignored.%s", word, flagHint(word)),
				})
			}
		}
	}

	if both {
		warnings = append(warnings, Warning{
			Position: pos,
			Message:  fmt.Sprintf("Both FOCUS and PENDING flags have been found among the flags of a node. %s has been kept.", flagWord),
		})
	}

	return flag, warnings, nil
}

// isAllUpper reports whether word is non-empty, all-uppercase, and has at
// least one cased character (so punctuation-only tokens are ignored).
func isAllUpper(word string) bool {
	if word == "" {
		return false
	}

	hasCased := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}

	return hasCased
}

// flagHint appends a "did you mean FOCUS/PENDING?" suggestion when word is
// a close typo of one of the two recognized keywords.
func flagHint(word string) string {
	const maxSuggestDistance = 2

	best, bestDistance := "", maxSuggestDistance+1
	for _, candidate := range []string{"FOCUS", "PENDING"} {
		distance := levenshtein.DistanceForStrings([]rune(word), []rune(candidate), levenshtein.DefaultOptions)
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}

	if best == "" || bestDistance > maxSuggestDistance {
		return ""
	}

	return fmt.Sprintf(" Did you mean %s?", best)
}
