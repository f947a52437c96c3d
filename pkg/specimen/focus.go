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

// FlagStat counts how many slabs in a tree carried FOCUS or PENDING.
type FlagStat struct {
	FocusCount int
	SkipCount  int
}

// SelectFocused performs the post-order traversal of §4.5, returning the
// ordered set of effective focused slabs (falling back to root itself when
// nothing was focused) and the flag statistics gathered along the way.
// warn is invoked for every selection-time warning (focused-over-focused).
func SelectFocused(root *Slab, warn func(Position, string)) ([]*Slab, FlagStat) {
	var (
		stat    FlagStat
		focused []*Slab
	)

	visit(root, &stat, &focused, warn)

	if len(focused) == 0 {
		focused = []*Slab{root}
	}

	return focused, stat
}

// visit returns true if node itself or one of its descendants is focused.
func visit(node *Slab, stat *FlagStat, focused *[]*Slab, warn func(Position, string)) bool {
	if node.Flag == FlagSkip {
		stat.SkipCount++
		return false
	}

	initialLength := len(*focused)
	hadFocusedDescendant := false
	for _, child := range node.Children {
		if visit(child, stat, focused, warn) {
			hadFocusedDescendant = true
		}
	}

	if node.Flag == FlagFocus {
		stat.FocusCount++

		if len(*focused) > initialLength || hadFocusedDescendant {
			warn(node.Position, "A node with focused descendants is itself focused. It has been considered not focused in favor of its focused descendants.")
			return true
		}

		*focused = append(*focused, node)
		return true
	}

	return hadFocusedDescendant
}
