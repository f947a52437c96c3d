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

// ExtractLeaves flattens the subtree rooted at focused to its non-Skip
// leaf slabs, in pre-order. The Skip check is repeated defensively even
// though C5 should already have pruned such subtrees from selection.
func ExtractLeaves(focused *Slab) []*Slab {
	var leaves []*Slab
	collectLeaves(focused, &leaves)
	return leaves
}

func collectLeaves(node *Slab, leaves *[]*Slab) {
	if node.Flag == FlagSkip {
		return
	}

	if node.IsLeaf {
		*leaves = append(*leaves, node)
	}

	for _, child := range node.Children {
		collectLeaves(child, leaves)
	}
}
