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

package specimen_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ditrit/specimen-go/pkg/specimen"
)

var _ = Describe("slab parsing and population", func() {
	It("rejects a non-mapping document root", func() {
		_, _, err := specimen.ParseFile("bad.yml", "- 1\n- 2\n")
		Expect(err).To(HaveOccurred())
	})

	It("reports a tokenizer failure as a diagnostic, not a fatal error", func() {
		slabs, diagnostics, err := specimen.ParseFile("broken.yml", "a: [1, 2\n")
		Expect(err).ToNot(HaveOccurred())
		Expect(slabs).To(BeEmpty())
		Expect(diagnostics).To(HaveLen(1))
		Expect(diagnostics[0].Path).To(Equal("broken.yml"))
	})

	It("builds children for every content entry regardless of flag", func() {
		source := `
flag: PENDING
content:
- a: 1
- b: 2
`
		slabs, _, err := specimen.ParseFile("tree.yml", source)
		Expect(err).ToNot(HaveOccurred())
		Expect(slabs).To(HaveLen(1))

		root := slabs[0]
		Expect(root.Flag).To(Equal(specimen.FlagSkip))
		Expect(root.IsLeaf).To(BeFalse())
		Expect(root.Children).To(HaveLen(2))
	})

	It("inherits matrix values down the tree and lets children override", func() {
		source := `
color: red
content:
- shape: circle
- shape: square
  color: blue
`
		slabs, _, err := specimen.ParseFile("matrix.yml", source)
		Expect(err).ToNot(HaveOccurred())

		root := slabs[0]
		Expect(specimen.Populate(root, specimen.NewMultiStringMap(), true)).To(Succeed())

		first, second := root.Children[0], root.Children[1]

		color, ok := first.DataMatrix.Get("color")
		Expect(ok).To(BeTrue())
		Expect(color).To(Equal([]string{"red"}))

		color, ok = second.DataMatrix.Get("color")
		Expect(ok).To(BeTrue())
		Expect(color).To(Equal([]string{"blue"}))
	})

	It("treats a sequence value as a multi-valued matrix entry", func() {
		source := "size: [small, large]\n"
		slabs, _, err := specimen.ParseFile("sizes.yml", source)
		Expect(err).ToNot(HaveOccurred())

		root := slabs[0]
		Expect(specimen.Populate(root, specimen.NewMultiStringMap(), true)).To(Succeed())

		sizes, ok := root.DataMatrix.Get("size")
		Expect(ok).To(BeTrue())
		Expect(sizes).To(Equal([]string{"small", "large"}))
	})

	It("does not treat about as a matrix key when reserved", func() {
		source := "about: a free-form description\nvalue: 1\n"
		slabs, _, err := specimen.ParseFile("about.yml", source)
		Expect(err).ToNot(HaveOccurred())

		root := slabs[0]
		Expect(specimen.Populate(root, specimen.NewMultiStringMap(), true)).To(Succeed())

		_, ok := root.DataMatrix.Get("about")
		Expect(ok).To(BeFalse())
	})

	It("treats about as an ordinary matrix key when not reserved", func() {
		source := "about: x\n"
		slabs, _, err := specimen.ParseFile("about2.yml", source)
		Expect(err).ToNot(HaveOccurred())

		root := slabs[0]
		Expect(specimen.Populate(root, specimen.NewMultiStringMap(), false)).To(Succeed())

		about, ok := root.DataMatrix.Get("about")
		Expect(ok).To(BeTrue())
		Expect(about).To(Equal([]string{"x"}))
	})

	It("stringifies non-string scalar values instead of rejecting them", func() {
		source := "count: 5\nactive: true\nnote: ~\n"
		slabs, _, err := specimen.ParseFile("scalars.yml", source)
		Expect(err).ToNot(HaveOccurred())

		root := slabs[0]
		Expect(specimen.Populate(root, specimen.NewMultiStringMap(), true)).To(Succeed())

		count, ok := root.DataMatrix.Get("count")
		Expect(ok).To(BeTrue())
		Expect(count).To(Equal([]string{"5"}))

		active, ok := root.DataMatrix.Get("active")
		Expect(ok).To(BeTrue())
		Expect(active).To(Equal([]string{"true"}))

		note, ok := root.DataMatrix.Get("note")
		Expect(ok).To(BeTrue())
		Expect(note).To(Equal([]string{"~"}))
	})

	It("rejects an empty value sequence", func() {
		source := "color: []\n"
		slabs, _, err := specimen.ParseFile("empty.yml", source)
		Expect(err).ToNot(HaveOccurred())

		root := slabs[0]
		Expect(specimen.Populate(root, specimen.NewMultiStringMap(), true)).To(HaveOccurred())
	})
})
