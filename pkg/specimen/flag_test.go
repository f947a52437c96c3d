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

var _ = Describe("flag parsing", func() {
	parse := func(source string) []*specimen.Slab {
		slabs, diagnostics, err := specimen.ParseFile("flags.yml", source)
		Expect(err).ToNot(HaveOccurred())
		Expect(diagnostics).To(BeEmpty())
		return slabs
	}

	It("leaves an unflagged node at FlagNone", func() {
		slabs := parse("a: 1\n")
		Expect(slabs[0].Flag).To(Equal(specimen.FlagNone))
	})

	It("recognizes FOCUS", func() {
		slabs := parse("flag: FOCUS\na: 1\n")
		Expect(slabs[0].Flag).To(Equal(specimen.FlagFocus))
	})

	It("recognizes PENDING", func() {
		slabs := parse("flag: PENDING\na: 1\n")
		Expect(slabs[0].Flag).To(Equal(specimen.FlagSkip))
	})

	It("keeps the last of FOCUS and PENDING when both are present, and warns", func() {
		slabs := parse("flag: FOCUS PENDING\na: 1\n")
		Expect(slabs[0].Flag).To(Equal(specimen.FlagSkip))

		_, _, warnings, _, err := specimen.Plan([]specimen.File{{Path: "flags.yml", Contents: "flag: FOCUS PENDING\na: 1\n"}}, specimen.DefaultConfig())
		Expect(err).ToNot(HaveOccurred())
		Expect(warnings).To(HaveLen(1))
		Expect(warnings[0].Message).To(ContainSubstring("Both FOCUS and PENDING"))
	})

	It("ignores unrecognized all-uppercase tokens with a warning", func() {
		slabs := parse("flag: FOCUSS\na: 1\n")
		Expect(slabs[0].Flag).To(Equal(specimen.FlagNone))

		_, _, warnings, _, err := specimen.Plan([]specimen.File{{Path: "flags.yml", Contents: "flag: FOCUSS\na: 1\n"}}, specimen.DefaultConfig())
		Expect(err).ToNot(HaveOccurred())
		Expect(warnings).To(HaveLen(1))
		Expect(warnings[0].Message).To(ContainSubstring("Unrecognized all uppercase flag"))
	})
})
