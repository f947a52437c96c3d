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
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ditrit/specimen-go/pkg/specimen"
)

var _ = Describe("Run", func() {
	It("passes every tile of a simple counter scenario", func() {
		source := `
content:
- n: ["1", "2", "3"]
`
		var seen []string
		callback := func(tile specimen.Tile) error {
			seen = append(seen, tile["n"])
			return nil
		}

		sink := specimen.NewBufferSink()
		success, err := specimen.Run(callback, []specimen.File{{Path: "counter.yml", Contents: source}}, sink, specimen.DefaultConfig())

		Expect(err).ToNot(HaveOccurred())
		Expect(success).To(BeTrue())
		Expect(seen).To(Equal([]string{"1", "2", "3"}))
		Expect(sink.String()).To(ContainSubstring("3 Passed"))
	})

	It("reports a failing tile without aborting the rest of the leaf", func() {
		source := `
content:
- n: ["1", "2", "3"]
`
		callback := func(tile specimen.Tile) error {
			if tile["n"] == "2" {
				return errors.New("danger: unexpected value")
			}
			return nil
		}

		sink := specimen.NewBufferSink()
		success, err := specimen.Run(callback, []specimen.File{{Path: "danger.yml", Contents: source}}, sink, specimen.DefaultConfig())

		Expect(err).ToNot(HaveOccurred())
		Expect(success).To(BeFalse())
		Expect(sink.String()).To(ContainSubstring("1 Failed"))
		Expect(sink.String()).To(ContainSubstring("2 Passed"))
		Expect(sink.String()).To(ContainSubstring("[danger.yml:3:3][1]: danger: unexpected value"))
		Expect(sink.String()).To(ContainSubstring("FAILURE"))
	})

	It("treats an ABORT-prefixed error as an abort rather than a failure", func() {
		source := "n: 1\n"
		callback := func(tile specimen.Tile) error {
			return errors.New("ABORT: cannot continue")
		}

		sink := specimen.NewBufferSink()
		success, err := specimen.Run(callback, []specimen.File{{Path: "abort.yml", Contents: source}}, sink, specimen.DefaultConfig())

		Expect(err).ToNot(HaveOccurred())
		Expect(success).To(BeFalse())
		Expect(sink.String()).To(ContainSubstring("1 Aborted"))
	})

	It("recovers a callback panic into a Panicked outcome when configured to", func() {
		source := "n: 1\n"
		callback := func(tile specimen.Tile) error {
			panic("boom")
		}

		sink := specimen.NewBufferSink()
		success, err := specimen.Run(callback, []specimen.File{{Path: "panic.yml", Contents: source}}, sink, specimen.DefaultConfig())

		Expect(err).ToNot(HaveOccurred())
		Expect(success).To(BeFalse())
		Expect(sink.String()).To(ContainSubstring("1 Panicked"))
	})

	It("only invokes the callback for the focused subtree", func() {
		source := `
content:
- name: skipped-one
  value: "1"
- name: focused-one
  value: "2"
  flag: FOCUS
`
		var seen []string
		callback := func(tile specimen.Tile) error {
			seen = append(seen, tile["value"])
			return nil
		}

		sink := specimen.NewBufferSink()
		_, err := specimen.Run(callback, []specimen.File{{Path: "focus.yml", Contents: source}}, sink, specimen.DefaultConfig())

		Expect(err).ToNot(HaveOccurred())
		Expect(seen).To(Equal([]string{"2"}))
		Expect(sink.String()).To(ContainSubstring("Encountered 1 focused node(s)"))
		Expect(sink.String()).ToNot(ContainSubstring("pending node(s)"))
	})

	It("warns when both FOCUS and PENDING are present on the same node", func() {
		source := "flag: FOCUS PENDING\nn: 1\n"
		callback := func(tile specimen.Tile) error { return nil }

		sink := specimen.NewBufferSink()
		_, err := specimen.Run(callback, []specimen.File{{Path: "both.yml", Contents: source}}, sink, specimen.DefaultConfig())

		Expect(err).ToNot(HaveOccurred())
		Expect(sink.String()).To(ContainSubstring("Both FOCUS and PENDING"))
	})

	It("injects the originating file path into every tile's matrix", func() {
		source := "n: 1\n"
		var gotPath string
		callback := func(tile specimen.Tile) error {
			gotPath = tile["filepath"]
			return nil
		}

		sink := specimen.NewBufferSink()
		_, err := specimen.Run(callback, []specimen.File{{Path: "path/to/file.yml", Contents: source}}, sink, specimen.DefaultConfig())

		Expect(err).ToNot(HaveOccurred())
		Expect(gotPath).To(Equal("path/to/file.yml"))
	})

	It("aborts the whole run on a schema error", func() {
		source := "- not\n- a\n- mapping\n"
		callback := func(tile specimen.Tile) error { return nil }

		sink := specimen.NewBufferSink()
		_, err := specimen.Run(callback, []specimen.File{{Path: "bad.yml", Contents: source}}, sink, specimen.DefaultConfig())

		Expect(err).To(HaveOccurred())
	})

	It("keeps the overall summary line well-formed", func() {
		source := "n: 1\n"
		callback := func(tile specimen.Tile) error { return nil }

		sink := specimen.NewBufferSink()
		_, err := specimen.Run(callback, []specimen.File{{Path: "summary.yml", Contents: source}}, sink, specimen.DefaultConfig())

		Expect(err).ToNot(HaveOccurred())
		lines := strings.Split(strings.TrimRight(sink.String(), "\n"), "\n")
		Expect(lines[len(lines)-2]).To(ContainSubstring("Ran 1 tiles in"))
		Expect(lines[len(lines)-1]).To(ContainSubstring("SUCCESS -- 1 Passed | 0 Failed | 0 Aborted | 0 Panicked"))
	})
})
