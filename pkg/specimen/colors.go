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
	"github.com/gonvenience/bunt"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	passGreen = hexColor("#58BF38")
	failRed   = hexColor("#B9311B")
)

func hexColor(hex string) colorful.Color {
	c, _ := colorful.Hex(hex)
	return c
}

func bold(text string) string {
	return bunt.Style(text, bunt.EachLine(), bunt.Bold())
}

func italic(text string) string {
	return bunt.Style(text, bunt.EachLine(), bunt.Italic())
}

func dimGray(text string) string {
	return bunt.Style(text, bunt.EachLine(), bunt.Foreground(bunt.DimGray))
}

// summaryColor interpolates between failRed and passGreen according to the
// fraction of tiles that passed, so an almost-all-green run with a single
// straggler reads differently from a run that is evenly split.
func summaryColor(passed, total int) colorful.Color {
	if total == 0 {
		return passGreen
	}

	ratio := float64(passed) / float64(total)
	return failRed.BlendLuv(passGreen, ratio)
}

func colorizeSummary(text string, passed, total int) string {
	return bunt.Style(text,
		bunt.EachLine(),
		bunt.Foreground(summaryColor(passed, total)),
		bunt.Bold(),
	)
}
