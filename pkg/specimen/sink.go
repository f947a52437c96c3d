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
	"bufio"
	"bytes"
	"os"
)

// Sink is a write-only byte sink. An error from its final Flush is
// returned by Run as a library-error outcome (§7 kind 5); Run does not
// check the error results of individual Write calls.
type Sink interface {
	Write(p []byte) (int, error)
	Flush() error
}

// StdoutSink writes to the process standard output.
type StdoutSink struct {
	writer *bufio.Writer
}

// NewStdoutSink returns a Sink backed by os.Stdout.
func NewStdoutSink() *StdoutSink {
	return &StdoutSink{writer: bufio.NewWriter(os.Stdout)}
}

func (s *StdoutSink) Write(p []byte) (int, error) {
	return s.writer.Write(p)
}

// Flush flushes any buffered output to the underlying file descriptor.
func (s *StdoutSink) Flush() error {
	return s.writer.Flush()
}

// BufferSink is an in-memory Sink, used by this package's own tests to
// capture and assert on formatted output the same way a host harness would
// capture dyff's report output.
type BufferSink struct {
	buffer bytes.Buffer
}

// NewBufferSink returns an empty in-memory Sink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (s *BufferSink) Write(p []byte) (int, error) {
	return s.buffer.Write(p)
}

// Flush is a no-op for an in-memory sink.
func (s *BufferSink) Flush() error {
	return nil
}

// String returns everything written to the sink so far.
func (s *BufferSink) String() string {
	return s.buffer.String()
}

// Bytes returns everything written to the sink so far.
func (s *BufferSink) Bytes() []byte {
	return s.buffer.Bytes()
}
