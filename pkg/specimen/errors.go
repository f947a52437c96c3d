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

import "fmt"

// Diagnostic is a non-fatal, per-file report produced when a YAML source
// fails to tokenize. The offending file contributes zero slabs; other
// files continue to be processed.
type Diagnostic struct {
	Path    string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Path, d.Message)
}

// SchemaError is a fatal error: a non-mapping root or child, a non-string
// key, an unsupported or empty matrix value. It aborts the entire run.
type SchemaError struct {
	Position Position
	Message  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

func schemaErrorf(pos Position, format string, args ...interface{}) *SchemaError {
	return &SchemaError{Position: pos, Message: fmt.Sprintf(format, args...)}
}
