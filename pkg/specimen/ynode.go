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
	"errors"
	"fmt"
	"io"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"
)

// Position is the origin of a YAML node, used for diagnostics.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

func positionOf(file string, node *yamlv3.Node) Position {
	return Position{File: file, Line: node.Line, Column: node.Column}
}

// loadDocuments parses a YAML source string into one node per document. It
// is the entirety of what C1 asks of the loader: gopkg.in/yaml.v3 already
// carries positions and a tagged-variant node kind, so there is nothing
// more to build here than unwrapping the document wrapper.
func loadDocuments(source string) ([]*yamlv3.Node, error) {
	decoder := yamlv3.NewDecoder(strings.NewReader(source))

	var docs []*yamlv3.Node
	for {
		var doc yamlv3.Node
		if err := decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return docs, err
		}

		if len(doc.Content) == 0 {
			continue
		}

		docs = append(docs, doc.Content[0])
	}

	return docs, nil
}

// isMapping reports whether node is a YAML mapping.
func isMapping(node *yamlv3.Node) bool {
	return node != nil && node.Kind == yamlv3.MappingNode
}

// isSequence reports whether node is a YAML sequence.
func isSequence(node *yamlv3.Node) bool {
	return node != nil && node.Kind == yamlv3.SequenceNode
}

// isScalarString reports whether node is a plain scalar that decodes to a string.
func isScalarString(node *yamlv3.Node) bool {
	return node != nil && node.Kind == yamlv3.ScalarNode && (node.Tag == "!!str" || node.Tag == "")
}

// mappingPairs returns the ordered (key, value) node pairs of a mapping.
// It is a BadValue (nil, nil pairs) situation for the caller to detect via
// isMapping before calling this.
func mappingPairs(node *yamlv3.Node) [][2]*yamlv3.Node {
	pairs := make([][2]*yamlv3.Node, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		pairs = append(pairs, [2]*yamlv3.Node{node.Content[i], node.Content[i+1]})
	}

	return pairs
}

// stringValue decodes a scalar node into a Go string, the BadValue
// sentinel being reported as ok=false rather than a zero value.
func stringValue(node *yamlv3.Node) (string, bool) {
	if !isScalarString(node) {
		return "", false
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return "", false
	}

	return s, true
}

// scalarText returns the raw token of any scalar node, regardless of its
// resolved tag, reporting ok=false only for non-scalars. A data matrix
// value of `5` or `true` is stored as the string a user reading the YAML
// back would see ("5", "true"), not decoded into its tagged Go type.
func scalarText(node *yamlv3.Node) (string, bool) {
	if node == nil || node.Kind != yamlv3.ScalarNode {
		return "", false
	}

	return node.Value, true
}
