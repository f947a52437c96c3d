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
	yamlv3 "gopkg.in/yaml.v3"
)

// reserved keys never contribute to a slab's data matrix.
const (
	keyFlag    = "flag"
	keyContent = "content"
	keyAbout   = "about"

	// filepathKey is injected into every root-document slab's matrix.
	filepathKey = "filepath"

	// maxRecursionDepth bounds the naturally recursive tree-init pass
	// before it falls back to an explicit work stack, per the "Recursive
	// descent" design note. The populate pass always recurses.
	maxRecursionDepth = 200
)

// Slab is a node in the specification tree, corresponding to one YAML
// mapping.
type Slab struct {
	Position   Position
	Flag       Flag
	IsLeaf     bool
	DataMatrix MultiStringMap
	Children   []*Slab

	node     *yamlv3.Node
	filePath string

	// pendingWarnings accumulates C2 flag-parser warnings discovered while
	// building this slab; the runner drains them into the sink before
	// execution.
	pendingWarnings []Warning
}

// collectWarnings walks slab and its subtree, returning every pending
// flag-parser warning in document order.
func collectWarnings(slab *Slab) []Warning {
	var warnings []Warning
	warnings = append(warnings, slab.pendingWarnings...)
	for _, child := range slab.Children {
		warnings = append(warnings, collectWarnings(child)...)
	}

	return warnings
}

// ParseFile runs the parsing pass (§4.4) over a single file's contents. A
// YAML tokenizer failure is reported as a Diagnostic and yields zero
// slabs; schema violations are fatal and abort the caller's whole run.
func ParseFile(path, contents string) ([]*Slab, []Diagnostic, error) {
	documents, err := loadDocuments(contents)
	if err != nil {
		return nil, []Diagnostic{{Path: path, Message: err.Error()}}, nil
	}

	slabs := make([]*Slab, 0, len(documents))
	for _, doc := range documents {
		if !isMapping(doc) {
			return nil, nil, schemaErrorf(positionOf(path, doc), "the root node of the specification file must be a mapping")
		}

		slab := &Slab{
			Position: positionOf(path, doc),
			Flag:     FlagNone,
			IsLeaf:   true,
			filePath: path,
			node:     doc,
		}

		if err := initializeTree(slab, 0); err != nil {
			return nil, nil, err
		}

		slabs = append(slabs, slab)
	}

	return slabs, nil, nil
}

// initializeTree fills flag, IsLeaf and Children for slab and, recursively,
// for every descendant named under its `content` key. It expects
// slab.node and slab.filePath to already be set.
func initializeTree(slab *Slab, depth int) error {
	if depth >= maxRecursionDepth {
		return initializeTreeIterative(slab)
	}

	if !isMapping(slab.node) {
		return schemaErrorf(slab.Position, "a content entry must be a YAML mapping")
	}

	for _, pair := range mappingPairs(slab.node) {
		keyNode, valueNode := pair[0], pair[1]

		keyName, ok := stringValue(keyNode)
		if !ok {
			return schemaErrorf(positionOf(slab.filePath, keyNode), "using non-string keys is not supported")
		}

		switch keyName {
		case keyFlag:
			if valueNode.Tag == "!!null" {
				continue
			}

			flag, warnings, err := parseFlag(slab.Position, valueNode)
			if err != nil {
				return err
			}
			slab.Flag = flag
			slab.pendingWarnings = append(slab.pendingWarnings, warnings...)

		case keyContent:
			if !isSequence(valueNode) || len(valueNode.Content) == 0 {
				return schemaErrorf(positionOf(slab.filePath, valueNode), "the value associated with the content keyword must be a non-empty sequence of mappings")
			}

			slab.IsLeaf = false
			slab.Children = make([]*Slab, 0, len(valueNode.Content))
			for _, childNode := range valueNode.Content {
				child := &Slab{
					Position: positionOf(slab.filePath, childNode),
					Flag:     FlagNone,
					IsLeaf:   true,
					filePath: slab.filePath,
					node:     childNode,
				}

				if err := initializeTree(child, depth+1); err != nil {
					return err
				}

				slab.Children = append(slab.Children, child)
			}
		}
	}

	// A slab with a `content` key must have produced at least one child
	// per (I2) — an empty sequence is already rejected as a schema error
	// by the YAML-list check above, so no further validation is needed
	// here. Flag == Skip does not stop tree construction (I3 only prunes
	// selection and execution, handled by the focus selector and leaf
	// extractor).
	return nil
}

// initializeTreeIterative is the explicit work-stack fallback for
// pathologically deep specification trees, used once initializeTree's
// natural recursion would exceed maxRecursionDepth.
func initializeTreeIterative(root *Slab) error {
	type frame struct {
		slab *Slab
	}

	stack := []frame{{slab: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		slab := top.slab
		if !isMapping(slab.node) {
			return schemaErrorf(slab.Position, "a content entry must be a YAML mapping")
		}

		for _, pair := range mappingPairs(slab.node) {
			keyNode, valueNode := pair[0], pair[1]

			keyName, ok := stringValue(keyNode)
			if !ok {
				return schemaErrorf(positionOf(slab.filePath, keyNode), "using non-string keys is not supported")
			}

			switch keyName {
			case keyFlag:
				if valueNode.Tag == "!!null" {
					continue
				}
				flag, warnings, err := parseFlag(slab.Position, valueNode)
				if err != nil {
					return err
				}
				slab.Flag = flag
				slab.pendingWarnings = append(slab.pendingWarnings, warnings...)

			case keyContent:
				if !isSequence(valueNode) || len(valueNode.Content) == 0 {
					return schemaErrorf(positionOf(slab.filePath, valueNode), "the value associated with the content keyword must be a non-empty sequence of mappings")
				}

				slab.IsLeaf = false
				slab.Children = make([]*Slab, 0, len(valueNode.Content))
				for _, childNode := range valueNode.Content {
					child := &Slab{
						Position: positionOf(slab.filePath, childNode),
						Flag:     FlagNone,
						IsLeaf:   true,
						filePath: slab.filePath,
						node:     childNode,
					}
					slab.Children = append(slab.Children, child)
				}
			}
		}

		for _, child := range slab.Children {
			stack = append(stack, frame{slab: child})
		}
	}

	return nil
}

// Populate runs the inheritance pass (§4.4 step 4) over slab and its
// descendants, seeding from inherited. reserveAbout resolves spec.md's
// Open Question #1: whether `about` is a third reserved key alongside
// `flag`/`content`, or only the first two are reserved (an older source
// variant's behavior, kept available for compatibility).
func Populate(slab *Slab, inherited MultiStringMap, reserveAbout bool) error {
	return populate(slab, inherited, reserveAbout, 0)
}

func populate(slab *Slab, inherited MultiStringMap, reserveAbout bool, depth int) error {
	if !isMapping(slab.node) {
		return schemaErrorf(slab.Position, "a content entry must be a YAML mapping")
	}

	slab.DataMatrix = inherited.Clone()

	for _, pair := range mappingPairs(slab.node) {
		keyNode, valueNode := pair[0], pair[1]

		keyName, ok := stringValue(keyNode)
		if !ok {
			return schemaErrorf(positionOf(slab.filePath, keyNode), "using non-string keys is not supported")
		}

		if keyName == keyFlag || keyName == keyContent || (reserveAbout && keyName == keyAbout) {
			continue
		}

		values, err := matrixValues(slab, valueNode, keyName)
		if err != nil {
			return err
		}

		slab.DataMatrix.Set(keyName, values)
	}

	for _, child := range slab.Children {
		if err := populate(child, slab.DataMatrix, reserveAbout, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func matrixValues(slab *Slab, valueNode *yamlv3.Node, keyName string) ([]string, error) {
	pos := positionOf(slab.filePath, valueNode)

	switch {
	case valueNode.Kind == yamlv3.ScalarNode:
		s, _ := scalarText(valueNode)
		return []string{s}, nil

	case isSequence(valueNode):
		if len(valueNode.Content) == 0 {
			return nil, schemaErrorf(pos, "the value sequence for key %q must not be empty", keyName)
		}

		values := make([]string, 0, len(valueNode.Content))
		for _, entry := range valueNode.Content {
			s, ok := scalarText(entry)
			if !ok {
				return nil, schemaErrorf(positionOf(slab.filePath, entry), "every element of the value sequence for key %q must be a scalar", keyName)
			}
			values = append(values, s)
		}
		return values, nil

	default:
		return nil, schemaErrorf(pos, "the value for key %q must be a scalar or a non-empty sequence of scalars", keyName)
	}
}
