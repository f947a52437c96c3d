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
	"sort"

	"github.com/mitchellh/hashstructure"
)

// Tile is a single point in a data matrix's cartesian product, handed to
// the callback. It must not be retained past the callback's own return.
type Tile map[string]string

// MultiStringMap is an insertion-ordered mapping from string key to a
// non-empty ordered sequence of string values.
type MultiStringMap struct {
	keys   []string
	values map[string][]string
}

// NewMultiStringMap returns an empty, ready-to-use map.
func NewMultiStringMap() MultiStringMap {
	return MultiStringMap{values: map[string][]string{}}
}

// Set inserts or overwrites key with the given non-empty value sequence,
// preserving key's original insertion position if it already existed.
func (m *MultiStringMap) Set(key string, values []string) {
	if m.values == nil {
		m.values = map[string][]string{}
	}

	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}

	m.values[key] = values
}

// Get returns the value sequence for key, and whether it was present.
func (m MultiStringMap) Get(key string) ([]string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m MultiStringMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of keys.
func (m MultiStringMap) Len() int {
	return len(m.keys)
}

// Clone returns a copy that shares no mutable state with m.
func (m MultiStringMap) Clone() MultiStringMap {
	clone := NewMultiStringMap()
	clone.keys = append([]string(nil), m.keys...)
	for k, v := range m.values {
		clone.values[k] = append([]string(nil), v...)
	}

	return clone
}

// Equal reports whether m and other have the same keys, in the same
// insertion order, each mapped to the same ordered value sequence.
func (m MultiStringMap) Equal(other MultiStringMap) bool {
	if len(m.keys) != len(other.keys) {
		return false
	}

	for i, key := range m.keys {
		if other.keys[i] != key {
			return false
		}

		a, b := m.values[key], other.values[key]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}

	return true
}

// Hash returns a structural fingerprint of m that does not depend on key
// insertion order, suitable for proving the Determinism testable property
// (two runs over identical input produce the same digest) without
// depending on map iteration order in the hashing library itself.
func (m MultiStringMap) Hash() (uint64, error) {
	normalized := make(map[string][]string, len(m.keys))
	for _, key := range m.keys {
		normalized[key] = m.values[key]
	}

	sortedKeys := make([]string, 0, len(m.keys))
	for k := range normalized {
		sortedKeys = append(sortedKeys, k)
	}
	sort.Strings(sortedKeys)

	ordered := make([]struct {
		Key    string
		Values []string
	}, 0, len(sortedKeys))
	for _, k := range sortedKeys {
		ordered = append(ordered, struct {
			Key    string
			Values []string
		}{Key: k, Values: normalized[k]})
	}

	return hashstructure.Hash(ordered, nil)
}

// Product returns a lazily-evaluated iterator over the cartesian product
// of m's value sequences. The odometer increments the last inserted key
// fastest (least significant) and the first inserted key slowest (most
// significant), per spec.
func (m MultiStringMap) Product() *ProductIterator {
	n := len(m.keys)
	reversedKeys := make([]string, n)
	reversedSizes := make([]int, n)
	for i, key := range m.keys {
		reversedKeys[n-1-i] = key
		reversedSizes[n-1-i] = len(m.values[key])
	}

	combination := Tile{}
	for _, key := range m.keys {
		if values := m.values[key]; len(values) > 0 {
			combination[key] = values[0]
		}
	}

	return &ProductIterator{
		source:        m,
		reversedKeys:  reversedKeys,
		reversedSizes: reversedSizes,
		reversedIndex: make([]int, n),
		first:         true,
		combination:   combination,
	}
}

// ProductIterator enumerates the combinations of a MultiStringMap's value
// sequences one at a time.
type ProductIterator struct {
	source        MultiStringMap
	reversedKeys  []string
	reversedSizes []int
	reversedIndex []int
	first         bool
	stopped       bool
	combination   Tile
}

// Next advances the iterator and returns the current combination. The
// returned Tile is a reference to an internal buffer updated in place; the
// caller must not retain it past the next call to Next.
func (it *ProductIterator) Next() (Tile, bool) {
	if it.stopped {
		return nil, false
	}

	if it.first {
		it.first = false
		return it.combination, true
	}

	if len(it.reversedIndex) == 0 {
		it.stopped = true
		return nil, false
	}

	n := 0
	it.advance(n)
	for it.reversedIndex[n] == 0 {
		n++
		if n >= len(it.reversedIndex) {
			it.stopped = true
			return nil, false
		}
		it.advance(n)
	}

	return it.combination, true
}

func (it *ProductIterator) advance(n int) {
	it.reversedIndex[n] = (it.reversedIndex[n] + 1) % it.reversedSizes[n]

	key := it.reversedKeys[n]
	it.combination[key] = it.source.values[key][it.reversedIndex[n]]
}
