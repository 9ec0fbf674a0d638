/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package segmenttrie indexes dot-separated reason patterns for
// longest-prefix matching on segment boundaries. A "*" segment in a
// pattern matches exactly one reason segment.
package segmenttrie

import (
	"errors"
	"strings"
)

// ErrInvalidPattern is returned by Insert for an empty pattern, an empty or
// malformed segment, or a pattern made only of wildcards.
var ErrInvalidPattern = errors.New("segmenttrie: invalid pattern")

// Rule is a stored pattern with its value.
type Rule[T any] struct {
	Pattern string
	Value   T
}

// Trie is not safe for concurrent Insert; once built it may be matched
// from any number of goroutines.
type Trie[T any] struct {
	root node[T]
	size int
}

type node[T any] struct {
	children map[string]*node[T]
	rule     *Rule[T]
}

func New[T any]() *Trie[T] {
	return &Trie[T]{}
}

// Len returns the number of distinct patterns.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert stores v under pattern, replacing the value of an equal pattern.
//
//	t.Insert("string", 400)
//	t.Insert("collection.count_*", 422) // invalid: "*" is a whole segment
//	t.Insert("*.parse", 400)
func (t *Trie[T]) Insert(pattern string, v T) error {
	if t == nil || !validPattern(pattern) {
		return ErrInvalidPattern
	}
	cur := &t.root
	for seg := range strings.SplitSeq(pattern, ".") {
		next := cur.children[seg]
		if next == nil {
			if cur.children == nil {
				cur.children = make(map[string]*node[T])
			}
			next = &node[T]{}
			cur.children[seg] = next
		}
		cur = next
	}
	if cur.rule == nil {
		t.size++
	}
	cur.rule = &Rule[T]{Pattern: pattern, Value: v}
	return nil
}

// Match returns the rule with the most segments that prefixes reason. On
// equal depth a literal segment beats "*". A malformed reason matches only
// up to its first bad segment.
func (t *Trie[T]) Match(reason string) (Rule[T], bool) {
	if t == nil {
		return Rule[T]{}, false
	}
	w := walker[T]{reason: reason, depth: -1}
	w.walk(&t.root, 0, 0)
	if w.best == nil {
		return Rule[T]{}, false
	}
	return *w.best, true
}

type walker[T any] struct {
	reason string
	best   *Rule[T]
	depth  int
}

func (w *walker[T]) walk(n *node[T], off, depth int) {
	if n.rule != nil && depth > w.depth {
		w.best, w.depth = n.rule, depth
	}
	if off >= len(w.reason) || len(n.children) == 0 {
		return
	}
	seg, next, ok := segment(w.reason, off)
	if !ok {
		return
	}
	if c := n.children[seg]; c != nil {
		w.walk(c, next, depth+1)
	}
	if c := n.children["*"]; c != nil {
		w.walk(c, next, depth+1)
	}
}

// segment reads the segment starting at off. next is the offset of the
// following segment.
func segment(s string, off int) (seg string, next int, ok bool) {
	end := strings.IndexByte(s[off:], '.')
	if end < 0 {
		end = len(s)
	} else {
		end += off
	}
	seg = s[off:end]
	if !validSegment(seg) {
		return "", 0, false
	}
	if end < len(s) {
		end++
	}
	return seg, end, true
}

func validPattern(p string) bool {
	if p == "" {
		return false
	}
	literal := false
	for seg := range strings.SplitSeq(p, ".") {
		switch {
		case seg == "*":
		case validSegment(seg):
			literal = true
		default:
			return false
		}
	}
	return literal
}

// validSegment reports whether seg matches [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
