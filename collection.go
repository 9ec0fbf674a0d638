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

package dguard

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"dirpx.dev/dguard/reason"
)

// elements is the view the collection checks share. size is -1 when the
// count is only known by traversing all.
type elements[E any] struct {
	all  iter.Seq[E]
	size int
}

// count returns the number of elements, traversing at most limit of them
// when the size is unknown. A result equal to limit means "limit or more".
func (e elements[E]) count(limit int) int {
	if e.size >= 0 {
		return e.size
	}
	if limit <= 0 {
		return 0
	}
	n := 0
	for range e.all {
		n++
		if n >= limit {
			break
		}
	}
	return n
}

// occurrences counts elements structurally equal to v, stopping at limit.
func (e elements[E]) occurrences(v E, limit int) int {
	n := 0
	for x := range e.all {
		if reflect.DeepEqual(x, v) {
			n++
			if n >= limit {
				break
			}
		}
	}
	return n
}

func (e elements[E]) hasNil() bool {
	for x := range e.all {
		if isNil(x) {
			return true
		}
	}
	return false
}

func ifEmpty[X, E any](c *Chain[X], els elements[E]) {
	if c.live() && els.count(1) == 0 {
		c.invalid(reason.CollectionEmpty, "Collection should not be empty.")
	}
}

func ifNotEmpty[X, E any](c *Chain[X], els elements[E]) {
	if c.live() && els.count(1) > 0 {
		c.invalid(reason.CollectionNotEmpty, "Collection should be empty.")
	}
}

func ifCountGreaterThan[X, E any](c *Chain[X], els elements[E], n int) {
	if c.live() && els.count(max(n+1, 0)) > n {
		c.invalid(reason.CollectionCountGreater,
			fmt.Sprintf("Collection count should not be greater than %d.", n),
			WithDetailOption("limit", n))
	}
}

func ifCountLessThan[X, E any](c *Chain[X], els elements[E], n int) {
	if c.live() && els.count(max(n, 0)) < n {
		c.invalid(reason.CollectionCountLess,
			fmt.Sprintf("Collection count should not be less than %d.", n),
			WithDetailOption("limit", n))
	}
}

func ifCountEquals[X, E any](c *Chain[X], els elements[E], n int) {
	if c.live() && els.count(max(n+1, 0)) == n {
		c.invalid(reason.CollectionCountEqual,
			fmt.Sprintf("Collection count should not be equal to %d.", n),
			WithDetailOption("count", n))
	}
}

func ifCountNotEquals[X, E any](c *Chain[X], els elements[E], n int) {
	if c.live() && els.count(max(n+1, 0)) != n {
		c.invalid(reason.CollectionCountNotEqual,
			fmt.Sprintf("Collection count should be equal to %d.", n),
			WithDetailOption("count", n))
	}
}

func ifHasNilElements[X, E any](c *Chain[X], els elements[E]) {
	if c.live() && els.hasNil() {
		c.invalid(reason.CollectionNilElement, "Collection should not have null elements.")
	}
}

func ifContains[X, E any](c *Chain[X], els elements[E], v E) {
	if c.live() && els.occurrences(v, 1) > 0 {
		c.invalid(reason.CollectionContains, "Collection should not contain element.",
			WithDetailOption("element", v))
	}
}

func ifNotContains[X, E any](c *Chain[X], els elements[E], v E) {
	if c.live() && els.occurrences(v, 1) == 0 {
		c.invalid(reason.CollectionNotContains, "Collection should contain element.",
			WithDetailOption("element", v))
	}
}

func ifContainsOnce[X, E any](c *Chain[X], els elements[E], v E) {
	if c.live() && els.occurrences(v, 2) == 1 {
		c.invalid(reason.CollectionContainsOnce, "Collection should not contain element only once.",
			WithDetailOption("element", v))
	}
}

func ifNotContainsOnce[X, E any](c *Chain[X], els elements[E], v E) {
	if c.live() && els.occurrences(v, 2) != 1 {
		c.invalid(reason.CollectionNotContainsOnce, "Collection should contain element only once.",
			WithDetailOption("element", v))
	}
}

// CollectionChain validates a slice. Its count is known without traversal.
type CollectionChain[S ~[]E, E any] struct {
	Chain[S]
}

// Slice starts a chain for s named name. A nil slice raises the
// null-argument kind; an empty non-nil slice does not.
func Slice[S ~[]E, E any](s S, name string, custom ...Customization) CollectionChain[S, E] {
	c := CollectionChain[S, E]{newChain(s, name, custom)}
	if s == nil {
		c.null()
	}
	return c
}

func (c CollectionChain[S, E]) elements() elements[E] {
	return elements[E]{all: slices.Values(c.value), size: len(c.value)}
}

// With returns the chain with cu as its customization. A nil cu
// restores the defaults; a failure already recorded is kept.
func (c CollectionChain[S, E]) With(cu Customization) CollectionChain[S, E] {
	c.Chain = c.with(cu)
	return c
}

// Throw is With(Message(msg)).
func (c CollectionChain[S, E]) Throw(msg string) CollectionChain[S, E] {
	return c.With(Message(msg))
}

// ThrowFunc is With(Factory(f)).
func (c CollectionChain[S, E]) ThrowFunc(f func() error) CollectionChain[S, E] {
	return c.With(Factory(f))
}

// ThrowNamed is With(NamedFactory(f)).
func (c CollectionChain[S, E]) ThrowNamed(f func(string) error) CollectionChain[S, E] {
	return c.With(NamedFactory(f))
}

// OnlyInDebug mutes the chain in builds tagged dguard_release.
func (c CollectionChain[S, E]) OnlyInDebug() CollectionChain[S, E] {
	c.Chain = c.muteUnless(debugBuild)
	return c
}

func (c *CollectionChain[S, E]) bind(v S, name string, custom Customization) {
	*c = Slice[S, E](v, name, custom)
}

// IfEmpty fails when there are no elements.
func (c CollectionChain[S, E]) IfEmpty() CollectionChain[S, E] {
	ifEmpty(&c.Chain, c.elements())
	return c
}

// IfNotEmpty fails when there is at least one element.
func (c CollectionChain[S, E]) IfNotEmpty() CollectionChain[S, E] {
	ifNotEmpty(&c.Chain, c.elements())
	return c
}

// IfCountGreaterThan fails when there are more than n elements. A
// count of n passes both this and IfCountLessThan.
func (c CollectionChain[S, E]) IfCountGreaterThan(n int) CollectionChain[S, E] {
	ifCountGreaterThan(&c.Chain, c.elements(), n)
	return c
}

// IfCountLessThan fails when there are fewer than n elements.
func (c CollectionChain[S, E]) IfCountLessThan(n int) CollectionChain[S, E] {
	ifCountLessThan(&c.Chain, c.elements(), n)
	return c
}

// IfCountEquals fails when there are exactly n elements.
func (c CollectionChain[S, E]) IfCountEquals(n int) CollectionChain[S, E] {
	ifCountEquals(&c.Chain, c.elements(), n)
	return c
}

// IfCountNotEquals fails unless there are exactly n elements.
func (c CollectionChain[S, E]) IfCountNotEquals(n int) CollectionChain[S, E] {
	ifCountNotEquals(&c.Chain, c.elements(), n)
	return c
}

// IfHasNilElements fails when an element is a nil pointer, map, slice,
// func, channel or interface.
func (c CollectionChain[S, E]) IfHasNilElements() CollectionChain[S, E] {
	ifHasNilElements(&c.Chain, c.elements())
	return c
}

// IfContains fails when an element deep-equals v.
func (c CollectionChain[S, E]) IfContains(v E) CollectionChain[S, E] {
	ifContains(&c.Chain, c.elements(), v)
	return c
}

// IfNotContains fails unless an element deep-equals v.
func (c CollectionChain[S, E]) IfNotContains(v E) CollectionChain[S, E] {
	ifNotContains(&c.Chain, c.elements(), v)
	return c
}

// IfContainsOnce fails when exactly one element deep-equals v.
func (c CollectionChain[S, E]) IfContainsOnce(v E) CollectionChain[S, E] {
	ifContainsOnce(&c.Chain, c.elements(), v)
	return c
}

// IfNotContainsOnce fails unless exactly one element deep-equals v.
func (c CollectionChain[S, E]) IfNotContainsOnce(v E) CollectionChain[S, E] {
	ifNotContainsOnce(&c.Chain, c.elements(), v)
	return c
}

// SeqChain validates a sequence. Every cardinality or membership check
// traverses it again, stopping as soon as the outcome is settled; a
// single-use sequence is therefore consumed by the first check.
type SeqChain[E any] struct {
	Chain[iter.Seq[E]]
}

// Seq starts a chain for seq named name. A nil seq raises the
// null-argument kind.
func Seq[E any](seq iter.Seq[E], name string, custom ...Customization) SeqChain[E] {
	c := SeqChain[E]{newChain(seq, name, custom)}
	if seq == nil {
		c.null()
	}
	return c
}

func (c SeqChain[E]) elements() elements[E] {
	return elements[E]{all: c.value, size: -1}
}

// With returns the chain with cu as its customization. A nil cu
// restores the defaults; a failure already recorded is kept.
func (c SeqChain[E]) With(cu Customization) SeqChain[E] {
	c.Chain = c.with(cu)
	return c
}

// Throw is With(Message(msg)).
func (c SeqChain[E]) Throw(msg string) SeqChain[E] { return c.With(Message(msg)) }

// ThrowFunc is With(Factory(f)).
func (c SeqChain[E]) ThrowFunc(f func() error) SeqChain[E] { return c.With(Factory(f)) }

// ThrowNamed is With(NamedFactory(f)).
func (c SeqChain[E]) ThrowNamed(f func(string) error) SeqChain[E] { return c.With(NamedFactory(f)) }

// OnlyInDebug mutes the chain in builds tagged dguard_release.
func (c SeqChain[E]) OnlyInDebug() SeqChain[E] {
	c.Chain = c.muteUnless(debugBuild)
	return c
}

func (c *SeqChain[E]) bind(v iter.Seq[E], name string, custom Customization) {
	*c = Seq(v, name, custom)
}

// IfEmpty is CollectionChain.IfEmpty for a sequence.
func (c SeqChain[E]) IfEmpty() SeqChain[E] {
	ifEmpty(&c.Chain, c.elements())
	return c
}

// IfNotEmpty is CollectionChain.IfNotEmpty for a sequence.
func (c SeqChain[E]) IfNotEmpty() SeqChain[E] {
	ifNotEmpty(&c.Chain, c.elements())
	return c
}

// IfCountGreaterThan is CollectionChain.IfCountGreaterThan for a sequence.
func (c SeqChain[E]) IfCountGreaterThan(n int) SeqChain[E] {
	ifCountGreaterThan(&c.Chain, c.elements(), n)
	return c
}

// IfCountLessThan is CollectionChain.IfCountLessThan for a sequence.
func (c SeqChain[E]) IfCountLessThan(n int) SeqChain[E] {
	ifCountLessThan(&c.Chain, c.elements(), n)
	return c
}

// IfCountEquals is CollectionChain.IfCountEquals for a sequence.
func (c SeqChain[E]) IfCountEquals(n int) SeqChain[E] {
	ifCountEquals(&c.Chain, c.elements(), n)
	return c
}

// IfCountNotEquals is CollectionChain.IfCountNotEquals for a sequence.
func (c SeqChain[E]) IfCountNotEquals(n int) SeqChain[E] {
	ifCountNotEquals(&c.Chain, c.elements(), n)
	return c
}

// IfHasNilElements is CollectionChain.IfHasNilElements for a sequence.
func (c SeqChain[E]) IfHasNilElements() SeqChain[E] {
	ifHasNilElements(&c.Chain, c.elements())
	return c
}

// IfContains is CollectionChain.IfContains for a sequence.
func (c SeqChain[E]) IfContains(v E) SeqChain[E] {
	ifContains(&c.Chain, c.elements(), v)
	return c
}

// IfNotContains is CollectionChain.IfNotContains for a sequence.
func (c SeqChain[E]) IfNotContains(v E) SeqChain[E] {
	ifNotContains(&c.Chain, c.elements(), v)
	return c
}

// IfContainsOnce is CollectionChain.IfContainsOnce for a sequence.
func (c SeqChain[E]) IfContainsOnce(v E) SeqChain[E] {
	ifContainsOnce(&c.Chain, c.elements(), v)
	return c
}

// IfNotContainsOnce is CollectionChain.IfNotContainsOnce for a sequence.
func (c SeqChain[E]) IfNotContainsOnce(v E) SeqChain[E] {
	ifNotContainsOnce(&c.Chain, c.elements(), v)
	return c
}
