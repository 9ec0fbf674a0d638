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

	"dirpx.dev/dguard/reason"
)

// MapChain validates a map. A nil map raises the null-argument kind.
type MapChain[M ~map[K]V, K comparable, V any] struct {
	Chain[M]
}

// Map starts a chain for m named name.
func Map[M ~map[K]V, K comparable, V any](m M, name string, custom ...Customization) MapChain[M, K, V] {
	c := MapChain[M, K, V]{newChain(m, name, custom)}
	if m == nil {
		c.null()
	}
	return c
}

// With returns the chain with cu as its customization. A nil cu
// restores the defaults; a failure already recorded is kept.
func (c MapChain[M, K, V]) With(cu Customization) MapChain[M, K, V] {
	c.Chain = c.with(cu)
	return c
}

// Throw is With(Message(msg)).
func (c MapChain[M, K, V]) Throw(msg string) MapChain[M, K, V] { return c.With(Message(msg)) }

// ThrowFunc is With(Factory(f)).
func (c MapChain[M, K, V]) ThrowFunc(f func() error) MapChain[M, K, V] {
	return c.With(Factory(f))
}

// ThrowNamed is With(NamedFactory(f)).
func (c MapChain[M, K, V]) ThrowNamed(f func(string) error) MapChain[M, K, V] {
	return c.With(NamedFactory(f))
}

// OnlyInDebug mutes the chain in builds tagged dguard_release.
func (c MapChain[M, K, V]) OnlyInDebug() MapChain[M, K, V] {
	c.Chain = c.muteUnless(debugBuild)
	return c
}

func (c *MapChain[M, K, V]) bind(v M, name string, custom Customization) {
	*c = Map[M, K, V](v, name, custom)
}

// IfEmpty fails when the map has no entries.
func (c MapChain[M, K, V]) IfEmpty() MapChain[M, K, V] {
	if c.live() && len(c.value) == 0 {
		c.invalid(reason.MapEmpty, "Dictionary should not be empty.")
	}
	return c
}

// IfNotEmpty fails when the map has entries.
func (c MapChain[M, K, V]) IfNotEmpty() MapChain[M, K, V] {
	if c.live() && len(c.value) > 0 {
		c.invalid(reason.MapNotEmpty, "Dictionary should be empty.")
	}
	return c
}

// IfContainsKey fails when k is present.
func (c MapChain[M, K, V]) IfContainsKey(k K) MapChain[M, K, V] {
	if _, ok := c.value[k]; c.live() && ok {
		c.invalid(reason.MapKeyPresent,
			fmt.Sprintf("Dictionary should not contain key %s.", formatValue(k)),
			WithDetailOption("key", k))
	}
	return c
}

// IfNotContainsKey fails when k is absent.
func (c MapChain[M, K, V]) IfNotContainsKey(k K) MapChain[M, K, V] {
	if _, ok := c.value[k]; c.live() && !ok {
		c.invalid(reason.MapKeyMissing,
			fmt.Sprintf("Dictionary should contain key %s.", formatValue(k)),
			WithDetailOption("key", k))
	}
	return c
}

// IfCountGreaterThan fails when the map holds more than n entries.
// It is not the negation of IfCountLessThan: a count of n passes both.
func (c MapChain[M, K, V]) IfCountGreaterThan(n int) MapChain[M, K, V] {
	if c.live() && len(c.value) > n {
		c.invalid(reason.MapCountGreater,
			fmt.Sprintf("Dictionary count should not be greater than %d.", n),
			WithDetailOption("limit", n))
	}
	return c
}

// IfCountLessThan fails when the map holds fewer than n entries.
func (c MapChain[M, K, V]) IfCountLessThan(n int) MapChain[M, K, V] {
	if c.live() && len(c.value) < n {
		c.invalid(reason.MapCountLess,
			fmt.Sprintf("Dictionary count should not be less than %d.", n),
			WithDetailOption("limit", n))
	}
	return c
}

// IfHasNilValues fails when any value of a nilable type is nil.
func (c MapChain[M, K, V]) IfHasNilValues() MapChain[M, K, V] {
	if !c.live() {
		return c
	}
	for _, v := range c.value {
		if isNil(v) {
			c.invalid(reason.MapNilValue, "Dictionary should not have null values.")
			break
		}
	}
	return c
}
