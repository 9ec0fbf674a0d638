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
	"cmp"
	"fmt"

	"dirpx.dev/dguard/reason"
)

// NumberChain validates an ordered value: integers, floats and anything
// else satisfying cmp.Ordered. Ordering checks raise the out-of-range kind
// carrying the offending value; equality checks raise invalid-argument.
//
// NaN compares unordered under cmp.Compare's rules: it is less than every
// other value and equal to itself.
type NumberChain[T cmp.Ordered] struct {
	Chain[T]
}

// Number starts a chain for n named name.
func Number[T cmp.Ordered](n T, name string, custom ...Customization) NumberChain[T] {
	return NumberChain[T]{newChain(n, name, custom)}
}

// NullableNumber lifts a pointer to a number; nil raises the null-argument
// kind.
func NullableNumber[T cmp.Ordered](p *T, name string, custom ...Customization) NumberChain[T] {
	if p == nil {
		var zero T
		c := Number(zero, name, custom...)
		c.null()
		return c
	}
	return Number(*p, name, custom...)
}

// With returns the chain with cu as its customization. A nil cu
// restores the defaults; a failure already recorded is kept.
func (c NumberChain[T]) With(cu Customization) NumberChain[T] {
	c.Chain = c.with(cu)
	return c
}

// Throw is With(Message(msg)).
func (c NumberChain[T]) Throw(msg string) NumberChain[T] { return c.With(Message(msg)) }

// ThrowFunc is With(Factory(f)).
func (c NumberChain[T]) ThrowFunc(f func() error) NumberChain[T] { return c.With(Factory(f)) }

// ThrowNamed is With(NamedFactory(f)).
func (c NumberChain[T]) ThrowNamed(f func(string) error) NumberChain[T] {
	return c.With(NamedFactory(f))
}

// OnlyInDebug mutes the chain in builds tagged dguard_release.
func (c NumberChain[T]) OnlyInDebug() NumberChain[T] {
	c.Chain = c.muteUnless(debugBuild)
	return c
}

func (c *NumberChain[T]) bind(v T, name string, custom Customization) {
	*c = Number(v, name, custom)
}

// IfGreaterThan fails when value > limit.
func (c NumberChain[T]) IfGreaterThan(limit T) NumberChain[T] {
	if c.live() && cmp.Compare(c.value, limit) > 0 {
		c.outOfRange(reason.NumberGreater, c.value,
			fmt.Sprintf("Value should not be greater than %v.", limit),
			WithDetailOption("limit", limit))
	}
	return c
}

// IfGreaterThanOrEqualTo fails when value >= limit.
func (c NumberChain[T]) IfGreaterThanOrEqualTo(limit T) NumberChain[T] {
	if c.live() && cmp.Compare(c.value, limit) >= 0 {
		c.outOfRange(reason.NumberGreaterOrEqual, c.value,
			fmt.Sprintf("Value should not be greater than or equal to %v.", limit),
			WithDetailOption("limit", limit))
	}
	return c
}

// IfLessThan fails when value < limit.
func (c NumberChain[T]) IfLessThan(limit T) NumberChain[T] {
	if c.live() && cmp.Compare(c.value, limit) < 0 {
		c.outOfRange(reason.NumberLess, c.value,
			fmt.Sprintf("Value should not be less than %v.", limit),
			WithDetailOption("limit", limit))
	}
	return c
}

// IfLessThanOrEqualTo fails when value <= limit.
func (c NumberChain[T]) IfLessThanOrEqualTo(limit T) NumberChain[T] {
	if c.live() && cmp.Compare(c.value, limit) <= 0 {
		c.outOfRange(reason.NumberLessOrEqual, c.value,
			fmt.Sprintf("Value should not be less than or equal to %v.", limit),
			WithDetailOption("limit", limit))
	}
	return c
}

// IfOutOfRange fails unless min <= value <= max.
func (c NumberChain[T]) IfOutOfRange(min, max T) NumberChain[T] {
	if c.live() && (cmp.Compare(c.value, min) < 0 || cmp.Compare(c.value, max) > 0) {
		c.outOfRange(reason.NumberOutOfRange, c.value,
			fmt.Sprintf("Value should be between %v and %v.", min, max),
			WithDetailOption("min", min), WithDetailOption("max", max))
	}
	return c
}

// IfInRange fails when min <= value <= max.
func (c NumberChain[T]) IfInRange(min, max T) NumberChain[T] {
	if c.live() && cmp.Compare(c.value, min) >= 0 && cmp.Compare(c.value, max) <= 0 {
		c.outOfRange(reason.NumberInRange, c.value,
			fmt.Sprintf("Value should not be between %v and %v.", min, max),
			WithDetailOption("min", min), WithDetailOption("max", max))
	}
	return c
}

// IfPositive fails when the value is greater than the zero value of T.
func (c NumberChain[T]) IfPositive() NumberChain[T] {
	var zero T
	if c.live() && cmp.Compare(c.value, zero) > 0 {
		c.outOfRange(reason.NumberPositive, c.value, "Value should not be positive.")
	}
	return c
}

// IfNegative fails when the value is less than the zero value of T. It is
// not the negation of IfPositive: zero passes both.
func (c NumberChain[T]) IfNegative() NumberChain[T] {
	var zero T
	if c.live() && cmp.Compare(c.value, zero) < 0 {
		c.outOfRange(reason.NumberNegative, c.value, "Value should not be negative.")
	}
	return c
}

// IfEquals fails when value == other.
func (c NumberChain[T]) IfEquals(other T) NumberChain[T] {
	if c.live() && cmp.Compare(c.value, other) == 0 {
		c.invalid(reason.NumberEqual, fmt.Sprintf("Value should not be equal to %v.", other))
	}
	return c
}

// IfNotEquals fails when value != other.
func (c NumberChain[T]) IfNotEquals(other T) NumberChain[T] {
	if c.live() && cmp.Compare(c.value, other) != 0 {
		c.invalid(reason.NumberNotEqual, fmt.Sprintf("Value should be equal to %v.", other))
	}
	return c
}

// IfZero fails for the zero value of T.
func (c NumberChain[T]) IfZero() NumberChain[T] {
	var zero T
	if c.live() && cmp.Compare(c.value, zero) == 0 {
		c.invalid(reason.NumberZero, "Value should not be zero.")
	}
	return c
}

// IfNotZero fails unless the value is the zero value of T.
func (c NumberChain[T]) IfNotZero() NumberChain[T] {
	var zero T
	if c.live() && cmp.Compare(c.value, zero) != 0 {
		c.invalid(reason.NumberNotZero, "Value should be zero.")
	}
	return c
}
