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

// Enumerated is implemented by enum-like types that know their own set of
// defined values.
type Enumerated interface {
	comparable
	Valid() bool
}

// EnumChain validates a value of an Enumerated type.
type EnumChain[T Enumerated] struct {
	Chain[T]
}

// Enum starts a chain for v named name.
func Enum[T Enumerated](v T, name string, custom ...Customization) EnumChain[T] {
	return EnumChain[T]{newChain(v, name, custom)}
}

// With returns the chain with cu as its customization. A nil cu
// restores the defaults; a failure already recorded is kept.
func (c EnumChain[T]) With(cu Customization) EnumChain[T] {
	c.Chain = c.with(cu)
	return c
}

// Throw is With(Message(msg)).
func (c EnumChain[T]) Throw(msg string) EnumChain[T] { return c.With(Message(msg)) }

// ThrowFunc is With(Factory(f)).
func (c EnumChain[T]) ThrowFunc(f func() error) EnumChain[T] { return c.With(Factory(f)) }

// ThrowNamed is With(NamedFactory(f)).
func (c EnumChain[T]) ThrowNamed(f func(string) error) EnumChain[T] { return c.With(NamedFactory(f)) }

// OnlyInDebug mutes the chain in builds tagged dguard_release.
func (c EnumChain[T]) OnlyInDebug() EnumChain[T] {
	c.Chain = c.muteUnless(debugBuild)
	return c
}

func (c *EnumChain[T]) bind(v T, name string, custom Customization) {
	*c = Enum(v, name, custom)
}

// IfOutOfRange fails when Valid reports false. It raises the out-of-range
// kind carrying the value.
func (c EnumChain[T]) IfOutOfRange() EnumChain[T] {
	if c.live() && !c.value.Valid() {
		c.outOfRange(reason.EnumUndefined, c.value, "Value should be defined in enum.")
	}
	return c
}

// IfEquals fails when the value equals other.
func (c EnumChain[T]) IfEquals(other T) EnumChain[T] {
	if c.live() && c.value == other {
		c.invalid(reason.EnumEqual, fmt.Sprintf("Value should not be equal to %s.", formatValue(other)))
	}
	return c
}

// IfNotEquals fails unless the value equals other.
func (c EnumChain[T]) IfNotEquals(other T) EnumChain[T] {
	if c.live() && c.value != other {
		c.invalid(reason.EnumNotEqual, fmt.Sprintf("Value should be equal to %s.", formatValue(other)))
	}
	return c
}
