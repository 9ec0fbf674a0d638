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
	"reflect"

	"dirpx.dev/dguard/reason"
)

// ValueChain validates a value of any type. It is the parent chain of Field
// and the home of equality, zero-value and type-identity checks.
type ValueChain[T any] struct {
	Chain[T]
}

// That starts a chain for v named name. A nil v (nil pointer, interface,
// map, slice, func or channel) raises the null-argument kind immediately
// and no check of the chain runs.
func That[T any](v T, name string, custom ...Customization) ValueChain[T] {
	c := ValueChain[T]{newChain(v, name, custom)}
	if isNil(v) {
		c.null()
	}
	return c
}

// Nullable lifts a pointer: nil raises the null-argument kind, anything
// else starts a chain for the pointee.
func Nullable[T any](p *T, name string, custom ...Customization) ValueChain[T] {
	if p == nil {
		c := ValueChain[T]{newChain(*new(T), name, custom)}
		c.null()
		return c
	}
	return That(*p, name, custom...)
}

// With replaces the customization of the chain. A nil cu restores the
// library defaults. It does not touch a failure already recorded.
func (c ValueChain[T]) With(cu Customization) ValueChain[T] {
	c.Chain = c.with(cu)
	return c
}

// Throw replaces the failure message while keeping the default error kind.
func (c ValueChain[T]) Throw(msg string) ValueChain[T] { return c.With(Message(msg)) }

// ThrowFunc raises the error returned by f on failure.
func (c ValueChain[T]) ThrowFunc(f func() error) ValueChain[T] { return c.With(Factory(f)) }

// ThrowNamed raises the error returned by f for the diagnostic name.
func (c ValueChain[T]) ThrowNamed(f func(name string) error) ValueChain[T] {
	return c.With(NamedFactory(f))
}

// OnlyInDebug disables the chain in builds tagged dguard_release.
func (c ValueChain[T]) OnlyInDebug() ValueChain[T] {
	c.Chain = c.muteUnless(debugBuild)
	return c
}

func (c *ValueChain[T]) bind(v T, name string, custom Customization) {
	*c = That(v, name, custom)
}

// IfEquals fails when the value is structurally equal to other.
func (c ValueChain[T]) IfEquals(other T) ValueChain[T] {
	if c.live() && reflect.DeepEqual(c.value, other) {
		c.invalid(reason.ValueEqual, fmt.Sprintf("Value should not be equal to %s.", formatValue(other)))
	}
	return c
}

// IfNotEquals fails unless the value is structurally equal to other.
func (c ValueChain[T]) IfNotEquals(other T) ValueChain[T] {
	if c.live() && !reflect.DeepEqual(c.value, other) {
		c.invalid(reason.ValueNotEqual, fmt.Sprintf("Value should be equal to %s.", formatValue(other)))
	}
	return c
}

// IfDefault fails when the value is the zero value of its dynamic type.
func (c ValueChain[T]) IfDefault() ValueChain[T] {
	if c.live() && isZero(c.value) {
		c.invalid(reason.ValueDefault, "Value should not be default.")
	}
	return c
}

// IfNotDefault fails unless the value is the zero value of its dynamic type.
func (c ValueChain[T]) IfNotDefault() ValueChain[T] {
	if c.live() && !isZero(c.value) {
		c.invalid(reason.ValueNotDefault, "Value should be default.")
	}
	return c
}

// IfType fails when the dynamic type of the value is t:
//
//	dguard.That(r, "r").IfType(reflect.TypeFor[*os.File]())
func (c ValueChain[T]) IfType(t reflect.Type) ValueChain[T] {
	if c.live() && reflect.TypeOf(c.value) == t {
		c.invalid(reason.TypeMatch, fmt.Sprintf("Parameter should not be of type '%s'.", t))
	}
	return c
}

// IfNotType fails unless the dynamic type of the value is t.
func (c ValueChain[T]) IfNotType(t reflect.Type) ValueChain[T] {
	if c.live() && reflect.TypeOf(c.value) != t {
		c.invalid(reason.TypeMismatch, fmt.Sprintf("Parameter should be of type '%s'.", t))
	}
	return c
}

// If fails with msg when cond reports true for the value.
func (c ValueChain[T]) If(cond func(T) bool, msg string) ValueChain[T] {
	if c.live() && cond(c.value) {
		c.invalid(reason.ValuePredicate, msg)
	}
	return c
}
