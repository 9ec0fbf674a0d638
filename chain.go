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
	"reflect"

	"dirpx.dev/dguard/reason"
)

// Chain is the state every typed chain embeds: the value under validation,
// its diagnostic name, the active customization and the first failure.
//
// Chains are small values. Every check returns a copy holding the same value
// and name; once a check has failed, later checks do nothing and the failure
// is reported by Err, Result and Must.
type Chain[T any] struct {
	value  T
	name   string
	custom Customization
	err    error
	muted  bool
}

func newChain[T any](v T, name string, custom []Customization) Chain[T] {
	return Chain[T]{value: v, name: name, custom: lastCustomization(custom)}
}

// Value returns the wrapped value, whether or not a check failed.
func (c Chain[T]) Value() T { return c.value }

// Name returns the diagnostic name.
func (c Chain[T]) Name() string { return c.name }

// Customization returns the active customization, nil for defaults.
func (c Chain[T]) Customization() Customization { return c.custom }

// Err returns the first failure, or nil.
func (c Chain[T]) Err() error { return c.err }

// Result returns the value together with the first failure.
func (c Chain[T]) Result() (T, error) { return c.value, c.err }

// Must returns the value and panics with the first failure, if any.
func (c Chain[T]) Must() T {
	if c.err != nil {
		panic(c.err)
	}
	return c.value
}

func (c Chain[T]) live() bool { return c.err == nil && !c.muted }

func (c *Chain[T]) failure() error { return c.err }

func (c *Chain[T]) null() {
	c.err = nullFailure(c.name, c.custom, "")
}

func (c *Chain[T]) invalid(r reason.Reason, msg string, opts ...Option) {
	c.err = generalFailure(c.name, c.custom, r, msg, opts...)
}

func (c *Chain[T]) outOfRange(r reason.Reason, actual any, msg string, opts ...Option) {
	c.err = rangeFailure(c.name, c.custom, r, actual, msg, opts...)
}

func (c Chain[T]) with(cu Customization) Chain[T] {
	c.custom = cu
	return c
}

// muteUnless turns every remaining check into a no-op and drops a recorded
// failure when debug is false.
func (c Chain[T]) muteUnless(debug bool) Chain[T] {
	if !debug {
		c.muted = true
		c.err = nil
	}
	return c
}

// isNil reports whether v is nil or a nil pointer, interface, map, slice,
// func or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// isZero reports whether v holds the zero value of its dynamic type.
func isZero(v any) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || rv.IsZero()
}
