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
)

// Customization replaces the error a failed check produces. It is a closed
// union of exactly four shapes:
//
//   - Message: keep the default error kind, replace its message;
//   - ErrorKind: raise a fresh zero value of a given error type;
//   - Factory: raise whatever a zero-argument callback returns;
//   - NamedFactory: raise whatever a callback returns for the diagnostic name.
//
// A nil Customization means "use the library defaults".
type Customization interface {
	customization()
}

// Message replaces the default failure message. The error keeps its default
// code, reason, parameter and actual value. An empty Message falls back to
// the default message.
type Message string

// Factory produces the error to raise. It must not return nil.
type Factory func() error

// NamedFactory produces the error to raise from the diagnostic name of the
// failing value. It must not return nil.
type NamedFactory func(name string) error

// ErrorKind raises a zero value of an error type. Build it with Kind or
// KindOf; both reject types that cannot be constructed without arguments.
type ErrorKind struct {
	t reflect.Type
}

func (Message) customization()      {}
func (Factory) customization()      {}
func (NamedFactory) customization() {}
func (ErrorKind) customization()    {}

var errorType = reflect.TypeFor[error]()

// Kind returns an ErrorKind for t. It panics when t is nil, an interface,
// or a type whose zero value (or pointer to it) is not an error.
func Kind(t reflect.Type) ErrorKind {
	if err := constructible(t); err != nil {
		panic(err)
	}
	return ErrorKind{t: t}
}

// KindOf returns an ErrorKind for E:
//
//	dguard.String(s, "s").With(dguard.KindOf[*ConfigError]()).IfEmpty()
func KindOf[E error]() ErrorKind {
	return Kind(reflect.TypeFor[E]())
}

// Type returns the error type k constructs.
func (k ErrorKind) Type() reflect.Type { return k.t }

// New constructs a zero value of k's type. Pointer types get a freshly
// allocated pointee.
func (k ErrorKind) New() error {
	if err := constructible(k.t); err != nil {
		panic(err)
	}
	switch {
	case k.t.Kind() == reflect.Pointer:
		return reflect.New(k.t.Elem()).Interface().(error)
	case k.t.Implements(errorType):
		return reflect.Zero(k.t).Interface().(error)
	default:
		return reflect.New(k.t).Interface().(error)
	}
}

func (k ErrorKind) String() string {
	if k.t == nil {
		return "<nil>"
	}
	return k.t.String()
}

func constructible(t reflect.Type) error {
	switch {
	case t == nil:
		return fmt.Errorf("dguard: error kind is nil")
	case t.Kind() == reflect.Interface:
		return fmt.Errorf("dguard: error kind %s is an interface and has no zero-argument constructor", t)
	case t.Kind() == reflect.Pointer:
		if t.Elem().Kind() == reflect.Interface || !t.Implements(errorType) {
			return fmt.Errorf("dguard: error kind %s does not construct an error", t)
		}
	case !t.Implements(errorType) && !reflect.PointerTo(t).Implements(errorType):
		return fmt.Errorf("dguard: error kind %s does not implement error", t)
	}
	return nil
}

// lastCustomization returns the last non-nil element of cs.
func lastCustomization(cs []Customization) Customization {
	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i] != nil {
			return cs[i]
		}
	}
	return nil
}
