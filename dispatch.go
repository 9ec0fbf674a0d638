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

	"dirpx.dev/dguard/code"
	"dirpx.dev/dguard/reason"
)

const (
	defaultNullMessage  = "Value cannot be null."
	defaultRangeMessage = "Specified argument was out of the range of valid values."
)

// failure is the context of one failed check. It lives for a single raise.
type failure struct {
	name    string
	custom  Customization
	code    code.Code
	reason  reason.Reason
	message string
	actual  any
	opts    []Option
}

// raise resolves the customization and returns the error to record. It
// never returns nil.
func (f failure) raise() error {
	switch c := f.custom.(type) {
	case nil:
		return f.builtin()
	case Message:
		if c == "" {
			return f.builtin()
		}
		return f.standard(string(c))
	case ErrorKind:
		return c.New()
	case Factory:
		return produced(c(), "Factory")
	case NamedFactory:
		return produced(c(f.name), "NamedFactory")
	default:
		panic(fmt.Sprintf("dguard: unsupported customization %T", f.custom))
	}
}

// builtin is the uncustomized error. Range failures render their actual
// value.
func (f failure) builtin() *Error {
	e := f.standard(f.message)
	e.showActual = f.actual != nil
	return e
}

func (f failure) standard(msg string) *Error {
	e := &Error{
		Code:    f.code,
		Reason:  f.reason,
		Param:   f.name,
		Message: msg,
		Actual:  f.actual,
	}
	for _, opt := range f.opts {
		e = opt(e)
	}
	return e
}

func produced(err error, shape string) error {
	if err == nil {
		panic("dguard: " + shape + " customization returned a nil error")
	}
	return err
}

// nullFailure raises the null-argument kind. An empty msg uses
// "Value cannot be null.".
func nullFailure(name string, custom Customization, msg string) error {
	if msg == "" {
		msg = defaultNullMessage
	}
	return failure{
		name:    name,
		custom:  custom,
		code:    code.NullArgument,
		reason:  reason.NullValue,
		message: msg,
	}.raise()
}

// rangeFailure raises the out-of-range kind carrying actual. An empty msg
// uses the generic range message.
func rangeFailure(name string, custom Customization, r reason.Reason, actual any, msg string, opts ...Option) error {
	if msg == "" {
		msg = defaultRangeMessage
	}
	return failure{
		name:    name,
		custom:  custom,
		code:    code.OutOfRange,
		reason:  r,
		message: msg,
		actual:  actual,
		opts:    opts,
	}.raise()
}

// generalFailure raises the invalid-argument kind with a check-specific
// message.
func generalFailure(name string, custom Customization, r reason.Reason, msg string, opts ...Option) error {
	return failure{
		name:    name,
		custom:  custom,
		code:    code.InvalidArgument,
		reason:  r,
		message: msg,
		opts:    opts,
	}.raise()
}
