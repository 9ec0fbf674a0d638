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
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dguard/code"
	"dirpx.dev/dguard/reason"
)

type configError struct{ Key string }

func (e *configError) Error() string { return "config error: " + e.Key }

type valueError struct{}

func (valueError) Error() string { return "value error" }

var errFixed = errors.New("fixed")

func TestCustomization_Message(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   code.Code
		reason reason.Reason
		msg    string
	}{
		{"null", NullableNumber[int](nil, "n", Message("missing")).Err(), code.NullArgument, reason.NullValue, "missing (Parameter 'n')"},
		{"range", Number(9, "n").Throw("too big").IfGreaterThan(1).Err(), code.OutOfRange, reason.NumberGreater, "too big (Parameter 'n')"},
		{"general", String("", "s").Throw("need text").IfEmpty().Err(), code.InvalidArgument, reason.StringEmpty, "need text (Parameter 's')"},
		{"empty message falls back", String("", "s", Message("")).IfEmpty().Err(), code.InvalidArgument, reason.StringEmpty, "String should not be empty. (Parameter 's')"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ge := guardErr(t, tt.err)
			assert.Equal(t, tt.code, ge.Code)
			assert.Equal(t, tt.reason, ge.Reason)
			assert.EqualError(t, tt.err, tt.msg)
		})
	}
}

func TestCustomization_ErrorKind(t *testing.T) {
	err := String("", "s").With(KindOf[*configError]()).IfEmpty().Err()
	var ce *configError
	require.ErrorAs(t, err, &ce)
	assert.Empty(t, ce.Key)

	err = Number(5, "n", KindOf[valueError]()).IfGreaterThan(1).Err()
	assert.Equal(t, valueError{}, err)

	first := String("", "s", KindOf[*configError]()).IfEmpty().Err()
	second := String("", "s", KindOf[*configError]()).IfEmpty().Err()
	assert.NotSame(t, first, second)
}

func TestCustomization_KindRejectsUnconstructible(t *testing.T) {
	assert.Panics(t, func() { KindOf[error]() })
	assert.Panics(t, func() { Kind(nil) })
	assert.Panics(t, func() { Kind(reflect.TypeFor[int]()) })
	assert.NotPanics(t, func() { Kind(reflect.TypeFor[configError]()) })
}

func TestCustomization_Factory(t *testing.T) {
	err := String("", "s").ThrowFunc(func() error { return errFixed }).IfEmpty().Err()
	assert.Same(t, errFixed, err)

	assert.PanicsWithValue(t, "dguard: Factory customization returned a nil error", func() {
		String("", "s").ThrowFunc(func() error { return nil }).IfEmpty()
	})
}

func TestCustomization_NamedFactory(t *testing.T) {
	var got string
	err := Nullable[string](nil, "email").
		ThrowNamed(func(name string) error { got = name; return errFixed }).
		Err()

	// Customizations passed after construction cannot change a null
	// failure already recorded by the entry point.
	assert.Empty(t, got)
	assert.ErrorIs(t, err, ErrNullArgument)

	err = Nullable[string](nil, "email", NamedFactory(func(name string) error {
		got = name
		return errFixed
	})).Err()
	assert.Equal(t, "email", got)
	assert.Same(t, errFixed, err)
}

func TestCustomization_LastNonNilWins(t *testing.T) {
	err := String("", "s", Message("a"), nil, Message("b"), nil).IfEmpty().Err()
	assert.EqualError(t, err, "b (Parameter 's')")

	err = String("", "s", Message("a")).With(nil).IfEmpty().Err()
	assert.EqualError(t, err, "String should not be empty. (Parameter 's')")
}

func TestCustomization_DoesNotChangeRecordedFailure(t *testing.T) {
	c := String("", "s").IfEmpty()
	before := c.Err()

	after := c.Throw("late").IfWhiteSpace().Err()
	assert.Same(t, before, after)
}
