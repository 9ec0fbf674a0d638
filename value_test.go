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
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/dguard/code"
	"dirpx.dev/dguard/reason"
)

func TestValueChain_Checks(t *testing.T) {
	type point struct{ X, Y int }
	tests := []struct {
		name   string
		err    error
		reason reason.Reason
		msg    string
	}{
		{"equals", That(point{1, 2}, "p").IfEquals(point{1, 2}).Err(), reason.ValueEqual, "Value should not be equal to {1 2}."},
		{"not equals", That([]int{1}, "p").IfNotEquals([]int{2}).Err(), reason.ValueNotEqual, "Value should be equal to [2]."},
		{"default", That(point{}, "p").IfDefault().Err(), reason.ValueDefault, "Value should not be default."},
		{"not default", That(point{1, 0}, "p").IfNotDefault().Err(), reason.ValueNotDefault, "Value should be default."},
		{"type", That[any](1, "p").IfType(reflect.TypeFor[int]()).Err(), reason.TypeMatch, "Parameter should not be of type 'int'."},
		{"not type", That[any]("x", "p").IfNotType(reflect.TypeFor[int]()).Err(), reason.TypeMismatch, "Parameter should be of type 'int'."},
		{"predicate", That(3, "p").If(func(n int) bool { return n%2 == 1 }, "Value should be even.").Err(), reason.ValuePredicate, "Value should be even."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ge := guardErr(t, tt.err)
			assert.Equal(t, code.InvalidArgument, ge.Code)
			assert.Equal(t, tt.reason, ge.Reason)
			assert.Equal(t, tt.msg, ge.Message)
		})
	}
}

func TestValueChain_NilKinds(t *testing.T) {
	var (
		p  *int
		e  error
		f  func()
		ch chan int
	)
	for _, err := range []error{
		That(p, "v").Err(),
		That(e, "v").Err(),
		That(f, "v").Err(),
		That(ch, "v").Err(),
		That[map[string]int](nil, "v").Err(),
	} {
		assert.ErrorIs(t, err, ErrNullArgument)
	}
	assert.NoError(t, That(0, "v").Err())
	assert.NoError(t, That("", "v").Err())
}

func TestValueChain_Nullable(t *testing.T) {
	n := 0
	assert.ErrorIs(t, Nullable(&n, "n").IfDefault().Err(), ErrInvalidArgument)
	assert.ErrorIs(t, Nullable[int](nil, "n").IfDefault().Err(), ErrNullArgument)
}
