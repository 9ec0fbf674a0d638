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
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dguard/apis"
	"dirpx.dev/dguard/code"
	"dirpx.dev/dguard/reason"
)

func TestError_Basics(t *testing.T) {
	e := E(code.OutOfRange, "age", "Value should not be negative.",
		WithReasonOption(reason.NumberNegative),
		WithActualOption(-3),
		WithDetailOption("limit", 0),
	)

	assert.Equal(t, "Value should not be negative. (Parameter 'age')", e.Error())
	assert.Equal(t, "out_of_range", e.ErrorCode())
	assert.Equal(t, "number.negative", e.ErrorReason())
	assert.Equal(t, "age", e.ErrorParam())
	v, ok := e.ActualValue()
	assert.True(t, ok)
	assert.Equal(t, -3, v)
}

func TestError_CopyOnWrite(t *testing.T) {
	base := E(code.InvalidArgument, "s", "m").WithDetail("a", 1)
	derived := base.WithDetail("b", 2).WithMessage("other")

	assert.Equal(t, map[string]any{"a": 1}, base.Details)
	assert.Equal(t, "m", base.Message)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, derived.Details)
	assert.Same(t, base, base.WithCause(nil))
	assert.Same(t, base, base.WithDetails(nil))
}

func TestError_Is(t *testing.T) {
	e := E(code.InvalidArgument, "s", "m", WithReasonOption(reason.StringEmpty))

	assert.ErrorIs(t, e, ErrInvalidArgument)
	assert.ErrorIs(t, e, &Error{Code: code.InvalidArgument, Reason: reason.StringEmpty})
	assert.NotErrorIs(t, e, &Error{Code: code.InvalidArgument, Reason: reason.StringWhiteSpace})
	assert.NotErrorIs(t, e, ErrOutOfRange)
}

func TestError_UnwrapCause(t *testing.T) {
	cause := errors.New("boom")
	e := E(code.InvalidArgument, "u", "m", WithCauseOption(cause))
	assert.ErrorIs(t, e, cause)
}

func TestError_Details(t *testing.T) {
	e := E(code.OutOfRange, "n", "m",
		WithReasonOption(reason.NumberGreater),
		WithActualOption(5),
		WithDetailsOption(map[string]any{"limit": 4}),
	)

	assert.Equal(t, []apis.Detail{
		{Type: "field", Field: "n", Reason: "number.greater"},
		{Type: "actual", Field: "n", Reason: "number.greater", Info: map[string]string{"value": "5"}},
		{Type: "limit", Field: "n", Reason: "number.greater", Info: map[string]string{"limit": "4"}},
	}, e.ErrorDetails())
}

func TestError_LogValue(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	err := Number(5, "n").IfGreaterThan(4).Err()
	log.Error("guard failed", "err", err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	got, ok := rec["err"].(map[string]any)
	require.True(t, ok, "err should log as a group: %v", rec["err"])
	assert.Equal(t, "out_of_range", got["code"])
	assert.Equal(t, "number.greater", got["reason"])
	assert.Equal(t, "n", got["param"])
	assert.Equal(t, float64(5), got["actual"])
	assert.Equal(t, map[string]any{"limit": float64(4)}, got["details"])
}
