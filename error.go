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
	"log/slog"
	"maps"
	"slices"

	"dirpx.dev/dguard/apis"
	"dirpx.dev/dguard/code"
	"dirpx.dev/dguard/reason"
)

// Error is the error raised by a failed guard check when no customization
// replaces it.
//
// It carries:
//   - Code: which dispatcher entry point raised it (null, range, general);
//   - Reason: the identifier of the failed check, e.g. "string.empty";
//   - Param: the diagnostic name of the validated value;
//   - Message: the resolved human-readable message;
//   - Actual: the offending value, set only by range-style checks;
//   - Details: extra structured data (limits, patterns, ...);
//   - Cause: an underlying error, e.g. a URL parse failure.
//
// All WithX helpers return a shallow copy.
type Error struct {
	Code    code.Code
	Reason  reason.Reason
	Param   string
	Message string
	Actual  any
	Details map[string]any
	Cause   error

	showActual bool
}

// Sentinels for errors.Is. A guard error matches the sentinel with the same
// Code regardless of its reason, parameter or message.
var (
	ErrNullArgument    = &Error{Code: code.NullArgument, Message: defaultNullMessage}
	ErrOutOfRange      = &Error{Code: code.OutOfRange, Message: defaultRangeMessage}
	ErrInvalidArgument = &Error{Code: code.InvalidArgument}
)

var (
	_ apis.CodedError    = (*Error)(nil)
	_ apis.ReasonedError = (*Error)(nil)
	_ apis.ParamError    = (*Error)(nil)
	_ apis.ValuedError   = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
	_ slog.LogValuer     = (*Error)(nil)
)

// E builds an Error and applies opts in order.
func E(c code.Code, param, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Param: param, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error renders the message followed by the parameter:
//
//	String should not be empty. (Parameter 'value')
//
// The suffix is omitted when Param is empty. An uncustomized range failure
// appends the actual value on a second line:
//
//	Value should not be greater than 4. (Parameter 'value')
//	Actual value was 5.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.Message
	if e.Param != "" {
		s += " (Parameter '" + e.Param + "')"
	}
	if e.showActual && e.Actual != nil {
		s += "\nActual value was " + formatValue(e.Actual) + "."
	}
	return s
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is a guard error with the same Code. A target
// carrying a Reason additionally requires the same Reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	return t.Reason == reason.Empty || t.Reason == e.Reason
}

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() string { return string(e.Code) }

// ErrorReason implements apis.ReasonedError.
func (e *Error) ErrorReason() string { return string(e.Reason) }

// ErrorParam implements apis.ParamError.
func (e *Error) ErrorParam() string { return e.Param }

// ActualValue implements apis.ValuedError.
func (e *Error) ActualValue() (any, bool) { return e.Actual, e.Actual != nil }

// ErrorDetails implements apis.DetailedError. It yields a "field" detail
// for the parameter, an "actual" detail for range failures and a "limit"
// detail holding Details, in that order.
func (e *Error) ErrorDetails() []apis.Detail {
	var out []apis.Detail
	if e.Param != "" {
		out = append(out, apis.Detail{Type: "field", Field: e.Param, Reason: string(e.Reason)})
	}
	if e.Actual != nil {
		out = append(out, apis.Detail{
			Type:   "actual",
			Field:  e.Param,
			Reason: string(e.Reason),
			Info:   map[string]string{"value": formatValue(e.Actual)},
		})
	}
	if len(e.Details) > 0 {
		info := make(map[string]string, len(e.Details))
		for k, v := range e.Details {
			info[k] = formatValue(v)
		}
		out = append(out, apis.Detail{Type: "limit", Field: e.Param, Reason: string(e.Reason), Info: info})
	}
	return out
}

// LogValue implements slog.LogValuer so a guard error logs as a group.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	attrs := []slog.Attr{slog.String("code", string(e.Code))}
	if e.Reason != reason.Empty {
		attrs = append(attrs, slog.String("reason", string(e.Reason)))
	}
	if e.Param != "" {
		attrs = append(attrs, slog.String("param", e.Param))
	}
	attrs = append(attrs, slog.String("message", e.Message))
	if e.Actual != nil {
		attrs = append(attrs, slog.Any("actual", e.Actual))
	}
	if len(e.Details) > 0 {
		ds := make([]slog.Attr, 0, len(e.Details))
		for _, k := range slices.Sorted(maps.Keys(e.Details)) {
			ds = append(ds, slog.Any(k, e.Details[k]))
		}
		attrs = append(attrs, slog.Attr{Key: "details", Value: slog.GroupValue(ds...)})
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

// WithReason returns a copy of e with r set.
func (e *Error) WithReason(r reason.Reason) *Error {
	cp := *e
	cp.Reason = r
	return &cp
}

// WithMessage returns a copy of e with msg set.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithParam returns a copy of e with the diagnostic name replaced.
func (e *Error) WithParam(param string) *Error {
	cp := *e
	cp.Param = param
	return &cp
}

// WithActual returns a copy of e carrying v as the offending value.
func (e *Error) WithActual(v any) *Error {
	cp := *e
	cp.Actual = v
	return &cp
}

// WithDetail returns a copy of e with one more detail. Details is never
// modified in place.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	m := make(map[string]any, len(cp.Details)+1)
	maps.Copy(m, cp.Details)
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a copy of e with kv merged into Details; kv wins on
// conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	maps.Copy(m, cp.Details)
	maps.Copy(m, kv)
	cp.Details = m
	return &cp
}

// WithCause returns a copy of e wrapping err. A nil err returns e unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

func formatValue(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}
