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

package apis

// CodedError is an error classified by a machine-readable code such as
// "null_argument", "out_of_range" or "invalid_argument".
//
// The returned value MUST be non-empty and canonical; adapters treat unknown
// codes as internal errors.
type CodedError interface {
	error
	ErrorCode() string
}

// ReasonedError names the exact check that failed, e.g. "string.empty".
// The reason MAY be empty.
type ReasonedError interface {
	error
	ErrorReason() string
}

// ParamError exposes the diagnostic name of the validated value as a
// structured parameter identity, e.g. "age" or "person: p.Age".
type ParamError interface {
	error
	ErrorParam() string
}

// ValuedError exposes the offending value of a range-style failure.
// ok is false when the error carries no actual value.
type ValuedError interface {
	error
	ActualValue() (v any, ok bool)
}

// DetailedError exposes structured details of the failure. Returning nil
// means "no details".
type DetailedError interface {
	error
	ErrorDetails() []Detail
}
