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

// ErrorView is the serializable shape of a guard failure that is safe to
// expose over the wire or in logs.
type ErrorView struct {
	// Code is the canonical code, e.g. "out_of_range".
	Code string `json:"code"`
	// Reason is the check identifier, e.g. "number.greater". May be empty.
	Reason string `json:"reason,omitempty"`
	// Param is the diagnostic name of the failing value.
	Param string `json:"param,omitempty"`
	// Message is the resolved human-readable message, without the
	// parameter suffix.
	Message string `json:"message,omitempty"`
	// Details lists additional structured information.
	Details []Detail `json:"details,omitempty"`
}

// Detail is a single structured piece of information attached to a failure.
//
// Typical usages: the field that failed, the offending value of a range
// check, the bound a length check compared against.
type Detail struct {
	// Type classifies the detail, e.g. "field", "actual", "limit".
	Type string `json:"type,omitempty"`
	// Field is the diagnostic name the detail refers to.
	Field string `json:"field,omitempty"`
	// Reason is the check identifier that produced the detail.
	Reason string `json:"reason,omitempty"`
	// Info carries extra values rendered as strings so they survive
	// JSON and proto round-trips.
	Info map[string]string `json:"info,omitempty"`
}
