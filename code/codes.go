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

package code

// Guard failure codes, one per dispatcher entry point.
const (
	// NullArgument is raised when the value under validation, or the result
	// of a property accessor, is nil.
	//
	// Maps to HTTP 400 / gRPC InvalidArgument by default.
	NullArgument Code = "null_argument"

	// OutOfRange is raised by ordering and range checks (greater than,
	// between, defined-in-enum, before/after). Errors with this code carry
	// the offending value.
	//
	// Maps to HTTP 400 / gRPC OutOfRange by default.
	OutOfRange Code = "out_of_range"

	// InvalidArgument is raised by every other predicate: emptiness, length,
	// content, pattern, cardinality, scheme, type identity.
	//
	// Maps to HTTP 400 / gRPC InvalidArgument by default.
	InvalidArgument Code = "invalid_argument"
)

// Internal classifies errors that did not come from a guard check at all,
// e.g. a custom error produced by a Factory customization when it reaches a
// transport adapter. Maps to HTTP 500 / gRPC Internal.
const Internal Code = "internal"
