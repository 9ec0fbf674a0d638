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

// Package code defines the error codes a guard failure can carry.
//
// A code is the top-level classification of a failed check. dguard raises
// exactly three kinds of failures, one per dispatcher entry point:
//
//   - NullArgument: the value (or an accessor result) was nil;
//   - OutOfRange: an ordering or range check failed;
//   - InvalidArgument: any other predicate failed.
//
// Codes are lowercase, underscore-separated identifiers suitable for JSON
// payloads and for lookups in transport mappers. The empty code is never
// valid on a raised error.
package code
