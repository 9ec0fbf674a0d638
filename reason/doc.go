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

// Package reason identifies which check produced a guard failure.
//
// A reason is a dot-separated, lowercase identifier with one to four
// segments, such as "string.empty" or "collection.count.greater". Every
// predicate in dguard stamps its failures with one of the constants declared
// in this package, so transport mappers and log pipelines can match on a
// stable identifier instead of parsing human-readable messages.
//
// The empty reason is valid and means "not provided"; it is what errors
// built outside the predicate catalogue usually carry.
package reason
