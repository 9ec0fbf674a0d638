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

// Package dguard provides fluent guard clauses: chains of checks over a
// named value that record the first violated precondition as a structured
// error.
//
// A chain starts at an entry point that matches the value's category and
// is finished by Err, Result or Must:
//
//	func NewUser(name string, age int, tags []string) (*User, error) {
//		if err := dguard.String(name, "name").IfWhiteSpace().IfLongerThan(64).Err(); err != nil {
//			return nil, err
//		}
//		if err := dguard.Number(age, "age").IfNegative().IfGreaterThan(150).Err(); err != nil {
//			return nil, err
//		}
//		tags = dguard.Slice(tags, "tags").IfCountGreaterThan(10).Must()
//		...
//	}
//
// Once a check fails, every later check on the chain is skipped. Failures
// come in three kinds, matched with errors.Is against ErrNullArgument,
// ErrOutOfRange and ErrInvalidArgument.
//
// The error a failure produces can be replaced per chain with a
// Customization: a Message, a Factory, a NamedFactory, or an ErrorKind
// built with KindOf. Customizations change which error is raised, never
// whether one is.
//
// Chains are values. Every check returns an updated copy, so a chain can
// be shared and forked freely; there is no global state.
package dguard
