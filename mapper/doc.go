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

// Package mapper maps guard failures to transport statuses for HTTP and
// gRPC.
//
// A failure is identified by its code (code.NullArgument, code.OutOfRange,
// code.InvalidArgument) and the reason of the check that raised it
// (reason.StringEmpty, reason.NumberGreater, ...). A Mapper resolves the
// pair in this order:
//
//  1. exact override for the code;
//  2. longest reason-prefix rule for the code;
//  3. default for the code;
//  4. fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware: "collection" matches
// "collection.count_greater" but not "collections.x", and "*" matches
// exactly one segment.
//
// By default every guard code maps to 400; on gRPC the range kind maps to
// codes.OutOfRange and the other two to codes.InvalidArgument:
//
//	m, err := mapper.New(
//		mapper.WithHTTPPrefix(code.InvalidArgument, "uri", http.StatusUnprocessableEntity),
//		mapper.WithGRPCOverride(code.NullArgument, codes.FailedPrecondition),
//	)
//
// A Mapper is an immutable snapshot and safe for concurrent use. Explain
// reports which rule matched.
package mapper
