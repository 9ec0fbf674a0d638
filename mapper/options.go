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

package mapper

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/dguard/code"
)

// Option configures a Mapper at build time.
type Option func(*builder)

// WithHTTPDefault replaces the default HTTP status of c.
func WithHTTPDefault(c code.Code, status int) Option {
	return func(b *builder) { b.http.defaults[c] = status }
}

// WithGRPCDefault replaces the default gRPC code of c.
func WithGRPCDefault(c code.Code, gc codes.Code) Option {
	return func(b *builder) { b.grpc.defaults[c] = gc }
}

// WithHTTPOverride pins the HTTP status of c regardless of the reason.
// Overrides win over prefix rules and defaults.
func WithHTTPOverride(c code.Code, status int) Option {
	return func(b *builder) { b.http.overrides[c] = status }
}

// WithGRPCOverride pins the gRPC code of c regardless of the reason.
func WithGRPCOverride(c code.Code, gc codes.Code) Option {
	return func(b *builder) { b.grpc.overrides[c] = gc }
}

// WithHTTPPrefix maps reasons of c starting with prefix to status. The
// longest matching prefix wins; "*" matches one segment:
//
//	mapper.WithHTTPPrefix(code.InvalidArgument, "uri", http.StatusUnprocessableEntity)
//	mapper.WithHTTPPrefix(code.OutOfRange, "*.count_greater", http.StatusRequestEntityTooLarge)
func WithHTTPPrefix(c code.Code, prefix string, status int) Option {
	return func(b *builder) {
		b.http.prefixes[c] = append(b.http.prefixes[c], prefixRule[int]{prefix, status})
	}
}

// WithGRPCPrefix is WithHTTPPrefix for gRPC codes.
func WithGRPCPrefix(c code.Code, prefix string, gc codes.Code) Option {
	return func(b *builder) {
		b.grpc.prefixes[c] = append(b.grpc.prefixes[c], prefixRule[codes.Code]{prefix, gc})
	}
}

// WithHTTPFallback sets the status used for codes with no rule at all.
// It defaults to 500.
func WithHTTPFallback(status int) Option {
	return func(b *builder) { b.http.fallback = status }
}

// WithGRPCFallback sets the gRPC code used for codes with no rule at all.
// It defaults to codes.Internal.
func WithGRPCFallback(gc codes.Code) Option {
	return func(b *builder) { b.grpc.fallback = gc }
}
