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
	"fmt"
	"maps"
	"strings"
	"sync"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dguard/apis"
	"dirpx.dev/dguard/code"
	"dirpx.dev/dguard/mapper/internal/segmenttrie"
	"dirpx.dev/dguard/reason"
)

// New builds an immutable apis.Mapper from the library defaults and opts.
// It fails when a prefix rule is not a valid reason pattern.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	h, err := compile("HTTP", b.http)
	if err != nil {
		return nil, err
	}
	g, err := compile("gRPC", b.grpc)
	if err != nil {
		return nil, err
	}
	return &mapper{http: h, grpc: g}, nil
}

var defaultMapper = sync.OnceValue(func() apis.Mapper {
	m, err := New()
	if err != nil {
		panic(err)
	}
	return m
})

// Default returns the shared mapper built from the library defaults.
func Default() apis.Mapper { return defaultMapper() }

type mapper struct {
	http resolver[int]
	grpc resolver[codes.Code]
}

// Resolution sources reported by Explain.
const (
	sourceOverride = "override"
	sourcePrefix   = "prefix"
	sourceDefault  = "default"
	sourceFallback = "fallback"
)

// resolver is the frozen rule set of one transport.
type resolver[V any] struct {
	overrides map[code.Code]V
	tries     map[code.Code]*segmenttrie.Trie[V]
	defaults  map[code.Code]V
	fallback  V
}

func compile[V any](transport string, r rules[V]) (resolver[V], error) {
	tries := make(map[code.Code]*segmenttrie.Trie[V], len(r.prefixes))
	for c, prs := range r.prefixes {
		t := segmenttrie.New[V]()
		for _, pr := range prs {
			if err := t.Insert(reason.Normalize(pr.prefix), pr.val); err != nil {
				return resolver[V]{}, fmt.Errorf("mapper: invalid %s reason-prefix %q for code %q: %w", transport, pr.prefix, c, err)
			}
		}
		tries[c] = t
	}
	return resolver[V]{
		overrides: maps.Clone(r.overrides),
		tries:     tries,
		defaults:  maps.Clone(r.defaults),
		fallback:  r.fallback,
	}, nil
}

// resolve applies, in order: the override of c, the longest prefix rule of
// c matching r, the default of c, the fallback.
func (rv resolver[V]) resolve(c code.Code, r reason.Reason) (v V, source, pattern string) {
	if v, ok := rv.overrides[c]; ok {
		return v, sourceOverride, ""
	}
	if r != reason.Empty {
		if rule, ok := rv.tries[c].Match(string(r)); ok {
			return rule.Value, sourcePrefix, rule.Pattern
		}
	}
	if v, ok := rv.defaults[c]; ok {
		return v, sourceDefault, ""
	}
	return rv.fallback, sourceFallback, ""
}

func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	v, _, _ := m.http.resolve(c, r)
	return v
}

func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	v, _, _ := m.grpc.resolve(c, r)
	return v
}

func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{HTTP: m.HTTPStatus(c, r), GRPC: m.GRPCStatus(c, r)}
}

// Explain renders how c and r were resolved:
//
//	code="invalid_argument" reason="uri.parse"
//	http: source=prefix pattern="uri" -> 422
//	grpc: source=default -> INVALID_ARGUMENT(3)
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	var b strings.Builder
	fmt.Fprintf(&b, "code=%q reason=%q\n", c, r)

	hv, hsrc, hpat := m.http.resolve(c, r)
	fmt.Fprintf(&b, "http: %s -> %d\n", explainSource(hsrc, hpat), hv)

	gv, gsrc, gpat := m.grpc.resolve(c, r)
	fmt.Fprintf(&b, "grpc: %s -> %s(%d)", explainSource(gsrc, gpat), grpcName(gv), int(gv))
	return b.String()
}

func explainSource(source, pattern string) string {
	if pattern == "" {
		return "source=" + source
	}
	return fmt.Sprintf("source=%s pattern=%q", source, pattern)
}

// grpcName renders a gRPC code in its canonical upper snake case, e.g.
// INVALID_ARGUMENT.
func grpcName(c codes.Code) string {
	s := c.String()
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'A' && ch <= 'Z' {
			if i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
				b.WriteByte('_')
			}
			b.WriteByte(ch)
			continue
		}
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		b.WriteByte(ch)
	}
	return b.String()
}
