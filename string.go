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
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"dirpx.dev/dguard/reason"
)

// StringChain validates a string. Lengths count characters (runes), not
// bytes. Content checks take an optional Comparison, Ordinal by default.
type StringChain struct {
	Chain[string]
}

// String starts a chain for s named name.
func String(s, name string, custom ...Customization) StringChain {
	return StringChain{newChain(s, name, custom)}
}

// NullableString lifts a *string; nil raises the null-argument kind.
func NullableString(p *string, name string, custom ...Customization) StringChain {
	if p == nil {
		c := String("", name, custom...)
		c.null()
		return c
	}
	return String(*p, name, custom...)
}

// With returns the chain with cu as its customization. A nil cu
// restores the defaults; a failure already recorded is kept.
func (c StringChain) With(cu Customization) StringChain {
	c.Chain = c.with(cu)
	return c
}

// Throw is With(Message(msg)).
func (c StringChain) Throw(msg string) StringChain { return c.With(Message(msg)) }

// ThrowFunc is With(Factory(f)).
func (c StringChain) ThrowFunc(f func() error) StringChain { return c.With(Factory(f)) }

// ThrowNamed is With(NamedFactory(f)).
func (c StringChain) ThrowNamed(f func(string) error) StringChain { return c.With(NamedFactory(f)) }

// OnlyInDebug mutes the chain in builds tagged dguard_release.
func (c StringChain) OnlyInDebug() StringChain {
	c.Chain = c.muteUnless(debugBuild)
	return c
}

func (c *StringChain) bind(v string, name string, custom Customization) {
	*c = String(v, name, custom)
}

// IfEmpty fails for "".
func (c StringChain) IfEmpty() StringChain {
	if c.live() && c.value == "" {
		c.invalid(reason.StringEmpty, "String should not be empty.")
	}
	return c
}

// IfNotEmpty fails unless the value is "".
func (c StringChain) IfNotEmpty() StringChain {
	if c.live() && c.value != "" {
		c.invalid(reason.StringNotEmpty, "String should be empty.")
	}
	return c
}

// IfWhiteSpace fails when every character is white space. The empty string
// fails too.
func (c StringChain) IfWhiteSpace() StringChain {
	if c.live() && strings.TrimSpace(c.value) == "" {
		c.invalid(reason.StringWhiteSpace, "String should not be white space only.")
	}
	return c
}

// IfNotWhiteSpace fails unless every character is white space.
func (c StringChain) IfNotWhiteSpace() StringChain {
	if c.live() && strings.TrimSpace(c.value) != "" {
		c.invalid(reason.StringNotWhiteSpace, "String should be white space only.")
	}
	return c
}

// IfLongerThan fails when the value has more than n characters. It is
// not the negation of IfShorterThan: a length of n passes both.
func (c StringChain) IfLongerThan(n int) StringChain {
	if c.live() && utf8.RuneCountInString(c.value) > n {
		c.invalid(reason.StringLonger,
			fmt.Sprintf("String should not be longer than %d characters.", n),
			WithDetailOption("max_length", n))
	}
	return c
}

// IfShorterThan fails when the value has fewer than n characters.
func (c StringChain) IfShorterThan(n int) StringChain {
	if c.live() && utf8.RuneCountInString(c.value) < n {
		c.invalid(reason.StringShorter,
			fmt.Sprintf("String should not be shorter than %d characters.", n),
			WithDetailOption("min_length", n))
	}
	return c
}

// IfLengthEquals fails when the value has exactly n characters.
func (c StringChain) IfLengthEquals(n int) StringChain {
	if c.live() && utf8.RuneCountInString(c.value) == n {
		c.invalid(reason.StringLengthEqual,
			fmt.Sprintf("String length should not be equal to %d.", n),
			WithDetailOption("length", n))
	}
	return c
}

// IfLengthNotEquals fails unless the value has exactly n characters.
func (c StringChain) IfLengthNotEquals(n int) StringChain {
	if c.live() && utf8.RuneCountInString(c.value) != n {
		c.invalid(reason.StringLengthNotEqual,
			fmt.Sprintf("String length should be equal to %d.", n),
			WithDetailOption("length", n))
	}
	return c
}

// IfEquals fails when the value equals other under mode.
func (c StringChain) IfEquals(other string, mode ...Comparison) StringChain {
	m := comparison(mode)
	if c.live() && m.equal(c.value, other) {
		c.invalid(reason.StringEqual,
			fmt.Sprintf("String should not be equal to '%s' (comparison type: '%s').", other, m))
	}
	return c
}

// IfNotEquals fails unless the value equals other under mode.
func (c StringChain) IfNotEquals(other string, mode ...Comparison) StringChain {
	m := comparison(mode)
	if c.live() && !m.equal(c.value, other) {
		c.invalid(reason.StringNotEqual,
			fmt.Sprintf("String should be equal to '%s' (comparison type: '%s').", other, m))
	}
	return c
}

// IfContains fails when sub occurs in the value under mode.
func (c StringChain) IfContains(sub string, mode ...Comparison) StringChain {
	m := comparison(mode)
	if c.live() && m.contains(c.value, sub) {
		c.invalid(reason.StringContains,
			fmt.Sprintf("String should not contain '%s' (comparison type: '%s').", sub, m))
	}
	return c
}

// IfNotContains fails unless sub occurs in the value under mode.
func (c StringChain) IfNotContains(sub string, mode ...Comparison) StringChain {
	m := comparison(mode)
	if c.live() && !m.contains(c.value, sub) {
		c.invalid(reason.StringNotContains,
			fmt.Sprintf("String should contain '%s' (comparison type: '%s').", sub, m))
	}
	return c
}

// IfStartsWith fails when the value starts with prefix under mode.
func (c StringChain) IfStartsWith(prefix string, mode ...Comparison) StringChain {
	m := comparison(mode)
	if c.live() && m.hasPrefix(c.value, prefix) {
		c.invalid(reason.StringPrefix,
			fmt.Sprintf("String should not start with '%s' (comparison type: '%s').", prefix, m))
	}
	return c
}

// IfNotStartsWith fails unless the value starts with prefix.
func (c StringChain) IfNotStartsWith(prefix string, mode ...Comparison) StringChain {
	m := comparison(mode)
	if c.live() && !m.hasPrefix(c.value, prefix) {
		c.invalid(reason.StringNotPrefix,
			fmt.Sprintf("String should start with '%s' (comparison type: '%s').", prefix, m))
	}
	return c
}

// IfEndsWith fails when the value ends with suffix under mode.
func (c StringChain) IfEndsWith(suffix string, mode ...Comparison) StringChain {
	m := comparison(mode)
	if c.live() && m.hasSuffix(c.value, suffix) {
		c.invalid(reason.StringSuffix,
			fmt.Sprintf("String should not end with '%s' (comparison type: '%s').", suffix, m))
	}
	return c
}

// IfNotEndsWith fails unless the value ends with suffix.
func (c StringChain) IfNotEndsWith(suffix string, mode ...Comparison) StringChain {
	m := comparison(mode)
	if c.live() && !m.hasSuffix(c.value, suffix) {
		c.invalid(reason.StringNotSuffix,
			fmt.Sprintf("String should end with '%s' (comparison type: '%s').", suffix, m))
	}
	return c
}

// IfMatches fails when the value matches pattern. Patterns are compiled
// once and cached; an invalid pattern panics, as with regexp.MustCompile.
func (c StringChain) IfMatches(pattern string) StringChain {
	if c.live() {
		return c.IfMatchesRegexp(compiled(pattern))
	}
	return c
}

// IfNotMatches fails unless the value matches pattern.
func (c StringChain) IfNotMatches(pattern string) StringChain {
	if c.live() {
		return c.IfNotMatchesRegexp(compiled(pattern))
	}
	return c
}

// IfMatchesRegexp is IfMatches for a precompiled expression.
func (c StringChain) IfMatchesRegexp(re *regexp.Regexp) StringChain {
	if c.live() && re.MatchString(c.value) {
		c.invalid(reason.StringMatch,
			fmt.Sprintf("String should not match RegEx pattern '%s'.", re),
			WithDetailOption("pattern", re.String()))
	}
	return c
}

// IfNotMatchesRegexp is IfNotMatches for a precompiled expression.
func (c StringChain) IfNotMatchesRegexp(re *regexp.Regexp) StringChain {
	if c.live() && !re.MatchString(c.value) {
		c.invalid(reason.StringNotMatch,
			fmt.Sprintf("String should match RegEx pattern '%s'.", re),
			WithDetailOption("pattern", re.String()))
	}
	return c
}

var patterns sync.Map // string -> *regexp.Regexp

func compiled(pattern string) *regexp.Regexp {
	if re, ok := patterns.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	re, _ := patterns.LoadOrStore(pattern, regexp.MustCompile(pattern))
	return re.(*regexp.Regexp)
}
