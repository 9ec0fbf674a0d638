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
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// Comparison selects how string checks compare text. The zero value is
// Ordinal.
type Comparison struct {
	name    string
	culture bool
	fold    bool
	tag     language.Tag
}

var (
	// Ordinal compares bytes exactly.
	Ordinal = Comparison{name: "Ordinal"}
	// OrdinalIgnoreCase compares Unicode case-folded text.
	OrdinalIgnoreCase = Comparison{name: "OrdinalIgnoreCase", fold: true}
	// InvariantCulture compares with the root collation, so canonically
	// equivalent strings (e.g. precomposed and decomposed accents) match.
	InvariantCulture = Comparison{name: "InvariantCulture", culture: true, tag: language.Und}
	// InvariantCultureIgnoreCase is InvariantCulture ignoring case.
	InvariantCultureIgnoreCase = Comparison{name: "InvariantCultureIgnoreCase", culture: true, fold: true, tag: language.Und}
)

// Culture compares with the collation rules of tag.
func Culture(tag language.Tag) Comparison {
	return Comparison{name: "Culture(" + tag.String() + ")", culture: true, tag: tag}
}

// CultureIgnoreCase compares with the collation rules of tag, ignoring case.
func CultureIgnoreCase(tag language.Tag) Comparison {
	return Comparison{name: "CultureIgnoreCase(" + tag.String() + ")", culture: true, fold: true, tag: tag}
}

func (c Comparison) String() string {
	if c.name == "" {
		return Ordinal.name
	}
	return c.name
}

func (c Comparison) matcher() *search.Matcher {
	if c.fold {
		return search.New(c.tag, search.IgnoreCase)
	}
	return search.New(c.tag)
}

func (c Comparison) foldPair(a, b string) (string, string) {
	f := cases.Fold()
	return f.String(a), f.String(b)
}

func (c Comparison) equal(s, other string) bool {
	switch {
	case c.culture:
		return c.matcher().EqualString(s, other)
	case c.fold:
		s, other = c.foldPair(s, other)
	}
	return s == other
}

func (c Comparison) contains(s, sub string) bool {
	if sub == "" {
		return true
	}
	switch {
	case c.culture:
		start, _ := c.matcher().IndexString(s, sub)
		return start >= 0
	case c.fold:
		s, sub = c.foldPair(s, sub)
	}
	return strings.Contains(s, sub)
}

func (c Comparison) hasPrefix(s, prefix string) bool {
	if prefix == "" {
		return true
	}
	switch {
	case c.culture:
		start, _ := c.matcher().IndexString(s, prefix, search.Anchor)
		return start == 0
	case c.fold:
		s, prefix = c.foldPair(s, prefix)
	}
	return strings.HasPrefix(s, prefix)
}

func (c Comparison) hasSuffix(s, suffix string) bool {
	if suffix == "" {
		return true
	}
	switch {
	case c.culture:
		// Collation elements do not map 1:1 to bytes, so try every rune
		// boundary from the end.
		m := c.matcher()
		for i := len(s); i >= 0; {
			if m.EqualString(s[i:], suffix) {
				return true
			}
			if i == 0 {
				break
			}
			_, size := utf8.DecodeLastRuneInString(s[:i])
			i -= size
		}
		return false
	case c.fold:
		s, suffix = c.foldPair(s, suffix)
	}
	return strings.HasSuffix(s, suffix)
}

// comparison picks the first mode of an optional argument list.
func comparison(modes []Comparison) Comparison {
	if len(modes) == 0 {
		return Ordinal
	}
	return modes[0]
}
