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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of a guard error code.
type Code string

// MinLength and MaxLength bound the length of a canonical code.
const (
	MinLength = 3
	MaxLength = 64
)

// codeFmt must stay in sync with MinLength / MaxLength: one leading letter
// followed by 2..63 letters, digits or underscores.
const codeFmt = `^[a-z][a-z0-9_]{2,63}$`

var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value cannot be parsed or validated as a
// code.
var ErrCodeInvalid = errors.New("dguard: invalid code")

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It never appears on a raised error.
var Empty Code = ""

// Parse normalizes and validates s.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize trims spaces, lowercases and turns dashes into underscores.
// The result still has to go through Parse or Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "-", "_")
}

// Validate reports whether c is in canonical form.
func Validate(c Code) error {
	return validate(string(c))
}

// Known reports whether c is one of the codes dguard itself raises.
func Known(c Code) bool {
	switch c {
	case NullArgument, OutOfRange, InvalidArgument:
		return true
	}
	return false
}

func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler. Invalid codes fail to
// marshal.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
