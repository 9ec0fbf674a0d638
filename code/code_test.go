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
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  out_of_range  ", "out_of_range"},
		{"to lower", "Invalid_Argument", "invalid_argument"},
		{"dash to underscore", "null-argument", "null_argument"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Code
		wantErr bool
	}{
		{"null argument", "null_argument", NullArgument, false},
		{"upper dashed", " OUT-OF-RANGE ", OutOfRange, false},
		{"invalid argument", "invalid_argument", InvalidArgument, false},
		{"empty", "", Empty, true},
		{"too short", "ab", Empty, true},
		{"digit first", "1abc", Empty, true},
		{"too long", "a" + strings.Repeat("b", MaxLength), Empty, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("not a code")
}

func TestKnown(t *testing.T) {
	for _, c := range []Code{NullArgument, OutOfRange, InvalidArgument} {
		if !Known(c) {
			t.Fatalf("Known(%q) = false", c)
		}
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", c, err)
		}
	}
	if Known(Internal) {
		t.Fatalf("Known(%q) must be false", Internal)
	}
}

func TestCode_TextRoundTrip(t *testing.T) {
	text, err := OutOfRange.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	var c Code
	if err := c.UnmarshalText(append([]byte("  "), text...)); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != OutOfRange {
		t.Fatalf("round trip = %q, want %q", c, OutOfRange)
	}

	if _, err := Code("Bad-Code").MarshalText(); err == nil {
		t.Fatalf("MarshalText() on invalid code must return error")
	}
	var bad Code
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}
