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

package kind

import (
	"encoding"
	"errors"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  internal  ", "internal"},
		{"to lower", "TiMeOuT", "timeout"},
		{"dash to underscore", "not-found", "not_found"},
		{"mixed", "  PERMISSION-DENIED  ", "permission_denied"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Kind
	}{
		{"simple", "internal", Internal},
		{"with spaces", "  not_found  ", NotFound},
		{"upper", "CONFLICT", Conflict},
		{"dash", "rate-limited", RateLimited},
		{"min length", "abc", Kind("abc")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "ab"},
		{"starts with digit", "1invalid"},
		{"starts with underscore", "_internal"},
		{"embedded space", "not found"},
		{"too long", strings.Repeat("k", MaxLength+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if !errors.Is(err, ErrKindInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrKindInvalid", tt.in, err)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate_Catalog(t *testing.T) {
	// Every catalog constant must pass its own validation.
	catalog := []Kind{
		Internal, Unavailable, Timeout, Canceled,
		Invalid, Missing, Unsupported,
		NotFound, AlreadyExists, Conflict, Expired,
		Unauthenticated, PermissionDenied,
		RateLimited, Overloaded,
	}
	for _, k := range catalog {
		if err := Validate(k); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", k, err)
		}
	}

	invalid := []Kind{"", "ab", "Internal", "not-found"}
	for _, k := range invalid {
		if err := Validate(k); err == nil {
			t.Fatalf("Validate(%q) expected error", k)
		}
	}
}

func TestMustParse(t *testing.T) {
	if k := MustParse("not_found"); k != NotFound {
		t.Fatalf("MustParse(valid) = %q, want %q", k, NotFound)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("NOT A KIND ??")
}

func TestKind_MarshalText(t *testing.T) {
	text, err := Internal.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "internal" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "internal")
	}

	// invalid kind should refuse to marshal
	if _, err := Kind("Invalid-Dash").MarshalText(); err == nil {
		t.Fatalf("MarshalText() on invalid kind must return error")
	}
}

func TestKind_UnmarshalText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("  NOT-FOUND  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if k != NotFound {
		t.Fatalf("UnmarshalText() = %q, want %q", k, NotFound)
	}

	var bad Kind
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestKind_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Kind)(nil)
	var _ encoding.TextUnmarshaler = (*Kind)(nil)
}

func TestLengthBounds(t *testing.T) {
	long := strings.Repeat("a", MaxLength)
	if _, err := Parse(long); err != nil {
		t.Fatalf("expected %d-char kind to be valid: %v", MaxLength, err)
	}
	if _, err := Parse(long + "a"); err == nil {
		t.Fatalf("expected %d-char kind to be invalid", MaxLength+1)
	}
}
