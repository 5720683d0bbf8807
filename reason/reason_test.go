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

package reason

import (
	"encoding"
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim+lower", "  Handler.Body.READ  ", "handler.body.read"},
		{"slash to dot", "storage/pg/connect", "storage.pg.connect"},
		{"dash to underscore", "storage.pg.connect-timeout", "storage.pg.connect_timeout"},
		{"mixed", "  AUTH/JWT-VERIFY  ", "auth.jwt_verify"},
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
		want Reason
	}{
		{"four segments", "handler.body.read.eof", Reason("handler.body.read.eof")},
		{"two segments", "net.dns", Reason("net.dns")},
		{"with slash and dash", "storage/pg.connect-timeout", Reason("storage.pg.connect_timeout")},
		{"single segment", "shutdown", Reason("shutdown")},
		{"empty is ok", "", Empty},
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

func TestParse_InvalidFormat(t *testing.T) {
	tests := []string{
		"storage..pg",
		"storage//pg",      // normalizes to "storage..pg"
		"1storage.pg",      // segment starts with digit
		"storage.pg.",      // trailing dot
		".leading",         // leading dot
		"a.b.c.d.e",        // too many segments
		"storage.pg.con?x", // invalid character
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", in, got)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", in, got)
			}
			if !errors.Is(err, ErrReasonInvalidFormat) && !errors.Is(err, ErrReasonInvalidLength) {
				t.Fatalf("Parse(%q) error = %v, want format or length error", in, err)
			}
		})
	}
}

func TestParse_InvalidLength(t *testing.T) {
	long := "seg"
	for len(long) <= MaxLength {
		long += "verylongreasonsegmentpayload"
	}

	got, err := Parse(long)
	if err == nil {
		t.Fatalf("Parse(long) = %q, want error", got)
	}
	if !errors.Is(err, ErrReasonInvalidLength) {
		t.Fatalf("Parse(long) error = %v, want ErrReasonInvalidLength", err)
	}

	if _, err := Parse("ab"); !errors.Is(err, ErrReasonInvalidLength) {
		t.Fatalf("Parse(short) error = %v, want ErrReasonInvalidLength", err)
	}
}

func TestValidate(t *testing.T) {
	// empty is valid (optional)
	if err := Validate(Empty); err != nil {
		t.Fatalf("Validate(Empty) unexpected error: %v", err)
	}

	valid := []Reason{
		"handler.body.read",
		"auth.jwt.verify",
		"storage.pg.connect",
		"net.dns",
	}
	for _, r := range valid {
		if err := Validate(r); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", r, err)
		}
	}

	invalid := []Reason{
		"storage..pg",
		"1bad.start",
		"Upper.case",
		"a.b.c.d.e",
	}
	for _, r := range invalid {
		if err := Validate(r); err == nil {
			t.Fatalf("Validate(%q) expected error", r)
		}
	}
}

func TestMustParse_Success(t *testing.T) {
	r := MustParse("handler.body.read")
	if r != Reason("handler.body.read") {
		t.Fatalf("MustParse = %q, want %q", r, "handler.body.read")
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse must panic on invalid reason")
		}
	}()
	_ = MustParse("storage..pg")
}

func TestMustParse_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse must panic on empty reason")
		}
	}()
	_ = MustParse("   ")
}

func TestReason_MarshalText(t *testing.T) {
	r := Reason("handler.body.read")
	text, err := r.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText unexpected error: %v", err)
	}
	if string(text) != "handler.body.read" {
		t.Fatalf("MarshalText = %q, want %q", string(text), "handler.body.read")
	}

	// empty reason marshals to an empty slice
	text, err = Empty.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText on empty unexpected error: %v", err)
	}
	if len(text) != 0 {
		t.Fatalf("MarshalText on empty = %q, want empty", string(text))
	}

	if _, err := Reason("Bad.Reason").MarshalText(); err == nil {
		t.Fatalf("MarshalText on invalid reason must return error")
	}
}

func TestReason_UnmarshalText(t *testing.T) {
	var r Reason
	if err := r.UnmarshalText([]byte("  STORAGE/PG.CONNECT-TIMEOUT  ")); err != nil {
		t.Fatalf("UnmarshalText unexpected error: %v", err)
	}
	if r != Reason("storage.pg.connect_timeout") {
		t.Fatalf("UnmarshalText = %q, want %q", r, "storage.pg.connect_timeout")
	}

	var r2 Reason
	if err := r2.UnmarshalText([]byte("   ")); err != nil {
		t.Fatalf("UnmarshalText(empty) unexpected error: %v", err)
	}
	if r2 != Empty {
		t.Fatalf("UnmarshalText(empty) = %q, want Empty", r2)
	}

	var bad Reason
	if err := bad.UnmarshalText([]byte("too/many/segments/in/this/one")); err == nil {
		t.Fatalf("UnmarshalText expected error for invalid input")
	}
}

func TestReason_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Reason)(nil)
	var _ encoding.TextUnmarshaler = (*Reason)(nil)
}
