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
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Kind is the canonical, validated classification of a failure.
//
// It answers the question "what class of thing went wrong?" at the level
// a transport boundary cares about: invalid input, missing resource,
// exhausted quota, internal fault, and so on. Mappers use the Kind (plus an
// optional reason) to pick a concrete transport status.
//
// Kind is a distinct type rather than a bare string so that packages can
// declare exactly which values they accept and so raw user input cannot be
// mistaken for a normalized classification.
//
// IMPORTANT: the empty Kind ("") is never valid. Every canonical error MUST
// carry a non-empty Kind; converters that cannot classify a failure fall
// back to Internal.
type Kind string

// MinLength and MaxLength bound the accepted length of a canonical kind.
//
// They are exported so tests and neighboring packages can mirror the same
// constraints without re-deriving them.
const (
	// MinLength rejects ultra-short identifiers like "a" or "x1" that carry
	// no meaning for a human reading a log line.
	MinLength = 3

	// MaxLength keeps kinds short enough to be scannable; 64 characters fits
	// descriptive values like "permission_denied" with a wide margin.
	MaxLength = 64
)

// ErrKindInvalid is returned when a value cannot be parsed or validated as a
// kind. A dedicated sentinel lets callers distinguish "the kind is malformed"
// from other failures via errors.Is.
var ErrKindInvalid = errors.New("werrors: invalid kind")

// Ensure Kind round-trips through text-based encoders (JSON, YAML, config).
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Empty is the zero-value kind. It is storable but never valid; use Validate
// or Parse to enforce presence.
var Empty Kind = ""

// Parse normalizes and validates a user-provided string, returning the
// canonical Kind on success.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse, for package-level
// var/const declarations.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize brings an arbitrary string closer to canonical form using only
// obvious, non-lossy transformations:
//
//   - surrounding whitespace is trimmed;
//   - the value is lowercased;
//   - '-' becomes '_'.
//
// The result is not guaranteed to be valid; callers still need Parse or
// Validate afterwards.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate reports whether k is a canonical kind. The empty kind is invalid.
func Validate(k Kind) error {
	return validate(string(k))
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler. Invalid kinds refuse to
// marshal rather than leaking malformed values onto the wire.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is normalized
// and validated before assignment.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// validate checks the canonical shape without allocating:
//
//	first byte  [a-z]
//	rest        [a-z0-9_]
//	length      MinLength..MaxLength
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrKindInvalid
	}
	if s[0] < 'a' || s[0] > 'z' {
		return ErrKindInvalid
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return ErrKindInvalid
	}
	return nil
}
