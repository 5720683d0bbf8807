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
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Reason is an optional, machine-usable refinement of a kind.
//
// Where the kind says "what class of failure", the reason says "which exact
// subcase": dot-separated, hierarchical, built from module/component/operation
// names. Examples:
//
//   - "storage.pg.connect_timeout"
//   - "auth.jwt.expired"
//   - "handler.body.read"
//
// Mapper prefix rules match on these segments, so the format is enforced
// strictly: each segment starts with a lowercase letter and continues with
// lowercase letters, digits, or underscore; at most MaxSegments segments.
//
// The empty string is a valid Reason and means "not provided".
type Reason string

// Shape constraints for a canonical reason.
const (
	// MinLength rejects trivial one- or two-byte values that cannot name a
	// subcase meaningfully. The empty string is exempt: it means "no reason".
	MinLength = 3

	// MaxLength bounds the total reason size; four descriptive segments fit
	// comfortably.
	MaxLength = 128

	// MaxSegments caps the hierarchy depth. Deeper identifiers stop being
	// classifications and start being messages.
	MaxSegments = 4
)

var (
	// ErrReasonInvalidFormat is returned when a reason has a malformed
	// segment or too many segments.
	ErrReasonInvalidFormat = errors.New("werrors: invalid reason format")
	// ErrReasonInvalidLength is returned when a non-empty reason is shorter
	// than MinLength or longer than MaxLength.
	ErrReasonInvalidLength = errors.New("werrors: invalid reason length")
)

// Ensure Reason round-trips through text-based encoders.
var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty is the zero-value reason: "not provided".
var Empty Reason = ""

// Normalize brings an arbitrary string closer to canonical form:
//
//   - trim surrounding whitespace;
//   - lowercase;
//   - '/' becomes '.' (callers often build paths with slashes);
//   - '-' becomes '_'.
//
// Validity is not guaranteed; follow up with Parse or Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates a user-provided string. The empty string
// parses to Empty without error; that is what makes Reason optional.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is the panic-on-error variant of Parse for var/const blocks.
// Unlike Parse it also rejects the empty string: asking for "must have a
// reason" and passing none is a programmer error.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("werrors: empty reason in MustParse")
	}
	return r
}

// Validate reports whether r is canonical. Empty is valid; enforce
// non-emptiness at the call site if you need it.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// String returns the canonical string representation of the reason.
func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler. The empty reason marshals
// to an empty slice so optional fields stay optional in JSON/YAML.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	if r == Empty {
		return []byte{}, nil
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Whitespace-only input
// produces Empty.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// validate checks length, segment count, and per-segment shape in one pass.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	segments := 0
	start := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if start {
			// first byte of a segment must be [a-z]
			if c < 'a' || c > 'z' {
				return ErrReasonInvalidFormat
			}
			segments++
			if segments > MaxSegments {
				return ErrReasonInvalidFormat
			}
			start = false
			continue
		}
		switch {
		case c == '.':
			start = true
		case (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_':
		default:
			return ErrReasonInvalidFormat
		}
	}
	if start {
		// trailing dot leaves a dangling empty segment
		return ErrReasonInvalidFormat
	}
	return nil
}
