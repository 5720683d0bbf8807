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

// Package mapper provides deterministic, immutable mappings from a logical
// error classification (dirpx.dev/werrors/kind plus an optional
// dirpx.dev/werrors/reason) to transport statuses for HTTP and gRPC.
//
// # Overview
//
// A werrors failure is classified in two parts:
//
//  1. a high-level Kind (e.g. kind.Unavailable, kind.Invalid),
//  2. an optional, more specific Reason (e.g. "storage.pg.connect_timeout").
//
// Transport boundaries (HTTP handlers, gRPC servers) turn this pair into
// concrete status codes. Package mapper does that in a way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per Kind;
//   - prefix-aware — callers can add fine-grained rules for specific reasons;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. per-Kind longest-prefix-match (LPM) on the Reason;
//  2. exact per-Kind override;
//  3. per-Kind default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware: reasons are "."-separated, and "*" matches
// exactly one segment. For example:
//
//	WithHTTPPrefix(kind.Unavailable, "storage.pg", http.StatusServiceUnavailable)
//	WithHTTPPrefix(kind.Unavailable, "storage.*.connect", http.StatusServiceUnavailable)
//
// The more specific prefix wins.
//
// # Library defaults
//
// The package ships with defaults for the well-known kinds, mapping them to
// standard net/http constants and grpc/codes values (e.g. kind.Invalid ->
// 400 / InvalidArgument, kind.Unauthenticated -> 401 / Unauthenticated,
// kind.Unavailable -> 503 / Unavailable). All of them can be adjusted at
// build time.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(kind.Canceled, 499),            // nginx-style
//	    mapper.WithHTTPPrefix(kind.Unavailable, "storage.pg", 503),
//	)
//	if err != nil {
//	    // invalid prefix, etc.
//	}
//
//	st := m.Status(kind.Unavailable, "storage.pg.connect_timeout")
//	// st.HTTP == 503, st.GRPC == codes.Unavailable
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a particular
// (kind, reason) was resolved, including which tier matched and, for
// prefixes, which pattern was used. Intended for inspection and logging,
// not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction the
// Mapper does not observe further changes to the caller's maps or slices,
// so a single instance is safe to share across handlers and goroutines.
package mapper
