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
	"strings"

	"dirpx.dev/werrors/apis"
	"dirpx.dev/werrors/kind"
	"dirpx.dev/werrors/mapper/internal/reasontrie"
	"dirpx.dev/werrors/reason"
	"google.golang.org/grpc/codes"
)

// New builds an immutable apis.Mapper snapshot.
//
// The snapshot is safe for concurrent use and meant to be built once at
// startup: no reference to the builder or to caller-provided state survives
// the build.
//
// Build steps:
//
//  1. Seed the builder with the library defaults for HTTP and gRPC.
//  2. Apply the caller's options (defaults, overrides, prefix rules).
//  3. Normalize every reason prefix and compile per-kind segment tries.
//  4. Freeze maps and tries into fresh, read-only copies.
//
// An error means a prefix failed normalization or trie insertion; the mapper
// is unusable in that case and the configuration must be fixed.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}

	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := compileTries(b.httpPrefixes)
	if err != nil {
		return nil, fmt.Errorf("mapper: HTTP %w", err)
	}
	grpcTrie, err := compileTries(b.grpcPrefixes)
	if err != nil {
		return nil, fmt.Errorf("mapper: gRPC %w", err)
	}

	return &mapper{
		httpDefault:  freezeMap(b.httpDefaults),
		grpcDefault:  freezeMap(b.grpcDefaults),
		httpOverride: freezeMap(b.httpOverride),
		grpcOverride: freezeMap(b.grpcOverride),
		httpTrie:     freezeMap(httpTrie),
		grpcTrie:     freezeMap(grpcTrie),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// compileTries turns the registered prefix rules of every kind into a frozen
// segment trie. Prefixes are normalized first so "Storage.PG" and
// "storage.pg" land on the same node.
func compileTries[T int | codes.Code](rules map[kind.Kind][]prefixRule[T]) (map[kind.Kind]*reasontrie.Trie[T], error) {
	out := make(map[kind.Kind]*reasontrie.Trie[T], len(rules))
	for k, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		t := reasontrie.New[T]()
		for _, r := range rs {
			p := reason.Normalize(r.prefix)
			if err := t.Insert(p, r.val); err != nil {
				return nil, fmt.Errorf("prefix %q for kind %q: %w", r.prefix, k, err)
			}
		}
		out[k] = t
	}
	return out, nil
}

// mapper is the frozen snapshot: per-kind defaults, per-kind overrides, and
// per-kind reason tries. Lookups are O(reason depth) and lock-free.
type mapper struct {
	httpDefault map[kind.Kind]int
	grpcDefault map[kind.Kind]codes.Code

	httpOverride map[kind.Kind]int
	grpcOverride map[kind.Kind]codes.Code

	httpTrie map[kind.Kind]*reasontrie.Trie[int]
	grpcTrie map[kind.Kind]*reasontrie.Trie[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves the HTTP status for a kind and reason.
//
// Resolution order, most specific first:
//
//  1. reason-prefix rule for the kind (longest prefix wins);
//  2. exact per-kind override;
//  3. per-kind default;
//  4. the fallback (500).
func (m *mapper) HTTPStatus(k kind.Kind, r reason.Reason) int {
	if t := m.httpTrie[k]; t != nil {
		if v, _, ok := t.Lookup(string(r)); ok {
			return v
		}
	}
	if v, ok := m.httpOverride[k]; ok {
		return v
	}
	if v, ok := m.httpDefault[k]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves the gRPC status for a kind and reason, with the same
// precedence as HTTPStatus and codes.Internal as the fallback.
func (m *mapper) GRPCStatus(k kind.Kind, r reason.Reason) codes.Code {
	if t := m.grpcTrie[k]; t != nil {
		if v, _, ok := t.Lookup(string(r)); ok {
			return v
		}
	}
	if v, ok := m.grpcOverride[k]; ok {
		return v
	}
	if v, ok := m.grpcDefault[k]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both transports with the same inputs so one logical error
// cannot project inconsistently.
func (m *mapper) Status(k kind.Kind, r reason.Reason) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k, r),
		GRPC: m.GRPCStatus(k, r),
	}
}

// Explain renders a diagnostic trace of which tier resolved each transport.
//
// Example output:
//
//	kind="unavailable" reason="storage.pg.connect_timeout"
//	http: source=prefix pattern="storage.pg" -> 503
//	grpc: source=default -> UNAVAILABLE(14)
//
// The format is for humans reading logs or tests; it is not a stable
// machine interface.
func (m *mapper) Explain(k kind.Kind, r reason.Reason) string {
	var b strings.Builder
	fmt.Fprintf(&b, "kind=%q reason=%q\n", k, r)
	fmt.Fprintln(&b, m.explainHTTP(k, r))
	fmt.Fprint(&b, m.explainGRPC(k, r))
	return b.String()
}

func (m *mapper) explainHTTP(k kind.Kind, r reason.Reason) string {
	if t := m.httpTrie[k]; t != nil {
		if v, pat, ok := t.Lookup(string(r)); ok {
			return fmt.Sprintf("http: source=prefix pattern=%q -> %d", pat, v)
		}
	}
	if v, ok := m.httpOverride[k]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok := m.httpDefault[k]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

func (m *mapper) explainGRPC(k kind.Kind, r reason.Reason) string {
	if t := m.grpcTrie[k]; t != nil {
		if v, pat, ok := t.Lookup(string(r)); ok {
			return fmt.Sprintf("grpc: source=prefix pattern=%q -> %s", pat, grpcName(v))
		}
	}
	if v, ok := m.grpcOverride[k]; ok {
		return fmt.Sprintf("grpc: source=override -> %s", grpcName(v))
	}
	if v, ok := m.grpcDefault[k]; ok {
		return fmt.Sprintf("grpc: source=default -> %s", grpcName(v))
	}
	return fmt.Sprintf("grpc: source=fallback -> %s", grpcName(m.fallbackGRPC))
}

// grpcName formats a gRPC code as "UNAVAILABLE(14)".
func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
