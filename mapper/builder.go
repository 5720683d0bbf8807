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
	"net/http"

	"dirpx.dev/werrors/kind"
	"google.golang.org/grpc/codes"
)

// prefixRule is one reason-prefix rule as registered, before normalization.
// val carries the transport status for whichever trie the rule belongs to.
type prefixRule[T int | codes.Code] struct {
	prefix string
	val    T
}

// builder accumulates configuration while New applies options; nothing in it
// escapes into the finished mapper, every map is copied at freeze time.
type builder struct {
	// per-kind defaults, seeded from the library tables and adjustable
	// through options
	httpDefaults map[kind.Kind]int
	grpcDefaults map[kind.Kind]codes.Code

	// exact per-kind overrides; stronger than defaults, weaker than
	// reason-prefix rules
	httpOverride map[kind.Kind]int
	grpcOverride map[kind.Kind]codes.Code

	// reason-prefix rules, compiled into per-kind tries by New
	httpPrefixes map[kind.Kind][]prefixRule[int]
	grpcPrefixes map[kind.Kind][]prefixRule[codes.Code]

	// last-resort statuses for kinds with no rule at any tier
	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[kind.Kind]int, len(defaultHTTP)),
		grpcDefaults: make(map[kind.Kind]codes.Code, len(defaultGRPC)),

		httpOverride: make(map[kind.Kind]int),
		grpcOverride: make(map[kind.Kind]codes.Code),
		httpPrefixes: make(map[kind.Kind][]prefixRule[int]),
		grpcPrefixes: make(map[kind.Kind][]prefixRule[codes.Code]),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}

// freezeMap detaches a builder map from the finished mapper. Empty maps
// collapse to nil so lookups stay a plain nil-safe map access.
func freezeMap[K comparable, V any](src map[K]V) map[K]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
