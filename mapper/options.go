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
	"dirpx.dev/werrors/kind"
	"google.golang.org/grpc/codes"
)

// Option configures the mapper at build time. Options mutate an internal
// builder that New then freezes into an immutable snapshot.
type Option func(*builder)

// WithHTTPDefault replaces the built-in default HTTP status for a kind.
func WithHTTPDefault(k kind.Kind, status int) Option {
	return func(b *builder) { b.httpDefaults[k] = status }
}

// WithGRPCDefault replaces the built-in default gRPC status for a kind.
func WithGRPCDefault(k kind.Kind, c codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[k] = c }
}

// WithHTTPOverride pins the HTTP status for a kind. An override beats the
// kind's default but still yields to reason-prefix rules for that kind.
func WithHTTPOverride(k kind.Kind, status int) Option {
	return func(b *builder) { b.httpOverride[k] = status }
}

// WithGRPCOverride pins the gRPC status for a kind, with the same precedence
// as WithHTTPOverride.
func WithGRPCOverride(k kind.Kind, c codes.Code) Option {
	return func(b *builder) { b.grpcOverride[k] = c }
}

// WithHTTPPrefix adds a longest-prefix-match rule on the reason for one kind.
// Prefixes are dot-separated; "*" matches exactly one segment. The most
// specific matching rule wins.
func WithHTTPPrefix(k kind.Kind, prefix string, status int) Option {
	return func(b *builder) {
		b.httpPrefixes[k] = append(b.httpPrefixes[k], prefixRule[int]{prefix, status})
	}
}

// WithGRPCPrefix adds a longest-prefix-match rule on the reason for one kind,
// resolving to a gRPC status.
func WithGRPCPrefix(k kind.Kind, prefix string, c codes.Code) Option {
	return func(b *builder) {
		b.grpcPrefixes[k] = append(b.grpcPrefixes[k], prefixRule[codes.Code]{prefix, c})
	}
}
