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

package apis

import (
	"dirpx.dev/werrors/kind"
	"dirpx.dev/werrors/reason"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe resolver from a logical
// classification (kind plus optional reason) to transport statuses.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given kind and reason.
	// With no reason-specific rule the mapper falls back to the kind-level
	// rule, and ultimately to 500.
	HTTPStatus(k kind.Kind, r reason.Reason) int

	// GRPCStatus returns the gRPC status for the given kind and reason,
	// with the same fallback behavior (ultimately codes.Internal).
	GRPCStatus(k kind.Kind, r reason.Reason) codes.Code

	// Status resolves both transports in one call so a single logical error
	// cannot end up with inconsistent projections.
	Status(k kind.Kind, r reason.Reason) Status

	// Explain returns a human-readable trace of which rule matched.
	// Diagnostic output only; not stable for machine parsing.
	Explain(k kind.Kind, r reason.Reason) string
}

// Status is a resolved pair of transport statuses for one logical error.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
