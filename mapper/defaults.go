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

// defaultHTTP holds the built-in HTTP projection for each well-known kind.
// These are starting points: the boundary that actually writes HTTP (handler,
// gateway) is expected to override them where its API contract differs.
var defaultHTTP = map[kind.Kind]int{
	// 5xx — server-side, dependency, or transient failure.
	kind.Internal:    http.StatusInternalServerError, // Unclassified failure; expose nothing.
	kind.Unavailable: http.StatusServiceUnavailable,  // Dependency or service temporarily unreachable.
	kind.Overloaded:  http.StatusServiceUnavailable,  // Server sheds load; retry later.
	kind.Timeout:     http.StatusGatewayTimeout,      // Time budget exceeded.
	kind.Canceled:    http.StatusRequestTimeout,      // Caller abandoned the request mid-flight.

	// 4xx — the client can fix these.
	kind.Invalid:     http.StatusBadRequest, // Malformed or contract-violating input.
	kind.Missing:     http.StatusBadRequest, // Required field or parameter absent.
	kind.Unsupported: http.StatusBadRequest, // Known but unsupported operation or content.
	kind.NotFound:    http.StatusNotFound,   // Target does not exist or is not visible.
	kind.Expired:     http.StatusGone,       // Resource or grant outlived its validity.

	kind.AlreadyExists: http.StatusConflict, // Creation clash.
	kind.Conflict:      http.StatusConflict, // Concurrent or contradictory update.

	kind.Unauthenticated:  http.StatusUnauthorized,    // Missing or invalid credentials.
	kind.PermissionDenied: http.StatusForbidden,       // Authenticated but not allowed.
	kind.RateLimited:      http.StatusTooManyRequests, // Client exceeded its budget.
}

// defaultGRPC holds the built-in gRPC projection for each well-known kind,
// aligned with the canonical status code meanings.
var defaultGRPC = map[kind.Kind]codes.Code{
	kind.Internal: codes.Internal,

	kind.Invalid:     codes.InvalidArgument,
	kind.Missing:     codes.InvalidArgument,
	kind.Unsupported: codes.InvalidArgument,
	kind.NotFound:    codes.NotFound,
	kind.Expired:     codes.FailedPrecondition, // No direct 410 analogue in gRPC.

	kind.AlreadyExists: codes.AlreadyExists,
	kind.Conflict:      codes.Aborted,

	kind.Unauthenticated:  codes.Unauthenticated,
	kind.PermissionDenied: codes.PermissionDenied,
	kind.RateLimited:      codes.ResourceExhausted,

	kind.Unavailable: codes.Unavailable,
	kind.Overloaded:  codes.Unavailable,

	kind.Timeout:  codes.DeadlineExceeded,
	kind.Canceled: codes.Canceled,
}
