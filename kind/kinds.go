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

// Generic / server-side kinds.
//
// These describe failures the caller cannot fix by changing the request.
const (
	// Internal is the catch-all for unclassified server-side failures,
	// including every platform failure (I/O, encoding, unexpected panics)
	// that carries no finer classification of its own. The root cause is
	// attached as the error cause, never exposed in the message.
	//
	// Default transport projection: HTTP 500.
	Internal Kind = "internal"

	// Unavailable indicates that a required downstream dependency is
	// temporarily unreachable: database outage, network partition, DNS.
	//
	// Default transport projection: HTTP 503.
	Unavailable Kind = "unavailable"

	// Timeout indicates the operation exceeded its time budget. The cause
	// is typically context.DeadlineExceeded or a net.Error with Timeout().
	//
	// Default transport projection: HTTP 504.
	Timeout Kind = "timeout"

	// Canceled indicates the caller abandoned the operation, usually via
	// context cancellation propagating through the handler.
	//
	// Default transport projection: HTTP 408.
	Canceled Kind = "canceled"
)

// Client input kinds.
//
// These describe failures the caller can fix by changing the request.
const (
	// Invalid indicates the input violates a structural or semantic
	// invariant: bad format, out-of-range value, inconsistent fields.
	//
	// Default transport projection: HTTP 400.
	Invalid Kind = "invalid"

	// Missing indicates a required value is absent: empty field, missing
	// parameter or header, nil reference.
	//
	// Default transport projection: HTTP 400.
	Missing Kind = "missing"

	// Unsupported indicates a known but unsupported operation, value, or
	// content type.
	//
	// Default transport projection: HTTP 400.
	Unsupported Kind = "unsupported"
)

// Resource state kinds.
const (
	// NotFound indicates the referenced entity does not exist in the
	// caller's visible scope.
	//
	// Default transport projection: HTTP 404.
	NotFound Kind = "not_found"

	// AlreadyExists indicates creation failed because an entity with the
	// same identity is already present.
	//
	// Default transport projection: HTTP 409.
	AlreadyExists Kind = "already_exists"

	// Conflict indicates a state conflict that is not strictly "already
	// exists": version mismatch, concurrent update, collision.
	//
	// Default transport projection: HTTP 409.
	Conflict Kind = "conflict"

	// Expired indicates a time-limited entity (link, challenge, one-time
	// token) is past its validity window.
	//
	// Default transport projection: HTTP 410.
	Expired Kind = "expired"
)

// Authentication / authorization kinds.
//
// Kept separate because HTTP distinguishes 401 from 403 and the projection
// must not blur that line.
const (
	// Unauthenticated indicates no valid caller identity could be
	// established.
	//
	// Default transport projection: HTTP 401.
	Unauthenticated Kind = "unauthenticated"

	// PermissionDenied indicates the caller is authenticated but not
	// allowed to perform the operation.
	//
	// Default transport projection: HTTP 403.
	PermissionDenied Kind = "permission_denied"
)

// Rate / load kinds.
const (
	// RateLimited indicates the caller exceeded the allowed request rate
	// in the current window.
	//
	// Default transport projection: HTTP 429.
	RateLimited Kind = "rate_limited"

	// Overloaded indicates the server itself cannot accept more work right
	// now: full queues, saturated pools.
	//
	// Default transport projection: HTTP 503.
	Overloaded Kind = "overloaded"
)
