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

// ErrorView is the minimal, serializable shape of an error that adapters are
// comfortable exposing over the wire. It is not the internal error type —
// it is the disclosed subset, shared by the HTTP and gRPC writers so both
// transports render the same thing.
type ErrorView struct {
	// Kind is the canonical classification, e.g. "invalid", "not_found".
	Kind string `json:"kind"`
	// Reason is the optional subcase, e.g. "storage.pg.connect_timeout".
	Reason string `json:"reason,omitempty"`
	// Message is the human-readable explanation.
	Message string `json:"message,omitempty"`
	// Details is optional structured data attached by the error producer:
	// ids, limits, field names. Values must survive JSON round-trips.
	Details map[string]any `json:"details,omitempty"`
}

// ErrorDescriptor is the flat projection used for structured logging and for
// gRPC status details: the logical classification plus the concrete
// transport statuses it resolved to.
type ErrorDescriptor struct {
	// Kind is the canonical classification.
	Kind string `json:"kind"`
	// Reason is the optional subcase; empty when not provided.
	Reason string `json:"reason,omitempty"`
	// HTTPStatus is the resolved HTTP status; 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`
	// GRPCCode is the resolved gRPC status as an integer; 0 is OK, which a
	// descriptor for a failure never carries, so 0 doubles as "not resolved".
	GRPCCode int `json:"grpc_code,omitempty"`
	// Message is the human-readable explanation.
	Message string `json:"message,omitempty"`
	// TraceDepth is the number of backtrace frames the error carries.
	// The frames themselves never travel in a descriptor.
	TraceDepth int `json:"trace_depth,omitempty"`
}
