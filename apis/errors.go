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

import "dirpx.dev/werrors/backtrace"

// KindedError is implemented by errors that classify themselves into a
// well-known kind.
//
// The returned value MUST be non-empty and already normalized per the
// werrors/kind rules. The conversion boundary does not repair bad values;
// an error that reports an invalid kind is treated as internal.
type KindedError interface {
	error

	// ErrorKind returns the machine-readable classification,
	// e.g. "invalid" or "not_found".
	ErrorKind() string
}

// ReasonedError is implemented by errors that additionally name the exact
// subcase of their kind.
//
// The returned value MAY be empty when no finer classification exists;
// callers must handle the empty case. Non-empty values are expected to be
// normalized per the werrors/reason rules.
type ReasonedError interface {
	error

	// ErrorReason returns the dot-separated subcase,
	// e.g. "storage.pg.connect_timeout".
	ErrorReason() string
}

// Backtracer is implemented by errors that captured a backtrace at their
// point of origin.
//
// The conversion boundary inherits such a trace verbatim instead of
// capturing a fresh one — a canonical error never holds two traces and never
// trades an origin trace for a shallower conversion-point trace.
// Implementations may return nil to mean "no trace after all".
type Backtracer interface {
	error

	// Backtrace returns the trace captured when the error was created.
	Backtrace() *backtrace.Trace
}

// CausedError is implemented by errors that expose their direct underlying
// cause. errors.Unwrap covers the same ground; this interface keeps the
// contract explicit in places that do not want to reach for errors.As.
// Implementations return nil when there is no cause.
type CausedError interface {
	error

	// Cause returns the immediate underlying error, if any.
	Cause() error
}
