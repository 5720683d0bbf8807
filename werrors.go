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

package werrors

import (
	"fmt"

	"dirpx.dev/werrors/apis"
	"dirpx.dev/werrors/backtrace"
	"dirpx.dev/werrors/kind"
	"dirpx.dev/werrors/reason"
)

// Error is the canonical error type of werrors.
//
// It is what every application failure becomes when it crosses the
// handler/framework boundary, exactly once, via From (or is born as, via E).
// It carries:
//
//   - Kind: high-level, normalized classification (required);
//   - Reason: optional, more specific machine-friendly subcase;
//   - Message: human-oriented description, preserved verbatim from the
//     original failure;
//   - Details: arbitrary key/value payload (for logging / HTTP body);
//   - Cause: wrapped underlying error for debugging / unwrapping;
//   - a backtrace, exactly one, captured or inherited at construction;
//   - optionally, the original error's Responder capability.
//
// All mutation helpers (WithX) return a shallow copy, so Error values can be
// shared across goroutines and refined in a functional style. The backtrace
// and responder travel unchanged through every copy.
type Error struct {
	// Kind is the primary classification, e.g. "invalid", "not_found".
	// Must be a normalized kind from werrors/kind.
	Kind kind.Kind

	// Reason refines the Kind with a machine-usable marker, e.g.
	// "storage.pg.connect_timeout". May be empty.
	Reason reason.Reason

	// Message is the human-readable explanation. This is what ends up in
	// logs and in the "message" field of an HTTP error body.
	Message string

	// Details is an optional, shallow map of extra fields. Treated as
	// immutable: WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any), reachable through
	// errors.Is / errors.As.
	Cause error

	// trace is the single backtrace associated with this error. Never nil
	// after E/From; possibly empty when capture is disabled.
	trace *backtrace.Trace

	// responder is the retained response-producing capability of the
	// original failure, if it had one. nil means "use the default".
	responder apis.Responder
}

// E constructs a new canonical Error directly, for failure paths that start
// inside code already speaking werrors:
//
//	return werrors.E(kind.Unavailable, "storage is down",
//	    werrors.WithReasonOption(reason.MustParse("storage.pg.connect_timeout")),
//	    werrors.WithDetailOption("host", "db:5432"),
//	)
//
// The backtrace is captured here, at the E call site, honoring the
// process-wide capture toggle. Options are applied in order and always
// produce a fresh value.
func E(k kind.Kind, msg string, opts ...Option) *Error {
	e := &Error{
		Kind:    k,
		Message: msg,
		trace:   backtrace.Capture(1),
	}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <message>
//
// or, when Reason is present:
//
//	<kind>:<reason>: <message>
//
// so a single log line is both human- and machine-scannable.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s:%s: %s", e.Kind, e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorKind implements apis.KindedError.
func (e *Error) ErrorKind() string { return string(e.Kind) }

// ErrorReason implements apis.ReasonedError.
func (e *Error) ErrorReason() string { return string(e.Reason) }

// Backtrace implements apis.Backtracer. The returned trace is never nil for
// an error built by E or From; it may be empty when capture was disabled at
// construction time.
func (e *Error) Backtrace() *backtrace.Trace {
	if e == nil || e.trace == nil {
		return &backtrace.Trace{}
	}
	return e.trace
}

// Responder returns the retained response-producing capability, or nil when
// the error renders through the default mapping. Transport writers use this
// to decide whether the error wants to speak for itself.
func (e *Error) Responder() apis.Responder {
	if e == nil {
		return nil
	}
	return e.responder
}

// WithReason returns a shallow copy of e with the given Reason set.
func (e *Error) WithReason(r reason.Reason) *Error {
	cp := *e
	cp.Reason = r
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful to re-phrase for a different audience while keeping Kind/Reason
// and the original backtrace.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
// The map is always copied so shared errors never observe each other's edits.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with kv merged into Details,
// kv winning on key conflicts. Both maps are copied.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. A nil err returns e unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
