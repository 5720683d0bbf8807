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
	"context"
	"errors"
	"net"

	"dirpx.dev/werrors/apis"
	"dirpx.dev/werrors/backtrace"
	"dirpx.dev/werrors/kind"
	"dirpx.dev/werrors/reason"
)

// Reasons assigned to platform failures recognized by classify.
var (
	reasonDeadline = reason.MustParse("context.deadline_exceeded")
	reasonCanceled = reason.MustParse("context.canceled")
	reasonNetwork  = reason.MustParse("net.timeout")
)

// From converts an arbitrary failure into the canonical *Error.
//
// This is the single conversion boundary: each failure crosses it exactly
// once, and each crossing yields exactly one *Error with the original
// message preserved verbatim. The rules, in order:
//
//   - nil stays nil;
//   - a value that already is *Error is returned as-is — converting twice
//     never re-captures the backtrace or re-classifies;
//   - the failure's own capabilities are honored: an explicit kind/reason
//     (apis.KindedError / apis.ReasonedError) wins over inference, and a
//     Responder capability is retained so the transport layer can still use
//     the custom rendering;
//   - otherwise the failure is classified by inspection: context
//     cancellation and deadline sentinels and net timeouts get their own
//     kinds, every remaining platform failure (I/O included) is internal;
//   - backtrace: a trace the failure already carries (apis.Backtracer) is
//     inherited verbatim; otherwise a fresh one is captured here, rooted at
//     the From call site. Frames below the original failure site are lost in
//     that case — capturing at the boundary instead of hooking every
//     constructor is the intended tradeoff.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}

	k, r := classify(err)
	e := &Error{
		Kind:    k,
		Reason:  r,
		Message: err.Error(),
		Cause:   err,
		trace:   inheritedTrace(err),
	}
	if e.trace == nil {
		e.trace = backtrace.Capture(1)
	}

	var rsp apis.Responder
	if errors.As(err, &rsp) {
		e.responder = rsp
	}
	return e
}

// inheritedTrace returns the failure's own non-nil trace, or nil when a
// fresh capture is needed. An empty (but non-nil) inherited trace is still
// inherited: the failure said "I have a trace", and we never replace it.
func inheritedTrace(err error) *backtrace.Trace {
	var bt apis.Backtracer
	if errors.As(err, &bt) {
		if tr := bt.Backtrace(); tr != nil {
			return tr
		}
	}
	return nil
}

// classify derives (kind, reason) for a failure that is not yet canonical.
func classify(err error) (kind.Kind, reason.Reason) {
	// Explicit self-classification wins. Invalid values are not repaired;
	// the failure is then treated as internal.
	var ke apis.KindedError
	if errors.As(err, &ke) {
		if k, perr := kind.Parse(ke.ErrorKind()); perr == nil {
			return k, classifyReason(err)
		}
		return kind.Internal, reason.Empty
	}

	// Context sentinels.
	if errors.Is(err, context.DeadlineExceeded) {
		return kind.Timeout, reasonDeadline
	}
	if errors.Is(err, context.Canceled) {
		return kind.Canceled, reasonCanceled
	}

	// Network timeouts surface as such; other net errors stay internal
	// below, together with every other platform failure.
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return kind.Timeout, reasonNetwork
	}

	// Everything else — I/O errors included — is an unclassified
	// server-side failure.
	return kind.Internal, reason.Empty
}

// classifyReason extracts a declared reason, tolerating absent or malformed
// values by falling back to Empty.
func classifyReason(err error) reason.Reason {
	var re apis.ReasonedError
	if !errors.As(err, &re) {
		return reason.Empty
	}
	r, perr := reason.Parse(re.ErrorReason())
	if perr != nil {
		return reason.Empty
	}
	return r
}
