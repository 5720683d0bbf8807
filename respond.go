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
	"errors"

	"dirpx.dev/werrors/apis"
)

// Respond produces the HTTP response for an arbitrary failure.
//
// If the failure (or, for an already-canonical error, its retained
// capability) implements apis.Responder, that implementation decides the
// (status, body) pair — a per-variant switch over the implementer's own
// error set is the expected shape. Otherwise the default applies: status
// 500, empty body.
//
// Respond itself never fails. A panicking Responder, or one returning a
// zero status, degrades to the default 500 response instead of propagating
// anything past the framework boundary.
func Respond(err error) apis.Response {
	if err == nil {
		return apis.InternalServerError()
	}

	r := responderOf(err)
	if r == nil {
		return apis.InternalServerError()
	}
	return respondGuarded(r)
}

// responderOf locates a Responder capability: the retained one on a
// canonical error, or any implementation in the unwrap chain.
func responderOf(err error) apis.Responder {
	if e, ok := err.(*Error); ok {
		if e == nil {
			return nil
		}
		return e.responder
	}
	var r apis.Responder
	if errors.As(err, &r) {
		return r
	}
	return nil
}

// respondGuarded invokes a custom Responder under a panic guard and
// sanity-checks the result. produce_response must not fail: anything that
// goes wrong collapses into the default mapping.
func respondGuarded(r apis.Responder) (resp apis.Response) {
	defer func() {
		if rec := recover(); rec != nil {
			resp = apis.InternalServerError()
		}
	}()
	resp = r.Respond()
	if resp.Status == 0 {
		resp = apis.InternalServerError()
	}
	return resp
}
