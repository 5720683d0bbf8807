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

import "net/http"

// Response is the transport artifact produced from a canonical error: a
// status code plus an optional body. It is created on demand and handed to
// the HTTP layer; nothing retains it afterwards.
type Response struct {
	// Status is the HTTP status code. Always non-zero in a well-formed
	// Response; the default produced for unclassified failures is 500.
	Status int

	// Body is the optional response payload. nil/empty means "status only",
	// which is the default for unclassified failures.
	Body []byte

	// ContentType describes Body when it is non-empty. Empty otherwise.
	ContentType string
}

// InternalServerError is the default Response for failures that carry no
// response-producing capability of their own: status 500, empty body.
func InternalServerError() Response {
	return Response{Status: http.StatusInternalServerError}
}

// Responder is the "can produce an HTTP response" capability.
//
// Any error may implement it to take full control of the (status, body) pair
// it is rendered as — including a per-variant switch over the implementer's
// own error set. Errors that do not implement it fall back to
// InternalServerError at the conversion boundary.
//
// Respond must not block and must not fail; the boundary guards against
// panics and substitutes the default response, so a buggy implementation
// degrades to a 500 rather than taking the request down.
type Responder interface {
	error

	// Respond returns the HTTP response this error wants to be rendered as.
	Respond() Response
}
