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

// Package httpx renders canonical errors as HTTP responses.
package httpx

import (
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/werrors"
	"dirpx.dev/werrors/adapter"
	"dirpx.dev/werrors/apis"
)

// ErrorReporter receives every error the writer renders, before the response
// goes out. *logx.Reporter satisfies it.
type ErrorReporter interface {
	Report(e *werrors.Error)
}

// Writer turns an arbitrary failure into an HTTP response.
//
// Conversion happens here, at the boundary: the error is canonicalized via
// werrors.From (classification, backtrace policy), reported once, and then
// rendered. An error that carries its own Responder capability decides the
// (status, body) pair itself; everything else goes through the Mapper and
// the JSON error view.
type Writer struct {
	// Mapper resolves the HTTP status for canonical errors. nil means
	// "500 for everything".
	Mapper apis.Mapper

	// Reporter logs each rendered error. nil disables reporting.
	Reporter ErrorReporter
}

// Write renders err to rw. A nil err writes nothing.
//
// Internal-kind errors are rendered as a bare status with no body: an
// unclassified failure discloses nothing about itself. Every other kind gets
// an application/json body with the error view.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	e := werrors.From(err)
	if w.Reporter != nil {
		w.Reporter.Report(e)
	}

	if e.Responder() != nil {
		writeResponse(rw, werrors.Respond(e))
		return
	}

	status := http.StatusInternalServerError
	if w.Mapper != nil {
		status = w.Mapper.HTTPStatus(e.Kind, e.Reason)
	}

	if e.Kind == "" || e.Kind == kindInternal {
		rw.WriteHeader(status)
		return
	}

	body := marshalView(e)
	if body == nil {
		rw.WriteHeader(status)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(body)
}

const kindInternal = "internal"

// writeResponse plays out a Responder-produced response verbatim.
func writeResponse(rw http.ResponseWriter, resp apis.Response) {
	if resp.ContentType != "" {
		rw.Header().Set("Content-Type", resp.ContentType)
	}
	rw.WriteHeader(resp.Status)
	if len(resp.Body) > 0 {
		_, _ = rw.Write(resp.Body)
	}
}

// marshalView serializes the disclosed view through protobuf JSON so nested
// detail values and field names render the same way as in gRPC status
// details. Returns nil when the details are not representable; the caller
// degrades to a body-less response.
func marshalView(e *werrors.Error) []byte {
	v := adapter.ToView(e)

	fields := map[string]any{
		"kind":    v.Kind,
		"message": v.Message,
	}
	if v.Reason != "" {
		fields["reason"] = v.Reason
	}
	if len(v.Details) > 0 {
		fields["details"] = v.Details
	}

	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil
	}
	b, err := protojson.Marshal(st)
	if err != nil {
		return nil
	}
	return b
}
