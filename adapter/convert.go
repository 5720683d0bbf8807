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

// Package adapter projects canonical errors into the portable shapes that
// transports and log sinks consume.
package adapter

import (
	"dirpx.dev/werrors"
	"dirpx.dev/werrors/apis"
)

// ToDescriptor flattens a canonical error and its resolved transport status
// into an ErrorDescriptor for structured logging or status details.
//
// The descriptor records how deep the carried backtrace is but never the
// frames themselves; frames stay inside the process.
func ToDescriptor(e *werrors.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Kind:       e.Kind.String(),
		Reason:     e.Reason.String(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message,
		TraceDepth: e.Backtrace().Depth(),
	}
}

// ToView extracts the disclosable subset of a canonical error.
//
// No redaction happens here: the view exposes exactly what the error carries.
// Filtering sensitive detail keys is the API layer's decision. The details
// map is copied so the view cannot alias the error's internal state.
func ToView(e *werrors.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Kind:    e.Kind.String(),
		Reason:  e.Reason.String(),
		Message: e.Message,
	}
	if len(e.Details) > 0 {
		ds := make(map[string]any, len(e.Details))
		for k, val := range e.Details {
			ds[k] = val
		}
		v.Details = ds
	}
	return v
}
