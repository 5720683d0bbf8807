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

// Package grpcx renders canonical errors as gRPC statuses.
package grpcx

import (
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/werrors"
	"dirpx.dev/werrors/adapter"
	"dirpx.dev/werrors/apis"
)

// ToStatus converts an arbitrary failure into a gRPC status error.
//
// The error is canonicalized via werrors.From, the code is resolved through
// the mapper, and the flat descriptor travels in the status details as a
// google.protobuf.Struct so clients without our schema can still inspect it.
// A nil err returns nil.
func ToStatus(m apis.Mapper, err error) error {
	if err == nil {
		return nil
	}

	e := werrors.From(err)
	st := m.Status(e.Kind, e.Reason)
	base := gstatus.New(st.GRPC, e.Message)

	desc := adapter.ToDescriptor(e, st)
	if detail, derr := descriptorStruct(desc); derr == nil {
		if with, werr := base.WithDetails(detail); werr == nil {
			return with.Err()
		}
	}
	// details did not fit; the bare status still carries code and message
	return base.Err()
}

// Descriptor pulls the error descriptor back out of a gRPC error, if one was
// attached by ToStatus. Useful in clients and tests.
func Descriptor(err error) (apis.ErrorDescriptor, bool) {
	if err == nil {
		return apis.ErrorDescriptor{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return apis.ErrorDescriptor{}, false
	}
	for _, d := range st.Details() {
		s, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		return descriptorFromStruct(s), true
	}
	return apis.ErrorDescriptor{}, false
}

// descriptorStruct packs the descriptor into a Struct; WithDetails wraps it
// in an Any on the wire.
func descriptorStruct(d apis.ErrorDescriptor) (*structpb.Struct, error) {
	fields := map[string]any{
		"kind":        d.Kind,
		"http_status": d.HTTPStatus,
		"grpc_code":   d.GRPCCode,
	}
	if d.Reason != "" {
		fields["reason"] = d.Reason
	}
	if d.Message != "" {
		fields["message"] = d.Message
	}
	if d.TraceDepth > 0 {
		fields["trace_depth"] = d.TraceDepth
	}
	return structpb.NewStruct(fields)
}

// descriptorFromStruct is the inverse of descriptorStruct. Missing fields
// stay at their zero values; Struct numbers come back as float64.
func descriptorFromStruct(s *structpb.Struct) apis.ErrorDescriptor {
	m := s.AsMap()
	d := apis.ErrorDescriptor{}
	if v, ok := m["kind"].(string); ok {
		d.Kind = v
	}
	if v, ok := m["reason"].(string); ok {
		d.Reason = v
	}
	if v, ok := m["message"].(string); ok {
		d.Message = v
	}
	if v, ok := m["http_status"].(float64); ok {
		d.HTTPStatus = int(v)
	}
	if v, ok := m["grpc_code"].(float64); ok {
		d.GRPCCode = int(v)
	}
	if v, ok := m["trace_depth"].(float64); ok {
		d.TraceDepth = int(v)
	}
	return d
}
