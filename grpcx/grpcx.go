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

// Package grpcx projects guard failures onto gRPC statuses.
//
// A failure becomes a status whose code comes from an apis.Mapper and whose
// details follow the google.rpc error model: an ErrorInfo carrying the
// guard code, reason and parameter, and a BadRequest field violation naming
// the failing value.
package grpcx

import (
	"context"
	"maps"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"dirpx.dev/dguard/adapter"
	"dirpx.dev/dguard/apis"
	"dirpx.dev/dguard/code"
)

// Domain is the ErrorInfo domain of guard failures.
const Domain = "dguard.dirpx.dev"

// Extras is optional request-scoped data attached to a status.
type Extras struct {
	// RequestID is sent as a google.rpc.RequestInfo detail.
	RequestID string
	// Links are sent as a google.rpc.Help detail.
	Links []*errdetails.Help_Link
	// Metadata is merged into the ErrorInfo metadata. Guard keys win.
	Metadata map[string]string
}

// MetaFn extracts Extras for a failed call. It may return the zero Extras.
type MetaFn func(ctx context.Context, err error) Extras

// Status converts err into a gRPC status using m (mapper.Default when nil).
// An error that already carries a gRPC status is returned unchanged.
func Status(m apis.Mapper, err error, ex Extras) *status.Status {
	if err == nil {
		return nil
	}
	if st, ok := status.FromError(err); ok {
		return st
	}

	res := adapter.Resolve(m, err)
	view := adapter.ToView(err)
	st := status.New(res.GRPC, view.Message)

	md := make(map[string]string, len(ex.Metadata)+3)
	maps.Copy(md, ex.Metadata)
	md["code"] = view.Code
	if view.Reason != "" {
		md["reason"] = view.Reason
	}
	if view.Param != "" {
		md["param"] = view.Param
	}
	for _, d := range view.Details {
		if d.Type == "actual" {
			md["actual"] = d.Info["value"]
		}
	}

	details := []protoadapt.MessageV1{&errdetails.ErrorInfo{
		Reason:   infoReason(view),
		Domain:   Domain,
		Metadata: md,
	}}
	if view.Param != "" {
		details = append(details, &errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{{
				Field:       view.Param,
				Description: view.Message,
			}},
		})
	}
	if ex.RequestID != "" {
		details = append(details, &errdetails.RequestInfo{RequestId: ex.RequestID})
	}
	if len(ex.Links) > 0 {
		details = append(details, &errdetails.Help{Links: ex.Links})
	}

	if with, derr := st.WithDetails(details...); derr == nil {
		return with
	}
	return st
}

// infoReason renders the guard reason (or the code when there is none) in
// the UPPER_SNAKE_CASE ErrorInfo expects: "number.greater" becomes
// "NUMBER_GREATER".
func infoReason(v apis.ErrorView) string {
	r := v.Reason
	if r == "" {
		r = v.Code
	}
	return strings.ToUpper(strings.ReplaceAll(r, ".", "_"))
}

// UnaryServerInterceptor converts handler errors into statuses with m. A
// panic whose value is an error, such as the one raised by a guard chain's
// Must, is recovered and converted the same way; any other panic is
// re-raised.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				perr, ok := r.(error)
				if !ok {
					panic(r)
				}
				resp, err = nil, convert(ctx, m, metaFn, perr)
			}
		}()
		resp, err = handler(ctx, req)
		if err != nil {
			return nil, convert(ctx, m, metaFn, err)
		}
		return resp, nil
	}
}

// StreamServerInterceptor is UnaryServerInterceptor for streaming calls.
func StreamServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer func() {
			if r := recover(); r != nil {
				perr, ok := r.(error)
				if !ok {
					panic(r)
				}
				err = convert(ss.Context(), m, metaFn, perr)
			}
		}()
		if err = handler(srv, ss); err != nil {
			return convert(ss.Context(), m, metaFn, err)
		}
		return nil
	}
}

func convert(ctx context.Context, m apis.Mapper, metaFn MetaFn, err error) error {
	var ex Extras
	if metaFn != nil {
		ex = metaFn(ctx, err)
	}
	return Status(m, err, ex).Err()
}

// Info returns the guard ErrorInfo carried by a gRPC error.
func Info(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok && ei.GetDomain() == Domain {
			return ei, true
		}
	}
	return nil, false
}

// Violations returns the field violations carried by a gRPC error.
func Violations(err error) []*errdetails.BadRequest_FieldViolation {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	var out []*errdetails.BadRequest_FieldViolation
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			out = append(out, br.GetFieldViolations()...)
		}
	}
	return out
}

// IsGuard reports whether err is a gRPC error produced from a guard
// failure, i.e. one whose ErrorInfo carries a code raised by guard checks.
func IsGuard(err error) bool {
	ei, ok := Info(err)
	if !ok {
		return false
	}
	c, perr := code.Parse(ei.GetMetadata()["code"])
	return perr == nil && code.Known(c)
}
