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

// Package httpx writes guard failures as HTTP responses.
//
// The body is the protojson rendering of the google.rpc.Status built by
// package grpcx, the shape gRPC-gateway style APIs return; the HTTP status
// line comes from the mapper.
package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/dguard/adapter"
	"dirpx.dev/dguard/apis"
	"dirpx.dev/dguard/code"
	"dirpx.dev/dguard/grpcx"
	"dirpx.dev/dguard/reason"
)

// Writer turns errors into HTTP responses.
type Writer struct {
	// Mapper resolves statuses; mapper.Default when nil.
	Mapper apis.Mapper
	// Logger receives one record per written error; slog.Default when nil.
	Logger *slog.Logger
	// Meta supplies request-scoped extras such as a request ID. Optional.
	Meta func(r *http.Request) grpcx.Extras
}

var marshal = protojson.MarshalOptions{UseProtoNames: false, EmitUnpopulated: false}

// Write writes err to rw. A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	var ex grpcx.Extras
	if w.Meta != nil {
		ex = w.Meta(r)
	}

	res := adapter.Resolve(w.Mapper, err)
	st := grpcx.Status(w.Mapper, err, ex)
	w.log(r.Context(), err, res)

	body, merr := marshal.Marshal(st.Proto())
	if merr != nil {
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set("X-Content-Type-Options", "nosniff")
	rw.WriteHeader(res.HTTP)
	_, _ = rw.Write(body)
}

func (w Writer) log(ctx context.Context, err error, res apis.Status) {
	l := w.Logger
	if l == nil {
		l = slog.Default()
	}
	d := adapter.ToDescriptor(err, res)
	level := slog.LevelInfo
	if d.Code == string(code.Internal) {
		level = slog.LevelError
	}
	l.LogAttrs(ctx, level, "request rejected",
		slog.String("code", d.Code),
		slog.String("reason", d.Reason),
		slog.String("family", reason.Reason(d.Reason).Family()),
		slog.String("param", d.Param),
		slog.Int("http_status", d.HTTPStatus),
		slog.Any("error", err),
	)
}

// Recoverer returns middleware that writes panics carrying an error, such
// as those raised by a guard chain's Must, through w. Other panics, and
// http.ErrAbortHandler, are re-raised.
func Recoverer(w Writer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					err, ok := v.(error)
					if !ok || errors.Is(err, http.ErrAbortHandler) {
						panic(v)
					}
					w.Write(rw, r, err)
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(rw http.ResponseWriter, r *http.Request) error

// Handle adapts h, writing its error through w.
func (w Writer) Handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.Write(rw, r, err)
		}
	})
}
