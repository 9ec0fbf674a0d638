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

// Package adapter turns errors returned by guard chains into the portable
// shapes of package apis.
//
// Any error is accepted. Errors implementing apis.CodedError keep their
// code, reason, parameter and details; every other error (for instance one
// produced by a Factory customization) is classified as code.Internal and
// its text is not exposed in views.
package adapter

import (
	"errors"

	"dirpx.dev/dguard"
	"dirpx.dev/dguard/apis"
	"dirpx.dev/dguard/code"
	"dirpx.dev/dguard/mapper"
	"dirpx.dev/dguard/reason"
)

// InternalMessage replaces the text of unclassified errors in views.
const InternalMessage = "internal error"

// Classify returns the code and reason carried by err. An error without a
// canonical code is code.Internal; a non-canonical reason is dropped.
func Classify(err error) (code.Code, reason.Reason) {
	var ce apis.CodedError
	if !errors.As(err, &ce) {
		return code.Internal, reason.Empty
	}
	c, perr := code.Parse(ce.ErrorCode())
	if perr != nil || c == code.Empty {
		return code.Internal, reason.Empty
	}
	var re apis.ReasonedError
	if !errors.As(err, &re) {
		return c, reason.Empty
	}
	r, perr := reason.Parse(re.ErrorReason())
	if perr != nil {
		return c, reason.Empty
	}
	return c, r
}

// Resolve maps err to transport statuses with m, or mapper.Default when m
// is nil.
func Resolve(m apis.Mapper, err error) apis.Status {
	if m == nil {
		m = mapper.Default()
	}
	c, r := Classify(err)
	return m.Status(c, r)
}

// ToView converts err into a public ErrorView. A nil err yields the zero
// view. Details are copied as reported by apis.DetailedError, without
// redaction.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	c, r := Classify(err)
	v := apis.ErrorView{Code: string(c), Reason: string(r)}
	if c == code.Internal {
		v.Message = InternalMessage
		return v
	}
	v.Param = param(err)
	v.Message = message(err)
	var de apis.DetailedError
	if errors.As(err, &de) {
		if ds := de.ErrorDetails(); len(ds) > 0 {
			v.Details = ds
		}
	}
	return v
}

// ToDescriptor flattens err and its resolved statuses for logs and message
// buses. Unlike ToView it always carries the error text.
func ToDescriptor(err error, st apis.Status) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	c, r := Classify(err)
	d := apis.ErrorDescriptor{
		Code:       string(c),
		Reason:     string(r),
		Param:      param(err),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    message(err),
	}
	if c == code.Internal {
		d.Message = err.Error()
	}
	return d
}

func param(err error) string {
	var pe apis.ParamError
	if errors.As(err, &pe) {
		return pe.ErrorParam()
	}
	return ""
}

// message prefers the bare guard message over Error(), which appends the
// parameter.
func message(err error) string {
	var ge *dguard.Error
	if errors.As(err, &ge) {
		return ge.Message
	}
	return err.Error()
}
