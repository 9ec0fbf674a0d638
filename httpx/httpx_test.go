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

package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dguard"
	"dirpx.dev/dguard/code"
	"dirpx.dev/dguard/grpcx"
	"dirpx.dev/dguard/mapper"
)

type body struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details []struct {
		Type     string            `json:"@type"`
		Reason   string            `json:"reason"`
		Domain   string            `json:"domain"`
		Metadata map[string]string `json:"metadata"`
	} `json:"details"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) body {
	t.Helper()
	var b body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b), rec.Body.String())
	return b
}

func quietWriter() Writer {
	return Writer{Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))}
}

func pageSize(r *http.Request) (int, error) {
	n, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil {
		return 0, dguard.String(r.URL.Query().Get("size"), "size").IfNotMatches(`^\d+$`).Err()
	}
	return dguard.Number(n, "size").IfLessThan(1).IfGreaterThan(100).Result()
}

func TestWriter_Handle(t *testing.T) {
	w := quietWriter()
	h := w.Handle(func(rw http.ResponseWriter, r *http.Request) error {
		n, err := pageSize(r)
		if err != nil {
			return err
		}
		_, _ = rw.Write([]byte(strconv.Itoa(n)))
		return nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?size=10", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "10", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?size=500", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	b := decode(t, rec)
	assert.Equal(t, 11, b.Code) // codes.OutOfRange
	assert.Equal(t, "Value should not be greater than 100.", b.Message)
	require.NotEmpty(t, b.Details)
	assert.Equal(t, "type.googleapis.com/google.rpc.ErrorInfo", b.Details[0].Type)
	assert.Equal(t, "NUMBER_GREATER", b.Details[0].Reason)
	assert.Equal(t, grpcx.Domain, b.Details[0].Domain)
	assert.Equal(t, "500", b.Details[0].Metadata["actual"])
	assert.Equal(t, "size", b.Details[0].Metadata["param"])
}

func TestWriter_MapperAndMeta(t *testing.T) {
	m, err := mapper.New(mapper.WithHTTPOverride(code.InvalidArgument, http.StatusUnprocessableEntity))
	require.NoError(t, err)
	w := quietWriter()
	w.Mapper = m
	w.Meta = func(r *http.Request) grpcx.Extras {
		return grpcx.Extras{Metadata: map[string]string{"path": r.URL.Path}}
	}

	rec := httptest.NewRecorder()
	w.Write(rec, httptest.NewRequest(http.MethodPost, "/users", nil), dguard.String("", "email").IfEmpty().Err())

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	b := decode(t, rec)
	assert.Equal(t, "/users", b.Details[0].Metadata["path"])
	assert.Equal(t, "string.empty", b.Details[0].Metadata["reason"])
}

func TestWriter_InternalError(t *testing.T) {
	var logs bytes.Buffer
	w := Writer{Logger: slog.New(slog.NewJSONHandler(&logs, nil))}

	rec := httptest.NewRecorder()
	w.Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("password=hunter2"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter2")
	assert.Equal(t, "internal error", decode(t, rec).Message)
	assert.Contains(t, logs.String(), `"level":"ERROR"`)
	assert.Contains(t, logs.String(), "hunter2")
}

func TestWriter_NilError(t *testing.T) {
	rec := httptest.NewRecorder()
	quietWriter().Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(quietWriter())(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		id := dguard.ParseURL(r.URL.Query().Get("callback"), "callback").IfNotHttps().Must()
		_, _ = rw.Write([]byte(id.Host))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?callback=https://example.com/cb", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "example.com", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?callback=http://example.com/cb", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Uri scheme should be https.", decode(t, rec).Message)

	bad := Recoverer(quietWriter())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))
	assert.PanicsWithValue(t, "boom", func() {
		bad.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRecoverer_AbortHandler(t *testing.T) {
	var logs bytes.Buffer
	w := Writer{Logger: slog.New(slog.NewTextHandler(&logs, nil))}
	h := Recoverer(w)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	rec := httptest.NewRecorder()
	assert.PanicsWithError(t, http.ErrAbortHandler.Error(), func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Zero(t, rec.Body.Len())
	assert.Empty(t, logs.String())

	wrapped := Recoverer(w)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(fmt.Errorf("stream: %w", http.ErrAbortHandler))
	}))
	assert.Panics(t, func() {
		wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestWriter_LogsReasonFamily(t *testing.T) {
	var logs bytes.Buffer
	w := Writer{Logger: slog.New(slog.NewJSONHandler(&logs, nil))}

	w.Write(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil),
		dguard.String("abcdef", "code").IfLongerThan(3).Err())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "string.length.longer", rec["reason"])
	assert.Equal(t, "string", rec["family"])
	assert.Equal(t, "code", rec["param"])
	assert.EqualValues(t, http.StatusBadRequest, rec["http_status"])
}
