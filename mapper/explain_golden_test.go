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

package mapper

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dguard/code"
	"dirpx.dev/dguard/reason"
)

var update = flag.Bool("update", false, "update golden files")

// TestExplain_Golden keeps Explain output stable.
// Update with: go test ./mapper -run Explain_Golden -update
func TestExplain_Golden(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.InvalidArgument, "uri", 422),
		WithGRPCPrefix(code.InvalidArgument, "uri", codes.FailedPrecondition),
		WithHTTPOverride(code.NullArgument, 422),
		WithGRPCOverride(code.NullArgument, codes.InvalidArgument),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		c code.Code
		r reason.Reason
	}{
		{code.InvalidArgument, reason.URIParse},
		{code.NullArgument, reason.Empty},
		{code.OutOfRange, reason.NumberGreater},
	}
	parts := make([]string, 0, len(cases))
	for _, tc := range cases {
		parts = append(parts, m.Explain(tc.c, tc.r))
	}
	got := strings.Join(parts, "\n---\n") + "\n"

	goldenPath := filepath.Join("testdata", "explain.golden")
	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
			t.Fatalf("mkdir testdata: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		t.Logf("updated %s", goldenPath)
		return
	}

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v (run with -update to create)", err)
	}
	normalize := func(s string) string { return strings.TrimRight(s, "\r\n") }
	if normalize(string(want)) != normalize(got) {
		t.Fatalf("Explain() output mismatch.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}
