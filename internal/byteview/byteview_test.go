// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package byteview

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestFromString(t *testing.T) {
	str := "my string"

	got := From(str)
	if unsafe.StringData(got.data) != unsafe.StringData(str) {
		t.Errorf("From(str) points to different memory")
	}
	if len(got.String()) != len(str) {
		t.Errorf("len(got.String()) = %v, want %v", len(got.String()), len(str))
	}

	t.Run("allocs", func(t *testing.T) {
		allocs := testing.AllocsPerRun(10, func() {
			_ = From(str)
		})
		if allocs > 0 {
			t.Errorf("From[string](...) allocated %v times, want 0", allocs)
		}
	})
}

func TestFromBytes(t *testing.T) {
	bytes := []byte("my byte slice")

	got := From(bytes)
	if unsafe.StringData(got.data) != unsafe.SliceData(bytes) {
		t.Errorf("From(bytes) points to different memory")
	}
	if len(got.String()) != len(bytes) {
		t.Errorf("len(got.String()) = %v, want %v", len(got.String()), len(bytes))
	}

	t.Run("allocs", func(t *testing.T) {
		allocs := testing.AllocsPerRun(10, func() {
			_ = From(bytes)
		})
		if allocs > 0 {
			t.Errorf("From[[]byte](...) allocated %v times, want 0", allocs)
		}
	})
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
		{
			name:  "newline-only",
			input: "\n",
			want:  []string{""},
		},
		{
			name:  "missing-newline",
			input: "foo\nbar",
			want:  []string{"foo", "bar"},
		},
		{
			name:  "missing-newline-in-first-line",
			input: "foo",
			want:  []string{"foo"},
		},
		{
			name:  "no-missing-newline",
			input: "foo\nbar\nbaz\n",
			want:  []string{"foo", "bar", "baz"},
		},
		{
			name:  "empty-lines",
			input: "\n\nfoo\n\n",
			want:  []string{"", "", "foo", ""},
		},
		{
			name:  "crlf",
			input: "foo\r\nbar\r\n",
			want:  []string{"foo", "bar"},
		},
		{
			name:  "lone-cr-is-kept",
			input: "foo\rbar\r",
			want:  []string{"foo\rbar\r"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]string, 0)
			for _, line := range SplitLines(From(tt.input)) {
				got = append(got, line.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitLines(...) result difference [-want, +got]:\n%s", diff)
			}
		})
	}
}
