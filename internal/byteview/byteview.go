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

// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
package byteview

import (
	"strings"
	"unsafe"
)

type ByteView struct {
	data string
}

func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

// String returns the view as a string. For views created from a []byte, the string shares memory
// with the original slice.
func (v ByteView) String() string { return v.data }

// SplitLines splits the input into lines without their line terminator.
//
// Lines are terminated by '\n' and a '\r' directly before it is removed as well. The final line
// doesn't need a terminator, but a terminator at the very end doesn't start a new (empty) line.
// That is, "a\nb" and "a\nb\n" both consist of the lines "a" and "b" and the empty input has no
// lines at all.
func SplitLines(v ByteView) []ByteView {
	s := v.data
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	a := make([]ByteView, 0, n)
	for len(s) > 0 {
		line := s
		m := strings.IndexByte(s, '\n')
		if m < 0 {
			s = ""
		} else {
			line, s = s[:m], s[m+1:]
			line = strings.TrimSuffix(line, "\r")
		}
		a = append(a, ByteView{line})
	}
	return a
}
