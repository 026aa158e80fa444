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

// Package textdiff provides functions to compare text line by line and, for lines that differ,
// character by character.
//
// Lines are compared by position: line N of x is compared with line N of y. Line terminators
// ("\n" or "\r\n") are not part of a line and a terminator at the end of the input doesn't start
// another line.
package textdiff

import (
	"strings"

	"znkr.io/cdiff"
	"znkr.io/cdiff/internal/byteview"
)

// LinePair describes a line that is different in x and y.
//
// At least one of X and Y is present. A line that only exists in one input has the other side
// unset.
type LinePair struct {
	LineNo     int    // Line number (one-based) in both inputs.
	X, Y       string // Line content without terminator.
	HasX, HasY bool   // Whether the line exists in x and y respectively.
}

// Line describes the character by character comparison of a line that is different in x and y.
type Line struct {
	LineNo int                // Line number (one-based) in both inputs.
	Chars  []cdiff.Unit[rune] // One unit for every character position up to the longer line.
}

// Lines compares the lines in x and y and returns the lines that are different.
//
// Line numbers are assigned before identical lines are dropped, i.e., they refer to the position
// of the line in the inputs. If x and y are identical, the output has length zero.
//
// The returned lines never share memory with []byte inputs.
func Lines[T string | []byte](x, y T) []LinePair {
	xlines := byteview.SplitLines(byteview.From(x))
	ylines := byteview.SplitLines(byteview.From(y))

	str := byteview.ByteView.String
	if _, ok := any(x).([]byte); ok {
		str = func(v byteview.ByteView) string { return strings.Clone(v.String()) }
	}

	var out []LinePair
	for i, u := range cdiff.Align(xlines, ylines) {
		if u.Op == cdiff.Same {
			continue
		}
		xl, hasX := u.Left()
		yl, hasY := u.Right()
		out = append(out, LinePair{
			LineNo: i + 1,
			X:      str(xl),
			Y:      str(yl),
			HasX:   hasX,
			HasY:   hasY,
		})
	}
	return out
}

// Chars compares the characters (runes) of a line pair.
//
// The output has one unit for every character position up to the length of the longer line. If a
// side is missing, all characters of the other side are reported as [cdiff.LeftOnly] or
// [cdiff.RightOnly]. The comparison is exact, no normalization of case or whitespace is applied.
//
// Chars panics if neither side of p is present.
func Chars(p LinePair) []cdiff.Unit[rune] {
	if !p.HasX && !p.HasY {
		panic("textdiff: line pair has neither side, identical lines must be removed before")
	}
	var x, y []rune
	if p.HasX {
		x = []rune(p.X)
	}
	if p.HasY {
		y = []rune(p.Y)
	}
	return cdiff.Align(x, y)
}

// Compare compares x and y line by line and returns a character by character comparison of every
// line that is different.
//
// If x and y are identical, the output has length zero.
func Compare[T string | []byte](x, y T) []Line {
	pairs := Lines(x, y)
	if len(pairs) == 0 {
		return nil
	}
	out := make([]Line, len(pairs))
	for i, p := range pairs {
		out[i] = Line{
			LineNo: p.LineNo,
			Chars:  Chars(p),
		}
	}
	return out
}
