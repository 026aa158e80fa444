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

// Package render turns the character by character comparison of text into a sequence of classified
// display units.
//
// Every differing line is rendered twice, first as it appears in x and then as it appears in y:
//
//	2: (<) 000aaa000
//	2: (>) 000bbb000
//
// Consecutive lines are separated by an empty line. Each display unit has a [Kind] which decides
// how it's presented, e.g., the package [znkr.io/cdiff/color] maps kinds to terminal colors.
//
// [znkr.io/cdiff/color]: https://pkg.go.dev/znkr.io/cdiff/color
package render

import (
	"strconv"
	"strings"

	"znkr.io/cdiff"
	"znkr.io/cdiff/textdiff"
)

// Kind classifies a display unit.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Structural     Kind = iota // Punctuation of the line prefix and the placeholder text
	LineNumber                 // Digit of a line number
	Same                       // Character that is shown without highlighting
	HookLeft                   // Marker for lines from x
	HookRight                  // Marker for lines from y
	DifferentLeft              // Character of x that differs from y at the same position
	DifferentRight             // Character of y that differs from x at the same position
	Space                      // Separator space of the line prefix
	Newline                    // Line break
	Blank                      // Zero width unit
)

// Placeholder is shown once per line in place of characters that are missing on one side.
const Placeholder = "empty line"

const (
	hookLeft  = '<'
	hookRight = '>'
)

// Unit is a single display unit.
type Unit struct {
	Kind Kind
	Char rune // Unset for Space, Newline and Blank.
}

// Text returns the text presented for u.
func (u Unit) Text() string {
	switch u.Kind {
	case Structural, LineNumber, Same, HookLeft, HookRight, DifferentLeft, DifferentRight:
		return string(u.Char)
	case Space:
		return " "
	case Newline:
		return "\n"
	case Blank:
		return ""
	default:
		panic("never reached")
	}
}

// Column describes the display units of one position in both renderings of a line.
//
// The number of units per side can be different. For example, the placeholder for missing
// characters is rendered in one column and has ten units on one side and none on the other.
type Column struct {
	Left, Right []Unit
}

// Line renders the character by character comparison of the line with number lineNo.
//
// The output starts with one column per unit of the line prefix, followed by one column for every
// element in chars and ends with two columns that terminate the line and separate it from the
// next line.
//
// Line panics if lineNo is not positive.
func Line(lineNo int, chars []cdiff.Unit[rune]) []Column {
	if lineNo < 1 {
		panic("render: line number must be positive, got " + strconv.Itoa(lineNo))
	}

	left, right := prefix(lineNo, hookLeft, HookLeft), prefix(lineNo, hookRight, HookRight)
	out := make([]Column, 0, len(left)+len(chars)+2)
	for i := range left {
		out = append(out, Column{
			Left:  []Unit{left[i]},
			Right: []Unit{right[i]},
		})
	}

	placeholderShown := false // shared by both sides of this line
	placeholder := func() []Unit {
		if placeholderShown {
			return nil
		}
		placeholderShown = true
		return placeholderUnits()
	}

	for _, c := range chars {
		switch c.Op {
		case cdiff.Same:
			out = append(out, Column{
				Left:  []Unit{{Same, c.X}},
				Right: []Unit{{Same, c.Y}},
			})
		case cdiff.LeftOnly:
			out = append(out, Column{
				Left:  []Unit{{Same, c.X}},
				Right: placeholder(),
			})
		case cdiff.RightOnly:
			out = append(out, Column{
				Left:  placeholder(),
				Right: []Unit{{Same, c.Y}},
			})
		case cdiff.Different:
			out = append(out, Column{
				Left:  []Unit{{DifferentLeft, c.X}},
				Right: []Unit{{DifferentRight, c.Y}},
			})
		default:
			panic("never reached")
		}
	}

	// The right rendering is printed after the left one, its second newline separates this line
	// from the next one.
	out = append(out,
		Column{Left: []Unit{{Kind: Newline}}, Right: []Unit{{Kind: Newline}}},
		Column{Left: []Unit{{Kind: Blank}}, Right: []Unit{{Kind: Newline}}},
	)
	return out
}

// prefix returns the units of the line prefix, e.g., "12: (<) ".
func prefix(lineNo int, hook rune, kind Kind) []Unit {
	digits := strconv.Itoa(lineNo)
	out := make([]Unit, 0, len(digits)+6)
	for _, d := range digits {
		out = append(out, Unit{LineNumber, d})
	}
	return append(out,
		Unit{Structural, ':'},
		Unit{Kind: Space},
		Unit{Structural, '('},
		Unit{kind, hook},
		Unit{Structural, ')'},
		Unit{Kind: Space},
	)
}

func placeholderUnits() []Unit {
	out := make([]Unit, 0, len(Placeholder))
	for _, r := range Placeholder {
		out = append(out, Unit{Structural, r})
	}
	return out
}

// Split returns the left and the right rendering of columns.
func Split(columns []Column) (left, right []Unit) {
	for _, c := range columns {
		left = append(left, c.Left...)
		right = append(right, c.Right...)
	}
	return left, right
}

// Stack renders lines such that for every line, the rendering of x is directly followed by the
// rendering of y.
//
// The output ends with the line break of the last line, but without an additional empty line,
// i.e., a non-empty result has exactly one trailing [Newline] unit. If lines is empty, the output
// has length zero.
func Stack(lines []textdiff.Line) []Unit {
	var out []Unit
	for _, l := range lines {
		left, right := Split(Line(l.LineNo, l.Chars))
		out = append(out, left...)
		out = append(out, right...)
	}
	if n := len(out); n > 0 && out[n-1].Kind == Newline {
		out = out[:n-1]
	}
	return out
}

// String returns the text of units without any styling.
func String(units []Unit) string {
	var sb strings.Builder
	for _, u := range units {
		sb.WriteString(u.Text())
	}
	return sb.String()
}
