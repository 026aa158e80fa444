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

package cdiff

// Op describes how the elements at one position compare.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Same      Op = iota // Both slices have an element and they are equal
	Different           // Both slices have an element and they differ
	LeftOnly            // Only the left slice has an element at this position
	RightOnly           // Only the right slice has an element at this position
)

// Unit describes the comparison of a single position.
//
//   - For Same, both X and Y contain the (equal) element.
//   - For Different, X contains the left and Y the right element.
//   - For LeftOnly, X contains the element and Y is unset (zero value).
//   - For RightOnly, Y contains the element and X is unset (zero value).
//
// There is no Op for a position where both elements are missing.
type Unit[T any] struct {
	Op   Op
	X, Y T
}

// Left returns the left element and whether it is present.
func (u Unit[T]) Left() (T, bool) {
	return u.X, u.Op != RightOnly
}

// Right returns the right element and whether it is present.
func (u Unit[T]) Right() (T, bool) {
	return u.Y, u.Op != LeftOnly
}

// Align compares x and y position by position.
//
// The output has one unit for every position up to the length of the longer input. If both inputs
// are empty, the output has length zero.
func Align[T comparable](x, y []T) []Unit[T] {
	return AlignFunc(x, y, func(a, b T) bool { return a == b })
}

// AlignFunc compares x and y position by position using the provided equality comparison.
//
// The output has one unit for every position up to the length of the longer input. If both inputs
// are empty, the output has length zero.
func AlignFunc[T any](x, y []T, eq func(a, b T) bool) []Unit[T] {
	n := max(len(x), len(y))
	if n == 0 {
		return nil
	}

	out := make([]Unit[T], n)
	for i := range n {
		switch {
		case i < len(x) && i < len(y):
			op := Different
			if eq(x[i], y[i]) {
				op = Same
			}
			out[i] = Unit[T]{Op: op, X: x[i], Y: y[i]}
		case i < len(x):
			out[i] = Unit[T]{Op: LeftOnly, X: x[i]}
		default:
			out[i] = Unit[T]{Op: RightOnly, Y: y[i]}
		}
	}
	return out
}
