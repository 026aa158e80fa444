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

// Package cdiff provides functions to compare two slices position by position.
//
// Unlike a classic diff, the comparison never searches for insertions or deletions: element i of
// x is always paired with element i of y and the shorter input is padded with missing elements.
// This makes the comparison O(N) in time and space, but a single inserted element shifts every
// following element out of alignment.
//
// The main functions are [Align], for comparable types, and [AlignFunc], which uses a custom
// equality comparison.
//
// Note: For a line-by-line and character-by-character comparison of text, please see
// [znkr.io/cdiff/textdiff]. A colored report of that comparison can be produced with the
// [znkr.io/cdiff/render] and [znkr.io/cdiff/color] packages.
//
// [znkr.io/cdiff/textdiff]: https://pkg.go.dev/znkr.io/cdiff/textdiff
// [znkr.io/cdiff/render]: https://pkg.go.dev/znkr.io/cdiff/render
// [znkr.io/cdiff/color]: https://pkg.go.dev/znkr.io/cdiff/color
package cdiff
