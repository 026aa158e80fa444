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

// cdiff compares two text files character by character.
//
// Usage:
//
//	cdiff [--color=auto|always|never] [--log-level=LEVEL] FILE1 FILE2
//
// Lines are compared at the same line numbers and characters at the same positions, nothing is
// realigned. Every differing line is printed twice, first from FILE1 and then from FILE2, with
// the differing characters highlighted.
//
// Colors can be controlled with CDIFF_COLOR or NO_COLOR, the log level with CDIFF_LOG_LEVEL.
package main

import (
	"os"

	"znkr.io/cdiff/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdout, os.Stderr))
}
