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

// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF.
//
// git invokes it with seven arguments for every changed file:
//
//	path old-file old-hex old-mode new-file new-hex new-mode
//
// For example, to show the changes of the last commit character by character:
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff HEAD~1
//
// Files that are added or removed are compared against an empty file.
package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"znkr.io/cdiff/internal/cli"
	"znkr.io/cdiff/internal/config"
	"znkr.io/cdiff/textdiff"
)

func main() {
	logger := cli.NewLogger(os.Stderr, config.Default.LogLevel)
	if err := run(os.Stdout, logger, os.Args); err != nil {
		logger.Error("comparing files failed", "err", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *log.Logger, args []string) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	v := config.NewViper()
	opts, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg := config.FromOptions(opts, config.Color|config.LogLevel)
	logger.SetLevel(cfg.LogLevel)

	path, oldFile, oldHex, newFile, newHex, newMode := args[1], args[2], args[3], args[5], args[6], args[7]
	logger.Debug("comparing blobs", "path", path, "old", oldHex, "new", newHex)

	old, err := readBlob(logger, oldFile)
	if err != nil {
		return err
	}
	new, err := readBlob(logger, newFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "cdiff a/%s b/%s\n", path, path)
	fmt.Fprintf(w, "index %s..%s %s\n", short(oldHex), short(newHex), newMode)
	if !utf8.Valid(old) || !utf8.Valid(new) {
		logger.Debug("skipping binary blob", "path", path)
		fmt.Fprintf(w, "Binary files %s and %s differ\n", side("a", path, oldFile), side("b", path, newFile))
		return nil
	}
	return cli.Write(w, cli.NewRenderer(w, cfg.Color), textdiff.Compare(old, new))
}

// readBlob reads one side of the comparison, git passes /dev/null for a missing side.
func readBlob(logger *log.Logger, name string) ([]byte, error) {
	if name == devNull {
		return nil, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading blob: %v", err)
	}
	logger.Debug("read blob", "file", name, "bytes", len(data))
	return data, nil
}

const devNull = "/dev/null"

// side returns the name git uses for one side of a comparison.
func side(prefix, path, name string) string {
	if name == devNull {
		return devNull
	}
	return prefix + "/" + path
}

// short abbreviates an object id, git passes "." for a missing side.
func short(hex string) string {
	switch {
	case hex == ".":
		return "0000000000"
	case len(hex) > 10:
		return hex[:10]
	default:
		return hex
	}
}
