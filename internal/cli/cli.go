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

// Package cli implements the cdiff command.
//
// All errors a user can cause are reported as [*Error] values. Only [Main] turns them into
// output and an exit code.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"znkr.io/cdiff/color"
	"znkr.io/cdiff/internal/config"
	"znkr.io/cdiff/render"
	"znkr.io/cdiff/textdiff"
)

// Name is the name of the command.
const Name = "cdiff"

// Error is an error caused by the invocation of the command.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return Name + ": " + e.Reason }

// Operands checks that args are exactly two operands.
func Operands(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return &Error{Reason: "missing operand after '" + Name + "'"}
	case 1:
		return &Error{Reason: "missing operand after '" + args[0] + "'"}
	case 2:
		return nil
	default:
		return &Error{Reason: "extra operand '" + args[2] + "'"}
	}
}

// ReadFile reads the UTF-8 encoded file at path.
//
// All failures are reported as the path not existing, the cause is logged at debug level.
func ReadFile(logger *log.Logger, path string) (string, error) {
	notFound := &Error{Reason: "'" + path + "': no such file or directory"}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("reading file failed", "path", path, "err", err)
		return "", notFound
	}
	if !utf8.Valid(data) {
		logger.Debug("file is not valid UTF-8", "path", path)
		return "", notFound
	}
	logger.Debug("read file", "path", path, "bytes", len(data))
	return string(data), nil
}

// NewLogger returns the logger used by the commands in this module.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: Name,
	})
}

// NewRenderer returns a renderer for w that colors according to mode.
func NewRenderer(w io.Writer, mode config.ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAuto:
		// Detected from w and the environment.
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		panic("never reached")
	}
	return r
}

// Run compares the files at xpath and ypath and writes the report to w.
func Run(w io.Writer, logger *log.Logger, r *lipgloss.Renderer, xpath, ypath string) error {
	x, err := ReadFile(logger, xpath)
	if err != nil {
		return err
	}
	y, err := ReadFile(logger, ypath)
	if err != nil {
		return err
	}
	lines := textdiff.Compare(x, y)
	logger.Debug("compared files", "differing_lines", len(lines))
	return Write(w, r, lines)
}

// Write writes the report for lines to w.
func Write(w io.Writer, r *lipgloss.Renderer, lines []textdiff.Line) error {
	if err := color.NewPrinter(w, r).Print(render.Stack(lines)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// NewCommand creates the cdiff command writing the report to stdout and log messages to stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	v := config.NewViper()
	cmd := &cobra.Command{
		Use:   Name + " FILE1 FILE2",
		Short: "Compare two files character by character",
		Long: `cdiff compares two text files line by line and, within each line, character by
character at the same positions. Every differing line is printed twice, as it appears
in FILE1 and as it appears in FILE2, with the differing characters highlighted.`,
		Args:          Operands,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.Load(v)
			if err != nil {
				return &Error{Reason: err.Error()}
			}
			cfg := config.FromOptions(opts, config.Color|config.LogLevel)
			logger := NewLogger(stderr, cfg.LogLevel)
			logger.Debug("comparing files", "x", args[0], "y", args[1], "color", cfg.Color)
			return Run(stdout, logger, NewRenderer(stdout, cfg.Color), args[0], args[1])
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.String(config.KeyColor, config.Default.Color.String(), "when to color the output: auto, always or never")
	flags.String(config.KeyLogLevel, config.Default.LogLevel.String(), "minimum level of log messages: debug, info, warn or error")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	return cmd
}

// Main runs the cdiff command with args and returns the exit code. Errors are printed to stdout.
func Main(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{} // cobra falls back to os.Args for nil
	}
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		var cerr *Error
		if !errors.As(err, &cerr) {
			cerr = &Error{Reason: err.Error()}
		}
		fmt.Fprintln(stdout, cerr)
		return 1
	}
	return 0
}
