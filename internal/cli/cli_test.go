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

package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"znkr.io/cdiff/internal/config"
)

func TestOperands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"none", nil, "cdiff: missing operand after 'cdiff'"},
		{"one", []string{"a"}, "cdiff: missing operand after 'a'"},
		{"two", []string{"a", "b"}, ""},
		{"three", []string{"a", "b", "c"}, "cdiff: extra operand 'c'"},
		{"four", []string{"a", "b", "c", "d"}, "cdiff: extra operand 'c'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Operands(nil, tt.args)
			if tt.want == "" {
				require.NoError(t, err)
				return
			}
			var cerr *Error
			require.ErrorAs(t, err, &cerr)
			require.EqualError(t, err, tt.want)
		})
	}
}

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	var logs bytes.Buffer
	logger := NewLogger(&logs, log.DebugLevel)

	t.Run("ok", func(t *testing.T) {
		path := writeFile(t, "ok", []byte("héllo\n"))
		got, err := ReadFile(logger, path)
		require.NoError(t, err)
		require.Equal(t, "héllo\n", got)
	})

	t.Run("missing", func(t *testing.T) {
		logs.Reset()
		path := filepath.Join(t.TempDir(), "missing")
		_, err := ReadFile(logger, path)
		require.EqualError(t, err, "cdiff: '"+path+"': no such file or directory")
		require.Contains(t, logs.String(), "reading file failed")
	})

	t.Run("directory", func(t *testing.T) {
		dir := t.TempDir()
		_, err := ReadFile(logger, dir)
		require.EqualError(t, err, "cdiff: '"+dir+"': no such file or directory")
	})

	t.Run("invalid-utf8", func(t *testing.T) {
		logs.Reset()
		path := writeFile(t, "binary", []byte{'a', 0xff, 0xfe, '\n'})
		_, err := ReadFile(logger, path)
		require.EqualError(t, err, "cdiff: '"+path+"': no such file or directory")
		require.Contains(t, logs.String(), "not valid UTF-8")
	})
}

func TestCommand(t *testing.T) {
	t.Setenv("CDIFF_COLOR", "")
	t.Setenv("CDIFF_LOG_LEVEL", "")

	x := writeFile(t, "x", []byte("aaaaa\n000aaa000\nbbbaaaCCC"))
	y := writeFile(t, "y", []byte("aaaaa\n000bbb000\naaaaaa"))
	missing := filepath.Join(t.TempDir(), "missing")
	report := "2: (<) 000aaa000\n" +
		"2: (>) 000bbb000\n" +
		"\n" +
		"3: (<) bbbaaaCCC\n" +
		"3: (>) aaaaaaempty line\n"

	tests := []struct {
		name       string
		args       []string
		env        map[string]string
		wantCode   int
		wantStdout string
	}{
		{
			name:       "report",
			args:       []string{"--color=never", x, y},
			wantStdout: report,
		},
		{
			name:       "identical",
			args:       []string{"--color=never", x, x},
			wantStdout: "",
		},
		{
			name:       "no-operands",
			args:       []string{},
			wantCode:   1,
			wantStdout: "cdiff: missing operand after 'cdiff'\n",
		},
		{
			name:       "one-operand",
			args:       []string{x},
			wantCode:   1,
			wantStdout: "cdiff: missing operand after '" + x + "'\n",
		},
		{
			name:       "extra-operand",
			args:       []string{x, y, "z"},
			wantCode:   1,
			wantStdout: "cdiff: extra operand 'z'\n",
		},
		{
			name:       "missing-first",
			args:       []string{missing, y},
			wantCode:   1,
			wantStdout: "cdiff: '" + missing + "': no such file or directory\n",
		},
		{
			name:       "missing-second",
			args:       []string{x, missing},
			wantCode:   1,
			wantStdout: "cdiff: '" + missing + "': no such file or directory\n",
		},
		{
			name:       "invalid-color",
			args:       []string{"--color=rainbow", x, y},
			wantCode:   1,
			wantStdout: "cdiff: reading color: invalid color mode \"rainbow\", want one of auto, always, never\n",
		},
		{
			name:       "color-from-env",
			args:       []string{x, y},
			env:        map[string]string{"CDIFF_COLOR": "never"},
			wantStdout: report,
		},
		{
			name:       "flag-wins-over-env",
			args:       []string{"--color=never", x, y},
			env:        map[string]string{"CDIFF_COLOR": "always"},
			wantStdout: report,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			var stdout, stderr bytes.Buffer
			code := Main(tt.args, &stdout, &stderr)
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantStdout, stdout.String())
			require.Empty(t, stderr.String())
		})
	}
}

func TestCommandColored(t *testing.T) {
	x := writeFile(t, "x", []byte("abc\n"))
	y := writeFile(t, "y", []byte("abd\n"))

	var stdout bytes.Buffer
	code := Main([]string{"--color=always", x, y}, &stdout, io.Discard)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "\x1b[")
	require.Equal(t, "1: (<) abc\n1: (>) abd\n", ansi.Strip(stdout.String()))
}

func TestCommandDebugLogging(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	y := writeFile(t, "y", []byte("abd\n"))

	var stdout, stderr bytes.Buffer
	code := Main([]string{"--log-level=debug", missing, y}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Equal(t, "cdiff: '"+missing+"': no such file or directory\n", stdout.String())
	require.Contains(t, stderr.String(), "reading file failed")
}

func TestNewRenderer(t *testing.T) {
	require.Panics(t, func() { NewRenderer(io.Discard, config.ColorMode(42)) })
}
