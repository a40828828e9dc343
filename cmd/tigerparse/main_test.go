package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFile creates a Tiger source file in a temporary directory.
func writeFile(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	good := writeFile(t, "good.tig", `1 + 2`)
	bad := writeFile(t, "bad.tig", `(1 2 3)`)

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr []string // one entry per non-empty line, checked by prefix
	}{
		{"valid", []string{good}, 0, "", nil},
		{"dump", []string{"-dump", good}, 0, "(1 + 2)\n", nil},
		{"syntax errors", []string{bad}, 1, "", []string{
			bad + ":1:4: expected )",
			bad + ":1:4: trailing code after the main expression",
		}},
		{"max errors", []string{"-max-errors", "1", bad}, 1, "", []string{
			bad + ":1:4: expected )",
		}},
		{"dump skips failing files", []string{"-dump", bad, good}, 1, "(1 + 2)\n", []string{
			bad + ":1:4: expected )",
			bad + ":1:4: trailing code after the main expression",
		}},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.tig")}, 2, "", []string{
			"tigerparse: reading ",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.wantCode {
				t.Errorf("exit code: got %d, want %d (stderr %q)", code, tt.wantCode, stderr.String())
			}
			if stdout.String() != tt.wantStdout {
				t.Errorf("stdout: got %q, want %q", stdout.String(), tt.wantStdout)
			}
			lines := strings.Split(strings.TrimRight(stderr.String(), "\n"), "\n")
			if tt.wantStderr == nil {
				if stderr.Len() != 0 {
					t.Errorf("unexpected stderr %q", stderr.String())
				}
				return
			}
			if len(lines) != len(tt.wantStderr) {
				t.Fatalf("stderr: got %d line(s) %q, want %d", len(lines), stderr.String(), len(tt.wantStderr))
			}
			for i, want := range tt.wantStderr {
				if !strings.HasPrefix(lines[i], want) {
					t.Errorf("stderr line %d: got %q, want prefix %q", i, lines[i], want)
				}
			}
		})
	}
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Errorf("exit code: got %d, want 2", code)
	}
	if !strings.HasPrefix(stderr.String(), "Usage: tigerparse") || !strings.Contains(stderr.String(), "-max-errors") {
		t.Errorf("usage text: got %q", stderr.String())
	}
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-no-such-flag"}, &stdout, &stderr); code != 2 {
		t.Errorf("exit code: got %d, want 2", code)
	}
}
