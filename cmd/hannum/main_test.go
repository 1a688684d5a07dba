package main

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/encoding/korean"
)

func TestRunArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-only", "korean", "오천만", "12345"}, strings.NewReader(""), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}
	if got, want := stdout.String(), "5000 만\n1 만 2345\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestRunAllFields(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"12345"}, strings.NewReader(""), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	out := stdout.String()
	for _, want := range []string{"12345\n", "Korean:", "1 만 2345", "Sino-Korean:", "일만 이천삼백사십오", "Commas:", "12,345"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunSuperscript(t *testing.T) {
	var stdout, stderr bytes.Buffer
	run([]string{"-only", "scientific", "-superscript", "123000"}, strings.NewReader(""), &stdout, &stderr)

	if got := stdout.String(); got != "1.230 × 10⁵\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("# comment\n삼십이\n\n백\n")
	code := run([]string{"-only", "sino"}, stdin, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if got := stdout.String(); got != "삼십이\n백\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunStdinEUCKR(t *testing.T) {
	encoded, err := korean.EUCKR.NewEncoder().String("이천\n")
	if err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"-only", "commas", "-encoding", "euc-kr"}, strings.NewReader(encoded), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if got := stdout.String(); got != "2,000\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unreadable input", []string{"hello", "십"}, 1},
		{"exponent notation", []string{"1e5"}, 1},
		{"unknown representation", []string{"-only", "roman", "십"}, 2},
		{"unknown encoding", []string{"-encoding", "latin-1"}, 2},
		{"unknown flag", []string{"-x"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, strings.NewReader(""), &stdout, &stderr); code != tt.code {
				t.Errorf("exit code = %d, want %d", code, tt.code)
			}
			if stderr.Len() == 0 {
				t.Error("expected a message on stderr")
			}
		})
	}
}
