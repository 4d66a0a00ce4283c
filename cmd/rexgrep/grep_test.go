package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "rexgrep-*.txt")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	if _, err := f.WriteString(contents); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return f.Name()
}

func TestRunBasicMatch(t *testing.T) {
	path := writeTempFile(t, "apple\nbanana\ncherry\n")
	var buf bytes.Buffer
	code, err := run(&options{}, "a(n)*a", path, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code got %d; want 0", code)
	}
	out := buf.String()
	if !strings.Contains(out, "b"+boldRed+"ana"+reset+"na") || strings.Contains(out, "apple") {
		t.Errorf("expected banana with \"ana\" highlighted and no apple in output, got %q", out)
	}
	if strings.Contains(out, "cherry") {
		t.Errorf("cherry should not match, got %q", out)
	}
}

func TestRunCount(t *testing.T) {
	path := writeTempFile(t, "cat\ndog\ncat\n")
	var buf bytes.Buffer
	code, err := run(&options{count: true}, "cat", path, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code got %d; want 0", code)
	}
	if got := strings.TrimSpace(buf.String()); got != "2" {
		t.Errorf("count got %q; want \"2\"", got)
	}
}

func TestRunInvert(t *testing.T) {
	path := writeTempFile(t, "cat\ndog\n")
	var buf bytes.Buffer
	code, err := run(&options{invert: true}, "cat", path, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code got %d; want 0", code)
	}
	if got := strings.TrimSpace(buf.String()); got != "dog" {
		t.Errorf("inverted output got %q; want \"dog\"", got)
	}
}

func TestRunNoMatchExitsOne(t *testing.T) {
	path := writeTempFile(t, "dog\n")
	var buf bytes.Buffer
	code, err := run(&options{}, "cat", path, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 1 {
		t.Errorf("exit code got %d; want 1", code)
	}
}

func TestRunLineNumber(t *testing.T) {
	path := writeTempFile(t, "dog\ncat\n")
	var buf bytes.Buffer
	_, err := run(&options{lineNumber: true}, "cat", path, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "2:") {
		t.Errorf("expected output to start with line number prefix, got %q", buf.String())
	}
}

func TestRunWholeLine(t *testing.T) {
	path := writeTempFile(t, "cat\ncatfish\n")
	var buf bytes.Buffer
	_, err := run(&options{wholeLine: true}, "cat", path, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "cat") || strings.Contains(out, "catfish") {
		t.Errorf("line-regexp should match only the exact line, got %q", out)
	}
}

func TestRunWordBoundary(t *testing.T) {
	path := writeTempFile(t, "a cat sat\nconcatenate\n")
	var buf bytes.Buffer
	_, err := run(&options{wordBoundary: true}, "cat", path, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "a "+boldRed+"cat"+reset+" sat") {
		t.Errorf("expected whole-word match line present, got %q", out)
	}
	if strings.Contains(out, "concatenate") {
		t.Errorf("word-boundary flag should reject the embedded match, got %q", out)
	}
}

func TestRunCaseInsensitive(t *testing.T) {
	path := writeTempFile(t, "CAT\n")
	var buf bytes.Buffer
	code, err := run(&options{caseInsensitive: true}, "cat", path, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code got %d; want 0", code)
	}
}

func TestRunUnionWithNonLiteralBranchIsNotPrefilteredOut(t *testing.T) {
	// "ab|c*" has one branch ("c*") that can match without the literal
	// "ab" anywhere in the line (e.g. a lone "c"). The prefilter must not
	// gate matching on "ab" being present, or a line like "zcz" would be
	// wrongly reported as non-matching.
	path := writeTempFile(t, "zcz\nnothing here\n")
	var buf bytes.Buffer
	code, err := run(&options{}, "ab|c*", path, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code got %d; want 0", code)
	}
	if !strings.Contains(buf.String(), "z"+boldRed+"c"+reset+"z") {
		t.Errorf("expected \"zcz\" to match via the c* branch, got %q", buf.String())
	}
}

func TestRunInvalidPatternReturnsError(t *testing.T) {
	path := writeTempFile(t, "anything\n")
	var buf bytes.Buffer
	_, err := run(&options{}, "(unterminated", path, &buf)
	if err == nil {
		t.Error("expected an error for an invalid pattern")
	}
}
