package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestRun_Text(t *testing.T) {
	var buf bytes.Buffer
	err := run(context.Background(), options{text: "xxy", order: "code"}, &buf)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	expect := "'y'\t1\t0\n'x'\t2\t1\n"
	if actual := buf.String(); actual != expect {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "one.txt")
	two := filepath.Join(dir, "two.txt")
	if err := os.WriteFile(one, []byte("bb"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(two, []byte("ab"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := run(context.Background(), options{order: "symbol", files: []string{one, two}}, &buf)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// b is seen first, so it is leaf 0; a is lighter and becomes the left child.
	expect := "'a'\t1\t0\n'b'\t3\t1\n"
	if actual := buf.String(); actual != expect {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}

func TestRun_Sample(t *testing.T) {
	var buf bytes.Buffer
	err := run(context.Background(), options{order: "freq"}, &buf)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected output for the sample text")
	}
}

func TestRun_Errors(t *testing.T) {
	var buf bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.txt")
	if err := run(context.Background(), options{order: "code", files: []string{missing}}, &buf); err == nil {
		t.Error("expected an error for a missing file")
	}
	if err := run(context.Background(), options{text: "abc", order: "bogus"}, &buf); err == nil {
		t.Error("expected an error for an unknown sort order")
	}
}
