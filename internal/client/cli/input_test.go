package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  alice  \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "Enter username", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "alice" {
		t.Fatalf("expected %q, got %q", "alice", got)
	}
	if !strings.Contains(out.String(), "Enter username") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("bob"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "Enter username", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "bob" {
		t.Fatalf("expected %q, got %q", "bob", got)
	}
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	if _, err := GetSimpleText(r, "Enter username", &out); err == nil {
		t.Fatalf("expected error on empty EOF")
	}
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter2"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pw) != "hunter2" {
		t.Fatalf("expected stubbed password, got %q", string(pw))
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestGetPassword_ErrorPropagates(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("no tty") }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	if _, err := GetPassword(&out); err == nil {
		t.Fatalf("expected error from readPassword")
	}
}
