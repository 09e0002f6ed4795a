package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestAskTrimsAnswer(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  500000  \n"), &out)

	got, err := p.Ask("CAN bitrate [bps]", "250000")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != "500000" {
		t.Errorf("expected trimmed answer, got %q", got)
	}
	if !strings.Contains(out.String(), "[250000]") {
		t.Errorf("prompt should show the default, got %q", out.String())
	}
}

func TestAskEmptyAnswer(t *testing.T) {
	p := New(strings.NewReader("\n"), &bytes.Buffer{})

	got, err := p.Ask("Samples to capture", "1000")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty answer, got %q", got)
	}
}

func TestAskLastLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("y"), &bytes.Buffer{})

	got, err := p.Ask("Write output to CSV file? (y/n)", "")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != "y" {
		t.Errorf("expected %q, got %q", "y", got)
	}
}

func TestAskInterruptedInput(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})

	if _, err := p.Ask("CAN node ID", "1"); err == nil {
		t.Fatal("expected error on exhausted input")
	}
}
