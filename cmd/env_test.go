package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseID(tt.input)
		if tt.wantErr != (err != nil) {
			t.Errorf("parseID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseID(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestPromptLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"secret\n", "secret"},
		{"secret\r\n", "secret"},
		{"no newline at eof", "no newline at eof"},
	}
	for _, tt := range tests {
		got, err := promptLine(bufio.NewReader(strings.NewReader(tt.input)), "")
		if err != nil {
			t.Errorf("promptLine(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("promptLine(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPromptLineSequenceOnSharedReader(t *testing.T) {
	// Two prompts reading from piped input must see consecutive lines;
	// read-ahead by the first must not swallow the second.
	r := bufio.NewReader(strings.NewReader("current-pw\nnew-pw\n"))

	for i, want := range []string{"current-pw", "new-pw"} {
		got, err := promptLine(r, "")
		if err != nil {
			t.Fatalf("prompt %d: %v", i+1, err)
		}
		if got != want {
			t.Errorf("prompt %d = %q, want %q", i+1, got, want)
		}
	}
}

func TestReportable(t *testing.T) {
	if reportable(errOpFailed) {
		t.Error("errOpFailed must not be reprinted by Execute")
	}
	if reportable(fmt.Errorf("updating: %w", errOpFailed)) {
		t.Error("wrapped errOpFailed must not be reprinted by Execute")
	}
	if !reportable(fmt.Errorf("no record with id 7")) {
		t.Error("ordinary errors must be printed by Execute")
	}
}
