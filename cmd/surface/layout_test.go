package main

import (
	"bytes"
	"strings"
	"testing"
)

const rowSnapshot = `{"id":1,"style":{"flexDirection":"row"},"children":[{"id":2,"style":{"width":3}},{"id":3,"type":"text","text":"hi"}]}`

func TestRunLayout_Tree(t *testing.T) {
	var out bytes.Buffer
	err := runLayout([]string{"-width", "10", "-height", "2"}, strings.NewReader(rowSnapshot), &out)
	if err != nil {
		t.Fatalf("runLayout() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header and 3 nodes:\n%s", len(lines), out.String())
	}
	if fields := strings.Fields(lines[1]); fields[0] != "1" || fields[4] != "10" {
		t.Errorf("root row = %q, want id 1 and width 10", lines[1])
	}
	if !strings.HasPrefix(lines[2], "  2") {
		t.Errorf("child row = %q, want indented id 2", lines[2])
	}
	if !strings.Contains(lines[3], `"hi"`) {
		t.Errorf("text row = %q, want quoted text", lines[3])
	}
}

func TestRunLayout_Commands(t *testing.T) {
	var out bytes.Buffer
	err := runLayout([]string{"-width", "10", "-height", "2", "-commands"}, strings.NewReader(rowSnapshot), &out)
	if err != nil {
		t.Fatalf("runLayout() error = %v", err)
	}
	want := `{"x":3,"y":0,"w":7,"h":1,"text":"hi"}` + "\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunLayout_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	if err := runLayout(nil, strings.NewReader(""), &out); err == nil {
		t.Fatal("runLayout() error = nil, want error")
	}
}
