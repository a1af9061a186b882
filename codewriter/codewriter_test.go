package codewriter

import (
	"strings"
	"testing"
)

func TestWriteLineIndentation(t *testing.T) {
	w := New(false)
	w.WriteLine(0, "void main() {")
	w.WriteLine(1, "int x = %d;", 3)
	w.WriteLine(0, "}")

	got := w.String()
	want := "void main() {\n    int x = 3;\n}\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBeginWriteEndLine(t *testing.T) {
	w := New(false)
	w.BeginLine(1, "", 0)
	w.Write("float %s", "a")
	w.Write(" = %s", "b")
	w.EndLine(";")

	got := w.String()
	want := "    float a = b;\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLineTrackingEmitsDirectiveOnDivergence(t *testing.T) {
	w := New(true)
	w.WriteTrackedLine(0, "shader.hlsl", 5, "float a = 1;")
	w.WriteTrackedLine(0, "shader.hlsl", 6, "float b = 2;")
	// Jump: line 6 was expected next (5+1), no directive; line 10 diverges.
	w.WriteTrackedLine(0, "shader.hlsl", 10, "float c = 3;")

	got := w.String()
	if strings.Count(got, "#line") != 2 {
		t.Fatalf("expected 2 #line directives (initial + divergence), got:\n%s", got)
	}
	if !strings.Contains(got, `#line 10 "shader.hlsl"`) {
		t.Fatalf("expected a #line directive for the divergent line, got:\n%s", got)
	}
}

func TestLineTrackingSilentWhenContiguous(t *testing.T) {
	w := New(true)
	w.WriteTrackedLine(0, "shader.hlsl", 1, "float a = 1;")
	w.WriteTrackedLine(0, "shader.hlsl", 2, "float b = 2;")
	w.WriteTrackedLine(0, "shader.hlsl", 3, "float c = 3;")

	got := w.String()
	if strings.Count(got, "#line") != 1 {
		t.Fatalf("expected exactly 1 #line directive (the initial one), got:\n%s", got)
	}
}

func TestUntrackedLineNeverEmitsDirective(t *testing.T) {
	w := New(true)
	w.WriteLine(0, "#version 140")
	w.WriteLine(0, "void helper() {}")

	got := w.String()
	if strings.Contains(got, "#line") {
		t.Fatalf("untracked output must never emit #line, got:\n%s", got)
	}
}
