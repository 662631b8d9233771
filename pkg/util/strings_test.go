package util

import "testing"

func TestSplitLinesTrailingNewline(t *testing.T) {
	lines := SplitLines([]byte("a\nb\n"))
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestSplitLinesNoTrailingNewline(t *testing.T) {
	lines := SplitLines([]byte("a\nb"))
	if len(lines) != 2 || lines[1] != "b" {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestSplitLinesCRLF(t *testing.T) {
	lines := SplitLines([]byte("a,1\r\nb,2\r\n"))
	if len(lines) != 2 || lines[0] != "a,1" || lines[1] != "b,2" {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestSplitLinesKeepsInnerEmptyLines(t *testing.T) {
	lines := SplitLines([]byte("a\n\nb\n"))
	if len(lines) != 3 || lines[1] != "" {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestTokenize(t *testing.T) {
	rows := Tokenize([]byte("<TABLE>,tradable\nSTRING,STRING\n"))
	if len(rows) != 2 {
		t.Fatalf("unexpected rows %v", rows)
	}
	if rows[0][0] != "<TABLE>" || rows[0][1] != "tradable" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if len(rows[1]) != 2 || rows[1][0] != "STRING" {
		t.Fatalf("unexpected fields %v", rows[1])
	}
}

func TestSplitFieldsEmptyLine(t *testing.T) {
	f := SplitFields("")
	if len(f) != 1 || f[0] != "" {
		t.Fatalf("unexpected fields %v", f)
	}
}
