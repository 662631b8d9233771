package util

import (
	"bufio"
	"bytes"
	"strings"
)

// SplitLines splits raw input into lines. A trailing newline does not
// produce a final empty line; a last line without a newline is kept.
// Carriage returns before the newline are stripped.
func SplitLines(data []byte) []string {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}

// SplitFields splits one line on commas. The format has no quoting or
// escaping, so every comma separates.
func SplitFields(line string) []string {
	return strings.Split(line, ",")
}

// Tokenize splits raw input into lines and each line into fields.
func Tokenize(data []byte) [][]string {
	lines := SplitLines(data)
	out := make([][]string, len(lines))
	for i, l := range lines {
		out[i] = SplitFields(l)
	}
	return out
}
