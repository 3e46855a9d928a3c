package formatter

import (
	"strings"
)

const rawFence = "```"

// CollectLines splits a document into lines without their line endings.
// Every "\r" before a line break is dropped. A trailing newline yields a
// final empty line.
func CollectLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}

// togglesRaw reports whether a line opens or closes a raw block.
func togglesRaw(line string) bool {
	return strings.Count(line, rawFence)%2 == 1
}

// expandIndent replaces tabs in the leading whitespace of a line with
// width spaces each.
func expandIndent(line string, width int) string {
	end := 0
	for end < len(line) && (line[end] == ' ' || line[end] == '\t') {
		end++
	}
	indent := line[:end]
	if !strings.Contains(indent, "\t") {
		return line
	}
	return strings.ReplaceAll(indent, "\t", strings.Repeat(" ", width)) + line[end:]
}

// bindingIndex returns the byte offset of the "=" that separates a let
// binding from its value, or -1. Comparison operators, arrows, strings,
// comments and anything nested in brackets are skipped.
func bindingIndex(s string) int {
	depth := 0
	inString := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case '/':
			if i+1 < len(s) && (s[i+1] == '/' || s[i+1] == '*') {
				return -1
			}
		case '=':
			if depth > 0 {
				continue
			}
			if i > 0 && strings.IndexByte("=!<>+-*/", s[i-1]) >= 0 {
				continue
			}
			if i+1 < len(s) && (s[i+1] == '=' || s[i+1] == '>') {
				continue
			}
			return i
		}
	}
	return -1
}

// isLetLine reports whether the trimmed line starts a let binding, in code
// or markup mode.
func isLetLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "let ") || strings.HasPrefix(trimmed, "#let ")
}
