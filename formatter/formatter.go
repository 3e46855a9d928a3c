package formatter

import (
	"strings"

	"typstfmt/config"
)

// Format returns the normalized form of a Typst document. It is pure and
// idempotent: Format(Format(x)) == Format(x) for the same config.
func Format(content string, cfg *config.Config) string {
	lines := CollectLines(content)
	out := make([]string, 0, len(lines))

	inRaw := false
	blanks := 0

	for _, line := range lines {
		// Raw block contents are kept as written.
		if inRaw {
			out = append(out, line)
			if togglesRaw(line) {
				inRaw = false
			}
			continue
		}

		line = strings.TrimRight(expandIndent(line, cfg.IndentSpace), " \t\r")

		if line == "" {
			blanks++
			if blanks <= cfg.MaxBlankLines {
				out = append(out, line)
			}
			continue
		}
		blanks = 0

		if togglesRaw(line) {
			inRaw = true
			out = append(out, line)
			continue
		}

		out = append(out, FormatLine(line))
	}

	out = trimBlankLines(out)
	if len(out) == 0 {
		return ""
	}

	result := strings.Join(out, "\n")
	if cfg.FinalNewline {
		result += "\n"
	}
	return result
}

// FormatLine normalizes a single line that is outside a raw block and has
// no trailing whitespace.
func FormatLine(line string) string {
	body := strings.TrimLeft(line, " ")
	if !isLetLine(body) {
		return line
	}
	indent := line[:len(line)-len(body)]

	i := bindingIndex(body)
	if i < 0 {
		return line
	}

	left := strings.TrimRight(body[:i], " \t")
	right := strings.TrimLeft(body[i+1:], " \t")
	if right == "" {
		return indent + left + " ="
	}
	return indent + left + " = " + right
}

// trimBlankLines drops empty lines at both ends.
func trimBlankLines(lines []string) []string {
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return lines[start:end]
}
