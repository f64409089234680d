package common

import (
	"strings"
	"unicode/utf8"
)

// WrapString wraps each paragraph of s at width runes, breaking on the last space
// before the limit when there is one.
func WrapString(s string, width int) string {
	if width <= 0 {
		return s
	}

	paragraphs := strings.Split(s, "\n")
	for i, p := range paragraphs {
		paragraphs[i] = wrapLine(p, width)
	}
	return strings.Join(paragraphs, "\n")
}

func wrapLine(s string, width int) string {
	var lines []string
	for utf8.RuneCountInString(s) > width {
		runes := []rune(s)
		splitAt := width
		for i := width; i > 0; i-- {
			if runes[i] == ' ' {
				splitAt = i
				break
			}
		}
		lines = append(lines, string(runes[:splitAt]))
		s = strings.TrimLeft(string(runes[splitAt:]), " ")
	}
	if len(s) > 0 || len(lines) == 0 {
		lines = append(lines, s)
	}
	return strings.Join(lines, "\n")
}

// StripEmphasis removes Markdown bold/italic markers
func StripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "*", "")
	return strings.TrimSpace(s)
}
