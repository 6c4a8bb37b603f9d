package chart

import (
	"strings"
	"unicode/utf8"
)

// LineBreak separates title lines in chart descriptions.
const LineBreak = "<br>"

const (
	splitTitleLimit = 80
	wrapTitleLimit  = 50
)

// WrapTitle breaks a long title into lines joined by LineBreak.
//
// Q2 and Q3 titles stay on one line up to 80 characters; longer ones break
// once, halfway through the words after the first colon. Every other title
// is packed greedily into lines of at most 50 characters.
func WrapTitle(title string) string {
	if title == "" {
		return title
	}
	if strings.Contains(title, "Q2:") || strings.Contains(title, "Q3:") {
		return splitAtMidpoint(title)
	}
	return wrapGreedy(title, wrapTitleLimit)
}

func splitAtMidpoint(title string) string {
	head, rest, _ := strings.Cut(title, ":")
	head += ":"
	content := strings.TrimSpace(rest)
	if runeLen(head)+runeLen(content)+1 <= splitTitleLimit {
		return title
	}
	words := strings.Split(content, " ")
	if len(words) == 1 {
		return head + LineBreak + content
	}
	mid := len(words) / 2
	return head + " " + strings.Join(words[:mid], " ") + LineBreak + strings.Join(words[mid:], " ")
}

func wrapGreedy(title string, limit int) string {
	if runeLen(title) <= limit {
		return title
	}
	var lines []string
	cur := ""
	for _, w := range strings.Split(title, " ") {
		if runeLen(cur)+runeLen(w)+1 <= limit {
			if cur != "" {
				cur += " "
			}
			cur += w
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		cur = w
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return strings.Join(lines, LineBreak)
}

// TitleLines splits a wrapped title back into its lines.
func TitleLines(title string) []string {
	return strings.Split(title, LineBreak)
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
