package governor

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	mdLink     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	mdEmphasis = regexp.MustCompile(`(\*{1,3}|_{1,3}|~{2}|` + "`" + `+)`)
	mdHeading  = regexp.MustCompile(`(?m)^\s*#{1,6}\s+`)
	mdListItem = regexp.MustCompile(`(?m)^\s*(?:[-*+•]|\d+[.)])\s+`)
	spaces     = regexp.MustCompile(`\s+`)
)

// stripMarkdown flattens generator markup into plain sentences. Links keep
// their text, emphasis and list/heading markers are dropped.
func stripMarkdown(text string) string {
	text = mdLink.ReplaceAllString(text, "$1")
	text = mdHeading.ReplaceAllString(text, "")
	text = mdListItem.ReplaceAllString(text, "")
	text = mdEmphasis.ReplaceAllString(text, "")
	return text
}

// splitSentences breaks text at sentence terminators. A period directly
// followed by a non-space rune is part of a token (decimal separator, URL,
// payment alias), not a boundary.
func splitSentences(text string) []string {
	var out []string
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		b.WriteRune(runes[i])
		if !isTerminator(runes[i]) {
			continue
		}
		if runes[i] == '.' && i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) && !isTerminator(runes[i+1]) {
			continue
		}
		for i+1 < len(runes) && isTerminator(runes[i+1]) {
			i++
			b.WriteRune(runes[i])
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			out = append(out, s)
		}
		b.Reset()
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}
	return out
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// joinSentences reassembles sentences into one block with collapsed
// whitespace and guaranteed terminal punctuation.
func joinSentences(sentences []string) string {
	text := strings.TrimSpace(spaces.ReplaceAllString(strings.Join(sentences, " "), " "))
	if text == "" {
		return text
	}
	if last := []rune(text)[len([]rune(text))-1]; !isTerminator(last) {
		text += "."
	}
	return text
}

func containsAny(s string, markers []string) bool {
	lower := strings.ToLower(s)
	for _, m := range markers {
		if m != "" && strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}
