package content

import (
	"math"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

const (
	ExcerptLength  = 150
	WordsPerMinute = 200
	ellipsis       = "..."
)

// StripTags returns the visible text of an HTML fragment.
// Block level boundaries become spaces so words do not run together.
func StripTags(html string) string {
	if !strings.ContainsAny(html, "<&") {
		return strings.TrimSpace(html)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	doc.Find("script, style").Remove()
	doc.Find("br, p, div, li, h1, h2, h3, h4, h5, h6, blockquote, tr").Each(func(_ int, s *goquery.Selection) {
		s.BeforeHtml(" ")
		s.AfterHtml(" ")
	})

	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Truncate limits s to limit characters (runes), appending "..." when cut
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimRightFunc(string(r[:limit]), unicode.IsSpace) + ellipsis
}

// Excerpt prefers the explicit excerpt and otherwise derives one from the body
func Excerpt(explicit, html string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return Truncate(StripTags(html), ExcerptLength)
}

// WordCount counts words in already stripped text.
// A word is a run of letters, apostrophes or hyphens, so numbers do not count.
func WordCount(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		isWordRune := unicode.IsLetter(r) || ((r == '\'' || r == '-') && inWord)
		if isWordRune && !inWord {
			count++
		}
		inWord = isWordRune
	}
	return count
}

// ReadTime is max(1, ceil(words/200)) minutes unless override is positive
func ReadTime(override *int, html string) int {
	if override != nil && *override > 0 {
		return *override
	}
	words := WordCount(StripTags(html))
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}
