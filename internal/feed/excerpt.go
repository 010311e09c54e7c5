package feed

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// PlainText flattens an HTML job description to searchable text. Plain
// strings pass through untouched; if the HTML cannot be parsed we search
// the raw markup rather than dropping the field.
func PlainText(html string) string {
	if html == "" || !strings.ContainsRune(html, '<') {
		return html
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Excerpt is PlainText clipped to max runes for list rendering. Clipping
// counts runes, not bytes, so a multibyte character is never split.
func Excerpt(html string, max int) string {
	text := PlainText(html)
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	clip := string([]rune(text)[:max])
	if i := strings.LastIndexByte(clip, ' '); i > 0 {
		clip = clip[:i]
	}
	return clip + "…"
}
