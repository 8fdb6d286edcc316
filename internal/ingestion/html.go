package ingestion

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTMLText extracts the visible text of an HTML document, dropping
// script and style content. Some study material arrives as exported HTML
// rather than PDF.
func ExtractHTMLText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		sb.WriteString(sel.Text())
	})

	text := sb.String()
	if text == "" {
		// Fragment without a body element.
		text = doc.Text()
	}
	return CleanText(text), nil
}
