package repository

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aliskhannn/mapping-glossary-quiz/internal/domain/entities"
)

// Selectors for the glossary page: one table row per term, the name emphasized
// in the first cell, the description in the second cell with an optional
// collapsible <details> block holding an example image.
const (
	rowSelector        = "main table tbody tr"
	nameSelector       = "td:first-child strong"
	definitionSelector = "td:nth-child(2)"
	detailsSelector    = "details"
	imageSelector      = "details img"
)

// Extraction is the result of parsing one glossary page.
type Extraction struct {
	Terms      []entities.Term // valid terms in document order
	Skipped    int             // rows without a name or definition
	Duplicates int             // rows dropped because the name was already seen
}

// Extract parses the glossary page and returns its terms in document order.
// Rows missing a name or definition are skipped, and only the first row of a
// given name is kept.
func Extract(r io.Reader, baseURL string) (Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Extraction{}, fmt.Errorf("parse glossary html: %w", err)
	}

	var out Extraction
	seen := make(map[string]struct{})

	doc.Find(rowSelector).Each(func(_ int, row *goquery.Selection) {
		term := extractRow(row, baseURL)
		if !term.Valid() {
			out.Skipped++
			return
		}

		key := term.Key()
		if _, ok := seen[key]; ok {
			out.Duplicates++
			return
		}
		seen[key] = struct{}{}

		out.Terms = append(out.Terms, term)
	})

	return out, nil
}

func extractRow(row *goquery.Selection, baseURL string) entities.Term {
	name := strings.TrimSpace(row.Find(nameSelector).Text())

	cell := row.Find(definitionSelector)

	// Captions inside <details> belong to the example, not to the definition.
	definition := strings.TrimSpace(cell.Clone().Find(detailsSelector).Remove().End().Text())

	var imageURL string
	if src, ok := cell.Find(imageSelector).First().Attr("src"); ok {
		imageURL = resolveImageURL(baseURL, strings.TrimSpace(src))
	}

	return entities.Term{
		Name:       name,
		Definition: definition,
		ImageURL:   imageURL,
	}
}

// resolveImageURL prefixes root-relative paths with the site origin.
// Anything else is dropped.
func resolveImageURL(baseURL, src string) string {
	if !strings.HasPrefix(src, "/") || strings.HasPrefix(src, "//") {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + src
}
