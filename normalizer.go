package main

import (
	"errors"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// errNoTable signals that the document has no table usable for the
// markdown rendering. The caller falls back to text-only output.
var errNoTable = errors.New("no usable table")

// Normalize converts a raw HTML post body into a single flat string:
// a markdown-ish rendering of the first table (if any), followed by
// the remaining visible text with whitespace collapsed.
//
// Table handling is best-effort: if the table is missing or its
// markup is unusable the rendering is skipped silently and only the
// cleaned text is returned. Empty input yields an empty string.
func Normalize(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	var parts []string
	if rendered, err := renderFirstTable(doc); err == nil {
		parts = append(parts, rendered)
	}

	// The table is already rendered above, drop it from the document
	// so its text is not counted twice.
	doc.Find("table").First().Remove()

	if text := collapseWhitespace(doc.Text()); text != "" {
		parts = append(parts, text)
	}

	return strings.Join(parts, " ")
}

// renderFirstTable renders the first table of doc as a heading taken
// from the first cell of the first row, followed by one list block
// per data row with one item per cell, serialized onto a single line.
func renderFirstTable(doc *goquery.Document) (string, error) {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return "", errNoTable
	}

	rows := table.Find("tr")
	if rows.Length() == 0 {
		return "", errNoTable
	}

	heading := strings.TrimSpace(rows.First().Find("th,td").First().Text())
	if heading == "" {
		return "", errNoTable
	}

	lines := []string{"# " + heading}
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			if v := strings.TrimSpace(cell.Text()); v != "" {
				lines = append(lines, "- "+v)
			}
		})
	})

	return collapseWhitespace(strings.Join(lines, " ")), nil
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
