package importer

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ReadHTMLTable reads the first <table> of an HTML document, as produced by
// Notion's "HTML" database export. Header labels come from <thead> when
// present, otherwise from the first row.
func ReadHTMLTable(r io.Reader) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, formatErr("malformed HTML", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, formatErr("no table in HTML document", nil)
	}

	var header []string
	var body [][]string

	trs := table.Find("tr")
	headRow := table.Find("thead tr").First()
	if headRow.Length() == 0 {
		headRow = trs.First()
	}
	header = cellTexts(headRow.Find("th, td"))

	trs.Each(func(_ int, tr *goquery.Selection) {
		if tr.IsSelection(headRow) {
			return
		}
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return
		}
		body = append(body, cellTexts(cells))
	})

	if len(header) == 0 {
		return nil, formatErr("table has no header row", nil)
	}
	return rowsFromTable(header, body), nil
}

func cellTexts(s *goquery.Selection) []string {
	out := make([]string, 0, s.Length())
	s.Each(func(_ int, c *goquery.Selection) {
		out = append(out, strings.Join(strings.Fields(c.Text()), " "))
	})
	return out
}
