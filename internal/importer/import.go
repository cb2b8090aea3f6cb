// Package importer turns an uploaded history export (a Notion zip, a CSV
// file or an HTML table export) into canonical history records.
package importer

import (
	"archive/zip"
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"log"
	"path"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"jobhunt-reconciler/internal/domain"
)

// Import parses an uploaded file and normalizes every row. The whole import
// fails with a *FormatError when no rows can be extracted; callers must not
// touch the history store in that case.
func Import(filename string, data []byte) ([]domain.HistoryRecord, error) {
	rows, err := extractRows(filename, data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, formatErr("no rows found in "+filename, nil)
	}
	log.Printf("[import] file=%q rows=%d", filename, len(rows))
	return NormalizeAll(rows), nil
}

func extractRows(filename string, data []byte) ([]Row, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".zip":
		return rowsFromZip(data)
	case ".csv":
		return ReadCSV(bytes.NewReader(toUTF8(data)))
	case ".html", ".htm":
		return ReadHTMLTable(bytes.NewReader(toUTF8(data)))
	default:
		return nil, formatErr("unsupported file type "+strconv.Quote(filename)+" (want .zip, .csv or .html)", nil)
	}
}

func rowsFromZip(data []byte) ([]Row, error) {
	z, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, formatErr("not a zip archive", err)
	}

	var csvFile, htmlFile *zip.File
	for _, f := range z.File {
		if f.FileInfo().IsDir() || skipArchiveEntry(f.Name) {
			continue
		}
		switch strings.ToLower(path.Ext(f.Name)) {
		case ".csv":
			if csvFile == nil {
				csvFile = f
			}
		case ".html", ".htm":
			if htmlFile == nil {
				htmlFile = f
			}
		}
	}

	pick := csvFile
	if pick == nil {
		pick = htmlFile
	}
	if pick == nil {
		return nil, formatErr("no CSV or HTML file in zip archive", nil)
	}

	rc, err := pick.Open()
	if err != nil {
		return nil, formatErr("open "+strconv.Quote(pick.Name), err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, formatErr("read "+strconv.Quote(pick.Name), err)
	}

	log.Printf("[import] using archive entry %q", pick.Name)
	if pick == csvFile {
		return ReadCSV(bytes.NewReader(toUTF8(b)))
	}
	return ReadHTMLTable(bytes.NewReader(toUTF8(b)))
}

// toUTF8 passes UTF-8 through and decodes anything else as Windows-1252,
// which is what Excel writes for Swedish CSV exports.
func toUTF8(b []byte) []byte {
	if utf8.Valid(b) {
		return b
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return bytes.ToValidUTF8(b, []byte("\uFFFD"))
	}
	log.Printf("[import] input is not UTF-8, decoded as windows-1252")
	return out
}

func skipArchiveEntry(name string) bool {
	return strings.HasPrefix(name, "__MACOSX/") || strings.HasPrefix(path.Base(name), "._")
}

// ReadCSV reads a header row followed by data rows. Comma and semicolon
// separated files are both accepted; the delimiter is sniffed from the header.
func ReadCSV(r io.Reader) ([]Row, error) {
	br := bufio.NewReader(r)
	first, _ := br.Peek(4096)
	header := string(first)
	if i := strings.IndexByte(header, '\n'); i >= 0 {
		header = header[:i]
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if strings.Count(header, ";") > strings.Count(header, ",") {
		cr.Comma = ';'
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, formatErr("malformed CSV", err)
	}
	if len(records) == 0 {
		return nil, formatErr("empty CSV", nil)
	}
	return rowsFromTable(records[0], records[1:]), nil
}

func rowsFromTable(header []string, body [][]string) []Row {
	rows := make([]Row, 0, len(body))
	for _, rec := range body {
		if blankRecord(rec) {
			continue
		}
		row := make(Row, len(header))
		for i, label := range header {
			if i < len(rec) {
				row[label] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func blankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
