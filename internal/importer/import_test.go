package importer

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"jobhunt-reconciler/internal/domain"
)

const notionCSV = "\ufeffNamn,Företag,Tjänst,Datum,Status,URL\n" +
	"Anbud Atea,Atea,Anbudsansvarig,2025-05-01,Avslag,https://atea.se\n" +
	"Advania,Advania,Bid Manager,2025-09-10,Intervju,\n"

func makeZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestImport_ZipWithCSV(t *testing.T) {
	data := makeZip(t, map[string]string{
		"__MACOSX/._jobs.csv": "garbage",
		"Export/Jobb 123.csv": notionCSV,
		"Export/readme.txt":   "hello",
	})

	recs, err := Import("export.zip", data)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if recs[0].Company != "Atea" || recs[0].Status != "Avslag" || recs[0].URL != "https://atea.se" {
		t.Errorf("recs[0] = %+v", recs[0])
	}
	if recs[1].Title != "Bid Manager" || recs[1].URL != "" {
		t.Errorf("recs[1] = %+v", recs[1])
	}
}

func TestImport_ZipWithHTMLOnly(t *testing.T) {
	html := `<html><body><table class="collection-content">
<thead><tr><th>Company</th><th>Title</th><th>Date</th><th>Status</th></tr></thead>
<tbody>
<tr><td><a href="x">CGI</a></td><td>Strategic Bid   Specialist</td><td>2025-03-02</td><td>Sökt</td></tr>
<tr><td>Tietoevry</td><td>Bid Lead</td><td></td><td></td></tr>
</tbody></table></body></html>`

	recs, err := Import("Export.ZIP", makeZip(t, map[string]string{"db/Jobb.html": html}))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if recs[0].Company != "CGI" || recs[0].Title != "Strategic Bid Specialist" {
		t.Errorf("recs[0] = %+v", recs[0])
	}
	if recs[1].AppliedDate != "2025-01-01" || recs[1].Status != "Applied" {
		t.Errorf("recs[1] defaults not applied: %+v", recs[1])
	}
}

func TestImport_BareCSVSemicolon(t *testing.T) {
	data := "Company;Title;Date\nAtea;Anbud;2025-01-02\n\n"
	recs, err := Import("jobs.csv", []byte(data))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(recs) != 1 || recs[0].Company != "Atea" || recs[0].AppliedDate != "2025-01-02" {
		t.Errorf("recs = %+v", recs)
	}
}

func TestImport_ShortRowsDegradeToDefaults(t *testing.T) {
	data := "Company,Title,Status\nAtea\n"
	recs, err := Import("jobs.csv", []byte(data))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(recs) != 1 || recs[0].Title != "Position" || recs[0].Status != "Applied" {
		t.Errorf("recs = %+v", recs)
	}
}

func TestImport_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
	}{
		{"wrong extension", "jobs.xlsx", []byte("whatever")},
		{"not a zip", "jobs.zip", []byte("plain text")},
		{"zip without data file", "jobs.zip", makeZip(t, map[string]string{"a.txt": "x", "__MACOSX/b.csv": "Company\nX\n"})},
		{"header only", "jobs.csv", []byte("Company,Title\n")},
		{"empty csv", "jobs.csv", nil},
		{"html without table", "jobs.html", []byte("<p>nothing</p>")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := Import(tt.filename, tt.data)
			if err == nil {
				t.Fatalf("expected error, got %d records", len(recs))
			}
			if !errors.Is(err, ErrImportFormat) {
				t.Errorf("error %v does not match ErrImportFormat", err)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("error %T is not *FormatError", err)
			}
			if !strings.HasPrefix(err.Error(), "import: ") {
				t.Errorf("error message = %q", err.Error())
			}
		})
	}
}

func TestImport_Windows1252CSV(t *testing.T) {
	// Excel on Swedish Windows saves CSV as cp1252 with semicolons.
	cp1252 := "F\xf6retag;Position;Datum;Status\n" +
		"Sk\xe5ne AB;Bid;2025-03-01;S\xf6kt\n"

	for name, data := range map[string][]byte{
		"export.csv": []byte(cp1252),
		"export.zip": makeZip(t, map[string]string{"Export/jobb.csv": cp1252}),
	} {
		recs, err := Import(name, data)
		if err != nil {
			t.Fatalf("%s: Import: %v", name, err)
		}
		want := domain.HistoryRecord{Company: "Skåne AB", Title: "Bid", AppliedDate: "2025-03-01", Status: "Sökt"}
		if len(recs) != 1 || recs[0] != want {
			t.Errorf("%s: recs = %+v, want %+v", name, recs, want)
		}
	}
}

func TestImport_UTF8PassesThrough(t *testing.T) {
	recs, err := Import("export.csv", []byte("Företag,Status\nSkåne AB,Sökt\n"))
	if err != nil {
		t.Fatal(err)
	}
	if recs[0].Company != "Skåne AB" || recs[0].Status != "Sökt" {
		t.Errorf("recs[0] = %+v", recs[0])
	}
}
