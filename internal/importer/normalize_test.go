package importer

import (
	"testing"

	"jobhunt-reconciler/internal/domain"
)

func TestNormalizeRow_CompanyAliases(t *testing.T) {
	for _, label := range []string{"Företag", "Company", "Name", "Namn", "company", " NAMN "} {
		rec := NormalizeRow(Row{label: "Acme"})
		if rec.Company != "Acme" {
			t.Errorf("alias %q: company = %q, want %q", label, rec.Company, "Acme")
		}
	}
}

func TestNormalizeRow_AliasPriority(t *testing.T) {
	rec := NormalizeRow(Row{
		"Name":    "Page title",
		"Företag": "Atea",
		"Title":   "Bid Manager",
		"Roll":    "ignored",
	})
	if rec.Company != "Atea" {
		t.Errorf("company = %q, want Atea", rec.Company)
	}
	if rec.Title != "Bid Manager" {
		t.Errorf("title = %q, want Bid Manager", rec.Title)
	}
}

func TestNormalizeRow_BlankCellFallsThrough(t *testing.T) {
	rec := NormalizeRow(Row{"Företag": "  ", "Company": "CGI"})
	if rec.Company != "CGI" {
		t.Errorf("company = %q, want CGI", rec.Company)
	}
}

func TestNormalizeRow_Defaults(t *testing.T) {
	rec := NormalizeRow(Row{"Something else": "x"})
	want := domain.HistoryRecord{
		Company:     domain.UnknownCompany,
		Title:       domain.DefaultTitle,
		AppliedDate: domain.DefaultAppliedDate,
		Status:      domain.DefaultStatus,
	}
	if rec != want {
		t.Errorf("got %+v, want %+v", rec, want)
	}

	empty := NormalizeRow(nil)
	if empty.Company != domain.UnknownCompany {
		t.Errorf("nil row company = %q", empty.Company)
	}
}

func TestNormalizeRow_AllFields(t *testing.T) {
	rec := NormalizeRow(Row{
		"\ufeffNamn": "Advania",
		"Tjänst":     "Anbudsansvarig",
		"Datum":      "2025-09-10",
		"Status":     "Intervju",
		"Link":       "https://example.se/job",
		"Kommentar":  " ring tillbaka ",
	})
	want := domain.HistoryRecord{
		Company:     "Advania",
		Title:       "Anbudsansvarig",
		AppliedDate: "2025-09-10",
		Status:      "Intervju",
		URL:         "https://example.se/job",
		Notes:       "ring tillbaka",
	}
	if rec != want {
		t.Errorf("got %+v, want %+v", rec, want)
	}
}

func TestNormalizeAll_OneRecordPerRow(t *testing.T) {
	rows := []Row{{}, {"Company": "Atea"}, {"x": ""}}
	got := NormalizeAll(rows)
	if len(got) != len(rows) {
		t.Fatalf("len = %d, want %d", len(got), len(rows))
	}
	if got[1].Company != "Atea" {
		t.Errorf("got[1].Company = %q", got[1].Company)
	}
	for i, r := range got {
		if r.Company == "" {
			t.Errorf("record %d has empty company", i)
		}
	}
}

func TestNormalizeRow_CaseCollisionsAreDeterministic(t *testing.T) {
	cases := []struct {
		name string
		row  Row
		want string
	}{
		{"exact case wins", Row{"company": "lower", "Company": "Exact"}, "Exact"},
		{"exact case wins regardless of sort", Row{"COMPANY": "upper", "Company": "Exact", "company": "lower"}, "Exact"},
		{"folded picks first label in sort order", Row{"company": "lower", "COMPANY": "upper"}, "upper"},
		{"blank exact falls back to folded", Row{"Company": " ", "company": "lower"}, "lower"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				if got := NormalizeRow(tc.row).Company; got != tc.want {
					t.Fatalf("run %d: company = %q, want %q", i, got, tc.want)
				}
			}
		})
	}
}
