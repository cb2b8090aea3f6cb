package catalogue

import (
	"os"
	"path/filepath"
	"testing"

	"jobhunt-reconciler/internal/domain"
)

func TestSeed(t *testing.T) {
	c, err := Seed()
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(c.Postings()) == 0 || len(c.Leads()) == 0 {
		t.Fatalf("seed should have postings and leads, got %d/%d", len(c.Postings()), len(c.Leads()))
	}
	for _, p := range c.Postings() {
		if p.Kind != domain.KindOfficial {
			t.Errorf("posting %q kind = %q", p.Company, p.Kind)
		}
	}
	for _, l := range c.Leads() {
		if l.Hint == "" || l.Title == "" {
			t.Errorf("lead %q missing hint or default title: %+v", l.Company, l)
		}
	}
}

func TestParse_SpeculativePostingsBecomeLeads(t *testing.T) {
	doc := []byte(`
speculative_defaults:
  title: "Spontanansökan"
  location: "-"
  commute: "-"
postings:
  - title: "Bid Manager"
    company: " Atea "
    deadline: "2026-02-20"
    lead_hint: "dropped for official postings"
  - company: "Dustin"
    kind: speculative
    lead_hint: "ramavtal"
    location: "Nässjö"
leads:
  - company: "Skanska"
    lead_hint: "kommuner"
`)
	c, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	ps := c.Postings()
	if len(ps) != 1 {
		t.Fatalf("postings = %d, want 1", len(ps))
	}
	if ps[0].Company != "Atea" || ps[0].Kind != domain.KindOfficial || ps[0].Deadline != "2026-02-20" || ps[0].LeadHint != "" {
		t.Errorf("posting = %+v", ps[0])
	}

	ls := c.Leads()
	if len(ls) != 2 {
		t.Fatalf("leads = %d, want 2", len(ls))
	}
	if ls[0].Company != "Dustin" || ls[0].Hint != "ramavtal" || ls[0].Location != "Nässjö" || ls[0].Title != "Spontanansökan" {
		t.Errorf("lead[0] = %+v", ls[0])
	}
	if ls[1].Company != "Skanska" || ls[1].Hint != "kommuner" || ls[1].CommuteEstimate != "-" {
		t.Errorf("lead[1] = %+v", ls[1])
	}
}

func TestParse_Errors(t *testing.T) {
	for name, doc := range map[string]string{
		"bad kind":        "postings:\n  - company: X\n    kind: maybe\n",
		"missing company": "postings:\n  - title: X\n",
		"lead company":    "leads:\n  - lead_hint: X\n",
		"not yaml":        "postings: [",
	} {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoad_FallsBackToSeed(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	seed, _ := Seed()
	if len(c.Postings()) != len(seed.Postings()) {
		t.Errorf("expected seed postings")
	}
}

func TestLoad_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "catalogue.yml")
	if err := os.WriteFile(p, []byte("leads:\n  - company: Knowit\n    lead_hint: konsult\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Postings()) != 0 || len(c.Leads()) != 1 {
		t.Errorf("got %d postings, %d leads", len(c.Postings()), len(c.Leads()))
	}
}

func TestPostingsReturnsCopy(t *testing.T) {
	c, _ := Seed()
	ps := c.Postings()
	ps[0].Company = "mutated"
	if c.Postings()[0].Company == "mutated" {
		t.Error("Postings() must not expose internal slice")
	}
}
