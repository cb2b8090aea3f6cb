// Package catalogue holds the static set of candidate postings and
// speculative leads the recommender draws from. It is loaded once at start.
package catalogue

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"jobhunt-reconciler/internal/domain"
)

//go:embed seed.yml
var seedYAML []byte

// Source is what the recommender needs from a catalogue.
type Source interface {
	Postings() []domain.Posting
	Leads() []domain.Lead
}

type file struct {
	SpeculativeDefaults struct {
		Title    string `yaml:"title"`
		Location string `yaml:"location"`
		Commute  string `yaml:"commute"`
	} `yaml:"speculative_defaults"`
	Postings []domain.Posting `yaml:"postings"`
	Leads    []domain.Lead    `yaml:"leads"`
}

type Catalogue struct {
	postings []domain.Posting
	leads    []domain.Lead
}

// Seed returns the catalogue compiled into the binary.
func Seed() (*Catalogue, error) {
	return Parse(seedYAML)
}

// Load reads a catalogue file. An empty path or a missing file falls back to
// the built-in seed.
func Load(path string) (*Catalogue, error) {
	if strings.TrimSpace(path) == "" {
		return Seed()
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("[catalogue] %s not found, using built-in seed", path)
		return Seed()
	}
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("catalogue %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalogue document. Postings without a kind are official;
// postings of kind speculative are exposed as leads.
func Parse(b []byte) (*Catalogue, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}

	c := &Catalogue{}
	for i, p := range f.Postings {
		p.Company = strings.TrimSpace(p.Company)
		if p.Company == "" {
			return nil, fmt.Errorf("postings[%d].company is required", i)
		}
		switch p.Kind {
		case "", domain.KindOfficial:
			p.Kind = domain.KindOfficial
			p.LeadHint = ""
			c.postings = append(c.postings, p)
		case domain.KindSpeculative:
			c.leads = append(c.leads, domain.Lead{
				Company:         p.Company,
				Hint:            p.LeadHint,
				Title:           p.Title,
				Location:        p.Location,
				CommuteEstimate: p.CommuteEstimate,
				Link:            p.Link,
			})
		default:
			return nil, fmt.Errorf("postings[%d].kind %q must be official or speculative", i, p.Kind)
		}
	}

	for i, l := range f.Leads {
		l.Company = strings.TrimSpace(l.Company)
		if l.Company == "" {
			return nil, fmt.Errorf("leads[%d].company is required", i)
		}
		c.leads = append(c.leads, l)
	}

	d := f.SpeculativeDefaults
	for i := range c.leads {
		l := &c.leads[i]
		if l.Title == "" {
			l.Title = d.Title
		}
		if l.Location == "" {
			l.Location = d.Location
		}
		if l.CommuteEstimate == "" {
			l.CommuteEstimate = d.Commute
		}
	}
	return c, nil
}

// Postings returns the official postings. The slice is a copy.
func (c *Catalogue) Postings() []domain.Posting {
	return append([]domain.Posting(nil), c.postings...)
}

// Leads returns the speculative targets. The slice is a copy.
func (c *Catalogue) Leads() []domain.Lead {
	return append([]domain.Lead(nil), c.leads...)
}
