// Package letter fills fixed email and cover-letter templates for a
// recommended target, mentioning the last interaction with the company when
// the history has one.
package letter

import (
	"strings"
	"text/template"

	"jobhunt-reconciler/internal/domain"
)

type Request struct {
	Company  string      `json:"company"`
	Title    string      `json:"title"`
	Kind     domain.Kind `json:"kind"`
	LeadHint string      `json:"lead_hint,omitempty"`
}

type Letter struct {
	Email  string `json:"email"`
	Letter string `json:"letter"`
}

const (
	fallbackCompany = "organisationen"
	fallbackTitle   = "tjänsten"
)

var letterTmpl = template.Must(template.New("letter").Parse(`Hej {{.Company}}!

{{if .Speculative -}}
Jag skickar en spontanansökan till er och är intresserad av en roll inom anbud och offentlig försäljning.
{{- if .LeadHint}} {{.LeadHint}}{{end}}
{{- else -}}
Jag söker nu rollen som {{.Title}}.
{{- end}}{{.Context}}

Med vänlig hälsning,
{{.Signature}}`))

var emailTmpl = template.Must(template.New("email").Parse(`Ämne: {{if .Speculative}}Spontanansökan{{else}}Ansökan: {{.Title}}{{end}}

Hej,

{{if .Speculative -}}
Jag hör av mig till {{.Company}} med en spontanansökan.
{{- else -}}
Jag vill söka rollen som {{.Title}} hos {{.Company}}.
{{- end}}{{.Context}} Mitt personliga brev finns bifogat.

Med vänlig hälsning,
{{.Signature}}`))

type view struct {
	Company     string
	Title       string
	LeadHint    string
	Speculative bool
	Context     string
	Signature   string
}

type Generator struct {
	Signature string
}

// Generate renders both texts. last is the most recent history record for
// the company, or nil.
func (g Generator) Generate(req Request, last *domain.HistoryRecord) (Letter, error) {
	v := view{
		Company:     orDefault(req.Company, fallbackCompany),
		Title:       orDefault(req.Title, fallbackTitle),
		LeadHint:    strings.TrimSpace(req.LeadHint),
		Speculative: req.Kind == domain.KindSpeculative,
		Context:     contextSentence(last),
		Signature:   g.Signature,
	}

	var letter, email strings.Builder
	if err := letterTmpl.Execute(&letter, v); err != nil {
		return Letter{}, err
	}
	if err := emailTmpl.Execute(&email, v); err != nil {
		return Letter{}, err
	}
	return Letter{Email: email.String(), Letter: letter.String()}, nil
}

func contextSentence(last *domain.HistoryRecord) string {
	if last == nil {
		return ""
	}
	year := truncateRunes(last.AppliedDate, 4)
	return " Jag har tidigare haft kontakt med er angående rollen som " + last.Title +
		" under " + year + " och är fortsatt mycket intresserad av att bidra till er verksamhet."
}

// truncateRunes keeps at most n runes of s.
func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
