package importer

import (
	"sort"
	"strings"

	"jobhunt-reconciler/internal/domain"
)

// Row is one raw tabular record keyed by its source column label.
type Row map[string]string

// Column aliases in priority order. Exports come from Swedish and English
// Notion workspaces, so both spellings are accepted.
var (
	companyAliases = []string{"Företag", "Company", "Name", "Namn"}
	titleAliases   = []string{"Position", "Title", "Roll", "Tjänst"}
	dateAliases    = []string{"Datum", "Date", "Applied"}
	statusAliases  = []string{"Status"}
	urlAliases     = []string{"URL", "Link"}
	notesAliases   = []string{"Notes", "Kommentar"}
)

// NormalizeRow maps a raw row onto the canonical history schema. It never
// fails: missing or blank cells fall back to defaults. A label spelled
// exactly like an alias beats one that only matches after case folding.
func NormalizeRow(row Row) domain.HistoryRecord {
	labels := make([]string, 0, len(row))
	for label := range row {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	c := cells{exact: make(map[string]string, len(row)), folded: make(map[string]string, len(row))}
	for _, label := range labels {
		v := cleanCell(row[label])
		if v == "" {
			continue
		}
		t := trimLabel(label)
		if _, ok := c.exact[t]; !ok {
			c.exact[t] = v
		}
		if k := strings.ToLower(t); c.folded[k] == "" {
			c.folded[k] = v
		}
	}

	return domain.HistoryRecord{
		Company:     c.pick(domain.UnknownCompany, companyAliases),
		Title:       c.pick(domain.DefaultTitle, titleAliases),
		AppliedDate: c.pick(domain.DefaultAppliedDate, dateAliases),
		Status:      c.pick(domain.DefaultStatus, statusAliases),
		URL:         c.pick("", urlAliases),
		Notes:       c.pick("", notesAliases),
	}
}

// NormalizeAll returns exactly one record per row, in order.
func NormalizeAll(rows []Row) []domain.HistoryRecord {
	out := make([]domain.HistoryRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, NormalizeRow(r))
	}
	return out
}

type cells struct {
	exact  map[string]string
	folded map[string]string
}

func (c cells) pick(def string, aliases []string) string {
	for _, a := range aliases {
		if v := c.exact[a]; v != "" {
			return v
		}
		if v := c.folded[strings.ToLower(a)]; v != "" {
			return v
		}
	}
	return def
}

func trimLabel(label string) string {
	return strings.TrimSpace(strings.TrimPrefix(label, "\ufeff"))
}

func cleanCell(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(s)
}
