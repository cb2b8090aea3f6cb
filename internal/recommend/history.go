package recommend

import (
	"jobhunt-reconciler/internal/domain"
	"jobhunt-reconciler/internal/match"
)

// Latest returns the most recent history record for company. Recency is the
// lexicographic order of AppliedDate; the earliest record wins ties.
func Latest(history []domain.HistoryRecord, company string) (domain.HistoryRecord, bool) {
	key := match.Normalize(company)
	var best domain.HistoryRecord
	found := false
	for _, h := range history {
		if match.Normalize(h.Company) != key {
			continue
		}
		if !found || h.AppliedDate > best.AppliedDate {
			best = h
			found = true
		}
	}
	return best, found
}

func historyInfo(history []domain.HistoryRecord, company string) *domain.HistoryInfo {
	h, ok := Latest(history, company)
	if !ok {
		return nil
	}
	return &domain.HistoryInfo{
		LastAppliedDate: h.AppliedDate,
		LastStatus:      h.Status,
	}
}
