package store

import (
	"strings"

	"jobhunt-reconciler/internal/domain"
)

type HistoryStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	LastSync *string        `json:"last_sync"`
}

const lastSyncLayout = "2006-01-02 15:04"

// Stats summarizes the stored history per status.
func (s *HistoryStore) Stats() HistoryStats {
	records := s.Load()
	st := CountByStatus(records)
	if t, ok := s.LastSync(); ok {
		v := t.Format(lastSyncLayout)
		st.LastSync = &v
	}
	return st
}

func CountByStatus(records []domain.HistoryRecord) HistoryStats {
	st := HistoryStats{
		Total:    len(records),
		ByStatus: make(map[string]int),
	}
	for _, r := range records {
		status := strings.TrimSpace(r.Status)
		if status == "" {
			status = domain.UnknownStatus
		}
		st.ByStatus[status]++
	}
	return st
}
