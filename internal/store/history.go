package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gofrs/flock"

	"jobhunt-reconciler/internal/domain"
)

// HistoryStore persists the imported application history as a single JSON
// document. ReplaceAll swaps the whole document; Load never observes a
// partially written file.
//
// Writers hold the in-process lock and a file lock, so a second engine
// process sharing the data dir cannot interleave imports. Readers rely on the
// write-to-temp-then-rename swap and only take the in-process read lock.
type HistoryStore struct {
	path string
	mu   sync.RWMutex
	lock *flock.Flock
}

func OpenHistory(path string) (*HistoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("history dir: %w", err)
	}
	return &HistoryStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (s *HistoryStore) Path() string { return s.path }

// ErrInvalidText is returned by ReplaceAll when a record holds bytes that
// are not UTF-8. JSON cannot carry them, so they would not survive a Load.
var ErrInvalidText = errors.New("history text is not valid UTF-8")

// ReplaceAll overwrites the stored history with records.
func (s *HistoryStore) ReplaceAll(records []domain.HistoryRecord) error {
	if records == nil {
		records = []domain.HistoryRecord{}
	}
	if err := checkText(records); err != nil {
		return err
	}
	b, err := encodeHistory(records)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock history: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	tmp := s.path + ".tmp"
	if err := writeFileSync(tmp, b); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace history: %w", err)
	}
	log.Printf("[store] history replaced records=%d path=%s", len(records), s.path)
	return nil
}

// Load returns the last written snapshot. A missing, unreadable or corrupt
// file yields an empty history; the failure is logged, not returned.
func (s *HistoryStore) Load() []domain.HistoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.HistoryRecord{}
	}
	if err != nil {
		log.Printf("level=warn msg=\"history unreadable\" path=%s err=%v", s.path, err)
		return []domain.HistoryRecord{}
	}

	var out []domain.HistoryRecord
	if err := json.Unmarshal(b, &out); err != nil {
		log.Printf("level=warn msg=\"history corrupt\" path=%s err=%v", s.path, err)
		return []domain.HistoryRecord{}
	}
	if out == nil {
		out = []domain.HistoryRecord{}
	}
	return out
}

// LastSync is the time of the last successful import, if any.
func (s *HistoryStore) LastSync() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fi, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}, false
	}
	return fi.ModTime(), true
}

func checkText(records []domain.HistoryRecord) error {
	for i, r := range records {
		for _, v := range []string{r.Company, r.Title, r.AppliedDate, r.Status, r.URL, r.Notes} {
			if !utf8.ValidString(v) {
				return fmt.Errorf("record %d: %w", i, ErrInvalidText)
			}
		}
	}
	return nil
}

func encodeHistory(records []domain.HistoryRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFileSync(path string, b []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
