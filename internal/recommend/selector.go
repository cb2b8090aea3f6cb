// Package recommend picks the next targets to pursue: a few official
// postings whose deadline is coming up, and a few speculative leads, none of
// them at a company the applicant has already engaged.
package recommend

import (
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobhunt-reconciler/internal/domain"
	"jobhunt-reconciler/internal/match"
)

const (
	DefaultWindowDays     = 30
	DefaultMaxOfficial    = 3
	DefaultMaxSpeculative = 3
)

type Options struct {
	// Now pins the clock; the zero value means time.Now().
	Now            time.Time
	WindowDays     int
	MaxOfficial    int
	MaxSpeculative int
}

func DefaultOptions() Options {
	return Options{
		WindowDays:     DefaultWindowDays,
		MaxOfficial:    DefaultMaxOfficial,
		MaxSpeculative: DefaultMaxSpeculative,
	}
}

// Selector samples recommendations with its own random source so that runs
// can be reproduced from a seed. It is safe for concurrent use.
type Selector struct {
	// NewID generates item ids. Defaults to random UUIDs.
	NewID func() string

	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Selector drawing from rng. A nil rng is seeded randomly.
func New(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector{NewID: uuid.NewString, rng: rng}
}

// NewSeeded returns a Selector whose sampling is fully determined by seed.
func NewSeeded(seed uint64) *Selector {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Recommend returns official items first, then speculative ones. Fewer
// candidates than requested is not an error: the list is just shorter.
func (s *Selector) Recommend(history []domain.HistoryRecord, postings []domain.Posting, leads []domain.Lead, opts Options) []domain.RecommendationItem {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	excluded := match.NewSet()
	for _, h := range history {
		excluded.Add(h.Company)
	}

	official := eligibleOfficial(postings, excluded, now, opts.WindowDays)
	speculative := eligibleLeads(leads, excluded)

	s.mu.Lock()
	pickedOfficial := sample(s.rng, official, opts.MaxOfficial)
	pickedLeads := sample(s.rng, speculative, opts.MaxSpeculative)
	s.mu.Unlock()

	log.Printf("[recommend] excluded=%d eligible_official=%d eligible_leads=%d picked=%d+%d",
		len(excluded), len(official), len(speculative), len(pickedOfficial), len(pickedLeads))

	newID := s.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	out := make([]domain.RecommendationItem, 0, len(pickedOfficial)+len(pickedLeads))
	for _, p := range pickedOfficial {
		p.Kind = domain.KindOfficial
		out = append(out, domain.RecommendationItem{
			ID:      newID(),
			Posting: p,
			History: historyInfo(history, p.Company),
		})
	}
	for _, l := range pickedLeads {
		out = append(out, domain.RecommendationItem{
			ID:      newID(),
			Posting: l.Posting(),
			History: historyInfo(history, l.Company),
		})
	}
	return out
}

func eligibleOfficial(postings []domain.Posting, excluded match.Set, now time.Time, windowDays int) []domain.Posting {
	type identity struct{ company, title, link string }
	seen := make(map[identity]bool)

	var out []domain.Posting
	for _, p := range postings {
		if p.Kind != domain.KindOfficial {
			continue
		}
		if excluded.Contains(p.Company) {
			continue
		}
		if !InWindow(p.Deadline, now, windowDays) {
			continue
		}
		id := identity{match.Normalize(p.Company), p.Title, p.Link}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, p)
	}
	return out
}

// eligibleLeads keeps one lead per company, the first listed.
func eligibleLeads(leads []domain.Lead, excluded match.Set) []domain.Lead {
	seen := match.NewSet()
	var out []domain.Lead
	for _, l := range leads {
		if excluded.Contains(l.Company) || seen.Contains(l.Company) {
			continue
		}
		seen.Add(l.Company)
		out = append(out, l)
	}
	return out
}

// sample draws min(k, len(items)) distinct elements uniformly at random
// (partial Fisher-Yates over a copy).
func sample[T any](rng *rand.Rand, items []T, k int) []T {
	n := len(items)
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	cp := append([]T(nil), items...)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		cp[i], cp[j] = cp[j], cp[i]
	}
	return cp[:k]
}
