package portal

import (
	"context"
	"sync"
	"time"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/ports"
)

// DefaultSearchDebounce is how long the searcher waits after the last
// keystroke before issuing a geocoder request.
const DefaultSearchDebounce = 500 * time.Millisecond

// addressSearch debounces free-text address queries and guards against
// out-of-order responses. Each issued request carries a sequence number;
// a response is delivered only if no newer search has started since, so a
// slow early response can never overwrite fresher results.
type addressSearch struct {
	geocoder ports.Geocoder
	delay    time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func newAddressSearch(geocoder ports.Geocoder, delay time.Duration) *addressSearch {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}

	return &addressSearch{
		geocoder: geocoder,
		delay:    delay,
	}
}

// Search schedules a geocoder lookup for query after the debounce delay.
// A newer Search call supersedes any pending or in-flight one; superseded
// results are discarded without invoking deliver. deliver runs on the
// searcher's goroutine.
func (s *addressSearch) Search(
	ctx context.Context,
	query string,
	deliver func(results []session.Address, err error),
) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	s.seq++
	seq := s.seq

	s.timer = time.AfterFunc(s.delay, func() {
		if !s.isLatest(seq) {
			return
		}

		results, err := s.geocoder.Search(ctx, query)

		if !s.isLatest(seq) {
			return
		}

		deliver(results, err)
	})
}

// Cancel drops any pending search without delivering results.
func (s *addressSearch) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	s.seq++
}

func (s *addressSearch) isLatest(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.seq
}
