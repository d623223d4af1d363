package menu

import (
	"sync"
	"time"
)

// DefaultSearchDelay is the quiet window applied to live search input.
const DefaultSearchDelay = 250 * time.Millisecond

// Debouncer coalesces a burst of triggers into a single callback fired after
// the delay elapses with no further trigger. Each Trigger re-arms the timer,
// so only the last call within the window takes effect.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet window, cancelling any pending run.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// SearchSession tracks a live query being typed and invokes onQuery once per
// quiet window with the final value, standard debounce semantics.
type SearchSession struct {
	mu      sync.Mutex
	latest  string
	deb     *Debouncer
	onQuery func(string)
}

func NewSearchSession(delay time.Duration, onQuery func(string)) *SearchSession {
	return &SearchSession{
		deb:     NewDebouncer(delay),
		onQuery: onQuery,
	}
}

// Input records a keystroke's resulting query and re-arms the debounce.
func (s *SearchSession) Input(query string) {
	s.mu.Lock()
	s.latest = query
	s.mu.Unlock()

	s.deb.Trigger(func() {
		s.mu.Lock()
		q := s.latest
		s.mu.Unlock()
		s.onQuery(q)
	})
}

// Close cancels any pending recomputation.
func (s *SearchSession) Close() {
	s.deb.Stop()
}
