package menu

import (
	"sync"
	"testing"
	"time"
)

func TestSearchSessionCoalescesKeystrokes(t *testing.T) {
	var mu sync.Mutex
	var fired []string

	session := NewSearchSession(250*time.Millisecond, func(q string) {
		mu.Lock()
		fired = append(fired, q)
		mu.Unlock()
	})
	defer session.Close()

	// Three keystrokes faster than the debounce window.
	for _, q := range []string{"m", "mo", "moj"} {
		session.Input(q)
		time.Sleep(100 * time.Millisecond)
	}

	// Allow the final quiet window to elapse.
	time.Sleep(400 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(fired) != 1 {
		t.Fatalf("recomputed %d times, want exactly 1 (got %v)", len(fired), fired)
	}
	if fired[0] != "moj" {
		t.Errorf("recomputed with %q, want final value %q", fired[0], "moj")
	}
}

func TestSearchSessionFiresAgainAfterQuiet(t *testing.T) {
	var mu sync.Mutex
	var fired []string

	session := NewSearchSession(50*time.Millisecond, func(q string) {
		mu.Lock()
		fired = append(fired, q)
		mu.Unlock()
	})
	defer session.Close()

	session.Input("mojito")
	time.Sleep(120 * time.Millisecond)
	session.Input("margarita")
	time.Sleep(120 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(fired) != 2 || fired[0] != "mojito" || fired[1] != "margarita" {
		t.Errorf("fired = %v, want [mojito margarita]", fired)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var mu sync.Mutex
	count := 0

	d := NewDebouncer(50 * time.Millisecond)
	d.Trigger(func() {
		mu.Lock()
		count++
		mu.Unlock()
	})
	d.Stop()

	time.Sleep(120 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if count != 0 {
		t.Errorf("stopped debouncer still fired %d times", count)
	}
}
