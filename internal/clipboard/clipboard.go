package clipboard

import (
	"sync"
	"time"
)

// DefaultCopiedTTL is how long the "copied" affordance stays visible.
const DefaultCopiedTTL = 2 * time.Second

// Clipboard receives an opaque string to place on the system clipboard.
type Clipboard interface {
	Write(text string) error
}

// Memory is an in-process clipboard sink.
type Memory struct {
	mu   sync.Mutex
	last string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = text
	return nil
}

// Last returns the most recently written value.
func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Tracker copies values to a clipboard and remembers the last copied
// value for a short window. Every screen shares this to drive its
// temporary checkmark next to the copy button.
type Tracker struct {
	mu    sync.Mutex
	clip  Clipboard
	ttl   time.Duration
	now   func() time.Time
	value string
	at    time.Time
}

// NewTracker wraps a clipboard. A non-positive ttl falls back to
// DefaultCopiedTTL; a nil clock uses time.Now.
func NewTracker(clip Clipboard, ttl time.Duration, now func() time.Time) *Tracker {
	if ttl <= 0 {
		ttl = DefaultCopiedTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Tracker{clip: clip, ttl: ttl, now: now}
}

// Copy writes text to the clipboard and records it as the last copied
// value.
func (t *Tracker) Copy(text string) error {
	if err := t.clip.Write(text); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.value = text
	t.at = t.now()
	return nil
}

// Copied reports whether text was copied within the affordance window.
func (t *Tracker) Copied(text string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value == text && t.now().Sub(t.at) < t.ttl
}
