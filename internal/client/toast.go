package client

import (
	"sync"
	"time"
)

const ToastDuration = 3200 * time.Millisecond

// Toast shows a transient status message. Showing a new message restarts
// the hide timer instead of queueing.
type Toast struct {
	mu       sync.Mutex
	line     StatusLine
	duration time.Duration
	timer    *time.Timer
	gen      uint64
}

func NewToast(line StatusLine, duration time.Duration) *Toast {
	if duration <= 0 {
		duration = ToastDuration
	}
	return &Toast{line: line, duration: duration}
}

func (t *Toast) Show(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.line.SetText(msg)
	t.line.SetVisible(true)

	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen
	t.timer = time.AfterFunc(t.duration, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		// a newer Show may have raced with Stop
		if gen == t.gen {
			t.line.SetVisible(false)
		}
	})
}

// Stop hides the toast immediately and cancels the pending timer.
func (t *Toast) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	t.line.SetVisible(false)
}
