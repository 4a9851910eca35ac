package client

import (
	"context"
	"sync"

	"github.com/kdduha/apple-portrait/backend/internal/imageref"
)

type fakePreview struct {
	mu           sync.Mutex
	src          string
	shown        []string
	placeholders int
	dragging     bool
}

func (p *fakePreview) ShowImage(src string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.src = src
	p.shown = append(p.shown, src)
}

func (p *fakePreview) RestorePlaceholder() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.src = ""
	p.placeholders++
}

func (p *fakePreview) SetDragging(dragging bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dragging = dragging
}

type fakeResult struct {
	mu           sync.Mutex
	src          string
	placeholders int
	busy         bool
	busyHistory  []bool
}

func (r *fakeResult) ShowImage(src string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src = src
}

func (r *fakeResult) RestorePlaceholder() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src = ""
	r.placeholders++
}

func (r *fakeResult) SetBusy(busy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.busy = busy
	r.busyHistory = append(r.busyHistory, busy)
}

type fakeButton struct {
	mu      sync.Mutex
	enabled bool
	label   string
	calls   int
	labels  []string
}

func newFakeButton() *fakeButton {
	return &fakeButton{enabled: true, label: labelIdle}
}

func (b *fakeButton) SetEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = enabled
	b.calls++
}

func (b *fakeButton) SetLabel(label string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.label = label
	b.labels = append(b.labels, label)
	b.calls++
}

type fakeStatus struct {
	mu      sync.Mutex
	text    string
	visible bool
	texts   []string
}

func (s *fakeStatus) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.texts = append(s.texts, text)
}

func (s *fakeStatus) SetVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = visible
}

func (s *fakeStatus) isVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

type fakeAPI struct {
	calls int
	ref   imageref.Ref
	err   error
	// observed is called while the request is in flight
	observed func()
}

func (a *fakeAPI) Generate(_ context.Context, _ File) (imageref.Ref, error) {
	a.calls++
	if a.observed != nil {
		a.observed()
	}
	return a.ref, a.err
}
