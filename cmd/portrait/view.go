package main

import (
	"fmt"
	"io"
	"sync"
)

// terminalView prints every UI change as a line of text.
type terminalView struct {
	mu sync.Mutex
	w  io.Writer
}

func newTerminalView(w io.Writer) *terminalView {
	return &terminalView{w: w}
}

func (v *terminalView) printf(format string, args ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.w, format+"\n", args...)
}

// result pane

func (v *terminalView) ShowImage(src string) {
	v.printf("[result] %s", shorten(src))
}

func (v *terminalView) RestorePlaceholder() {}

func (v *terminalView) SetBusy(busy bool) {
	if busy {
		v.printf("[result] ...")
	}
}

// button

func (v *terminalView) SetEnabled(bool) {}

func (v *terminalView) SetLabel(label string) {
	v.printf("[button] %s", label)
}

// status line

func (v *terminalView) SetText(text string) {
	v.printf("[status] %s", text)
}

func (v *terminalView) SetVisible(bool) {}

func (v *terminalView) preview() *previewView {
	return &previewView{view: v}
}

type previewView struct {
	view *terminalView
}

func (p *previewView) ShowImage(src string) {
	p.view.printf("[preview] %s", shorten(src))
}

func (p *previewView) RestorePlaceholder() {
	p.view.printf("[preview] (empty)")
}

func (p *previewView) SetDragging(bool) {}

func shorten(src string) string {
	const limit = 72
	if len(src) <= limit {
		return src
	}
	return fmt.Sprintf("%s... (%d bytes)", src[:limit], len(src))
}
