package client

// PreviewPane shows the selected photo before generation.
type PreviewPane interface {
	ShowImage(src string)
	RestorePlaceholder()
	SetDragging(dragging bool)
}

// ResultPane shows the generated portrait.
type ResultPane interface {
	ShowImage(src string)
	RestorePlaceholder()
	SetBusy(busy bool)
}

// Button is the control that triggers generation.
type Button interface {
	SetEnabled(enabled bool)
	SetLabel(label string)
}

// StatusLine is the element behind a Toast.
type StatusLine interface {
	SetText(text string)
	SetVisible(visible bool)
}
