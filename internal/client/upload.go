package client

import (
	"context"
	"encoding/base64"
	"sync"
)

// PreviewReader turns a file into something an image element can show.
type PreviewReader interface {
	ReadDataURL(ctx context.Context, file File) (string, error)
}

// DataURLReader encodes the file bytes as a data URI.
type DataURLReader struct{}

func (DataURLReader) ReadDataURL(_ context.Context, file File) (string, error) {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(file.Data), nil
}

// UploadController owns file selection and the preview pane.
type UploadController struct {
	state   *State
	preview PreviewPane
	result  ResultPane
	reader  PreviewReader

	reads sync.WaitGroup
}

func NewUploadController(state *State, preview PreviewPane, result ResultPane, reader PreviewReader) *UploadController {
	if reader == nil {
		reader = DataURLReader{}
	}
	return &UploadController{
		state:   state,
		preview: preview,
		result:  result,
		reader:  reader,
	}
}

// Select makes file the current one. A nil file clears the selection and
// restores both panes.
func (c *UploadController) Select(file *File) {
	seq := c.state.selectFile(file)
	if file == nil {
		c.preview.RestorePlaceholder()
		c.result.RestorePlaceholder()
		return
	}

	f := *file
	c.reads.Add(1)
	go func() {
		defer c.reads.Done()
		src, err := c.reader.ReadDataURL(context.Background(), f)
		if err != nil {
			return
		}
		c.applyPreview(seq, src)
	}()
}

func (c *UploadController) applyPreview(seq uint64, src string) {
	// hold the state lock so a concurrent Select cannot slip in between
	// the check and the render
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	if c.state.seq != seq || c.state.file == nil {
		return
	}
	c.preview.ShowImage(src)
}

func (c *UploadController) DragEnter() {
	c.preview.SetDragging(true)
}

func (c *UploadController) DragOver() {
	c.preview.SetDragging(true)
}

func (c *UploadController) DragLeave() {
	c.preview.SetDragging(false)
}

// Drop clears the dragging indicator and selects the first dropped file.
// An empty drop leaves the current selection alone.
func (c *UploadController) Drop(files []File) {
	c.preview.SetDragging(false)
	if len(files) == 0 {
		return
	}
	first := files[0]
	c.Select(&first)
}

// Wait blocks until all started preview reads have finished.
func (c *UploadController) Wait() {
	c.reads.Wait()
}
