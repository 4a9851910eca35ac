package client

import (
	"context"
	"errors"
	"testing"

	"github.com/kdduha/apple-portrait/backend/internal/imageref"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	state   *State
	preview *fakePreview
	result  *fakeResult
	button  *fakeButton
	status  *fakeStatus
	upload  *UploadController
	ctrl    *ResultController
}

func newHarness(api generator) *harness {
	h := &harness{
		state:   NewState(),
		preview: &fakePreview{},
		result:  &fakeResult{},
		button:  newFakeButton(),
		status:  &fakeStatus{},
	}
	h.upload = NewUploadController(h.state, h.preview, h.result, nil)
	h.ctrl = NewResultController(h.state, api, h.result, h.button, NewToast(h.status, 0), zerolog.Nop())
	return h
}

func (h *harness) assertIdleControls(t *testing.T) {
	t.Helper()
	assert.True(t, h.button.enabled)
	assert.Equal(t, labelIdle, h.button.label)
	assert.False(t, h.result.busy)
}

func TestGenerateWithoutFile(t *testing.T) {
	api := &fakeAPI{}
	h := newHarness(api)

	err := h.ctrl.Generate(context.Background())

	assert.ErrorIs(t, err, ErrNoFile)
	assert.Zero(t, api.calls)
	assert.Equal(t, msgUploadFirst, h.status.text)
	assert.Zero(t, h.button.calls)
	assert.True(t, h.button.enabled)
}

func TestGenerateSuccessRendersImage(t *testing.T) {
	api := &fakeAPI{ref: imageref.Ref{Kind: imageref.Base64, Value: "Zm9v"}}
	h := newHarness(api)

	api.observed = func() {
		assert.False(t, h.button.enabled)
		assert.Equal(t, labelBusy, h.button.label)
		assert.True(t, h.result.busy)
		assert.Equal(t, msgGenerating, h.status.text)
		assert.Equal(t, Loading, h.state.Snapshot().UI)
	}

	h.upload.Select(&photo)
	h.upload.Wait()
	require.NoError(t, h.ctrl.Generate(context.Background()))

	assert.Equal(t, "data:image/png;base64,Zm9v", h.result.src)
	assert.Equal(t, msgDone, h.status.text)
	snap := h.state.Snapshot()
	assert.Equal(t, Success, snap.UI)
	assert.Equal(t, "data:image/png;base64,Zm9v", snap.ImageSrc)
	h.assertIdleControls(t)
}

func TestGenerateFailureRestoresPlaceholder(t *testing.T) {
	api := &fakeAPI{err: &StatusError{StatusCode: 500, Message: "生成服务响应异常：503 overloaded"}}
	h := newHarness(api)

	h.upload.Select(&photo)
	h.upload.Wait()
	err := h.ctrl.Generate(context.Background())

	require.Error(t, err)
	assert.Empty(t, h.result.src)
	assert.Equal(t, 2, h.result.placeholders)
	assert.Equal(t, "生成服务响应异常：503 overloaded", h.status.text)
	snap := h.state.Snapshot()
	assert.Equal(t, Error, snap.UI)
	assert.Equal(t, "生成服务响应异常：503 overloaded", snap.Err)
	assert.Equal(t, []bool{true, false}, h.result.busyHistory)
	h.assertIdleControls(t)
}

func TestGenerateRejectsOverlap(t *testing.T) {
	api := &fakeAPI{ref: imageref.Ref{Kind: imageref.URL, Value: "https://cdn.test/p.png"}}
	h := newHarness(api)

	var nested error
	api.observed = func() {
		nested = h.ctrl.Generate(context.Background())
	}

	h.upload.Select(&photo)
	require.NoError(t, h.ctrl.Generate(context.Background()))

	assert.True(t, errors.Is(nested, ErrInFlight))
	assert.Equal(t, 1, api.calls)
}

func TestGenerateRejectsOverlapAfterReselect(t *testing.T) {
	api := &fakeAPI{ref: imageref.Ref{Kind: imageref.URL, Value: "https://cdn.test/p.png"}}
	h := newHarness(api)
	other := File{Name: "other.png", ContentType: "image/png", Data: []byte("png")}

	var nested error
	api.observed = func() {
		h.upload.Select(nil)
		assert.Equal(t, Loading, h.state.Snapshot().UI)
		h.upload.Select(&other)
		assert.Equal(t, Loading, h.state.Snapshot().UI)
		nested = h.ctrl.Generate(context.Background())
	}

	h.upload.Select(&photo)
	require.NoError(t, h.ctrl.Generate(context.Background()))
	h.upload.Wait()

	assert.ErrorIs(t, nested, ErrInFlight)
	assert.Equal(t, 1, api.calls)
	assert.Same(t, &other, h.state.File())
	h.assertIdleControls(t)
}

func TestGenerateAfterSuccessCanRunAgain(t *testing.T) {
	api := &fakeAPI{ref: imageref.Ref{Kind: imageref.URL, Value: "https://cdn.test/p.png"}}
	h := newHarness(api)

	h.upload.Select(&photo)
	require.NoError(t, h.ctrl.Generate(context.Background()))
	require.NoError(t, h.ctrl.Generate(context.Background()))

	assert.Equal(t, 2, api.calls)
	assert.Equal(t, "https://cdn.test/p.png", h.result.src)
}
