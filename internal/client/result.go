package client

import (
	"context"
	"errors"

	"github.com/kdduha/apple-portrait/backend/internal/imageref"
	"github.com/rs/zerolog"
)

type generator interface {
	Generate(ctx context.Context, file File) (imageref.Ref, error)
}

// ResultController runs one generation attempt at a time and keeps the
// button, result pane and toast consistent on every exit path.
type ResultController struct {
	state  *State
	api    generator
	result ResultPane
	button Button
	toast  *Toast
	logger zerolog.Logger
}

func NewResultController(state *State, api generator, result ResultPane, button Button, toast *Toast, logger zerolog.Logger) *ResultController {
	return &ResultController{
		state:  state,
		api:    api,
		result: result,
		button: button,
		toast:  toast,
		logger: logger,
	}
}

func (c *ResultController) Generate(ctx context.Context) error {
	file, err := c.state.beginLoading()
	if err != nil {
		if errors.Is(err, ErrNoFile) {
			c.toast.Show(msgUploadFirst)
		}
		return err
	}

	c.button.SetEnabled(false)
	c.button.SetLabel(labelBusy)
	c.result.RestorePlaceholder()
	c.result.SetBusy(true)
	c.toast.Show(msgGenerating)

	defer func() {
		c.result.SetBusy(false)
		c.button.SetEnabled(true)
		c.button.SetLabel(labelIdle)
	}()

	ref, err := c.api.Generate(ctx, *file)
	if err != nil {
		c.result.RestorePlaceholder()
		c.state.fail(err.Error())
		c.toast.Show(err.Error())
		c.logger.Error().Err(err).Str("file", file.Name).Msg("generation failed")
		return err
	}

	src := ref.Src()
	c.result.ShowImage(src)
	c.state.succeed(src)
	c.toast.Show(msgDone)
	return nil
}
