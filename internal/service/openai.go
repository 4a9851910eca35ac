package service

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/kdduha/apple-portrait/backend/internal/config"
	"github.com/kdduha/apple-portrait/backend/internal/imageref"
	"github.com/kdduha/apple-portrait/backend/internal/models"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIProvider sends the photo to an OpenAI compatible images edit API.
type OpenAIProvider struct {
	openaiClient openai.Client
	modelName    string
}

func NewOpenAIProvider(cfg config.ProviderConfig) *OpenAIProvider {
	return &OpenAIProvider{
		openaiClient: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.URL),
			option.WithRequestTimeout(cfg.Timeout),
			option.WithMaxRetries(0),
		),
		modelName: cfg.OpenAIModel,
	}
}

func (p *OpenAIProvider) Name() string {
	return config.ProviderOpenAI
}

func (p *OpenAIProvider) Generate(ctx context.Context, req models.GenerationRequest) (imageref.Ref, error) {
	params := openai.ImageEditParams{
		Image: openai.ImageEditParamsImageUnion{
			OfFile: openai.File(bytes.NewReader(req.Image.Data), req.Image.Filename, req.Image.ContentType),
		},
		Prompt: openAIPrompt(req),
		Model:  openai.ImageModel(p.modelName),
	}

	resp, err := p.openaiClient.Images.Edit(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return imageref.Ref{}, &ProviderError{
				Kind:       UpstreamStatus,
				StatusCode: apiErr.StatusCode,
				Body:       apiErr.Message,
				Err:        err,
			}
		}
		return imageref.Ref{}, &ProviderError{Kind: NetworkFailure, Err: err}
	}

	if len(resp.Data) == 0 {
		return imageref.Ref{}, &ProviderError{Kind: UnrecognizedResponse}
	}

	ref, ok := imageref.FromFields(map[string]any{
		"image_url":    resp.Data[0].URL,
		"image_base64": resp.Data[0].B64JSON,
	})
	if !ok {
		return imageref.Ref{}, &ProviderError{Kind: UnrecognizedResponse}
	}
	return ref, nil
}

// openAIPrompt folds the negative prompt into the instruction, the images
// API has no separate field for it.
func openAIPrompt(req models.GenerationRequest) string {
	negative := strings.TrimSpace(req.NegativePrompt)
	if negative == "" {
		return req.Prompt
	}
	return req.Prompt + "\nAvoid: " + negative
}
