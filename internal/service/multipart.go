package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/kdduha/apple-portrait/backend/internal/config"
	"github.com/kdduha/apple-portrait/backend/internal/imageref"
	"github.com/kdduha/apple-portrait/backend/internal/models"
)

// MultipartProvider posts the photo as multipart/form-data to a generic
// generation endpoint and understands url, base64, output-array and raw
// binary responses.
type MultipartProvider struct {
	httpClient *http.Client
	url        string
	apiKey     string
}

func NewMultipartProvider(cfg config.ProviderConfig) *MultipartProvider {
	return &MultipartProvider{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		url:        cfg.URL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
	}
}

func (p *MultipartProvider) Name() string {
	return config.ProviderMultipart
}

func (p *MultipartProvider) Generate(ctx context.Context, req models.GenerationRequest) (imageref.Ref, error) {
	body, contentType, err := buildMultipartBody(req)
	if err != nil {
		return imageref.Ref{}, fmt.Errorf("failed to build request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, body)
	if err != nil {
		return imageref.Ref{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return imageref.Ref{}, &ProviderError{Kind: NetworkFailure, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return imageref.Ref{}, &ProviderError{Kind: NetworkFailure, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return imageref.Ref{}, &ProviderError{
			Kind:       UpstreamStatus,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	return parseProviderBody(raw)
}

// parseProviderBody normalizes a successful provider response. A body that
// is not JSON is the image itself.
func parseProviderBody(raw []byte) (imageref.Ref, error) {
	var decoded any
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		if len(raw) == 0 {
			return imageref.Ref{}, &ProviderError{Kind: UnrecognizedResponse}
		}
		return imageref.EncodeBytes(raw), nil
	}

	fields, _ := decoded.(map[string]any)
	ref, ok := imageref.FromFields(fields)
	if !ok {
		return imageref.Ref{}, &ProviderError{Kind: UnrecognizedResponse}
	}
	return ref, nil
}

func buildMultipartBody(req models.GenerationRequest) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField(fieldPrompt, req.Prompt); err != nil {
		return nil, "", fmt.Errorf("failed to write %s: %w", fieldPrompt, err)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		fieldImage, quoteEscaper.Replace(req.Image.Filename)))
	h.Set("Content-Type", req.Image.ContentType)

	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create %s part: %w", fieldImage, err)
	}
	if _, err := part.Write(req.Image.Data); err != nil {
		return nil, "", fmt.Errorf("failed to write %s: %w", fieldImage, err)
	}

	if req.NegativePrompt != "" {
		if err := writer.WriteField(fieldNegativePrompt, req.NegativePrompt); err != nil {
			return nil, "", fmt.Errorf("failed to write %s: %w", fieldNegativePrompt, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close writer: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")
