package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/kdduha/apple-portrait/backend/internal/imageref"
)

const (
	generatePath = "/api/generate"
	photoField   = "photo"
)

var ErrNoImage = errors.New(msgNoImage)

// StatusError is a non-2xx answer from the generate endpoint.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return e.Message
}

// API talks to the generate endpoint.
type API struct {
	httpClient *http.Client
	endpoint   string
}

func NewAPI(baseURL string, timeout time.Duration) *API {
	return &API{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   strings.TrimRight(baseURL, "/") + generatePath,
	}
}

func (a *API) Generate(ctx context.Context, file File) (imageref.Ref, error) {
	body, contentType, err := encodePhoto(file)
	if err != nil {
		return imageref.Ref{}, fmt.Errorf("failed to build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, body)
	if err != nil {
		return imageref.Ref{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return imageref.Ref{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return imageref.Ref{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return imageref.Ref{}, &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	var fields map[string]any
	if err := sonic.Unmarshal(raw, &fields); err != nil {
		return imageref.Ref{}, fmt.Errorf("invalid response: %w", err)
	}

	ref, ok := imageref.FromResponse(fields)
	if !ok {
		return imageref.Ref{}, ErrNoImage
	}
	return ref, nil
}

func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := sonic.Unmarshal(raw, &body); err != nil || body.Message == "" {
		return msgFailed
	}
	return body.Message
}

func encodePhoto(file File) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		photoField, quoteEscaper.Replace(file.Name)))
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")
