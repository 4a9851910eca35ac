package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kdduha/apple-portrait/backend/internal/metrics"
	"github.com/kdduha/apple-portrait/backend/internal/models"
	"github.com/kdduha/apple-portrait/backend/internal/service"
	"github.com/rs/zerolog"
)

const (
	// MaxUploadBytes bounds a single uploaded photo.
	MaxUploadBytes = 12 << 20

	// extra room for the multipart envelope around the photo
	formOverhead = 1 << 20

	photoField = "photo"
)

const (
	msgNoFile      = "请上传一张照片。"
	msgTooLarge    = "照片过大，请上传不超过 12 MB 的图片。"
	msgInternal    = "服务器内部错误，请稍后重试。"
	msgInvalidForm = "无法解析上传内容。"
)

type generateService interface {
	Generate(ctx context.Context, file models.UploadedFile) (*models.GenerationResult, error)
}

type GenerateHandler struct {
	service generateService
	logger  zerolog.Logger
}

func NewGenerateHandler(service generateService, logger zerolog.Logger) *GenerateHandler {
	return &GenerateHandler{
		service: service,
		logger:  logger,
	}
}

// Generate godoc
// @Summary Generate portrait
// @Description Upload a photo and receive an Apple executive style portrait.
// @Description Exactly one of imageUrl, imageDataUrl or image_base64 is set on success.
// @Tags generate
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Photo to transform (max 12 MB)"
// @Success 200 {object} models.GenerationResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/generate [post]
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes+formOverhead)

	upload, status, msg := readUpload(r)
	if status != 0 {
		writeJSON(w, status, models.ErrorResponse{Message: msg})
		return
	}
	metrics.UploadBytes(len(upload.Data))

	res, err := h.service.Generate(r.Context(), upload)
	if err != nil {
		h.logError(r, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Message: errorMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// readUpload returns a non-zero status together with a user facing message
// when the request carries no usable photo.
func readUpload(r *http.Request) (models.UploadedFile, int, string) {
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return models.UploadedFile{}, http.StatusRequestEntityTooLarge, msgTooLarge
		case errors.Is(err, http.ErrNotMultipart):
			return models.UploadedFile{}, http.StatusBadRequest, msgNoFile
		default:
			return models.UploadedFile{}, http.StatusBadRequest, msgInvalidForm
		}
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(photoField)
	if err != nil {
		return models.UploadedFile{}, http.StatusBadRequest, msgNoFile
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes+1))
	if err != nil {
		return models.UploadedFile{}, http.StatusBadRequest, msgInvalidForm
	}
	if len(data) > MaxUploadBytes {
		return models.UploadedFile{}, http.StatusRequestEntityTooLarge, msgTooLarge
	}

	return models.UploadedFile{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}, 0, ""
}

func (h *GenerateHandler) logError(r *http.Request, err error) {
	event := h.logger.Error().
		Err(err).
		Str("request_id", middleware.GetReqID(r.Context()))

	var perr *service.ProviderError
	if errors.As(err, &perr) {
		event = event.Str("kind", string(perr.Kind))
		if perr.StatusCode != 0 {
			event = event.Int("upstream_status", perr.StatusCode)
		}
	}
	event.Msg("generate failed")
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return msgInternal
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to encode: %s", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
