package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kdduha/apple-portrait/backend/internal/config"
	"github.com/kdduha/apple-portrait/backend/internal/imageref"
	"github.com/kdduha/apple-portrait/backend/internal/metrics"
	"github.com/kdduha/apple-portrait/backend/internal/models"
	"github.com/rs/zerolog"
)

// Provider performs one round trip to an image generation backend.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req models.GenerationRequest) (imageref.Ref, error)
}

type GenerateService struct {
	logger         zerolog.Logger
	provider       Provider
	negativePrompt string
}

// NewGenerateService picks the provider from cfg. Without a provider URL the
// service stays in demo mode and answers with PlaceholderURL.
func NewGenerateService(logger zerolog.Logger, cfg config.ProviderConfig) *GenerateService {
	s := &GenerateService{
		logger:         logger,
		negativePrompt: cfg.NegativePrompt,
	}
	if !cfg.Configured() {
		return s
	}

	switch cfg.Kind {
	case config.ProviderOpenAI:
		s.provider = NewOpenAIProvider(cfg)
	default:
		s.provider = NewMultipartProvider(cfg)
	}
	return s
}

func (s *GenerateService) SetProvider(provider Provider) {
	s.provider = provider
}

func (s *GenerateService) Generate(ctx context.Context, file models.UploadedFile) (*models.GenerationResult, error) {
	if s.provider == nil {
		metrics.GenerationTotal(kindDemo, outcomeDemo)
		s.logger.Debug().Msg("no provider configured, returning placeholder")
		return &models.GenerationResult{ImageURL: PlaceholderURL, Fallback: true}, nil
	}

	req := s.buildRequest(file)
	log := s.logger.With().
		Str("generation_id", uuid.NewString()).
		Str("provider", s.provider.Name()).
		Str("filename", req.Image.Filename).
		Int("size", len(req.Image.Data)).
		Logger()

	log.Info().Msg("start generation")
	start := time.Now()

	ref, err := s.provider.Generate(ctx, req)
	if err != nil {
		metrics.GenerationTotal(s.provider.Name(), outcomeFailure)
		metrics.GenerationDuration(s.provider.Name(), outcomeFailure, time.Since(start))
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("generation failed")
		return nil, err
	}

	metrics.GenerationTotal(s.provider.Name(), outcomeSuccess)
	metrics.GenerationDuration(s.provider.Name(), outcomeSuccess, time.Since(start))
	log.Info().Str("ref_kind", ref.Kind.String()).Dur("elapsed", time.Since(start)).Msg("finish generation")

	return toResult(ref), nil
}

func (s *GenerateService) buildRequest(file models.UploadedFile) models.GenerationRequest {
	if file.Filename == "" {
		file.Filename = defaultFilename
	}
	if file.ContentType == "" {
		file.ContentType = defaultContentType
	}
	return models.GenerationRequest{
		Prompt:         ModelPrompt,
		NegativePrompt: s.negativePrompt,
		Image:          file,
	}
}

func toResult(ref imageref.Ref) *models.GenerationResult {
	if ref.Kind == imageref.URL {
		return &models.GenerationResult{ImageURL: ref.Value}
	}
	return &models.GenerationResult{ImageDataURL: ref.DataURI()}
}
