package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/brandforge/brandforge-api/internal/api/shared"
	"github.com/brandforge/brandforge-api/internal/domain"
	"github.com/brandforge/brandforge-api/internal/platform/logger"
	"github.com/brandforge/brandforge-api/internal/service"
)

// maxAudioUploadBytes caps voice uploads at 25 MB, matching the upstream
// transcription API's own limit.
const maxAudioUploadBytes = 25 << 20

// Transcriber converts an uploaded audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// StudioHandler exposes the generation operations over HTTP. Each handler
// decodes and validates its request DTO, delegates to the service layer, and
// writes the operation's stable JSON shape.
type StudioHandler struct {
	studio      *service.StudioService
	logos       *service.LogoService
	transcriber Transcriber
	logger      *slog.Logger
}

// NewStudioHandler creates a new StudioHandler. transcriber may be nil when
// no transcription-capable provider is configured.
func NewStudioHandler(
	studio *service.StudioService,
	logos *service.LogoService,
	transcriber Transcriber,
	log *slog.Logger,
) *StudioHandler {
	if log == nil {
		log = slog.Default()
	}
	return &StudioHandler{
		studio:      studio,
		logos:       logos,
		transcriber: transcriber,
		logger:      log.With(slog.String("component", "studio_handler")),
	}
}

// decodeAndValidate reads the request body into dto and validates it. On
// failure it writes the error response and returns false.
func (h *StudioHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dto any) bool {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := shared.DecodeJSON(r, dto); err != nil {
		log.Debug("failed to decode request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	if err := shared.ValidateRequest(dto); err != nil {
		log.Debug("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return false
	}
	return true
}

// GenerateBrand handles POST /api/generate-brand.
func (h *StudioHandler) GenerateBrand(w http.ResponseWriter, r *http.Request) {
	var req domain.BrandRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.studio.GenerateBrand(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GenerateTagline handles POST /api/generate-tagline.
func (h *StudioHandler) GenerateTagline(w http.ResponseWriter, r *http.Request) {
	var req domain.TaglineRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.studio.GenerateTagline(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GenerateContent handles POST /api/generate-content.
func (h *StudioHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req domain.ContentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.studio.GenerateContent(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GenerateProductDescription handles POST /api/generate-desc.
func (h *StudioHandler) GenerateProductDescription(w http.ResponseWriter, r *http.Request) {
	var req domain.ProductDescriptionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.studio.GenerateProductDescription(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// AnalyzeSentiment handles POST /api/analyze-sentiment.
func (h *StudioHandler) AnalyzeSentiment(w http.ResponseWriter, r *http.Request) {
	var req domain.SentimentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.studio.AnalyzeSentiment(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// AnalyzeTagline handles POST /api/analyze-tagline.
func (h *StudioHandler) AnalyzeTagline(w http.ResponseWriter, r *http.Request) {
	var req domain.TaglineAnalysisRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.studio.AnalyzeTagline(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetColors handles POST /api/get-colors.
func (h *StudioHandler) GetColors(w http.ResponseWriter, r *http.Request) {
	var req domain.ColorsRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.studio.GetColors(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Chat handles POST /api/chat.
func (h *StudioHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.studio.Chat(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GenerateLogo handles POST /api/generate-logo.
func (h *StudioHandler) GenerateLogo(w http.ResponseWriter, r *http.Request) {
	var req domain.LogoRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.logos.GenerateLogo(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// TranscribeVoice handles POST /api/transcribe-voice. The audio arrives as a
// multipart form with a single "file" field.
func (h *StudioHandler) TranscribeVoice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if h.transcriber == nil {
		shared.RespondWithError(w, r, http.StatusBadGateway, "Transcription is not available")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAudioUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge, "Audio file too large")
			return
		}
		log.Debug("missing or invalid file field", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing audio file")
		return
	}
	defer func() { _ = file.Close() }()

	transcript, err := h.transcriber.Transcribe(r.Context(), header.Filename, file)
	if err != nil {
		HandleAPIError(w, r, err, "Transcription failed")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, service.TranscriptionResult{Transcription: transcript})
}
