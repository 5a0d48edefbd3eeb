package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/postwright/postwright-api/internal/api/shared"
	"github.com/postwright/postwright-api/internal/domain"
	"github.com/postwright/postwright-api/internal/platform/logger"
	"github.com/postwright/postwright-api/internal/service"
)

// PostHandler handles post-generation HTTP requests
type PostHandler struct {
	postService service.PostService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService service.PostService, log *slog.Logger) *PostHandler {
	if log == nil {
		log = slog.Default()
	}

	return &PostHandler{
		postService: postService,
		validator:   validator.New(),
		logger:      log,
	}
}

// GeneratePost handles POST /api/posts/generate requests.
//
// The call is synchronous: the response is written once generation succeeds
// or the retry budget is exhausted.
func (h *PostHandler) GeneratePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Parse request body
	var req GeneratePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	postReq := domain.PostRequest{
		BusinessType:   req.BusinessType,
		TargetAudience: req.TargetAudience,
		PostGoal:       domain.PostGoal(req.PostGoal),
		PostTone:       domain.PostTone(req.PostTone),
		Include:        req.Include,
		Avoid:          req.Avoid,
	}

	text, err := h.postService.GeneratePost(r.Context(), postReq)
	if err != nil {
		log.Warn("post generation request failed", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GeneratePostResponse{Post: text})
}
