package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sinalize/sinalize-api/internal/api/shared"
	"github.com/sinalize/sinalize-api/internal/service"
)

// IntroductionHandler handles lesson-phase introduction requests.
type IntroductionHandler struct {
	introService service.IntroductionService
	validator    *validator.Validate
}

// NewIntroductionHandler creates a new IntroductionHandler with the given
// dependencies.
func NewIntroductionHandler(introService service.IntroductionService) *IntroductionHandler {
	return &IntroductionHandler{
		introService: introService,
		validator:    validator.New(),
	}
}

// Generate handles the /generate-introduction endpoint. Unknown phases are
// rejected before any model call is made.
func (h *IntroductionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req IntroductionRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	text, err := h.introService.Generate(r.Context(), req.Tema, req.Fase)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, IntroductionResponse{Text: text})
}
