package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sinalize/sinalize-api/internal/api/shared"
	"github.com/sinalize/sinalize-api/internal/domain"
	"github.com/sinalize/sinalize-api/internal/service"
)

// RoadmapHandler handles roadmap generation, listing and deletion.
type RoadmapHandler struct {
	roadmapService service.RoadmapService
	validator      *validator.Validate
}

// NewRoadmapHandler creates a new RoadmapHandler with the given dependencies.
func NewRoadmapHandler(roadmapService service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{
		roadmapService: roadmapService,
		validator:      validator.New(),
	}
}

// StudentRoadmap handles the /api/student-roadmap endpoint.
func (h *RoadmapHandler) StudentRoadmap(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, domain.RoadmapKindStudent)
}

// ParentRoadmap handles the /api/parent-roadmap endpoint.
func (h *RoadmapHandler) ParentRoadmap(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, domain.RoadmapKindParent)
}

// generate decodes the common roadmap request and delegates to the service
// with the given kind.
func (h *RoadmapHandler) generate(w http.ResponseWriter, r *http.Request, kind domain.RoadmapKind) {
	var req RoadmapRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	roadmap, err := h.roadmapService.GenerateRoadmap(r.Context(), req.UserID, kind, req.Interest)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RoadmapResponse{
		ID:     roadmap.ID,
		Kind:   string(roadmap.Kind),
		Topics: roadmap.Topics,
	})
}

// ListTopics handles the GET /api/roadmaps/{user_id} endpoint. It returns
// every topic of every stored roadmap of the user, oldest roadmap first.
func (h *RoadmapHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "user_id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	topics, err := h.roadmapService.ListTopics(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RoadmapTopicsResponse{Topics: topics})
}

// DeleteRoadmaps handles the DELETE /api/roadmaps/{user_id} endpoint. The
// user record itself is never touched.
func (h *RoadmapHandler) DeleteRoadmaps(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "user_id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	deleted, err := h.roadmapService.DeleteRoadmaps(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteRoadmapsResponse{
		Success: true,
		Deleted: deleted,
	})
}
