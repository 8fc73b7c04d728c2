package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sinalize/sinalize-api/internal/api/shared"
	"github.com/sinalize/sinalize-api/internal/domain"
	"github.com/sinalize/sinalize-api/internal/service"
)

// ContentHandler handles collection content generation and on-demand
// illustration requests.
type ContentHandler struct {
	contentService service.ContentService
	validator      *validator.Validate
}

// NewContentHandler creates a new ContentHandler with the given dependencies.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		validator:      validator.New(),
	}
}

// GenerateContent handles the /generate/content endpoint. For a topic the
// user already has a collection for, the stored content is returned with
// is_existing set; otherwise fresh words and sentences are generated.
func (h *ContentHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req GenerateContentRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.contentService.GenerateContent(r.Context(), req.UserID, req.Topic)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newContentResponse(result))
}

// GenerateImage handles the /generate/image endpoint. The illustration of an
// item is generated at most once; repeat requests return the stored URL.
func (h *ContentHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req GenerateImageRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	url, err := h.contentService.GenerateItemImage(r.Context(), req.CollectionID, req.TextEN)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateImageResponse{URL: url})
}

// newContentResponse maps a service result to the wire shape, splitting items
// into words and sentences.
func newContentResponse(result *service.ContentResult) ContentResponse {
	resp := ContentResponse{
		CollectionID: result.Collection.ID,
		Title:        result.Collection.Title,
		Topic:        result.Collection.Topic,
		IsExisting:   result.IsExisting,
		Words:        make([]ContentItemResponse, 0),
		Sentences:    make([]ContentItemResponse, 0),
	}

	for _, item := range result.Items {
		out := ContentItemResponse{
			ID:       item.ID,
			TextPT:   item.TextPT,
			TextEN:   item.TextEN,
			ImageURL: item.ImageURL,
		}
		if item.Kind == domain.ContentKindWord {
			resp.Words = append(resp.Words, out)
		} else {
			resp.Sentences = append(resp.Sentences, out)
		}
	}

	return resp
}
