package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sinalize/sinalize-api/internal/api/shared"
	"github.com/sinalize/sinalize-api/internal/service"
)

// ChatHandler handles free-form conversations with the teaching persona.
type ChatHandler struct {
	chatService service.ChatService
	validator   *validator.Validate
}

// NewChatHandler creates a new ChatHandler with the given dependencies.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		validator:   validator.New(),
	}
}

// Chat handles the /chat endpoint. The client sends the running conversation
// oldest message first; the reply is not stored server-side.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	reply, err := h.chatService.Send(r.Context(), req.Messages)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ChatResponse{Reply: reply})
}
