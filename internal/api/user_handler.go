package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sinalize/sinalize-api/internal/api/shared"
	"github.com/sinalize/sinalize-api/internal/domain"
	"github.com/sinalize/sinalize-api/internal/service/auth"
	"github.com/sinalize/sinalize-api/internal/store"
)

// UserHandler handles registration, lookup and roadmap-level updates.
type UserHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	validator  *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, jwtService auth.JWTService) *UserHandler {
	return &UserHandler{
		userStore:  userStore,
		jwtService: jwtService,
		validator:  validator.New(),
	}
}

// Register handles the /users/register endpoint. Successful registration
// responds 200 with the new user ID and an access token; a duplicate email
// responds 400.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := domain.NewUser(
		req.Name,
		req.Email,
		req.ImageURL,
		req.Age,
		domain.ExperienceLevel(req.ExperienceLevel),
		req.Interest,
		req.LearningTime,
	)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithError(
			w,
			r,
			http.StatusInternalServerError,
			"Failed to generate authentication token",
		)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RegisterUserResponse{
		ID:    user.ID,
		Token: token,
	})
}

// Get handles the /users/{id} endpoint.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newUserResponse(user))
}

// CheckUser handles the /check/user endpoint. It reports whether an account
// exists for the given email, without requiring authentication.
func (h *UserHandler) CheckUser(w http.ResponseWriter, r *http.Request) {
	var req CheckUserRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithJSON(w, r, http.StatusOK, CheckUserResponse{Exists: false})
			return
		}
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CheckUserResponse{
		Exists: true,
		ID:     &user.ID,
	})
}

// UpdateRoadmap handles the /users/{id}/update-roadmap endpoint. It sets the
// user's roadmap progression level and returns the updated record.
func (h *UserHandler) UpdateRoadmap(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var req UpdateRoadmapRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userStore.UpdateRoadmapLevel(r.Context(), id, *req.RoadmapLevel)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newUserResponse(user))
}

// newUserResponse maps a domain user to its public projection.
func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		ImageURL:        user.AvatarURL,
		Age:             user.Age,
		ExperienceLevel: string(user.ExperienceLevel),
		Interest:        user.Interest,
		LearningTime:    user.LearningTime,
		RoadmapLevel:    user.RoadmapLevel,
	}
}
