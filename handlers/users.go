package handlers

import (
	"net/http"

	"mini-bookmarks/auth"
	"mini-bookmarks/models"
	"mini-bookmarks/users"
)

type editUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type UserHandler struct {
	users *users.Service
}

func NewUserHandler(svc *users.Service) *UserHandler {
	return &UserHandler{users: svc}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	u, err := h.users.Me(r.Context(), id.UserID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, u)
}

func (h *UserHandler) EditMe(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	var req editUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.users.EditMe(r.Context(), id.UserID, models.UserPatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, u)
}
