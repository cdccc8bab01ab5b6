package handlers

import (
	"net/http"

	"mini-bookmarks/auth"
)

type authRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthHandler struct {
	auth *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{auth: svc}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.auth.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, user)
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.auth.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, res)
}
