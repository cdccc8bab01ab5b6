package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mini-bookmarks/auth"
	"mini-bookmarks/bookmarks"
	"mini-bookmarks/models"
)

type createBookmarkRequest struct {
	Title       string  `json:"title" validate:"required"`
	Link        string  `json:"link" validate:"required"`
	Description *string `json:"description"`
}

type editBookmarkRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Link        *string `json:"link" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

type BookmarkHandler struct {
	bookmarks *bookmarks.Service
}

func NewBookmarkHandler(svc *bookmarks.Service) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: svc}
}

func (h *BookmarkHandler) Create(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	var req createBookmarkRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.bookmarks.CreateBookmark(r.Context(), id.UserID, models.BookmarkInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, b)
}

func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	list, err := h.bookmarks.GetBookmarks(r.Context(), id.UserID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, list)
}

func (h *BookmarkHandler) Get(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	bookmarkID, ok := bookmarkIDParam(w, r)
	if !ok {
		return
	}

	b, err := h.bookmarks.GetBookmarkByID(r.Context(), id.UserID, bookmarkID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, b)
}

func (h *BookmarkHandler) Edit(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	bookmarkID, ok := bookmarkIDParam(w, r)
	if !ok {
		return
	}

	var req editBookmarkRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.bookmarks.EditBookmarkByID(r.Context(), id.UserID, bookmarkID, models.BookmarkPatch{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, b)
}

func (h *BookmarkHandler) Delete(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	bookmarkID, ok := bookmarkIDParam(w, r)
	if !ok {
		return
	}

	if err := h.bookmarks.DeleteBookmarkByID(r.Context(), id.UserID, bookmarkID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// bookmarkIDParam parses the {id} route segment. Non-numeric and
// non-positive ids get a 400.
func bookmarkIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, r, http.StatusBadRequest, "Invalid bookmark ID")
		return 0, false
	}
	return id, true
}
