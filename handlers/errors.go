package handlers

import (
	"errors"
	"net/http"

	"mini-bookmarks/auth"
	"mini-bookmarks/bookmarks"
	"mini-bookmarks/users"
)

const (
	msgEmailTaken     = "Email Already Taken."
	msgUserNotFound   = "User not found."
	msgWrongPassword  = "Wrong Password."
	msgAccessDenied   = "Access to resources Denied"
	msgBookmarkAbsent = "Bookmark not found"
	msgProfileAbsent  = "User profile not found"
	msgUnauthorized   = "Unauthorized"
	msgInternal       = "Internal server error"
)

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrDuplicateEmail), errors.Is(err, users.ErrEmailTaken):
		return http.StatusForbidden, msgEmailTaken
	case errors.Is(err, auth.ErrUserNotFound):
		return http.StatusForbidden, msgUserNotFound
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusForbidden, msgWrongPassword
	case errors.Is(err, bookmarks.ErrForbidden):
		return http.StatusForbidden, msgAccessDenied
	case errors.Is(err, bookmarks.ErrNotFound):
		return http.StatusNotFound, msgBookmarkAbsent
	case errors.Is(err, users.ErrNotFound):
		return http.StatusNotFound, msgProfileAbsent
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized, msgUnauthorized
	}
	return http.StatusInternalServerError, msgInternal
}
