// Package store defines the persistence contract for users and bookmarks and
// its database/sql implementation.
package store

import (
	"context"

	"mini-bookmarks/models"
)

// UserStore persists user accounts.
type UserStore interface {
	// CreateUser inserts a user with an already hashed password.
	// Returns ErrDuplicate when the email is taken.
	CreateUser(ctx context.Context, email, hash string) (*models.User, error)

	// FindUserByEmail returns ErrNotFound when no user has this exact email.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	FindUserByID(ctx context.Context, id int64) (*models.User, error)

	// UpdateUser applies the non-nil fields of patch.
	// Returns ErrDuplicate when the new email is taken.
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
}

// BookmarkStore persists bookmarks. Methods with an ownerID argument only
// match rows owned by that user.
type BookmarkStore interface {
	CreateBookmark(ctx context.Context, ownerID int64, in models.BookmarkInput) (*models.Bookmark, error)
	ListBookmarksByOwner(ctx context.Context, ownerID int64) ([]models.Bookmark, error)
	FindBookmark(ctx context.Context, id int64) (*models.Bookmark, error)
	FindOwnedBookmark(ctx context.Context, id, ownerID int64) (*models.Bookmark, error)
	UpdateBookmark(ctx context.Context, id int64, patch models.BookmarkPatch) (*models.Bookmark, error)
	DeleteBookmark(ctx context.Context, id int64) error
	DeleteOwnedBookmark(ctx context.Context, id, ownerID int64) error
}
