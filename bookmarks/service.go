// Package bookmarks implements bookmark CRUD for an already authenticated
// user. Every access is checked against the bookmark owner.
package bookmarks

import (
	"context"
	"errors"
	"fmt"

	"mini-bookmarks/logger"
	"mini-bookmarks/models"
	"mini-bookmarks/store"
)

var (
	ErrNotFound  = errors.New("bookmark not found")
	ErrForbidden = errors.New("access to resources denied")
)

type Service struct {
	store store.BookmarkStore
}

func NewService(s store.BookmarkStore) *Service {
	return &Service{store: s}
}

func (s *Service) CreateBookmark(ctx context.Context, userID int64, in models.BookmarkInput) (*models.Bookmark, error) {
	b, err := s.store.CreateBookmark(ctx, userID, in)
	if err != nil {
		return nil, fmt.Errorf("create bookmark: %w", err)
	}

	logger.FromContext(ctx).Debug("bookmark created", "user_id", userID, "bookmark_id", b.ID)
	return b, nil
}

// GetBookmarks returns the user's bookmarks in insertion order, never nil.
func (s *Service) GetBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	list, err := s.store.ListBookmarksByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	if list == nil {
		list = []models.Bookmark{}
	}
	return list, nil
}

// GetBookmarkByID looks the bookmark up by id and owner together, so a
// foreign bookmark is indistinguishable from a missing one.
func (s *Service) GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (*models.Bookmark, error) {
	b, err := s.store.FindOwnedBookmark(ctx, bookmarkID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get bookmark: %w", err)
	}
	return b, nil
}

// EditBookmarkByID fetches by id alone and compares owners. Both a missing
// and a foreign bookmark yield ErrForbidden. Concurrent edits are last-write-wins.
func (s *Service) EditBookmarkByID(ctx context.Context, userID, bookmarkID int64, patch models.BookmarkPatch) (*models.Bookmark, error) {
	log := logger.FromContext(ctx)

	current, err := s.store.FindBookmark(ctx, bookmarkID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("edit bookmark: %w", err)
	}
	if current == nil || current.UserID != userID {
		log.Warn("bookmark edit denied", "user_id", userID, "bookmark_id", bookmarkID)
		return nil, ErrForbidden
	}

	updated, err := s.store.UpdateBookmark(ctx, bookmarkID, patch)
	if err != nil {
		// deleted between the ownership check and the write
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("bookmark vanished during edit", "user_id", userID, "bookmark_id", bookmarkID)
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("edit bookmark: %w", err)
	}

	log.Debug("bookmark edited", "user_id", userID, "bookmark_id", bookmarkID)
	return updated, nil
}

// DeleteBookmarkByID deletes in one scoped statement. A statement that
// matches nothing, missing or foreign, is reported as ErrNotFound.
func (s *Service) DeleteBookmarkByID(ctx context.Context, userID, bookmarkID int64) error {
	err := s.store.DeleteOwnedBookmark(ctx, bookmarkID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete bookmark: %w", err)
	}

	logger.FromContext(ctx).Debug("bookmark deleted", "user_id", userID, "bookmark_id", bookmarkID)
	return nil
}
