// Package users serves the signed-in user's own profile.
package users

import (
	"context"
	"errors"
	"fmt"

	"mini-bookmarks/models"
	"mini-bookmarks/store"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already taken")
)

type Service struct {
	store store.UserStore
}

func NewService(s store.UserStore) *Service {
	return &Service{store: s}
}

func (s *Service) Me(ctx context.Context, userID int64) (*models.PublicUser, error) {
	u, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	public := u.Public()
	return &public, nil
}

func (s *Service) EditMe(ctx context.Context, userID int64, patch models.UserPatch) (*models.PublicUser, error) {
	u, err := s.store.UpdateUser(ctx, userID, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return nil, ErrEmailTaken
		case errors.Is(err, store.ErrNotFound):
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("edit user: %w", err)
	}

	public := u.Public()
	return &public, nil
}
