// Package auth owns account credentials and the session tokens issued for them.
package auth

import (
	"context"
	"errors"
	"fmt"

	"mini-bookmarks/logger"
	"mini-bookmarks/models"
	"mini-bookmarks/store"
)

// SigninResult is returned by a successful signin.
type SigninResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

type Service struct {
	users  store.UserStore
	hasher PasswordHasher
	tokens *Tokens

	// dummyHash is verified against when the email is unknown so that a
	// failed lookup costs the same KDF run as a wrong password.
	dummyHash string
}

func NewService(users store.UserStore, hasher PasswordHasher, tokens *Tokens) (*Service, error) {
	dummy, err := hasher.Hash("mini-bookmarks-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("hash dummy password: %w", err)
	}

	return &Service{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummy,
	}, nil
}

// Signup creates an account and returns it without the password hash.
func (s *Service) Signup(ctx context.Context, email, password string) (*models.PublicUser, error) {
	log := logger.FromContext(ctx)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, email, hash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			log.Debug("signup rejected: email taken")
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.Info("user signed up", "user_id", user.ID)

	public := user.Public()
	return &public, nil
}

// Signin checks the credentials and issues a session token.
func (s *Service) Signin(ctx context.Context, email, password string) (*SigninResult, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_, _ = s.hasher.Verify(s.dummyHash, password)
			log.Debug("signin rejected: unknown email")
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	ok, err := s.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		log.Debug("signin rejected: wrong password", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.SignToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	log.Info("user signed in", "user_id", user.ID)

	return &SigninResult{
		Status:  "success",
		Message: "User logged in successfully.",
		Token:   token,
	}, nil
}

func (s *Service) SignToken(userID int64, email string) (string, error) {
	return s.tokens.Sign(userID, email)
}
