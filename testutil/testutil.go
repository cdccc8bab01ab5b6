// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"mini-bookmarks/auth"
	"mini-bookmarks/db"
	"mini-bookmarks/store"
)

// TestJWTSecret is long enough to pass config validation.
const TestJWTSecret = "test-secret-key-that-is-at-least-32-chars"

// FastArgon2Params keep password hashing cheap in tests.
var FastArgon2Params = auth.Argon2Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// NewDB returns a migrated in-memory SQLite database closed at test end.
func NewDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Connect(context.Background(), db.DriverSQLite, ":memory:")
	require.NoError(t, err, "connect to in-memory sqlite")

	t.Cleanup(func() { conn.Close() })
	return conn
}

// NewStore returns a SQLStore over a fresh in-memory database.
func NewStore(t *testing.T) *store.SQLStore {
	t.Helper()
	return store.NewSQLStore(NewDB(t))
}

func NewHasher() *auth.Argon2Hasher {
	return auth.NewArgon2Hasher(FastArgon2Params)
}

// NewAuthService wires an auth service with fast hashing and TestJWTSecret.
func NewAuthService(t *testing.T, users store.UserStore) *auth.Service {
	t.Helper()

	svc, err := auth.NewService(users, NewHasher(), auth.NewTokens([]byte(TestJWTSecret)))
	require.NoError(t, err)
	return svc
}

// CreateUser signs up a user directly through the store and returns its id.
func CreateUser(t *testing.T, s store.UserStore, email, password string) int64 {
	t.Helper()

	hash, err := NewHasher().Hash(password)
	require.NoError(t, err)

	u, err := s.CreateUser(context.Background(), email, hash)
	require.NoError(t, err)
	return u.ID
}
