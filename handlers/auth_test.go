package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-bookmarks/auth"
	"mini-bookmarks/testutil"
)

func TestSignup(t *testing.T) {
	env := setupTestEnv(t)

	// Test case 1: Successful signup
	t.Run("Successful signup", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
			"email":    "new@example.com",
			"password": "password123",
		})

		require.Equal(t, http.StatusCreated, rr.Code)

		var user map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
		assert.Equal(t, "new@example.com", user["email"])
		assert.NotZero(t, user["id"])
		assert.NotContains(t, user, "hash")
		assert.NotContains(t, user, "password_hash")
		assert.NotContains(t, rr.Body.String(), "argon2id")
	})

	// Test case 2: Email already taken
	t.Run("Duplicate email", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
			"email":    "new@example.com",
			"password": "another-password",
		})

		assert.Equal(t, http.StatusForbidden, rr.Code)
		resp := decodeError(t, rr)
		assert.Equal(t, "Email Already Taken.", resp.Error)
		assert.NotEmpty(t, resp.TraceID)
	})

	// Test case 3: Invalid JSON
	t.Run("Invalid JSON", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/auth/signup", "", `{"email": `)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid request body", decodeError(t, rr).Error)
	})

	// Test case 4: Missing fields and malformed email
	t.Run("Validation failure", func(t *testing.T) {
		cases := []map[string]string{
			{"email": "", "password": "password123"},
			{"email": "not-an-email", "password": "password123"},
			{"email": "valid@example.com", "password": ""},
		}
		for _, body := range cases {
			rr := env.do(t, http.MethodPost, "/auth/signup", "", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code, "body %v", body)
		}
	})
}

func TestSignin(t *testing.T) {
	env := setupTestEnv(t)
	userID := testutil.CreateUser(t, env.store, "login@example.com", "password123")

	// Test case 1: Successful signin
	t.Run("Successful signin", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/auth/signin", "", map[string]string{
			"email":    "login@example.com",
			"password": "password123",
		})

		require.Equal(t, http.StatusOK, rr.Code)

		var resp auth.SigninResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "User logged in successfully.", resp.Message)

		id, err := env.tokens.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, userID, id.UserID)
	})

	// Test case 2: Unknown email
	t.Run("User not found", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/auth/signin", "", map[string]string{
			"email":    "nobody@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "User not found.", decodeError(t, rr).Error)
	})

	// Test case 3: Wrong password
	t.Run("Wrong password", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/auth/signin", "", map[string]string{
			"email":    "login@example.com",
			"password": "wrongpassword",
		})

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "Wrong Password.", decodeError(t, rr).Error)
	})

	// Test case 4: Email match is case sensitive
	t.Run("Email case differs", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/auth/signin", "", map[string]string{
			"email":    "LOGIN@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "User not found.", decodeError(t, rr).Error)
	})

	// Test case 5: Invalid body
	t.Run("Invalid request body", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/auth/signin", "", "not json")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
