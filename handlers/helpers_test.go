package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"mini-bookmarks/auth"
	"mini-bookmarks/bookmarks"
	appmw "mini-bookmarks/middleware"
	"mini-bookmarks/store"
	"mini-bookmarks/testutil"
	"mini-bookmarks/users"
)

type testEnv struct {
	router http.Handler
	store  *store.SQLStore
	tokens *auth.Tokens
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := testutil.NewStore(t)
	tokens := auth.NewTokens([]byte(testutil.TestJWTSecret))
	authSvc, err := auth.NewService(st, testutil.NewHasher(), tokens)
	require.NoError(t, err)

	authHandler := NewAuthHandler(authSvc)
	bookmarkHandler := NewBookmarkHandler(bookmarks.NewService(st))
	userHandler := NewUserHandler(users.NewService(st))
	authn := appmw.NewAuthenticator(tokens)

	r := chi.NewRouter()
	r.Use(appmw.Trace)
	r.Post("/auth/signup", authHandler.Signup)
	r.Post("/auth/signin", authHandler.Signin)
	r.Get("/users/me", authn.Protect(userHandler.Me))
	r.Patch("/users", authn.Protect(userHandler.EditMe))
	r.Get("/bookmarks", authn.Protect(bookmarkHandler.List))
	r.Post("/bookmarks", authn.Protect(bookmarkHandler.Create))
	r.Get("/bookmarks/{id}", authn.Protect(bookmarkHandler.Get))
	r.Patch("/bookmarks/{id}", authn.Protect(bookmarkHandler.Edit))
	r.Delete("/bookmarks/{id}", authn.Protect(bookmarkHandler.Delete))

	return &testEnv{router: r, store: st, tokens: tokens}
}

// userToken creates a user and returns its id with a valid token.
func (e *testEnv) userToken(t *testing.T, email string) (int64, string) {
	t.Helper()

	id := testutil.CreateUser(t, e.store, email, "password123")
	token, err := e.tokens.Sign(id, email)
	require.NoError(t, err)
	return id, token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}
