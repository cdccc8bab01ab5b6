package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"mini-bookmarks/auth"
	"mini-bookmarks/bookmarks"
	"mini-bookmarks/handlers"
	appmw "mini-bookmarks/middleware"
	"mini-bookmarks/users"
)

type routerDeps struct {
	Auth       *auth.Service
	Tokens     appmw.TokenVerifier
	Bookmarks  *bookmarks.Service
	Users      *users.Service
	CORSOrigin string
}

func newRouter(deps routerDeps) http.Handler {
	authHandler := handlers.NewAuthHandler(deps.Auth)
	bookmarkHandler := handlers.NewBookmarkHandler(deps.Bookmarks)
	userHandler := handlers.NewUserHandler(deps.Users)
	authn := appmw.NewAuthenticator(deps.Tokens)

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(appmw.Trace)
	r.Use(appmw.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(appmw.CORS(deps.CORSOrigin))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Post("/auth/signup", authHandler.Signup)
	r.Post("/auth/signin", authHandler.Signin)

	r.Get("/users/me", authn.Protect(userHandler.Me))
	r.Patch("/users", authn.Protect(userHandler.EditMe))

	r.Route("/bookmarks", func(r chi.Router) {
		r.Get("/", authn.Protect(bookmarkHandler.List))
		r.Post("/", authn.Protect(bookmarkHandler.Create))
		r.Get("/{id}", authn.Protect(bookmarkHandler.Get))
		r.Patch("/{id}", authn.Protect(bookmarkHandler.Edit))
		r.Delete("/{id}", authn.Protect(bookmarkHandler.Delete))
	})

	return r
}
