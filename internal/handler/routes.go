package handler

import (
	"net/http"

	"github.com/devlink-app/devlink/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Protected routes
// are wrapped with RequireAuth; the rest are public.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, profiles *service.ProfileService, posts *service.PostService, github *service.GithubService) {
	authHandler := NewAuthHandler(auth)
	profileHandler := NewProfileHandler(profiles)
	postHandler := NewPostHandler(posts)
	githubHandler := NewGithubHandler(github)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(auth, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	// Users and authentication.
	mux.HandleFunc("POST /users", authHandler.HandleRegister)
	mux.HandleFunc("POST /auth", authHandler.HandleLogin)
	mux.Handle("GET /auth", protected(authHandler.HandleMe))

	// Profiles.
	mux.Handle("GET /profile/me", protected(profileHandler.HandleGetOwn))
	mux.Handle("POST /profile", protected(profileHandler.HandleUpsert))
	mux.HandleFunc("GET /profile", profileHandler.HandleGetAll)
	mux.HandleFunc("GET /profile/user/{id}", profileHandler.HandleGetByUser)
	mux.Handle("DELETE /profile", protected(profileHandler.HandleDelete))
	mux.Handle("PUT /profile/experience", protected(profileHandler.HandleAddExperience))
	mux.Handle("DELETE /profile/experience/{id}", protected(profileHandler.HandleRemoveExperience))
	mux.Handle("PUT /profile/education", protected(profileHandler.HandleAddEducation))
	mux.Handle("DELETE /profile/education/{id}", protected(profileHandler.HandleRemoveEducation))
	mux.HandleFunc("GET /profile/github/{username}", githubHandler.HandleListRepos)

	// Posts.
	mux.Handle("POST /posts", protected(postHandler.HandleCreate))
	mux.Handle("GET /posts", protected(postHandler.HandleList))
	mux.Handle("GET /posts/{id}", protected(postHandler.HandleGet))
	mux.Handle("DELETE /posts/{id}", protected(postHandler.HandleDelete))
	mux.Handle("PUT /posts/like/{id}", protected(postHandler.HandleLike))
	mux.Handle("PUT /posts/unlike/{id}", protected(postHandler.HandleUnlike))
	mux.Handle("POST /posts/comment/{id}", protected(postHandler.HandleAddComment))
	mux.Handle("DELETE /posts/comment/{id}/{commentId}", protected(postHandler.HandleRemoveComment))
}
