package handler

import (
	"errors"
	"net/http"

	"github.com/devlink-app/devlink/internal/domain"
	"github.com/devlink-app/devlink/internal/service"
)

// GithubHandler proxies repo listings for a GitHub username. Public.
type GithubHandler struct {
	github *service.GithubService
}

// NewGithubHandler creates a new GithubHandler.
func NewGithubHandler(github *service.GithubService) *GithubHandler {
	return &GithubHandler{github: github}
}

// HandleListRepos returns the user's recent public repos.
// GET /profile/github/{username}
func (h *GithubHandler) HandleListRepos(w http.ResponseWriter, r *http.Request) {
	repos, err := h.github.ListRepos(r.Context(), r.PathValue("username"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMsg(w, http.StatusNotFound, "No Github profile found")
			return
		}
		writeServerError(w, "list github repos", err)
		return
	}

	writeJSON(w, http.StatusOK, repos)
}
