package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/devlink-app/devlink/internal/domain"
	"github.com/devlink-app/devlink/internal/service"
)

// ProfileHandler handles profile requests, including the nested experience
// and education lists.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// HandleGetOwn returns the caller's profile.
// GET /profile/me
func (h *ProfileHandler) HandleGetOwn(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	profile, err := h.profiles.GetOwn(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMsg(w, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		writeServerError(w, "get own profile", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// HandleUpsert creates or replaces the caller's profile fields.
// POST /profile
func (h *ProfileHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Company        string `json:"company"`
		Website        string `json:"website"`
		Location       string `json:"location"`
		Status         string `json:"status"`
		Skills         string `json:"skills"`
		Bio            string `json:"bio"`
		GithubUsername string `json:"githubUsername"`
		Youtube        string `json:"youtube"`
		Twitter        string `json:"twitter"`
		Facebook       string `json:"facebook"`
		Linkedin       string `json:"linkedin"`
		Instagram      string `json:"instagram"`
	}
	if err := readJSON(r, &req); err != nil {
		writeValidationErrors(w, "Invalid request body")
		return
	}

	var msgs []string
	if req.Status == "" {
		msgs = append(msgs, "Status is required")
	}
	if req.Skills == "" {
		msgs = append(msgs, "Skills is required")
	}
	if len(msgs) > 0 {
		writeValidationErrors(w, msgs...)
		return
	}

	profile, err := h.profiles.Upsert(r.Context(), user.ID, service.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         req.Skills,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeValidationErrors(w, err.Error())
			return
		}
		writeServerError(w, "upsert profile", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// HandleGetAll returns every profile. Public.
// GET /profile
func (h *ProfileHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.GetAll(r.Context())
	if err != nil {
		writeServerError(w, "list profiles", err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileDTOs(profiles))
}

// HandleGetByUser returns the profile owned by the user in the path. Public.
// GET /profile/user/{id}
func (h *ProfileHandler) HandleGetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeMsg(w, http.StatusBadRequest, "Profile not found")
		return
	}

	profile, err := h.profiles.GetByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMsg(w, http.StatusBadRequest, "Profile not found")
			return
		}
		writeServerError(w, "get profile by user", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// HandleDelete removes the caller's profile and account.
// DELETE /profile
func (h *ProfileHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if err := h.profiles.DeleteOwn(r.Context(), user.ID); err != nil {
		writeServerError(w, "delete profile", err)
		return
	}

	writeMsg(w, http.StatusOK, "User deleted")
}

// experienceRequest carries the experience fields of a PUT request.
type experienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// HandleAddExperience inserts an experience entry at the head of the list.
// PUT /profile/experience
func (h *ProfileHandler) HandleAddExperience(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req experienceRequest
	if err := readJSON(r, &req); err != nil {
		writeValidationErrors(w, "Invalid request body")
		return
	}

	var msgs []string
	if req.Title == "" {
		msgs = append(msgs, "Title is required")
	}
	if req.Company == "" {
		msgs = append(msgs, "Company is required")
	}
	from, fromErr := parseDate(req.From)
	if fromErr != nil {
		msgs = append(msgs, "From date is required")
	}
	to, toErr := parseOptionalDate(req.To)
	if toErr != nil {
		msgs = append(msgs, "To date is invalid")
	}
	if len(msgs) > 0 {
		writeValidationErrors(w, msgs...)
		return
	}

	profile, err := h.profiles.AddExperience(r.Context(), user.ID, domain.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMsg(w, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		writeServerError(w, "add experience", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// HandleRemoveExperience removes an experience entry by id.
// DELETE /profile/experience/{id}
func (h *ProfileHandler) HandleRemoveExperience(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	profile, err := h.profiles.RemoveExperience(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		writeServerError(w, "remove experience", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// educationRequest carries the education fields of a PUT request.
type educationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// HandleAddEducation inserts an education entry at the head of the list.
// PUT /profile/education
func (h *ProfileHandler) HandleAddEducation(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req educationRequest
	if err := readJSON(r, &req); err != nil {
		writeValidationErrors(w, "Invalid request body")
		return
	}

	var msgs []string
	if req.School == "" {
		msgs = append(msgs, "School is required")
	}
	if req.Degree == "" {
		msgs = append(msgs, "Degree is required")
	}
	if req.FieldOfStudy == "" {
		msgs = append(msgs, "Field of study is required")
	}
	from, fromErr := parseDate(req.From)
	if fromErr != nil {
		msgs = append(msgs, "From date is required")
	}
	to, toErr := parseOptionalDate(req.To)
	if toErr != nil {
		msgs = append(msgs, "To date is invalid")
	}
	if len(msgs) > 0 {
		writeValidationErrors(w, msgs...)
		return
	}

	profile, err := h.profiles.AddEducation(r.Context(), user.ID, domain.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMsg(w, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		writeServerError(w, "add education", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// HandleRemoveEducation removes an education entry by id.
// DELETE /profile/education/{id}
func (h *ProfileHandler) HandleRemoveEducation(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	profile, err := h.profiles.RemoveEducation(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		writeServerError(w, "remove education", err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

// parseDate accepts RFC 3339 timestamps or bare YYYY-MM-DD dates.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("empty date")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
