package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/devlink-app/devlink/internal/domain"
	"github.com/google/uuid"
)

// ProfileService owns profile upserts and the nested experience/education
// lists. Nested edits are fetch, edit in memory, write the list back; two
// concurrent editors of the same profile can lose an update, which is an
// accepted limitation of the document layout.
type ProfileService struct {
	profiles domain.ProfileRepository
	users    domain.UserRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles domain.ProfileRepository, users domain.UserRepository) *ProfileService {
	return &ProfileService{profiles: profiles, users: users}
}

// ProfileInput carries the writable top-level profile fields. Skills is a
// comma-delimited string; social links left empty stay unset.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// GetOwn returns the caller's profile.
func (s *ProfileService) GetOwn(ctx context.Context, userID int64) (*domain.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

// GetByUser returns the profile owned by the given user.
func (s *ProfileService) GetByUser(ctx context.Context, userID int64) (*domain.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

// GetAll returns every profile, most recently updated first.
func (s *ProfileService) GetAll(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.GetAll(ctx)
}

// Upsert creates the caller's profile if absent, otherwise replaces its
// top-level fields. Existing experience and education entries are preserved.
func (s *ProfileService) Upsert(ctx context.Context, userID int64, in ProfileInput) (*domain.Profile, error) {
	if in.Status == "" || in.Skills == "" {
		return nil, fmt.Errorf("%w: status and skills are required", domain.ErrInvalidInput)
	}

	profile := &domain.Profile{
		UserID:         userID,
		Company:        in.Company,
		Website:        in.Website,
		Location:       in.Location,
		Status:         in.Status,
		Skills:         parseSkills(in.Skills),
		Bio:            in.Bio,
		GithubUsername: in.GithubUsername,
		Social: domain.SocialLinks{
			Youtube:   in.Youtube,
			Twitter:   in.Twitter,
			Facebook:  in.Facebook,
			Linkedin:  in.Linkedin,
			Instagram: in.Instagram,
		},
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return s.profiles.GetByUserID(ctx, userID)
}

// AddExperience inserts the entry at the head of the caller's experience
// list. The caller must already have a profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID int64, entry domain.Experience) (*domain.Profile, error) {
	if entry.Title == "" || entry.Company == "" || entry.From.IsZero() {
		return nil, fmt.Errorf("%w: title, company, and from date are required", domain.ErrInvalidInput)
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry.ID = uuid.NewString()
	entries := append([]domain.Experience{entry}, profile.Experience...)
	if err := s.profiles.ReplaceExperience(ctx, userID, entries); err != nil {
		return nil, fmt.Errorf("replace experience: %w", err)
	}

	return s.profiles.GetByUserID(ctx, userID)
}

// RemoveExperience removes the entry with the given id from the caller's
// experience list. An unknown id is a no-op.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID int64, entryID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Experience, 0, len(profile.Experience))
	for _, e := range profile.Experience {
		if e.ID != entryID {
			entries = append(entries, e)
		}
	}
	if err := s.profiles.ReplaceExperience(ctx, userID, entries); err != nil {
		return nil, fmt.Errorf("replace experience: %w", err)
	}

	return s.profiles.GetByUserID(ctx, userID)
}

// AddEducation inserts the entry at the head of the caller's education list.
// The caller must already have a profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID int64, entry domain.Education) (*domain.Profile, error) {
	if entry.School == "" || entry.Degree == "" || entry.FieldOfStudy == "" || entry.From.IsZero() {
		return nil, fmt.Errorf("%w: school, degree, field of study, and from date are required", domain.ErrInvalidInput)
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry.ID = uuid.NewString()
	entries := append([]domain.Education{entry}, profile.Education...)
	if err := s.profiles.ReplaceEducation(ctx, userID, entries); err != nil {
		return nil, fmt.Errorf("replace education: %w", err)
	}

	return s.profiles.GetByUserID(ctx, userID)
}

// RemoveEducation removes the entry with the given id from the caller's
// education list. An unknown id is a no-op.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID int64, entryID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Education, 0, len(profile.Education))
	for _, e := range profile.Education {
		if e.ID != entryID {
			entries = append(entries, e)
		}
	}
	if err := s.profiles.ReplaceEducation(ctx, userID, entries); err != nil {
		return nil, fmt.Errorf("replace education: %w", err)
	}

	return s.profiles.GetByUserID(ctx, userID)
}

// DeleteOwn removes the caller's profile and user account together.
// The caller's posts are intentionally left in place; see the feed schema.
// TODO: decide whether account deletion should also remove the user's posts.
func (s *ProfileService) DeleteOwn(ctx context.Context, userID int64) error {
	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// parseSkills splits a comma-delimited skills string into a trimmed ordered
// list, dropping empty segments.
func parseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
