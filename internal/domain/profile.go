package domain

import (
	"context"
	"time"
)

// Profile is a user's public developer profile. Each user owns at most one.
// Experience and Education are stored inline on the profile document and
// ordered most-recent-first.
type Profile struct {
	ID             int64
	UserID         int64
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         []string
	Bio            string
	GithubUsername string
	Social         SocialLinks
	Experience     []Experience
	Education      []Education
	UpdatedAt      time.Time

	// Denormalized from the owning user at read time for listings.
	UserName   string
	UserAvatar string
}

// SocialLinks holds optional per-platform profile URLs. Only the links
// supplied on the last profile write are set.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is one entry in a profile's work history.
type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Education is one entry in a profile's education history.
type Education struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// ProfileRepository defines persistence operations for profiles.
//
// Upsert atomically replaces the scalar fields, skills, and social links.
// ReplaceExperience and ReplaceEducation rewrite the whole nested list;
// callers fetch, edit in memory, and write back. That read-modify-write is
// not guarded against concurrent writers.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *Profile) error
	GetByUserID(ctx context.Context, userID int64) (*Profile, error)
	GetAll(ctx context.Context) ([]Profile, error)
	ReplaceExperience(ctx context.Context, userID int64, entries []Experience) error
	ReplaceEducation(ctx context.Context, userID int64, entries []Education) error
	DeleteByUserID(ctx context.Context, userID int64) error
}
