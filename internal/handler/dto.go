package handler

import (
	"time"

	"github.com/devlink-app/devlink/internal/domain"
)

// UserDTO is the JSON representation of a user. The credential hash is
// never serialized.
type UserDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// ProfileDTO is the JSON representation of a profile. Nested experience,
// education, and social types serialize with their domain tags.
type ProfileDTO struct {
	ID             int64               `json:"id"`
	UserID         int64               `json:"userId"`
	Name           string              `json:"name"`
	Avatar         string              `json:"avatar"`
	Company        string              `json:"company,omitempty"`
	Website        string              `json:"website,omitempty"`
	Location       string              `json:"location,omitempty"`
	Status         string              `json:"status"`
	Skills         []string            `json:"skills"`
	Bio            string              `json:"bio,omitempty"`
	GithubUsername string              `json:"githubUsername,omitempty"`
	Social         domain.SocialLinks  `json:"social"`
	Experience     []domain.Experience `json:"experience"`
	Education      []domain.Education  `json:"education"`
	UpdatedAt      string              `json:"updatedAt"`
}

func toProfileDTO(p *domain.Profile) ProfileDTO {
	return ProfileDTO{
		ID:             p.ID,
		UserID:         p.UserID,
		Name:           p.UserName,
		Avatar:         p.UserAvatar,
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Status:         p.Status,
		Skills:         emptyIfNil(p.Skills),
		Bio:            p.Bio,
		GithubUsername: p.GithubUsername,
		Social:         p.Social,
		Experience:     emptyIfNil(p.Experience),
		Education:      emptyIfNil(p.Education),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}

func toProfileDTOs(profiles []domain.Profile) []ProfileDTO {
	dtos := make([]ProfileDTO, len(profiles))
	for i := range profiles {
		dtos[i] = toProfileDTO(&profiles[i])
	}
	return dtos
}

// PostDTO is the JSON representation of a post.
type PostDTO struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"userId"`
	Text      string           `json:"text"`
	Name      string           `json:"name"`
	Avatar    string           `json:"avatar"`
	Likes     []domain.Like    `json:"likes"`
	Comments  []domain.Comment `json:"comments"`
	CreatedAt string           `json:"createdAt"`
}

func toPostDTO(p *domain.Post) PostDTO {
	return PostDTO{
		ID:        p.ID,
		UserID:    p.UserID,
		Text:      p.Text,
		Name:      p.Name,
		Avatar:    p.Avatar,
		Likes:     emptyIfNil(p.Likes),
		Comments:  emptyIfNil(p.Comments),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func toPostDTOs(posts []domain.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i := range posts {
		dtos[i] = toPostDTO(&posts[i])
	}
	return dtos
}

// emptyIfNil keeps empty nested lists serializing as [] rather than null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
