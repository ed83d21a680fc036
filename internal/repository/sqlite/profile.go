package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/devlink-app/devlink/internal/domain"
)

// ProfileRepository implements domain.ProfileRepository using SQLite.
// Skills, social links, experience, and education are stored as JSON text
// columns on the profile row, so nested-list edits rewrite the whole column.
type ProfileRepository struct {
	db *sql.DB
}

const profileColumns = `p.id, p.user_id, p.company, p.website, p.location, p.status, p.bio,
	 p.github_username, p.skills, p.social, p.experience, p.education, p.updated_at,
	 u.name, u.avatar`

// Upsert creates the profile on first write and replaces the scalar fields,
// skills, and social links on subsequent writes. A single statement keeps
// the field replacement atomic; nested experience/education are untouched.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	skills, err := json.Marshal(profile.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}
	social, err := json.Marshal(profile.Social)
	if err != nil {
		return fmt.Errorf("marshal social: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, company, website, location, status, bio, github_username, skills, social, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   company = excluded.company,
		   website = excluded.website,
		   location = excluded.location,
		   status = excluded.status,
		   bio = excluded.bio,
		   github_username = excluded.github_username,
		   skills = excluded.skills,
		   social = excluded.social,
		   updated_at = excluded.updated_at`,
		profile.UserID, profile.Company, profile.Website, profile.Location,
		profile.Status, profile.Bio, profile.GithubUsername, string(skills), string(social), now,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	profile.UpdatedAt = now
	return nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+`
		 FROM profiles p JOIN users u ON u.id = p.user_id
		 WHERE p.user_id = ?`, userID)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query profile by user: %w", err)
	}
	return profile, nil
}

func (r *ProfileRepository) GetAll(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+profileColumns+`
		 FROM profiles p JOIN users u ON u.id = p.user_id
		 ORDER BY p.updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, *profile)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepository) ReplaceExperience(ctx context.Context, userID int64, entries []domain.Experience) error {
	return r.replaceList(ctx, userID, "experience", entries)
}

func (r *ProfileRepository) ReplaceEducation(ctx context.Context, userID int64, entries []domain.Education) error {
	return r.replaceList(ctx, userID, "education", entries)
}

func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// replaceList rewrites one of the nested JSON list columns in full. The
// column name is fixed by the two callers above, never caller input.
func (r *ProfileRepository) replaceList(ctx context.Context, userID int64, column string, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", column, err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET `+column+` = ?, updated_at = ? WHERE user_id = ?`,
		string(data), time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("update %s: %w", column, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (*domain.Profile, error) {
	p := &domain.Profile{}
	var skills, social, experience, education string
	err := row.Scan(&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location, &p.Status, &p.Bio,
		&p.GithubUsername, &skills, &social, &experience, &education, &p.UpdatedAt,
		&p.UserName, &p.UserAvatar)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(skills), &p.Skills); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	if err := json.Unmarshal([]byte(social), &p.Social); err != nil {
		return nil, fmt.Errorf("unmarshal social: %w", err)
	}
	if err := json.Unmarshal([]byte(experience), &p.Experience); err != nil {
		return nil, fmt.Errorf("unmarshal experience: %w", err)
	}
	if err := json.Unmarshal([]byte(education), &p.Education); err != nil {
		return nil, fmt.Errorf("unmarshal education: %w", err)
	}
	return p, nil
}
