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

// PostRepository implements domain.PostRepository using SQLite. Likes and
// comments are JSON text columns on the post row.
type PostRepository struct {
	db *sql.DB
}

const postColumns = `id, user_id, text, name, avatar, likes, comments, created_at`

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	likes, comments, err := marshalPostLists(post)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (user_id, text, name, avatar, likes, comments, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		post.UserID, post.Text, post.Name, post.Avatar, likes, comments, now,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	post.ID = id
	post.CreatedAt = now
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = ?`, id)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query post by id: %w", err)
	}
	return post, nil
}

func (r *PostRepository) ListAll(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+postColumns+` FROM posts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
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

func (r *PostRepository) ReplaceLikes(ctx context.Context, postID int64, likes []domain.Like) error {
	return r.replaceList(ctx, postID, "likes", likes)
}

func (r *PostRepository) ReplaceComments(ctx context.Context, postID int64, comments []domain.Comment) error {
	return r.replaceList(ctx, postID, "comments", comments)
}

func (r *PostRepository) replaceList(ctx context.Context, postID int64, column string, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", column, err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE posts SET `+column+` = ? WHERE id = ?`, string(data), postID)
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

func marshalPostLists(post *domain.Post) (likes string, comments string, err error) {
	l, err := json.Marshal(post.Likes)
	if err != nil {
		return "", "", fmt.Errorf("marshal likes: %w", err)
	}
	c, err := json.Marshal(post.Comments)
	if err != nil {
		return "", "", fmt.Errorf("marshal comments: %w", err)
	}
	return string(l), string(c), nil
}

func scanPost(row scanner) (*domain.Post, error) {
	p := &domain.Post{}
	var likes, comments string
	err := row.Scan(&p.ID, &p.UserID, &p.Text, &p.Name, &p.Avatar, &likes, &comments, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(likes), &p.Likes); err != nil {
		return nil, fmt.Errorf("unmarshal likes: %w", err)
	}
	if err := json.Unmarshal([]byte(comments), &p.Comments); err != nil {
		return nil, fmt.Errorf("unmarshal comments: %w", err)
	}
	return p, nil
}
