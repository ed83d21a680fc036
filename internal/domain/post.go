package domain

import (
	"context"
	"time"
)

// Post is a feed entry. The author's name and avatar are copied onto the
// post when it is created and never re-derived from later profile edits.
type Post struct {
	ID        int64
	UserID    int64
	Text      string
	Name      string
	Avatar    string
	Likes     []Like
	Comments  []Comment
	CreatedAt time.Time
}

// Like records that a user liked a post. At most one per (post, user).
type Like struct {
	UserID int64 `json:"userId"`
}

// Comment is one entry in a post's comment list, newest first. Author name
// and avatar are snapshots taken when the comment is written.
type Comment struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostRepository defines persistence operations for posts. Likes and
// comments live inline on the post document; ReplaceLikes and
// ReplaceComments rewrite the whole list after an in-memory edit.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	ListAll(ctx context.Context) ([]Post, error)
	Delete(ctx context.Context, id int64) error
	ReplaceLikes(ctx context.Context, postID int64, likes []Like) error
	ReplaceComments(ctx context.Context, postID int64, comments []Comment) error
}
