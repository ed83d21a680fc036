package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devlink-app/devlink/internal/domain"
	"github.com/google/uuid"
)

// PostService owns the post feed with its inline like and comment lists.
// Like/unlike and comment edits follow the same fetch, edit, write-back
// cycle as profile lists.
type PostService struct {
	posts domain.PostRepository
	users domain.UserRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository, users domain.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create stores a new post. The author's current name and avatar are copied
// onto the post and stay fixed even if the author later edits their profile.
func (s *PostService) Create(ctx context.Context, userID int64, text string) (*domain.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}

	post := &domain.Post{
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// ListAll returns every post, newest first.
func (s *PostService) ListAll(ctx context.Context) ([]domain.Post, error) {
	return s.posts.ListAll(ctx)
}

// GetByID returns a single post.
func (s *PostService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// Delete removes a post after verifying the caller authored it.
func (s *PostService) Delete(ctx context.Context, userID, postID int64) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return domain.ErrForbidden
	}
	return s.posts.Delete(ctx, postID)
}

// Like adds the caller's like to a post and returns the updated like list.
// A second like from the same user fails with ErrAlreadyLiked.
func (s *PostService) Like(ctx context.Context, userID, postID int64) ([]domain.Like, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if likeIndex(post.Likes, userID) >= 0 {
		return nil, domain.ErrAlreadyLiked
	}

	likes := append([]domain.Like{{UserID: userID}}, post.Likes...)
	if err := s.posts.ReplaceLikes(ctx, postID, likes); err != nil {
		return nil, fmt.Errorf("replace likes: %w", err)
	}
	return likes, nil
}

// Unlike removes the caller's like from a post and returns the updated like
// list. Unliking a post the caller never liked fails with ErrNotLiked.
func (s *PostService) Unlike(ctx context.Context, userID, postID int64) ([]domain.Like, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	idx := likeIndex(post.Likes, userID)
	if idx < 0 {
		return nil, domain.ErrNotLiked
	}

	likes := make([]domain.Like, 0, len(post.Likes)-1)
	likes = append(likes, post.Likes[:idx]...)
	likes = append(likes, post.Likes[idx+1:]...)
	if err := s.posts.ReplaceLikes(ctx, postID, likes); err != nil {
		return nil, fmt.Errorf("replace likes: %w", err)
	}
	return likes, nil
}

// AddComment inserts a comment at the head of a post's comment list and
// returns the updated list. The commenter's name and avatar are snapshots.
func (s *PostService) AddComment(ctx context.Context, userID, postID int64, text string) ([]domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get commenter: %w", err)
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now().UTC(),
	}

	comments := append([]domain.Comment{comment}, post.Comments...)
	if err := s.posts.ReplaceComments(ctx, postID, comments); err != nil {
		return nil, fmt.Errorf("replace comments: %w", err)
	}
	return comments, nil
}

// RemoveComment deletes a single comment, located by its own id, after
// verifying the caller authored it. Returns the updated comment list.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID int64, commentID string) ([]domain.Comment, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, c := range post.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	if post.Comments[idx].UserID != userID {
		return nil, domain.ErrForbidden
	}

	comments := make([]domain.Comment, 0, len(post.Comments)-1)
	comments = append(comments, post.Comments[:idx]...)
	comments = append(comments, post.Comments[idx+1:]...)
	if err := s.posts.ReplaceComments(ctx, postID, comments); err != nil {
		return nil, fmt.Errorf("replace comments: %w", err)
	}
	return comments, nil
}

func likeIndex(likes []domain.Like, userID int64) int {
	for i, l := range likes {
		if l.UserID == userID {
			return i
		}
	}
	return -1
}
