package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/devlink-app/devlink/internal/domain"
	"github.com/devlink-app/devlink/internal/service"
)

// PostHandler handles feed requests: posts with their inline likes and
// comments.
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// HandleCreate stores a new post authored by the caller.
// POST /posts
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Text string `json:"text"`
	}
	if err := readJSON(r, &req); err != nil {
		writeValidationErrors(w, "Invalid request body")
		return
	}
	if req.Text == "" {
		writeValidationErrors(w, "Text is required")
		return
	}

	post, err := h.posts.Create(r.Context(), user.ID, req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeValidationErrors(w, "Text is required")
			return
		}
		writeServerError(w, "create post", err)
		return
	}

	writeJSON(w, http.StatusOK, toPostDTO(post))
}

// HandleList returns all posts, newest first.
// GET /posts
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListAll(r.Context())
	if err != nil {
		writeServerError(w, "list posts", err)
		return
	}
	writeJSON(w, http.StatusOK, toPostDTOs(posts))
}

// HandleGet returns a single post.
// GET /posts/{id}
func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDFromPath(w, r)
	if !ok {
		return
	}

	post, err := h.posts.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMsg(w, http.StatusNotFound, "Post not found")
			return
		}
		writeServerError(w, "get post", err)
		return
	}

	writeJSON(w, http.StatusOK, toPostDTO(post))
}

// HandleDelete removes a post. Only the author may delete it.
// DELETE /posts/{id}
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	postID, ok := postIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.posts.Delete(r.Context(), user.ID, postID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeMsg(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, domain.ErrForbidden):
			writeMsg(w, http.StatusUnauthorized, "User not authorized")
		default:
			writeServerError(w, "delete post", err)
		}
		return
	}

	writeMsg(w, http.StatusOK, "Post removed")
}

// HandleLike records the caller's like and returns the updated like list.
// PUT /posts/like/{id}
func (h *PostHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	postID, ok := postIDFromPath(w, r)
	if !ok {
		return
	}

	likes, err := h.posts.Like(r.Context(), user.ID, postID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeMsg(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, domain.ErrAlreadyLiked):
			writeMsg(w, http.StatusBadRequest, "Post already liked")
		default:
			writeServerError(w, "like post", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, emptyIfNil(likes))
}

// HandleUnlike removes the caller's like and returns the updated like list.
// PUT /posts/unlike/{id}
func (h *PostHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	postID, ok := postIDFromPath(w, r)
	if !ok {
		return
	}

	likes, err := h.posts.Unlike(r.Context(), user.ID, postID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeMsg(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, domain.ErrNotLiked):
			writeMsg(w, http.StatusBadRequest, "Post has not yet been liked")
		default:
			writeServerError(w, "unlike post", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, emptyIfNil(likes))
}

// HandleAddComment inserts a comment at the head of a post's comment list
// and returns the updated list.
// POST /posts/comment/{id}
func (h *PostHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	postID, ok := postIDFromPath(w, r)
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := readJSON(r, &req); err != nil {
		writeValidationErrors(w, "Invalid request body")
		return
	}
	if req.Text == "" {
		writeValidationErrors(w, "Text is required")
		return
	}

	comments, err := h.posts.AddComment(r.Context(), user.ID, postID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeMsg(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, domain.ErrInvalidInput):
			writeValidationErrors(w, "Text is required")
		default:
			writeServerError(w, "add comment", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, emptyIfNil(comments))
}

// HandleRemoveComment deletes a comment by its id. Only the comment's
// author may delete it.
// DELETE /posts/comment/{id}/{commentId}
func (h *PostHandler) HandleRemoveComment(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	postID, ok := postIDFromPath(w, r)
	if !ok {
		return
	}

	comments, err := h.posts.RemoveComment(r.Context(), user.ID, postID, r.PathValue("commentId"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeMsg(w, http.StatusNotFound, "Comment does not exist")
		case errors.Is(err, domain.ErrForbidden):
			writeMsg(w, http.StatusUnauthorized, "User not authorized")
		default:
			writeServerError(w, "remove comment", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, emptyIfNil(comments))
}

// postIDFromPath parses the {id} path segment; a malformed id answers 404
// like a missing post.
func postIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeMsg(w, http.StatusNotFound, "Post not found")
		return 0, false
	}
	return postID, true
}
