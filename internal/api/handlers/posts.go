package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/mini-linkedin/internal/api/httpx"
	"github.com/baharkarakas/mini-linkedin/internal/middleware"
	"github.com/baharkarakas/mini-linkedin/internal/models"
	"github.com/baharkarakas/mini-linkedin/internal/services"
)

type PostHandler struct {
	Feed *services.FeedService
}

func NewPostHandler(feed *services.FeedService) *PostHandler {
	return &PostHandler{Feed: feed}
}

type createPostReq struct {
	Content string `json:"content"`
	Image   string `json:"image"`
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Feed.ListFeed(r.Context())
	if err != nil {
		httpx.WriteServiceError(w, r, err, nil)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	httpx.WriteJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteServiceError(w, r, err, badBody)
		return
	}
	uid, _ := middleware.UserID(r.Context())
	p, err := h.Feed.CreatePost(r.Context(), uid, req.Content, req.Image)
	if err != nil {
		httpx.WriteServiceError(w, r, err, createMsgs)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

// ListByUser serves both /posts/{id} and /users/{id}/posts.
func (h *PostHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	up, err := h.Feed.ListUserPosts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteServiceError(w, r, err, userNotFound)
		return
	}
	if up.Posts == nil {
		up.Posts = []models.Post{}
	}
	httpx.WriteJSON(w, http.StatusOK, up)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	if err := h.Feed.DeletePost(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		httpx.WriteServiceError(w, r, err, deleteMsgs)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.Message{Message: "Post deleted successfully"})
}
