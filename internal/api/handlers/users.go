package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/mini-linkedin/internal/api/httpx"
	"github.com/baharkarakas/mini-linkedin/internal/middleware"
	"github.com/baharkarakas/mini-linkedin/internal/models"
	"github.com/baharkarakas/mini-linkedin/internal/services"
)

type UserHandler struct {
	Profiles *services.ProfileService
	Uploader Uploader
}

func NewUserHandler(profiles *services.ProfileService, u Uploader) *UserHandler {
	return &UserHandler{Profiles: profiles, Uploader: u}
}

// Absent fields are left untouched.
type updateProfileReq struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
}

type imageResp struct {
	User    models.User `json:"user"`
	URL     string      `json:"url"`
	Message string      `json:"message"`
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.Profiles.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteServiceError(w, r, err, userNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	u, err := h.Profiles.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		httpx.WriteServiceError(w, r, err, userNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteServiceError(w, r, err, badBody)
		return
	}
	uid, _ := middleware.UserID(r.Context())
	u, err := h.Profiles.UpdateProfile(r.Context(), uid, uid, models.ProfileUpdate{Name: req.Name, Bio: req.Bio})
	if err != nil {
		httpx.WriteServiceError(w, r, err, profileMsgs)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

func (h *UserHandler) UpdateProfileImage(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, h.Profiles.UpdateProfileImage, "Profile image updated successfully", "profileImage", "image")
}

func (h *UserHandler) UpdateBackgroundImage(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, h.Profiles.UpdateBackgroundImage, "Background image updated successfully", "backgroundImage", "image")
}

func (h *UserHandler) updateImage(
	w http.ResponseWriter, r *http.Request,
	set func(ctx context.Context, callerID, targetID, url string) (models.User, error),
	msg string, fields ...string,
) {
	uid, _ := middleware.UserID(r.Context())
	up, err := h.Uploader.Upload(w, r, fields...)
	if err != nil {
		httpx.WriteServiceError(w, r, err, imageMsgs)
		return
	}
	u, err := set(r.Context(), uid, uid, up.URL)
	if err != nil {
		httpx.WriteServiceError(w, r, err, userNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, imageResp{User: u, URL: up.URL, Message: msg})
}
