package handlers

import (
	"net/http"

	"github.com/baharkarakas/mini-linkedin/internal/api/httpx"
)

type UploadHandler struct {
	Uploader Uploader
}

func NewUploadHandler(u Uploader) *UploadHandler {
	return &UploadHandler{Uploader: u}
}

type uploadResp struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
	PublicID string `json:"publicId"`
}

func (h *UploadHandler) Image(w http.ResponseWriter, r *http.Request) {
	up, err := h.Uploader.Upload(w, r, "image")
	if err != nil {
		httpx.WriteServiceError(w, r, err, imageMsgs)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, uploadResp{Success: true, ImageURL: up.URL, PublicID: up.PublicID})
}
