package handlers

import (
	"net/http"
	"time"

	"github.com/baharkarakas/mini-linkedin/internal/api/httpx"
	"github.com/baharkarakas/mini-linkedin/internal/api/validate"
	"github.com/baharkarakas/mini-linkedin/internal/auth"
	"github.com/baharkarakas/mini-linkedin/internal/middleware"
	"github.com/baharkarakas/mini-linkedin/internal/models"
	"github.com/baharkarakas/mini-linkedin/internal/services"
)

type AuthHandler struct {
	Svc     *services.AuthService
	Cookies auth.CookieJar
	now     func() time.Time
}

func NewAuthHandler(svc *services.AuthService, jar auth.CookieJar) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookies: jar, now: time.Now}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResp struct {
	User    models.User `json:"user"`
	Message string      `json:"message"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteServiceError(w, r, err, badBody)
		return
	}
	if err := validate.Collect(
		validate.Required("name", req.Name),
		validate.Required("email", req.Email),
		validate.Email("email", req.Email),
		validate.Required("password", req.Password),
		validate.MaxLen("password", req.Password, 72),
	); err != nil {
		httpx.WriteServiceError(w, r, err, registerMsgs)
		return
	}

	u, sess, err := h.Svc.Register(r.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Bio:      req.Bio,
	})
	if err != nil {
		httpx.WriteServiceError(w, r, err, registerMsgs)
		return
	}
	h.Cookies.Set(w, sess, h.now())
	httpx.WriteJSON(w, http.StatusCreated, authResp{User: u, Message: "User registered successfully"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteServiceError(w, r, err, badBody)
		return
	}
	if err := validate.Collect(
		validate.Required("email", req.Email),
		validate.Required("password", req.Password),
	); err != nil {
		httpx.WriteServiceError(w, r, err, loginFieldMsg)
		return
	}

	u, sess, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(w, r, err, loginMsgs)
		return
	}
	h.Cookies.Set(w, sess, h.now())
	httpx.WriteJSON(w, http.StatusOK, authResp{User: u, Message: "Login successful"})
}

// Logout only expires the cookie; the token itself stays valid until it expires.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Cookies.Clear(w)
	httpx.WriteJSON(w, http.StatusOK, httpx.Message{Message: "Logged out successfully"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	u, err := h.Svc.CurrentUser(r.Context(), uid)
	if err != nil {
		httpx.WriteServiceError(w, r, err, userNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}
