package handlers

import (
	"github.com/baharkarakas/mini-linkedin/internal/api/httpx"
	"github.com/baharkarakas/mini-linkedin/internal/apperr"
)

var (
	badBody       = httpx.Messages{apperr.ErrInvalidInput: "Invalid request body"}
	userNotFound  = httpx.Messages{apperr.ErrNotFound: "User not found"}
	registerMsgs  = httpx.Messages{apperr.ErrInvalidInput: "Name, a valid email and a password are required", apperr.ErrConflict: "User already exists"}
	loginFieldMsg = httpx.Messages{apperr.ErrInvalidInput: "Email and password are required"}
	loginMsgs     = httpx.Messages{apperr.ErrNotFound: "User not found", apperr.ErrUnauthorized: "Invalid credentials"}
	createMsgs    = httpx.Messages{apperr.ErrInvalidInput: "Post needs content or an http(s) image URL", apperr.ErrNotFound: "User not found"}
	deleteMsgs    = httpx.Messages{apperr.ErrForbidden: "You can only delete your own posts", apperr.ErrNotFound: "Post not found"}
	profileMsgs   = httpx.Messages{apperr.ErrInvalidInput: "Name cannot be empty", apperr.ErrNotFound: "User not found"}
	imageMsgs     = httpx.Messages{apperr.ErrInvalidInput: "A jpeg, png, gif or webp image up to 5MB is required", apperr.ErrNotFound: "User not found"}
)
