package middleware

import (
	"net/http"
	"strings"

	"github.com/baharkarakas/mini-linkedin/internal/api/httpx"
	"github.com/baharkarakas/mini-linkedin/internal/auth"
)

type AuthMiddleware struct {
	Sessions *auth.SessionManager
	Cookies  auth.CookieJar
}

func NewAuthMiddleware(sm *auth.SessionManager, jar auth.CookieJar) *AuthMiddleware {
	return &AuthMiddleware{Sessions: sm, Cookies: jar}
}

// token prefers the session cookie and falls back to a bearer header.
func (m *AuthMiddleware) token(r *http.Request) string {
	if t := m.Cookies.Token(r); t != "" {
		return t
	}
	ah := r.Header.Get("Authorization")
	if len(ah) > len("bearer ") && strings.EqualFold(ah[:len("bearer ")], "bearer ") {
		return strings.TrimSpace(ah[len("bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.token(r)
		if token == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized - No token provided", nil)
			return
		}
		uid, err := m.Sessions.Verify(token)
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized - Invalid token", nil)
			return
		}
		ctx := WithUser(r.Context(), UserCtx{UserID: uid})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
