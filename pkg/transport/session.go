package transport

import (
	"context"
	"net/http"
	"strings"

	authmodel "github.com/Mouss-42/ReactSituPro-main/pkg/auth/domain/model"
)

type sessionKey struct{}

// sessionMiddleware resolves the bearer token, if any, into an auth session.
func (h *Handler) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		session, err := h.auth.Session(strings.TrimSpace(token))
		if err != nil {
			h.logger.WithError(err).Debug("rejected session token")
			h.writeError(w, http.StatusUnauthorized, "Session invalide ou expirée")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, session)))
	})
}

func sessionFrom(r *http.Request) authmodel.Session {
	session, ok := r.Context().Value(sessionKey{}).(authmodel.Session)
	if !ok {
		return authmodel.AnonymousSession()
	}
	return session
}
