package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "fyyur/internal/delivery/http/helpers"
	"fyyur/internal/domain"
)

type contextKey string

const editorKey contextKey = "editor"

// SetEditor returns a context carrying the authenticated editor subject.
func SetEditor(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, editorKey, subject)
}

// EditorFromContext returns the authenticated editor subject, if present.
func EditorFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(editorKey).(string)
	return subject, ok
}

// RequireAuth guards editor-only handlers. Requests without a valid Bearer
// token get a 401 envelope and never reach next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, problem := bearerToken(r.Header.Get("Authorization"))
			if problem != "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, problem)
				return
			}
			subject, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetEditor(r.Context(), subject)))
		}
	}
}

// bearerToken extracts the token from an Authorization header value. The
// scheme name is matched case-insensitively. problem is empty on success.
func bearerToken(header string) (token, problem string) {
	if header == "" {
		return "", "missing authorization header"
	}
	scheme, rest, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", "invalid authorization format"
	}
	token = strings.TrimSpace(rest)
	if token == "" {
		return "", "missing token"
	}
	return token, ""
}
