package middleware

import (
	"net/http"
	"strings"

	"github.com/2beens/legday/internal/auth"
	"github.com/2beens/legday/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const bearerPrefix = "Bearer "

type AuthMiddlewareHandler struct {
	reader               auth.Reader
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(reader auth.Reader) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		reader: reader,
		allowedPaths: map[string]bool{
			"/":       true,
			"/health": true,
		},
		allowedPathsPrefixes: []string{
			"/catalog/",
			"/units/",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// BearerToken returns the token from the Authorization header, empty if
// there is none.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

// AuthCheck puts the id of the session's user into the request context.
// Public paths are served without a session, but still get the user when
// a valid token comes along.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			token := BearerToken(r)
			if h.pathIsAlwaysAllowed(r.URL.Path) {
				if token != "" {
					if userID, err := h.reader.UserID(ctx, token); err == nil {
						r = r.WithContext(auth.ContextWithUserID(r.Context(), userID))
					} else {
						log.Tracef("[auth middleware] public path %s, ignoring token: %s", r.URL.Path, err)
					}
				}
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			if token == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.reader.UserID(ctx, token)
			if err != nil {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "not-logged")
				span.RecordError(err)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithUserID(r.Context(), userID)))
		})
	}
}
