package middleware

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "board_session"

const identityKey ctxKey = "session_identity"

// Identity is the per-request principal binding. The zero value is the
// anonymous visitor.
type Identity struct {
	UserID        string
	Username      string
	Authenticated bool
}

type TokenVerifier interface {
	Validate(token string) (jwt.MapClaims, error)
}

type SessionMiddleware struct {
	verifier TokenVerifier
}

func NewSessionMiddleware(verifier TokenVerifier) *SessionMiddleware {
	return &SessionMiddleware{
		verifier: verifier,
	}
}

// Resolve computes the request's identity from the session cookie and stores
// it in the request context. A missing, invalid or expired token resolves to
// the anonymous identity; resolution never fails the request.
func (m *SessionMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := Identity{}

		if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
			if claims, err := m.verifier.Validate(cookie.Value); err == nil {
				if username, ok := claims["username"].(string); ok {
					identity.Username = username
					identity.Authenticated = true
				}
				if sub, ok := claims["sub"].(string); ok {
					identity.UserID = sub
				}
			}
		}

		next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
	})
}

// ContextWithIdentity returns a copy of ctx carrying the given identity.
func ContextWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the identity resolved for this request, or the
// anonymous identity when resolution did not run.
func IdentityFromContext(ctx context.Context) Identity {
	if identity, ok := ctx.Value(identityKey).(Identity); ok {
		return identity
	}
	return Identity{}
}
