package auth

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// CookieName is the session cookie carrying the signed token
const CookieName = "auth-token"

// Session is the verified identity decoded from a session token. It is
// injected into the request context by the authorization middleware and is
// the only ambient identity handlers may rely on.
type Session struct {
	UserID model.UserID
	Email  string
	Role   types.Role
}

// Validate checks the session fields
func (s *Session) Validate() error {
	if s.UserID == "" {
		return goerr.New("session user ID is empty")
	}
	if !s.Role.IsValid() {
		return goerr.New("session role is invalid", goerr.V("role", s.Role))
	}
	return nil
}

type ctxSessionKey struct{}

// ContextWithSession binds a session to the context
func ContextWithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxSessionKey{}, s)
}

// SessionFrom extracts the session from the context. Returns nil for
// unauthenticated requests.
func SessionFrom(ctx context.Context) *Session {
	s, ok := ctx.Value(ctxSessionKey{}).(*Session)
	if !ok {
		return nil
	}
	return s
}
