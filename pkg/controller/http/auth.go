package http

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
	"github.com/lensworks/crewdesk/pkg/usecase"
)

// AuthUseCase is the slice of the auth usecase the controller needs.
type AuthUseCase interface {
	Login(ctx context.Context, idToken, device, sourceIP string) (*usecase.LoginResult, error)
	ValidateToken(ctx context.Context, raw string) (*auth.Session, error)
	TokenTTL() time.Duration
}

type loginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type loginResponse struct {
	Success     bool        `json:"success"`
	User        *model.User `json:"user"`
	RedirectURL string      `json:"redirectUrl"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	result, err := s.authUC.Login(r.Context(), req.IDToken, r.UserAgent(), clientIP(r))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	http.SetCookie(w, s.sessionCookie(r, result.Token, int(s.authUC.TokenTTL().Seconds())))

	writeJSON(r.Context(), w, http.StatusOK, loginResponse{
		Success:     true,
		User:        result.User,
		RedirectURL: result.User.Role.DashboardPath(),
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, s.sessionCookie(r, "", -1))
	respondMessage(r.Context(), w, http.StatusOK, "logged out")
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.CookieName)
	if err != nil || cookie.Value == "" {
		respondError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidToken, "missing session cookie"))
		return
	}

	sess, err := s.authUC.ValidateToken(r.Context(), cookie.Value)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	respondData(r.Context(), w, http.StatusOK, map[string]string{
		"userId": sess.UserID.String(),
		"email":  sess.Email,
		"role":   sess.Role.String(),
	})
}

func (s *Server) sessionCookie(r *http.Request, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies || r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
