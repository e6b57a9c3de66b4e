package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/repository"
	"github.com/lensworks/crewdesk/pkg/service/idp"
	"github.com/lensworks/crewdesk/pkg/utils/async"
	"github.com/lensworks/crewdesk/pkg/utils/errutil"
)

// DefaultTokenTTL is the session token lifetime
const DefaultTokenTTL = 7 * 24 * time.Hour

type AuthUseCase struct {
	repo     interfaces.Repository
	verifier idp.Verifier
	secret   []byte
	ttl      time.Duration
}

func NewAuthUseCase(repo interfaces.Repository, verifier idp.Verifier, secret []byte, ttl time.Duration) *AuthUseCase {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &AuthUseCase{
		repo:     repo,
		verifier: verifier,
		secret:   secret,
		ttl:      ttl,
	}
}

// TokenTTL returns the session token lifetime, used by the controller for
// the cookie max-age.
func (uc *AuthUseCase) TokenTTL() time.Duration {
	return uc.ttl
}

// LoginResult carries the signed-in user and the minted session token.
type LoginResult struct {
	User  *model.User
	Token string
}

// Login verifies the identity-provider ID token, looks up the user
// (creating an employee record on first sign-in) and mints a session token.
// The login-history record is appended asynchronously and never blocks
// session issuance.
func (uc *AuthUseCase) Login(ctx context.Context, idToken, device, sourceIP string) (*LoginResult, error) {
	if uc.verifier == nil {
		return nil, goerr.New("identity verifier is not configured")
	}
	if idToken == "" {
		return nil, goerr.Wrap(ErrValidation, "idToken is required")
	}

	identity, err := uc.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidToken, "ID token verification failed", goerr.V("cause", err.Error()))
	}

	user, err := uc.repo.User().Get(ctx, model.UserID(identity.Sub))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(err, "failed to look up user")
		}
		// First sign-in: provision the user with the employee role. An
		// executive promotes them later.
		user, err = uc.repo.User().Create(ctx, &model.User{
			ID:    model.UserID(identity.Sub),
			Name:  identity.Name,
			Email: identity.Email,
			Role:  types.RoleEmployee,
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create user on first sign-in")
		}
	}

	token, err := uc.mintToken(user)
	if err != nil {
		return nil, err
	}

	userID := user.ID
	async.Dispatch(ctx, func(ctx context.Context) error {
		err := uc.repo.User().AppendLoginHistory(ctx, userID, &model.LoginHistory{
			Device:    device,
			IP:        sourceIP,
			Timestamp: time.Now().UTC(),
			Status:    "success",
		})
		return errutil.Handle(ctx, err, "failed to append login history")
	})

	return &LoginResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) mintToken(user *model.User) (string, error) {
	now := time.Now().UTC()
	token, err := jwt.NewBuilder().
		Subject(user.ID.String()).
		IssuedAt(now).
		Expiration(now.Add(uc.ttl)).
		Claim("email", user.Email).
		Claim("role", user.Role.String()).
		Build()
	if err != nil {
		return "", goerr.Wrap(err, "failed to build session token")
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, uc.secret))
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign session token")
	}

	return string(signed), nil
}

// ValidateToken parses and validates a session token and returns the
// session it asserts.
func (uc *AuthUseCase) ValidateToken(_ context.Context, raw string) (*auth.Session, error) {
	token, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256, uc.secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidToken, "failed to parse session token", goerr.V("cause", err.Error()))
	}

	sess := &auth.Session{
		UserID: model.UserID(token.Subject()),
	}
	if email, ok := token.Get("email"); ok {
		if s, ok := email.(string); ok {
			sess.Email = s
		}
	}
	if role, ok := token.Get("role"); ok {
		if s, ok := role.(string); ok {
			sess.Role = types.Role(s)
		}
	}

	if err := sess.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidToken, "session token carries invalid claims", goerr.V("cause", err.Error()))
	}

	return sess, nil
}
