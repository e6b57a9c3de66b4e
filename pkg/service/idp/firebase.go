package idp

import (
	"context"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
)

// securetokenJWKS serves the public keys Firebase Authentication signs ID
// tokens with.
const securetokenJWKS = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

// Firebase verifies Firebase Authentication ID tokens for a single project.
type Firebase struct {
	projectID string
	jwksURI   string
}

type FirebaseOption func(*Firebase)

// WithJWKSURI overrides the key endpoint, used to point tests at a local
// key server.
func WithJWKSURI(uri string) FirebaseOption {
	return func(f *Firebase) {
		f.jwksURI = uri
	}
}

func NewFirebase(projectID string, opts ...FirebaseOption) (*Firebase, error) {
	if projectID == "" {
		return nil, goerr.New("firebase project ID is required")
	}

	f := &Firebase{
		projectID: projectID,
		jwksURI:   securetokenJWKS,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

var _ Verifier = &Firebase{}

// Verify checks the token signature against Google's published keys and
// validates the securetoken issuer and project audience.
func (f *Firebase) Verify(ctx context.Context, idToken string) (*Identity, error) {
	keySet, err := jwk.Fetch(ctx, f.jwksURI)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch Firebase public keys", goerr.V("jwks_uri", f.jwksURI))
	}

	// Allow 10 seconds of clock skew to handle time synchronization differences
	token, err := jwt.Parse([]byte(idToken),
		jwt.WithKeySet(keySet),
		jwt.WithValidate(true),
		jwt.WithIssuer("https://securetoken.google.com/"+f.projectID),
		jwt.WithAudience(f.projectID),
		jwt.WithAcceptableSkew(10*time.Second),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse or verify ID token")
	}

	sub := token.Subject()
	if sub == "" {
		return nil, goerr.New("sub claim not found in token")
	}

	identity := &Identity{Sub: sub}

	if email, ok := token.Get("email"); ok {
		if emailStr, ok := email.(string); ok {
			identity.Email = emailStr
		}
	}
	if identity.Email == "" {
		return nil, goerr.New("email claim not found in token")
	}

	// name is optional in Firebase tokens (absent for email/password users
	// without a display name)
	if name, ok := token.Get("name"); ok {
		if nameStr, ok := name.(string); ok {
			identity.Name = nameStr
		}
	}

	return identity, nil
}
