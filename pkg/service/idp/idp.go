// Package idp verifies identity-provider tokens presented at login.
package idp

import "context"

// Identity is the verified subject extracted from an ID token.
type Identity struct {
	Sub   string
	Email string
	Name  string
}

// Verifier validates an ID token and returns the identity it asserts.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}
