package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/repository/memory"
	"github.com/lensworks/crewdesk/pkg/service/idp"
	"github.com/lensworks/crewdesk/pkg/usecase"
)

// stubVerifier returns a fixed identity, standing in for Firebase.
type stubVerifier struct {
	identity *idp.Identity
	err      error
}

func (v *stubVerifier) Verify(_ context.Context, _ string) (*idp.Identity, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.identity, nil
}

func TestLogin(t *testing.T) {
	secret := []byte("test-signing-secret")

	t.Run("first sign-in provisions an employee", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo,
			usecase.WithVerifier(&stubVerifier{identity: &idp.Identity{
				Sub: "uid-alice", Email: "alice@example.com", Name: "Alice",
			}}),
			usecase.WithTokenSecret(secret),
		)
		ctx := context.Background()

		result, err := uc.Auth.Login(ctx, "some-id-token", "Mozilla/5.0", "203.0.113.7")
		gt.NoError(t, err).Required()

		gt.Value(t, result.User.ID).Equal(model.UserID("uid-alice"))
		gt.Value(t, result.User.Role).Equal(types.RoleEmployee)
		gt.String(t, result.Token).NotEqual("")

		stored, err := repo.User().Get(ctx, "uid-alice")
		gt.NoError(t, err).Required()
		gt.Value(t, stored.Email).Equal("alice@example.com")
	})

	t.Run("existing user keeps their role", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo,
			usecase.WithVerifier(&stubVerifier{identity: &idp.Identity{
				Sub: "uid-bob", Email: "bob@example.com", Name: "Bob",
			}}),
			usecase.WithTokenSecret(secret),
		)
		ctx := context.Background()

		_, err := repo.User().Create(ctx, &model.User{
			ID: "uid-bob", Name: "Bob", Email: "bob@example.com",
			Role: types.RoleExecutive,
		})
		gt.NoError(t, err).Required()

		result, err := uc.Auth.Login(ctx, "some-id-token", "", "")
		gt.NoError(t, err).Required()
		gt.Value(t, result.User.Role).Equal(types.RoleExecutive)

		sess, err := uc.Auth.ValidateToken(ctx, result.Token)
		gt.NoError(t, err).Required()
		gt.Value(t, sess.Role).Equal(types.RoleExecutive)
	})

	t.Run("failed verification maps to invalid token", func(t *testing.T) {
		uc := usecase.New(memory.New(),
			usecase.WithVerifier(&stubVerifier{err: goerr.New("bad signature")}),
			usecase.WithTokenSecret(secret),
		)
		ctx := context.Background()

		_, err := uc.Auth.Login(ctx, "garbage", "", "")
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidToken)).True()
	})

	t.Run("empty idToken is a validation error", func(t *testing.T) {
		uc := usecase.New(memory.New(),
			usecase.WithVerifier(&stubVerifier{identity: &idp.Identity{Sub: "x", Email: "x@example.com"}}),
			usecase.WithTokenSecret(secret),
		)
		ctx := context.Background()

		_, err := uc.Auth.Login(ctx, "", "", "")
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})
}

func TestValidateToken(t *testing.T) {
	secret := []byte("test-signing-secret")
	verifier := &stubVerifier{identity: &idp.Identity{
		Sub: "uid-alice", Email: "alice@example.com", Name: "Alice",
	}}

	t.Run("round-trips the session claims", func(t *testing.T) {
		uc := usecase.New(memory.New(),
			usecase.WithVerifier(verifier),
			usecase.WithTokenSecret(secret),
		)
		ctx := context.Background()

		result, err := uc.Auth.Login(ctx, "some-id-token", "", "")
		gt.NoError(t, err).Required()

		sess, err := uc.Auth.ValidateToken(ctx, result.Token)
		gt.NoError(t, err).Required()
		gt.Value(t, sess.UserID).Equal(model.UserID("uid-alice"))
		gt.Value(t, sess.Email).Equal("alice@example.com")
		gt.Value(t, sess.Role).Equal(types.RoleEmployee)
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		uc := usecase.New(memory.New(),
			usecase.WithTokenSecret(secret),
		)
		ctx := context.Background()

		_, err := uc.Auth.ValidateToken(ctx, "not-a-jwt")
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidToken)).True()
	})

	t.Run("rejects tokens signed with another secret", func(t *testing.T) {
		ctx := context.Background()

		minter := usecase.New(memory.New(),
			usecase.WithVerifier(verifier),
			usecase.WithTokenSecret([]byte("other-secret")),
		)
		result, err := minter.Auth.Login(ctx, "some-id-token", "", "")
		gt.NoError(t, err).Required()

		uc := usecase.New(memory.New(),
			usecase.WithTokenSecret(secret),
		)
		_, err = uc.Auth.ValidateToken(ctx, result.Token)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidToken)).True()
	})
}
