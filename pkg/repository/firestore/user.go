package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
)

type userRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newUserRepository(client *firestore.Client) *userRepository {
	return &userRepository{client: client}
}

func (r *userRepository) usersCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_users"
	}
	return "users"
}

const loginHistoryCollection = "login_history"

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if user.ID == "" {
		return nil, goerr.New("user ID is required")
	}

	now := time.Now().UTC()
	user.Role = user.Role.Normalize()
	user.CreatedAt = now
	user.UpdatedAt = now

	docRef := r.client.Collection(r.usersCollection()).Doc(user.ID.String())
	if _, err := docRef.Set(ctx, user); err != nil {
		return nil, goerr.Wrap(err, "failed to create user", goerr.V("id", user.ID))
	}

	return user, nil
}

func (r *userRepository) Get(ctx context.Context, id model.UserID) (*model.User, error) {
	docSnap, err := r.client.Collection(r.usersCollection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("id", id))
	}

	var user model.User
	if err := docSnap.DataTo(&user); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user", goerr.V("id", id))
	}
	user.ID = id

	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	docRef := r.client.Collection(r.usersCollection()).Doc(user.ID.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", user.ID))
		}
		return nil, goerr.Wrap(err, "failed to check user existence", goerr.V("id", user.ID))
	}

	user.UpdatedAt = time.Now().UTC()
	if _, err := docRef.Set(ctx, user); err != nil {
		return nil, goerr.Wrap(err, "failed to update user", goerr.V("id", user.ID))
	}

	return user, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role types.Role) ([]*model.User, error) {
	iter := r.client.Collection(r.usersCollection()).
		Where("role", "==", role.String()).
		Documents(ctx)
	defer iter.Stop()

	var users []*model.User
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate users")
		}

		var user model.User
		if err := docSnap.DataTo(&user); err != nil {
			return nil, goerr.Wrap(err, "failed to decode user", goerr.V("doc_id", docSnap.Ref.ID))
		}
		user.ID = model.UserID(docSnap.Ref.ID)

		users = append(users, &user)
	}

	return users, nil
}

func (r *userRepository) AppendLoginHistory(ctx context.Context, id model.UserID, entry *model.LoginHistory) error {
	entry.Timestamp = time.Now().UTC()

	ref := r.client.Collection(r.usersCollection()).
		Doc(id.String()).
		Collection(loginHistoryCollection).
		NewDoc()
	if _, err := ref.Set(ctx, entry); err != nil {
		return goerr.Wrap(err, "failed to append login history", goerr.V("id", id))
	}

	return nil
}
