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
)

type shootRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newShootRepository(client *firestore.Client) *shootRepository {
	return &shootRepository{client: client}
}

func (r *shootRepository) shootsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_shoots"
	}
	return "shoots"
}

const assignmentsCollection = "assignments"

func (r *shootRepository) Create(ctx context.Context, shoot *model.Shoot) (*model.Shoot, error) {
	now := time.Now().UTC()
	if shoot.ID == "" {
		shoot.ID = model.NewShootID()
	}
	shoot.Status = shoot.Status.Normalize()
	shoot.CreatedAt = now
	shoot.UpdatedAt = now

	docRef := r.client.Collection(r.shootsCollection()).Doc(shoot.ID.String())
	if _, err := docRef.Set(ctx, shoot); err != nil {
		return nil, goerr.Wrap(err, "failed to create shoot", goerr.V("id", shoot.ID))
	}

	return shoot, nil
}

func (r *shootRepository) Get(ctx context.Context, id model.ShootID) (*model.Shoot, error) {
	docSnap, err := r.client.Collection(r.shootsCollection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "shoot not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get shoot", goerr.V("id", id))
	}

	var shoot model.Shoot
	if err := docSnap.DataTo(&shoot); err != nil {
		return nil, goerr.Wrap(err, "failed to decode shoot", goerr.V("id", id))
	}
	shoot.ID = id

	return &shoot, nil
}

func (r *shootRepository) collectShoots(iter *firestore.DocumentIterator) ([]*model.Shoot, error) {
	defer iter.Stop()

	var shoots []*model.Shoot
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate shoots")
		}

		var shoot model.Shoot
		if err := docSnap.DataTo(&shoot); err != nil {
			return nil, goerr.Wrap(err, "failed to decode shoot", goerr.V("doc_id", docSnap.Ref.ID))
		}
		shoot.ID = model.ShootID(docSnap.Ref.ID)

		shoots = append(shoots, &shoot)
	}

	return shoots, nil
}

func (r *shootRepository) List(ctx context.Context) ([]*model.Shoot, error) {
	return r.collectShoots(r.client.Collection(r.shootsCollection()).Documents(ctx))
}

func (r *shootRepository) ListByClient(ctx context.Context, clientID model.ClientID) ([]*model.Shoot, error) {
	iter := r.client.Collection(r.shootsCollection()).
		Where("clientId", "==", clientID.String()).
		OrderBy("date", firestore.Desc).
		Documents(ctx)
	return r.collectShoots(iter)
}

func (r *shootRepository) ListUpcoming(ctx context.Context, from time.Time) ([]*model.Shoot, error) {
	iter := r.client.Collection(r.shootsCollection()).
		Where("date", ">=", from).
		OrderBy("date", firestore.Asc).
		Documents(ctx)
	return r.collectShoots(iter)
}

func (r *shootRepository) Update(ctx context.Context, shoot *model.Shoot) (*model.Shoot, error) {
	docRef := r.client.Collection(r.shootsCollection()).Doc(shoot.ID.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "shoot not found", goerr.V("id", shoot.ID))
		}
		return nil, goerr.Wrap(err, "failed to check shoot existence", goerr.V("id", shoot.ID))
	}

	shoot.UpdatedAt = time.Now().UTC()
	if _, err := docRef.Set(ctx, shoot); err != nil {
		return nil, goerr.Wrap(err, "failed to update shoot", goerr.V("id", shoot.ID))
	}

	return shoot, nil
}

func (r *shootRepository) AddAssignment(ctx context.Context, assignment *model.ShootAssignment) (*model.ShootAssignment, error) {
	shootRef := r.client.Collection(r.shootsCollection()).Doc(assignment.ShootID.String())

	if _, err := shootRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "shoot not found", goerr.V("id", assignment.ShootID))
		}
		return nil, goerr.Wrap(err, "failed to check shoot existence", goerr.V("id", assignment.ShootID))
	}

	assignment.AssignedAt = time.Now().UTC()

	ref := shootRef.Collection(assignmentsCollection).NewDoc()
	if _, err := ref.Set(ctx, assignment); err != nil {
		return nil, goerr.Wrap(err, "failed to add shoot assignment", goerr.V("shootID", assignment.ShootID))
	}
	assignment.ID = ref.ID

	return assignment, nil
}

func (r *shootRepository) ListAssignments(ctx context.Context, shootID model.ShootID) ([]*model.ShootAssignment, error) {
	iter := r.client.Collection(r.shootsCollection()).
		Doc(shootID.String()).
		Collection(assignmentsCollection).
		OrderBy("assigned_at", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var assignments []*model.ShootAssignment
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate shoot assignments")
		}

		var assignment model.ShootAssignment
		if err := docSnap.DataTo(&assignment); err != nil {
			return nil, goerr.Wrap(err, "failed to decode shoot assignment", goerr.V("doc_id", docSnap.Ref.ID))
		}
		assignment.ID = docSnap.Ref.ID

		assignments = append(assignments, &assignment)
	}

	return assignments, nil
}
