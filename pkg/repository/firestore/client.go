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

type clientRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newClientRepository(client *firestore.Client) *clientRepository {
	return &clientRepository{client: client}
}

func (r *clientRepository) clientsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_clients"
	}
	return "clients"
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	now := time.Now().UTC()
	if client.ID == "" {
		client.ID = model.NewClientID()
	}
	client.CreatedAt = now
	client.UpdatedAt = now

	docRef := r.client.Collection(r.clientsCollection()).Doc(client.ID.String())
	if _, err := docRef.Set(ctx, client); err != nil {
		return nil, goerr.Wrap(err, "failed to create client", goerr.V("id", client.ID))
	}

	return client, nil
}

func (r *clientRepository) Get(ctx context.Context, id model.ClientID) (*model.Client, error) {
	docSnap, err := r.client.Collection(r.clientsCollection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "client not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get client", goerr.V("id", id))
	}

	var client model.Client
	if err := docSnap.DataTo(&client); err != nil {
		return nil, goerr.Wrap(err, "failed to decode client", goerr.V("id", id))
	}
	client.ID = id

	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*model.Client, error) {
	iter := r.client.Collection(r.clientsCollection()).Documents(ctx)
	defer iter.Stop()

	var clients []*model.Client
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate clients")
		}

		var client model.Client
		if err := docSnap.DataTo(&client); err != nil {
			return nil, goerr.Wrap(err, "failed to decode client", goerr.V("doc_id", docSnap.Ref.ID))
		}
		client.ID = model.ClientID(docSnap.Ref.ID)

		clients = append(clients, &client)
	}

	return clients, nil
}
