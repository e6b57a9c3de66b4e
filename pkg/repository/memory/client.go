package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/repository"
)

type clientRepository struct {
	mu      sync.RWMutex
	clients map[model.ClientID]*model.Client
}

func newClientRepository() *clientRepository {
	return &clientRepository{
		clients: make(map[model.ClientID]*model.Client),
	}
}

func copyClient(c *model.Client) *model.Client {
	cp := *c
	return &cp
}

func (r *clientRepository) Create(_ context.Context, client *model.Client) (*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if client.ID == "" {
		client.ID = model.NewClientID()
	}
	client.CreatedAt = now
	client.UpdatedAt = now

	r.clients[client.ID] = copyClient(client)
	return client, nil
}

func (r *clientRepository) Get(_ context.Context, id model.ClientID) (*model.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[id]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "client not found", goerr.V("id", id))
	}
	return copyClient(client), nil
}

func (r *clientRepository) List(_ context.Context) ([]*model.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var clients []*model.Client
	for _, c := range r.clients {
		clients = append(clients, copyClient(c))
	}
	return clients, nil
}
