package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/repository"
)

type shootRepository struct {
	mu          sync.RWMutex
	shoots      map[model.ShootID]*model.Shoot
	assignments map[model.ShootID][]*model.ShootAssignment
}

func newShootRepository() *shootRepository {
	return &shootRepository{
		shoots:      make(map[model.ShootID]*model.Shoot),
		assignments: make(map[model.ShootID][]*model.ShootAssignment),
	}
}

func copyShoot(s *model.Shoot) *model.Shoot {
	c := *s
	c.Equipment = append([]string(nil), s.Equipment...)
	return &c
}

func copyAssignment(a *model.ShootAssignment) *model.ShootAssignment {
	c := *a
	return &c
}

func (r *shootRepository) Create(_ context.Context, shoot *model.Shoot) (*model.Shoot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if shoot.ID == "" {
		shoot.ID = model.NewShootID()
	}
	shoot.Status = shoot.Status.Normalize()
	shoot.CreatedAt = now
	shoot.UpdatedAt = now

	r.shoots[shoot.ID] = copyShoot(shoot)
	return shoot, nil
}

func (r *shootRepository) Get(_ context.Context, id model.ShootID) (*model.Shoot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shoot, ok := r.shoots[id]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "shoot not found", goerr.V("id", id))
	}
	return copyShoot(shoot), nil
}

func (r *shootRepository) List(_ context.Context) ([]*model.Shoot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var shoots []*model.Shoot
	for _, s := range r.shoots {
		shoots = append(shoots, copyShoot(s))
	}
	return shoots, nil
}

func (r *shootRepository) ListByClient(_ context.Context, clientID model.ClientID) ([]*model.Shoot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var shoots []*model.Shoot
	for _, s := range r.shoots {
		if s.ClientID == clientID {
			shoots = append(shoots, copyShoot(s))
		}
	}
	sort.Slice(shoots, func(i, j int) bool {
		return shoots[i].Date.After(shoots[j].Date)
	})
	return shoots, nil
}

func (r *shootRepository) ListUpcoming(_ context.Context, from time.Time) ([]*model.Shoot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var shoots []*model.Shoot
	for _, s := range r.shoots {
		if !s.Date.Before(from) {
			shoots = append(shoots, copyShoot(s))
		}
	}
	sort.Slice(shoots, func(i, j int) bool {
		return shoots[i].Date.Before(shoots[j].Date)
	})
	return shoots, nil
}

func (r *shootRepository) Update(_ context.Context, shoot *model.Shoot) (*model.Shoot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.shoots[shoot.ID]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "shoot not found", goerr.V("id", shoot.ID))
	}

	shoot.CreatedAt = existing.CreatedAt
	shoot.UpdatedAt = time.Now().UTC()
	r.shoots[shoot.ID] = copyShoot(shoot)
	return shoot, nil
}

func (r *shootRepository) AddAssignment(_ context.Context, assignment *model.ShootAssignment) (*model.ShootAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.shoots[assignment.ShootID]; !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "shoot not found", goerr.V("id", assignment.ShootID))
	}

	assignment.ID = uuid.New().String()
	assignment.AssignedAt = time.Now().UTC()
	r.assignments[assignment.ShootID] = append(r.assignments[assignment.ShootID], copyAssignment(assignment))
	return assignment, nil
}

func (r *shootRepository) ListAssignments(_ context.Context, shootID model.ShootID) ([]*model.ShootAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var assignments []*model.ShootAssignment
	for _, a := range r.assignments[shootID] {
		assignments = append(assignments, copyAssignment(a))
	}
	return assignments, nil
}
