package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
)

type taskRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newTaskRepository(client *firestore.Client) *taskRepository {
	return &taskRepository{client: client}
}

func (r *taskRepository) tasksCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_tasks"
	}
	return "tasks"
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	now := time.Now().UTC()
	if task.ID == "" {
		task.ID = model.NewTaskID()
	}
	task.Status = task.Status.Normalize()
	task.Priority = task.Priority.Normalize()
	task.CreatedAt = now
	task.UpdatedAt = now

	docRef := r.client.Collection(r.tasksCollection()).Doc(task.ID.String())
	if _, err := docRef.Set(ctx, task); err != nil {
		return nil, goerr.Wrap(err, "failed to create task", goerr.V("id", task.ID))
	}

	return task, nil
}

func (r *taskRepository) Get(ctx context.Context, id model.TaskID) (*model.Task, error) {
	docSnap, err := r.client.Collection(r.tasksCollection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get task", goerr.V("id", id))
	}

	var task model.Task
	if err := docSnap.DataTo(&task); err != nil {
		return nil, goerr.Wrap(err, "failed to decode task", goerr.V("id", id))
	}
	task.ID = id

	return &task, nil
}

func (r *taskRepository) List(ctx context.Context, opts ...interfaces.ListTaskOption) ([]*model.Task, error) {
	q := interfaces.BuildTaskQuery(opts...)

	query := r.client.Collection(r.tasksCollection()).Query
	if q.Assignee != "" {
		query = query.Where("assigned_to", "array-contains", q.Assignee.String())
	}
	if q.Status != "" {
		query = query.Where("status", "==", q.Status.String())
	}
	if q.OpenOnly {
		open := make([]string, 0, 2)
		for _, s := range types.OpenTaskStatuses() {
			open = append(open, s.String())
		}
		query = query.Where("status", "in", open)
	}
	if !q.CreatedAfter.IsZero() {
		query = query.Where("created_at", ">=", q.CreatedAfter)
	}
	if !q.DeadlineBefore.IsZero() {
		query = query.Where("deadline", "<=", q.DeadlineBefore)
	}

	switch q.Order {
	case interfaces.TaskOrderDeadlineAsc:
		query = query.OrderBy("deadline", firestore.Asc)
	default:
		query = query.OrderBy("created_at", firestore.Desc)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var tasks []*model.Task
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate tasks")
		}

		var task model.Task
		if err := docSnap.DataTo(&task); err != nil {
			return nil, goerr.Wrap(err, "failed to decode task", goerr.V("doc_id", docSnap.Ref.ID))
		}
		task.ID = model.TaskID(docSnap.Ref.ID)

		tasks = append(tasks, &task)
	}

	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	docRef := r.client.Collection(r.tasksCollection()).Doc(task.ID.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", task.ID))
		}
		return nil, goerr.Wrap(err, "failed to check task existence", goerr.V("id", task.ID))
	}

	task.UpdatedAt = time.Now().UTC()
	if _, err := docRef.Set(ctx, task); err != nil {
		return nil, goerr.Wrap(err, "failed to update task", goerr.V("id", task.ID))
	}

	return task, nil
}

func (r *taskRepository) Delete(ctx context.Context, id model.TaskID) error {
	docRef := r.client.Collection(r.tasksCollection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check task existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete task", goerr.V("id", id))
	}

	return nil
}
