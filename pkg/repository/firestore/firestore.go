package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/repository"
)

// ErrNotFound aliases the shared sentinel so existing call sites keep
// working against either backend.
var ErrNotFound = repository.ErrNotFound

type Firestore struct {
	client       *firestore.Client
	user         *userRepository
	clientRepo   *clientRepository
	task         *taskRepository
	shoot        *shootRepository
	lead         *leadRepository
	invoice      *invoiceRepository
	notification *notificationRepository
	script       *scriptRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes every collection name, used to isolate test
// runs sharing one Firestore project
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.user.collectionPrefix = prefix
		f.clientRepo.collectionPrefix = prefix
		f.task.collectionPrefix = prefix
		f.shoot.collectionPrefix = prefix
		f.lead.collectionPrefix = prefix
		f.invoice.collectionPrefix = prefix
		f.notification.collectionPrefix = prefix
		f.script.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:       client,
		user:         newUserRepository(client),
		clientRepo:   newClientRepository(client),
		task:         newTaskRepository(client),
		shoot:        newShootRepository(client),
		lead:         newLeadRepository(client),
		invoice:      newInvoiceRepository(client),
		notification: newNotificationRepository(client),
		script:       newScriptRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) User() interfaces.UserRepository {
	return f.user
}

func (f *Firestore) Client() interfaces.ClientRepository {
	return f.clientRepo
}

func (f *Firestore) Task() interfaces.TaskRepository {
	return f.task
}

func (f *Firestore) Shoot() interfaces.ShootRepository {
	return f.shoot
}

func (f *Firestore) Lead() interfaces.LeadRepository {
	return f.lead
}

func (f *Firestore) Invoice() interfaces.InvoiceRepository {
	return f.invoice
}

func (f *Firestore) Notification() interfaces.NotificationRepository {
	return f.notification
}

func (f *Firestore) Script() interfaces.ScriptRepository {
	return f.script
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
