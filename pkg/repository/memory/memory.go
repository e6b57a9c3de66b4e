// Package memory provides an in-memory Repository implementation used by
// unit tests and local development. Every read returns copies so callers
// can never mutate stored state through a returned pointer.
package memory

import (
	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
)

type Memory struct {
	user         *userRepository
	client       *clientRepository
	task         *taskRepository
	shoot        *shootRepository
	lead         *leadRepository
	invoice      *invoiceRepository
	notification *notificationRepository
	script       *scriptRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		user:         newUserRepository(),
		client:       newClientRepository(),
		task:         newTaskRepository(),
		shoot:        newShootRepository(),
		lead:         newLeadRepository(),
		invoice:      newInvoiceRepository(),
		notification: newNotificationRepository(),
		script:       newScriptRepository(),
	}
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Client() interfaces.ClientRepository {
	return m.client
}

func (m *Memory) Task() interfaces.TaskRepository {
	return m.task
}

func (m *Memory) Shoot() interfaces.ShootRepository {
	return m.shoot
}

func (m *Memory) Lead() interfaces.LeadRepository {
	return m.lead
}

func (m *Memory) Invoice() interfaces.InvoiceRepository {
	return m.invoice
}

func (m *Memory) Notification() interfaces.NotificationRepository {
	return m.notification
}

func (m *Memory) Script() interfaces.ScriptRepository {
	return m.script
}

func (m *Memory) Close() error {
	return nil
}
