package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	User() UserRepository
	Client() ClientRepository
	Task() TaskRepository
	Shoot() ShootRepository
	Lead() LeadRepository
	Invoice() InvoiceRepository
	Notification() NotificationRepository
	Script() ScriptRepository

	Close() error
}
