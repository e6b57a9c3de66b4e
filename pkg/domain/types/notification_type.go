package types

// NotificationType represents the category of a notification
type NotificationType string

const (
	NotificationTypeTask     NotificationType = "task"
	NotificationTypeShoot    NotificationType = "shoot"
	NotificationTypeLead     NotificationType = "lead"
	NotificationTypeInvoice  NotificationType = "invoice"
	NotificationTypeSystem   NotificationType = "system"
	NotificationTypeApproval NotificationType = "approval"
	NotificationTypeUrgent   NotificationType = "urgent"
)

// IsValid checks if the notification type is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeTask,
		NotificationTypeShoot,
		NotificationTypeLead,
		NotificationTypeInvoice,
		NotificationTypeSystem,
		NotificationTypeApproval,
		NotificationTypeUrgent:
		return true
	default:
		return false
	}
}

// String returns the string representation of the notification type
func (t NotificationType) String() string {
	return string(t)
}
