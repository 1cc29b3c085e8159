package model

// NotificationField is one titled section of a run summary.
type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}

// Notification is a run summary for downstream notifiers.
// Failed marks a run where at least one reminder could not be scheduled.
type Notification struct {
	Title       string
	Description string
	Fields      []NotificationField
	Failed      bool
}
