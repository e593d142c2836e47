package models

// ReminderPayload is the queued payload for an upcoming-engagement reminder.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	EmployeeID string `json:"employeeId"`
	EventID    string `json:"eventId"`
	FireDate   string `json:"fireDate"` // "2006-01-02"
	Title      string `json:"title"`
	Body       string `json:"body"`
}
