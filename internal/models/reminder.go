package models

import "github.com/magabrotheeeer/leaflog/internal/lib/datestatus"

// ReminderStatus состояние напоминания.
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderCompleted ReminderStatus = "completed"
)

// Reminder задача по уходу за растением с датой выполнения.
// PlantName денормализован и обновляется при переименовании растения.
type Reminder struct {
	ID        string         `json:"id"`
	PlantID   string         `json:"plantId"`
	PlantName string         `json:"plantName"`
	Task      string         `json:"task"`
	DueDate   string         `json:"dueDate"`
	Status    ReminderStatus `json:"status"`
}

// ReminderView напоминание с вычисленным сроком для отображения.
type ReminderView struct {
	Reminder
	DaysUntil int               `json:"daysUntil"`
	DueStatus datestatus.Status `json:"dueStatus"`
	Label     string            `json:"label"`
}

// DummyReminder используется для приёма нового напоминания из JSON-запроса.
type DummyReminder struct {
	PlantID string `json:"plantId" validate:"required"`
	Task    string `json:"task" validate:"required"`
	DueDate string `json:"dueDate" validate:"required"`
}
