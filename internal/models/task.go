package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// TaskStatuses lists the allowed values for Task.Status.
var TaskStatuses = []string{StatusPending, StatusInProgress, StatusCompleted}

func ValidStatus(status string) bool {
	for _, s := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Task struct {
	gorm.Model

	Title          string `gorm:"not null"`
	Description    string
	Status         string `gorm:"not null;default:pending"`
	DueDate        *time.Time
	OwnerID        uint       `gorm:"not null;index"`
	ReminderSentAt *time.Time `json:"-"`

	// Relationships
	Owner User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
