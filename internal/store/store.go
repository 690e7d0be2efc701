// Package store defines the persistence contracts the services depend on,
// along with their GORM implementations.
package store

import (
	"errors"
	"time"

	"github.com/taskdeck-dev/taskdeck/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no row visible to
	// the caller.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// CredentialStore persists user records. Insert enforces username
// uniqueness. Delete removes the user and all owned tasks atomically.
type CredentialStore interface {
	Insert(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Delete(id uint) error
}

// TaskStore persists task records. Every owner-scoped method treats a row
// owned by someone else the same as an absent row.
type TaskStore interface {
	Insert(task *models.Task) error
	FindByID(id, ownerID uint) (*models.Task, error)
	ListByOwner(ownerID uint) ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id, ownerID uint) (bool, error)

	// ListDueBefore returns unfinished tasks due before the deadline
	// whose reminder has not been dispatched yet, with Owner preloaded.
	ListDueBefore(deadline time.Time) ([]models.Task, error)
	MarkReminderSent(id uint, at time.Time) error
}
