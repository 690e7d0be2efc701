package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/taskdeck-dev/taskdeck/internal/apperr"
	"github.com/taskdeck-dev/taskdeck/internal/models"
	"github.com/taskdeck-dev/taskdeck/internal/store"
)

const titleMaxLen = 200

type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Status      string
}

// UpdateTaskInput is a sparse patch: nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *string
}

// TaskService enforces field validation, the status enum and ownership
// scoping. Every operation takes the caller's user id resolved by the
// auth middleware; a task id alone is never trusted.
type TaskService struct {
	tasks store.TaskStore
}

func NewTaskService(tasks store.TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) Create(userID uint, input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)

	if title == "" {
		return nil, apperr.New(apperr.KindValidation, "title is required")
	}

	if len(title) > titleMaxLen {
		return nil, apperr.Newf(apperr.KindValidation, "title must be at most %d characters", titleMaxLen)
	}

	status := input.Status

	if status == "" {
		status = models.StatusPending
	} else if !models.ValidStatus(status) {
		return nil, apperr.Newf(apperr.KindValidation, "invalid status, use one of: %s", strings.Join(models.TaskStatuses, ", "))
	}

	task := &models.Task{
		Title:       title,
		Description: input.Description,
		Status:      status,
		DueDate:     input.DueDate,
		OwnerID:     userID,
	}

	if err := s.tasks.Insert(task); err != nil {
		log.Printf("Failed to create task: %v", err)
		return nil, apperr.Internal(err)
	}

	return task, nil
}

// List returns the caller's tasks, most recently created first.
func (s *TaskService) List(userID uint) ([]models.Task, error) {
	tasks, err := s.tasks.ListByOwner(userID)

	if err != nil {
		log.Printf("Failed to list tasks for user %d: %v", userID, err)
		return nil, apperr.Internal(err)
	}

	return tasks, nil
}

// Get returns the task only when it exists and belongs to the caller.
// A task owned by someone else is reported as not found, so existence of
// other users' tasks is never disclosed.
func (s *TaskService) Get(userID, taskID uint) (*models.Task, error) {
	task, err := s.tasks.FindByID(taskID, userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "task not found")
		}
		log.Printf("Failed to fetch task %d: %v", taskID, err)
		return nil, apperr.Internal(err)
	}

	return task, nil
}

// Update applies a sparse patch. Validation runs before any field is
// touched, so an invalid patch leaves the stored task untouched.
func (s *TaskService) Update(userID, taskID uint, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.Get(userID, taskID)

	if err != nil {
		return nil, err
	}

	if input.Status != nil && !models.ValidStatus(*input.Status) {
		return nil, apperr.Newf(apperr.KindValidation, "invalid status, use one of: %s", strings.Join(models.TaskStatuses, ", "))
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperr.New(apperr.KindValidation, "title cannot be empty")
		}
		if len(title) > titleMaxLen {
			return nil, apperr.Newf(apperr.KindValidation, "title must be at most %d characters", titleMaxLen)
		}
		task.Title = title
	}

	if input.Description != nil {
		task.Description = *input.Description
	}

	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if input.Status != nil {
		task.Status = *input.Status
	}

	if err := s.tasks.Update(task); err != nil {
		log.Printf("Failed to update task %d: %v", taskID, err)
		return nil, apperr.Internal(err)
	}

	return task, nil
}

func (s *TaskService) Delete(userID, taskID uint) error {
	deleted, err := s.tasks.Delete(taskID, userID)

	if err != nil {
		log.Printf("Failed to delete task %d: %v", taskID, err)
		return apperr.Internal(err)
	}

	if !deleted {
		return apperr.New(apperr.KindNotFound, "task not found")
	}

	return nil
}
