package handlers

import (
	"sort"
	"sync"
	"time"

	"github.com/taskdeck-dev/taskdeck/internal/models"
	"github.com/taskdeck-dev/taskdeck/internal/store"
)

// In-memory store fakes implementing the store contracts, including the
// all-or-nothing cascade between users and their tasks.

type fakeTaskStore struct {
	mu     sync.Mutex
	tasks  map[uint]models.Task
	nextID uint
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[uint]models.Task)}
}

func (s *fakeTaskStore) Insert(task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	task.ID = s.nextID
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	s.tasks[task.ID] = *task

	return nil
}

func (s *fakeTaskStore) FindByID(id, ownerID uint) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]

	if !ok || task.OwnerID != ownerID {
		return nil, store.ErrNotFound
	}

	found := task
	return &found, nil
}

func (s *fakeTaskStore) ListByOwner(ownerID uint) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []models.Task

	for _, task := range s.tasks {
		if task.OwnerID == ownerID {
			tasks = append(tasks, task)
		}
	}

	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID > tasks[j].ID })

	return tasks, nil
}

func (s *fakeTaskStore) Update(task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.UpdatedAt = time.Now()
	s.tasks[task.ID] = *task

	return nil
}

func (s *fakeTaskStore) Delete(id, ownerID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]

	if !ok || task.OwnerID != ownerID {
		return false, nil
	}

	delete(s.tasks, id)
	return true, nil
}

func (s *fakeTaskStore) ListDueBefore(deadline time.Time) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []models.Task

	for _, task := range s.tasks {
		if task.DueDate != nil && !task.DueDate.After(deadline) &&
			task.Status != models.StatusCompleted && task.ReminderSentAt == nil {
			tasks = append(tasks, task)
		}
	}

	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	return tasks, nil
}

func (s *fakeTaskStore) MarkReminderSent(id uint, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task, ok := s.tasks[id]; ok {
		task.ReminderSentAt = &at
		s.tasks[id] = task
	}

	return nil
}

func (s *fakeTaskStore) deleteByOwner(ownerID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, task := range s.tasks {
		if task.OwnerID == ownerID {
			delete(s.tasks, id)
		}
	}
}

type fakeCredentialStore struct {
	mu     sync.Mutex
	users  map[uint]models.User
	nextID uint

	// tasks, when set, receives the cascade on user deletion.
	tasks *fakeTaskStore
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{users: make(map[uint]models.User)}
}

func (s *fakeCredentialStore) Insert(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return store.ErrDuplicate
		}
	}

	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.users[user.ID] = *user

	return nil
}

func (s *fakeCredentialStore) FindByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}

	return nil, store.ErrNotFound
}

func (s *fakeCredentialStore) FindByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email != nil && *user.Email == email {
			found := user
			return &found, nil
		}
	}

	return nil, store.ErrNotFound
}

func (s *fakeCredentialStore) FindByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]

	if !ok {
		return nil, store.ErrNotFound
	}

	found := user
	return &found, nil
}

func (s *fakeCredentialStore) Delete(id uint) error {
	s.mu.Lock()

	if _, ok := s.users[id]; !ok {
		s.mu.Unlock()
		return store.ErrNotFound
	}

	delete(s.users, id)
	s.mu.Unlock()

	if s.tasks != nil {
		s.tasks.deleteByOwner(id)
	}

	return nil
}
