package store

import (
	"errors"
	"time"

	"github.com/taskdeck-dev/taskdeck/internal/models"
	"gorm.io/gorm"
)

type GormTaskStore struct {
	db *gorm.DB
}

func NewGormTaskStore(db *gorm.DB) *GormTaskStore {
	return &GormTaskStore{db: db}
}

func (s *GormTaskStore) Insert(task *models.Task) error {
	return s.db.Create(task).Error
}

func (s *GormTaskStore) FindByID(id, ownerID uint) (*models.Task, error) {
	var task models.Task

	if err := s.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &task, nil
}

func (s *GormTaskStore) ListByOwner(ownerID uint) ([]models.Task, error) {
	var tasks []models.Task

	if err := s.db.Where("owner_id = ?", ownerID).Order("id DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

func (s *GormTaskStore) Update(task *models.Task) error {
	return s.db.Save(task).Error
}

func (s *GormTaskStore) Delete(id, ownerID uint) (bool, error) {
	result := s.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Task{})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (s *GormTaskStore) ListDueBefore(deadline time.Time) ([]models.Task, error) {
	var tasks []models.Task

	err := s.db.Preload("Owner").
		Where("due_date IS NOT NULL AND due_date <= ?", deadline).
		Where("status <> ?", models.StatusCompleted).
		Where("reminder_sent_at IS NULL").
		Find(&tasks).Error

	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (s *GormTaskStore) MarkReminderSent(id uint, at time.Time) error {
	return s.db.Model(&models.Task{}).Where("id = ?", id).Update("reminder_sent_at", at).Error
}
