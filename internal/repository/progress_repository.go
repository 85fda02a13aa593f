package repository

import (
	"gorm.io/gorm"

	"github.com/hirelab/interview-trainer/internal/model"
)

type ProgressRepository interface {
	Record(entry *model.UserProgress) error
	ListByUser(userID string, metric string) ([]model.UserProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Record(entry *model.UserProgress) error {
	return r.db.Create(entry).Error
}

func (r *progressRepository) ListByUser(userID string, metric string) ([]model.UserProgress, error) {
	var entries []model.UserProgress
	q := r.db.Where("user_id = ?", userID)
	if metric != "" {
		q = q.Where("metric_name = ?", metric)
	}
	err := q.Order("recorded_at ASC").Find(&entries).Error
	return entries, err
}
