package repository

import (
	"gorm.io/gorm"

	"github.com/hirelab/interview-trainer/internal/model"
)

type ResultRepository interface {
	Create(result *model.InterviewResult) error
	FindBySessionID(sessionID string) (*model.InterviewResult, error)
	ListByUserDesc(userID string, limit int) ([]model.InterviewResult, error)
	ListByUserAsc(userID string) ([]model.InterviewResult, error)
	CountByUser(userID string) (int64, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.InterviewResult) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindBySessionID(sessionID string) (*model.InterviewResult, error) {
	var result model.InterviewResult
	if err := r.db.Where("session_id = ?", sessionID).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// ListByUserDesc returns the newest results first, capped at limit.
func (r *resultRepository) ListByUserDesc(userID string, limit int) ([]model.InterviewResult, error) {
	var results []model.InterviewResult
	q := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&results).Error
	return results, err
}

// ListByUserAsc returns all results in chronological order, oldest first.
// The analytics service derives its aggregates from this ordering.
func (r *resultRepository) ListByUserAsc(userID string) ([]model.InterviewResult, error) {
	var results []model.InterviewResult
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&results).Error
	return results, err
}

func (r *resultRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.InterviewResult{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
