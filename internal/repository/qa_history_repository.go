package repository

import (
	"gorm.io/gorm"

	"github.com/hirelab/interview-trainer/internal/model"
)

type QAHistoryRepository interface {
	Create(entry *model.QAHistoryEntry) error
	ListBySession(sessionID string) ([]model.QAHistoryEntry, error)
}

type qaHistoryRepository struct {
	db *gorm.DB
}

func NewQAHistoryRepository(db *gorm.DB) QAHistoryRepository {
	return &qaHistoryRepository{db: db}
}

func (r *qaHistoryRepository) Create(entry *model.QAHistoryEntry) error {
	return r.db.Create(entry).Error
}

func (r *qaHistoryRepository) ListBySession(sessionID string) ([]model.QAHistoryEntry, error) {
	var entries []model.QAHistoryEntry
	err := r.db.Where("session_id = ?", sessionID).Order("question_id ASC").Find(&entries).Error
	return entries, err
}
