package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hirelab/interview-trainer/internal/model"
)

type ProfileRepository interface {
	Upsert(profile *model.CandidateProfile) error
	FindByUserID(userID string) (*model.CandidateProfile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert overwrites the whole profile row keyed by user_id, matching the
// intake form's create-or-replace semantics.
func (r *profileRepository) Upsert(profile *model.CandidateProfile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(profile).Error
}

func (r *profileRepository) FindByUserID(userID string) (*model.CandidateProfile, error) {
	var profile model.CandidateProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
