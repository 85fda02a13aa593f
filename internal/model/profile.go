package model

import (
	"time"
)

// CandidateProfile is upserted wholesale on every intake submission, keyed by
// UserID. Skills and Preferences are serialized into text columns.
type CandidateProfile struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	UserID          string    `json:"user_id" gorm:"uniqueIndex;not null"`
	Email           string    `json:"email,omitempty"`
	FullName        string    `json:"full_name,omitempty"`
	CVText          string    `json:"cv_text" gorm:"column:cv_text;type:text;not null"`
	CVHash          string    `json:"cv_hash,omitempty" gorm:"column:cv_hash"`
	TargetJob       string    `json:"target_job" gorm:"not null"`
	JobCategory     string    `json:"job_category,omitempty"`
	ExperienceYears int       `json:"experience_years" gorm:"default:0"`
	EducationLevel  string    `json:"education_level,omitempty"`
	Skills          string    `json:"skills,omitempty" gorm:"type:text"`      // comma separated
	Preferences     string    `json:"preferences,omitempty" gorm:"type:text"` // JSON map
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (CandidateProfile) TableName() string { return "user_profiles" }
