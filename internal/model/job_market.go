package model

import (
	"time"
)

// JobMarketEntry is static reference data, seeded once when the table is
// empty and read-only afterwards.
type JobMarketEntry struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	JobTitle       string    `json:"job_title" gorm:"not null"`
	Category       string    `json:"category"`
	AvgSalaryMin   int       `json:"avg_salary_min"`
	AvgSalaryMax   int       `json:"avg_salary_max"`
	DemandLevel    string    `json:"demand_level"`
	RequiredSkills string    `json:"required_skills"` // comma separated
	Description    string    `json:"description" gorm:"type:text"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (JobMarketEntry) TableName() string { return "job_market" }
