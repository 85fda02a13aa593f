package dto

import (
	"time"

	"github.com/hirelab/interview-trainer/internal/model"
)

// AnalyticsDTO is the per-user aggregate dashboard payload.
type AnalyticsDTO struct {
	TotalInterviews  int                  `json:"total_interviews"`
	AverageScore     float64              `json:"average_score"`
	ImprovementRate  float64              `json:"improvement_rate"` // percent, first vs last
	StrongestArea    string               `json:"strongest_area"`
	WeakestArea      string               `json:"weakest_area"`
	CategoryAverages model.CategoryScores `json:"category_averages"`
	LatestScores     model.CategoryScores `json:"latest_scores"`
	Charts           []ChartSpecDTO       `json:"charts,omitempty"`
}

// JobMarketDTO mirrors one job_market reference row.
type JobMarketDTO struct {
	JobTitle       string    `json:"job_title"`
	Category       string    `json:"category"`
	AvgSalaryMin   int       `json:"avg_salary_min"`
	AvgSalaryMax   int       `json:"avg_salary_max"`
	DemandLevel    string    `json:"demand_level"`
	RequiredSkills string    `json:"required_skills"`
	Description    string    `json:"description"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ExtractResponse returns extracted resume text from an uploaded document.
type ExtractResponse struct {
	Text      string `json:"text"`
	CharCount int    `json:"char_count"`
}
