package dto

import (
	"time"

	"github.com/hirelab/interview-trainer/internal/model"
)

// BannerDTO is the display treatment for a hiring decision.
type BannerDTO struct {
	Decision string `json:"decision"`
	Label    string `json:"label"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
}

// InterviewResultDTO is the full results payload returned when a session
// finishes, including chart specifications for the client to render.
type InterviewResultDTO struct {
	SessionID         string               `json:"session_id"`
	UserID            string               `json:"user_id"`
	JobTitle          string               `json:"job_title"`
	Difficulty        string               `json:"difficulty"`
	Scores            model.CategoryScores `json:"scores"`
	TotalScore        float64              `json:"total_score"`
	Passed            bool                 `json:"passed"`
	Grade             string               `json:"grade"`
	DurationSeconds   int                  `json:"duration_seconds"`
	QuestionsAnswered int                  `json:"questions_answered"`
	Evaluation        *model.Evaluation    `json:"evaluation"`
	Banner            BannerDTO            `json:"banner"`
	Charts            []ChartSpecDTO       `json:"charts,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

// ChartSpecDTO is one declarative chart specification.
type ChartSpecDTO struct {
	Type string `json:"type"` // radar, bar, gauge, timeline
	Spec any    `json:"spec"`
}

// HistoryEntryDTO is one row of the history listing.
type HistoryEntryDTO struct {
	SessionID         string               `json:"session_id"`
	JobTitle          string               `json:"job_title"`
	Difficulty        string               `json:"difficulty_level"`
	Scores            model.CategoryScores `json:"scores"`
	TotalScore        float64              `json:"total_score"`
	Passed            bool                 `json:"pass_status"`
	Grade             string               `json:"grade"`
	DurationSeconds   int                  `json:"interview_duration"`
	QuestionsAnswered int                  `json:"questions_answered"`
	CreatedAt         time.Time            `json:"created_at"`
}

// HistoryDTO is the history listing with its summary stats.
type HistoryDTO struct {
	Total        int               `json:"total"`
	AverageScore float64           `json:"average_score"`
	PassedCount  int               `json:"passed_count"`
	Entries      []HistoryEntryDTO `json:"entries"`
}
