package model

import (
	"time"
)

// InterviewResult is the one persisted record derived from a completed
// session. Transcript, DetailedFeedback and Recommendations hold serialized
// JSON; the eight category columns plus TotalScore/PassStatus are computed
// once in the interview service before the row is written.
type InterviewResult struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	UserID             string    `json:"user_id" gorm:"index;not null"`
	SessionID          string    `json:"session_id" gorm:"uniqueIndex;not null"`
	JobTitle           string    `json:"job_title" gorm:"not null"`
	DifficultyLevel    string    `json:"difficulty_level"`
	Communication      float64   `json:"communication" gorm:"default:0"`
	ProblemSolving     float64   `json:"problem_solving" gorm:"default:0"`
	Leadership         float64   `json:"leadership" gorm:"default:0"`
	Teamwork           float64   `json:"teamwork" gorm:"default:0"`
	TechnicalKnowledge float64   `json:"technical_knowledge" gorm:"default:0"`
	Adaptability       float64   `json:"adaptability" gorm:"default:0"`
	Creativity         float64   `json:"creativity" gorm:"default:0"`
	CriticalThinking   float64   `json:"critical_thinking" gorm:"default:0"`
	TotalScore         float64   `json:"total_score" gorm:"default:0;index"`
	PassStatus         bool      `json:"pass_status" gorm:"default:false"`
	InterviewDuration  int       `json:"interview_duration"` // seconds
	QuestionsAnswered  int       `json:"questions_answered"`
	Transcript         string    `json:"interview_transcript,omitempty" gorm:"column:interview_transcript;type:text"`
	DetailedFeedback   string    `json:"detailed_feedback,omitempty" gorm:"type:text"`
	Recommendations    string    `json:"recommendations,omitempty" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at" gorm:"index"`
}

func (InterviewResult) TableName() string { return "interview_results" }

// Scores returns the eight category columns as a CategoryScores map.
func (r *InterviewResult) Scores() CategoryScores {
	return CategoryScores{
		CategoryCommunication:      r.Communication,
		CategoryProblemSolving:     r.ProblemSolving,
		CategoryLeadership:         r.Leadership,
		CategoryTeamwork:           r.Teamwork,
		CategoryTechnicalKnowledge: r.TechnicalKnowledge,
		CategoryAdaptability:       r.Adaptability,
		CategoryCreativity:         r.Creativity,
		CategoryCriticalThinking:   r.CriticalThinking,
	}
}

// SetScores fills the eight category columns from a CategoryScores map.
func (r *InterviewResult) SetScores(s CategoryScores) {
	r.Communication = s[CategoryCommunication]
	r.ProblemSolving = s[CategoryProblemSolving]
	r.Leadership = s[CategoryLeadership]
	r.Teamwork = s[CategoryTeamwork]
	r.TechnicalKnowledge = s[CategoryTechnicalKnowledge]
	r.Adaptability = s[CategoryAdaptability]
	r.Creativity = s[CategoryCreativity]
	r.CriticalThinking = s[CategoryCriticalThinking]
}
