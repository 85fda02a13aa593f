package model

import (
	"time"
)

// QAHistoryEntry is one row per answered (non-skipped) question of a completed
// session. Score and Feedback are best effort: nil when the per-answer
// evaluation was unavailable.
type QAHistoryEntry struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       string    `json:"user_id" gorm:"index;not null"`
	SessionID    string    `json:"session_id" gorm:"index;not null"`
	QuestionID   int       `json:"question_id"`
	Category     string    `json:"category"`
	Question     string    `json:"question" gorm:"type:text;not null"`
	Answer       string    `json:"answer" gorm:"type:text;not null"`
	AnswerLength int       `json:"answer_length"`
	ResponseTime int       `json:"response_time"` // seconds
	Score        *float64  `json:"score,omitempty"`
	Feedback     *string   `json:"feedback,omitempty" gorm:"type:text"`
	Timestamp    time.Time `json:"timestamp" gorm:"autoCreateTime"`
}

func (QAHistoryEntry) TableName() string { return "qa_history" }
