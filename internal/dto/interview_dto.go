package dto

import (
	"github.com/hirelab/interview-trainer/internal/model"
)

// StartInterviewRequest is the intake form: profile, resume and job target.
type StartInterviewRequest struct {
	UserID          string   `json:"user_id"` // generated when empty
	FullName        string   `json:"full_name"`
	Email           string   `json:"email"`
	CVText          string   `json:"cv_text" binding:"required"`
	TargetJob       string   `json:"target_job" binding:"required"`
	JobCategory     string   `json:"job_category"`
	ExperienceYears int      `json:"experience_years"`
	EducationLevel  string   `json:"education_level"`
	Skills          []string `json:"skills"`
	Difficulty      string   `json:"difficulty"`
}

// AnswerRequest carries one submitted answer.
type AnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// QuestionDTO is the question as shown to the candidate.
type QuestionDTO struct {
	ID             int      `json:"id"`
	Category       string   `json:"category"`
	Question       string   `json:"question"`
	Context        string   `json:"context,omitempty"`
	ExpectedPoints []string `json:"expected_answer_points,omitempty"`
	Difficulty     string   `json:"difficulty,omitempty"`
}

// SessionStateDTO is the current view of an in-progress session.
type SessionStateDTO struct {
	SessionID      string         `json:"session_id"`
	UserID         string         `json:"user_id"`
	Stage          string         `json:"stage"`
	Position       int            `json:"position"`
	TotalQuestions int            `json:"total_questions"`
	Progress       float64        `json:"progress"` // 0..1
	Question       *QuestionDTO   `json:"question,omitempty"`
	DraftAnswer    string         `json:"draft_answer,omitempty"` // pre-filled on navigation back
	ElapsedSeconds int            `json:"elapsed_seconds"`
	Analysis       model.Analysis `json:"analysis"`
}
