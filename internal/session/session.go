// Package session holds the in-memory interview state machine. A Session is
// the source of truth for an attempt until its result is committed to
// storage; nothing here touches the database.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hirelab/interview-trainer/internal/model"
)

// Stage is the current step of the interview flow.
type Stage string

const (
	StageIntake       Stage = "intake"
	StageInterviewing Stage = "interviewing"
	StageEvaluating   Stage = "evaluating"
	StageResults      Stage = "results"
	StageHistory      Stage = "history"
	StageAnalytics    Stage = "analytics"
)

// SkippedSentinel marks a skipped question in the answers slice.
const SkippedSentinel = "[Skipped]"

var (
	ErrNotInterviewing = errors.New("session is not in the interviewing stage")
	ErrAtFirstQuestion = errors.New("already at the first question")
	ErrNotEvaluating   = errors.New("session has unanswered questions remaining")
)

// AnswerTooShortError rejects an answer below the configured minimum. The
// position does not advance when it is returned.
type AnswerTooShortError struct {
	Length  int
	Minimum int
}

func (e *AnswerTooShortError) Error() string {
	return fmt.Sprintf("answer too short: %d characters, minimum %d", e.Length, e.Minimum)
}

// AnswerMeta is the per-answer metadata recorded alongside each submission.
type AnswerMeta struct {
	ResponseTime int  `json:"response_time"` // seconds
	Skipped      bool `json:"skipped"`
}

// Session is one interview attempt. It is constructed when question generation
// succeeds, mutated by every answer/skip/back action, and discarded once the
// derived result is persisted.
//
// Invariants, maintained by every method:
//
//	len(Meta) == len(Answers) <= len(Questions)
//	0 <= Position <= len(Questions)
//
// Position == len(Questions) means the attempt is complete and the stage has
// moved to Evaluating.
type Session struct {
	ID          string
	UserID      string
	TargetJob   string
	Difficulty  string
	CVText      string
	Analysis    model.Analysis
	Questions   []model.Question
	Answers     []string
	Meta        []AnswerMeta
	Position    int
	Stage       Stage
	ReturnStage Stage // where History/Analytics navigation came from
	StartedAt   time.Time
	QuestionAt  time.Time // when the current question was shown

	minAnswerLen int
}

// New creates a session positioned at the first question.
func New(userID, targetJob, difficulty, cvText string, set *model.QuestionSet, minAnswerLen int) *Session {
	now := time.Now()
	return &Session{
		ID:           newSessionID(now),
		UserID:       userID,
		TargetJob:    targetJob,
		Difficulty:   difficulty,
		CVText:       cvText,
		Analysis:     set.Analysis,
		Questions:    set.Questions,
		Answers:      make([]string, 0, len(set.Questions)),
		Meta:         make([]AnswerMeta, 0, len(set.Questions)),
		Position:     0,
		Stage:        StageInterviewing,
		StartedAt:    now,
		QuestionAt:   now,
		minAnswerLen: minAnswerLen,
	}
}

func newSessionID(now time.Time) string {
	return fmt.Sprintf("session_%s_%s", now.Format("20060102150405"), uuid.NewString()[:8])
}

// Current returns the question at the current position, or nil when the
// attempt is complete.
func (s *Session) Current() *model.Question {
	if s.Position >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Position]
}

// CurrentAnswer returns the stored answer at the current position for
// pre-filling on navigation back. A skip sentinel is cleared to empty.
func (s *Session) CurrentAnswer() string {
	if s.Position >= len(s.Answers) {
		return ""
	}
	if s.Answers[s.Position] == SkippedSentinel {
		return ""
	}
	return s.Answers[s.Position]
}

// Complete reports whether every question has been dealt with.
func (s *Session) Complete() bool {
	return s.Position >= len(s.Questions)
}

// SubmitAnswer records the answer at the current position and advances.
// Length is counted on the raw string, no normalization. Rejection leaves the
// session untouched.
func (s *Session) SubmitAnswer(answer string, responseTime int) error {
	if s.Stage != StageInterviewing {
		return ErrNotInterviewing
	}
	if len(answer) < s.minAnswerLen {
		return &AnswerTooShortError{Length: len(answer), Minimum: s.minAnswerLen}
	}
	s.record(answer, AnswerMeta{ResponseTime: responseTime})
	s.advance()
	return nil
}

// Skip records the skip sentinel with zero response time and advances. Skips
// always bypass the length check.
func (s *Session) Skip() error {
	if s.Stage != StageInterviewing {
		return ErrNotInterviewing
	}
	s.record(SkippedSentinel, AnswerMeta{ResponseTime: 0, Skipped: true})
	s.advance()
	return nil
}

// Back moves to the previous question without touching the stored answer.
func (s *Session) Back() error {
	if s.Stage != StageInterviewing {
		return ErrNotInterviewing
	}
	if s.Position == 0 {
		return ErrAtFirstQuestion
	}
	s.Position--
	s.QuestionAt = time.Now()
	return nil
}

// Finish confirms the transition out of the answering stage. The interview
// service calls it once the derived result has been committed; until then the
// session stays in Evaluating and the transition can be attempted again.
func (s *Session) Finish() error {
	if s.Stage != StageEvaluating {
		return ErrNotEvaluating
	}
	s.Stage = StageResults
	return nil
}

// NavigateTo enters one of the side stages, remembering the origin.
func (s *Session) NavigateTo(stage Stage) {
	if stage != StageHistory && stage != StageAnalytics {
		return
	}
	if s.Stage != StageHistory && s.Stage != StageAnalytics {
		s.ReturnStage = s.Stage
	}
	s.Stage = stage
}

// Return leaves a side stage back to where navigation started.
func (s *Session) Return() {
	if s.Stage != StageHistory && s.Stage != StageAnalytics {
		return
	}
	if s.ReturnStage == "" {
		s.Stage = StageIntake
		return
	}
	s.Stage = s.ReturnStage
}

// Duration is the elapsed time since the session started, in whole seconds.
func (s *Session) Duration() int {
	return int(time.Since(s.StartedAt).Seconds())
}

// Transcript serializes the question/answer pairs in order. Questions not yet
// reached are omitted.
func (s *Session) Transcript() []model.TranscriptEntry {
	entries := make([]model.TranscriptEntry, 0, len(s.Answers))
	for i := range s.Answers {
		entries = append(entries, model.TranscriptEntry{
			QuestionID: s.Questions[i].ID,
			Category:   s.Questions[i].Category,
			Question:   s.Questions[i].Question,
			Answer:     s.Answers[i],
			Skipped:    s.Meta[i].Skipped,
		})
	}
	return entries
}

// AnsweredCount is the number of non-skipped answers.
func (s *Session) AnsweredCount() int {
	count := 0
	for _, m := range s.Meta {
		if !m.Skipped {
			count++
		}
	}
	return count
}

func (s *Session) record(answer string, meta AnswerMeta) {
	if s.Position < len(s.Answers) {
		s.Answers[s.Position] = answer
		s.Meta[s.Position] = meta
		return
	}
	s.Answers = append(s.Answers, answer)
	s.Meta = append(s.Meta, meta)
}

func (s *Session) advance() {
	s.Position++
	s.QuestionAt = time.Now()
	if s.Position >= len(s.Questions) {
		s.Stage = StageEvaluating
	}
}
