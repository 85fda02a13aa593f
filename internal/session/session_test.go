package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/hirelab/interview-trainer/internal/model"
)

func questionSet(n int) *model.QuestionSet {
	set := &model.QuestionSet{}
	for i := 0; i < n; i++ {
		set.Questions = append(set.Questions, model.Question{
			ID:       i + 1,
			Category: model.Categories[i%len(model.Categories)],
			Question: "Tell me about a challenge you faced.",
		})
	}
	return set
}

func validAnswer() string {
	return strings.Repeat("a", 60)
}

func checkInvariants(t *testing.T, s *Session) {
	t.Helper()
	if len(s.Meta) != len(s.Answers) {
		t.Fatalf("len(Meta)=%d, len(Answers)=%d", len(s.Meta), len(s.Answers))
	}
	if len(s.Answers) > len(s.Questions) {
		t.Fatalf("len(Answers)=%d exceeds len(Questions)=%d", len(s.Answers), len(s.Questions))
	}
	if s.Position < 0 || s.Position > len(s.Questions) {
		t.Fatalf("Position=%d out of range [0, %d]", s.Position, len(s.Questions))
	}
}

func TestNewSession(t *testing.T) {
	s := New("u1", "Software Engineer", "medium", "cv", questionSet(5), 50)

	if s.Stage != StageInterviewing {
		t.Errorf("Stage = %q, want %q", s.Stage, StageInterviewing)
	}
	if s.Position != 0 {
		t.Errorf("Position = %d, want 0", s.Position)
	}
	if !strings.HasPrefix(s.ID, "session_") {
		t.Errorf("ID = %q, want session_ prefix", s.ID)
	}
	if s.Current() == nil || s.Current().ID != 1 {
		t.Error("Current() should be the first question")
	}
	checkInvariants(t, s)
}

func TestSubmitAnswerAdvances(t *testing.T) {
	s := New("u1", "Software Engineer", "medium", "cv", questionSet(3), 50)

	if err := s.SubmitAnswer(validAnswer(), 12); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if s.Position != 1 {
		t.Errorf("Position = %d, want 1", s.Position)
	}
	if s.Meta[0].ResponseTime != 12 {
		t.Errorf("ResponseTime = %d, want 12", s.Meta[0].ResponseTime)
	}
	checkInvariants(t, s)
}

func TestSubmitAnswerLengthBoundary(t *testing.T) {
	s := New("u1", "Software Engineer", "medium", "cv", questionSet(2), 50)

	err := s.SubmitAnswer(strings.Repeat("x", 49), 5)
	var tooShort *AnswerTooShortError
	if !errors.As(err, &tooShort) {
		t.Fatalf("want AnswerTooShortError, got %v", err)
	}
	if tooShort.Length != 49 || tooShort.Minimum != 50 {
		t.Errorf("Length=%d Minimum=%d, want 49 and 50", tooShort.Length, tooShort.Minimum)
	}
	if s.Position != 0 || len(s.Answers) != 0 {
		t.Error("rejected answer must not mutate the session")
	}

	if err := s.SubmitAnswer(strings.Repeat("x", 50), 5); err != nil {
		t.Fatalf("50-char answer should be accepted: %v", err)
	}
	checkInvariants(t, s)
}

func TestSkipRecordsSentinel(t *testing.T) {
	s := New("u1", "Software Engineer", "medium", "cv", questionSet(2), 50)

	if err := s.Skip(); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if s.Answers[0] != SkippedSentinel {
		t.Errorf("Answers[0] = %q, want sentinel", s.Answers[0])
	}
	if !s.Meta[0].Skipped || s.Meta[0].ResponseTime != 0 {
		t.Errorf("Meta[0] = %+v, want skipped with zero response time", s.Meta[0])
	}
	if s.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount = %d, want 0", s.AnsweredCount())
	}
	checkInvariants(t, s)
}

func TestCompletionEntersEvaluating(t *testing.T) {
	s := New("u1", "Software Engineer", "medium", "cv", questionSet(2), 50)

	if err := s.SubmitAnswer(validAnswer(), 1); err != nil {
		t.Fatal(err)
	}
	if s.Stage != StageInterviewing {
		t.Errorf("Stage = %q before last answer, want interviewing", s.Stage)
	}
	if err := s.Skip(); err != nil {
		t.Fatal(err)
	}
	if s.Stage != StageEvaluating {
		t.Errorf("Stage = %q after last answer, want evaluating", s.Stage)
	}
	if !s.Complete() {
		t.Error("Complete() = false on a finished attempt")
	}
	if s.Current() != nil {
		t.Error("Current() should be nil on a finished attempt")
	}
	if err := s.SubmitAnswer(validAnswer(), 1); err != ErrNotInterviewing {
		t.Errorf("SubmitAnswer after completion = %v, want ErrNotInterviewing", err)
	}
	checkInvariants(t, s)
}

func TestBackPrefillsAndOverwrites(t *testing.T) {
	s := New("u1", "Software Engineer", "medium", "cv", questionSet(3), 50)

	if err := s.Back(); err != ErrAtFirstQuestion {
		t.Fatalf("Back at position 0 = %v, want ErrAtFirstQuestion", err)
	}

	first := strings.Repeat("first answer ", 5)
	if err := s.SubmitAnswer(first, 3); err != nil {
		t.Fatal(err)
	}
	if err := s.Back(); err != nil {
		t.Fatal(err)
	}
	if got := s.CurrentAnswer(); got != first {
		t.Errorf("CurrentAnswer = %q, want the stored answer", got)
	}

	revised := strings.Repeat("revised answer ", 5)
	if err := s.SubmitAnswer(revised, 4); err != nil {
		t.Fatal(err)
	}
	if s.Answers[0] != revised {
		t.Errorf("Answers[0] = %q, want the revised answer", s.Answers[0])
	}
	if len(s.Answers) != 1 {
		t.Errorf("len(Answers) = %d, want 1 after overwrite", len(s.Answers))
	}
	checkInvariants(t, s)
}

func TestBackAfterSkipClearsPrefill(t *testing.T) {
	s := New("u1", "Software Engineer", "medium", "cv", questionSet(3), 50)

	if err := s.Skip(); err != nil {
		t.Fatal(err)
	}
	if err := s.Back(); err != nil {
		t.Fatal(err)
	}
	if got := s.CurrentAnswer(); got != "" {
		t.Errorf("CurrentAnswer after skip = %q, want empty", got)
	}
}

func TestFinishTransition(t *testing.T) {
	s := New("u1", "Software Engineer", "medium", "cv", questionSet(1), 50)

	if err := s.Finish(); err != ErrNotEvaluating {
		t.Fatalf("Finish while interviewing = %v, want ErrNotEvaluating", err)
	}
	if err := s.SubmitAnswer(validAnswer(), 2); err != nil {
		t.Fatal(err)
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if s.Stage != StageResults {
		t.Errorf("Stage = %q, want results", s.Stage)
	}
	if err := s.Finish(); err != ErrNotEvaluating {
		t.Errorf("second Finish = %v, want ErrNotEvaluating", err)
	}
}

func TestSideStageNavigation(t *testing.T) {
	s := New("u1", "Software Engineer", "medium", "cv", questionSet(2), 50)

	s.NavigateTo(StageHistory)
	if s.Stage != StageHistory {
		t.Fatalf("Stage = %q, want history", s.Stage)
	}
	s.NavigateTo(StageAnalytics)
	if s.Stage != StageAnalytics {
		t.Fatalf("Stage = %q, want analytics", s.Stage)
	}
	s.Return()
	if s.Stage != StageInterviewing {
		t.Errorf("Return landed on %q, want the origin stage", s.Stage)
	}

	// Navigation targets other than the side stages are ignored.
	s.NavigateTo(StageResults)
	if s.Stage != StageInterviewing {
		t.Errorf("NavigateTo(results) changed stage to %q", s.Stage)
	}
}

func TestTranscriptOrder(t *testing.T) {
	s := New("u1", "Software Engineer", "medium", "cv", questionSet(3), 50)

	if err := s.SubmitAnswer(validAnswer(), 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Skip(); err != nil {
		t.Fatal(err)
	}

	entries := s.Transcript()
	if len(entries) != 2 {
		t.Fatalf("len(Transcript) = %d, want 2", len(entries))
	}
	if entries[0].QuestionID != 1 || entries[0].Skipped {
		t.Errorf("entry 0 = %+v, want answered question 1", entries[0])
	}
	if entries[1].QuestionID != 2 || !entries[1].Skipped {
		t.Errorf("entry 1 = %+v, want skipped question 2", entries[1])
	}
	if entries[1].Answer != SkippedSentinel {
		t.Errorf("skipped answer = %q, want sentinel", entries[1].Answer)
	}
}
