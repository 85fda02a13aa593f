package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/hirelab/interview-trainer/config"
	"github.com/hirelab/interview-trainer/internal/model"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testLLMConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Interview.MaxQuestions = 10
	cfg.Interview.LLMTimeout = 5 * time.Second
	return cfg
}

func newStubService(gen textGenerator) *geminiLLMService {
	return &geminiLLMService{gen: gen, cfg: testLLMConfig()}
}

func questionPayload(n int) string {
	var items []string
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(
			`{"id": %d, "category": "communication", "question": "Question number %d?", "difficulty": "medium"}`,
			i+1, i+1))
	}
	return fmt.Sprintf(`{"analysis": {"overall_fit": "80%%"}, "questions": [%s]}`, strings.Join(items, ","))
}

// blankQuestionPayload is a full-size payload whose last question has no text.
func blankQuestionPayload() string {
	var items []string
	for i := 1; i <= 7; i++ {
		items = append(items, fmt.Sprintf(`{"id": %d, "category": "teamwork", "question": "Question %d?"}`, i, i))
	}
	items = append(items, `{"id": 8, "category": "teamwork", "question": "   "}`)
	return fmt.Sprintf(`{"questions": [%s]}`, strings.Join(items, ","))
}

func TestGenerateQuestionsParsesValidPayload(t *testing.T) {
	gen := &stubGenerator{response: questionPayload(8)}
	svc := newStubService(gen)

	set := svc.GenerateQuestions(context.Background(), "cv text", "Software Engineer", "medium")
	if len(set.Questions) != 8 {
		t.Fatalf("len(Questions) = %d, want 8", len(set.Questions))
	}
	if set.Analysis.OverallFit != "80%" {
		t.Errorf("OverallFit = %q", set.Analysis.OverallFit)
	}
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "Software Engineer") {
		t.Error("prompt should mention the target job")
	}
}

func TestGenerateQuestionsStripsCodeFence(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" + questionPayload(9) + "\n```"}
	svc := newStubService(gen)

	set := svc.GenerateQuestions(context.Background(), "cv", "Engineer", "easy")
	if len(set.Questions) != 9 {
		t.Fatalf("len(Questions) = %d, want 9", len(set.Questions))
	}
}

func TestGenerateQuestionsCapsAndReassignsIDs(t *testing.T) {
	gen := &stubGenerator{response: questionPayload(14)}
	svc := newStubService(gen)

	set := svc.GenerateQuestions(context.Background(), "cv", "Engineer", "hard")
	if len(set.Questions) != 10 {
		t.Fatalf("len(Questions) = %d, want cap of 10", len(set.Questions))
	}
	for i, q := range set.Questions {
		if q.ID != i+1 {
			t.Errorf("Questions[%d].ID = %d, want %d", i, q.ID, i+1)
		}
	}
}

func TestGenerateQuestionsNormalizesUnknownCategory(t *testing.T) {
	items := []string{`{"id": 1, "category": "charisma", "question": "First?"}`}
	for i := 2; i <= 8; i++ {
		items = append(items, fmt.Sprintf(`{"id": %d, "category": "teamwork", "question": "Question %d?"}`, i, i))
	}
	payload := fmt.Sprintf(`{"questions": [%s]}`, strings.Join(items, ","))
	svc := newStubService(&stubGenerator{response: payload})

	set := svc.GenerateQuestions(context.Background(), "cv", "Engineer", "medium")
	if got := set.Questions[0].Category; got != model.Categories[0] {
		t.Errorf("Questions[0].Category = %q, want %q", got, model.Categories[0])
	}
	if got := set.Questions[1].Category; got != model.CategoryTeamwork {
		t.Errorf("known category was rewritten to %q", got)
	}
}

func TestGenerateQuestionsFallsBack(t *testing.T) {
	cases := []struct {
		name string
		gen  textGenerator
	}{
		{"generator error", &stubGenerator{err: errors.New("network down")}},
		{"malformed json", &stubGenerator{response: "{not json"}},
		{"empty question list", &stubGenerator{response: `{"questions": []}`}},
		{"fewer than eight questions", &stubGenerator{response: questionPayload(7)}},
		{"blank question text", &stubGenerator{response: blankQuestionPayload()}},
		{"no generator configured", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newStubService(tc.gen)
			set := svc.GenerateQuestions(context.Background(), "cv", "Data Analyst", "medium")
			if len(set.Questions) != len(model.Categories) {
				t.Fatalf("fallback has %d questions, want %d", len(set.Questions), len(model.Categories))
			}
			seen := map[string]bool{}
			for _, q := range set.Questions {
				seen[q.Category] = true
			}
			for _, c := range model.Categories {
				if !seen[c] {
					t.Errorf("fallback is missing category %q", c)
				}
			}
			if !strings.Contains(set.Analysis.Recommendation, "Data Analyst") {
				t.Error("fallback analysis should mention the target job")
			}
		})
	}
}

func TestEvaluateInterviewParsesAndClamps(t *testing.T) {
	payload := `{
		"scores": {"communication": 120, "problem_solving": -5, "leadership": 70, "teamwork": 80,
			"technical_knowledge": 75, "adaptability": 65, "creativity": 72, "critical_thinking": 68},
		"overall_assessment": "Solid",
		"recommendation": {"decision": "Hire", "confidence": "80%"}
	}`
	svc := newStubService(&stubGenerator{response: payload})

	eval := svc.EvaluateInterview(context.Background(), nil, nil, "cv", "Engineer")
	if eval.Scores[model.CategoryCommunication] != 100 {
		t.Errorf("score above 100 not clamped: %v", eval.Scores[model.CategoryCommunication])
	}
	if eval.Scores[model.CategoryProblemSolving] != 0 {
		t.Errorf("negative score not clamped: %v", eval.Scores[model.CategoryProblemSolving])
	}
	if eval.Recommendation.Decision != "Hire" {
		t.Errorf("Decision = %q", eval.Recommendation.Decision)
	}
	if eval.CategoryFeedback == nil {
		t.Error("CategoryFeedback should never be nil")
	}
}

func TestEvaluateInterviewRejectsIncompleteScores(t *testing.T) {
	payload := `{"scores": {"communication": 80}, "overall_assessment": "thin"}`
	svc := newStubService(&stubGenerator{response: payload})

	eval := svc.EvaluateInterview(context.Background(), nil, nil, "cv", "Engineer")
	if !eval.Scores.Complete() {
		t.Fatal("fallback evaluation must carry all eight categories")
	}
	if eval.Recommendation.Decision != "Maybe" {
		t.Errorf("fallback Decision = %q, want Maybe", eval.Recommendation.Decision)
	}
}

func TestEvaluateAnswer(t *testing.T) {
	payload := `{"score": 130, "feedback": "Strong", "strengths": ["clear"], "improvements": []}`
	svc := newStubService(&stubGenerator{response: payload})

	eval := svc.EvaluateAnswer(context.Background(), model.Question{ID: 1, Category: model.CategoryTeamwork, Question: "Q?"}, "answer", "cv")
	if eval.Score != 100 {
		t.Errorf("Score = %v, want clamp to 100", eval.Score)
	}
	if eval.Feedback != "Strong" {
		t.Errorf("Feedback = %q", eval.Feedback)
	}

	svc = newStubService(&stubGenerator{err: errors.New("boom")})
	eval = svc.EvaluateAnswer(context.Background(), model.Question{}, "answer", "cv")
	if eval.Score != 70 {
		t.Errorf("fallback Score = %v, want 70", eval.Score)
	}
}

func TestJobRecommendations(t *testing.T) {
	payload := `{"recommendations": [{"job_title": "Backend Developer", "match_percentage": 85}]}`
	svc := newStubService(&stubGenerator{response: payload})

	recs := svc.JobRecommendations(context.Background(), "cv", model.CategoryScores{}, nil)
	if len(recs) != 1 || recs[0].JobTitle != "Backend Developer" {
		t.Fatalf("recs = %+v", recs)
	}

	svc = newStubService(&stubGenerator{err: errors.New("down")})
	if recs := svc.JobRecommendations(context.Background(), "cv", nil, nil); recs != nil {
		t.Errorf("recs on failure = %+v, want nil", recs)
	}
}

func TestStripJSONFence(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"  {\"a\": 1}  ", `{"a": 1}`},
	}
	for _, tc := range cases {
		if got := stripJSONFence(tc.in); got != tc.want {
			t.Errorf("stripJSONFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
