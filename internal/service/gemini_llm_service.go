package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/hirelab/interview-trainer/config"
	"github.com/hirelab/interview-trainer/internal/model"
)

// LLMService is the evaluation collaborator. Every method is availability
// first: on any failure (missing key, network error, timeout, unparsable
// content) it returns the documented fallback payload, never an error. The
// interview flow must not block or fail because the AI backend is broken; a
// broken backend degrades content quality, never flow correctness.
type LLMService interface {
	GenerateQuestions(ctx context.Context, cvText, targetJob, difficulty string) *model.QuestionSet
	EvaluateInterview(ctx context.Context, questions []model.Question, answers []string, cvText, targetJob string) *model.Evaluation
	EvaluateAnswer(ctx context.Context, question model.Question, answer, cvContext string) *model.AnswerEvaluation
	JobRecommendations(ctx context.Context, cvText string, scores model.CategoryScores, jobs []model.JobMarketEntry) []model.JobRecommendation
}

// textGenerator is the narrow seam over the Gemini client, stubbed in tests.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	model *genai.GenerativeModel
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return sb.String(), nil
}

type geminiLLMService struct {
	gen textGenerator
	cfg *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (LLMService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. LLMService will serve fallback payloads only.")
		return &geminiLLMService{cfg: cfg, gen: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	gm := client.GenerativeModel("gemini-1.5-flash")
	gm.ResponseMIMEType = "application/json"
	return &geminiLLMService{gen: &geminiGenerator{model: gm}, cfg: cfg}, nil
}

// call runs one bounded-timeout generation. Empty string means "use fallback".
func (s *geminiLLMService) call(ctx context.Context, prompt string) string {
	if s.gen == nil {
		return ""
	}
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Interview.LLMTimeout)
	defer cancel()

	raw, err := s.gen.Generate(callCtx, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("LLM call failed, falling back")
		return ""
	}
	return raw
}

func (s *geminiLLMService) GenerateQuestions(ctx context.Context, cvText, targetJob, difficulty string) *model.QuestionSet {
	prompt := buildQuestionPrompt(cvText, targetJob, difficulty)
	raw := s.call(ctx, prompt)
	if raw == "" {
		return FallbackQuestionSet(targetJob)
	}
	set, err := parseQuestionSet(raw, s.cfg.Interview.MaxQuestions)
	if err != nil {
		log.Warn().Err(err).Msg("Unparsable question payload, falling back")
		return FallbackQuestionSet(targetJob)
	}
	return set
}

func (s *geminiLLMService) EvaluateInterview(ctx context.Context, questions []model.Question, answers []string, cvText, targetJob string) *model.Evaluation {
	prompt := buildEvaluationPrompt(questions, answers, cvText, targetJob)
	raw := s.call(ctx, prompt)
	if raw == "" {
		return FallbackEvaluation()
	}
	eval, err := parseEvaluation(raw)
	if err != nil {
		log.Warn().Err(err).Msg("Unparsable evaluation payload, falling back")
		return FallbackEvaluation()
	}
	return eval
}

func (s *geminiLLMService) EvaluateAnswer(ctx context.Context, question model.Question, answer, cvContext string) *model.AnswerEvaluation {
	prompt := buildAnswerPrompt(question, answer, cvContext)
	raw := s.call(ctx, prompt)
	if raw == "" {
		return FallbackAnswerEvaluation()
	}
	var eval model.AnswerEvaluation
	if err := json.Unmarshal([]byte(stripJSONFence(raw)), &eval); err != nil {
		log.Warn().Err(err).Msg("Unparsable answer evaluation, falling back")
		return FallbackAnswerEvaluation()
	}
	eval.Score = clampScore(eval.Score)
	return &eval
}

func (s *geminiLLMService) JobRecommendations(ctx context.Context, cvText string, scores model.CategoryScores, jobs []model.JobMarketEntry) []model.JobRecommendation {
	prompt := buildRecommendationPrompt(cvText, scores, jobs)
	raw := s.call(ctx, prompt)
	if raw == "" {
		return nil
	}
	var payload struct {
		Recommendations []model.JobRecommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(stripJSONFence(raw)), &payload); err != nil {
		log.Warn().Err(err).Msg("Unparsable job recommendations, returning none")
		return nil
	}
	return payload.Recommendations
}

// stripJSONFence removes a surrounding markdown code fence, which the model
// emits even in JSON mode on occasion.
func stripJSONFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// minGeneratedQuestions is the lower bound of the generation contract. A
// payload below it maps to the fallback set, which carries exactly this many.
const minGeneratedQuestions = 8

// parseQuestionSet validates the generation payload: at least
// minGeneratedQuestions questions, each carrying text and a known category
// tag. Counts are capped at maxQuestions; unknown categories rotate through
// the fixed tag order so every question stays attributable to one of the
// eight.
func parseQuestionSet(raw string, maxQuestions int) (*model.QuestionSet, error) {
	var set model.QuestionSet
	if err := json.Unmarshal([]byte(stripJSONFence(raw)), &set); err != nil {
		return nil, fmt.Errorf("question payload: %w", err)
	}
	if len(set.Questions) < minGeneratedQuestions {
		return nil, fmt.Errorf("question payload contains %d questions, need at least %d",
			len(set.Questions), minGeneratedQuestions)
	}
	if maxQuestions > 0 && len(set.Questions) > maxQuestions {
		set.Questions = set.Questions[:maxQuestions]
	}
	for i := range set.Questions {
		q := &set.Questions[i]
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("question %d has empty text", i+1)
		}
		q.ID = i + 1
		if !model.IsCategory(q.Category) {
			q.Category = model.Categories[i%len(model.Categories)]
		}
	}
	return &set, nil
}

// parseEvaluation validates the full-interview payload. All eight category
// scores must be present; values are clamped to 0-100. Any total the model
// volunteered is ignored along the way, the schema simply has no field for it.
func parseEvaluation(raw string) (*model.Evaluation, error) {
	var eval model.Evaluation
	if err := json.Unmarshal([]byte(stripJSONFence(raw)), &eval); err != nil {
		return nil, fmt.Errorf("evaluation payload: %w", err)
	}
	if !eval.Scores.Complete() {
		return nil, fmt.Errorf("evaluation payload is missing category scores")
	}
	for c, v := range eval.Scores {
		eval.Scores[c] = clampScore(v)
	}
	if eval.CategoryFeedback == nil {
		eval.CategoryFeedback = map[string]string{}
	}
	return &eval, nil
}

func buildQuestionPrompt(cvText, targetJob, difficulty string) string {
	var b strings.Builder
	b.WriteString("You are an HR expert with 15+ years of recruitment and interviewing experience.\n\n")
	b.WriteString("TASK: analyze the candidate's resume and produce deep, relevant interview questions.\n\n")
	b.WriteString("CANDIDATE RESUME:\n")
	b.WriteString(truncate(cvText, 1500))
	b.WriteString("\n\nTARGET POSITION: " + targetJob + "\n")
	b.WriteString("DIFFICULTY: " + difficulty + "\n\n")
	b.WriteString("Produce 8-10 questions that are specific to the candidate's experience, test both technical and soft skills, match the difficulty, and invite detailed, reflective answers.\n\n")
	b.WriteString("Each question's category must be exactly one of: ")
	b.WriteString(strings.Join(model.Categories, ", "))
	b.WriteString(".\n\nRespond with JSON only, in this shape:\n")
	b.WriteString(`{
  "analysis": {"overall_fit": "...", "strengths": ["..."], "gaps": ["..."], "recommendation": "..."},
  "questions": [
    {"id": 1, "category": "communication", "question": "...", "context": "why this question matters",
     "expected_answer_points": ["..."], "difficulty": "medium"}
  ]
}`)
	return b.String()
}

func buildEvaluationPrompt(questions []model.Question, answers []string, cvText, targetJob string) string {
	var qa strings.Builder
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		fmt.Fprintf(&qa, "Q%d [%s]: %s\nA%d: %s\n\n", i+1, q.Category, q.Question, i+1, answers[i])
	}

	var b strings.Builder
	b.WriteString("As a senior HR evaluator, give a comprehensive evaluation of this interview.\n\n")
	b.WriteString("TARGET POSITION: " + targetJob + "\n")
	b.WriteString("RESUME: " + truncate(cvText, 500) + "\n\n")
	b.WriteString("INTERVIEW TRANSCRIPT:\n" + qa.String())
	b.WriteString("\nScore each category 0-100. Respond with JSON only, in this shape:\n")
	b.WriteString(`{
  "scores": {"communication": 85, "problem_solving": 78, "leadership": 82, "teamwork": 88,
             "technical_knowledge": 75, "adaptability": 80, "creativity": 77, "critical_thinking": 81},
  "category_feedback": {},
  "overall_assessment": "...",
  "strengths": ["..."], "weaknesses": ["..."], "red_flags": [],
  "recommendation": {"decision": "Hire/Maybe/Don't Hire", "confidence": "70%", "reasoning": "...", "next_steps": ["..."]},
  "development_plan": {"priority_areas": ["..."], "suggested_actions": ["..."], "timeline": "3-6 months"}
}`)
	return b.String()
}

func buildAnswerPrompt(question model.Question, answer, cvContext string) string {
	points, _ := json.Marshal(question.ExpectedPoints)
	var b strings.Builder
	b.WriteString("As an expert interviewer, evaluate this candidate answer.\n\n")
	b.WriteString("RESUME CONTEXT: " + truncate(cvContext, 300) + "\n\n")
	fmt.Fprintf(&b, "QUESTION (%s):\n%s\n\n", question.Category, question.Question)
	b.WriteString("EXPECTED POINTS:\n" + string(points) + "\n\n")
	b.WriteString("CANDIDATE ANSWER:\n" + answer + "\n\n")
	b.WriteString("Score 0-100. Respond with JSON only:\n")
	b.WriteString(`{"score": 85, "feedback": "...", "strengths": ["..."], "improvements": ["..."], "missing_points": ["..."], "better_answer_example": "..."}`)
	return b.String()
}

func buildRecommendationPrompt(cvText string, scores model.CategoryScores, jobs []model.JobMarketEntry) string {
	var jobList strings.Builder
	for i, job := range jobs {
		if i >= 15 {
			break
		}
		fmt.Fprintf(&jobList, "- %s: %s\n", job.JobTitle, job.Description)
	}
	scoreJSON, _ := json.Marshal(scores)

	var b strings.Builder
	b.WriteString("As a career advisor, recommend the best matching jobs.\n\n")
	b.WriteString("PROFILE: " + truncate(cvText, 800) + "\n")
	b.WriteString("SCORES: " + string(scoreJSON) + "\n")
	b.WriteString("JOBS:\n" + jobList.String())
	b.WriteString("\nRespond with JSON only:\n")
	b.WriteString(`{"recommendations": [{"job_title": "...", "match_percentage": 85, "match_reasons": ["..."],
  "skill_gaps": ["..."], "salary_range": "...", "growth_potential": "...", "difficulty_to_get": "..."}]}`)
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
