package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hirelab/interview-trainer/config"
	"github.com/hirelab/interview-trainer/internal/dto"
	"github.com/hirelab/interview-trainer/internal/model"
	"github.com/hirelab/interview-trainer/internal/repository"
	"github.com/hirelab/interview-trainer/internal/session"
)

// InterviewService drives the interview flow end to end: intake, answering,
// evaluation and the one-time commit of a finished session to storage.
type InterviewService interface {
	StartInterview(ctx context.Context, req dto.StartInterviewRequest) (*dto.SessionStateDTO, error)
	GetState(sessionID string) (*dto.SessionStateDTO, error)
	SubmitAnswer(sessionID, answer string) (*dto.SessionStateDTO, error)
	Skip(sessionID string) (*dto.SessionStateDTO, error)
	Back(sessionID string) (*dto.SessionStateDTO, error)
	Finish(ctx context.Context, sessionID string) (*dto.InterviewResultDTO, error)
}

type interviewService struct {
	cfg          *config.Config
	store        *session.Store
	llm          LLMService
	cvService    CVService
	chartService ChartService
	profileRepo  repository.ProfileRepository
	resultRepo   repository.ResultRepository
	qaRepo       repository.QAHistoryRepository
	progressRepo repository.ProgressRepository
}

func NewInterviewService(
	cfg *config.Config,
	store *session.Store,
	llm LLMService,
	cvService CVService,
	chartService ChartService,
	profileRepo repository.ProfileRepository,
	resultRepo repository.ResultRepository,
	qaRepo repository.QAHistoryRepository,
	progressRepo repository.ProgressRepository,
) InterviewService {
	return &interviewService{
		cfg:          cfg,
		store:        store,
		llm:          llm,
		cvService:    cvService,
		chartService: chartService,
		profileRepo:  profileRepo,
		resultRepo:   resultRepo,
		qaRepo:       qaRepo,
		progressRepo: progressRepo,
	}
}

// StartInterview validates the intake form, upserts the profile, asks the
// collaborator for questions (falling back on failure) and opens a session.
// Validation failure is the only path that does not advance the flow.
func (s *interviewService) StartInterview(ctx context.Context, req dto.StartInterviewRequest) (*dto.SessionStateDTO, error) {
	if err := s.cvService.ValidateCV(req.CVText); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.TargetJob) == "" {
		return nil, fmt.Errorf("target job must not be empty")
	}

	userID := req.UserID
	if userID == "" {
		userID = "user_" + time.Now().Format("20060102150405")
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	preferences, _ := json.Marshal(map[string]string{"difficulty": difficulty})
	profile := &model.CandidateProfile{
		UserID:          userID,
		Email:           req.Email,
		FullName:        req.FullName,
		CVText:          req.CVText,
		CVHash:          hashCV(req.CVText),
		TargetJob:       req.TargetJob,
		JobCategory:     req.JobCategory,
		ExperienceYears: req.ExperienceYears,
		EducationLevel:  req.EducationLevel,
		Skills:          strings.Join(req.Skills, ","),
		Preferences:     string(preferences),
	}
	// Persistence failure is non-fatal: the in-memory session is the source
	// of truth until the final commit.
	if err := s.profileRepo.Upsert(profile); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to save candidate profile, continuing")
	}

	set := s.llm.GenerateQuestions(ctx, req.CVText, req.TargetJob, difficulty)
	sess := session.New(userID, req.TargetJob, difficulty, req.CVText, set, s.cfg.Interview.MinAnswerLength)
	s.store.Put(sess)

	log.Info().Str("sessionID", sess.ID).Str("userID", userID).Int("questions", len(sess.Questions)).
		Msg("Interview session started")
	return s.stateDTO(sess), nil
}

func (s *interviewService) GetState(sessionID string) (*dto.SessionStateDTO, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.stateDTO(sess), nil
}

func (s *interviewService) SubmitAnswer(sessionID, answer string) (*dto.SessionStateDTO, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	responseTime := int(time.Since(sess.QuestionAt).Seconds())
	if err := sess.SubmitAnswer(answer, responseTime); err != nil {
		return nil, err
	}
	return s.stateDTO(sess), nil
}

func (s *interviewService) Skip(sessionID string) (*dto.SessionStateDTO, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Skip(); err != nil {
		return nil, err
	}
	return s.stateDTO(sess), nil
}

func (s *interviewService) Back(sessionID string) (*dto.SessionStateDTO, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Back(); err != nil {
		return nil, err
	}
	return s.stateDTO(sess), nil
}

// Finish evaluates the completed session and commits the derived result
// exactly once. The stage guard runs before the collaborator call so an
// incomplete attempt is rejected without spending the evaluation timeout.
// A failed commit leaves the session in Evaluating so finish can be retried;
// the session is discarded only after the result row is written.
func (s *interviewService) Finish(ctx context.Context, sessionID string) (*dto.InterviewResultDTO, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Stage != session.StageEvaluating {
		return nil, session.ErrNotEvaluating
	}

	eval := s.llm.EvaluateInterview(ctx, sess.Questions, sess.Answers, sess.CVText, sess.TargetJob)

	// The single authoritative score computation. Whatever total the
	// collaborator proposed never reaches storage.
	total := TotalScore(eval.Scores)
	passed := Passed(total, s.cfg.Interview.PassingScore)
	duration := sess.Duration()
	answered := sess.AnsweredCount()

	transcript, _ := json.Marshal(sess.Transcript())
	feedback, _ := json.Marshal(eval)
	recommendations, _ := json.Marshal(eval.Recommendation)

	result := &model.InterviewResult{
		UserID:            sess.UserID,
		SessionID:         sess.ID,
		JobTitle:          sess.TargetJob,
		DifficultyLevel:   sess.Difficulty,
		TotalScore:        total,
		PassStatus:        passed,
		InterviewDuration: duration,
		QuestionsAnswered: answered,
		Transcript:        string(transcript),
		DetailedFeedback:  string(feedback),
		Recommendations:   string(recommendations),
	}
	result.SetScores(eval.Scores)

	if err := s.resultRepo.Create(result); err != nil {
		log.Error().Err(err).Str("sessionID", sess.ID).Msg("Failed to save interview result")
		return nil, fmt.Errorf("save interview result: %w", err)
	}
	if err := sess.Finish(); err != nil {
		return nil, err
	}
	s.saveQAHistory(ctx, sess)
	s.recordProgress(sess.UserID, total)
	s.store.Delete(sess.ID)

	resultDTO := &dto.InterviewResultDTO{
		SessionID:         sess.ID,
		UserID:            sess.UserID,
		JobTitle:          sess.TargetJob,
		Difficulty:        sess.Difficulty,
		Scores:            eval.Scores,
		TotalScore:        total,
		Passed:            passed,
		Grade:             Grade(total),
		DurationSeconds:   duration,
		QuestionsAnswered: answered,
		Evaluation:        eval,
		Banner:            Banner(ParseDecision(eval.Recommendation.Decision)),
		CreatedAt:         time.Now(),
	}
	resultDTO.Charts = []dto.ChartSpecDTO{
		s.chartService.Radar(eval.Scores),
		s.chartService.Bar(eval.Scores),
		s.chartService.Gauge(total, s.cfg.Interview.PassingScore),
	}
	return resultDTO, nil
}

// saveQAHistory writes one row per non-skipped answer, scoring each answer
// individually when the collaborator cooperates. Failures are logged and
// skipped; history rows are best effort.
func (s *interviewService) saveQAHistory(ctx context.Context, sess *session.Session) {
	for i, answer := range sess.Answers {
		if sess.Meta[i].Skipped {
			continue
		}
		q := sess.Questions[i]
		answerEval := s.llm.EvaluateAnswer(ctx, q, answer, sess.CVText)
		entry := &model.QAHistoryEntry{
			UserID:       sess.UserID,
			SessionID:    sess.ID,
			QuestionID:   q.ID,
			Category:     q.Category,
			Question:     q.Question,
			Answer:       answer,
			AnswerLength: len(answer),
			ResponseTime: sess.Meta[i].ResponseTime,
		}
		if answerEval != nil {
			score := clampScore(answerEval.Score)
			entry.Score = &score
			entry.Feedback = &answerEval.Feedback
		}
		if err := s.qaRepo.Create(entry); err != nil {
			log.Warn().Err(err).Str("sessionID", sess.ID).Int("questionID", q.ID).
				Msg("Failed to save QA history entry")
		}
	}
}

func (s *interviewService) recordProgress(userID string, total float64) {
	results, err := s.resultRepo.ListByUserAsc(userID)
	if err != nil {
		log.Warn().Err(err).Str("userID", userID).Msg("Failed to load results for progress metric")
		return
	}
	totals := make([]float64, 0, len(results))
	for _, r := range results {
		totals = append(totals, r.TotalScore)
	}
	entry := &model.UserProgress{
		UserID:          userID,
		MetricName:      "total_score",
		MetricValue:     total,
		ImprovementRate: ImprovementRate(totals),
	}
	if err := s.progressRepo.Record(entry); err != nil {
		log.Warn().Err(err).Str("userID", userID).Msg("Failed to record progress metric")
	}
}

func (s *interviewService) stateDTO(sess *session.Session) *dto.SessionStateDTO {
	state := &dto.SessionStateDTO{
		SessionID:      sess.ID,
		UserID:         sess.UserID,
		Stage:          string(sess.Stage),
		Position:       sess.Position,
		TotalQuestions: len(sess.Questions),
		ElapsedSeconds: sess.Duration(),
		DraftAnswer:    sess.CurrentAnswer(),
		Analysis:       sess.Analysis,
	}
	if len(sess.Questions) > 0 {
		state.Progress = float64(sess.Position) / float64(len(sess.Questions))
	}
	if q := sess.Current(); q != nil {
		state.Question = &dto.QuestionDTO{
			ID:             q.ID,
			Category:       q.Category,
			Question:       q.Question,
			Context:        q.Context,
			ExpectedPoints: q.ExpectedPoints,
			Difficulty:     q.Difficulty,
		}
	}
	return state
}

func hashCV(cvText string) string {
	sum := md5.Sum([]byte(cvText))
	return hex.EncodeToString(sum[:])
}
