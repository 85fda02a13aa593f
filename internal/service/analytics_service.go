package service

import (
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/hirelab/interview-trainer/internal/dto"
	"github.com/hirelab/interview-trainer/internal/repository"
)

// AnalyticsService aggregates a user's persisted results into the dashboard
// payload. All arithmetic happens here, over rows the repository returns in
// chronological order; nothing is duplicated in SQL.
type AnalyticsService interface {
	GetAnalytics(userID string) (*dto.AnalyticsDTO, error)
	GetHistory(userID string, limit int) (*dto.HistoryDTO, error)
}

type analyticsService struct {
	resultRepo   repository.ResultRepository
	chartService ChartService
}

func NewAnalyticsService(resultRepo repository.ResultRepository, chartService ChartService) AnalyticsService {
	return &analyticsService{resultRepo: resultRepo, chartService: chartService}
}

func (s *analyticsService) GetAnalytics(userID string) (*dto.AnalyticsDTO, error) {
	results, err := s.resultRepo.ListByUserAsc(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to load results for analytics")
		return &dto.AnalyticsDTO{}, nil
	}
	if len(results) == 0 {
		return &dto.AnalyticsDTO{}, nil
	}

	totals := make([]float64, 0, len(results))
	sum := 0.0
	for _, r := range results {
		totals = append(totals, r.TotalScore)
		sum += r.TotalScore
	}
	averages := CategoryAverages(results)
	latest := results[len(results)-1]

	analytics := &dto.AnalyticsDTO{
		TotalInterviews:  len(results),
		AverageScore:     sum / float64(len(results)),
		ImprovementRate:  ImprovementRate(totals),
		StrongestArea:    StrongestCategory(averages),
		WeakestArea:      WeakestCategory(averages),
		CategoryAverages: averages,
		LatestScores:     latest.Scores(),
	}
	analytics.Charts = []dto.ChartSpecDTO{
		s.chartService.Radar(averages),
		s.chartService.Timeline(results),
	}
	return analytics, nil
}

func (s *analyticsService) GetHistory(userID string, limit int) (*dto.HistoryDTO, error) {
	results, err := s.resultRepo.ListByUserDesc(userID, limit)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to load history")
		return &dto.HistoryDTO{Entries: []dto.HistoryEntryDTO{}}, nil
	}

	history := &dto.HistoryDTO{Entries: make([]dto.HistoryEntryDTO, 0, len(results))}
	sum := 0.0
	for _, r := range results {
		var entry dto.HistoryEntryDTO
		if err := copier.Copy(&entry, &r); err != nil {
			log.Warn().Err(err).Str("sessionID", r.SessionID).Msg("Failed to map history entry")
			continue
		}
		entry.Difficulty = r.DifficultyLevel
		entry.Scores = r.Scores()
		entry.TotalScore = r.TotalScore
		entry.Passed = r.PassStatus
		entry.Grade = Grade(r.TotalScore)
		entry.DurationSeconds = r.InterviewDuration
		history.Entries = append(history.Entries, entry)
		sum += r.TotalScore
		if r.PassStatus {
			history.PassedCount++
		}
	}
	history.Total = len(history.Entries)
	if history.Total > 0 {
		history.AverageScore = sum / float64(history.Total)
	}
	return history, nil
}
