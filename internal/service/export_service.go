package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hirelab/interview-trainer/internal/model"
	"github.com/hirelab/interview-trainer/internal/repository"
)

// Report is the on-demand download document for one completed session.
type Report struct {
	SessionID   string                  `json:"session_id"`
	GeneratedAt time.Time               `json:"generated_at"`
	JobTitle    string                  `json:"job_title"`
	Scores      model.CategoryScores    `json:"scores"`
	TotalScore  float64                 `json:"total_score"`
	Passed      bool                    `json:"passed"`
	Evaluation  *model.Evaluation       `json:"evaluation,omitempty"`
	Transcript  []model.TranscriptEntry `json:"transcript"`
}

// ExportService builds downloadable reports from persisted results.
type ExportService interface {
	BuildReport(sessionID string) (*Report, error)
	Marshal(report *Report) ([]byte, error)
}

type exportService struct {
	resultRepo repository.ResultRepository
}

func NewExportService(resultRepo repository.ResultRepository) ExportService {
	return &exportService{resultRepo: resultRepo}
}

func (s *exportService) BuildReport(sessionID string) (*Report, error) {
	result, err := s.resultRepo.FindBySessionID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("result for session %s: %w", sessionID, err)
	}

	report := &Report{
		SessionID:   result.SessionID,
		GeneratedAt: time.Now().UTC(),
		JobTitle:    result.JobTitle,
		Scores:      result.Scores(),
		TotalScore:  result.TotalScore,
		Passed:      result.PassStatus,
	}
	if result.DetailedFeedback != "" {
		var eval model.Evaluation
		if err := json.Unmarshal([]byte(result.DetailedFeedback), &eval); err == nil {
			report.Evaluation = &eval
		}
	}
	if result.Transcript != "" {
		if err := json.Unmarshal([]byte(result.Transcript), &report.Transcript); err != nil {
			return nil, fmt.Errorf("corrupt transcript for session %s: %w", sessionID, err)
		}
	}
	return report, nil
}

// Marshal serializes the report as indented UTF-8 JSON with non-ASCII
// characters preserved literally.
func (s *exportService) Marshal(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseReport is the inverse of Marshal; the round trip preserves session id,
// scores and all question/answer pairs.
func ParseReport(data []byte) (*Report, error) {
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
