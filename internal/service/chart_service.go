package service

import (
	"strings"
	"time"

	"github.com/hirelab/interview-trainer/internal/dto"
	"github.com/hirelab/interview-trainer/internal/model"
)

// ChartService builds declarative chart specifications. The server never
// renders anything: these specs are plain data the client feeds to its
// plotting library.
type ChartService interface {
	Radar(scores model.CategoryScores) dto.ChartSpecDTO
	Bar(scores model.CategoryScores) dto.ChartSpecDTO
	Gauge(total, threshold float64) dto.ChartSpecDTO
	Timeline(results []model.InterviewResult) dto.ChartSpecDTO
}

// benchmarkScore is the fixed comparison overlay on score charts.
const benchmarkScore = 75.0

type chartService struct{}

func NewChartService() ChartService {
	return &chartService{}
}

type radarSpec struct {
	Title      string    `json:"title"`
	Categories []string  `json:"categories"`
	Values     []float64 `json:"values"`
	Benchmark  []float64 `json:"benchmark"`
	Range      [2]int    `json:"range"`
}

type barSpec struct {
	Title      string    `json:"title"`
	Categories []string  `json:"categories"`
	Values     []float64 `json:"values"`
	Colors     []string  `json:"colors"`
}

type gaugeSpec struct {
	Title     string  `json:"title"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
	Range     [2]int  `json:"range"`
}

type timelinePoint struct {
	Date       time.Time `json:"date"`
	TotalScore float64   `json:"total_score"`
	Passed     bool      `json:"passed"`
}

type timelineSpec struct {
	Title  string          `json:"title"`
	Points []timelinePoint `json:"points"`
}

func (c *chartService) Radar(scores model.CategoryScores) dto.ChartSpecDTO {
	labels, values := orderedScores(scores)
	benchmark := make([]float64, len(labels))
	for i := range benchmark {
		benchmark[i] = benchmarkScore
	}
	return dto.ChartSpecDTO{Type: "radar", Spec: radarSpec{
		Title:      "Interview Scores",
		Categories: labels,
		Values:     values,
		Benchmark:  benchmark,
		Range:      [2]int{0, 100},
	}}
}

func (c *chartService) Bar(scores model.CategoryScores) dto.ChartSpecDTO {
	labels, values := orderedScores(scores)
	colors := make([]string, len(values))
	for i, v := range values {
		switch {
		case v < 60:
			colors[i] = "#ef4444"
		case v < benchmarkScore:
			colors[i] = "#f59e0b"
		default:
			colors[i] = "#10b981"
		}
	}
	return dto.ChartSpecDTO{Type: "bar", Spec: barSpec{
		Title:      "Category Breakdown",
		Categories: labels,
		Values:     values,
		Colors:     colors,
	}}
}

func (c *chartService) Gauge(total, threshold float64) dto.ChartSpecDTO {
	return dto.ChartSpecDTO{Type: "gauge", Spec: gaugeSpec{
		Title:     "Total Score",
		Value:     total,
		Threshold: threshold,
		Range:     [2]int{0, 100},
	}}
}

func (c *chartService) Timeline(results []model.InterviewResult) dto.ChartSpecDTO {
	points := make([]timelinePoint, 0, len(results))
	for _, r := range results {
		points = append(points, timelinePoint{
			Date:       r.CreatedAt,
			TotalScore: r.TotalScore,
			Passed:     r.PassStatus,
		})
	}
	return dto.ChartSpecDTO{Type: "timeline", Spec: timelineSpec{
		Title:  "Score Over Time",
		Points: points,
	}}
}

// orderedScores flattens a score map into parallel label/value slices in the
// fixed category order, with display-friendly labels.
func orderedScores(scores model.CategoryScores) ([]string, []float64) {
	labels := make([]string, 0, len(model.Categories))
	values := make([]float64, 0, len(model.Categories))
	for _, c := range model.Categories {
		v, ok := scores[c]
		if !ok {
			continue
		}
		labels = append(labels, displayLabel(c))
		values = append(values, v)
	}
	return labels, values
}

func displayLabel(category string) string {
	words := strings.Split(category, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
