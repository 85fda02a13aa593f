package service

import (
	"github.com/hirelab/interview-trainer/internal/model"
)

// Pure scoring arithmetic. These are the only place total score, pass status
// and the history aggregates are computed; callers pass the final values down
// to storage instead of repeating the math there.

// TotalScore is the unweighted arithmetic mean of the eight category scores.
func TotalScore(scores model.CategoryScores) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	return sum / float64(len(scores))
}

// Passed reports whether total meets the passing threshold. The boundary
// passes: total == threshold is a pass.
func Passed(total, threshold float64) bool {
	return total >= threshold
}

// Grade converts a total score to its letter grade.
func Grade(total float64) string {
	switch {
	case total >= 90:
		return "A (Excellent)"
	case total >= 80:
		return "B (Very Good)"
	case total >= 70:
		return "C (Good)"
	case total >= 60:
		return "D (Fair)"
	default:
		return "E (Needs Improvement)"
	}
}

// ImprovementRate is the percent change from the first to the last score in
// chronological order. Zero when fewer than two observations exist or the
// first score is zero. No smoothing.
func ImprovementRate(totalsAsc []float64) float64 {
	if len(totalsAsc) < 2 {
		return 0
	}
	first := totalsAsc[0]
	if first == 0 {
		return 0
	}
	last := totalsAsc[len(totalsAsc)-1]
	return (last - first) / first * 100.0
}

// StrongestCategory returns the category with the highest average. Ties
// resolve to the first category in model.Categories order.
func StrongestCategory(averages model.CategoryScores) string {
	best := ""
	bestVal := 0.0
	for _, c := range model.Categories {
		v, ok := averages[c]
		if !ok {
			continue
		}
		if best == "" || v > bestVal {
			best = c
			bestVal = v
		}
	}
	return best
}

// WeakestCategory returns the category with the lowest average, with the same
// first-encountered tie-break as StrongestCategory.
func WeakestCategory(averages model.CategoryScores) string {
	worst := ""
	worstVal := 0.0
	for _, c := range model.Categories {
		v, ok := averages[c]
		if !ok {
			continue
		}
		if worst == "" || v < worstVal {
			worst = c
			worstVal = v
		}
	}
	return worst
}

// CategoryAverages averages the eight category columns across results.
func CategoryAverages(results []model.InterviewResult) model.CategoryScores {
	if len(results) == 0 {
		return model.CategoryScores{}
	}
	sums := make(model.CategoryScores, len(model.Categories))
	for _, r := range results {
		for c, v := range r.Scores() {
			sums[c] += v
		}
	}
	averages := make(model.CategoryScores, len(sums))
	for c, sum := range sums {
		averages[c] = sum / float64(len(results))
	}
	return averages
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
