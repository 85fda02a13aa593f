package service

import (
	"github.com/hirelab/interview-trainer/internal/model"
)

// Static fallback payloads. Hardcoded, always valid, never failing: any
// collaborator error resolves to one of these so the flow can always advance.

// FallbackQuestionSet covers all eight categories, one question each.
func FallbackQuestionSet(targetJob string) *model.QuestionSet {
	return &model.QuestionSet{
		Analysis: model.Analysis{
			OverallFit:     "75% - Profile is a reasonable match",
			Strengths:      []string{"Relevant experience"},
			Gaps:           []string{"Project details need elaboration"},
			Recommendation: "Promising candidate for " + targetJob,
		},
		Questions: []model.Question{
			{ID: 1, Category: model.CategoryCommunication,
				Question:       "Tell me about a time you had to present a complex idea to a non-technical audience.",
				Context:        "Measures effective communication",
				ExpectedPoints: []string{"Situation", "Approach", "Outcome"}, Difficulty: "medium"},
			{ID: 2, Category: model.CategoryProblemSolving,
				Question:       "Describe the hardest technical or analytical problem you have faced and how you solved it.",
				Context:        "Tests analytical skills",
				ExpectedPoints: []string{"Complexity", "Analysis", "Solution"}, Difficulty: "hard"},
			{ID: 3, Category: model.CategoryLeadership,
				Question:       "Give an example of a time you had to lead or influence others without formal authority.",
				Context:        "Probes leadership and influence",
				ExpectedPoints: []string{"Context", "Actions", "Impact"}, Difficulty: "medium"},
			{ID: 4, Category: model.CategoryTeamwork,
				Question:       "Tell me about a conflict within a team you were part of and how it was resolved.",
				Context:        "Probes collaboration under friction",
				ExpectedPoints: []string{"Conflict", "Your role", "Resolution"}, Difficulty: "medium"},
			{ID: 5, Category: model.CategoryTechnicalKnowledge,
				Question:       "Which tools or technologies from your resume are you strongest in, and how have you applied them?",
				Context:        "Verifies claimed expertise",
				ExpectedPoints: []string{"Depth", "Application", "Results"}, Difficulty: "medium"},
			{ID: 6, Category: model.CategoryAdaptability,
				Question:       "Describe a situation where priorities changed suddenly. How did you adjust?",
				Context:        "Measures learning agility",
				ExpectedPoints: []string{"Change", "Response", "Lesson"}, Difficulty: "medium"},
			{ID: 7, Category: model.CategoryCreativity,
				Question:       "Tell me about an unconventional idea you proposed. What happened to it?",
				Context:        "Probes innovation",
				ExpectedPoints: []string{"Idea", "Pitch", "Outcome"}, Difficulty: "medium"},
			{ID: 8, Category: model.CategoryCriticalThinking,
				Question:       "Walk me through a decision you made with incomplete information.",
				Context:        "Tests judgment under uncertainty",
				ExpectedPoints: []string{"Constraints", "Trade-offs", "Decision"}, Difficulty: "hard"},
		},
	}
}

// FallbackEvaluation populates all eight categories with moderate scores.
func FallbackEvaluation() *model.Evaluation {
	return &model.Evaluation{
		Scores: model.CategoryScores{
			model.CategoryCommunication:      75,
			model.CategoryProblemSolving:     72,
			model.CategoryLeadership:         70,
			model.CategoryTeamwork:           78,
			model.CategoryTechnicalKnowledge: 68,
			model.CategoryAdaptability:       74,
			model.CategoryCreativity:         71,
			model.CategoryCriticalThinking:   73,
		},
		CategoryFeedback:  map[string]string{},
		OverallAssessment: "Reasonable overall performance",
		Strengths:         []string{"Good communication"},
		Weaknesses:        []string{"Technical depth could be stronger"},
		RedFlags:          []string{},
		Recommendation: model.Recommendation{
			Decision:   "Maybe",
			Confidence: "65%",
			Reasoning:  "Further evaluation needed",
			NextSteps:  []string{"Technical interview"},
		},
		DevelopmentPlan: model.DevelopmentPlan{
			PriorityAreas:    []string{"Technical skills"},
			SuggestedActions: []string{"Technical training"},
			Timeline:         "3-6 months",
		},
	}
}

func FallbackAnswerEvaluation() *model.AnswerEvaluation {
	return &model.AnswerEvaluation{
		Score:         70,
		Feedback:      "A reasonable answer that could use more detail.",
		Strengths:     []string{"Addresses the question"},
		Improvements:  []string{"Add concrete examples"},
		MissingPoints: []string{},
		BetterExample: "",
	}
}
