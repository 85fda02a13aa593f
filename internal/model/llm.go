package model

// Types exchanged with the evaluation collaborator. Every payload is
// schema-checked on parse; a malformed response maps cleanly to the static
// fallback of the same shape, never to a partially filled value.

// Question belongs to exactly one interview session and is never persisted on
// its own; the transcript serialization carries its text.
type Question struct {
	ID             int      `json:"id"`
	Category       string   `json:"category"`
	Question       string   `json:"question"`
	Context        string   `json:"context,omitempty"`
	ExpectedPoints []string `json:"expected_answer_points,omitempty"`
	Difficulty     string   `json:"difficulty,omitempty"`
}

// Analysis is the collaborator's read of the candidate/job fit, produced
// alongside the generated questions.
type Analysis struct {
	OverallFit     string   `json:"overall_fit"`
	Strengths      []string `json:"strengths"`
	Gaps           []string `json:"gaps"`
	Recommendation string   `json:"recommendation"`
}

// QuestionSet is the full question-generation payload.
type QuestionSet struct {
	Analysis  Analysis   `json:"analysis"`
	Questions []Question `json:"questions"`
}

// Recommendation is the hiring recommendation block of a full evaluation.
type Recommendation struct {
	Decision   string   `json:"decision"` // "Hire", "Maybe", "Don't Hire"
	Confidence string   `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
	NextSteps  []string `json:"next_steps"`
}

// DevelopmentPlan suggests what the candidate should work on next.
type DevelopmentPlan struct {
	PriorityAreas    []string `json:"priority_areas"`
	SuggestedActions []string `json:"suggested_actions"`
	Timeline         string   `json:"timeline"`
}

// Evaluation is the full-interview evaluation payload. Scores always carries
// all eight categories; any total the collaborator proposes is discarded and
// recomputed locally.
type Evaluation struct {
	Scores            CategoryScores    `json:"scores"`
	CategoryFeedback  map[string]string `json:"category_feedback"`
	OverallAssessment string            `json:"overall_assessment"`
	Strengths         []string          `json:"strengths"`
	Weaknesses        []string          `json:"weaknesses"`
	RedFlags          []string          `json:"red_flags"`
	Recommendation    Recommendation    `json:"recommendation"`
	DevelopmentPlan   DevelopmentPlan   `json:"development_plan"`
}

// AnswerEvaluation is the per-answer scoring payload feeding qa_history rows.
type AnswerEvaluation struct {
	Score         float64  `json:"score"`
	Feedback      string   `json:"feedback"`
	Strengths     []string `json:"strengths"`
	Improvements  []string `json:"improvements"`
	MissingPoints []string `json:"missing_points"`
	BetterExample string   `json:"better_answer_example"`
}

// JobRecommendation is one entry of the job-matching payload.
type JobRecommendation struct {
	JobTitle        string   `json:"job_title"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchReasons    []string `json:"match_reasons"`
	SkillGaps       []string `json:"skill_gaps"`
	SalaryRange     string   `json:"salary_range"`
	GrowthPotential string   `json:"growth_potential"`
	DifficultyToGet string   `json:"difficulty_to_get"`
}

// TranscriptEntry is one question/answer pair of the serialized transcript.
type TranscriptEntry struct {
	QuestionID int    `json:"question_id"`
	Category   string `json:"category"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Skipped    bool   `json:"skipped"`
}
