package models

// AssessmentCategories is the fixed set of question categories requested from
// the question-generation endpoint, in presentation order. The spelling of
// each entry is part of the wire contract.
var AssessmentCategories = []string{
	"personality",
	"Academic_Strengths",
	"thinking_style",
	"Learning_Style",
	"Interests",
	"carrer_tendencies",
}

// Question is a single generated assessment question tagged with its
// 1-based step number.
type Question struct {
	Step     int
	Category string
	Text     string
}

// Answer pairs a question with the user's reply. The evaluation endpoint
// receives the answers in presentation order.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Recommendation is one ranked major suggestion from the evaluation service.
// Optional fields may be empty; renderers substitute defaults.
type Recommendation struct {
	MajorName       string   `json:"major_name"`
	MatchPercentage float64  `json:"match_percentage"`
	DifficultyLevel string   `json:"difficulty_level"`
	EstimatedCost   string   `json:"estimated_cost"`
	StudyDuration   string   `json:"study_duration"`
	Roadmap         []string `json:"roadmap"`
}

// Defaults substituted for missing optional recommendation fields.
const (
	DefaultDifficulty = "Medium"
	DefaultCost       = "$1800"
	DefaultDuration   = "3-4 years"
)

// DefaultRoadmap is used when the evaluation response carries no roadmap.
var DefaultRoadmap = []string{
	"Complete foundational courses",
	"Develop core skills and knowledge",
	"Gain practical experience through internships",
	"Complete advanced specialization courses",
}

// AssessmentResult is a completed assessment from the results history.
type AssessmentResult struct {
	ID              string `json:"id"`
	TestType        string `json:"test_type"`
	PersonalityType string `json:"personality_type"`
	CompletedAt     string `json:"completed_at"`
}
