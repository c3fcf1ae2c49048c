package domain

// FeedbackReport is the structured critique the feedback model returns.
// Scores are on a 0-1 scale; weights sum to 1 with vibe_match dominant.
// The service passes the model's numbers through without recomputing them.
type FeedbackReport struct {
	OverallScore float64            `json:"overall_score"`
	Components   map[string]float64 `json:"components"`
	Weights      map[string]float64 `json:"weights"`
	Vibe         string             `json:"vibe"`
	Tips         []FeedbackTip      `json:"tips"`
	ActionPlan   []ActionItem       `json:"action_plan"`
	Tags         []string           `json:"tags"`
}

// FeedbackTip is a single actionable styling tip
type FeedbackTip struct {
	Label string   `json:"label"`
	Text  string   `json:"text"`
	Score *float64 `json:"score,omitempty"`
}

// ActionItem is one entry of the report's action plan
type ActionItem struct {
	Recommendation string  `json:"recommendation"`
	ImpactEstimate float64 `json:"impact_estimate"`
}
