package model

// Insight is a display-only dashboard card. The values are static fixtures;
// no inference or scoring pipeline exists behind this type.
type Insight struct {
	InsightId string `json:"insightId"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Severity  string `json:"severity"` // info/warning/critical
	Metric    string `json:"metric"`
}
