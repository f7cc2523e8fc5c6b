package service

import "github.com/rentfold/rentfold/internal/engine/model"

type InsightService struct{}

func NewInsightService() *InsightService {
	return &InsightService{}
}

// insightFixtures are the dashboard cards served to every company. They
// are curated copy, not computed metrics.
var insightFixtures = []model.Insight{
	{
		InsightId: "occupancy-trend",
		Title:     "Occupancy trending up",
		Summary:   "Portfolio occupancy improved over the last quarter. Consider reviewing rents on units turning over soon.",
		Severity:  "info",
		Metric:    "94%",
	},
	{
		InsightId: "late-payments",
		Title:     "Late payments concentrated",
		Summary:   "Most overdue balances trace back to a small set of units. A payment-plan outreach usually recovers these fastest.",
		Severity:  "warning",
		Metric:    "3 units",
	},
	{
		InsightId: "lease-renewals",
		Title:     "Leases expiring soon",
		Summary:   "Several leases end within 60 days. Starting renewals early keeps vacancy gaps short.",
		Severity:  "warning",
		Metric:    "60 days",
	},
	{
		InsightId: "maintenance-budget",
		Title:     "Maintenance spend stable",
		Summary:   "Repair costs are tracking with seasonal norms. No budget action needed this month.",
		Severity:  "info",
		Metric:    "on budget",
	},
}

// ListInsights returns the static dashboard cards.
func (is *InsightService) ListInsights() []model.Insight {
	out := make([]model.Insight, len(insightFixtures))
	copy(out, insightFixtures)
	return out
}
