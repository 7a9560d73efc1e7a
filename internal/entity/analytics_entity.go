package entity

// ToolAnalytics summarizes one tool for the admin portal. Revenue is the
// active subscriber count times the tool's annual price.
type ToolAnalytics struct {
	Subscribers int
	Revenue     float64
	Usage       int
}

// PlatformAnalytics is the admin dashboard aggregate. ChurnRate and the two
// growth figures are placeholders until historical snapshots exist.
type PlatformAnalytics struct {
	MRR               int
	ActiveSubscribers int
	ChurnRate         float64
	TotalSearches     int
	RevenueGrowth     float64
	SubscriberGrowth  float64
}
