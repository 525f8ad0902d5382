package model

// DashboardResponse is the API response for the dashboard data endpoint.
type DashboardResponse struct {
	TotalCreators int                 `json:"totalCreators"`
	TotalVideos   int                 `json:"totalVideos"`
	TotalPaid     string              `json:"totalPaid"`
	TotalPending  string              `json:"totalPending"`
	TotalAmount   string              `json:"totalAmount"`
	Distribution  []StateDistribution `json:"paymentDistribution"`
	MonthlyTrends []MonthlyTrend      `json:"monthlyTrends"`
	RecentVideos  []VideoView         `json:"recentVideos"`
}

// StateDistribution is one payment-state slice of the dashboard pie chart.
type StateDistribution struct {
	State string `json:"state"`
	Count int    `json:"count"`
	Total string `json:"total"`
}

// MonthlyTrend is one month of the dashboard trend chart.
type MonthlyTrend struct {
	Month      string `json:"month"`
	VideoCount int    `json:"videoCount"`
	Paid       string `json:"paid"`
	Pending    string `json:"pending"`
}

// PaymentsResponse is the API response for the per-creator payment summary.
type PaymentsResponse struct {
	Summaries     []PaymentSummaryView `json:"summaries"`
	MonthlyTrends []MonthlyTrend       `json:"monthlyTrends"`
	SkippedVideos int                  `json:"skippedVideos,omitempty"`
}

// PaymentSummaryView is the JSON shape of one creator's payment summary.
type PaymentSummaryView struct {
	CreatorID       int64  `json:"creatorId"`
	CreatorName     string `json:"creatorName"`
	Contact         string `json:"contact,omitempty"`
	VideoCount      int    `json:"videoCount"`
	PaidTotal       string `json:"paidTotal"`
	PendingTotal    string `json:"pendingTotal"`
	CompletionRatio string `json:"completionRatio"`
}
