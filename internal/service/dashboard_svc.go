package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/shopspring/decimal"

	"github.com/red326/media-client-management/internal/model"
	"github.com/red326/media-client-management/internal/report"
)

// Trend points shown on the dashboard chart.
const dashboardTrendMonths = 12

// Recent videos shown on the dashboard.
const dashboardRecentVideos = 5

// DashboardService assembles the dashboard overview from the same
// aggregation pipeline the exports use.
type DashboardService struct {
	creators CreatorSource
	videos   VideoSource
	cache    *CacheService
}

func NewDashboardService(creators CreatorSource, videos VideoSource, cache *CacheService) *DashboardService {
	return &DashboardService{creators: creators, videos: videos, cache: cache}
}

// Overview returns the dashboard payload, cached briefly.
func (s *DashboardService) Overview(ctx context.Context) (*model.DashboardResponse, error) {
	if cached, err := s.cache.GetDashboard(ctx); err != nil {
		log.Printf("cache: dashboard get error: %v", err)
	} else if cached != nil {
		var resp model.DashboardResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
	}

	creators, err := s.creators.ListCreators(ctx)
	if err != nil {
		return nil, err
	}
	videos, err := s.videos.ListVideos(ctx, model.VideoFilter{})
	if err != nil {
		return nil, err
	}

	summaries, trend, _ := report.Aggregate(videos, creators, report.Options{})

	paid, pending := decimal.Zero, decimal.Zero
	videoCount := 0
	for _, sum := range summaries {
		paid = paid.Add(sum.PaidTotal)
		pending = pending.Add(sum.PendingTotal)
		videoCount += sum.VideoCount
	}

	if len(trend) > dashboardTrendMonths {
		trend = trend[len(trend)-dashboardTrendMonths:]
	}

	resp := &model.DashboardResponse{
		TotalCreators: len(creators),
		TotalVideos:   videoCount,
		TotalPaid:     paid.StringFixed(2),
		TotalPending:  pending.StringFixed(2),
		TotalAmount:   paid.Add(pending).StringFixed(2),
		Distribution:  distribution(videos),
		MonthlyTrends: trendViews(trend),
		RecentVideos:  s.recentVideos(ctx, creators),
	}

	if encoded, err := json.Marshal(resp); err == nil {
		if err := s.cache.SetDashboard(ctx, encoded); err != nil {
			log.Printf("cache: dashboard set error: %v", err)
		}
	}

	return resp, nil
}

// distribution counts videos and sums amounts per payment state.
func distribution(videos []model.Video) []model.StateDistribution {
	counts := map[model.PaymentState]int{}
	totals := map[model.PaymentState]decimal.Decimal{}
	for _, v := range videos {
		counts[v.PaymentState]++
		totals[v.PaymentState] = totals[v.PaymentState].Add(v.Amount)
	}

	out := make([]model.StateDistribution, 0, 2)
	for _, state := range []model.PaymentState{model.PaymentPending, model.PaymentPaid} {
		if counts[state] == 0 {
			continue
		}
		out = append(out, model.StateDistribution{
			State: string(state),
			Count: counts[state],
			Total: totals[state].StringFixed(2),
		})
	}
	return out
}

func (s *DashboardService) recentVideos(ctx context.Context, creators []model.Creator) []model.VideoView {
	recent, err := s.videos.ListRecent(ctx, dashboardRecentVideos)
	if err != nil {
		log.Printf("dashboard: recent videos query failed: %v", err)
		return nil
	}

	names := make(map[int64]string, len(creators))
	for _, c := range creators {
		names[c.ID] = c.Name
	}

	views := make([]model.VideoView, 0, len(recent))
	for _, v := range recent {
		views = append(views, model.VideoView{Video: v, CreatorName: names[v.CreatorID]})
	}
	return views
}
