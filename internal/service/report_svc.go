package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/red326/media-client-management/internal/model"
	"github.com/red326/media-client-management/internal/report"
)

// CreatorSource supplies a complete snapshot of creators. Implemented by
// repository.CreatorRepo.
type CreatorSource interface {
	ListCreators(ctx context.Context) ([]model.Creator, error)
}

// VideoSource supplies video snapshots. Implemented by repository.VideoRepo.
type VideoSource interface {
	ListVideos(ctx context.Context, filter model.VideoFilter) ([]model.Video, error)
	ListRecent(ctx context.Context, limit int) ([]model.Video, error)
}

// ReportService drives the aggregation and export pipeline: record snapshot
// in, serialized report plus filename hint out.
type ReportService struct {
	creators CreatorSource
	videos   VideoSource
	cache    *CacheService
	now      func() time.Time
}

func NewReportService(creators CreatorSource, videos VideoSource, cache *CacheService) *ReportService {
	return &ReportService{
		creators: creators,
		videos:   videos,
		cache:    cache,
		now:      time.Now,
	}
}

// Export is the result of one report request, with the skipped-record count
// so callers can surface a partial-success message.
type Export struct {
	Payload       []byte `json:"payload"`
	Filename      string `json:"filename"`
	SkippedVideos int    `json:"skippedVideos"`
}

// BuildReport builds and serializes the requested report kind into the
// requested format. Results are cached briefly per (kind, format).
//
// The payments report includes creators with zero videos, matching the
// export behavior of the admin tool; the interactive payments summary
// (Payments) omits them.
func (s *ReportService) BuildReport(ctx context.Context, kind report.Kind, format report.Format) (*Export, error) {
	if cached, err := s.cache.GetReport(ctx, string(kind), string(format)); err != nil {
		log.Printf("cache: report get error: %v", err)
	} else if cached != nil {
		var exp Export
		if err := json.Unmarshal(cached, &exp); err == nil {
			return &exp, nil
		}
	}

	creators, videos, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summaries, _, diag := report.Aggregate(videos, creators, report.Options{
		IncludeZeroVideoCreators: true,
	})

	names := make(map[int64]string, len(creators))
	for _, c := range creators {
		names[c.ID] = c.Name
	}

	tables, err := report.BuildTables(kind, report.Data{
		Creators:     creators,
		Videos:       resolvable(videos, names),
		Summaries:    summaries,
		CreatorNames: names,
	})
	if err != nil {
		return nil, err
	}

	payload, err := report.Export(format, tables)
	if err != nil {
		return nil, err
	}

	exp := &Export{
		Payload:       payload,
		Filename:      report.Filename(kind, format, s.now()),
		SkippedVideos: diag.SkippedVideos,
	}

	if encoded, err := json.Marshal(exp); err == nil {
		if err := s.cache.SetReport(ctx, string(kind), string(format), encoded); err != nil {
			log.Printf("cache: report set error: %v", err)
		}
	}

	return exp, nil
}

// Aggregate exposes the derived numbers without an export, for dashboard
// style consumers.
func (s *ReportService) Aggregate(ctx context.Context, includeZero bool) ([]report.PaymentSummary, []report.TrendPoint, report.Diagnostics, error) {
	creators, videos, err := s.snapshot(ctx)
	if err != nil {
		return nil, nil, report.Diagnostics{}, err
	}
	summaries, trend, diag := report.Aggregate(videos, creators, report.Options{
		IncludeZeroVideoCreators: includeZero,
	})
	return summaries, trend, diag, nil
}

// Payments returns the per-creator payment summary view for the payments
// page, creators with at least one video only.
func (s *ReportService) Payments(ctx context.Context) (*model.PaymentsResponse, error) {
	summaries, trend, diag, err := s.Aggregate(ctx, false)
	if err != nil {
		return nil, err
	}

	resp := &model.PaymentsResponse{
		Summaries:     make([]model.PaymentSummaryView, 0, len(summaries)),
		MonthlyTrends: trendViews(trend),
		SkippedVideos: diag.SkippedVideos,
	}
	for _, s := range summaries {
		resp.Summaries = append(resp.Summaries, model.PaymentSummaryView{
			CreatorID:       s.CreatorID,
			CreatorName:     s.CreatorName,
			Contact:         s.Contact,
			VideoCount:      s.VideoCount,
			PaidTotal:       s.PaidTotal.StringFixed(2),
			PendingTotal:    s.PendingTotal.StringFixed(2),
			CompletionRatio: s.CompletionRatio().StringFixed(2),
		})
	}
	return resp, nil
}

func (s *ReportService) snapshot(ctx context.Context) ([]model.Creator, []model.Video, error) {
	creators, err := s.creators.ListCreators(ctx)
	if err != nil {
		return nil, nil, err
	}
	videos, err := s.videos.ListVideos(ctx, model.VideoFilter{})
	if err != nil {
		return nil, nil, err
	}
	return creators, videos, nil
}

// resolvable filters out videos whose owning creator is unknown, mirroring
// the aggregator's skip behavior so the videos table never shows an
// unresolvable creator reference.
func resolvable(videos []model.Video, names map[int64]string) []model.Video {
	out := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if _, ok := names[v.CreatorID]; ok {
			out = append(out, v)
		}
	}
	return out
}

func trendViews(trend []report.TrendPoint) []model.MonthlyTrend {
	views := make([]model.MonthlyTrend, 0, len(trend))
	for _, p := range trend {
		views = append(views, model.MonthlyTrend{
			Month:      p.Key(),
			VideoCount: p.VideoCount,
			Paid:       p.PaidTotal.StringFixed(2),
			Pending:    p.PendingTotal.StringFixed(2),
		})
	}
	return views
}
