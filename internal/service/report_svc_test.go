package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/red326/media-client-management/internal/model"
	"github.com/red326/media-client-management/internal/report"
)

type fakeCreatorSource struct {
	creators []model.Creator
	err      error
}

func (f *fakeCreatorSource) ListCreators(ctx context.Context) ([]model.Creator, error) {
	return f.creators, f.err
}

type fakeVideoSource struct {
	videos []model.Video
	err    error
}

func (f *fakeVideoSource) ListVideos(ctx context.Context, filter model.VideoFilter) ([]model.Video, error) {
	return f.videos, f.err
}

func (f *fakeVideoSource) ListRecent(ctx context.Context, limit int) ([]model.Video, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.videos) {
		limit = len(f.videos)
	}
	return f.videos[:limit], nil
}

func svcDec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func svcDate(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

func newTestReportService(creators []model.Creator, videos []model.Video) *ReportService {
	svc := NewReportService(
		&fakeCreatorSource{creators: creators},
		&fakeVideoSource{videos: videos},
		NewCacheService(""),
	)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestBuildReportPaymentsCSV(t *testing.T) {
	contact := "alice@example.com"
	creators := []model.Creator{
		{ID: 1, Name: "Alice", Contact: &contact},
		{ID: 2, Name: "Bob"},
	}
	videos := []model.Video{
		{ID: 10, CreatorID: 1, Title: "Intro", UploadDate: svcDate("2024-01-05"), PaymentState: model.PaymentPaid, Amount: svcDec("100")},
		{ID: 11, CreatorID: 1, Title: "Follow-up", UploadDate: svcDate("2024-02-10"), PaymentState: model.PaymentPending, Amount: svcDec("50")},
	}

	svc := newTestReportService(creators, videos)

	exp, err := svc.BuildReport(context.Background(), report.KindPayments, report.FormatCSV)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if exp.Filename != "payments_export_20240315.csv" {
		t.Errorf("filename = %q, want payments_export_20240315.csv", exp.Filename)
	}
	if exp.SkippedVideos != 0 {
		t.Errorf("skipped = %d, want 0", exp.SkippedVideos)
	}

	got := string(exp.Payload)
	want := "Creator,Contact,Videos,Paid Total,Pending Total,Completion Ratio\n" +
		"Alice,alice@example.com,2,100.00,50.00,0.67\n" +
		"Bob,,0,0.00,0.00,0.00\n"
	if got != want {
		t.Errorf("payload:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildReportCountsSkippedVideos(t *testing.T) {
	creators := []model.Creator{{ID: 1, Name: "Alice"}}
	videos := []model.Video{
		{ID: 10, CreatorID: 1, Title: "Kept", PaymentState: model.PaymentPaid, Amount: svcDec("10")},
		{ID: 11, CreatorID: 99, Title: "Orphan", PaymentState: model.PaymentPaid, Amount: svcDec("10")},
	}

	svc := newTestReportService(creators, videos)

	exp, err := svc.BuildReport(context.Background(), report.KindVideos, report.FormatCSV)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if exp.SkippedVideos != 1 {
		t.Errorf("skipped = %d, want 1", exp.SkippedVideos)
	}
	if strings.Contains(string(exp.Payload), "Orphan") {
		t.Error("orphaned video should not appear in the videos table")
	}
}

func TestBuildReportSourceError(t *testing.T) {
	wantErr := errors.New("connection refused")
	svc := NewReportService(
		&fakeCreatorSource{err: wantErr},
		&fakeVideoSource{},
		NewCacheService(""),
	)

	_, err := svc.BuildReport(context.Background(), report.KindPayments, report.FormatCSV)
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestBuildReportEmptySnapshot(t *testing.T) {
	svc := newTestReportService(nil, nil)

	exp, err := svc.BuildReport(context.Background(), report.KindPayments, report.FormatCSV)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	want := "Creator,Contact,Videos,Paid Total,Pending Total,Completion Ratio\n"
	if string(exp.Payload) != want {
		t.Errorf("payload = %q, want header only", exp.Payload)
	}
}

func TestPaymentsOmitsZeroVideoCreators(t *testing.T) {
	creators := []model.Creator{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}
	videos := []model.Video{
		{ID: 10, CreatorID: 1, Title: "Only", UploadDate: svcDate("2024-01-05"), PaymentState: model.PaymentPaid, Amount: svcDec("25")},
	}

	svc := newTestReportService(creators, videos)

	resp, err := svc.Payments(context.Background())
	if err != nil {
		t.Fatalf("Payments: %v", err)
	}

	if len(resp.Summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(resp.Summaries))
	}
	if resp.Summaries[0].CreatorName != "Alice" {
		t.Errorf("creator = %q, want Alice", resp.Summaries[0].CreatorName)
	}
	if resp.Summaries[0].PaidTotal != "25.00" {
		t.Errorf("paid = %q, want 25.00", resp.Summaries[0].PaidTotal)
	}
	if len(resp.MonthlyTrends) != 1 || resp.MonthlyTrends[0].Month != "2024-01" {
		t.Errorf("trends = %+v, want one 2024-01 bucket", resp.MonthlyTrends)
	}
}

func TestDashboardOverviewTotals(t *testing.T) {
	creators := []model.Creator{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}
	videos := []model.Video{
		{ID: 10, CreatorID: 1, Title: "A", UploadDate: svcDate("2024-01-05"), PaymentState: model.PaymentPaid, Amount: svcDec("100")},
		{ID: 11, CreatorID: 2, Title: "B", UploadDate: svcDate("2024-02-01"), PaymentState: model.PaymentPending, Amount: svcDec("40.50")},
	}

	svc := NewDashboardService(
		&fakeCreatorSource{creators: creators},
		&fakeVideoSource{videos: videos},
		NewCacheService(""),
	)

	resp, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}

	if resp.TotalCreators != 2 {
		t.Errorf("totalCreators = %d, want 2", resp.TotalCreators)
	}
	if resp.TotalVideos != 2 {
		t.Errorf("totalVideos = %d, want 2", resp.TotalVideos)
	}
	if resp.TotalPaid != "100.00" || resp.TotalPending != "40.50" {
		t.Errorf("paid/pending = %s/%s, want 100.00/40.50", resp.TotalPaid, resp.TotalPending)
	}
	if resp.TotalAmount != "140.50" {
		t.Errorf("totalAmount = %s, want 140.50", resp.TotalAmount)
	}
	if len(resp.Distribution) != 2 {
		t.Fatalf("distribution = %+v, want two states", resp.Distribution)
	}
	if resp.Distribution[0].State != "pending" || resp.Distribution[1].State != "paid" {
		t.Errorf("distribution order = %s,%s, want pending,paid",
			resp.Distribution[0].State, resp.Distribution[1].State)
	}
	if len(resp.RecentVideos) != 2 {
		t.Errorf("recentVideos = %d, want 2", len(resp.RecentVideos))
	}
}
