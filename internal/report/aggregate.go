package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/red326/media-client-management/internal/model"
)

// PaymentSummary holds the derived payment totals for a single creator.
// It is recomputed on every report request and never persisted.
type PaymentSummary struct {
	CreatorID    int64
	CreatorName  string
	Contact      string
	VideoCount   int
	PaidTotal    decimal.Decimal
	PendingTotal decimal.Decimal
}

// Total returns the combined paid and pending amount.
func (s PaymentSummary) Total() decimal.Decimal {
	return s.PaidTotal.Add(s.PendingTotal)
}

// CompletionRatio returns PaidTotal / (PaidTotal + PendingTotal), or zero
// when the creator has no money on record.
func (s PaymentSummary) CompletionRatio() decimal.Decimal {
	total := s.Total()
	if total.IsZero() {
		return decimal.Zero
	}
	return s.PaidTotal.Div(total)
}

// TrendPoint holds the derived totals for one (year, month) upload bucket.
type TrendPoint struct {
	Year         int
	Month        time.Month
	VideoCount   int
	PaidTotal    decimal.Decimal
	PendingTotal decimal.Decimal
}

// Key returns the bucket key in "YYYY-MM" form.
func (p TrendPoint) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Diagnostics reports records that were skipped during aggregation.
// Skipped videos reference a creator that is not in the lookup set; they are
// excluded from all output but never silently dropped.
type Diagnostics struct {
	SkippedVideos   int
	SkippedVideoIDs []int64
}

// Options controls aggregation behavior.
type Options struct {
	// IncludeZeroVideoCreators emits a zero-total summary for creators
	// that own no videos. Off by default.
	IncludeZeroVideoCreators bool
}

// Aggregate computes per-creator payment summaries and per-month trend
// points from a snapshot of videos and creators. It is a pure function:
// identical input yields identical output, inputs are never mutated, and
// all sums use fixed-point decimal arithmetic.
//
// Summaries are ordered by creator name ascending (creator ID breaks ties).
// Trend points are ordered chronologically with one point per (year, month)
// bucket that has at least one dated video; months with no videos produce
// no point. Videos without an upload date contribute to summaries only.
func Aggregate(videos []model.Video, creators []model.Creator, opts Options) ([]PaymentSummary, []TrendPoint, Diagnostics) {
	byID := make(map[int64]model.Creator, len(creators))
	for _, c := range creators {
		byID[c.ID] = c
	}

	summaries := make(map[int64]*PaymentSummary)
	buckets := make(map[[2]int]*TrendPoint)
	var diag Diagnostics

	for _, v := range videos {
		c, ok := byID[v.CreatorID]
		if !ok {
			diag.SkippedVideos++
			diag.SkippedVideoIDs = append(diag.SkippedVideoIDs, v.ID)
			continue
		}

		s := summaries[v.CreatorID]
		if s == nil {
			s = newSummary(c)
			summaries[v.CreatorID] = s
		}
		s.VideoCount++
		switch v.PaymentState {
		case model.PaymentPaid:
			s.PaidTotal = s.PaidTotal.Add(v.Amount)
		default:
			s.PendingTotal = s.PendingTotal.Add(v.Amount)
		}

		if v.UploadDate == nil {
			continue
		}
		key := [2]int{v.UploadDate.Year(), int(v.UploadDate.Month())}
		p := buckets[key]
		if p == nil {
			p = &TrendPoint{
				Year:         key[0],
				Month:        time.Month(key[1]),
				PaidTotal:    decimal.Zero,
				PendingTotal: decimal.Zero,
			}
			buckets[key] = p
		}
		p.VideoCount++
		if v.PaymentState == model.PaymentPaid {
			p.PaidTotal = p.PaidTotal.Add(v.Amount)
		} else {
			p.PendingTotal = p.PendingTotal.Add(v.Amount)
		}
	}

	if opts.IncludeZeroVideoCreators {
		for _, c := range creators {
			if _, ok := summaries[c.ID]; !ok {
				summaries[c.ID] = newSummary(c)
			}
		}
	}

	out := make([]PaymentSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatorName != out[j].CreatorName {
			return out[i].CreatorName < out[j].CreatorName
		}
		return out[i].CreatorID < out[j].CreatorID
	})

	trend := make([]TrendPoint, 0, len(buckets))
	for _, p := range buckets {
		trend = append(trend, *p)
	}
	sort.Slice(trend, func(i, j int) bool {
		if trend[i].Year != trend[j].Year {
			return trend[i].Year < trend[j].Year
		}
		return trend[i].Month < trend[j].Month
	})

	return out, trend, diag
}

func newSummary(c model.Creator) *PaymentSummary {
	s := &PaymentSummary{
		CreatorID:    c.ID,
		CreatorName:  c.Name,
		PaidTotal:    decimal.Zero,
		PendingTotal: decimal.Zero,
	}
	if c.Contact != nil {
		s.Contact = *c.Contact
	}
	return s
}
