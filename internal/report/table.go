package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/red326/media-client-management/internal/model"
)

// Kind identifies one of the supported report variants.
type Kind string

const (
	KindCreators Kind = "creators"
	KindVideos   Kind = "videos"
	KindPayments Kind = "payments"
	KindCombined Kind = "combined"
)

// Valid reports whether the kind is one of the supported variants.
func (k Kind) Valid() bool {
	switch k {
	case KindCreators, KindVideos, KindPayments, KindCombined:
		return true
	}
	return false
}

// Table is an ordered, named-column tabular structure ready for
// serialization. Cells are pre-rendered strings so exporters stay
// schema-agnostic: amounts carry two decimals, dates are YYYY-MM-DD, and
// absent optional values are empty.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Data bundles everything the builder may need for any report kind.
type Data struct {
	Creators  []model.Creator
	Videos    []model.Video
	Summaries []PaymentSummary

	// CreatorNames resolves a video's owning creator ID to a display
	// name for the videos table.
	CreatorNames map[int64]string
}

// Column sets, fixed per kind. Order must not vary run to run.
var (
	creatorColumns = []string{"Name", "Channel", "Category", "Contact", "Notes", "Created"}
	videoColumns   = []string{"Title", "Creator", "Upload Date", "Payment State", "Amount", "Link", "Description"}
	paymentColumns = []string{"Creator", "Contact", "Videos", "Paid Total", "Pending Total", "Completion Ratio"}
)

// BuildTables converts the given data into one or more tables for the
// requested kind. The transform is pure: input slices are sorted on copies
// and never mutated. Empty input yields a table with columns and zero rows.
func BuildTables(kind Kind, data Data) ([]Table, error) {
	switch kind {
	case KindCreators:
		return []Table{buildCreatorsTable(data.Creators)}, nil
	case KindVideos:
		return []Table{buildVideosTable(data.Videos, data.CreatorNames)}, nil
	case KindPayments:
		return []Table{buildPaymentsTable(data.Summaries)}, nil
	case KindCombined:
		return []Table{
			buildCreatorsTable(data.Creators),
			buildVideosTable(data.Videos, data.CreatorNames),
			buildPaymentsTable(data.Summaries),
		}, nil
	}
	return nil, fmt.Errorf("unknown report kind %q", kind)
}

// buildCreatorsTable renders one row per creator, name ascending.
func buildCreatorsTable(creators []model.Creator) Table {
	sorted := make([]model.Creator, len(creators))
	copy(sorted, creators)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ID < sorted[j].ID
	})

	rows := make([][]string, 0, len(sorted))
	for _, c := range sorted {
		rows = append(rows, []string{
			c.Name,
			optString(c.ChannelURL),
			optString(c.Category),
			optString(c.Contact),
			optString(c.Notes),
			formatDate(&c.CreatedAt),
		})
	}
	return Table{Name: string(KindCreators), Columns: creatorColumns, Rows: rows}
}

// buildVideosTable renders one row per video, upload date descending with
// undated videos last.
func buildVideosTable(videos []model.Video, names map[int64]string) Table {
	sorted := make([]model.Video, len(videos))
	copy(sorted, videos)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i].UploadDate, sorted[j].UploadDate
		switch {
		case a == nil && b == nil:
			return sorted[i].ID < sorted[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		case !a.Equal(*b):
			return a.After(*b)
		}
		return sorted[i].ID < sorted[j].ID
	})

	rows := make([][]string, 0, len(sorted))
	for _, v := range sorted {
		rows = append(rows, []string{
			v.Title,
			names[v.CreatorID],
			formatDate(v.UploadDate),
			string(v.PaymentState),
			formatAmount(v.Amount),
			optString(v.Link),
			optString(v.Description),
		})
	}
	return Table{Name: string(KindVideos), Columns: videoColumns, Rows: rows}
}

// buildPaymentsTable renders one row per payment summary, preserving the
// aggregator's creator-name ordering.
func buildPaymentsTable(summaries []PaymentSummary) Table {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.CreatorName,
			s.Contact,
			fmt.Sprintf("%d", s.VideoCount),
			formatAmount(s.PaidTotal),
			formatAmount(s.PendingTotal),
			formatAmount(s.CompletionRatio()),
		})
	}
	return Table{Name: string(KindPayments), Columns: paymentColumns, Rows: rows}
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func optString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
