package report

import (
	"reflect"
	"testing"
	"time"

	"github.com/red326/media-client-management/internal/model"
)

func TestBuildTablesColumns(t *testing.T) {
	tests := []struct {
		kind Kind
		want []string
	}{
		{KindCreators, []string{"Name", "Channel", "Category", "Contact", "Notes", "Created"}},
		{KindVideos, []string{"Title", "Creator", "Upload Date", "Payment State", "Amount", "Link", "Description"}},
		{KindPayments, []string{"Creator", "Contact", "Videos", "Paid Total", "Pending Total", "Completion Ratio"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			tables, err := BuildTables(tt.kind, Data{})
			if err != nil {
				t.Fatalf("BuildTables(%s) error: %v", tt.kind, err)
			}
			if len(tables) != 1 {
				t.Fatalf("len(tables) = %d, want 1", len(tables))
			}
			if !reflect.DeepEqual(tables[0].Columns, tt.want) {
				t.Errorf("columns = %v, want %v", tables[0].Columns, tt.want)
			}
			if len(tables[0].Rows) != 0 {
				t.Errorf("empty input produced %d rows", len(tables[0].Rows))
			}
		})
	}
}

func TestBuildTablesUnknownKind(t *testing.T) {
	if _, err := BuildTables(Kind("bogus"), Data{}); err == nil {
		t.Fatal("BuildTables with unknown kind did not fail")
	}
}

func TestBuildTablesCombined(t *testing.T) {
	tables, err := BuildTables(KindCombined, Data{})
	if err != nil {
		t.Fatalf("BuildTables(combined) error: %v", err)
	}
	if len(tables) != 3 {
		t.Fatalf("len(tables) = %d, want 3", len(tables))
	}
	wantNames := []string{"creators", "videos", "payments"}
	for i, name := range wantNames {
		if tables[i].Name != name {
			t.Errorf("tables[%d].Name = %q, want %q", i, tables[i].Name, name)
		}
	}
}

func TestBuildCreatorsTable(t *testing.T) {
	creators := []model.Creator{
		{ID: 2, Name: "Zoe", CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{
			ID:         1,
			Name:       "Ada",
			ChannelURL: strP("https://youtube.com/@ada"),
			Category:   strP("tech"),
			Contact:    strP("ada@example.com"),
			CreatedAt:  time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	tables, err := BuildTables(KindCreators, Data{Creators: creators})
	if err != nil {
		t.Fatalf("BuildTables error: %v", err)
	}

	rows := tables[0].Rows
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	want := []string{"Ada", "https://youtube.com/@ada", "tech", "ada@example.com", "", "2026-01-15"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("rows[0] = %v, want %v", rows[0], want)
	}
	if rows[1][0] != "Zoe" {
		t.Errorf("rows[1][0] = %q, want Zoe (name ascending)", rows[1][0])
	}
	// Builder must not mutate its input.
	if creators[0].Name != "Zoe" {
		t.Errorf("input slice was reordered: creators[0] = %q", creators[0].Name)
	}
}

func TestBuildVideosTableOrdering(t *testing.T) {
	videos := []model.Video{
		testVideo(t, 1, 1, model.PaymentPaid, "10.00", datePtr(2026, time.January, 5)),
		testVideo(t, 2, 1, model.PaymentPending, "20.00", nil),
		testVideo(t, 3, 1, model.PaymentPaid, "30.00", datePtr(2026, time.March, 1)),
		testVideo(t, 4, 1, model.PaymentPending, "40.00", nil),
	}
	names := map[int64]string{1: "Ada"}

	tables, err := BuildTables(KindVideos, Data{Videos: videos, CreatorNames: names})
	if err != nil {
		t.Fatalf("BuildTables error: %v", err)
	}

	rows := tables[0].Rows
	gotDates := []string{rows[0][2], rows[1][2], rows[2][2], rows[3][2]}
	wantDates := []string{"2026-03-01", "2026-01-05", "", ""}
	if !reflect.DeepEqual(gotDates, wantDates) {
		t.Errorf("upload date order = %v, want %v (descending, undated last)", gotDates, wantDates)
	}
	if rows[0][1] != "Ada" {
		t.Errorf("creator name not resolved: %q", rows[0][1])
	}
	if rows[0][4] != "30.00" {
		t.Errorf("amount = %q, want 30.00", rows[0][4])
	}
}

func TestBuildPaymentsTable(t *testing.T) {
	summaries := []PaymentSummary{
		{
			CreatorID:    1,
			CreatorName:  "Ada",
			Contact:      "ada@example.com",
			VideoCount:   3,
			PaidTotal:    dec(t, "100.00"),
			PendingTotal: dec(t, "50.00"),
		},
	}

	tables, err := BuildTables(KindPayments, Data{Summaries: summaries})
	if err != nil {
		t.Fatalf("BuildTables error: %v", err)
	}

	want := []string{"Ada", "ada@example.com", "3", "100.00", "50.00", "0.67"}
	if !reflect.DeepEqual(tables[0].Rows[0], want) {
		t.Errorf("row = %v, want %v", tables[0].Rows[0], want)
	}
}

func TestKindValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindCreators, true},
		{KindVideos, true},
		{KindPayments, true},
		{KindCombined, true},
		{Kind(""), false},
		{Kind("all"), false},
	}

	for _, tt := range tests {
		if got := tt.kind.Valid(); got != tt.want {
			t.Errorf("Kind(%q).Valid() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
