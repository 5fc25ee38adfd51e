package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nkchunduri/stock-tracker/internal/pagination"
	"github.com/nkchunduri/stock-tracker/internal/testutil"
)

func TestRecordPrices(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 6, 10, 6, 0, 0, 0, time.UTC)

	t.Run("skips_duplicates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPriceHistoryService(db)

		entries := []PriceHistoryInput{
			{Symbol: "reliance", Price: decimal.NewFromInt(2500), Timestamp: at},
			{Symbol: "TCS", Price: decimal.NewFromInt(3900), Timestamp: at},
		}
		n, err := svc.RecordPrices(ctx, entries)
		testutil.AssertNoError(t, err)
		if n != 2 {
			t.Errorf("expected 2 recorded, got %d", n)
		}

		n, err = svc.RecordPrices(ctx, entries)
		testutil.AssertNoError(t, err)
		if n != 0 {
			t.Errorf("expected duplicates skipped, got %d recorded", n)
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPriceHistoryService(db)

		_, err := svc.RecordPrices(ctx, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetPriceHistory(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPriceHistoryService(db)

	base := time.Date(2024, 6, 10, 4, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		testutil.CreateTestPriceHistory(t, db, "RELIANCE", decimal.NewFromInt(int64(2500+i)), base.Add(time.Duration(i)*5*time.Minute))
	}
	testutil.CreateTestPriceHistory(t, db, "TCS", decimal.NewFromInt(3900), base)

	t.Run("newest_first", func(t *testing.T) {
		page, err := svc.GetPriceHistory(ctx, "reliance", pagination.PageRequest{Page: 1, PageSize: 2})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 5 {
			t.Errorf("expected 5 total items, got %d", page.TotalItems)
		}
		if page.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", page.TotalPages)
		}
		if len(page.Data) != 2 {
			t.Fatalf("expected 2 items on page, got %d", len(page.Data))
		}
		testutil.AssertDecimal(t, page.Data[0].Price, "2504")
	})

	t.Run("defaults", func(t *testing.T) {
		page, err := svc.GetPriceHistory(ctx, "TCS", pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.Page != 1 || page.PageSize != 50 {
			t.Errorf("expected default paging 1/50, got %d/%d", page.Page, page.PageSize)
		}
		if len(page.Data) != 1 {
			t.Errorf("expected 1 TCS observation, got %d", len(page.Data))
		}
	})

	t.Run("unknown_symbol", func(t *testing.T) {
		page, err := svc.GetPriceHistory(ctx, "NOPE", pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 0 || page.TotalItems != 0 {
			t.Errorf("expected empty page, got %+v", page)
		}
	})
}
