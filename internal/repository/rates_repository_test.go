package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/taxfolio/backend/internal/repository"
	"github.com/taxfolio/backend/internal/testutil"
)

func TestExchangeRateRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewExchangeRateRepository(db)
	ctx := context.Background()

	t.Run("missing date", func(t *testing.T) {
		_, found, err := repo.GetRate(ctx, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("GetRate failed: %v", err)
		}
		if found {
			t.Error("Expected no rate for unseeded date")
		}
	})

	t.Run("upsert and get", func(t *testing.T) {
		date := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

		if err := repo.UpsertRate(ctx, date, 31.36); err != nil {
			t.Fatalf("UpsertRate failed: %v", err)
		}
		// Replace the value for the same date
		if err := repo.UpsertRate(ctx, date, 31.40); err != nil {
			t.Fatalf("UpsertRate failed: %v", err)
		}

		rate, found, err := repo.GetRate(ctx, date)
		if err != nil {
			t.Fatalf("GetRate failed: %v", err)
		}
		if !found || rate != 31.40 {
			t.Errorf("Expected 31.40, got %v (found=%v)", rate, found)
		}
		testutil.AssertRowCount(t, db, "exchange_rates", 1)

		testutil.CleanDatabase(t, db)
	})

	t.Run("latest rate date", func(t *testing.T) {
		_, found, err := repo.LatestRateDate(ctx)
		if err != nil {
			t.Fatalf("LatestRateDate failed: %v", err)
		}
		if found {
			t.Error("Expected no latest date on empty table")
		}

		testutil.SeedExchangeRate(t, db, 2024, time.March, 1, 31.36)
		testutil.SeedExchangeRate(t, db, 2024, time.March, 4, 31.44)

		latest, found, err := repo.LatestRateDate(ctx)
		if err != nil {
			t.Fatalf("LatestRateDate failed: %v", err)
		}
		want := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
		if !found || !latest.Equal(want) {
			t.Errorf("Expected %v, got %v (found=%v)", want, latest, found)
		}

		testutil.CleanDatabase(t, db)
	})
}

func TestInflationIndexRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewInflationIndexRepository(db)
	ctx := context.Background()

	t.Run("upsert and get", func(t *testing.T) {
		if err := repo.UpsertIndex(ctx, 2024, time.March, 3300.5); err != nil {
			t.Fatalf("UpsertIndex failed: %v", err)
		}

		value, found, err := repo.GetIndex(ctx, 2024, time.March)
		if err != nil {
			t.Fatalf("GetIndex failed: %v", err)
		}
		if !found || value != 3300.5 {
			t.Errorf("Expected 3300.5, got %v (found=%v)", value, found)
		}

		_, found, err = repo.GetIndex(ctx, 2024, time.April)
		if err != nil {
			t.Fatalf("GetIndex failed: %v", err)
		}
		if found {
			t.Error("Expected no value for unseeded month")
		}

		testutil.CleanDatabase(t, db)
	})

	t.Run("list ordered", func(t *testing.T) {
		testutil.SeedInflationIndex(t, db, 2024, time.February, 3147.76)
		testutil.SeedInflationIndex(t, db, 2023, time.December, 2915.02)
		testutil.SeedInflationIndex(t, db, 2024, time.January, 3035.99)

		values, err := repo.ListIndex(ctx)
		if err != nil {
			t.Fatalf("ListIndex failed: %v", err)
		}
		if len(values) != 3 {
			t.Fatalf("Expected 3 values, got %d", len(values))
		}
		if values[0].Year != 2023 || values[2].Month != time.February {
			t.Errorf("Values not ordered: %+v", values)
		}

		testutil.CleanDatabase(t, db)
	})
}

func TestSettingRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewSettingRepository(db)
	ctx := context.Background()

	_, found, err := repo.GetSetting(ctx, "missing")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if found {
		t.Error("Expected missing key to report not found")
	}

	if err := repo.UpsertSetting(ctx, "k", "v1"); err != nil {
		t.Fatalf("UpsertSetting failed: %v", err)
	}
	if err := repo.UpsertSetting(ctx, "k", "v2"); err != nil {
		t.Fatalf("UpsertSetting failed: %v", err)
	}

	value, found, err := repo.GetSetting(ctx, "k")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if !found || value != "v2" {
		t.Errorf("Expected v2, got %q (found=%v)", value, found)
	}
	testutil.AssertRowCount(t, db, "settings", 1)
}
