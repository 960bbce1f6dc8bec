package services

import (
	"testing"

	"spendwise/internal/testutil"

	"gorm.io/gorm"
)

func newReportService(db *gorm.DB) ReportServicer {
	return NewReportService(db, NewBudgetService(db))
}

func TestCategoryTotals(t *testing.T) {
	t.Run("sums_per_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newReportService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestExpense(t, db, user.ID, 100, "Food", "2025-03-01")
		testutil.CreateTestExpense(t, db, user.ID, 50, "Food", "2025-03-02")
		testutil.CreateTestExpense(t, db, user.ID, 200, "Rent", "2025-03-03")

		totals, err := svc.CategoryTotals(user.ID)
		testutil.AssertNoError(t, err)

		if len(totals) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(totals))
		}
		// Largest total first.
		if totals[0].Category != "Rent" || totals[0].Total != 200 {
			t.Errorf("expected Rent 200 first, got %s %f", totals[0].Category, totals[0].Total)
		}
		if totals[1].Category != "Food" || totals[1].Total != 150 {
			t.Errorf("expected Food 150 second, got %s %f", totals[1].Category, totals[1].Total)
		}
	})

	t.Run("only_own_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newReportService(db)

		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestExpense(t, db, user.ID, 100, "Food", "2025-03-01")
		testutil.CreateTestExpense(t, db, other.ID, 999, "Food", "2025-03-01")

		totals, err := svc.CategoryTotals(user.ID)
		testutil.AssertNoError(t, err)

		if len(totals) != 1 || totals[0].Total != 100 {
			t.Errorf("expected only the user's own 100, got %+v", totals)
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newReportService(db)

		user := testutil.CreateTestUser(t, db)
		totals, err := svc.CategoryTotals(user.ID)
		testutil.AssertNoError(t, err)
		if len(totals) != 0 {
			t.Errorf("expected no totals, got %+v", totals)
		}
	})
}

func TestMonthlyTotals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newReportService(db)

	user := testutil.CreateTestUser(t, db)
	testutil.CreateTestExpense(t, db, user.ID, 100, "Food", "2025-04-15")
	testutil.CreateTestExpense(t, db, user.ID, 50, "Food", "2025-03-20")
	testutil.CreateTestExpense(t, db, user.ID, 25, "Travel", "2025-03-05")

	totals, err := svc.MonthlyTotals(user.ID)
	testutil.AssertNoError(t, err)

	if len(totals) != 2 {
		t.Fatalf("expected 2 months, got %d", len(totals))
	}
	if totals[0].Month != "2025-03" || totals[0].Total != 75 {
		t.Errorf("expected 2025-03 total 75, got %s %f", totals[0].Month, totals[0].Total)
	}
	if totals[1].Month != "2025-04" || totals[1].Total != 100 {
		t.Errorf("expected 2025-04 total 100, got %s %f", totals[1].Month, totals[1].Total)
	}
}

func TestMonthlySummary(t *testing.T) {
	t.Run("with_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newReportService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "2025-03", 500)
		testutil.CreateTestExpense(t, db, user.ID, 100, "Food", "2025-03-10")
		testutil.CreateTestExpense(t, db, user.ID, 150, "Rent", "2025-03-11")
		// Different month, must not count.
		testutil.CreateTestExpense(t, db, user.ID, 999, "Food", "2025-04-01")

		summary, err := svc.MonthlySummary(user.ID, "2025-03")
		testutil.AssertNoError(t, err)

		if summary.Spent != 250 {
			t.Errorf("expected spent 250, got %f", summary.Spent)
		}
		if summary.Budget == nil || *summary.Budget != 500 {
			t.Fatalf("expected budget 500, got %v", summary.Budget)
		}
		if summary.Remaining == nil || *summary.Remaining != 250 {
			t.Errorf("expected remaining 250, got %v", summary.Remaining)
		}
		if summary.Percentage == nil || *summary.Percentage != 50 {
			t.Errorf("expected percentage 50, got %v", summary.Percentage)
		}
	})

	t.Run("no_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newReportService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestExpense(t, db, user.ID, 100, "Food", "2025-03-10")

		summary, err := svc.MonthlySummary(user.ID, "2025-03")
		testutil.AssertNoError(t, err)

		if summary.Spent != 100 {
			t.Errorf("expected spent 100, got %f", summary.Spent)
		}
		if summary.Budget != nil || summary.Remaining != nil || summary.Percentage != nil {
			t.Errorf("expected no budget fields when no budget is set, got %+v", summary)
		}
	})

	t.Run("zero_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newReportService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "2025-03", 0)
		testutil.CreateTestExpense(t, db, user.ID, 100, "Food", "2025-03-10")

		summary, err := svc.MonthlySummary(user.ID, "2025-03")
		testutil.AssertNoError(t, err)

		// A stored zero budget is reported; percentage is omitted to
		// avoid division by zero.
		if summary.Budget == nil || *summary.Budget != 0 {
			t.Fatalf("expected budget 0, got %v", summary.Budget)
		}
		if summary.Percentage != nil {
			t.Errorf("expected no percentage for zero budget, got %v", *summary.Percentage)
		}
	})

	t.Run("no_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newReportService(db)

		user := testutil.CreateTestUser(t, db)
		summary, err := svc.MonthlySummary(user.ID, "2025-03")
		testutil.AssertNoError(t, err)

		if summary.Spent != 0 {
			t.Errorf("expected spent 0, got %f", summary.Spent)
		}
	})
}

func TestInsights(t *testing.T) {
	t.Run("empty_ledger", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newReportService(db)

		user := testutil.CreateTestUser(t, db)
		obs, err := svc.Insights(user.ID)
		testutil.AssertNoError(t, err)
		if len(obs) != 0 {
			t.Errorf("expected no observations for empty ledger, got %v", obs)
		}
	})

	t.Run("over_limit_and_highest", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newReportService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategoryLimit(t, db, user.ID, "Food", 250)
		testutil.CreateTestExpense(t, db, user.ID, 200, "Food", "2025-03-01")
		testutil.CreateTestExpense(t, db, user.ID, 100, "Food", "2025-03-02")
		testutil.CreateTestExpense(t, db, user.ID, 50, "Travel", "2025-03-03")

		obs, err := svc.Insights(user.ID)
		testutil.AssertNoError(t, err)

		if len(obs) != 2 {
			t.Fatalf("expected 2 observations, got %d: %v", len(obs), obs)
		}
		if obs[0] != "Food spending exceeded its limit of 250.00" {
			t.Errorf("unexpected over-limit observation: %s", obs[0])
		}
		if obs[1] != "Highest spending category: Food" {
			t.Errorf("unexpected highest-category observation: %s", obs[1])
		}
	})

	t.Run("no_limits_configured", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newReportService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestExpense(t, db, user.ID, 100, "Rent", "2025-03-01")

		obs, err := svc.Insights(user.ID)
		testutil.AssertNoError(t, err)

		if len(obs) != 1 || obs[0] != "Highest spending category: Rent" {
			t.Errorf("expected only the highest-category observation, got %v", obs)
		}
	})
}
