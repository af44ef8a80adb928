package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xpress-ledger/backend/internal/application/adapter"
	"github.com/xpress-ledger/backend/internal/domain/entity"
	domainerror "github.com/xpress-ledger/backend/internal/domain/error"
	"github.com/xpress-ledger/backend/internal/integration/persistence"
)

type row struct {
	date     string
	desc     string
	amount   string
	category string
}

func buildDataset(t *testing.T, names []string, rows []row) (adapter.TransactionStore, adapter.CategoryRegistry) {
	t.Helper()
	ctx := context.Background()
	store := persistence.NewTransactionStore()
	registry := persistence.NewCategoryRegistry()

	byName := map[string]*entity.Category{}
	for _, name := range names {
		cat := entity.NewCategory(name, 0)
		if err := registry.Create(ctx, cat); err != nil {
			t.Fatalf("failed to register category %q: %v", name, err)
		}
		byName[name] = cat
	}
	defaultCat, err := registry.Default(ctx)
	if err != nil {
		t.Fatalf("failed to resolve default category: %v", err)
	}
	byName[entity.DefaultCategoryName] = defaultCat

	transactions := make([]*entity.Transaction, len(rows))
	for i, r := range rows {
		date, err := time.Parse(time.DateOnly, r.date)
		if err != nil {
			t.Fatalf("bad test date %q: %v", r.date, err)
		}
		amount, err := decimal.NewFromString(r.amount)
		if err != nil {
			t.Fatalf("bad test amount %q: %v", r.amount, err)
		}
		cat, ok := byName[r.category]
		if !ok {
			t.Fatalf("unknown test category %q", r.category)
		}
		transactions[i] = entity.NewTransaction(date, r.desc, amount, cat.ID, i)
	}
	if _, err := store.Replace(ctx, transactions); err != nil {
		t.Fatalf("failed to load transactions: %v", err)
	}
	return store, registry
}

func TestTotalsByCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("sums signed amounts exactly per category", func(t *testing.T) {
		store, registry := buildDataset(t,
			[]string{"Coffee", "Salary"},
			[]row{
				{"2024-03-01", "ESPRESSO", "-12.50", "Coffee"},
				{"2024-03-02", "LATTE", "-7.25", "Coffee"},
				{"2024-03-05", "BONUS", "100.00", "Coffee"},
				{"2024-03-10", "PAYROLL", "2500.00", "Salary"},
			},
		)

		uc := NewTotalsByCategoryUseCase(store, registry)
		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Default first, then creation order.
		if len(output.Categories) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(output.Categories))
		}
		if output.Categories[0].CategoryName != entity.DefaultCategoryName {
			t.Errorf("expected the default first, got %q", output.Categories[0].CategoryName)
		}

		coffee := output.Categories[1]
		if coffee.CategoryName != "Coffee" {
			t.Fatalf("expected Coffee second, got %q", coffee.CategoryName)
		}
		if want := decimal.RequireFromString("80.25"); !coffee.Total.Equal(want) {
			t.Errorf("expected coffee total %s, got %s", want, coffee.Total)
		}
		if coffee.Count != 3 {
			t.Errorf("expected 3 coffee transactions, got %d", coffee.Count)
		}
	})

	t.Run("includes empty categories with zero totals", func(t *testing.T) {
		store, registry := buildDataset(t, []string{"Unused"}, nil)

		uc := NewTotalsByCategoryUseCase(store, registry)
		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		unused := output.Categories[1]
		if unused.CategoryName != "Unused" {
			t.Fatalf("expected Unused, got %q", unused.CategoryName)
		}
		if !unused.Total.IsZero() || unused.Count != 0 {
			t.Errorf("expected zero total and count, got %s / %d", unused.Total, unused.Count)
		}
	})
}

func TestTotalsByPeriodUseCase(t *testing.T) {
	ctx := context.Background()

	dataset := func(t *testing.T) (adapter.TransactionStore, adapter.CategoryRegistry) {
		return buildDataset(t,
			[]string{"Coffee"},
			[]row{
				{"2024-03-01", "ESPRESSO", "-12.50", "Coffee"},
				{"2024-03-15", "LATTE", "-7.25", "Coffee"},
				{"2024-04-02", "MOCHA", "-3.00", "Coffee"},
				{"2023-12-31", "OLD", "-1.00", "Uncategorized"},
			},
		)
	}

	t.Run("groups by month in chronological order", func(t *testing.T) {
		store, registry := dataset(t)
		uc := NewTotalsByPeriodUseCase(store, registry)

		output, err := uc.Execute(ctx, TotalsByPeriodInput{Granularity: "month"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Periods) != 3 {
			t.Fatalf("expected 3 periods, got %d", len(output.Periods))
		}

		keys := []string{"2023-12", "2024-03", "2024-04"}
		for i, want := range keys {
			if output.Periods[i].Key != want {
				t.Errorf("period %d: expected key %q, got %q", i, want, output.Periods[i].Key)
			}
		}

		march := output.Periods[1]
		if want := decimal.RequireFromString("-19.75"); !march.Total.Equal(want) {
			t.Errorf("expected march total %s, got %s", want, march.Total)
		}
		if march.Count != 2 {
			t.Errorf("expected 2 march transactions, got %d", march.Count)
		}
		if wantStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC); !march.Start.Equal(wantStart) {
			t.Errorf("expected march start %s, got %s", wantStart, march.Start)
		}
		if len(march.ByCategory) != 1 || march.ByCategory[0].CategoryName != "Coffee" {
			t.Error("expected a coffee subtotal inside march")
		}
	})

	t.Run("groups by year", func(t *testing.T) {
		store, registry := dataset(t)
		uc := NewTotalsByPeriodUseCase(store, registry)

		output, err := uc.Execute(ctx, TotalsByPeriodInput{Granularity: "year"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Periods) != 2 {
			t.Fatalf("expected 2 periods, got %d", len(output.Periods))
		}
		if output.Periods[0].Key != "2023" || output.Periods[1].Key != "2024" {
			t.Errorf("unexpected year keys: %q, %q", output.Periods[0].Key, output.Periods[1].Key)
		}
	})

	t.Run("groups by day", func(t *testing.T) {
		store, registry := dataset(t)
		uc := NewTotalsByPeriodUseCase(store, registry)

		output, err := uc.Execute(ctx, TotalsByPeriodInput{Granularity: "day"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Periods) != 4 {
			t.Fatalf("expected 4 periods, got %d", len(output.Periods))
		}
		if output.Periods[0].Key != "2023-12-31" {
			t.Errorf("expected the oldest day first, got %q", output.Periods[0].Key)
		}
	})

	t.Run("rejects an unknown granularity", func(t *testing.T) {
		store, registry := dataset(t)
		uc := NewTotalsByPeriodUseCase(store, registry)

		_, err := uc.Execute(ctx, TotalsByPeriodInput{Granularity: "week"})
		if !errors.Is(err, domainerror.ErrInvalidGranularity) {
			t.Errorf("expected invalid-granularity error, got %v", err)
		}
	})
}

func TestGetTotalsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("splits income and expenses", func(t *testing.T) {
		store, _ := buildDataset(t,
			nil,
			[]row{
				{"2024-03-01", "PAYROLL", "2500.00", "Uncategorized"},
				{"2024-03-02", "RENT", "-1200.00", "Uncategorized"},
				{"2024-03-03", "GROCERIES", "-85.37", "Uncategorized"},
			},
		)

		uc := NewGetTotalsUseCase(store)
		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.RequireFromString("2500.00"); !output.Totals.IncomeTotal.Equal(want) {
			t.Errorf("expected income %s, got %s", want, output.Totals.IncomeTotal)
		}
		if want := decimal.RequireFromString("1285.37"); !output.Totals.ExpenseTotal.Equal(want) {
			t.Errorf("expected expenses %s, got %s", want, output.Totals.ExpenseTotal)
		}
		if want := decimal.RequireFromString("1214.63"); !output.Totals.NetTotal.Equal(want) {
			t.Errorf("expected net %s, got %s", want, output.Totals.NetTotal)
		}
		if output.Count != 3 {
			t.Errorf("expected 3 transactions, got %d", output.Count)
		}
	})

	t.Run("empty dataset yields zero totals", func(t *testing.T) {
		store, _ := buildDataset(t, nil, nil)

		uc := NewGetTotalsUseCase(store)
		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Totals.IncomeTotal.IsZero() || !output.Totals.ExpenseTotal.IsZero() || !output.Totals.NetTotal.IsZero() {
			t.Error("expected all totals to be zero")
		}
	})
}

func TestParseGranularity(t *testing.T) {
	valid := []string{"day", "month", "year"}
	for _, raw := range valid {
		if _, err := ParseGranularity(raw); err != nil {
			t.Errorf("expected %q to parse, got %v", raw, err)
		}
	}
	for _, raw := range []string{"", "week", "Month", "DAY"} {
		if _, err := ParseGranularity(raw); err == nil {
			t.Errorf("expected %q to be rejected", raw)
		}
	}
}

func TestPeriodKey(t *testing.T) {
	date := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)
	cases := []struct {
		granularity Granularity
		want        string
	}{
		{GranularityDay, "2024-03-07"},
		{GranularityMonth, "2024-03"},
		{GranularityYear, "2024"},
	}
	for _, tc := range cases {
		if got := PeriodKey(date, tc.granularity); got != tc.want {
			t.Errorf("PeriodKey(%s): expected %q, got %q", tc.granularity, tc.want, got)
		}
	}
}

func TestPeriodStart(t *testing.T) {
	date := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)
	cases := []struct {
		granularity Granularity
		want        time.Time
	}{
		{GranularityDay, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)},
		{GranularityMonth, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{GranularityYear, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if got := PeriodStart(date, tc.granularity); !got.Equal(tc.want) {
			t.Errorf("PeriodStart(%s): expected %s, got %s", tc.granularity, tc.want, got)
		}
	}
}
