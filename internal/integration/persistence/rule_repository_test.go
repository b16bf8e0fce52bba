package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
	"github.com/chronyx/backend/internal/integration/persistence/model"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newRuleTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.FinancialYearModel{},
		&model.TaxRegimeModel{},
		&model.TaxSlabModel{},
		&model.DeductionRuleModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate rule tables: %v", err)
	}

	if err := SeedTaxRules(context.Background(), db); err != nil {
		t.Fatalf("failed to seed tax rules: %v", err)
	}
	return db
}

func TestRuleRepository_FindActiveYearByCode(t *testing.T) {
	db := newRuleTestDB(t)
	repo := NewRuleRepository(db)
	ctx := context.Background()

	year, err := repo.FindActiveYearByCode(ctx, "FY2025_26")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if year.Code != "FY2025_26" || !year.IsActive {
		t.Errorf("unexpected year: %+v", year)
	}

	_, err = repo.FindActiveYearByCode(ctx, "FY1999_00")
	if !errors.Is(err, domainerror.ErrFinancialYearNotFound) {
		t.Errorf("expected ErrFinancialYearNotFound, got %v", err)
	}
}

func TestRuleRepository_FindRegimeRules(t *testing.T) {
	db := newRuleTestDB(t)
	repo := NewRuleRepository(db)
	ctx := context.Background()

	year, err := repo.FindActiveYearByCode(ctx, "FY2025_26")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rules, err := repo.FindRegimeRules(ctx, year.ID, entity.RegimeCodeNew)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rules.Regime.Code != entity.RegimeCodeNew {
		t.Errorf("regime code = %s, want %s", rules.Regime.Code, entity.RegimeCodeNew)
	}
	if !rules.Regime.StandardDeduction.Equal(dec(75_000)) {
		t.Errorf("standard deduction = %s, want 75000", rules.Regime.StandardDeduction)
	}
	if len(rules.Slabs) != 6 {
		t.Fatalf("expected 6 slabs, got %d", len(rules.Slabs))
	}
	for i, slab := range rules.Slabs {
		if slab.SlabOrder != i+1 {
			t.Errorf("slab %d out of order: slab_order %d", i, slab.SlabOrder)
		}
	}
	if rules.Slabs[5].MaxAmount != nil {
		t.Errorf("top slab should be unbounded, got max %s", rules.Slabs[5].MaxAmount)
	}

	_, err = repo.FindRegimeRules(ctx, year.ID, entity.RegimeCode("flat"))
	if !errors.Is(err, domainerror.ErrRegimeNotFound) {
		t.Errorf("expected ErrRegimeNotFound, got %v", err)
	}
}

func TestRuleRepository_FindDeductionRules(t *testing.T) {
	db := newRuleTestDB(t)
	repo := NewRuleRepository(db)
	ctx := context.Background()

	year, err := repo.FindActiveYearByCode(ctx, "FY2025_26")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rules, err := repo.FindDeductionRules(ctx, year.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c80, ok := rules[entity.SectionCode80C]
	if !ok {
		t.Fatal("missing 80C rule")
	}
	if c80.MaxLimit == nil || !c80.MaxLimit.Equal(dec(150_000)) {
		t.Errorf("80C limit = %v, want 150000", c80.MaxLimit)
	}

	e80, ok := rules[entity.SectionCode80E]
	if !ok {
		t.Fatal("missing 80E rule")
	}
	if e80.MaxLimit != nil {
		t.Errorf("80E should be uncapped, got %s", e80.MaxLimit)
	}
}

func TestRuleRepository_ListActiveYears(t *testing.T) {
	db := newRuleTestDB(t)
	repo := NewRuleRepository(db)

	years, err := repo.ListActiveYears(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(years) != 1 || years[0].Code != "FY2025_26" {
		t.Errorf("unexpected years: %+v", years)
	}
}

func TestSeedTaxRules_Idempotent(t *testing.T) {
	db := newRuleTestDB(t)

	// Seeding again must not duplicate the year.
	if err := SeedTaxRules(context.Background(), db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int64
	if err := db.Model(&model.FinancialYearModel{}).Count(&count).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 financial year after re-seed, got %d", count)
	}
}

func TestCachedRuleRepository(t *testing.T) {
	db := newRuleTestDB(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewCachedRuleRepository(NewRuleRepository(db), client, time.Minute)
	ctx := context.Background()

	t.Run("serves repeated lookups from the cache", func(t *testing.T) {
		year, err := repo.FindActiveYearByCode(ctx, "FY2025_26")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Deactivate the row underneath the cache; the entry must survive.
		err = db.Model(&model.FinancialYearModel{}).
			Where("code = ?", "FY2025_26").
			Update("is_active", false).Error
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cached, err := repo.FindActiveYearByCode(ctx, "FY2025_26")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cached.ID != year.ID {
			t.Errorf("cached year ID = %s, want %s", cached.ID, year.ID)
		}
	})

	t.Run("evicted entries fall back to the database", func(t *testing.T) {
		mr.FlushAll()

		_, err := repo.FindActiveYearByCode(ctx, "FY2025_26")
		if !errors.Is(err, domainerror.ErrFinancialYearNotFound) {
			t.Errorf("expected ErrFinancialYearNotFound after eviction, got %v", err)
		}
	})
}
