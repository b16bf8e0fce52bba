// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
)

// cachedRuleRepository decorates a RuleRepository with a Redis read-through
// cache. Rule configuration is effectively immutable within a deployment, so
// entries carry a TTL instead of explicit invalidation. Cache failures fall
// back to the underlying repository.
type cachedRuleRepository struct {
	inner  adapter.RuleRepository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedRuleRepository wraps a rule repository with a Redis cache.
func NewCachedRuleRepository(inner adapter.RuleRepository, client *redis.Client, ttl time.Duration) adapter.RuleRepository {
	return &cachedRuleRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

// FindActiveYearByCode resolves a year through the cache.
func (r *cachedRuleRepository) FindActiveYearByCode(ctx context.Context, code string) (*entity.FinancialYear, error) {
	key := "taxrules:year:" + code

	var year entity.FinancialYear
	if r.getCached(ctx, key, &year) {
		return &year, nil
	}

	found, err := r.inner.FindActiveYearByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	r.setCached(ctx, key, found)
	return found, nil
}

// FindRegimeRules resolves a regime and its slabs through the cache.
func (r *cachedRuleRepository) FindRegimeRules(ctx context.Context, financialYearID uuid.UUID, code entity.RegimeCode) (*adapter.RegimeRules, error) {
	key := fmt.Sprintf("taxrules:regime:%s:%s", financialYearID, code)

	var rules adapter.RegimeRules
	if r.getCached(ctx, key, &rules) {
		return &rules, nil
	}

	found, err := r.inner.FindRegimeRules(ctx, financialYearID, code)
	if err != nil {
		return nil, err
	}

	r.setCached(ctx, key, found)
	return found, nil
}

// FindDeductionRules resolves the deduction-limit table through the cache.
func (r *cachedRuleRepository) FindDeductionRules(ctx context.Context, financialYearID uuid.UUID) (map[string]*entity.DeductionRule, error) {
	key := "taxrules:deductions:" + financialYearID.String()

	var rules map[string]*entity.DeductionRule
	if r.getCached(ctx, key, &rules) {
		return rules, nil
	}

	found, err := r.inner.FindDeductionRules(ctx, financialYearID)
	if err != nil {
		return nil, err
	}

	r.setCached(ctx, key, found)
	return found, nil
}

// ListActiveYears resolves the active year list through the cache.
func (r *cachedRuleRepository) ListActiveYears(ctx context.Context) ([]*entity.FinancialYear, error) {
	key := "taxrules:years"

	var years []*entity.FinancialYear
	if r.getCached(ctx, key, &years) {
		return years, nil
	}

	found, err := r.inner.ListActiveYears(ctx)
	if err != nil {
		return nil, err
	}

	r.setCached(ctx, key, found)
	return found, nil
}

// getCached loads and unmarshals a cache entry into dest. A miss or any cache
// error returns false and the caller hits the underlying repository.
func (r *cachedRuleRepository) getCached(ctx context.Context, key string, dest interface{}) bool {
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("Rule cache read failed", "error", err, "key", key)
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		slog.Warn("Rule cache entry is corrupt", "error", err, "key", key)
		return false
	}
	return true
}

// setCached stores a cache entry, logging and ignoring failures.
func (r *cachedRuleRepository) setCached(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		slog.Warn("Rule cache marshal failed", "error", err, "key", key)
		return
	}

	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		slog.Warn("Rule cache write failed", "error", err, "key", key)
	}
}
