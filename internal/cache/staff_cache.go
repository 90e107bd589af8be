// Package cache publishes denormalized staff snapshots to a key-value store
// after onboarding commits. The cache is a read optimization only; a failed
// publish never fails the onboarding call.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/afit-dev/staff-management/internal/domain"
)

const keyPrefix = "staff:"

// Setter is the single cache-store operation the publisher depends on.
// *redis.Client satisfies it.
type Setter interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// StaffCachePublisher writes staff snapshots keyed by staff id. Publishing is
// idempotent: re-publishing the same staff id overwrites the prior snapshot
// entirely (last writer wins, no merge).
type StaffCachePublisher struct {
	store  Setter
	ttl    time.Duration
	logger *zap.Logger
}

// NewStaffCachePublisher builds a publisher. A zero ttl means the key never
// expires here; expiry policy belongs to the cache configuration.
func NewStaffCachePublisher(store Setter, ttl time.Duration, logger *zap.Logger) *StaffCachePublisher {
	return &StaffCachePublisher{store: store, ttl: ttl, logger: logger}
}

// Key returns the cache key for a staff id.
func Key(staffID string) string {
	return keyPrefix + staffID
}

// Publish serializes the snapshot and writes it under the staff id key,
// reporting whether the write succeeded. Failures are logged, not returned:
// the relational store stays authoritative either way.
func (p *StaffCachePublisher) Publish(ctx context.Context, snapshot domain.StaffSnapshot) bool {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		p.logger.Error("marshal staff snapshot", zap.String("staff_id", snapshot.StaffID), zap.Error(err))
		return false
	}

	if err := p.store.Set(ctx, Key(snapshot.StaffID), payload, p.ttl).Err(); err != nil {
		p.logger.Warn("staff snapshot publish failed",
			zap.String("staff_id", snapshot.StaffID),
			zap.Error(err))
		return false
	}
	return true
}
