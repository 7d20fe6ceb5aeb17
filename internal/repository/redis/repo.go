// Package redis keeps the per-family member-list versions that key the tree
// projection cache.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/s21platform/family-web/internal/config"
)

const memberVersionKey = "family:%s:members:version"

type Repository struct {
	client redis.UniversalClient
}

func New(cfg *config.Config) *Repository {
	return NewWithClient(redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}))
}

func NewWithClient(client redis.UniversalClient) *Repository {
	return &Repository{client: client}
}

func (r *Repository) Close() {
	_ = r.client.Close()
}

// MemberVersion returns 0 for a family whose members never changed since
// the key was created.
func (r *Repository) MemberVersion(ctx context.Context, familyID string) (int64, error) {
	version, err := r.client.Get(ctx, fmt.Sprintf(memberVersionKey, familyID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get member version of %s: %w", familyID, err)
	}
	return version, nil
}

func (r *Repository) BumpMemberVersion(ctx context.Context, familyID string) (int64, error) {
	version, err := r.client.Incr(ctx, fmt.Sprintf(memberVersionKey, familyID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to bump member version of %s: %w", familyID, err)
	}
	return version, nil
}
