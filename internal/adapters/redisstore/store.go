// Package redisstore holds generated trip plans for the lifetime of an
// interactive session. Entries are written with a TTL and never touched by
// any migration or durability machinery: when the TTL lapses the session is
// gone, which is the intended lifecycle.
package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/domain"
)

type Store struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr, pass string, db int, ttl time.Duration) *Store {
	return &Store{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		ttl: ttl,
	}
}

// NewWithClient is used by tests that bring their own (mini)redis client.
func NewWithClient(c *redis.Client, ttl time.Duration) *Store {
	return &Store{c: c, ttl: ttl}
}

func key(id string) string { return "plan:" + id }

func (s *Store) Save(ctx context.Context, plan domain.TripPlan) error {
	b, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	observability.ObserveCache("redis", "set")
	return s.c.Set(ctx, key(plan.ID), b, s.ttl).Err()
}

// Update rewrites a plan (booking confirmation) while keeping the remaining
// TTL, so confirming a trip never extends the session.
func (s *Store) Update(ctx context.Context, plan domain.TripPlan) error {
	b, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	observability.ObserveCache("redis", "set")
	return s.c.Set(ctx, key(plan.ID), b, redis.KeepTTL).Err()
}

func (s *Store) Get(ctx context.Context, id string) (domain.TripPlan, error) {
	v, err := s.c.Get(ctx, key(id)).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("redis", "miss")
		return domain.TripPlan{}, domain.ErrPlanNotFound
	}
	if err != nil {
		return domain.TripPlan{}, err
	}
	observability.ObserveCache("redis", "hit")
	var plan domain.TripPlan
	if err := json.Unmarshal(v, &plan); err != nil {
		return domain.TripPlan{}, err
	}
	return plan, nil
}
