package service

import (
	"context"
	"encoding/json"

	"pulse/internal/cache"
	"pulse/internal/models"
	"pulse/internal/repository"

	"github.com/redis/go-redis/v9"
)

// Enricher attaches owner attribution to posts and events. Instead of one
// user lookup per record it batch-fetches the distinct owner ids of a result
// set in a single query and joins in memory. When a Redis client is present,
// summaries are served from and written back to the cache.
type Enricher struct {
	userRepo repository.UserRepository
	redis    *redis.Client
}

func NewEnricher(userRepo repository.UserRepository, redisClient *redis.Client) *Enricher {
	return &Enricher{userRepo: userRepo, redis: redisClient}
}

// OwnerSummaries resolves the given owner ids to user summaries. Ids that do
// not resolve to a user are simply absent from the result map.
func (e *Enricher) OwnerSummaries(ctx context.Context, ownerIDs []uint) (map[uint]models.UserSummary, error) {
	distinct := make([]uint, 0, len(ownerIDs))
	seen := make(map[uint]struct{}, len(ownerIDs))
	for _, id := range ownerIDs {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			distinct = append(distinct, id)
		}
	}
	if len(distinct) == 0 {
		return map[uint]models.UserSummary{}, nil
	}

	summaries := make(map[uint]models.UserSummary, len(distinct))
	missing := distinct

	if e.redis != nil {
		missing = e.fromCache(ctx, distinct, summaries)
	}

	if len(missing) > 0 {
		users, err := e.userRepo.GetByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			summaries[u.ID] = u.Summary()
		}
		if e.redis != nil {
			e.toCache(ctx, users)
		}
	}

	return summaries, nil
}

// AttachPostOwners sets the user summary on each post in place.
func (e *Enricher) AttachPostOwners(ctx context.Context, posts []*models.Post) error {
	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.OwnerID)
	}
	summaries, err := e.OwnerSummaries(ctx, ids)
	if err != nil {
		return err
	}
	for _, p := range posts {
		if s, ok := summaries[p.OwnerID]; ok {
			summary := s
			p.User = &summary
		}
	}
	return nil
}

// AttachEventOwners sets the user summary on each event in place.
func (e *Enricher) AttachEventOwners(ctx context.Context, events []*models.Event) error {
	ids := make([]uint, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.OwnerID)
	}
	summaries, err := e.OwnerSummaries(ctx, ids)
	if err != nil {
		return err
	}
	for _, ev := range events {
		if s, ok := summaries[ev.OwnerID]; ok {
			summary := s
			ev.User = &summary
		}
	}
	return nil
}

// fromCache fills summaries for cached ids and returns the ids still missing.
// Cache errors degrade to a full DB fetch.
func (e *Enricher) fromCache(ctx context.Context, ids []uint, summaries map[uint]models.UserSummary) []uint {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = cache.UserKey(id)
	}

	values, err := e.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return ids
	}

	var missing []uint
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			missing = append(missing, ids[i])
			continue
		}
		var summary models.UserSummary
		if err := json.Unmarshal([]byte(raw), &summary); err != nil {
			missing = append(missing, ids[i])
			continue
		}
		summaries[ids[i]] = summary
	}
	return missing
}

// toCache writes freshly fetched summaries back to Redis. Failures are
// ignored; the cache is best-effort.
func (e *Enricher) toCache(ctx context.Context, users []models.User) {
	pipe := e.redis.Pipeline()
	for _, u := range users {
		raw, err := json.Marshal(u.Summary())
		if err != nil {
			continue
		}
		pipe.Set(ctx, cache.UserKey(u.ID), raw, cache.UserTTL)
	}
	_, _ = pipe.Exec(ctx)
}
