package resources

import (
	"context"
	"log"
	"time"

	"skill-gap/internal/domain/learning"
	"skill-gap/internal/domain/skill"
)

type Provider interface {
	FetchResources(ctx context.Context, skillName string) ([]learning.Resource, error)
}

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// CachedProvider memoizes successful lookups. Cache errors never fail a
// lookup.
type CachedProvider struct {
	next   Provider
	cache  Cache
	ttl    time.Duration
	logger *log.Logger
}

func NewCachedProvider(next Provider, cache Cache, ttl time.Duration, logger *log.Logger) *CachedProvider {
	if logger == nil {
		logger = log.Default()
	}
	return &CachedProvider{next: next, cache: cache, ttl: ttl, logger: logger}
}

func CacheKey(skillName string) string {
	return "resources:" + skill.Normalize(skillName)
}

func (p *CachedProvider) FetchResources(ctx context.Context, skillName string) ([]learning.Resource, error) {
	key := CacheKey(skillName)
	if p.cache != nil {
		var cached []learning.Resource
		ok, err := p.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			p.logger.Printf("[Cache] resources get error key=%s err=%v", key, err)
		}
		if ok {
			return cached, nil
		}
	}

	res, err := p.next.FetchResources(ctx, skillName)
	if err != nil {
		return nil, err
	}
	if p.cache != nil {
		if err := p.cache.SetJSON(ctx, key, res, p.ttl); err != nil {
			p.logger.Printf("[Cache] resources set error key=%s err=%v", key, err)
		}
	}
	return res, nil
}
