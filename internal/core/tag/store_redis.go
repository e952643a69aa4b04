// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/inkwell/internal/platform/constants"
	rediscache "github.com/taibuivan/inkwell/internal/platform/redis"
)

/*
CachedRepository serves the vocabulary listing from Redis, falling back to
the wrapped repository on a miss or a Redis failure.

Description: The listing lives under a generation-numbered key. Invalidate
advances the generation, so a reader that loaded the old vocabulary before
the write and stores it afterwards only fills a key nobody reads anymore.
*/
type CachedRepository struct {
	next   Repository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository wraps next with a Redis cache of the full listing.
func NewCachedRepository(next Repository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{next: next, client: client, ttl: ttl, logger: logger}
}

// VocabularyKey is the Redis key of the listing cached at generation.
func VocabularyKey(generation int64) string {
	return fmt.Sprintf("%s:%d", constants.RedisKeyTagVocabulary, generation)
}

func (repository *CachedRepository) List(ctx context.Context) ([]Tag, error) {
	generation, err := rediscache.Generation(ctx, repository.client, constants.RedisKeyTagGeneration)
	if err != nil {
		repository.logger.Warn("tag_cache_read_failed", slog.Any("error", err))
		return repository.next.List(ctx)
	}
	key := VocabularyKey(generation)

	var cached []Tag
	err = rediscache.GetJSON(ctx, repository.client, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, rediscache.ErrCacheMiss) {
		repository.logger.Warn("tag_cache_read_failed", slog.Any("error", err))
	}

	tags, err := repository.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := rediscache.SetJSON(ctx, repository.client, key, tags, repository.ttl); err != nil {
		repository.logger.Warn("tag_cache_write_failed", slog.Any("error", err))
	}

	return tags, nil
}

func (repository *CachedRepository) FindByID(ctx context.Context, id int) (*Tag, error) {
	return repository.next.FindByID(ctx, id)
}

// Invalidate moves readers to a fresh generation and drops the previous
// listing. Article writes call it because they may have grown the vocabulary.
func (repository *CachedRepository) Invalidate(ctx context.Context) error {
	generation, err := rediscache.Advance(ctx, repository.client, constants.RedisKeyTagGeneration)
	if err != nil {
		return err
	}
	return rediscache.Delete(ctx, repository.client, VocabularyKey(generation-1))
}
