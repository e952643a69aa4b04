// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"context"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/tag"
	"github.com/taibuivan/inkwell/internal/platform/postgres/pgtest"
	"github.com/taibuivan/inkwell/pkg/uuid"
)

func dropTags(t *testing.T, pool *pgxpool.Pool, labels []string) {
	t.Cleanup(func() {
		_, err := pool.Exec(context.Background(), `DELETE FROM content.tag WHERE name = ANY($1)`, labels)
		assert.NoError(t, err)
	})
}

func TestEnsure_CreatesOnceAndKeepsLabelOrder(t *testing.T) {
	pool := pgtest.Open(t)
	ctx := context.Background()
	suffix := uuid.New()
	labels := []string{"web-" + suffix, "go-" + suffix}
	dropTags(t, pool, labels)

	first, err := tag.Ensure(ctx, pool, labels)
	require.NoError(t, err)
	assert.Equal(t, labels, tag.Names(first))

	again, err := tag.Ensure(ctx, pool, []string{labels[1], labels[0]})
	require.NoError(t, err)
	assert.Equal(t, first[1].ID, again[0].ID)
	assert.Equal(t, first[0].ID, again[1].ID)

	repository := tag.NewPostgresRepository(pool)
	found, err := repository.FindByID(ctx, first[0].ID)
	require.NoError(t, err)
	assert.Equal(t, labels[0], found.Name)
}

func TestEnsure_ConcurrentSameLabel(t *testing.T) {
	pool := pgtest.Open(t)
	labels := []string{"race-" + uuid.New()}
	dropTags(t, pool, labels)

	const workers = 8
	ids := make([]int, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tags, err := tag.Ensure(context.Background(), pool, labels)
			errs[i] = err
			if err == nil {
				ids[i] = tags[0].ID
			}
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}
}

func TestEnsure_NoLabels(t *testing.T) {
	pool := pgtest.Open(t)

	tags, err := tag.Ensure(context.Background(), pool, nil)
	require.NoError(t, err)
	assert.Equal(t, []tag.Tag{}, tags)
}
