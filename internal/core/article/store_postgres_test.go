// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/article"
	"github.com/taibuivan/inkwell/internal/core/comment"
	"github.com/taibuivan/inkwell/internal/core/search"
	"github.com/taibuivan/inkwell/internal/core/tag"
	"github.com/taibuivan/inkwell/internal/platform/postgres/pgtest"
	"github.com/taibuivan/inkwell/pkg/uuid"
)

// stored inserts an article through repository and removes it, along with
// every tag it ever carried, when the test ends.
func stored(t *testing.T, pool *pgxpool.Pool, repository *article.PostgresRepository, title string, labels []string) *article.Article {
	t.Helper()
	ctx := context.Background()

	a := &article.Article{ID: uuid.New(), Title: title, Author: "ann", Text: "Body of " + title}
	require.NoError(t, repository.Create(ctx, a, labels))

	t.Cleanup(func() {
		_, err := pool.Exec(ctx, `DELETE FROM content.article WHERE id = $1`, a.ID)
		assert.NoError(t, err)
		_, err = pool.Exec(ctx, `DELETE FROM content.tag WHERE name = ANY($1)`, labels)
		assert.NoError(t, err)
	})

	return a
}

func associations(t *testing.T, pool *pgxpool.Pool, articleID string) int {
	t.Helper()

	var total int
	err := pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM content.articletag WHERE articleid = $1`, articleID).Scan(&total)
	require.NoError(t, err)
	return total
}

func TestPostgresRepository_ReplacesTagSet(t *testing.T) {
	pool := pgtest.Open(t)
	repository := article.NewPostgresRepository(pool)
	ctx := context.Background()
	suffix := uuid.New()

	labels := tag.ParseLabels(fmt.Sprintf("a-%[1]s, b-%[1]s,a-%[1]s", suffix))
	created := stored(t, pool, repository, "Tagged "+suffix, labels)

	assert.Equal(t, []string{"a-" + suffix, "b-" + suffix}, tag.Names(created.Tags))
	assert.Equal(t, 2, associations(t, pool, created.ID))

	found, err := repository.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-" + suffix, "b-" + suffix}, tag.Names(found.Tags))
	assert.Equal(t, created.Tags[0].ID, found.Tags[0].ID)
	assert.False(t, found.Tags[0].CreatedAt.IsZero())

	found.Title = "Untagged " + suffix
	require.NoError(t, repository.Update(ctx, found, tag.ParseLabels("")))
	assert.Empty(t, found.Tags)
	assert.Equal(t, 0, associations(t, pool, created.ID))

	cleared, err := repository.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Untagged "+suffix, cleared.Title)
	assert.NotNil(t, cleared.Tags)
	assert.Empty(t, cleared.Tags)

	var vocabulary int
	err = pool.QueryRow(ctx, `SELECT COUNT(*) FROM content.tag WHERE name = ANY($1)`, labels).Scan(&vocabulary)
	require.NoError(t, err)
	assert.Equal(t, 2, vocabulary)
}

func TestPostgresRepository_SearchReturnsEachArticleOnce(t *testing.T) {
	pool := pgtest.Open(t)
	repository := article.NewPostgresRepository(pool)
	comments := comment.NewPostgresRepository(pool)
	ctx := context.Background()
	token := "tok" + strings.ReplaceAll(uuid.New(), "-", "")

	// Two tags differing only in case both equal the token case-insensitively.
	a := stored(t, pool, repository, "About "+token, []string{token, strings.ToUpper(token)})
	stored(t, pool, repository, "Unrelated "+uuid.New(), nil)

	for _, text := range []string{"first " + token, "second " + token} {
		require.NoError(t, comments.Create(ctx, &comment.Comment{
			ID: uuid.New(), ArticleID: a.ID, Author: token[:20], Text: text,
		}))
	}

	filters := map[string]search.Predicate{
		"simple": search.Simple(token),
		"full": search.Full(search.Criteria{
			Text: token, InTitle: true, InTags: true, InCommentText: true,
			Author: token[:20], InArticles: true, InComments: true,
		}),
	}

	for name, filter := range filters {
		t.Run(name, func(t *testing.T) {
			total, err := repository.Count(ctx, filter)
			require.NoError(t, err)
			assert.Equal(t, 1, total)

			listed, err := repository.List(ctx, filter, 0, 10)
			require.NoError(t, err)
			require.Len(t, listed, 1)
			assert.Equal(t, a.ID, listed[0].ID)
			assert.Len(t, listed[0].Tags, 2)
		})
	}
}

func TestPostgresRepository_DeleteUnknown(t *testing.T) {
	pool := pgtest.Open(t)

	err := article.NewPostgresRepository(pool).Delete(context.Background(), uuid.New())
	assert.Equal(t, "NOT_FOUND", code(err))
}
