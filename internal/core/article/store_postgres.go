// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/inkwell/internal/core/search"
	"github.com/taibuivan/inkwell/internal/core/tag"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

// alias is the name content.article goes by in every statement below.
const alias = "a"

// PostgresRepository implements [Repository] on content.article and the
// content.articletag junction.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed article store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// # Retrieval

func (repository *PostgresRepository) Count(ctx context.Context, filter search.Predicate) (int, error) {
	query := search.NewQuery(alias)
	statement := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s WHERE %s`,
		schema.ContentArticle.Table, alias, query.Where(filter))

	var total int
	if err := repository.pool.QueryRow(ctx, statement, query.Args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "Article")
	}
	return total, nil
}

/*
List returns one window of the articles matching filter.

Description: The filter compiles to a WHERE clause whose relation conditions
are EXISTS sub-queries, so no join multiplies the rows and no DISTINCT is
needed. Tags are aggregated per row as JSON.

Parameters:
  - ctx: context.Context
  - filter: search.Predicate
  - offset, limit: int

Returns:
  - []*Article: Newest first, ties broken by id
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(ctx context.Context, filter search.Predicate, offset, limit int) ([]*Article, error) {
	query := search.NewQuery(alias)
	where := query.Where(filter)

	statement := fmt.Sprintf(`%s WHERE %s ORDER BY %s.%s DESC, %s.%s DESC LIMIT %s OFFSET %s`,
		selectArticles(), where,
		alias, schema.ContentArticle.CreatedAt, alias, schema.ContentArticle.ID,
		query.Bind(limit), query.Bind(offset))

	rows, err := repository.pool.Query(ctx, statement, query.Args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Article")
	}

	articles, err := pgx.CollectRows(rows, scanArticle)
	if err != nil {
		return nil, dberr.Wrap(err, "Article")
	}
	return articles, nil
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Article, error) {
	statement := fmt.Sprintf(`%s WHERE %s.%s = $1`, selectArticles(), alias, schema.ContentArticle.ID)

	rows, err := repository.pool.Query(ctx, statement, id)
	if err != nil {
		return nil, dberr.Wrap(err, "Article")
	}

	article, err := pgx.CollectExactlyOneRow(rows, scanArticle)
	if err != nil {
		return nil, dberr.Wrap(err, "Article")
	}
	return article, nil
}

// # Mutations

/*
Create inserts an article and its tag associations in one transaction.

Parameters:
  - ctx: context.Context
  - article: *Article (ID already assigned)
  - labels: []string (parsed tag labels)

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Create(ctx context.Context, article *Article, labels []string) error {
	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s`,
		schema.ContentArticle.Table,
		schema.ContentArticle.ID, schema.ContentArticle.Title, schema.ContentArticle.Author, schema.ContentArticle.Body,
		schema.ContentArticle.CreatedAt, schema.ContentArticle.UpdatedAt)

	err := postgres.WithTx(ctx, repository.pool, func(transaction pgx.Tx) error {
		if err := transaction.QueryRow(ctx, insert, article.ID, article.Title, article.Author, article.Text).
			Scan(&article.CreatedAt, &article.UpdatedAt); err != nil {
			return fmt.Errorf("postgres: failed to insert article: %w", err)
		}

		return repository.replaceTags(ctx, transaction, article, labels)
	})

	return dberr.Wrap(err, "Article")
}

/*
Update overwrites an article and rebuilds its tag set in one transaction.

Description: The association set is cleared and re-inserted, so tags left
out of labels are detached. The tags themselves stay in the vocabulary.
*/
func (repository *PostgresRepository) Update(ctx context.Context, article *Article, labels []string) error {
	update := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s`,
		schema.ContentArticle.Table,
		schema.ContentArticle.Title, schema.ContentArticle.Author, schema.ContentArticle.Body, schema.ContentArticle.UpdatedAt,
		schema.ContentArticle.ID,
		schema.ContentArticle.CreatedAt, schema.ContentArticle.UpdatedAt)

	err := postgres.WithTx(ctx, repository.pool, func(transaction pgx.Tx) error {
		if err := transaction.QueryRow(ctx, update, article.ID, article.Title, article.Author, article.Text).
			Scan(&article.CreatedAt, &article.UpdatedAt); err != nil {
			return err
		}

		return repository.replaceTags(ctx, transaction, article, labels)
	})

	return dberr.Wrap(err, "Article")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	statement := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.ContentArticle.Table, schema.ContentArticle.ID)

	result, err := repository.pool.Exec(ctx, statement, id)
	if err != nil {
		return dberr.Wrap(err, "Article")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Article")
	}
	return nil
}

// # Tag Associations

/*
replaceTags resolves labels and makes them the article's complete tag set.

Description: Clear and insert. The junction rows are deleted, then the new
ones are queued on a single pgx.Batch.
*/
func (repository *PostgresRepository) replaceTags(ctx context.Context, transaction pgx.Tx, article *Article, labels []string) error {
	tags, err := tag.Ensure(ctx, transaction, labels)
	if err != nil {
		return err
	}

	junction := schema.ContentArticleTag
	clearQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, junction.Table, junction.ArticleID)
	if _, err := transaction.Exec(ctx, clearQuery, article.ID); err != nil {
		return fmt.Errorf("postgres: failed to clear %s: %w", junction.Table, err)
	}

	article.Tags = tags
	if len(tags) == 0 {
		return nil
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`, junction.Table, junction.ArticleID, junction.TagID)
	batch := &pgx.Batch{}
	for _, t := range tags {
		batch.Queue(insert, article.ID, t.ID)
	}

	if err := transaction.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("postgres: failed to batch insert into %s: %w", junction.Table, err)
	}

	return nil
}

// # Scanning

// selectArticles is the article projection with tags aggregated as JSON,
// ordered by name.
func selectArticles() string {
	article, junction, t := schema.ContentArticle, schema.ContentArticleTag, schema.ContentTag

	return fmt.Sprintf(`
		SELECT %[1]s.%[3]s, %[1]s.%[4]s, %[1]s.%[5]s, %[1]s.%[6]s, %[1]s.%[7]s, %[1]s.%[8]s,
			COALESCE((
				SELECT json_agg(json_build_object('id', tt.%[11]s, 'name', tt.%[12]s, 'created_at', tt.%[13]s) ORDER BY tt.%[12]s)
				FROM %[9]s jt JOIN %[10]s tt ON tt.%[11]s = jt.%[14]s
				WHERE jt.%[15]s = %[1]s.%[3]s
			), '[]'::json)
		FROM %[2]s %[1]s`,
		alias, article.Table,
		article.ID, article.Title, article.Author, article.Body, article.CreatedAt, article.UpdatedAt,
		junction.Table, t.Table, t.ID, t.Name, t.CreatedAt, junction.TagID, junction.ArticleID,
	)
}

func scanArticle(row pgx.CollectableRow) (*Article, error) {
	article := &Article{}
	err := row.Scan(
		&article.ID, &article.Title, &article.Author, &article.Text,
		&article.CreatedAt, &article.UpdatedAt, &article.Tags,
	)
	return article, err
}
