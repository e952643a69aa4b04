// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/validate"
)

// PostgresRepository implements [Repository] on content.comment.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed comment store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	commentColumns = strings.Join(schema.ContentComment.Columns(), ", ")

	newestFirst = fmt.Sprintf("%s DESC, %s DESC", schema.ContentComment.CreatedAt, schema.ContentComment.ID)
)

// # Listing

func (repository *PostgresRepository) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.ContentComment.Table)

	var total int
	if err := repository.db.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "Comment")
	}
	return total, nil
}

func (repository *PostgresRepository) List(ctx context.Context, offset, limit int) ([]*Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s LIMIT $1 OFFSET $2`,
		commentColumns, schema.ContentComment.Table, newestFirst)

	return repository.collect(ctx, query, limit, offset)
}

func (repository *PostgresRepository) CountByArticle(ctx context.Context, articleID string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`,
		schema.ContentComment.Table, schema.ContentComment.ArticleID)

	var total int
	if err := repository.db.QueryRow(ctx, query, articleID).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "Comment")
	}
	return total, nil
}

func (repository *PostgresRepository) ListByArticle(ctx context.Context, articleID string, offset, limit int) ([]*Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s LIMIT $2 OFFSET $3`,
		commentColumns, schema.ContentComment.Table, schema.ContentComment.ArticleID, newestFirst)

	return repository.collect(ctx, query, articleID, limit, offset)
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		commentColumns, schema.ContentComment.Table, schema.ContentComment.ID)

	rows, err := repository.db.Query(ctx, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "Comment")
	}

	comment, err := pgx.CollectExactlyOneRow(rows, scanComment)
	if err != nil {
		return nil, dberr.Wrap(err, "Comment")
	}
	return comment, nil
}

// # Mutations

/*
Create inserts a new comment.

Description: The article reference is enforced by the foreign key; a
violation means the article does not exist (or was just deleted) and is
reported against article_id.

Parameters:
  - ctx: context.Context
  - comment: *Comment (ID already assigned)

Returns:
  - error: Validation or storage failures
*/
func (repository *PostgresRepository) Create(ctx context.Context, comment *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s`,
		schema.ContentComment.Table,
		schema.ContentComment.ID, schema.ContentComment.ArticleID, schema.ContentComment.Author, schema.ContentComment.Body,
		schema.ContentComment.CreatedAt, schema.ContentComment.UpdatedAt)

	err := repository.db.QueryRow(ctx, query, comment.ID, comment.ArticleID, comment.Author, comment.Text).
		Scan(&comment.CreatedAt, &comment.UpdatedAt)

	return wrapWrite(err)
}

func (repository *PostgresRepository) Update(ctx context.Context, comment *Comment) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s`,
		schema.ContentComment.Table,
		schema.ContentComment.ArticleID, schema.ContentComment.Author, schema.ContentComment.Body, schema.ContentComment.UpdatedAt,
		schema.ContentComment.ID,
		schema.ContentComment.CreatedAt, schema.ContentComment.UpdatedAt)

	err := repository.db.QueryRow(ctx, query, comment.ID, comment.ArticleID, comment.Author, comment.Text).
		Scan(&comment.CreatedAt, &comment.UpdatedAt)

	return wrapWrite(err)
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.ContentComment.Table, schema.ContentComment.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "Comment")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Comment")
	}
	return nil
}

// # Helpers

func (repository *PostgresRepository) collect(ctx context.Context, query string, args ...any) ([]*Comment, error) {
	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Comment")
	}

	comments, err := pgx.CollectRows(rows, scanComment)
	if err != nil {
		return nil, dberr.Wrap(err, "Comment")
	}
	return comments, nil
}

func scanComment(row pgx.CollectableRow) (*Comment, error) {
	comment := &Comment{}
	err := row.Scan(&comment.ID, &comment.ArticleID, &comment.Author, &comment.Text, &comment.CreatedAt, &comment.UpdatedAt)
	return comment, err
}

func wrapWrite(err error) error {
	if dberr.IsForeignKeyViolation(err) {
		return validate.FieldError(FieldArticleID, "Article does not exist")
	}
	return dberr.Wrap(err, "Comment")
}
