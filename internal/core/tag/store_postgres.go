// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/internal/platform/dberr"
	"github.com/taibuivan/inkwell/internal/platform/postgres"
)

// PostgresRepository reads the vocabulary from content.tag.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed tag store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context) ([]Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.ContentTag.ID, schema.ContentTag.Name, schema.ContentTag.CreatedAt,
		schema.ContentTag.Table, schema.ContentTag.Name)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Tag")
	}

	tags, err := pgx.CollectRows(rows, scanTag)
	if err != nil {
		return nil, dberr.Wrap(err, "Tag")
	}

	return tags, nil
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id int) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.ContentTag.ID, schema.ContentTag.Name, schema.ContentTag.CreatedAt,
		schema.ContentTag.Table, schema.ContentTag.ID)

	t := &Tag{}
	if err := repository.db.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
		return nil, dberr.Wrap(err, "Tag")
	}

	return t, nil
}

/*
Ensure resolves labels to tags, creating the missing ones.

Description: One INSERT ... ON CONFLICT DO NOTHING creates every label that
does not exist yet, then one SELECT reads all of them back. A concurrent
request inserting the same label either wins the unique index (and this
insert becomes a no-op) or loses it; both end up reading the same row.

Parameters:
  - ctx: context.Context
  - db: postgres.DBTX (usually the article transaction)
  - labels: []string (output of ParseLabels)

Returns:
  - []Tag: One tag per label, in label order
  - error: Storage failures
*/
func Ensure(ctx context.Context, db postgres.DBTX, labels []string) ([]Tag, error) {
	if len(labels) == 0 {
		return []Tag{}, nil
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s) SELECT unnest($1::text[]) ON CONFLICT (%s) DO NOTHING`,
		schema.ContentTag.Table, schema.ContentTag.Name, schema.ContentTag.Name)
	if _, err := db.Exec(ctx, insert, labels); err != nil {
		return nil, fmt.Errorf("postgres: failed to create tags: %w", err)
	}

	selectQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = ANY($1)`,
		schema.ContentTag.ID, schema.ContentTag.Name, schema.ContentTag.CreatedAt,
		schema.ContentTag.Table, schema.ContentTag.Name)
	rows, err := db.Query(ctx, selectQuery, labels)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to read tags: %w", err)
	}

	found, err := pgx.CollectRows(rows, scanTag)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to scan tags: %w", err)
	}

	return orderByLabels(found, labels)
}

// orderByLabels arranges tags in label order and fails if one is missing.
func orderByLabels(found []Tag, labels []string) ([]Tag, error) {
	byName := make(map[string]Tag, len(found))
	for _, t := range found {
		byName[t.Name] = t
	}

	ordered := make([]Tag, 0, len(labels))
	for _, label := range labels {
		t, ok := byName[label]
		if !ok {
			return nil, fmt.Errorf("postgres: tag %q missing after insert", label)
		}
		ordered = append(ordered, t)
	}

	return ordered, nil
}

func scanTag(row pgx.CollectableRow) (Tag, error) {
	var t Tag
	err := row.Scan(&t.ID, &t.Name, &t.CreatedAt)
	return t, err
}
