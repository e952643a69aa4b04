// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import "context"

// Repository defines the persistence contract for comments.
//
// Listings are ordered newest first. Count and List are paired so the caller
// can paginate before fetching the window.
type Repository interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, offset, limit int) ([]*Comment, error)

	CountByArticle(ctx context.Context, articleID string) (int, error)
	ListByArticle(ctx context.Context, articleID string, offset, limit int) ([]*Comment, error)

	FindByID(ctx context.Context, id string) (*Comment, error)

	// Create and Update report a missing article as a validation error on
	// article_id.
	Create(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error

	Delete(ctx context.Context, id string) error
}
