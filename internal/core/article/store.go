// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"

	"github.com/taibuivan/inkwell/internal/core/search"
)

// Repository defines the persistence contract for articles.
type Repository interface {
	// Count returns how many articles satisfy filter.
	Count(ctx context.Context, filter search.Predicate) (int, error)

	// List returns a window of the articles satisfying filter, newest first,
	// each with its tags loaded.
	List(ctx context.Context, filter search.Predicate, offset, limit int) ([]*Article, error)

	FindByID(ctx context.Context, id string) (*Article, error)

	// Create stores the article and associates it with the tags named by
	// labels, creating missing tags. article.Tags is filled in.
	Create(ctx context.Context, article *Article, labels []string) error

	// Update overwrites the article and replaces its whole tag set.
	Update(ctx context.Context, article *Article, labels []string) error

	// Delete removes the article. Its comments go with it.
	Delete(ctx context.Context, id string) error
}
