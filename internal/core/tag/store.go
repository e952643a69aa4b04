// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import "context"

// Repository defines read access to the tag vocabulary.
//
// Tags are written only through [Ensure], inside the transaction of the
// article that introduces them.
type Repository interface {
	// List returns every tag ordered by name.
	List(ctx context.Context) ([]Tag, error)

	// FindByID returns the tag with the given id or apperr NOT_FOUND.
	FindByID(ctx context.Context, id int) (*Tag, error)
}
