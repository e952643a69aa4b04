// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/inkwell/internal/core/comment"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/pkg/pagination"
)

const (
	articleOne = "0190a1b2-0000-7000-8000-000000000001"
	articleTwo = "0190a1b2-0000-7000-8000-000000000002"
	missingID  = "0190a1b2-0000-7000-8000-0000000000ff"
)

// memoryRepository keeps comments in insertion order and knows which
// articles exist, standing in for the foreign key.
type memoryRepository struct {
	mu       sync.Mutex
	articles map[string]bool
	comments []*comment.Comment
	clock    time.Time
}

func newMemoryRepository(articleIDs ...string) *memoryRepository {
	articles := make(map[string]bool, len(articleIDs))
	for _, id := range articleIDs {
		articles[id] = true
	}
	return &memoryRepository{articles: articles, clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memoryRepository) newestFirst(keep func(*comment.Comment) bool) []*comment.Comment {
	var out []*comment.Comment
	for i := len(m.comments) - 1; i >= 0; i-- {
		if keep(m.comments[i]) {
			out = append(out, m.comments[i])
		}
	}
	return out
}

func window(items []*comment.Comment, offset, limit int) []*comment.Comment {
	return pagination.Slice(items, pagination.Page{Offset: offset, Limit: limit})
}

func (m *memoryRepository) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.comments), nil
}

func (m *memoryRepository) List(_ context.Context, offset, limit int) ([]*comment.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return window(m.newestFirst(func(*comment.Comment) bool { return true }), offset, limit), nil
}

func (m *memoryRepository) CountByArticle(_ context.Context, articleID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.newestFirst(func(c *comment.Comment) bool { return c.ArticleID == articleID })), nil
}

func (m *memoryRepository) ListByArticle(_ context.Context, articleID string, offset, limit int) ([]*comment.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return window(m.newestFirst(func(c *comment.Comment) bool { return c.ArticleID == articleID }), offset, limit), nil
}

func (m *memoryRepository) FindByID(_ context.Context, id string) (*comment.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.comments {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Comment")
}

func (m *memoryRepository) Create(_ context.Context, c *comment.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.articles[c.ArticleID] {
		return validate.FieldError(comment.FieldArticleID, "Article does not exist")
	}
	m.clock = m.clock.Add(time.Minute)
	c.CreatedAt, c.UpdatedAt = m.clock, m.clock
	stored := *c
	m.comments = append(m.comments, &stored)
	return nil
}

func (m *memoryRepository) Update(_ context.Context, c *comment.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.articles[c.ArticleID] {
		return validate.FieldError(comment.FieldArticleID, "Article does not exist")
	}
	for _, stored := range m.comments {
		if stored.ID == c.ID {
			stored.ArticleID, stored.Author, stored.Text = c.ArticleID, c.Author, c.Text
			c.CreatedAt = stored.CreatedAt
			return nil
		}
	}
	return apperr.NotFound("Comment")
}

func (m *memoryRepository) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	index := slices.IndexFunc(m.comments, func(c *comment.Comment) bool { return c.ID == id })
	if index < 0 {
		return apperr.NotFound("Comment")
	}
	m.comments = slices.Delete(m.comments, index, index+1)
	return nil
}

func newService(repo comment.Repository) *comment.Service {
	return comment.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
