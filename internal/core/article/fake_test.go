// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article_test

import (
	"cmp"
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/taibuivan/inkwell/internal/core/article"
	"github.com/taibuivan/inkwell/internal/core/comment"
	"github.com/taibuivan/inkwell/internal/core/search"
	"github.com/taibuivan/inkwell/internal/core/tag"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/pkg/pagination"
)

// memoryStore backs both repositories so searches can see comments and
// article deletes can cascade.
type memoryStore struct {
	mu         sync.Mutex
	articles   map[string]*article.Article
	comments   []*comment.Comment
	vocabulary map[string]tag.Tag
	nextTagID  int
	clock      time.Time
	writes     int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		articles:   make(map[string]*article.Article),
		vocabulary: make(map[string]tag.Tag),
		clock:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memoryStore) tick() time.Time {
	m.clock = m.clock.Add(time.Minute)
	return m.clock
}

func (m *memoryStore) ensure(labels []string) []tag.Tag {
	tags := make([]tag.Tag, 0, len(labels))
	for _, label := range labels {
		t, ok := m.vocabulary[label]
		if !ok {
			m.nextTagID++
			t = tag.Tag{ID: m.nextTagID, Name: label, CreatedAt: m.clock}
			m.vocabulary[label] = t
		}
		tags = append(tags, t)
	}
	return tags
}

func (m *memoryStore) document(a *article.Article) search.Document {
	doc := a.Document()
	for _, c := range m.comments {
		if c.ArticleID == a.ID {
			doc.Comments = append(doc.Comments, search.CommentDocument{Author: c.Author, Text: c.Text})
		}
	}
	return doc
}

func (m *memoryStore) matching(filter search.Predicate) []*article.Article {
	var out []*article.Article
	for _, a := range m.articles {
		if filter.Match(m.document(a)) {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(x, y *article.Article) int {
		if c := y.CreatedAt.Compare(x.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(y.ID, x.ID)
	})
	return out
}

// bind compiles filter the way the Postgres repository does and refuses
// arguments a UTF-8 database would reject.
func bind(filter search.Predicate) error {
	query := search.NewQuery("a")
	query.Where(filter)
	for _, arg := range query.Args {
		if text, ok := arg.(string); ok && !utf8.ValidString(text) {
			return apperr.Internal(errors.New("invalid byte sequence for encoding UTF8"))
		}
	}
	return nil
}

// # article.Repository

type articleRepository struct{ *memoryStore }

func (r articleRepository) Count(_ context.Context, filter search.Predicate) (int, error) {
	if err := bind(filter); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.matching(filter)), nil
}

func (r articleRepository) List(_ context.Context, filter search.Predicate, offset, limit int) ([]*article.Article, error) {
	if err := bind(filter); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return pagination.Slice(r.matching(filter), pagination.Page{Offset: offset, Limit: limit}), nil
}

func (r articleRepository) FindByID(_ context.Context, id string) (*article.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}
	copied := *a
	return &copied, nil
}

func (r articleRepository) Create(_ context.Context, a *article.Article, labels []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	now := r.tick()
	a.CreatedAt, a.UpdatedAt = now, now
	a.Tags = r.ensure(labels)
	stored := *a
	r.articles[a.ID] = &stored
	return nil
}

func (r articleRepository) Update(_ context.Context, a *article.Article, labels []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	stored, ok := r.articles[a.ID]
	if !ok {
		return apperr.NotFound("Article")
	}
	a.CreatedAt, a.UpdatedAt = stored.CreatedAt, r.tick()
	a.Tags = r.ensure(labels)
	*stored = *a
	return nil
}

func (r articleRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.articles[id]; !ok {
		return apperr.NotFound("Article")
	}
	delete(r.articles, id)
	r.comments = slices.DeleteFunc(r.comments, func(c *comment.Comment) bool { return c.ArticleID == id })
	return nil
}

// # comment.Repository

type commentRepository struct{ *memoryStore }

func (r commentRepository) newestFirst(keep func(*comment.Comment) bool) []*comment.Comment {
	var out []*comment.Comment
	for i := len(r.comments) - 1; i >= 0; i-- {
		if keep(r.comments[i]) {
			out = append(out, r.comments[i])
		}
	}
	return out
}

func (r commentRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.comments), nil
}

func (r commentRepository) List(_ context.Context, offset, limit int) ([]*comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.newestFirst(func(*comment.Comment) bool { return true })
	return pagination.Slice(all, pagination.Page{Offset: offset, Limit: limit}), nil
}

func (r commentRepository) CountByArticle(_ context.Context, articleID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.newestFirst(func(c *comment.Comment) bool { return c.ArticleID == articleID })), nil
}

func (r commentRepository) ListByArticle(_ context.Context, articleID string, offset, limit int) ([]*comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owned := r.newestFirst(func(c *comment.Comment) bool { return c.ArticleID == articleID })
	return pagination.Slice(owned, pagination.Page{Offset: offset, Limit: limit}), nil
}

func (r commentRepository) FindByID(_ context.Context, id string) (*comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.comments {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Comment")
}

func (r commentRepository) Create(_ context.Context, c *comment.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.articles[c.ArticleID]; !ok {
		return validate.FieldError(comment.FieldArticleID, "Article does not exist")
	}
	now := r.tick()
	c.CreatedAt, c.UpdatedAt = now, now
	stored := *c
	r.comments = append(r.comments, &stored)
	return nil
}

func (r commentRepository) Update(_ context.Context, c *comment.Comment) error {
	return apperr.NotFound("Comment")
}

func (r commentRepository) Delete(_ context.Context, id string) error {
	return apperr.NotFound("Comment")
}

// # Vocabulary cache

type countingCache struct{ invalidations int }

func (c *countingCache) Invalidate(context.Context) error {
	c.invalidations++
	return nil
}

// # Fixture

type fixture struct {
	store   *memoryStore
	cache   *countingCache
	service *article.Service
}

func newFixture() *fixture {
	store := newMemoryStore()
	cache := &countingCache{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	comments := comment.NewService(commentRepository{store}, logger)
	service := article.NewService(articleRepository{store}, comments, cache, logger)

	return &fixture{store: store, cache: cache, service: service}
}
