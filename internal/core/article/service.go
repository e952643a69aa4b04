// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/taibuivan/inkwell/internal/core/comment"
	"github.com/taibuivan/inkwell/internal/core/search"
	"github.com/taibuivan/inkwell/internal/core/tag"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/pkg/pagination"
	"github.com/taibuivan/inkwell/pkg/pointer"
	"github.com/taibuivan/inkwell/pkg/uuid"
)

// VocabularyCache is told when article writes may have grown the tag
// vocabulary.
type VocabularyCache interface {
	Invalidate(ctx context.Context) error
}

// # Service Layer

// Service orchestrates article search, tag handling and article comments.
type Service struct {
	repo       Repository
	comments   *comment.Service
	vocabulary VocabularyCache
	logger     *slog.Logger
}

// NewService constructs a new article [Service].
func NewService(repo Repository, comments *comment.Service, vocabulary VocabularyCache, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		comments:   comments,
		vocabulary: vocabulary,
		logger:     logger,
	}
}

// # Search

/*
ListArticles runs the simple search and returns one page of the result.

Parameters:
  - ctx: context.Context
  - value: string (blank lists every article)
  - rawPage: string (the "page" query value)

Returns:
  - *Listing: Articles newest first, page window and the echoed search
  - error: NOT_FOUND for a missing page
*/
func (service *Service) ListArticles(ctx context.Context, value, rawPage string) (*Listing, error) {
	value = search.Clean(value)

	echo := SimpleSearch{Value: value}
	if value != "" {
		echo.Query = url.Values{"tag": {value}}.Encode()
	}

	return service.list(ctx, search.Simple(value), rawPage, echo)
}

/*
SearchArticles runs the extended search and returns one page of the result.

Description: The result is the intersection of the text condition and the
author condition. A condition with a blank value or no selected field is
ignored, so an empty form lists every article.
*/
func (service *Service) SearchArticles(ctx context.Context, criteria search.Criteria, rawPage string) (*Listing, error) {
	criteria = criteria.Normalize()

	echo := FullSearch{Criteria: criteria, Query: encodeCriteria(criteria)}

	return service.list(ctx, search.Full(criteria), rawPage, echo)
}

func (service *Service) list(ctx context.Context, filter search.Predicate, rawPage string, echo any) (*Listing, error) {
	total, err := service.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page, err := resolvePage(pagination.New(total, constants.ArticlesPerPage, constants.ArticleOrphans), rawPage)
	if err != nil {
		return nil, err
	}

	articles, err := service.repo.List(ctx, filter, page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}

	return &Listing{Articles: articles, Page: page, Search: echo}, nil
}

// # Retrieval

func (service *Service) GetArticle(ctx context.Context, id string) (*Article, error) {
	if !validate.IsUUID(id) {
		return nil, apperr.NotFound("Article")
	}
	return service.repo.FindByID(ctx, id)
}

/*
GetDetail returns an article with one page of its comments, newest first.

Parameters:
  - ctx: context.Context
  - id: string (UUID)
  - rawPage: string (page of the comment list)

Returns:
  - *Detail: Article, comments and comment pagination
  - error: NOT_FOUND for a missing article or comment page
*/
func (service *Service) GetDetail(ctx context.Context, id, rawPage string) (*Detail, error) {
	article, err := service.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}

	listing, err := service.comments.ListForArticle(ctx, article.ID, rawPage)
	if err != nil {
		return nil, err
	}

	return &Detail{Article: article, Comments: listing.Comments, Meta: listing.Page.Meta()}, nil
}

// EditForm returns the update form pre-filled from the stored article.
func (service *Service) EditForm(ctx context.Context, id string) (*Form, error) {
	article, err := service.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Form{
		Title:  article.Title,
		Author: article.Author,
		Text:   article.Text,
		Tags:   article.TagString(),
	}, nil
}

// # Mutations

/*
CreateArticle validates input, stores the article and attaches its tags.

Description: Tags are parsed from the comma-separated field. Unknown labels
join the vocabulary. A missing tags field means no tags.

Parameters:
  - ctx: context.Context
  - input: Input

Returns:
  - *Article: The stored article with its tags
  - error: Validation or persistence failures
*/
func (service *Service) CreateArticle(ctx context.Context, input Input) (*Article, error) {
	input = input.Trimmed()
	if err := validateInput(input); err != nil {
		return nil, err
	}

	article := &Article{
		ID:     uuid.New(),
		Title:  input.Title,
		Author: input.Author,
		Text:   input.Text,
	}

	if err := service.repo.Create(ctx, article, tag.ParseLabels(pointer.Val(input.Tags))); err != nil {
		return nil, err
	}

	service.invalidateVocabulary(ctx)

	service.logger.Info("article_created",
		slog.String("article_id", article.ID),
		slog.Int("tag_count", len(article.Tags)),
	)

	return article, nil
}

/*
UpdateArticle overwrites an article and replaces its tag set.

Description: The submitted tags become the complete set; an empty or
missing field detaches every tag.
*/
func (service *Service) UpdateArticle(ctx context.Context, id string, input Input) (*Article, error) {
	if _, err := service.GetArticle(ctx, id); err != nil {
		return nil, err
	}

	input = input.Trimmed()
	if err := validateInput(input); err != nil {
		return nil, err
	}

	article := &Article{
		ID:     id,
		Title:  input.Title,
		Author: input.Author,
		Text:   input.Text,
	}

	if err := service.repo.Update(ctx, article, tag.ParseLabels(pointer.Val(input.Tags))); err != nil {
		return nil, err
	}

	service.invalidateVocabulary(ctx)

	service.logger.Info("article_updated",
		slog.String("article_id", id),
		slog.Int("tag_count", len(article.Tags)),
	)

	return article, nil
}

// DeleteArticle removes an article and, with it, its comments.
func (service *Service) DeleteArticle(ctx context.Context, id string) error {
	if !validate.IsUUID(id) {
		return apperr.NotFound("Article")
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("article_deleted", slog.String("article_id", id))

	return nil
}

// AddComment attaches a new comment to an existing article.
func (service *Service) AddComment(ctx context.Context, articleID string, input comment.Input) (*comment.Comment, error) {
	article, err := service.GetArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	input.ArticleID = article.ID
	return service.comments.CreateComment(ctx, input)
}

// # Helpers

// Trimmed strips surrounding whitespace from the scalar fields. Tags are
// trimmed per label by the parser.
func (i Input) Trimmed() Input {
	i.Title = strings.TrimSpace(i.Title)
	i.Author = strings.TrimSpace(i.Author)
	i.Text = strings.TrimSpace(i.Text)
	return i
}

func validateInput(input Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, MaxTitleLength)
	validator.Required(FieldAuthor, input.Author).MaxLen(FieldAuthor, input.Author, MaxAuthorLength)
	validator.Required(FieldText, input.Text).MaxLen(FieldText, input.Text, MaxTextLength)
	validator.MaxLen(FieldTags, pointer.Val(input.Tags), MaxTagsLength)

	return validator.Err()
}

// invalidateVocabulary drops the cached tag listing. A failure only delays
// new tags appearing there until the cache entry expires.
func (service *Service) invalidateVocabulary(ctx context.Context) {
	if service.vocabulary == nil {
		return
	}
	if err := service.vocabulary.Invalidate(ctx); err != nil {
		service.logger.Warn("tag_cache_invalidate_failed", slog.Any("error", err))
	}
}

// encodeCriteria renders the extended search as query parameters for page
// links. Selected flags are sent as "on".
func encodeCriteria(criteria search.Criteria) string {
	values := url.Values{}
	if criteria.Text != "" {
		values.Set("text", criteria.Text)
	}
	if criteria.Author != "" {
		values.Set("author", criteria.Author)
	}

	flags := []struct {
		name string
		set  bool
	}{
		{"in_title", criteria.InTitle},
		{"in_text", criteria.InText},
		{"in_tags", criteria.InTags},
		{"in_comment_text", criteria.InCommentText},
		{"in_articles", criteria.InArticles},
		{"in_comments", criteria.InComments},
	}
	for _, flag := range flags {
		if flag.set {
			values.Set(flag.name, "on")
		}
	}

	return values.Encode()
}

// resolvePage maps pagination failures onto NOT_FOUND.
func resolvePage(paginator pagination.Paginator, rawPage string) (pagination.Page, error) {
	page, err := paginator.Resolve(rawPage)
	if errors.Is(err, pagination.ErrInvalidPage) || errors.Is(err, pagination.ErrEmptyPage) {
		return pagination.Page{}, apperr.NotFound("Page")
	}
	return page, err
}
