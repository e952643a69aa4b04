// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/pkg/pagination"
	"github.com/taibuivan/inkwell/pkg/uuid"
)

// # Service Layer

// Service applies validation and pagination rules to comments.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new comment [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Listing is one page of comments.
type Listing struct {
	Comments []*Comment
	Page     pagination.Page
}

// # Queries

/*
ListComments returns a page of the global comment index, newest first.

Parameters:
  - ctx: context.Context
  - rawPage: string (the "page" query value)

Returns:
  - *Listing: Comments and page window
  - error: NOT_FOUND for a missing page
*/
func (service *Service) ListComments(ctx context.Context, rawPage string) (*Listing, error) {
	total, err := service.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	page, err := resolvePage(pagination.New(total, constants.CommentIndexPerPage, 0), rawPage)
	if err != nil {
		return nil, err
	}

	comments, err := service.repo.List(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}

	return &Listing{Comments: comments, Page: page}, nil
}

/*
ListForArticle returns a page of one article's comments, newest first.

Description: Pages hold three comments with no orphan folding. The caller
is responsible for checking that the article exists.
*/
func (service *Service) ListForArticle(ctx context.Context, articleID, rawPage string) (*Listing, error) {
	total, err := service.repo.CountByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	page, err := resolvePage(pagination.New(total, constants.CommentsPerPage, constants.CommentOrphans), rawPage)
	if err != nil {
		return nil, err
	}

	comments, err := service.repo.ListByArticle(ctx, articleID, page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}

	return &Listing{Comments: comments, Page: page}, nil
}

func (service *Service) GetComment(ctx context.Context, id string) (*Comment, error) {
	if !validate.IsUUID(id) {
		return nil, apperr.NotFound("Comment")
	}
	return service.repo.FindByID(ctx, id)
}

// # Mutations

/*
CreateComment validates input and stores a new comment.

Parameters:
  - ctx: context.Context
  - input: Input

Returns:
  - *Comment: The stored comment
  - error: Validation or persistence failures
*/
func (service *Service) CreateComment(ctx context.Context, input Input) (*Comment, error) {
	input = input.Trimmed()
	if err := validateInput(input); err != nil {
		return nil, err
	}

	comment := &Comment{
		ID:        uuid.New(),
		ArticleID: input.ArticleID,
		Author:    input.Author,
		Text:      input.Text,
	}

	if err := service.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	service.logger.Info("comment_created",
		slog.String("comment_id", comment.ID),
		slog.String("article_id", comment.ArticleID),
	)

	return comment, nil
}

/*
UpdateComment replaces the author, text and owning article of a comment.
*/
func (service *Service) UpdateComment(ctx context.Context, id string, input Input) (*Comment, error) {
	if _, err := service.GetComment(ctx, id); err != nil {
		return nil, err
	}

	input = input.Trimmed()
	if err := validateInput(input); err != nil {
		return nil, err
	}

	comment := &Comment{
		ID:        id,
		ArticleID: input.ArticleID,
		Author:    input.Author,
		Text:      input.Text,
	}

	if err := service.repo.Update(ctx, comment); err != nil {
		return nil, err
	}

	service.logger.Info("comment_updated", slog.String("comment_id", id))

	return comment, nil
}

func (service *Service) DeleteComment(ctx context.Context, id string) error {
	if !validate.IsUUID(id) {
		return apperr.NotFound("Comment")
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("comment_deleted", slog.String("comment_id", id))

	return nil
}

// # Helpers

func validateInput(input Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldArticleID, input.ArticleID)
	if input.ArticleID != "" {
		validator.UUID(FieldArticleID, input.ArticleID)
	}
	validator.Required(FieldAuthor, input.Author).MaxLen(FieldAuthor, input.Author, MaxAuthorLength)
	validator.Required(FieldText, input.Text).MaxLen(FieldText, input.Text, MaxTextLength)

	return validator.Err()
}

// resolvePage maps pagination failures onto NOT_FOUND.
func resolvePage(paginator pagination.Paginator, rawPage string) (pagination.Page, error) {
	page, err := paginator.Resolve(rawPage)
	if errors.Is(err, pagination.ErrInvalidPage) || errors.Is(err, pagination.ErrEmptyPage) {
		return pagination.Page{}, apperr.NotFound("Page")
	}
	return page, err
}
