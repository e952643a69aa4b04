// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/comment"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
)

func seed(t *testing.T, service *comment.Service, articleID string, n int) []*comment.Comment {
	t.Helper()

	created := make([]*comment.Comment, 0, n)
	for i := range n {
		c, err := service.CreateComment(context.Background(), comment.Input{
			ArticleID: articleID,
			Author:    "reader",
			Text:      fmt.Sprintf("comment %d", i),
		})
		require.NoError(t, err)
		created = append(created, c)
	}
	return created
}

func TestCreateComment_Validation(t *testing.T) {
	service := newService(newMemoryRepository(articleOne))

	tests := []struct {
		name   string
		input  comment.Input
		fields []string
	}{
		{
			name:   "all missing",
			input:  comment.Input{},
			fields: []string{comment.FieldArticleID, comment.FieldAuthor, comment.FieldText},
		},
		{
			name:   "malformed article id",
			input:  comment.Input{ArticleID: "42", Author: "a", Text: "t"},
			fields: []string{comment.FieldArticleID},
		},
		{
			name:   "text too long",
			input:  comment.Input{ArticleID: articleOne, Author: "a", Text: strings.Repeat("x", comment.MaxTextLength+1)},
			fields: []string{comment.FieldText},
		},
		{
			name:   "author too long",
			input:  comment.Input{ArticleID: articleOne, Author: strings.Repeat("x", comment.MaxAuthorLength+1), Text: "t"},
			fields: []string{comment.FieldAuthor},
		},
		{
			name:   "unknown article",
			input:  comment.Input{ArticleID: missingID, Author: "a", Text: "t"},
			fields: []string{comment.FieldArticleID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateComment(context.Background(), tt.input)
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)

			fields := make([]string, 0, len(appError.Details))
			for _, detail := range appError.Details {
				fields = append(fields, detail.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestListForArticle_PagesOfThreeNewestFirst(t *testing.T) {
	service := newService(newMemoryRepository(articleOne, articleTwo))
	created := seed(t, service, articleOne, 7)
	seed(t, service, articleTwo, 2)
	ctx := context.Background()

	first, err := service.ListForArticle(ctx, articleOne, "")
	require.NoError(t, err)
	assert.Equal(t, 3, first.Page.NumPages)
	require.Len(t, first.Comments, 3)
	assert.Equal(t, created[6].ID, first.Comments[0].ID)

	last, err := service.ListForArticle(ctx, articleOne, "3")
	require.NoError(t, err)
	require.Len(t, last.Comments, 1)
	assert.Equal(t, created[0].ID, last.Comments[0].ID)

	_, err = service.ListForArticle(ctx, articleOne, "4")
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	_, err = service.ListForArticle(ctx, articleOne, "abc")
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestListComments_EmptyIndexHasOnePage(t *testing.T) {
	service := newService(newMemoryRepository(articleOne))

	listing, err := service.ListComments(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, listing.Comments)
	assert.False(t, listing.Page.Meta().IsPaginated)
}

func TestUpdateComment(t *testing.T) {
	repo := newMemoryRepository(articleOne, articleTwo)
	service := newService(repo)
	original := seed(t, service, articleOne, 1)[0]
	ctx := context.Background()

	updated, err := service.UpdateComment(ctx, original.ID, comment.Input{ArticleID: articleTwo, Author: "editor", Text: "moved"})
	require.NoError(t, err)
	assert.Equal(t, articleTwo, updated.ArticleID)

	stored, err := service.GetComment(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "moved", stored.Text)

	_, err = service.UpdateComment(ctx, missingID, comment.Input{ArticleID: articleOne, Author: "a", Text: "t"})
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestDeleteComment(t *testing.T) {
	service := newService(newMemoryRepository(articleOne))
	target := seed(t, service, articleOne, 1)[0]
	ctx := context.Background()

	require.NoError(t, service.DeleteComment(ctx, target.ID))

	_, err := service.GetComment(ctx, target.ID)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	err = service.DeleteComment(ctx, "not-a-uuid")
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
