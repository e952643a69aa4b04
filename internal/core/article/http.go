// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkwell/internal/core/comment"
	"github.com/taibuivan/inkwell/internal/core/search"
	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for articles and their comments.
type Handler struct {
	service *Service
}

// NewHandler constructs a new article [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Confirmation is the payload shown before an irreversible delete.
type Confirmation struct {
	Article *Article `json:"article"`
	Method  string   `json:"method"`
	Path    string   `json:"path"`
}

// Routes returns a [chi.Router] configured with article endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Discovery
	router.Get("/", handler.listArticles)
	router.Get("/search", handler.searchArticles)

	// ## Authoring
	router.Post("/", handler.createArticle)

	router.Route("/{id}", func(subRouter chi.Router) {
		subRouter.Get("/", handler.getArticle)
		subRouter.Put("/", handler.updateArticle)
		subRouter.Delete("/", handler.deleteArticle)
		subRouter.Get("/edit", handler.editForm)
		subRouter.Get("/delete", handler.confirmDelete)
		subRouter.Post("/comments", handler.addComment)
	})

	return router
}

// # Search Endpoints

/*
GET /api/v1/articles.

Description: Lists articles newest first, five per page. A non-blank search
value keeps articles whose title or author contains it or that carry a tag
of that exact name (case-insensitive).

Request:
  - search: string (alias: tag)
  - page: int or "last"

Response:
  - 200: []Article: Paginated list with the echoed search
  - 404: ErrNotFound: Page out of range
*/
func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	value := requestutil.Query(request, "search")
	if value == "" {
		value = requestutil.Query(request, "tag")
	}

	listing, err := handler.service.ListArticles(request.Context(), value, requestutil.Query(request, "page"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, listing.Articles, listing.Page.Meta(), listing.Search)
}

/*
GET /api/v1/articles/search.

Request:
  - text: string, with in_title, in_text, in_tags, in_comment_text flags
  - author: string, with in_articles, in_comments flags
  - page: int or "last"

Response:
  - 200: []Article: Paginated list with the echoed criteria
  - 404: ErrNotFound: Page out of range
*/
func (handler *Handler) searchArticles(writer http.ResponseWriter, request *http.Request) {
	criteria := search.Criteria{
		Text:          requestutil.Query(request, "text"),
		InTitle:       requestutil.Flag(request, "in_title"),
		InText:        requestutil.Flag(request, "in_text"),
		InTags:        requestutil.Flag(request, "in_tags"),
		InCommentText: requestutil.Flag(request, "in_comment_text"),
		Author:        requestutil.Query(request, "author"),
		InArticles:    requestutil.Flag(request, "in_articles"),
		InComments:    requestutil.Flag(request, "in_comments"),
	}

	listing, err := handler.service.SearchArticles(request.Context(), criteria, requestutil.Query(request, "page"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, listing.Articles, listing.Page.Meta(), listing.Search)
}

// # Article Endpoints

/*
GET /api/v1/articles/{id}.

Request:
  - page: int or "last" (page of the comment list)

Response:
  - 200: Detail: Article with three comments per page
  - 404: ErrNotFound: Unknown article or comment page
*/
func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetDetail(request.Context(), requestutil.ID(request, "id"), requestutil.Query(request, "page"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}

/*
POST /api/v1/articles.

Request (Body):
  - title, author, text: string
  - tags: string (comma-separated, optional)

Response:
  - 201: Article: Created object with tags
  - 400: ErrValidation
*/
func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.CreateArticle(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, article)
}

// GET /api/v1/articles/{id}/edit.
func (handler *Handler) editForm(writer http.ResponseWriter, request *http.Request) {
	form, err := handler.service.EditForm(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, form)
}

/*
PUT /api/v1/articles/{id}.

Description: Overwrites the article. The tags field replaces the whole tag
set; leaving it out or sending "" removes every tag.

Response:
  - 200: Article
  - 400: ErrValidation
  - 404: ErrNotFound
*/
func (handler *Handler) updateArticle(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.UpdateArticle(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, article)
}

// GET /api/v1/articles/{id}/delete.
func (handler *Handler) confirmDelete(writer http.ResponseWriter, request *http.Request) {
	article, err := handler.service.GetArticle(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, Confirmation{
		Article: article,
		Method:  http.MethodDelete,
		Path:    "/api/v1/articles/" + article.ID,
	})
}

/*
DELETE /api/v1/articles/{id}.

Response:
  - 204: Deleted along with its comments
  - 404: ErrNotFound
*/
func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteArticle(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/articles/{id}/comments.

Request (Body):
  - author, text: string

Response:
  - 201: Comment
  - 400: ErrValidation
  - 404: ErrNotFound: Unknown article
*/
func (handler *Handler) addComment(writer http.ResponseWriter, request *http.Request) {
	var input comment.Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.AddComment(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}
