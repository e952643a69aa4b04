// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for the comment index.
type Handler struct {
	service *Service
}

// NewHandler constructs a new comment [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Confirmation is the payload shown before an irreversible delete.
type Confirmation struct {
	Comment *Comment `json:"comment"`
	Method  string   `json:"method"`
	Path    string   `json:"path"`
}

// Routes returns a [chi.Router] configured with comment endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listComments)
	router.Post("/", handler.createComment)

	router.Route("/{id}", func(subRouter chi.Router) {
		subRouter.Get("/", handler.getComment)
		subRouter.Put("/", handler.updateComment)
		subRouter.Delete("/", handler.deleteComment)
		subRouter.Get("/delete", handler.confirmDelete)
	})

	return router
}

/*
GET /api/v1/comments.

Request:
  - page: int or "last"

Response:
  - 200: []Comment: Paginated, newest first
  - 404: ErrNotFound: Page out of range
*/
func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	listing, err := handler.service.ListComments(request.Context(), requestutil.Query(request, "page"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, listing.Comments, listing.Page.Meta(), nil)
}

/*
GET /api/v1/comments/{id}.

Response:
  - 200: Comment
  - 404: ErrNotFound
*/
func (handler *Handler) getComment(writer http.ResponseWriter, request *http.Request) {
	comment, err := handler.service.GetComment(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comment)
}

/*
POST /api/v1/comments.

Request (Body):
  - article_id, author, text

Response:
  - 201: Comment
  - 400: ErrValidation (including an unknown article_id)
*/
func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.CreateComment(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, comment)
}

/*
PUT /api/v1/comments/{id}.

Request (Body):
  - article_id, author, text

Response:
  - 200: Comment
  - 400: ErrValidation
  - 404: ErrNotFound
*/
func (handler *Handler) updateComment(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.UpdateComment(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comment)
}

// GET /api/v1/comments/{id}/delete.
func (handler *Handler) confirmDelete(writer http.ResponseWriter, request *http.Request) {
	comment, err := handler.service.GetComment(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, Confirmation{
		Comment: comment,
		Method:  http.MethodDelete,
		Path:    "/api/v1/comments/" + comment.ID,
	})
}

// DELETE /api/v1/comments/{id}.
func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteComment(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
