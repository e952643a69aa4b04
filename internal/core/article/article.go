// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package article is the heart of Inkwell: articles, their tags and the two
search forms that filter them.

# Tags

An article's tags are submitted as one comma-separated string and stored as
references into the shared tag vocabulary. Every write replaces the whole set.

# Search

The simple form matches one value against title, author and tag names. The
extended form combines a text condition and an author condition, each over a
caller-selected set of fields. Both are built by the search package and run
as a single SQL statement, so an article is listed at most once.
*/
package article

import (
	"time"

	"github.com/taibuivan/inkwell/internal/core/comment"
	"github.com/taibuivan/inkwell/internal/core/search"
	"github.com/taibuivan/inkwell/internal/core/tag"
	"github.com/taibuivan/inkwell/pkg/pagination"
)

// # Field Names

const (
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldText   = "text"
	FieldTags   = "tags"
)

// # Limits

const (
	MaxTitleLength  = 200
	MaxAuthorLength = 40
	MaxTextLength   = 3000
	MaxTagsLength   = 100
)

// Article is a published piece of writing.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tags      []tag.Tag `json:"tags"`
}

// TagString renders the tag set in the form the update form expects.
func (a *Article) TagString() string {
	return tag.Join(a.Tags)
}

// Document exposes the article's own searchable fields. Comments are not
// loaded with an article and are left empty.
func (a *Article) Document() search.Document {
	return search.Document{
		Title:  a.Title,
		Author: a.Author,
		Text:   a.Text,
		Tags:   tag.Names(a.Tags),
	}
}

// Input is the writable part of an article as submitted by a client.
//
// A nil Tags field is read as an empty tags string.
type Input struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Text   string  `json:"text"`
	Tags   *string `json:"tags"`
}

// Form is the pre-filled state of the update form.
type Form struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Text   string `json:"text"`
	Tags   string `json:"tags"`
}

// # Read Models

// Listing is one page of a search result.
type Listing struct {
	Articles []*Article
	Page     pagination.Page
	Search   any
}

// Detail is an article together with one page of its comments.
type Detail struct {
	Article  *Article           `json:"article"`
	Comments []*comment.Comment `json:"comments"`
	Meta     pagination.Meta    `json:"comments_meta"`
}

// SimpleSearch echoes the state of the simple search form. Query is the
// encoded parameter to append to page links.
type SimpleSearch struct {
	Value string `json:"search"`
	Query string `json:"query,omitempty"`
}

// FullSearch echoes the state of the extended search form.
type FullSearch struct {
	search.Criteria
	Query string `json:"query,omitempty"`
}
