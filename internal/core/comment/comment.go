// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package comment manages reader comments. Every comment belongs to exactly
// one article and disappears with it.
package comment

import (
	"strings"
	"time"
)

// # Field Names

const (
	FieldArticleID = "article_id"
	FieldAuthor    = "author"
	FieldText      = "text"
)

// # Limits

const (
	MaxAuthorLength = 40
	MaxTextLength   = 400
)

// Comment is a single remark left on an article.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input is the writable part of a comment as submitted by a client.
type Input struct {
	ArticleID string `json:"article_id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
}

// Trimmed strips surrounding whitespace from every field.
func (i Input) Trimmed() Input {
	return Input{
		ArticleID: strings.TrimSpace(i.ArticleID),
		Author:    strings.TrimSpace(i.Author),
		Text:      strings.TrimSpace(i.Text),
	}
}
