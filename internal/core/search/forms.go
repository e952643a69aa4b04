// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean prepares a raw search value for matching: invalid UTF-8 sequences
// are dropped, surrounding space is trimmed and the result is NFC-normalized
// so it compares equal to stored tag names.
func Clean(value string) string {
	return norm.NFC.String(strings.TrimSpace(strings.ToValidUTF8(value, "")))
}

// Simple builds the predicate of the one-box article search.
//
// An article matches when its title or author contains value, or when one of
// its tags is named value. A blank value places no constraint.
func Simple(value string) Predicate {
	value = Clean(value)
	if value == "" {
		return Always()
	}

	return Any(
		Contains(Title, value),
		Contains(Author, value),
		EqualFold(TagName, value),
	)
}

// Criteria is the state of the extended search form.
//
// Text is searched in the fields whose In* flag is set among title, body,
// tags and comment bodies. Author is searched in the article author and/or
// comment authors.
type Criteria struct {
	Text          string `json:"text"`
	InTitle       bool   `json:"in_title"`
	InText        bool   `json:"in_text"`
	InTags        bool   `json:"in_tags"`
	InCommentText bool   `json:"in_comment_text"`

	Author     string `json:"author"`
	InArticles bool   `json:"in_articles"`
	InComments bool   `json:"in_comments"`
}

// Normalize cleans both search values.
func (c Criteria) Normalize() Criteria {
	c.Text = Clean(c.Text)
	c.Author = Clean(c.Author)
	return c
}

// Full builds the predicate of the extended search: the text condition AND
// the author condition. Each condition is the OR of its enabled fields and
// places no constraint when its value is blank or no field is enabled.
func Full(criteria Criteria) Predicate {
	criteria = criteria.Normalize()
	return All(textPredicate(criteria), authorPredicate(criteria))
}

func textPredicate(criteria Criteria) Predicate {
	if criteria.Text == "" {
		return Always()
	}

	var operands []Predicate
	if criteria.InTitle {
		operands = append(operands, Contains(Title, criteria.Text))
	}
	if criteria.InText {
		operands = append(operands, Contains(Text, criteria.Text))
	}
	if criteria.InTags {
		operands = append(operands, EqualFold(TagName, criteria.Text))
	}
	if criteria.InCommentText {
		operands = append(operands, Contains(CommentText, criteria.Text))
	}

	return Any(operands...)
}

func authorPredicate(criteria Criteria) Predicate {
	if criteria.Author == "" {
		return Always()
	}

	var operands []Predicate
	if criteria.InArticles {
		operands = append(operands, Contains(Author, criteria.Author))
	}
	if criteria.InComments {
		operands = append(operands, Contains(CommentAuthor, criteria.Author))
	}

	return Any(operands...)
}
