// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"fmt"

	"github.com/taibuivan/inkwell/internal/platform/database/schema"
)

// Query collects the positional arguments of a compiled predicate.
//
// Alias is the SQL alias of content.article in the enclosing statement.
type Query struct {
	Alias string
	Args  []any
}

// NewQuery starts a compilation after the given already-bound arguments.
func NewQuery(alias string, args ...any) *Query {
	return &Query{Alias: alias, Args: args}
}

// Bind appends value and returns its placeholder.
func (q *Query) Bind(value any) string {
	q.Args = append(q.Args, value)
	return fmt.Sprintf("$%d", len(q.Args))
}

// Where compiles p into a WHERE clause body.
func (q *Query) Where(p Predicate) string {
	return p.SQL(q)
}

// condition applies test, a format string with one %s for the column, to the
// column behind field. Relation fields are wrapped in an EXISTS sub-query.
func (q *Query) condition(field Field, test string) string {
	article := schema.ContentArticle
	switch field {
	case Title:
		return fmt.Sprintf(test, q.Alias+"."+article.Title)
	case Text:
		return fmt.Sprintf(test, q.Alias+"."+article.Body)
	case Author:
		return fmt.Sprintf(test, q.Alias+"."+article.Author)
	case TagName:
		junction, tag := schema.ContentArticleTag, schema.ContentTag
		return fmt.Sprintf("EXISTS (SELECT 1 FROM %s st JOIN %s stt ON stt.%s = st.%s WHERE st.%s = %s.%s AND %s)",
			junction.Table, tag.Table, tag.ID, junction.TagID,
			junction.ArticleID, q.Alias, article.ID,
			fmt.Sprintf(test, "stt."+tag.Name),
		)
	case CommentText, CommentAuthor:
		comment := schema.ContentComment
		column := comment.Body
		if field == CommentAuthor {
			column = comment.Author
		}
		return fmt.Sprintf("EXISTS (SELECT 1 FROM %s sc WHERE sc.%s = %s.%s AND %s)",
			comment.Table, comment.ArticleID, q.Alias, article.ID,
			fmt.Sprintf(test, "sc."+column),
		)
	}
	return "FALSE"
}
