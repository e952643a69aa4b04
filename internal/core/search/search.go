// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package search turns free-text queries into filter predicates over articles.

A [Predicate] is a small tree of named comparisons joined by [All] and [Any].
The same tree can be evaluated against an in-memory [Document] with Match or
compiled into a parameterised PostgreSQL condition with SQL, so the matching
rules live in one place regardless of where the articles are.

Matching rules:

  - Tag comparisons are exact and case-insensitive.
  - Every other comparison is a case-insensitive substring test.
  - Relation comparisons (tags, comments) compile to EXISTS sub-queries, so an
    article matching through several tags or comments is still returned once.
*/
package search

import (
	"fmt"
	"strings"
)

// Document is the in-memory view of an article that predicates evaluate.
type Document struct {
	Title    string
	Author   string
	Text     string
	Tags     []string
	Comments []CommentDocument
}

// CommentDocument is the part of a comment visible to predicates.
type CommentDocument struct {
	Author string
	Text   string
}

// Predicate is a boolean filter over articles.
type Predicate interface {
	// Match evaluates the predicate against an in-memory document.
	Match(doc Document) bool
	// SQL renders the predicate as a boolean SQL expression, binding values through q.
	SQL(q *Query) string
}

// # Combinators

type always struct{}

// Always returns the predicate that places no constraint.
func Always() Predicate { return always{} }

func (always) Match(Document) bool { return true }
func (always) SQL(*Query) string   { return "TRUE" }

// IsAlways reports whether p places no constraint.
func IsAlways(p Predicate) bool {
	_, ok := p.(always)
	return ok
}

type all []Predicate

// All is the conjunction of operands. Operands that place no constraint are
// dropped; with nothing left the result is [Always].
func All(operands ...Predicate) Predicate {
	kept := make(all, 0, len(operands))
	for _, operand := range operands {
		if operand == nil || IsAlways(operand) {
			continue
		}
		kept = append(kept, operand)
	}

	switch len(kept) {
	case 0:
		return Always()
	case 1:
		return kept[0]
	}
	return kept
}

func (p all) Match(doc Document) bool {
	for _, operand := range p {
		if !operand.Match(doc) {
			return false
		}
	}
	return true
}

func (p all) SQL(q *Query) string {
	return join(p, q, " AND ")
}

type anyOf []Predicate

// Any is the disjunction of operands.
//
// An empty disjunction places no constraint and yields [Always], as does any
// disjunction containing an [Always] operand. A search form with no field
// selected therefore filters nothing instead of matching nothing.
func Any(operands ...Predicate) Predicate {
	kept := make(anyOf, 0, len(operands))
	for _, operand := range operands {
		if operand == nil {
			continue
		}
		if IsAlways(operand) {
			return Always()
		}
		kept = append(kept, operand)
	}

	switch len(kept) {
	case 0:
		return Always()
	case 1:
		return kept[0]
	}
	return kept
}

func (p anyOf) Match(doc Document) bool {
	for _, operand := range p {
		if operand.Match(doc) {
			return true
		}
	}
	return false
}

func (p anyOf) SQL(q *Query) string {
	return join(p, q, " OR ")
}

func join(operands []Predicate, q *Query, separator string) string {
	parts := make([]string, len(operands))
	for i, operand := range operands {
		parts[i] = operand.SQL(q)
	}
	return "(" + strings.Join(parts, separator) + ")"
}

// # Comparisons

// Field names the article attribute a comparison reads.
type Field int

const (
	Title Field = iota
	Text
	Author
	TagName
	CommentText
	CommentAuthor
)

// String returns the form field name the attribute is searched through.
func (f Field) String() string {
	switch f {
	case Title:
		return "title"
	case Text:
		return "text"
	case Author:
		return "author"
	case TagName:
		return "tags"
	case CommentText:
		return "comment_text"
	case CommentAuthor:
		return "comment_author"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

func (f Field) values(doc Document) []string {
	switch f {
	case Title:
		return []string{doc.Title}
	case Text:
		return []string{doc.Text}
	case Author:
		return []string{doc.Author}
	case TagName:
		return doc.Tags
	case CommentText, CommentAuthor:
		values := make([]string, len(doc.Comments))
		for i, comment := range doc.Comments {
			if f == CommentText {
				values[i] = comment.Text
			} else {
				values[i] = comment.Author
			}
		}
		return values
	}
	return nil
}

type contains struct {
	field Field
	value string
}

// Contains matches when the field contains value, ignoring case.
// Multi-valued fields match when any of their values does.
func Contains(field Field, value string) Predicate {
	return contains{field: field, value: value}
}

func (p contains) Match(doc Document) bool {
	needle := strings.ToLower(p.value)
	for _, candidate := range p.field.values(doc) {
		if strings.Contains(strings.ToLower(candidate), needle) {
			return true
		}
	}
	return false
}

func (p contains) SQL(q *Query) string {
	return q.condition(p.field, fmt.Sprintf("strpos(lower(%%s), lower(%s)) > 0", q.Bind(p.value)))
}

type equalFold struct {
	field Field
	value string
}

// EqualFold matches when the field equals value, ignoring case.
// Multi-valued fields match when any of their values does.
func EqualFold(field Field, value string) Predicate {
	return equalFold{field: field, value: value}
}

func (p equalFold) Match(doc Document) bool {
	for _, candidate := range p.field.values(doc) {
		if strings.EqualFold(candidate, p.value) {
			return true
		}
	}
	return false
}

func (p equalFold) SQL(q *Query) string {
	return q.condition(p.field, fmt.Sprintf("lower(%%s) = lower(%s)", q.Bind(p.value)))
}
