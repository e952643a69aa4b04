// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination splits ordered result sets into numbered pages.
//
// # Orphans
//
// A [Paginator] may be given an orphan threshold: when the last page would
// hold that many items or fewer, they are folded into the previous page
// instead. With 11 items, 3 per page and 2 orphans the pages hold 3, 3 and 5.
//
// # Page Numbers
//
// Page numbers are 1-indexed. A missing number means page 1; anything that is
// not an integer or is outside [1, NumPages] is rejected rather than clamped.
// Page 1 of an empty collection is always valid.
package pagination

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidPage is returned for a page number that is not an integer.
	ErrInvalidPage = errors.New("pagination: page number is not an integer")
	// ErrEmptyPage is returned for a page number outside the valid range.
	ErrEmptyPage = errors.New("pagination: page contains no results")
)

// Paginator describes how Count ordered items are divided into pages.
type Paginator struct {
	Count   int
	PerPage int
	Orphans int
}

// New builds a [Paginator]. Non-positive page sizes are raised to 1 and
// negative orphan thresholds to 0.
func New(count, perPage, orphans int) Paginator {
	if perPage < 1 {
		perPage = 1
	}
	if orphans < 0 {
		orphans = 0
	}
	if count < 0 {
		count = 0
	}
	return Paginator{Count: count, PerPage: perPage, Orphans: orphans}
}

// NumPages returns the total number of pages, never less than 1.
func (p Paginator) NumPages() int {
	if p.Count == 0 {
		return 1
	}
	hits := max(1, p.Count-p.Orphans)
	return (hits + p.PerPage - 1) / p.PerPage
}

// Page returns the window of the requested page.
func (p Paginator) Page(number int) (Page, error) {
	numPages := p.NumPages()
	if number < 1 || number > numPages {
		return Page{}, ErrEmptyPage
	}

	bottom := (number - 1) * p.PerPage
	top := bottom + p.PerPage
	if top+p.Orphans >= p.Count {
		top = p.Count
	}

	return Page{
		Number:   number,
		Offset:   bottom,
		Limit:    top - bottom,
		NumPages: numPages,
		PerPage:  p.PerPage,
		Total:    p.Count,
	}, nil
}

// Page is a single window over the paginated sequence.
type Page struct {
	Number   int
	Offset   int
	Limit    int
	NumPages int
	PerPage  int
	Total    int
}

// HasNext reports whether a later page exists.
func (p Page) HasNext() bool { return p.Number < p.NumPages }

// HasPrevious reports whether an earlier page exists.
func (p Page) HasPrevious() bool { return p.Number > 1 }

// HasOtherPages reports whether the sequence spans more than this page.
func (p Page) HasOtherPages() bool { return p.HasNext() || p.HasPrevious() }

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page        int  `json:"page"`
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
	IsPaginated bool `json:"is_paginated"`
}

// Meta renders the response metadata for this page.
func (p Page) Meta() Meta {
	return Meta{
		Page:        p.Number,
		PerPage:     p.PerPage,
		Total:       p.Total,
		TotalPages:  p.NumPages,
		HasNext:     p.HasNext(),
		HasPrevious: p.HasPrevious(),
		IsPaginated: p.HasOtherPages(),
	}
}

// Slice returns the part of items covered by page.
func Slice[T any](items []T, page Page) []T {
	start := min(page.Offset, len(items))
	end := min(page.Offset+page.Limit, len(items))
	return items[start:end]
}

// ParsePage parses a raw "page" query value. Empty means the first page.
func ParsePage(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}

	number, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidPage
	}

	return number, nil
}

// Resolve parses a raw "page" query value and returns that page. The literal
// "last" selects the final page.
func (p Paginator) Resolve(raw string) (Page, error) {
	if raw == "last" {
		return p.Page(p.NumPages())
	}

	number, err := ParsePage(raw)
	if err != nil {
		return Page{}, err
	}

	return p.Page(number)
}
