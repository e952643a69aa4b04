// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package tag owns the tag vocabulary: the deduplicated set of labels articles
are categorised with.

Tags are created lazily the first time a label is submitted with an article
and are never deleted, even when no article references them any more. Names
are unique as stored, so "Go" and "go" are two different tags; searches
compare them case-insensitively.
*/
package tag

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/inkwell/pkg/query"
	"github.com/taibuivan/inkwell/pkg/slice"
)

// Tag is a single label of the vocabulary.
type Tag struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ParseLabels turns a raw comma-separated tags field into the ordered set of
// labels it names.
//
// Each segment is trimmed and NFC-normalised. Empty segments, such as those
// left by a trailing comma, are dropped. Repeated labels are kept once, at
// their first position. An empty input yields no labels.
func ParseLabels(raw string) []string {
	seen := make(map[string]struct{})
	labels := make([]string, 0)

	for _, segment := range query.StringSlice(raw) {
		label := norm.NFC.String(segment)
		if _, duplicate := seen[label]; duplicate {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	return labels
}

// Names returns the names of tags in order.
func Names(tags []Tag) []string {
	return slice.Map(tags, func(t Tag) string { return t.Name })
}

// Join renders tags back into the comma-separated form ParseLabels reads.
func Join(tags []Tag) string {
	return strings.Join(Names(tags), ", ")
}
