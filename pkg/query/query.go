// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses list-valued form and query string fields.
package query

import "strings"

// StringSlice splits a comma-separated value into its trimmed, non-empty
// segments, in order. Duplicates are kept.
func StringSlice(val string) []string {
	res := make([]string, 0)
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
