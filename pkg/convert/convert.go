// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for query parameters.

Malformed input converts to the zero value instead of an error. Do not use
it where telling malformed data apart from a zero value matters.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToBool reads a boolean flag. Besides the [strconv.ParseBool] forms it
// accepts "on" and "yes", which is what HTML checkboxes and hand-written URLs
// send. Empty or unparsable input is false.
func ToBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return false
	case "on", "yes":
		return true
	}

	v, _ := strconv.ParseBool(s)
	return v
}
