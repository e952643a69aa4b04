// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkwell/pkg/convert"
)

func TestToBool(t *testing.T) {
	tests := map[string]bool{
		"":      false,
		"on":    true,
		"ON":    true,
		"yes":   true,
		"true":  true,
		"1":     true,
		"false": false,
		"0":     false,
		"off":   false,
		"maybe": false,
	}

	for input, want := range tests {
		assert.Equal(t, want, convert.ToBool(input), "input %q", input)
	}
}
