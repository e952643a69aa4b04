// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderByLabels(t *testing.T) {
	found := []Tag{{ID: 7, Name: "web"}, {ID: 3, Name: "go"}, {ID: 9, Name: "db"}}

	ordered, err := orderByLabels(found, []string{"go", "db", "web"})
	require.NoError(t, err)

	assert.Equal(t, []int{3, 9, 7}, []int{ordered[0].ID, ordered[1].ID, ordered[2].ID})
}

func TestOrderByLabels_Empty(t *testing.T) {
	ordered, err := orderByLabels(nil, nil)
	require.NoError(t, err)

	assert.NotNil(t, ordered)
	assert.Empty(t, ordered)
}

func TestOrderByLabels_MissingLabel(t *testing.T) {
	found := []Tag{{ID: 3, Name: "go"}}

	ordered, err := orderByLabels(found, []string{"go", "Go"})

	assert.Nil(t, ordered)
	assert.EqualError(t, err, `postgres: tag "Go" missing after insert`)
}
