package main

import (
	"testing"

	"github.com/pearlatelier/pearlsite-go/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderAfterMove(t *testing.T) {
	t.Run("move up swaps with the previous sibling", func(t *testing.T) {
		order, err := reorderAfterMove([]int64{10, 20, 30}, 30, true)
		require.NoError(t, err)
		assert.Equal(t, []client.ReorderEntry{
			{ID: 10, OrderIndex: 0},
			{ID: 30, OrderIndex: 1},
			{ID: 20, OrderIndex: 2},
		}, order)
	})

	t.Run("move down swaps with the next sibling", func(t *testing.T) {
		order, err := reorderAfterMove([]int64{10, 20, 30}, 10, false)
		require.NoError(t, err)
		assert.Equal(t, []client.ReorderEntry{
			{ID: 20, OrderIndex: 0},
			{ID: 10, OrderIndex: 1},
			{ID: 30, OrderIndex: 2},
		}, order)
	})

	t.Run("top of the list cannot move up", func(t *testing.T) {
		_, err := reorderAfterMove([]int64{10, 20}, 10, true)
		assert.Error(t, err)
	})

	t.Run("bottom of the list cannot move down", func(t *testing.T) {
		_, err := reorderAfterMove([]int64{10, 20}, 20, false)
		assert.Error(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := reorderAfterMove([]int64{10, 20}, 99, true)
		assert.Error(t, err)
	})
}

func TestSortImagesByOrder(t *testing.T) {
	images := []client.Image{
		{ID: 1, OrderIndex: 5},
		{ID: 2, OrderIndex: 1},
		{ID: 3, OrderIndex: 3},
	}
	sortImagesByOrder(images)
	assert.Equal(t, int64(2), images[0].ID)
	assert.Equal(t, int64(3), images[1].ID)
	assert.Equal(t, int64(1), images[2].ID)
}
