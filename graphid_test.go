package keep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGraphID_Unique(t *testing.T) {
	seen := make(map[GraphID]bool)

	for range 100 {
		id := NewGraphID()
		assert.False(t, seen[id])
		assert.False(t, id.IsZero())

		seen[id] = true
	}
}

func TestGraphID_Zero(t *testing.T) {
	var id GraphID

	assert.True(t, id.IsZero())
	assert.Equal(t, "graph-none", id.String())
}

func TestGraphID_String(t *testing.T) {
	id := NewGraphID()

	assert.NotEqual(t, "graph-none", id.String())
	assert.Equal(t, id.String(), id.String())
}
