package uuidgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	g := New()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := g.NewID()

		_, err := uuid.Parse(id)
		require.NoError(t, err)

		assert.False(t, seen[id], "id %q repeated", id)
		seen[id] = true
	}
}
