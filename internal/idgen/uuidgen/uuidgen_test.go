package uuidgen

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetID(t *testing.T) {
	gen := New("R-")

	first, err := gen.GetID(context.Background())
	require.NoError(t, err)

	second, err := gen.GetID(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first, "R-"))
	assert.NotEqual(t, first, second)
}
