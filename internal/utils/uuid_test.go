package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGenerator_Generate(t *testing.T) {
	g := NewIDGenerator()

	a := g.Generate()
	b := g.Generate()

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, a, b)
}

func TestIDGenerator_Prefixed(t *testing.T) {
	id := NewIDGenerator().Prefixed("client-")

	require.True(t, strings.HasPrefix(id, "client-"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "client-"))
	assert.NoError(t, err)
}
