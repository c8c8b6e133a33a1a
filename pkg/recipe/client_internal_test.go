package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_DefaultClientHasNoTimeout(t *testing.T) {
	c, err := NewClient("http://example.com/recipe")
	require.NoError(t, err)
	assert.Zero(t, c.client.Timeout)
}
