package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), "")
	assert.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(context.Background(), "test-key")
	require.NoError(t, err)

	gc, ok := c.(*genaiClient)
	require.True(t, ok)
	assert.Equal(t, defaultModel, gc.model)
	assert.Nil(t, gc.temperature)
}

func TestNewClient_Options(t *testing.T) {
	c, err := NewClient(context.Background(), "test-key",
		WithModel("gemini-2.5-pro"),
		WithTemperature(0.7),
	)
	require.NoError(t, err)

	gc := c.(*genaiClient)
	assert.Equal(t, "gemini-2.5-pro", gc.model)
	require.NotNil(t, gc.temperature)
	assert.InDelta(t, 0.7, float64(*gc.temperature), 1e-6)
}
