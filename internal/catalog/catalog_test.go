package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompetitionsFor(t *testing.T) {
	comps, ok := CompetitionsFor("england")
	require.True(t, ok)
	assert.Contains(t, comps, "Premier League")

	_, ok = CompetitionsFor("narnia")
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("brazil", "Copa do Brasil"))
	assert.False(t, Contains("brazil", "Premier League"))
	assert.False(t, Contains("narnia", "Premier League"))
}

func TestCountries_ReturnsCopy(t *testing.T) {
	first := Countries()
	first[0] = Country{Key: "mutated"}

	again := Countries()
	assert.NotEqual(t, "mutated", again[0].Key)
}
