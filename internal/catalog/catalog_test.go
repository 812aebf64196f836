package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkhub/internal/catalog"
)

func TestSearch_AliasMatchesCanonicalCity(t *testing.T) {
	results := catalog.Search("bangalore")

	require.Len(t, results, 1)
	assert.Equal(t, "Bengaluru", results[0].City)
	assert.Equal(t, "blr-tech-park", results[0].ID)
}

func TestSearch_AliasGroupIsMultiDirectional(t *testing.T) {
	for _, q := range []string{"blr", "bengalore", "bengaluru"} {
		results := catalog.Search(q)
		require.Len(t, results, 1, "query %q", q)
		assert.Equal(t, "Bengaluru", results[0].City, "query %q", q)
	}

	results := catalog.Search("nyc")
	require.Len(t, results, 1)
	assert.Equal(t, "New York", results[0].City)
}

func TestSearch_EmptyQueryReturnsFullCatalog(t *testing.T) {
	assert.Equal(t, catalog.All(), catalog.Search(""))
	assert.Equal(t, catalog.All(), catalog.Search("   "))
}

func TestSearch_NoMatchReturnsEmpty(t *testing.T) {
	assert.Empty(t, catalog.Search("atlantis"))
}

func TestSearch_MatchesCountryAndNameSubstrings(t *testing.T) {
	byCountry := catalog.Search("germany")
	require.Len(t, byCountry, 1)
	assert.Equal(t, "Berlin", byCountry[0].City)

	byName := catalog.Search("skyline")
	require.Len(t, byName, 1)
	assert.Equal(t, "nyc-midtown", byName[0].ID)
}

func TestSearch_IsCaseAndDiacriticInsensitive(t *testing.T) {
	assert.Len(t, catalog.Search("LONDON"), 1)
	assert.Len(t, catalog.Search("Lóndon"), 1)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "sao paulo", catalog.Normalize("São Paulo"))
	assert.Equal(t, "new york", catalog.Normalize("  New York!  "))
	assert.Equal(t, "a-b_c", catalog.Normalize("a-b_c"))
}

func TestAll_ReturnsACopy(t *testing.T) {
	first := catalog.All()
	first[0].City = "Mutated"
	assert.Equal(t, "London", catalog.All()[0].City)
}
