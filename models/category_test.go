package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_StaticTable(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 4)

	assert.Equal(t, "broad-market", cats[0].Key)
	assert.Equal(t, "Broad Market Indices", cats[0].Name)
	assert.Equal(t, "sectoral", cats[1].Key)
	assert.Equal(t, "thematic", cats[2].Key)
	assert.Equal(t, "strategy", cats[3].Key)

	for _, c := range cats {
		assert.NotEmpty(t, c.Description, "category %s has no description", c.Key)
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0].Name = "mutated"
	assert.Equal(t, "Broad Market Indices", CategoryName("broad-market"))
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Sectoral Indices", CategoryName("sectoral"))
	assert.Equal(t, "Strategy Indices", CategoryName("strategy"))
	assert.Empty(t, CategoryName("crypto"))
	assert.Empty(t, CategoryName(""))
	// Keys are case-sensitive.
	assert.Empty(t, CategoryName("Broad-Market"))
}

func TestValidCategory(t *testing.T) {
	for _, key := range CategoryKeys() {
		assert.True(t, ValidCategory(key), "key %s should be valid", key)
	}
	assert.False(t, ValidCategory("commodities"))
}

func TestCategoryKeys_Order(t *testing.T) {
	assert.Equal(t, []string{"broad-market", "sectoral", "thematic", "strategy"}, CategoryKeys())
}
