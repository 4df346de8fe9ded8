package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCatalog_All(t *testing.T) {
	ops := FilterCatalog("", false)
	require.Len(t, ops, len(Catalog))

	for i := 1; i < len(ops); i++ {
		assert.False(t, ops[i].Deadline.Before(ops[i-1].Deadline), "catalog must sort by deadline ascending")
	}
}

func TestFilterCatalog_ByType(t *testing.T) {
	for _, category := range []string{"hackathon", "internship", "job"} {
		ops := FilterCatalog(category, false)
		require.NotEmpty(t, ops, "category %s should have entries", category)
		for _, op := range ops {
			assert.Equal(t, category, string(op.Type))
		}
	}
}

func TestFilterCatalog_LatestOnly(t *testing.T) {
	ops := FilterCatalog("", true)
	require.NotEmpty(t, ops)
	assert.Less(t, len(ops), len(Catalog))
	for _, op := range ops {
		assert.True(t, op.IsLatest)
	}
}

func TestFilterCatalog_CombinedFilters(t *testing.T) {
	ops := FilterCatalog("hackathon", true)
	require.NotEmpty(t, ops)
	for _, op := range ops {
		assert.Equal(t, OpportunityHackathon, op.Type)
		assert.True(t, op.IsLatest)
	}
}

func TestCatalogByID(t *testing.T) {
	op, found := CatalogByID("2")
	require.True(t, found)
	assert.Equal(t, "Stripe", op.Company)

	_, found = CatalogByID("does-not-exist")
	assert.False(t, found)
}
