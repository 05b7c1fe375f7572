package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscosanchezn/bistro-boss-api/internal/testutil"
)

func TestSeedDatabaseRunsOnce(t *testing.T) {
	s := testutil.NewSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, seedDatabase(ctx, s))
	require.NoError(t, seedDatabase(ctx, s))

	menu, err := s.ListMenu(ctx)
	require.NoError(t, err)
	assert.Len(t, menu, len(sampleMenu))

	reviews, err := s.ListReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, len(sampleReviews))
}
