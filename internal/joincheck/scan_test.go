package joincheck_test

import (
	"context"
	"testing"

	"join-checker/internal/joincheck"
	"join-checker/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	src := newFakeSource().
		set("parcels", "geoid", "character varying").
		set("census", "name", "text").
		set("census", "pop", "integer").
		set("census", "GEO_ID", "varchar").
		set("census", "geom", "geometry")

	var progress []int
	results, err := joincheck.Scan(context.Background(), src,
		schema.ColumnRef{Table: "parcels", Column: "geoid"}, "census",
		func(done, total int) {
			assert.Equal(t, 4, total)
			progress = append(progress, done)
		})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, progress)
	require.Len(t, results, 4)

	var order []string
	for _, r := range results {
		order = append(order, r.Column.Name)
	}
	assert.Equal(t, []string{"GEO_ID", "name", "pop", "geom"}, order)

	assert.True(t, results[0].NameMatch)
	assert.True(t, results[0].Verdict.OK())
	assert.Equal(t, `parcels."geoid" = census."GEO_ID"`, results[0].Verdict.JoinClause)
	assert.False(t, results[1].NameMatch)
	assert.True(t, results[1].Verdict.OK())
	assert.Equal(t, joincheck.Incompatible, results[2].Verdict.Outcome)
	assert.Equal(t, joincheck.Incompatible, results[3].Verdict.Outcome)
}

func TestScan_TargetMissing(t *testing.T) {
	src := newFakeSource().set("census", "name", "text")

	results, err := joincheck.Scan(context.Background(), src,
		schema.ColumnRef{Table: "parcels", Column: "geoid"}, "census", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, joincheck.LookupFailed, results[0].Verdict.Outcome)
	assert.Equal(t, "Sorry, the target column is not available.", results[0].Verdict.Message)
}

func TestScan_Errors(t *testing.T) {
	src := newFakeSource().set("parcels", "geoid", "text")

	_, err := joincheck.Scan(context.Background(), src, schema.ColumnRef{Table: "parcels"}, "census", nil)
	assert.ErrorIs(t, err, joincheck.ErrMissingParameter)

	_, err = joincheck.Scan(context.Background(), src, schema.ColumnRef{Table: "parcels", Column: "geoid"}, "census", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list columns of census")
	assert.ErrorIs(t, err, schema.ErrColumnNotFound)
}

func TestScan_Canceled(t *testing.T) {
	src := newFakeSource().
		set("parcels", "geoid", "text").
		set("census", "name", "text")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := joincheck.Scan(ctx, src, schema.ColumnRef{Table: "parcels", Column: "geoid"}, "census", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
