package cmd

import (
	"bytes"
	"context"
	"testing"

	"join-checker/internal/dialect"
	"join-checker/internal/joincheck"
	"join-checker/internal/schema"
	"join-checker/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FailedCheckClosesDatabase(t *testing.T) {
	resetViper(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	expectType(mock, "parcels", "geoid", "text")
	expectType(mock, "census", "geoid", "integer")
	mock.ExpectClose()

	loggerClosed := false
	preRun := RootCmd.PersistentPreRunE
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		DB = db
		DriverName = "postgres"
		Logger = testutil.NewTestLogger(t)
		closeLogger = func() { loggerClosed = true }
		Catalog = schema.NewCatalog(db, dialect.GetDialect(DriverName), "")
		return nil
	}

	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetArgs([]string{
		"check",
		"--target-table", "parcels", "--target-column", "geoid",
		"--dt-table", "census", "--dt-column", "geoid",
	})
	t.Cleanup(func() {
		RootCmd.PersistentPreRunE = preRun
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
		DB, Catalog, Logger = nil, nil, nil
	})

	err = run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, joincheck.ErrIncompatible)

	assert.Contains(t, out.String(), "✗ census.geoid (integer) cannot be joined to parcels.geoid (text)")
	assert.Empty(t, errOut.String())

	assert.True(t, loggerClosed)
	assert.Nil(t, DB)
	assert.NoError(t, mock.ExpectationsWereMet())
}
