package iosqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/internal/iotesting"
	app "github.com/gnames/scnet/pkg"
	"github.com/gnames/scnet/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertStmt(t *testing.T) {
	res := insertStmt("periods", []string{"run_id", "index", "period"})
	assert.Equal(t,
		`INSERT INTO "periods" ("run_id", "index", "period") VALUES (?, ?, ?)`,
		res)
}

func TestWrite(t *testing.T) {
	ds := iotesting.Dataset(t)
	path := filepath.Join(t.TempDir(), "sample.sqlite")

	err := New(path, false).Write(context.Background(), ds)
	require.NoError(t, err)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	t.Run("run metadata", func(t *testing.T) {
		var id, version string
		var seed int64
		row := db.QueryRow(`SELECT id, seed, version FROM runs`)
		require.NoError(t, row.Scan(&id, &seed, &version))
		assert.Equal(t, ds.RunID.String(), id)
		assert.Equal(t, int64(42), seed)
		assert.Equal(t, app.Version, version)
	})

	t.Run("row counts", func(t *testing.T) {
		for _, tbl := range ds.Tables() {
			var num int
			q := fmt.Sprintf(
				`SELECT count(*) FROM %q WHERE run_id = ?`, tbl.SQLName,
			)
			err := db.QueryRow(q, ds.RunID.String()).Scan(&num)
			require.NoError(t, err, tbl.SQLName)
			assert.Equal(t, len(tbl.Rows), num, tbl.SQLName)
		}
	})

	t.Run("values", func(t *testing.T) {
		var period string
		err := db.QueryRow(
			`SELECT period FROM periods WHERE "index" = 1`,
		).Scan(&period)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-02", period)

		r := ds.Routes[0]
		var origin string
		var distance float64
		var leadtime int
		err = db.QueryRow(
			`SELECT origin, distance, leadtime FROM routes LIMIT 1`,
		).Scan(&origin, &distance, &leadtime)
		require.NoError(t, err)
		assert.Equal(t, ds.NodeName(r.Origin), origin)
		assert.Equal(t, r.Distance, distance)
		assert.Equal(t, r.LeadTime, leadtime)
	})
}

func TestWriteExistingFile(t *testing.T) {
	ds := iotesting.Dataset(t)
	path := filepath.Join(t.TempDir(), "sample.sqlite")
	err := os.WriteFile(path, []byte("keep me"), 0644)
	require.NoError(t, err)

	err = New(path, false).Write(context.Background(), ds)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.OutputCreateFileError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, os.ErrExist)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(content))
}

func TestWriteBadPath(t *testing.T) {
	ds := iotesting.Dataset(t)
	path := filepath.Join(t.TempDir(), "absent", "sample.sqlite")

	err := New(path, false).Write(context.Background(), ds)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.OutputCreateFileError, gnErr.Code)
}

func TestWriteCanceled(t *testing.T) {
	ds := iotesting.Dataset(t)
	path := filepath.Join(t.TempDir(), "sample.sqlite")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(path, false).Write(ctx, ds)
	assert.Error(t, err)
}
