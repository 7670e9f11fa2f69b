package ioxlsx_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/internal/iotesting"
	"github.com/gnames/scnet/internal/ioxlsx"
	"github.com/gnames/scnet/pkg/dataset"
	"github.com/gnames/scnet/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	ds := iotesting.Dataset(t)
	path := filepath.Join(t.TempDir(), "sample.xlsx")

	err := ioxlsx.New(path).Write(context.Background(), ds)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	tables := ds.Tables()
	names := make([]string, len(tables))
	for i := range tables {
		names[i] = tables[i].Name
	}
	assert.Equal(t, names, f.GetSheetList())
	assert.Equal(t, []string{
		"Periods", "Plants", "Lines", "Dist. Centers", "Customers",
		"Products", "Routes", "Demands", "Capabilities", "Rates",
	}, f.GetSheetList())

	for _, tbl := range tables {
		t.Run(tbl.Name, func(t *testing.T) {
			rows, err := f.GetRows(tbl.Name)
			require.NoError(t, err)
			require.Len(t, rows, len(tbl.Rows)+1, "header plus data")

			header := make([]string, len(tbl.Columns))
			for i, c := range tbl.Columns {
				header[i] = c.Name
			}
			assert.Equal(t, header, rows[0])
		})
	}

	t.Run("text cells keep names", func(t *testing.T) {
		val, err := f.GetCellValue(dataset.PlantsTable, "A2")
		require.NoError(t, err)
		assert.Equal(t, ds.Plants[0].Name, val)

		val, err = f.GetCellValue(dataset.RoutesTable, "B2")
		require.NoError(t, err)
		assert.Equal(t, ds.NodeName(ds.Routes[0].Destination), val)
	})

	t.Run("dates are formatted", func(t *testing.T) {
		val, err := f.GetCellValue(dataset.PeriodsTable, "B2")
		require.NoError(t, err)
		assert.Equal(t, "2025-03-01", val)
	})
}

func TestWriteCanceled(t *testing.T) {
	ds := iotesting.Dataset(t)
	path := filepath.Join(t.TempDir(), "sample.xlsx")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ioxlsx.New(path).Write(ctx, ds)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

func TestWriteBadPath(t *testing.T) {
	ds := iotesting.Dataset(t)
	path := filepath.Join(t.TempDir(), "absent", "sample.xlsx")

	err := ioxlsx.New(path).Write(context.Background(), ds)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.OutputCreateFileError, gnErr.Code)
}

func TestErrors(t *testing.T) {
	cause := errors.New("disk full")

	err := ioxlsx.WriteError("/out/a.xlsx", "Rates", cause)
	gnErr := err.(*gn.Error)
	assert.Equal(t, errcode.OutputWriteError, gnErr.Code)
	assert.Equal(t, []any{"Rates", "/out/a.xlsx"}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, cause)
	assert.Contains(t, gnErr.Err.Error(), `"Rates"`)
}
