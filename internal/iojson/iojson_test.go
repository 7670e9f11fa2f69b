package iojson_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/scnet/internal/iojson"
	"github.com/gnames/scnet/internal/iotesting"
	"github.com/gnames/scnet/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	ds := iotesting.Dataset(t)
	doc := iojson.NewDocument(ds)

	assert.Equal(t, ds.RunID.String(), doc.RunID)
	assert.Equal(t, int64(42), doc.Seed)
	require.Len(t, doc.Tables, 10)

	periods := doc.Tables[0]
	assert.Equal(t, "Periods", periods.Name)
	assert.Equal(t, []string{"index", "period"}, periods.Columns)
	assert.Equal(t, []any{0, "2025-03-01"}, periods.Rows[0])

	demands := doc.Tables[7]
	assert.Equal(t, "demands", demands.SQLName)
	for _, row := range demands.Rows {
		assert.IsType(t, "", row[0], "dates become text")
	}
}

func TestWrite(t *testing.T) {
	ds := iotesting.Dataset(t)
	path := filepath.Join(t.TempDir(), "sample.json")

	err := iojson.New(path, true).Write(context.Background(), ds)
	require.NoError(t, err)

	bs, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc iojson.Document
	err = gnfmt.GNjson{}.Decode(bs, &doc)
	require.NoError(t, err)

	assert.Equal(t, ds.RunID.String(), doc.RunID)
	require.Len(t, doc.Tables, 10)
	for i, tbl := range ds.Tables() {
		assert.Equal(t, tbl.Name, doc.Tables[i].Name)
		assert.Len(t, doc.Tables[i].Rows, len(tbl.Rows), tbl.Name)
	}
	assert.Equal(t, ds.Customers[0].Name, doc.Tables[4].Rows[0][0])
}

func TestWriteBadPath(t *testing.T) {
	ds := iotesting.Dataset(t)
	path := filepath.Join(t.TempDir(), "absent", "sample.json")

	err := iojson.New(path, false).Write(context.Background(), ds)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.OutputCreateFileError, gnErr.Code)
	assert.NoFileExists(t, path)
}
