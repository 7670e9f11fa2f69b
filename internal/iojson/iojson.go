// Package iojson saves datasets as a single JSON document.
package iojson

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gnames/gnfmt"
	app "github.com/gnames/scnet/pkg"
	"github.com/gnames/scnet/pkg/dataset"
)

// Document is the JSON layout of a dataset.
type Document struct {
	RunID     string    `json:"runId"`
	Seed      int64     `json:"seed"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	Tables    []Table   `json:"tables"`
}

// Table keeps columns and rows of one dataset table. Dates are
// rendered as YYYY-MM-DD.
type Table struct {
	Name    string   `json:"name"`
	SQLName string   `json:"sqlName"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

type jsonWriter struct {
	path   string
	pretty bool
}

// New creates a writer that saves a dataset to a JSON file at path.
func New(path string, pretty bool) dataset.Writer {
	return &jsonWriter{path: path, pretty: pretty}
}

// NewDocument converts a dataset to its JSON layout.
func NewDocument(ds *dataset.Dataset) Document {
	tables := ds.Tables()
	res := Document{
		RunID:     ds.RunID.String(),
		Seed:      ds.Seed,
		Version:   app.Version,
		CreatedAt: ds.CreatedAt,
		Tables:    make([]Table, len(tables)),
	}
	for i, t := range tables {
		cols := make([]string, len(t.Columns))
		for j := range t.Columns {
			cols[j] = t.Columns[j].Name
		}
		rows := make([][]any, len(t.Rows))
		for j := range t.Rows {
			rows[j] = dataset.TextDates(t.Rows[j])
		}
		res.Tables[i] = Table{
			Name:    t.Name,
			SQLName: t.SQLName,
			Columns: cols,
			Rows:    rows,
		}
	}
	return res
}

func (w *jsonWriter) Write(ctx context.Context, ds *dataset.Dataset) error {
	enc := gnfmt.GNjson{Pretty: w.pretty}
	bs, err := enc.Encode(NewDocument(ds))
	if err != nil {
		return EncodeError(err)
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	if err = os.WriteFile(w.path, bs, 0644); err != nil {
		return CreateFileError(w.path, err)
	}

	slog.Info("Saved JSON document", "path", w.path, "bytes", len(bs))
	return nil
}
