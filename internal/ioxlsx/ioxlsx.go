// Package ioxlsx saves datasets as Excel workbooks, one sheet per table.
package ioxlsx

import (
	"context"
	"log/slog"

	"github.com/gnames/scnet/pkg/dataset"
	"github.com/xuri/excelize/v2"
)

const dateFormat = "yyyy-mm-dd"

type xlsxWriter struct {
	path string
}

// New creates a writer that saves a dataset to an .xlsx file at path.
func New(path string) dataset.Writer {
	return &xlsxWriter{path: path}
}

// Write creates a workbook with ten sheets in the order of
// dataset.Tables. Rows are added with a stream writer.
func (w *xlsxWriter) Write(ctx context.Context, ds *dataset.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return WriteError(w.path, "styles", err)
	}

	tables := ds.Tables()
	for i, t := range tables {
		if err = ctx.Err(); err != nil {
			return err
		}

		if i == 0 {
			err = f.SetSheetName("Sheet1", t.Name)
		} else {
			_, err = f.NewSheet(t.Name)
		}
		if err != nil {
			return WriteError(w.path, t.Name, err)
		}

		if err = writeSheet(f, t, st); err != nil {
			return WriteError(w.path, t.Name, err)
		}
	}
	f.SetActiveSheet(0)

	if err = f.SaveAs(w.path); err != nil {
		return CreateFileError(w.path, err)
	}

	slog.Info("Saved workbook",
		"path", w.path,
		"sheets", len(tables),
		"rows", dataset.RowsNum(tables),
	)
	return nil
}

type styles struct {
	header int
	date   int
}

func newStyles(f *excelize.File) (styles, error) {
	var res styles
	var err error

	res.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{"#D9E1F2"},
		},
	})
	if err != nil {
		return res, err
	}

	dateFmt := dateFormat
	res.date, err = f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	return res, err
}

func writeSheet(f *excelize.File, t dataset.Table, st styles) error {
	sw, err := f.NewStreamWriter(t.Name)
	if err != nil {
		return err
	}

	// widths must be set before the first row
	for i, c := range t.Columns {
		width := float64(len(c.Name) + 4)
		if c.Kind != dataset.IntColumn {
			width = max(width, 14)
		}
		if err = sw.SetColWidth(i+1, i+1, width); err != nil {
			return err
		}
	}

	header := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = excelize.Cell{StyleID: st.header, Value: c.Name}
	}
	if err = sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err = sw.SetRow(cell, sheetRow(t.Columns, row, st)); err != nil {
			return err
		}
	}

	return sw.Flush()
}

func sheetRow(cols []dataset.Column, row []any, st styles) []any {
	res := make([]any, len(row))
	for i, v := range row {
		if cols[i].Kind == dataset.DateColumn {
			res[i] = excelize.Cell{StyleID: st.date, Value: v}
			continue
		}
		res[i] = v
	}
	return res
}
