// Package iosqlite saves datasets as SQLite databases.
//
// Every dataset table gets a table of the same SQL name created from
// the DDL of pkg/schema, plus a runs table with metadata of the
// generation. All inserts happen in one transaction.
package iosqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	app "github.com/gnames/scnet/pkg"
	"github.com/gnames/scnet/pkg/dataset"
	"github.com/gnames/scnet/pkg/schema"
	_ "modernc.org/sqlite"
)

type sqliteWriter struct {
	path     string
	progress bool
}

// New creates a writer that saves a dataset to a new SQLite file at
// path. If progress is true, a progress bar is shown on stderr.
func New(path string, progress bool) dataset.Writer {
	return &sqliteWriter{path: path, progress: progress}
}

// Write creates the database file. It refuses to touch an existing file.
func (w *sqliteWriter) Write(ctx context.Context, ds *dataset.Dataset) error {
	if _, err := os.Stat(w.path); err == nil {
		return CreateFileError(w.path, os.ErrExist)
	}

	db, err := open(ctx, w.path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return WriteError(w.path, "begin", err)
	}
	defer tx.Rollback()

	if err = createTables(ctx, tx); err != nil {
		return WriteError(w.path, "schema", err)
	}

	run := ds.RunID.String()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO "runs" ("id", "seed", "version", "created_at")
		VALUES (?, ?, ?, ?)`,
		run, ds.Seed, app.Version, ds.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return WriteError(w.path, "runs", err)
	}

	tables := ds.Tables()
	var bar *pb.ProgressBar
	if w.progress {
		bar = newProgressBar(dataset.RowsNum(tables), "Saving tables: ")
		defer bar.Finish()
	}

	for _, t := range tables {
		if err = insertTable(ctx, tx, run, t, bar); err != nil {
			return WriteError(w.path, t.SQLName, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return WriteError(w.path, "commit", err)
	}

	slog.Info("Saved SQLite database",
		"path", w.path,
		"run_id", run,
		"rows", dataset.RowsNum(tables),
	)
	return nil
}

func open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, CreateFileError(path, err)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, CreateFileError(path, err)
	}
	return db, nil
}

func createTables(ctx context.Context, tx *sql.Tx) error {
	for _, m := range schema.AllModels() {
		if _, err := tx.ExecContext(ctx, m.TableDDL()); err != nil {
			return fmt.Errorf("table %s: %w", m.TableName(), err)
		}
		for _, idx := range m.IndexDDL() {
			if _, err := tx.ExecContext(ctx, idx); err != nil {
				return fmt.Errorf("index of %s: %w", m.TableName(), err)
			}
		}
	}
	return nil
}

// insertStmt builds an INSERT with quoted columns, run_id included.
func insertStmt(table string, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
		table, strings.Join(quoted, ", "), marks)
}

func insertTable(
	ctx context.Context,
	tx *sql.Tx,
	run string,
	t dataset.Table,
	bar *pb.ProgressBar,
) error {
	model := schema.Model(t.SQLName)
	if model == nil {
		return fmt.Errorf("no schema for table %s", t.SQLName)
	}
	cols := schema.Columns(model)
	if len(cols) != len(t.Columns)+1 {
		return fmt.Errorf("table %s has %d columns, schema expects %d",
			t.SQLName, len(t.Columns)+1, len(cols))
	}

	stmt, err := tx.PrepareContext(ctx, insertStmt(t.SQLName, cols))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range t.Rows {
		args := append([]any{run}, dataset.TextDates(row)...)
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return err
		}
		if bar != nil {
			bar.Increment()
		}
	}
	return nil
}

func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
