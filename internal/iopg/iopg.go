// Package iopg saves datasets to PostgreSQL.
//
// The schema has to exist (see 'scnet create'). Every row gets the
// run_id of the dataset, so several runs can live in one database.
// Tables are copied concurrently with CopyFrom.
package iopg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/scnet/internal/iodb"
	app "github.com/gnames/scnet/pkg"
	"github.com/gnames/scnet/pkg/config"
	"github.com/gnames/scnet/pkg/dataset"
	"github.com/gnames/scnet/pkg/db"
	"github.com/gnames/scnet/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

type pgWriter struct {
	cfg      *config.Config
	op       db.Operator
	progress bool
}

// New creates a writer that saves datasets using a connected operator.
// The number of concurrent copies is limited by cfg.JobsNumber, rows
// are sent in chunks of cfg.Database.BatchSize.
func New(cfg *config.Config, op db.Operator, progress bool) dataset.Writer {
	return &pgWriter{cfg: cfg, op: op, progress: progress}
}

// Write inserts a runs row and copies all tables. If copying fails,
// rows of the run are removed.
func (w *pgWriter) Write(ctx context.Context, ds *dataset.Dataset) error {
	pool := w.op.Pool()
	if pool == nil {
		return iodb.NotConnectedError()
	}

	if err := w.checkSchema(ctx); err != nil {
		return err
	}

	run := pgtype.UUID{Bytes: ds.RunID, Valid: true}
	_, err := pool.Exec(ctx,
		`INSERT INTO runs (id, seed, version, created_at)
		VALUES ($1, $2, $3, $4)`,
		run, ds.Seed, app.Version, ds.CreatedAt,
	)
	if err != nil {
		return RunInsertError(ds.RunID.String(), err)
	}

	tables := ds.Tables()
	var bar *pb.ProgressBar
	if w.progress {
		bar = newProgressBar(dataset.RowsNum(tables), "Saving tables: ")
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(w.cfg.JobsNumber, 1))
	for _, t := range tables {
		g.Go(func() error {
			return copyTable(gCtx, pool, run, t, w.batchSize(), bar)
		})
	}
	err = g.Wait()
	if bar != nil {
		bar.Finish()
	}

	if err != nil {
		w.cleanup(context.WithoutCancel(ctx), pool, run)
		return err
	}

	slog.Info("Saved dataset to PostgreSQL",
		"database", w.cfg.Database.Database,
		"run_id", ds.RunID.String(),
		"rows", dataset.RowsNum(tables),
	)
	return nil
}

func (w *pgWriter) batchSize() int {
	if w.cfg.Database.BatchSize > 0 {
		return w.cfg.Database.BatchSize
	}
	return 10_000
}

func (w *pgWriter) checkSchema(ctx context.Context) error {
	for _, m := range schema.AllModels() {
		exists, err := w.op.TableExists(ctx, m.TableName())
		if err != nil {
			return err
		}
		if !exists {
			slog.Error("Table is missing", "table", m.TableName())
			return iodb.EmptyDatabaseError(
				w.cfg.Database.Host, w.cfg.Database.Database,
			)
		}
	}
	return nil
}

func copyTable(
	ctx context.Context,
	pool *pgxpool.Pool,
	run pgtype.UUID,
	t dataset.Table,
	batchSize int,
	bar *pb.ProgressBar,
) error {
	model := schema.Model(t.SQLName)
	if model == nil {
		return CopyError(t.SQLName, fmt.Errorf("no schema for table"))
	}
	cols := schema.Columns(model)

	var total int64
	for i := 0; i < len(t.Rows); i += batchSize {
		end := min(i+batchSize, len(t.Rows))
		batch := t.Rows[i:end]

		src := pgx.CopyFromSlice(len(batch), func(j int) ([]any, error) {
			return append([]any{run}, batch[j]...), nil
		})
		num, err := pool.CopyFrom(ctx, pgx.Identifier{t.SQLName}, cols, src)
		if err != nil {
			return CopyError(t.SQLName, err)
		}
		if int(num) != len(batch) {
			return CopyError(t.SQLName,
				fmt.Errorf("expected %d rows, copied %d", len(batch), num))
		}
		total += num
		if bar != nil {
			bar.Add(len(batch))
		}
	}

	slog.Debug("Copied table", "table", t.SQLName, "rows", total)
	return nil
}

// cleanup removes a partially saved run.
func (w *pgWriter) cleanup(
	ctx context.Context,
	pool *pgxpool.Pool,
	run pgtype.UUID,
) {
	models := schema.AllModels()
	// runs goes last
	for i := len(models) - 1; i >= 0; i-- {
		name := models[i].TableName()
		col := "run_id"
		if name == "runs" {
			col = "id"
		}
		q := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
			pgx.Identifier{name}.Sanitize(), col)
		if _, err := pool.Exec(ctx, q, run); err != nil {
			slog.Warn("Cannot remove rows of failed run",
				"table", name, "error", err)
		}
	}
}

func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
