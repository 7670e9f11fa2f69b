/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/scnet/internal/iodb"
	"github.com/gnames/scnet/internal/iofs"
	"github.com/gnames/scnet/internal/iojson"
	"github.com/gnames/scnet/internal/iopg"
	"github.com/gnames/scnet/internal/iosqlite"
	"github.com/gnames/scnet/internal/ioxlsx"
	"github.com/gnames/scnet/pkg/coverage"
	"github.com/gnames/scnet/pkg/dataset"
	"github.com/gnames/scnet/pkg/generate"
	"github.com/gnames/scnet/pkg/random"
	"github.com/spf13/cobra"
)

// getGenerateCmd returns the generate command.
func getGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic supply-chain network",
		Long: `Generate a synthetic supply-chain network and save it.

This command:
  1. Generates periods, plants, production lines, distribution
     centers, customers, products, routes, demands, capabilities
     and production rates
  2. Checks referential integrity of the generated tables
  3. Prints how customers are covered by plants
  4. Saves the dataset in the chosen format

File formats are saved to the output directory as
YYYYMMDD_HHMMSS_sample.<ext>. The postgres format needs the
schema created by 'scnet create'.

The same seed gives the same network with the same scnet version.

Examples:
  scnet generate
  scnet generate -p 30 --plants 5 --customers 200
  scnet generate --route-rate 0.4 --seed 42 -f sqlite
  scnet generate -f json -o /tmp/networks`,
		Aliases: []string{"gen"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(generateOptions(cmd))
			err := runGenerate(cmd.Context())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	generateFlags(generateCmd)
	return generateCmd
}

func runGenerate(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	src := random.New(cfg.Generation.Seed)
	g, err := generate.New(cfg.Generation, src)
	if err != nil {
		return err
	}

	ds := g.Generate(start)
	if problems := ds.Check(); len(problems) > 0 {
		return dataset.IntegrityError(problems)
	}
	slog.Debug("Integrity check passed", "run_id", ds.RunID.String())

	report, err := coverage.Analyze(ds)
	if err != nil {
		return err
	}
	printSummary(ds, report)

	w, target, closeFn, err := newWriter(ctx, start)
	if err != nil {
		return err
	}
	defer closeFn()

	if err = w.Write(ctx, ds); err != nil {
		return err
	}

	dur := time.Since(start)
	gn.Info("Saved run <em>%s</em> to <em>%s</em> in %s",
		ds.RunID.String(), target, gnfmt.TimeString(dur.Seconds()))
	slog.Info("Generation completed",
		"run_id", ds.RunID.String(),
		"seed", ds.Seed,
		"format", cfg.Output.Format,
		"target", target,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	return nil
}

// newWriter returns a writer for the configured output format, a
// description of where data goes and a function releasing resources.
func newWriter(
	ctx context.Context,
	now time.Time,
) (dataset.Writer, string, func(), error) {
	noop := func() {}
	format := cfg.Output.Format

	switch format {
	case "xlsx", "sqlite", "json":
		path, err := iofs.OutputPath(cfg.Output.Dir, format, now)
		if err != nil {
			return nil, "", noop, err
		}
		var w dataset.Writer
		switch format {
		case "xlsx":
			w = ioxlsx.New(path)
		case "sqlite":
			w = iosqlite.New(path, true)
		default:
			w = iojson.New(path, true)
		}
		return w, path, noop, nil

	case "postgres":
		op := iodb.NewPgxOperator()
		if err := op.Connect(ctx, &cfg.Database); err != nil {
			return nil, "", noop, err
		}
		target := fmt.Sprintf("%s@%s:%d/%s",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)
		closeFn := func() { op.Close() }
		return iopg.New(cfg, op, true), target, closeFn, nil
	}

	return nil, "", noop, UnknownFormatError(format)
}

func printSummary(ds *dataset.Dataset, report *coverage.Report) {
	gn.Info(
		"Generated <em>%s</em> plants, <em>%s</em> lines, "+
			"<em>%s</em> dist. centers, <em>%s</em> customers, "+
			"<em>%s</em> products (seed %d)",
		humanize.Comma(int64(len(ds.Plants))),
		humanize.Comma(int64(len(ds.Lines))),
		humanize.Comma(int64(len(ds.DistCenters))),
		humanize.Comma(int64(len(ds.Customers))),
		humanize.Comma(int64(len(ds.Products))),
		ds.Seed,
	)
	gn.Info(
		"Rows: <em>%s</em> routes, <em>%s</em> demands, "+
			"<em>%s</em> capabilities, <em>%s</em> rates",
		humanize.Comma(int64(len(ds.Routes))),
		humanize.Comma(int64(len(ds.Demands))),
		humanize.Comma(int64(len(ds.Capabilities))),
		humanize.Comma(int64(len(ds.Rates))),
	)

	for _, id := range report.Plants() {
		gn.Info("  %s is the closest plant for %s customers",
			ds.Plants[id].Name,
			humanize.Comma(int64(report.PlantsServed[id])))
	}

	if len(report.Isolated) == 0 {
		gn.Info("All customers are reachable from plants")
		return
	}

	names := make([]string, len(report.Isolated))
	for i, id := range report.Isolated {
		names[i] = ds.Customers[id].Name
	}
	gn.Warn("%d customers are not reachable from any plant: %s",
		len(names), strings.Join(names, ", "))
}
