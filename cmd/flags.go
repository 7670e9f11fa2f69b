package cmd

import (
	"github.com/gnames/scnet/pkg/config"
	"github.com/spf13/cobra"
)

func generateFlags(cmd *cobra.Command) {
	def := config.New()
	gen := def.Generation

	cmd.Flags().IntP("periods", "p", gen.Periods,
		"number of daily periods")
	cmd.Flags().Int("plants", gen.Plants, "number of plants")
	cmd.Flags().Int("customers", gen.Customers, "number of customers")
	cmd.Flags().Float64("route-rate", gen.RouteRate,
		"probability of a plant to serve a customer")
	cmd.Flags().Int64("seed", gen.Seed,
		"seed of the random generator, 0 means time based")
	cmd.Flags().StringP("format", "f", def.Output.Format,
		"output format: xlsx, sqlite, json or postgres")
	cmd.Flags().StringP("output", "o", def.Output.Dir,
		"directory for xlsx, sqlite and json output")
}

// generateOptions converts explicitly set flags to config options,
// so flags override config.yaml and environment only when given.
func generateOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("periods") {
		i, _ := flags.GetInt("periods")
		res = append(res, config.OptGenPeriods(i))
	}
	if flags.Changed("plants") {
		i, _ := flags.GetInt("plants")
		res = append(res, config.OptGenPlants(i))
	}
	if flags.Changed("customers") {
		i, _ := flags.GetInt("customers")
		res = append(res, config.OptGenCustomers(i))
	}
	if flags.Changed("route-rate") {
		f, _ := flags.GetFloat64("route-rate")
		res = append(res, config.OptGenRouteRate(f))
	}
	if flags.Changed("seed") {
		i, _ := flags.GetInt64("seed")
		res = append(res, config.OptGenSeed(i))
	}
	if flags.Changed("format") {
		s, _ := flags.GetString("format")
		res = append(res, config.OptOutputFormat(s))
	}
	if flags.Changed("output") {
		s, _ := flags.GetString("output")
		res = append(res, config.OptOutputDir(s))
	}
	return res
}
