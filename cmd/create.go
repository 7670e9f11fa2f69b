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
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/internal/iodb"
	"github.com/gnames/scnet/internal/ioschema"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	var forceCreate bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create database schema for generated networks",
		Long: `Create PostgreSQL tables for the postgres output format.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Checks for existing tables and prompts for confirmation
  3. Creates the runs table and ten dataset tables using
     GORM AutoMigrate

Every generated row carries run_id, so one database keeps
any number of generation runs.

Use --force to skip confirmation and drop existing tables.

Examples:
  scnet create
  scnet create --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd.Context(), forceCreate)
		},
	}

	createCmd.Flags().BoolVar(&forceCreate, "force",
		false, "drop existing tables without confirmation")

	return createCmd
}

func runCreate(ctx context.Context, force bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if hasTables {
		if !force && !confirmDrop() {
			gn.Info("Aborted. No changes made.")
			return nil
		}

		gn.Info("Dropping all existing tables...")
		if err := op.DropAllTables(ctx); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("All tables dropped")
	}

	sm := ioschema.NewManager(op)

	gn.Info("Creating schema using GORM AutoMigrate...")
	if err := sm.Create(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Database schema creation complete!")
	gn.Info("Next step: <em>scnet generate -f postgres</em>")

	return nil
}

func confirmDrop() bool {
	gn.Warn("Database contains existing tables.")
	gn.Warn("Creating schema will drop ALL existing tables and data.")
	fmt.Print("\nDo you want to continue? (yes/no): ")

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		gn.Warn("Failed to read user input")
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y"
}
