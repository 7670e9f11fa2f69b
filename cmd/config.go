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
	"fmt"
	"io"

	"github.com/gnames/scnet/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getConfigCmd returns the config command.
func getConfigCmd() *cobra.Command {
	var showPassword bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print configuration after merging defaults, config.yaml,
environment variables and flags. The output is valid config.yaml.

Examples:
  scnet config
  SCNET_GENERATION_PLANTS=9 scnet config
  scnet config --show-password > my-config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfig(cmd.OutOrStdout(), cfg, showPassword)
		},
	}

	configCmd.Flags().BoolVar(&showPassword, "show-password", false,
		"print database password instead of a mask")

	return configCmd
}

func printConfig(w io.Writer, c *config.Config, showPassword bool) error {
	res := *c
	if !showPassword && res.Database.Password != "" {
		res.Database.Password = "********"
	}

	bs, err := yaml.Marshal(&res)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "# %s\n", config.ConfigFilePath(c.HomeDir))
	_, err = w.Write(bs)
	return err
}
