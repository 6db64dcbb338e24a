package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-headerval/value"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a header value from JSON items on standard input",
	Long: `Build reads a JSON array of items, as produced by "hv parse",
from standard input and prints the serialized header value. Values that
are not legal bare tokens come out quoted and escaped.`,
	Args: cobra.NoArgs,
	RunE: RunBuild,
}

var (
	sortParams     bool
	minimalQuoting bool
)

func init() {
	buildCmd.Flags().BoolVar(&sortParams, "sort-params", false,
		"emit parameters in sorted name order")
	buildCmd.Flags().BoolVar(&minimalQuoting, "minimal-quoting", false,
		"leave parameter values bare when they are legal tokens")
	rootCmd.AddCommand(buildCmd)
}

func RunBuild(cmd *cobra.Command, args []string) error {
	var items []value.Item
	dec := json.NewDecoder(cmd.InOrStdin())
	if err := dec.Decode(&items); err != nil {
		return fmt.Errorf("reading items: %w", err)
	}

	var opts []value.BuildOption
	if sortParams {
		opts = append(opts, value.SortParams())
	}
	if minimalQuoting {
		opts = append(opts, value.MinimalQuoting())
	}

	s, err := value.Build(items, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
