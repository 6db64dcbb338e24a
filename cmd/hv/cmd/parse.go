package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/zostay/go-headerval/value"
)

var parseCmd = &cobra.Command{
	Use:   "parse [header-value]",
	Short: "Parse a header value into JSON items",
	Long: `Parse reads a header value from the arguments or standard input
and prints its items as a JSON array. Parameter order is preserved in the
output objects. Malformed input fails with the offset of the problem; use
"hv validate" to see every problem at once.`,
	RunE: RunParse,
}

var (
	allowEmpty   bool
	preserveCase bool
)

func init() {
	parseCmd.Flags().BoolVar(&allowEmpty, "allow-empty", false,
		"keep empty items produced by consecutive or trailing commas")
	parseCmd.Flags().BoolVar(&preserveCase, "preserve-case", false,
		"keep parameter names as written instead of lowercasing them")
	rootCmd.AddCommand(parseCmd)
}

func RunParse(cmd *cobra.Command, args []string) error {
	text, err := headerInput(cmd, args)
	if err != nil {
		return err
	}

	var opts []value.ParseOption
	if allowEmpty {
		opts = append(opts, value.AllowEmptyItems())
	}
	if preserveCase {
		opts = append(opts, value.PreserveParamCase())
	}

	items, err := value.Parse(text, opts...)
	if err != nil {
		return err
	}
	if items == nil {
		items = []value.Item{}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
