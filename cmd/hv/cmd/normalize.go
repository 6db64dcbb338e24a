package cmd

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-headerval/value"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [header-value]",
	Short: "Rewrite a header value in canonical form",
	Long: `Normalize parses a header value and prints it back with
canonical spacing, lowercase parameter names and minimal quoting.
Normalizing an already-normalized value is a no-op.`,
	RunE: RunNormalize,
}

var showDiff bool

func init() {
	normalizeCmd.Flags().BoolVar(&showDiff, "diff", false,
		"show what normalization changed instead of the result alone")
	rootCmd.AddCommand(normalizeCmd)
}

func RunNormalize(cmd *cobra.Command, args []string) error {
	text, err := headerInput(cmd, args)
	if err != nil {
		return err
	}

	normal, err := value.Normalize(text)
	if err != nil {
		return err
	}

	if showDiff {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(text, normal, false)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), dmp.DiffPrettyText(diffs))
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), normal)
	return err
}
