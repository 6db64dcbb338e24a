package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-headerval/value"
)

var validateCmd = &cobra.Command{
	Use:   "validate [header-value]",
	Short: "Report every syntax problem in a header value",
	Long: `Validate scans the whole header value and lists every syntax
problem found, one per line with its byte offset, rather than stopping at
the first. The exit status is 0 when the value is well-formed and 1 when
it is not; duplicate parameter names are reported as warnings and do not
affect the status.`,
	RunE: RunValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func RunValidate(cmd *cobra.Command, args []string) error {
	text, err := headerInput(cmd, args)
	if err != nil {
		return err
	}

	res := value.Validate(text)
	out := cmd.OutOrStdout()
	for _, issue := range res.Errors {
		fmt.Fprintln(out, issue)
	}
	for _, issue := range res.Warnings {
		fmt.Fprintln(out, "warning:", issue)
	}

	if !res.Valid {
		return fmt.Errorf("%d problem(s) found", len(res.Errors))
	}
	return nil
}
