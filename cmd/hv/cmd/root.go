package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hv",
	Short: "Parse, build, normalize and validate structured header values",
	Long: `hv works with HTTP header values in the comma-separated
parameterized grammar used by headers like Accept, Content-type and
Cache-control. It parses them to JSON, builds them back from JSON,
normalizes them to a canonical form and validates them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the tool. Any returned error has already been kept off the
// output streams; the caller decides how to report it.
func Execute() error {
	return rootCmd.Execute()
}

// headerInput returns the header value to work on: the arguments joined
// with spaces when present, otherwise everything on standard input.
func headerInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	in, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(in), "\r\n"), nil
}
