package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-headerval/cmd/hv/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
