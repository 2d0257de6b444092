package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/catalog/internal/apperr"
	"github.com/example/catalog/internal/cli"
	"github.com/example/catalog/internal/version"
	"github.com/example/catalog/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "catalog",
		Short:   "Catalog - record indicators and series with generated codes",
		Version: version.String(),
		Long: `catalog records indicator and series descriptions into a shared workbook.
Each record gets a code of the form TYPE.CATEGORY.NNN and its reference
documents are stored under the upload directory, one folder per code.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ManagerCmd())
	rootCmd.AddCommand(cli.IndicatorCmd())
	rootCmd.AddCommand(cli.DictionaryCmd())

	err := rootCmd.Execute()
	wire.Shutdown()
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", apperr.Describe(err))
		os.Exit(1)
	}
}
