package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/catalog/internal/wire"
)

// DictionaryCmd returns the dictionary command
func DictionaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dictionary",
		Aliases: []string{"dict"},
		Short:   "Look up field help text",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "search [query]",
		Short: "Search dictionary entries by key or text",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.DictionaryAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			adapter.Search(strings.Join(args, " "))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show [key]",
		Short: "Show the help text for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.DictionaryAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Show(args[0])
		},
	})

	return cmd
}
