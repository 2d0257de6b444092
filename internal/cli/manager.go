package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/catalog/internal/wire"
)

// ManagerCmd returns the manager command
func ManagerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manager",
		Short: "Manage the catalog manager (department, division, person)",
		Long:  "The manager is recorded on every indicator and must be set before indicators can be added.",
	}

	cmd.AddCommand(managerSetCmd())
	cmd.AddCommand(managerShowCmd())

	return cmd
}

func managerSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save the manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			department, _ := cmd.Flags().GetString("department")
			division, _ := cmd.Flags().GetString("division")
			person, _ := cmd.Flags().GetString("person")

			adapter, err := wire.ManagerAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Set(cmd.Context(), department, division, person)
		},
	}

	cmd.Flags().StringP("department", "d", "", "Department")
	cmd.Flags().StringP("division", "v", "", "Division")
	cmd.Flags().StringP("person", "p", "", "Person in charge")

	return cmd
}

func managerShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.ManagerAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = adapter.Show(cmd.Context())
			return err
		},
	}
}
