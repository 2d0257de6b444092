package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/catalog/internal/adapters/cli"
	"github.com/example/catalog/internal/core/indicator"
	"github.com/example/catalog/internal/wire"
)

// IndicatorCmd returns the indicator command
func IndicatorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "indicator",
		Aliases: []string{"ind"},
		Short:   "Record and browse indicators and series",
	}

	cmd.AddCommand(indicatorAddCmd())
	cmd.AddCommand(indicatorNextCodeCmd())
	cmd.AddCommand(indicatorListCmd())

	return cmd
}

func indicatorAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new indicator and assign its code",
		Long: `Record a new indicator. Fields come from a YAML form (--file) and/or flags;
flags override values from the file.

Types:         ` + strings.Join(indicator.Types, ", ") + `
Periodicities: ` + strings.Join(indicator.Periodicities, ", ") + `
Attachments:   ` + strings.Join(indicator.AttachmentExtensions, ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := readForm(cmd)
			if err != nil {
				return err
			}

			adapter, err := wire.IndicatorAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = adapter.Add(cmd.Context(), *form)
			return err
		},
	}

	f := cmd.Flags()
	f.StringP("file", "f", "", "YAML form file")
	f.StringP("type", "t", "", "Indicator type")
	f.StringP("category", "c", "", "Category")
	f.StringP("name", "n", "", "Name")
	f.String("definition", "", "Definition")
	f.String("periodicity", "", "Periodicity")
	f.String("unit", "", "Unit of measure")
	f.String("formula", "", "Calculation formula")
	f.String("availability-start", "", "First period with data")
	f.String("source-code", "", "Source code location")
	f.String("sql-query", "", "SQL query")
	f.String("oracle-source", "", "Oracle source")
	f.StringSlice("disaggregation", nil, "Disaggregation levels (repeatable)")
	f.StringSlice("visualization", nil, "Visualization channels (repeatable)")
	f.String("methodology-link", "", "Methodological reference link")
	f.String("methodology-file", "", "Methodological reference document")
	f.String("regulatory-link", "", "Regulatory reference link")
	f.String("regulatory-file", "", "Regulatory reference document")

	return cmd
}

// readForm builds the form from --file (if given) overlaid with flag values.
func readForm(cmd *cobra.Command) (*cliadapter.Form, error) {
	form := &cliadapter.Form{}

	path, _ := cmd.Flags().GetString("file")
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open form: %w", err)
		}
		defer file.Close()

		form, err = cliadapter.ParseForm(file)
		if err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	get := func(name string) string {
		v, _ := f.GetString(name)
		return v
	}
	disaggregation, _ := f.GetStringSlice("disaggregation")
	visualization, _ := f.GetStringSlice("visualization")

	form.Merge(cliadapter.Form{
		Type:              get("type"),
		Category:          get("category"),
		Name:              get("name"),
		Definition:        get("definition"),
		Periodicity:       get("periodicity"),
		Unit:              get("unit"),
		Formula:           get("formula"),
		AvailabilityStart: get("availability-start"),
		SourceCode:        get("source-code"),
		SQLQuery:          get("sql-query"),
		OracleSource:      get("oracle-source"),
		Disaggregation:    disaggregation,
		Visualization:     visualization,
		MethodologyLink:   get("methodology-link"),
		MethodologyFile:   get("methodology-file"),
		RegulatoryLink:    get("regulatory-link"),
		RegulatoryFile:    get("regulatory-file"),
	})

	return form, nil
}

func indicatorNextCodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next-code",
		Short: "Preview the code the next indicator would receive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			indicatorType, _ := cmd.Flags().GetString("type")
			category, _ := cmd.Flags().GetString("category")

			adapter, err := wire.IndicatorAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.NextCode(cmd.Context(), indicatorType, category)
		},
	}

	cmd.Flags().StringP("type", "t", "", "Indicator type")
	cmd.Flags().StringP("category", "c", "", "Category")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func indicatorListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded indicators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, _ := cmd.Flags().GetString("prefix")

			adapter, err := wire.IndicatorAdapterWithOutput(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.List(cmd.Context(), prefix)
		},
	}

	cmd.Flags().StringP("prefix", "p", "", "Filter by code prefix (e.g. SER or SER.CARTER)")

	return cmd
}
