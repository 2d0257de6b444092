package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/catalog/internal/config"
	"github.com/example/catalog/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the catalog database and storage directories",
		Long: `Create the sqlite database (manager and code counters), the data directory
holding records.xlsx, and the attachments directory. Safe to run repeatedly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initializing catalog database at %s\n", cfg.DBPath)

			if err := cfg.EnsureDirs(); err != nil {
				return err
			}

			conn, err := db.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer conn.Close()

			version, err := db.SchemaVersion(conn)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "✓ Database ready (schema version %d)\n", version)
			fmt.Fprintf(out, "✓ Records workbook: %s\n", cfg.RecordsPath())
			fmt.Fprintf(out, "✓ Attachments: %s\n", cfg.UploadDir)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  catalog manager set --department D --division V --person P")
			fmt.Fprintln(out, "  catalog indicator add --file form.yaml")

			return nil
		},
	}
}
