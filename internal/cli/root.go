package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
)

// NewRootCmd builds the atelier command tree
func NewRootCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "atelier",
		Short: "Browse the Zyra Atelier catalog and price designs offline",
		Long: `Atelier works against the same catalog document the storefront API
serves. Use it to list products with the shop filters or to quote a
customized design without starting a session.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a catalog YAML document (defaults to the built-in catalog)")

	load := func() (*catalog.Store, error) {
		return loadCatalog(catalogPath)
	}

	cmd.AddCommand(newCatalogCmd(load))
	cmd.AddCommand(newQuoteCmd(load))
	cmd.AddCommand(newMailTestCmd())

	return cmd
}

func loadCatalog(path string) (*catalog.Store, error) {
	if path == "" {
		return catalog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return catalog.Load(data)
}
