package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
	"github.com/zyra-atelier/storefront/internal/pkg/money"
	"gopkg.in/yaml.v3"
)

type catalogLoader func() (*catalog.Store, error)

func newCatalogCmd(load catalogLoader) *cobra.Command {
	var (
		filter   catalog.Filter
		maxPrice int64
		sort     string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List products using the shop filters",
		Example: `  # Hoodies under $200, cheapest first
  atelier catalog --category Hoodies --max-price 200 --sort price_asc

  # Everything tagged or described as zip, as YAML
  atelier catalog --query zip --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch catalog.SortOrder(sort) {
			case catalog.SortFeatured, catalog.SortPriceAsc, catalog.SortPriceDesc:
				filter.Sort = catalog.SortOrder(sort)
			default:
				return fmt.Errorf("unknown sort %q (featured, price_asc, price_desc)", sort)
			}
			if maxPrice < 0 {
				return fmt.Errorf("--max-price cannot be negative")
			}
			filter.MaxPrice = money.FromDollars(maxPrice)

			store, err := load()
			if err != nil {
				return err
			}

			products := store.Filter(filter)

			switch output {
			case "table":
				return writeProductTable(cmd.OutOrStdout(), products)
			case "yaml":
				return writeYAML(cmd.OutOrStdout(), products)
			default:
				return fmt.Errorf("unknown output format %q (table, yaml)", output)
			}
		},
	}

	cmd.Flags().StringVar(&filter.Category, "category", "", "Category to show (All for every category)")
	cmd.Flags().StringVar(&filter.Collection, "collection", "", "Collection to show")
	cmd.Flags().StringVar(&filter.Gender, "gender", "", "Gender to show (men, women, unisex)")
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "Match name, description or tags")
	cmd.Flags().Int64Var(&maxPrice, "max-price", 0, "Maximum price in whole dollars (0 for no limit)")
	cmd.Flags().StringVar(&sort, "sort", string(catalog.SortFeatured), "Sort order: featured, price_asc or price_desc")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table or yaml")

	return cmd
}

func writeProductTable(w io.Writer, products []catalog.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No pieces match these filters.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tCOLLECTION\tPRICE\tCUSTOMIZABLE")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Category, p.Collection, money.Format(p.Price), yesNo(p.Customizable))
	}
	return tw.Flush()
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
