package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
	"github.com/zyra-atelier/storefront/internal/domain/studio"
	"github.com/zyra-atelier/storefront/internal/pkg/money"
)

// QuoteLine is one priced term of a quote
type QuoteLine struct {
	Label  string `yaml:"label"`
	Amount int64  `yaml:"amount"`
}

// Quote is a priced design with its breakdown
type Quote struct {
	ProductID   string      `yaml:"product_id"`
	Product     string      `yaml:"product"`
	BaseColor   string      `yaml:"base_color"`
	Size        string      `yaml:"size"`
	Fit         string      `yaml:"fit"`
	Fabric      string      `yaml:"fabric"`
	Text        string      `yaml:"text"`
	Font        string      `yaml:"font"`
	ThreadColor string      `yaml:"thread_color"`
	Placement   string      `yaml:"placement"`
	Collar      string      `yaml:"collar"`
	Stitching   string      `yaml:"stitching"`
	Sleeve      string      `yaml:"sleeve"`
	Lines       []QuoteLine `yaml:"lines"`
	Total       int64       `yaml:"total"`
	Formatted   string      `yaml:"formatted_total"`
}

func newQuoteCmd(load catalogLoader) *cobra.Command {
	var (
		sets   []string
		output string
	)

	cmd := &cobra.Command{
		Use:   "quote <product-id>",
		Short: "Price a customized design",
		Long: `Quote starts from the studio defaults for a product, applies each --set
in order and prints the resulting price with its breakdown. Options are
validated exactly as in the studio.`,
		Example: `  # Cashmere hoodie with custom text
  atelier quote h1 --set fabric="Cashmere Blend" --set text=Alex

  # Drop the embroidery entirely
  atelier quote t1 --set text=`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := load()
			if err != nil {
				return err
			}

			q, err := buildQuote(store, args[0], sets)
			if err != nil {
				return err
			}

			switch output {
			case "table":
				return writeQuoteTable(cmd.OutOrStdout(), q)
			case "yaml":
				return writeYAML(cmd.OutOrStdout(), q)
			default:
				return fmt.Errorf("unknown output format %q (table, yaml)", output)
			}
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Option to apply as kind=value (repeatable, applied in order)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table or yaml")

	return cmd
}

func buildQuote(store *catalog.Store, productID string, sets []string) (Quote, error) {
	p, err := store.Product(productID)
	if err != nil {
		return Quote{}, err
	}
	if !p.Customizable {
		return Quote{}, fmt.Errorf("%w: %s", studio.ErrNotCustomizable, p.ID)
	}

	model := studio.NewModel(store)
	design, err := model.Initialize(p)
	if err != nil {
		return Quote{}, err
	}

	for _, set := range sets {
		kind, value, ok := strings.Cut(set, "=")
		if !ok {
			return Quote{}, fmt.Errorf("invalid --set %q, expected kind=value", set)
		}
		design, err = model.ApplyOption(design, studio.OptionKind(strings.TrimSpace(kind)), value)
		if err != nil {
			return Quote{}, err
		}
	}

	q := Quote{
		ProductID:   p.ID,
		Product:     p.Name,
		BaseColor:   design.BaseColor,
		Size:        design.Size,
		Fit:         design.Fit,
		Fabric:      design.Fabric,
		Text:        design.Text,
		Font:        design.Font,
		ThreadColor: design.ThreadColor,
		Placement:   design.Placement,
		Lines:       priceLines(store.Options(), p, design),
		Total:       design.Price,
		Formatted:   money.Format(design.Price),
	}
	if d := design.Details; d != nil {
		q.Collar, q.Stitching, q.Sleeve = d.Collar, d.Stitching, d.Sleeve
	}

	return q, nil
}

// priceLines breaks the design price into the terms the studio adds up
func priceLines(opts catalog.Options, p catalog.Product, design studio.State) []QuoteLine {
	lines := []QuoteLine{{Label: "Base price", Amount: p.Price}}

	if fabric, ok := opts.Fabric(design.Fabric); ok && fabric.Premium() {
		lines = append(lines, QuoteLine{Label: "Fabric: " + fabric.Name, Amount: fabric.Surcharge})
	}
	if design.Text != "" {
		lines = append(lines, QuoteLine{Label: "Embroidery", Amount: opts.Fees.Embroidery})
	}
	if design.Details != nil && design.Details.Stitching != opts.DefaultStitching() {
		lines = append(lines, QuoteLine{Label: "Stitching: " + design.Details.Stitching, Amount: opts.Fees.Stitching})
	}

	return lines
}

func writeQuoteTable(w io.Writer, q Quote) error {
	fmt.Fprintf(w, "%s (%s)\n", q.Product, q.ProductID)
	fmt.Fprintf(w, "  %s / %s / %s fit / %s\n", q.BaseColor, q.Size, q.Fit, q.Fabric)
	if q.Text != "" {
		fmt.Fprintf(w, "  %q in %s, %s thread, %s\n", q.Text, q.Font, q.ThreadColor, q.Placement)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, line := range q.Lines {
		fmt.Fprintf(tw, "%s\t%s\t\n", line.Label, money.Format(line.Amount))
	}
	fmt.Fprintf(tw, "Total\t%s\t\n", q.Formatted)
	return tw.Flush()
}
