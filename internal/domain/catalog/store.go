// internal/domain/catalog/store.go
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultDocument []byte

// ErrProductNotFound is returned when a product id is not in the catalog
var ErrProductNotFound = errors.New("product not found")

type document struct {
	Products []Product `yaml:"products"`
	Options  Options   `yaml:"options"`
}

// Store is the read-only product catalog. It is safe for concurrent use
// because nothing mutates it after Load.
type Store struct {
	products []Product
	index    map[string]int
	options  Options
}

// Default loads the catalog shipped with the binary
func Default() (*Store, error) {
	return Load(defaultDocument)
}

// Load parses a YAML catalog document
func Load(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := validate(&doc); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	store := &Store{
		products: doc.Products,
		index:    make(map[string]int, len(doc.Products)),
		options:  doc.Options,
	}
	for i, p := range doc.Products {
		store.index[p.ID] = i
	}

	return store, nil
}

func validate(doc *document) error {
	seen := make(map[string]bool, len(doc.Products))
	for _, p := range doc.Products {
		if p.ID == "" {
			return fmt.Errorf("product %q has no id", p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true

		if p.Price <= 0 {
			return fmt.Errorf("product %q must have a positive price", p.ID)
		}
	}

	o := doc.Options
	switch {
	case len(o.ThreadColors) == 0:
		return errors.New("thread color palette is empty")
	case len(o.Fonts) == 0:
		return errors.New("font list is empty")
	case len(o.Fabrics) == 0:
		return errors.New("fabric list is empty")
	case len(o.Fits) == 0:
		return errors.New("fit list is empty")
	case len(o.Placements) == 0:
		return errors.New("placement list is empty")
	case len(o.CollarStyles) == 0, len(o.StitchingStyles) == 0, len(o.SleeveStyles) == 0:
		return errors.New("style detail lists must not be empty")
	case o.Fees.TextMaxLength <= 0:
		return errors.New("text max length must be positive")
	}

	if o.Fabrics[0].Premium() {
		return errors.New("default fabric must not carry a surcharge")
	}

	return nil
}

// Products returns every product in catalog order
func (s *Store) Products() []Product {
	out := make([]Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

// Product returns a product by id
func (s *Store) Product(id string) (Product, error) {
	i, ok := s.index[id]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return s.products[i].Clone(), nil
}

// Options returns the studio option vocabularies
func (s *Store) Options() Options {
	return s.options.Clone()
}

// Categories returns "All" followed by each distinct category in catalog order
func (s *Store) Categories() []string {
	categories := []string{CategoryAll}
	seen := map[string]bool{}
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
