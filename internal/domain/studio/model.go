// internal/domain/studio/model.go
package studio

import (
	"slices"
	"strings"

	"github.com/zyra-atelier/storefront/internal/domain/catalog"
)

// Catalog is the part of the catalog store the model reads
type Catalog interface {
	Product(id string) (catalog.Product, error)
	Options() catalog.Options
}

// Model prices and validates designs against the catalog vocabularies
type Model struct {
	catalog Catalog
	options catalog.Options
}

// NewModel creates a customization model over the given catalog
func NewModel(c Catalog) *Model {
	return &Model{
		catalog: c,
		options: c.Options(),
	}
}

// Options returns the vocabularies the model validates against
func (m *Model) Options() catalog.Options {
	return m.options.Clone()
}

// Initialize seeds a design for p with the default selections
func (m *Model) Initialize(p catalog.Product) (State, error) {
	if len(p.Colors) == 0 {
		return State{}, &InvalidProductError{ProductID: p.ID, Reason: "product declares no colors"}
	}
	if len(p.Sizes) == 0 {
		return State{}, &InvalidProductError{ProductID: p.ID, Reason: "product declares no sizes"}
	}

	size := p.Sizes[0]
	if len(p.Sizes) > 1 {
		size = p.Sizes[1]
	}

	s := State{
		ProductID:   p.ID,
		BaseColor:   p.Colors[0],
		Size:        size,
		Fit:         m.options.Fits[0],
		Fabric:      m.options.Fabrics[0].Name,
		Text:        m.normalizeText(m.options.Fees.PlaceholderText),
		Font:        m.options.Fonts[0],
		ThreadColor: m.options.ThreadColors[0].Hex,
		Placement:   m.options.Placements[0],
		Details:     m.defaultDetails(),
	}
	s.Price = m.ComputePrice(s, p.Price)

	return s, nil
}

// ApplyOption returns a copy of s with the one field named by kind set to
// value and the price recomputed. s itself is never modified.
func (m *Model) ApplyOption(s State, kind OptionKind, value string) (State, error) {
	p, err := m.catalog.Product(s.ProductID)
	if err != nil {
		return s, &InvalidProductError{ProductID: s.ProductID, Reason: "product is not in the catalog", Err: err}
	}

	next := s.Clone()

	switch kind {
	case KindBaseColor:
		if !p.HasColor(value) {
			return s, &InvalidOptionError{Kind: kind, Value: value, Reason: "color is not offered for this product"}
		}
		next.BaseColor = value
	case KindSize:
		if !p.HasSize(value) {
			return s, &InvalidOptionError{Kind: kind, Value: value, Reason: "size is not offered for this product"}
		}
		next.Size = value
	case KindFit:
		if !slices.Contains(m.options.Fits, value) {
			return s, &InvalidOptionError{Kind: kind, Value: value, Reason: "unknown fit"}
		}
		next.Fit = value
	case KindFabric:
		if _, ok := m.options.Fabric(value); !ok {
			return s, &InvalidOptionError{Kind: kind, Value: value, Reason: "unknown fabric"}
		}
		next.Fabric = value
	case KindText:
		next.Text = m.normalizeText(value)
	case KindFont:
		if !slices.Contains(m.options.Fonts, value) {
			return s, &InvalidOptionError{Kind: kind, Value: value, Reason: "unknown font"}
		}
		next.Font = value
	case KindThreadColor:
		if _, ok := m.options.ThreadColor(strings.ToUpper(value)); !ok {
			return s, &InvalidOptionError{Kind: kind, Value: value, Reason: "color is not in the thread palette"}
		}
		next.ThreadColor = strings.ToUpper(value)
	case KindPlacement:
		if !slices.Contains(m.options.Placements, value) {
			return s, &InvalidOptionError{Kind: kind, Value: value, Reason: "unknown placement"}
		}
		next.Placement = value
	case KindCollar, KindStitching, KindSleeve:
		if err := m.applyDetail(&next, kind, value); err != nil {
			return s, err
		}
	default:
		return s, &InvalidOptionError{Kind: kind, Value: value, Reason: "unknown option kind"}
	}

	next.Price = m.ComputePrice(next, p.Price)
	return next, nil
}

func (m *Model) applyDetail(s *State, kind OptionKind, value string) error {
	if s.Details == nil {
		s.Details = m.defaultDetails()
	}

	var legal []string
	var field *string
	switch kind {
	case KindCollar:
		legal, field = m.options.CollarStyles, &s.Details.Collar
	case KindStitching:
		legal, field = m.options.StitchingStyles, &s.Details.Stitching
	case KindSleeve:
		legal, field = m.options.SleeveStyles, &s.Details.Sleeve
	}

	if !slices.Contains(legal, value) {
		return &InvalidOptionError{Kind: kind, Value: value, Reason: "unknown style"}
	}
	*field = value
	return nil
}

// ComputePrice derives the total for s on top of basePrice. Every term is
// read from s as given.
func (m *Model) ComputePrice(s State, basePrice int64) int64 {
	total := basePrice

	if fabric, ok := m.options.Fabric(s.Fabric); ok {
		total += fabric.Surcharge
	}

	if s.Text != "" {
		total += m.options.Fees.Embroidery
	}

	if s.Details != nil && s.Details.Stitching != m.options.DefaultStitching() {
		total += m.options.Fees.Stitching
	}

	return total
}

func (m *Model) defaultDetails() *StyleDetails {
	return &StyleDetails{
		Collar:    m.options.CollarStyles[0],
		Stitching: m.options.DefaultStitching(),
		Sleeve:    m.options.SleeveStyles[0],
	}
}

// normalizeText upper-cases personalization text and clamps it to the
// maximum length, counted in runes
func (m *Model) normalizeText(text string) string {
	text = strings.ToUpper(text)
	runes := []rune(text)
	if limit := m.options.Fees.TextMaxLength; len(runes) > limit {
		runes = runes[:limit]
	}
	return string(runes)
}
