// internal/domain/catalog/filter.go
package catalog

import (
	"cmp"
	"slices"
	"strings"
)

// CategoryAll matches every category
const CategoryAll = "All"

// SortOrder controls listing order
type SortOrder string

const (
	SortFeatured  SortOrder = "featured"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// Filter holds the shop listing predicates. Zero values match everything.
type Filter struct {
	Category   string    `form:"category"`
	Collection string    `form:"collection"`
	Gender     string    `form:"gender"`
	MaxPrice   int64     `form:"-"` // cents
	Query      string    `form:"q"`
	Sort       SortOrder `form:"sort" binding:"omitempty,oneof=featured price_asc price_desc"`
}

// Matches reports whether p satisfies every predicate of f
func (f Filter) Matches(p Product) bool {
	if f.Category != "" && f.Category != CategoryAll && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Collection != "" && !strings.EqualFold(p.Collection, f.Collection) {
		return false
	}
	if f.Gender != "" && !strings.EqualFold(p.Gender, f.Gender) {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Query != "" && !matchesQuery(p, strings.ToLower(f.Query)) {
		return false
	}
	return true
}

func matchesQuery(p Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Filter returns the matching products. Featured order is catalog order;
// price sorts are stable so ties keep catalog order.
func (s *Store) Filter(f Filter) []Product {
	out := []Product{}
	for _, p := range s.products {
		if f.Matches(p) {
			out = append(out, p.Clone())
		}
	}

	switch f.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(b.Price, a.Price) })
	}

	return out
}
