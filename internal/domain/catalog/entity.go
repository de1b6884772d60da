// internal/domain/catalog/entity.go
package catalog

import "slices"

// Fabric describes the base garment's cloth
type Fabric struct {
	GSM      int    `yaml:"gsm" json:"gsm"`
	Material string `yaml:"material" json:"material"`
}

// Product represents a catalog product. Prices are in cents.
type Product struct {
	ID           string   `yaml:"id" json:"id"`
	Name         string   `yaml:"name" json:"name"`
	Price        int64    `yaml:"price" json:"price"`
	Category     string   `yaml:"category" json:"category"`
	Collection   string   `yaml:"collection" json:"collection"`
	Gender       string   `yaml:"gender" json:"gender"`
	Tags         []string `yaml:"tags" json:"tags"`
	Image        string   `yaml:"image" json:"image"`
	HoverImage   string   `yaml:"hover_image" json:"hover_image"`
	Colors       []string `yaml:"colors" json:"colors"`
	Sizes        []string `yaml:"sizes" json:"sizes"`
	Description  string   `yaml:"description" json:"description"`
	Fabric       Fabric   `yaml:"fabric" json:"fabric"`
	Customizable bool     `yaml:"customizable" json:"customizable"`
}

// HasColor reports whether the product is offered in the given base color
func (p Product) HasColor(color string) bool {
	return slices.Contains(p.Colors, color)
}

// HasSize reports whether the product is offered in the given size
func (p Product) HasSize(size string) bool {
	return slices.Contains(p.Sizes, size)
}

// Clone returns a copy that shares no slices with p
func (p Product) Clone() Product {
	p.Tags = slices.Clone(p.Tags)
	p.Colors = slices.Clone(p.Colors)
	p.Sizes = slices.Clone(p.Sizes)
	return p
}

// ThreadColor is one entry of the embroidery thread palette
type ThreadColor struct {
	Name string `yaml:"name" json:"name"`
	Hex  string `yaml:"hex" json:"hex"`
}

// FabricOption is a selectable fabric with its surcharge in cents
type FabricOption struct {
	Name      string `yaml:"name" json:"name"`
	Surcharge int64  `yaml:"surcharge" json:"surcharge"`
}

// Premium reports whether choosing this fabric costs extra
func (f FabricOption) Premium() bool {
	return f.Surcharge > 0
}

// Fees holds the fixed customization charges
type Fees struct {
	Embroidery      int64  `yaml:"embroidery" json:"embroidery"`
	Stitching       int64  `yaml:"stitching" json:"stitching"`
	TextMaxLength   int    `yaml:"text_max_length" json:"text_max_length"`
	PlaceholderText string `yaml:"placeholder_text" json:"placeholder_text"`
}

// Options holds the option vocabularies offered by the studio.
// The first entry of each list is the default selection.
type Options struct {
	ThreadColors    []ThreadColor  `yaml:"thread_colors" json:"thread_colors"`
	Fonts           []string       `yaml:"fonts" json:"fonts"`
	Fabrics         []FabricOption `yaml:"fabrics" json:"fabrics"`
	Fits            []string       `yaml:"fits" json:"fits"`
	Placements      []string       `yaml:"placements" json:"placements"`
	CollarStyles    []string       `yaml:"collar_styles" json:"collar_styles"`
	StitchingStyles []string       `yaml:"stitching_styles" json:"stitching_styles"`
	SleeveStyles    []string       `yaml:"sleeve_styles" json:"sleeve_styles"`
	Fees            Fees           `yaml:"fees" json:"fees"`
}

// Fabric looks up a fabric option by name
func (o Options) Fabric(name string) (FabricOption, bool) {
	for _, f := range o.Fabrics {
		if f.Name == name {
			return f, true
		}
	}
	return FabricOption{}, false
}

// ThreadColor looks up a palette entry by hex value
func (o Options) ThreadColor(hex string) (ThreadColor, bool) {
	for _, c := range o.ThreadColors {
		if c.Hex == hex {
			return c, true
		}
	}
	return ThreadColor{}, false
}

// DefaultStitching is the stitching style that carries no surcharge
func (o Options) DefaultStitching() string {
	if len(o.StitchingStyles) == 0 {
		return ""
	}
	return o.StitchingStyles[0]
}

// Clone returns a deep copy of the vocabularies
func (o Options) Clone() Options {
	o.ThreadColors = slices.Clone(o.ThreadColors)
	o.Fonts = slices.Clone(o.Fonts)
	o.Fabrics = slices.Clone(o.Fabrics)
	o.Fits = slices.Clone(o.Fits)
	o.Placements = slices.Clone(o.Placements)
	o.CollarStyles = slices.Clone(o.CollarStyles)
	o.StitchingStyles = slices.Clone(o.StitchingStyles)
	o.SleeveStyles = slices.Clone(o.SleeveStyles)
	return o
}
