// internal/domain/studio/preview.go
package studio

// previewFallbackText is shown on the garment while the text field is empty
const previewFallbackText = "YOUR DESIGN"

// Transform positions the embroidery overlay on the product image.
// Translations are percentages of the image box, rotation is in degrees.
type Transform struct {
	TranslateX float64 `json:"translate_x"`
	TranslateY float64 `json:"translate_y"`
	Rotate     float64 `json:"rotate"`
	Scale      float64 `json:"scale"`
	Opacity    float64 `json:"opacity"`
}

// Preview describes the live mock-up of a design: a text overlay placed on
// the product image. Clients composite it; nothing is rendered server-side.
type Preview struct {
	ProductID   string    `json:"product_id"`
	Text        string    `json:"text"`
	Font        string    `json:"font"`
	ThreadColor string    `json:"thread_color"`
	ThreadName  string    `json:"thread_name"`
	BaseColor   string    `json:"base_color"`
	Placement   string    `json:"placement"`
	Overlay     Transform `json:"overlay"`
}

var placementTransforms = map[string]Transform{
	"chest":        {TranslateX: 5, TranslateY: -10, Scale: 1, Opacity: 1},
	"back":         {TranslateY: -5, Scale: 1.5, Opacity: 0.4},
	"sleeve-left":  {TranslateX: -30, Rotate: -20, Scale: 0.75, Opacity: 1},
	"sleeve-right": {TranslateX: 30, Rotate: 20, Scale: 0.75, Opacity: 1},
}

// Preview builds the overlay descriptor for s
func (m *Model) Preview(s State) Preview {
	text := s.Text
	if text == "" {
		text = previewFallbackText
	}

	overlay, ok := placementTransforms[s.Placement]
	if !ok {
		overlay = Transform{Scale: 1, Opacity: 1}
	}

	thread, _ := m.options.ThreadColor(s.ThreadColor)

	return Preview{
		ProductID:   s.ProductID,
		Text:        text,
		Font:        s.Font,
		ThreadColor: s.ThreadColor,
		ThreadName:  thread.Name,
		BaseColor:   s.BaseColor,
		Placement:   s.Placement,
		Overlay:     overlay,
	}
}
