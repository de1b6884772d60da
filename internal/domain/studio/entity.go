// internal/domain/studio/entity.go
package studio

// OptionKind names one selectable field of a design
type OptionKind string

const (
	KindBaseColor   OptionKind = "base_color"
	KindSize        OptionKind = "size"
	KindFit         OptionKind = "fit"
	KindFabric      OptionKind = "fabric"
	KindText        OptionKind = "text"
	KindFont        OptionKind = "font"
	KindThreadColor OptionKind = "thread_color"
	KindPlacement   OptionKind = "placement"
	KindCollar      OptionKind = "collar"
	KindStitching   OptionKind = "stitching"
	KindSleeve      OptionKind = "sleeve"
)

// OptionKinds lists every kind ApplyOption accepts
var OptionKinds = []OptionKind{
	KindBaseColor, KindSize, KindFit, KindFabric, KindText, KindFont,
	KindThreadColor, KindPlacement, KindCollar, KindStitching, KindSleeve,
}

// StyleDetails holds the garment construction selections
type StyleDetails struct {
	Collar    string `json:"collar"`
	Stitching string `json:"stitching"`
	Sleeve    string `json:"sleeve"`
}

// State is a fully priced design for one product. Price is derived and is
// recomputed on every option change; never set it directly.
type State struct {
	ProductID   string        `json:"product_id"`
	BaseColor   string        `json:"base_color"`
	Size        string        `json:"size"`
	Fit         string        `json:"fit"`
	Fabric      string        `json:"fabric"`
	Text        string        `json:"text"`
	Font        string        `json:"font"`
	ThreadColor string        `json:"thread_color"`
	Placement   string        `json:"placement"`
	Details     *StyleDetails `json:"details,omitempty"`
	Price       int64         `json:"price"`
}

// Clone returns a copy sharing no memory with s
func (s State) Clone() State {
	if s.Details != nil {
		d := *s.Details
		s.Details = &d
	}
	return s
}

// ToCartSnapshot returns an independent copy of s for attaching to a cart
// line. Later edits to the live studio design never reach the snapshot.
func ToCartSnapshot(s State) *State {
	snapshot := s.Clone()
	return &snapshot
}
