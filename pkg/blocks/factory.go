package blocks

import "github.com/google/uuid"

// New constructs a block of the given type with a fresh id and
// type-appropriate default content and styles. Pure construction, no side
// effects. Numeric defaults are float64 so a block round-trips through JSON
// field-for-field.
func New(t BlockType) Block {
	b := Block{
		Id:   uuid.New().String(),
		Type: t,
	}

	switch t {
	case TypeText:
		b.Content = map[string]any{"text": ""}
		b.Styles = &Styles{FontSize: 16, TextColor: "#374151"}
	case TypeHeading:
		b.Content = map[string]any{"text": "", "level": float64(2)}
		b.Styles = &Styles{FontWeight: "bold", TextColor: "#111827"}
	case TypeImage:
		b.Content = map[string]any{"url": "", "alt": ""}
		b.Styles = &Styles{Width: "100%"}
	case TypeButton:
		b.Content = map[string]any{"text": "Click Here", "url": "", "target": "_self"}
		b.Styles = &Styles{
			BackgroundColor: "#2563EB",
			TextColor:       "#FFFFFF",
			BorderRadius:    6,
			Padding:         &Sides{Top: 10, Right: 20, Bottom: 10, Left: 20},
		}
	case TypeVideo:
		b.Content = map[string]any{"url": ""}
		b.Styles = &Styles{Width: "100%"}
	case TypeGallery:
		b.Content = map[string]any{"images": []any{}}
	case TypeSpacer:
		b.Content = map[string]any{"height": float64(50)}
	case TypeDivider:
		b.Content = map[string]any{}
		b.Styles = &Styles{BorderStyle: "solid", BorderWidth: 1, BackgroundColor: "#E5E7EB"}
	case TypeColumns:
		b.Content = map[string]any{"count": float64(2)}
	default:
		// Unknown types still get a usable empty block; rendering degrades
		// to the configuration placeholder.
		b.Content = map[string]any{}
	}

	return b
}

// Patch is a shallow partial update of a block. Content keys merge into the
// existing payload; Styles and Settings replace wholesale when non-nil.
type Patch struct {
	Content  map[string]any `json:"content,omitempty"`
	Styles   *Styles        `json:"styles,omitempty"`
	Settings *Settings      `json:"settings,omitempty"`
}

// Apply merges the patch into a copy of the block and returns it. The
// receiver is never mutated.
func (p Patch) Apply(b Block) Block {
	out := *b.Clone()
	if p.Content != nil {
		if out.Content == nil {
			out.Content = make(map[string]any, len(p.Content))
		}
		for k, v := range p.Content {
			out.Content[k] = cloneValue(v)
		}
	}
	if p.Styles != nil {
		s := *p.Styles
		out.Styles = &s
	}
	if p.Settings != nil {
		st := *p.Settings
		out.Settings = &st
	}
	return out
}
