package blocks

// BlockType identifies the closed set of composable content blocks.
type BlockType string

const (
	TypeText    BlockType = "text"
	TypeHeading BlockType = "heading"
	TypeImage   BlockType = "image"
	TypeButton  BlockType = "button"
	TypeVideo   BlockType = "video"
	TypeGallery BlockType = "gallery"
	TypeSpacer  BlockType = "spacer"
	TypeDivider BlockType = "divider"
	TypeColumns BlockType = "columns"
)

// AllTypes lists every valid block type, in palette order.
var AllTypes = []BlockType{
	TypeText, TypeHeading, TypeImage, TypeButton, TypeVideo,
	TypeGallery, TypeSpacer, TypeDivider, TypeColumns,
}

// IsValidType reports whether t belongs to the closed block type set.
func IsValidType(t BlockType) bool {
	for _, v := range AllTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Block is a unit of composable content. It is a value type: the page
// builder tree and the rich-text document each own their own copies, and
// moving a block between the two always embeds a copy.
//
// Content is a type-dependent payload. Its shape is not validated here;
// consumers must treat nil or missing fields as "empty - render a
// configuration placeholder" rather than fail.
type Block struct {
	Id       string         `json:"id"`
	Type     BlockType      `json:"type"`
	Content  map[string]any `json:"content,omitempty"`
	Styles   *Styles        `json:"styles,omitempty"`
	Settings *Settings      `json:"settings,omitempty"`
}

// Sides holds a four-sided pixel value (padding or margin).
type Sides struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Styles are the optional visual properties of a block.
type Styles struct {
	Padding         *Sides  `json:"padding,omitempty"`
	Margin          *Sides  `json:"margin,omitempty"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	TextColor       string  `json:"textColor,omitempty"`
	FontSize        float64 `json:"fontSize,omitempty"`
	FontWeight      string  `json:"fontWeight,omitempty"`
	TextAlign       string  `json:"textAlign,omitempty"`
	BorderRadius    float64 `json:"borderRadius,omitempty"`
	BorderWidth     float64 `json:"borderWidth,omitempty"`
	BorderStyle     string  `json:"borderStyle,omitempty"`
	Width           string  `json:"width,omitempty"`
	Height          string  `json:"height,omitempty"`
	MaxWidth        string  `json:"maxWidth,omitempty"`
}

// Visibility holds per-breakpoint visibility flags. A nil pointer means
// "visible" so that zero-value settings change nothing.
type Visibility struct {
	Desktop *bool `json:"desktop,omitempty"`
	Tablet  *bool `json:"tablet,omitempty"`
	Mobile  *bool `json:"mobile,omitempty"`
}

// Settings are the optional responsive and behavioral overrides of a block.
type Settings struct {
	Animation  string             `json:"animation,omitempty"`
	Visibility *Visibility        `json:"visibility,omitempty"`
	Responsive map[string]*Styles `json:"responsive,omitempty"` // keyed by breakpoint
}

// IsConfigured reports whether the block carries any usable content.
// Unconfigured blocks render as a dashed placeholder inviting configuration.
func (b *Block) IsConfigured() bool {
	if b == nil || len(b.Content) == 0 {
		return false
	}
	for _, v := range b.Content {
		switch val := v.(type) {
		case string:
			if val != "" {
				return true
			}
		case []any:
			if len(val) > 0 {
				return true
			}
		case nil:
			// skip
		default:
			return true
		}
	}
	return false
}

// ContentString returns a string field from the content payload,
// tolerating a missing key or a non-string value.
func (b *Block) ContentString(key string) string {
	if b == nil || b.Content == nil {
		return ""
	}
	if s, ok := b.Content[key].(string); ok {
		return s
	}
	return ""
}

// ContentNumber returns a numeric field from the content payload. JSON
// decoding always yields float64 for numbers, so that is the only numeric
// shape consulted.
func (b *Block) ContentNumber(key string) (float64, bool) {
	if b == nil || b.Content == nil {
		return 0, false
	}
	if f, ok := b.Content[key].(float64); ok {
		return f, true
	}
	return 0, false
}

// Clone returns a deep copy of the block. Embedding a block into another
// aggregate (builder tree <-> rich-text document) must go through Clone so
// the two trees never share mutable state.
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}
	out := *b
	out.Content = cloneContent(b.Content)
	if b.Styles != nil {
		s := *b.Styles
		if b.Styles.Padding != nil {
			p := *b.Styles.Padding
			s.Padding = &p
		}
		if b.Styles.Margin != nil {
			m := *b.Styles.Margin
			s.Margin = &m
		}
		out.Styles = &s
	}
	if b.Settings != nil {
		st := *b.Settings
		if b.Settings.Visibility != nil {
			v := *b.Settings.Visibility
			st.Visibility = &v
		}
		if b.Settings.Responsive != nil {
			st.Responsive = make(map[string]*Styles, len(b.Settings.Responsive))
			for k, rv := range b.Settings.Responsive {
				if rv == nil {
					st.Responsive[k] = nil
					continue
				}
				c := *rv
				st.Responsive[k] = &c
			}
		}
		out.Settings = &st
	}
	return &out
}

func cloneContent(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = cloneValue(v)
	}
	return dst
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneContent(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
