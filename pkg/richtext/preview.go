package richtext

import (
	"fmt"
	"html"
	"strings"

	"github.com/QTMarketing/lama-cms/pkg/blocks"
)

// widgetMeta maps a block type to its palette icon and label.
var widgetMeta = map[blocks.BlockType]struct {
	Icon  string
	Label string
}{
	blocks.TypeText:    {"📝", "Text"},
	blocks.TypeHeading: {"🔠", "Heading"},
	blocks.TypeImage:   {"🖼️", "Image"},
	blocks.TypeButton:  {"🔘", "Button"},
	blocks.TypeVideo:   {"🎬", "Video"},
	blocks.TypeGallery: {"🗂️", "Gallery"},
	blocks.TypeSpacer:  {"↕️", "Spacer"},
	blocks.TypeDivider: {"➖", "Divider"},
	blocks.TypeColumns: {"🏛️", "Columns"},
}

const previewTextLimit = 100

// RenderPreview produces the static HTML preview fragment shown inside a
// widget node: an icon and label header, an Empty/Configured status tag,
// and either a type-specific mini preview or a dashed placeholder inviting
// configuration. A nil block renders as an unknown, unconfigured widget.
func RenderPreview(b *blocks.Block) string {
	meta, known := widgetMeta[typeOf(b)]
	if !known {
		meta.Icon = "❔"
		meta.Label = "Widget"
	}

	configured := b.IsConfigured()
	status := "Empty"
	statusClass := "widget-status-empty"
	if configured {
		status = "Configured"
		statusClass = "widget-status-configured"
	}

	var sb strings.Builder
	sb.WriteString(`<div class="widget-preview">`)
	fmt.Fprintf(&sb,
		`<div class="widget-preview-header"><span class="widget-icon">%s</span><span class="widget-label">%s</span><span class="%s">%s</span></div>`,
		meta.Icon, html.EscapeString(meta.Label), statusClass, status,
	)
	if configured {
		sb.WriteString(`<div class="widget-preview-body">`)
		sb.WriteString(renderMiniPreview(b))
		sb.WriteString(`</div>`)
	} else {
		sb.WriteString(`<div class="widget-preview-placeholder">Click to configure this widget</div>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func typeOf(b *blocks.Block) blocks.BlockType {
	if b == nil {
		return ""
	}
	return b.Type
}

func renderMiniPreview(b *blocks.Block) string {
	switch b.Type {
	case blocks.TypeText:
		return html.EscapeString(truncate(b.ContentString("text"), previewTextLimit))
	case blocks.TypeHeading:
		level := 2.0
		if l, ok := b.ContentNumber("level"); ok {
			level = l
		}
		return fmt.Sprintf("<strong>H%d</strong> %s",
			int(level), html.EscapeString(truncate(b.ContentString("text"), previewTextLimit)))
	case blocks.TypeImage:
		src := b.ContentString("url")
		if src == "" {
			return ""
		}
		return fmt.Sprintf(`<img src="%s" alt="%s" style="max-height:80px">`,
			html.EscapeString(src), html.EscapeString(b.ContentString("alt")))
	case blocks.TypeButton:
		return fmt.Sprintf(`<span class="widget-button-chip">%s</span>`,
			html.EscapeString(b.ContentString("text")))
	case blocks.TypeVideo:
		src := b.ContentString("url")
		if src == "" {
			return ""
		}
		return fmt.Sprintf(`<iframe src="%s" frameborder="0" style="width:100%%;height:120px"></iframe>`,
			html.EscapeString(src))
	case blocks.TypeGallery:
		count := 0
		if imgs, ok := b.Content["images"].([]any); ok {
			count = len(imgs)
		}
		return fmt.Sprintf("%d image(s)", count)
	case blocks.TypeSpacer:
		h := 50.0
		if v, ok := b.ContentNumber("height"); ok {
			h = v
		}
		return fmt.Sprintf("%.0fpx vertical space", h)
	case blocks.TypeDivider:
		return "<hr>"
	case blocks.TypeColumns:
		n := 2.0
		if v, ok := b.ContentNumber("count"); ok {
			n = v
		}
		return fmt.Sprintf("%.0f columns", n)
	default:
		return ""
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
