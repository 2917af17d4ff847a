package richtext

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/QTMarketing/lama-cms/pkg/blocks"
)

// Serialize renders the document back to its HTML string form, the shape
// persisted in a blog post's content field. Encode/decode must be stable
// under repetition: widget inner preview HTML is regenerated from the
// embedded block on every serialization, never parsed back.
func Serialize(d *Document) string {
	var sb strings.Builder
	for _, n := range d.Nodes {
		serializeBlock(&sb, n)
	}
	return sb.String()
}

func serializeBlock(sb *strings.Builder, n *Node) {
	switch n.Type {
	case NodeParagraph:
		sb.WriteString("<p>")
		serializeInline(sb, n.Children)
		sb.WriteString("</p>")
	case NodeHeading:
		level := n.Level
		if level < 1 || level > 6 {
			level = 2
		}
		fmt.Fprintf(sb, "<h%d>", level)
		serializeInline(sb, n.Children)
		fmt.Fprintf(sb, "</h%d>", level)
	case NodeBulletList:
		sb.WriteString("<ul>")
		serializeListItems(sb, n.Children)
		sb.WriteString("</ul>")
	case NodeOrderedList:
		sb.WriteString("<ol>")
		serializeListItems(sb, n.Children)
		sb.WriteString("</ol>")
	case NodeBlockquote:
		sb.WriteString("<blockquote>")
		for _, c := range n.Children {
			serializeBlock(sb, c)
		}
		sb.WriteString("</blockquote>")
	case NodeHorizontalRule:
		sb.WriteString("<hr>")
	case NodeImage:
		serializeImage(sb, n.Attrs)
	case NodeWidget:
		serializeWidget(sb, n.Block)
	case NodeText:
		// Stray text at block level still renders.
		sb.WriteString(html.EscapeString(n.Text))
	}
}

func serializeListItems(sb *strings.Builder, items []*Node) {
	for _, item := range items {
		sb.WriteString("<li>")
		serializeInline(sb, item.Children)
		sb.WriteString("</li>")
	}
}

func serializeImage(sb *strings.Builder, attrs *ImageAttrs) {
	if attrs == nil {
		attrs = &ImageAttrs{}
	}
	sb.WriteString(`<img src="` + html.EscapeString(attrs.Src) + `"`)
	if attrs.Alt != "" {
		sb.WriteString(` alt="` + html.EscapeString(attrs.Alt) + `"`)
	}
	if attrs.Width > 0 {
		sb.WriteString(` data-width="` + strconv.FormatFloat(attrs.Width, 'f', -1, 64) + `"`)
	}
	if attrs.TextAlign != "" {
		sb.WriteString(` data-align="` + html.EscapeString(attrs.TextAlign) + `"`)
	}
	sb.WriteString(">")
}

func serializeWidget(sb *strings.Builder, b *blocks.Block) {
	sb.WriteString(`<div data-type="widget"`)
	if b != nil {
		if raw, err := blocks.Encode(*b); err == nil {
			sb.WriteString(` data-block="` + html.EscapeString(raw) + `"`)
		}
	}
	sb.WriteString(`>`)
	sb.WriteString(RenderPreview(b))
	sb.WriteString(`</div>`)
}

// serializeInline writes text nodes wrapping them in their mark elements.
// Marks nest in a fixed order (link outermost, then bold, then italic) so
// repeated round trips produce identical markup.
func serializeInline(sb *strings.Builder, nodes []*Node) {
	for _, n := range nodes {
		if n.Type != NodeText {
			serializeBlock(sb, n)
			continue
		}
		if href, ok := markHref(n); ok {
			sb.WriteString(`<a href="` + html.EscapeString(href) + `">`)
		}
		if n.HasMark(MarkBold) {
			sb.WriteString("<strong>")
		}
		if n.HasMark(MarkItalic) {
			sb.WriteString("<em>")
		}
		sb.WriteString(html.EscapeString(n.Text))
		if n.HasMark(MarkItalic) {
			sb.WriteString("</em>")
		}
		if n.HasMark(MarkBold) {
			sb.WriteString("</strong>")
		}
		if _, ok := markHref(n); ok {
			sb.WriteString("</a>")
		}
	}
}

func markHref(n *Node) (string, bool) {
	for _, m := range n.Marks {
		if m.Type == MarkLink {
			return m.Href, true
		}
	}
	return "", false
}
