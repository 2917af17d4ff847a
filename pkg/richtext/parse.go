package richtext

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/QTMarketing/lama-cms/pkg/blocks"
)

// Parse re-hydrates a document from its serialized HTML form. Parsing is
// tolerant by contract: unknown elements are descended into, and a widget
// node with a missing or malformed data-block attribute becomes a widget
// with a nil Block instead of failing the whole document.
func Parse(content string) (*Document, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(content), ctx)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	for _, n := range nodes {
		doc.Nodes = append(doc.Nodes, parseBlocks(n)...)
	}
	if len(doc.Nodes) == 0 {
		doc.Nodes = []*Node{{Type: NodeParagraph}}
	}
	return doc, nil
}

// parseBlocks maps one HTML node to zero or more block-level document nodes.
func parseBlocks(n *html.Node) []*Node {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		// Stray top-level text gets its own paragraph.
		return []*Node{{Type: NodeParagraph, Children: []*Node{textNode(n.Data)}}}
	case html.ElementNode:
		// handled below
	default:
		return nil
	}

	switch n.DataAtom {
	case atom.P:
		return []*Node{{Type: NodeParagraph, Children: parseInline(n, nil)}}
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		level := int(n.Data[1] - '0')
		return []*Node{{Type: NodeHeading, Level: level, Children: parseInline(n, nil)}}
	case atom.Ul:
		return []*Node{{Type: NodeBulletList, Children: parseListItems(n)}}
	case atom.Ol:
		return []*Node{{Type: NodeOrderedList, Children: parseListItems(n)}}
	case atom.Blockquote:
		quote := &Node{Type: NodeBlockquote}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			quote.Children = append(quote.Children, parseBlocks(c)...)
		}
		if len(quote.Children) == 0 {
			quote.Children = []*Node{{Type: NodeParagraph}}
		}
		return []*Node{quote}
	case atom.Hr:
		return []*Node{{Type: NodeHorizontalRule}}
	case atom.Img:
		return []*Node{parseImage(n)}
	case atom.Div:
		if attrValue(n, "data-type") == "widget" {
			return []*Node{{
				Type:  NodeWidget,
				Block: blocks.Decode(attrValue(n, "data-block")),
			}}
		}
		fallthrough
	default:
		var out []*Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			out = append(out, parseBlocks(c)...)
		}
		return out
	}
}

func parseListItems(n *html.Node) []*Node {
	var items []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Li {
			continue
		}
		items = append(items, &Node{Type: NodeListItem, Children: parseInline(c, nil)})
	}
	return items
}

func parseImage(n *html.Node) *Node {
	attrs := &ImageAttrs{
		Src: attrValue(n, "src"),
		Alt: attrValue(n, "alt"),
	}
	if w := attrValue(n, "data-width"); w != "" {
		if f, err := strconv.ParseFloat(w, 64); err == nil {
			attrs.Width = f
		}
	}
	attrs.TextAlign = attrValue(n, "data-align")
	return &Node{Type: NodeImage, Attrs: attrs}
}

// parseInline flattens the inline content of a block element into text
// nodes, accumulating marks while descending through formatting elements.
func parseInline(n *html.Node, marks []Mark) []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if c.Data == "" {
				continue
			}
			out = append(out, textNode(c.Data, marks...))
		case html.ElementNode:
			switch c.DataAtom {
			case atom.Strong, atom.B:
				out = append(out, parseInline(c, appendMark(marks, Mark{Type: MarkBold}))...)
			case atom.Em, atom.I:
				out = append(out, parseInline(c, appendMark(marks, Mark{Type: MarkItalic}))...)
			case atom.A:
				link := Mark{Type: MarkLink, Href: attrValue(c, "href")}
				out = append(out, parseInline(c, appendMark(marks, link))...)
			case atom.Br:
				out = append(out, textNode("\n", marks...))
			default:
				out = append(out, parseInline(c, marks)...)
			}
		}
	}
	return out
}

func appendMark(marks []Mark, m Mark) []Mark {
	out := make([]Mark, 0, len(marks)+1)
	for _, existing := range marks {
		if existing.Type == m.Type {
			continue
		}
		out = append(out, existing)
	}
	return append(out, m)
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
