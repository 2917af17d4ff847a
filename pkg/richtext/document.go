package richtext

import (
	"strings"

	"github.com/QTMarketing/lama-cms/pkg/blocks"
)

// NodeType identifies a node in the rich-text document tree.
type NodeType string

const (
	NodeParagraph      NodeType = "paragraph"
	NodeHeading        NodeType = "heading"
	NodeBulletList     NodeType = "bulletList"
	NodeOrderedList    NodeType = "orderedList"
	NodeListItem       NodeType = "listItem"
	NodeBlockquote     NodeType = "blockquote"
	NodeHorizontalRule NodeType = "horizontalRule"
	NodeImage          NodeType = "image"
	NodeWidget         NodeType = "widget"
	NodeText           NodeType = "text"
)

// MarkType identifies an inline formatting mark on a text node.
type MarkType string

const (
	MarkBold   MarkType = "bold"
	MarkItalic MarkType = "italic"
	MarkLink   MarkType = "link"
)

// Mark is one inline formatting annotation. Link marks carry an href.
type Mark struct {
	Type MarkType
	Href string
}

// ImageAttrs are the attributes of an image node. Width and alignment are
// carried in data-* attributes on the serialized element.
type ImageAttrs struct {
	Src       string
	Alt       string
	Width     float64
	TextAlign string
}

// Node is one node of the document tree. Image and widget nodes are atomic:
// they never hold children and clicks on them must not place a text cursor
// inside. A widget node's embedded Block is the single source of truth for
// its rendered preview; a nil Block means the data-block attribute was
// missing or malformed and the node renders the unconfigured placeholder.
type Node struct {
	Type     NodeType
	Children []*Node
	Text     string
	Marks    []Mark
	Level    int
	Attrs    *ImageAttrs
	Block    *blocks.Block
}

// Document is the parsed rich-text tree. Nodes are the top-level blocks in
// order.
type Document struct {
	Nodes []*Node
}

// HasMark reports whether the text node carries the mark type.
func (n *Node) HasMark(t MarkType) bool {
	for _, m := range n.Marks {
		if m.Type == t {
			return true
		}
	}
	return false
}

// Atomic reports whether the node is non-editable as text.
func (n *Node) Atomic() bool {
	return n.Type == NodeImage || n.Type == NodeWidget || n.Type == NodeHorizontalRule
}

// plainText flattens the node's inline content.
func (n *Node) plainText() string {
	if n.Type == NodeText {
		return n.Text
	}
	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(c.plainText())
	}
	return sb.String()
}

// Pos addresses a character offset inside a top-level block.
type Pos struct {
	Block  int
	Offset int
}

// Selection is a pair of document positions. Anchor equals Head for a
// collapsed cursor.
type Selection struct {
	Anchor Pos
	Head   Pos
}

// Collapsed reports whether the selection is a bare cursor with no range.
func (s Selection) Collapsed() bool {
	return s.Anchor == s.Head
}

// Ordered returns the selection endpoints in document order.
func (s Selection) Ordered() (Pos, Pos) {
	if s.Anchor.Block < s.Head.Block ||
		(s.Anchor.Block == s.Head.Block && s.Anchor.Offset <= s.Head.Offset) {
		return s.Anchor, s.Head
	}
	return s.Head, s.Anchor
}

// Caret returns a collapsed selection at the position.
func Caret(p Pos) Selection {
	return Selection{Anchor: p, Head: p}
}

// BlockAt returns the top-level node at the index, or nil when out of range.
func (d *Document) BlockAt(i int) *Node {
	if i < 0 || i >= len(d.Nodes) {
		return nil
	}
	return d.Nodes[i]
}

// BlockText returns the plain text of the top-level block at the index.
func (d *Document) BlockText(i int) string {
	n := d.BlockAt(i)
	if n == nil || n.Atomic() {
		return ""
	}
	return n.plainText()
}

// TextBefore returns the text of the block before the cursor offset.
// Observers use it to detect the slash trigger.
func (d *Document) TextBefore(p Pos) string {
	text := d.BlockText(p.Block)
	if p.Offset < 0 {
		return ""
	}
	if p.Offset > len(text) {
		return text
	}
	return text[:p.Offset]
}

// Empty reports whether the document holds no content at all.
func (d *Document) Empty() bool {
	if len(d.Nodes) == 0 {
		return true
	}
	for _, n := range d.Nodes {
		if n.Atomic() || n.plainText() != "" || len(n.Children) > 0 {
			return false
		}
	}
	return true
}

// NewDocument returns a document with a single empty paragraph, the minimal
// editable state.
func NewDocument() *Document {
	return &Document{Nodes: []*Node{{Type: NodeParagraph}}}
}

func textNode(text string, marks ...Mark) *Node {
	return &Node{Type: NodeText, Text: text, Marks: marks}
}
