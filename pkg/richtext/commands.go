package richtext

import (
	"github.com/QTMarketing/lama-cms/pkg/blocks"
)

// Document commands. Each command is one transaction against the live tree:
// it either applies fully or leaves the document untouched. Commands mutate
// the document in place - during an editing session the document is the
// single source of truth and observers re-read it on every event.

// DeleteRange removes the text between the selection endpoints. A collapsed
// selection is a no-op. Atomic nodes fully inside the range are removed;
// text start and end blocks are trimmed and merged. A range anchored on an
// atom removes the atom and keeps the trimmed end block standalone.
func DeleteRange(d *Document, sel Selection) {
	if sel.Collapsed() {
		return
	}
	start, end := sel.Ordered()
	if start.Block == end.Block {
		n := d.BlockAt(start.Block)
		if n == nil || n.Atomic() {
			return
		}
		n.Children = spliceInline(n.Children, start.Offset, end.Offset, nil)
		return
	}

	startNode := d.BlockAt(start.Block)
	endNode := d.BlockAt(end.Block)
	if startNode == nil || endNode == nil {
		return
	}
	if startNode.Atomic() {
		// The start atom sits inside the range: drop it along with the
		// interior, keeping the trimmed end block as its own node instead
		// of merging into a node the serializer renders without children.
		rest := make([]*Node, 0, len(d.Nodes))
		rest = append(rest, d.Nodes[:start.Block]...)
		if !endNode.Atomic() {
			endNode.Children = spliceInline(endNode.Children, 0, end.Offset, nil)
			rest = append(rest, endNode)
		}
		if end.Block+1 < len(d.Nodes) {
			rest = append(rest, d.Nodes[end.Block+1:]...)
		}
		if len(rest) == 0 {
			rest = []*Node{{Type: NodeParagraph}}
		}
		d.Nodes = rest
		return
	}
	startNode.Children = spliceInline(startNode.Children, start.Offset, len(startNode.plainText()), nil)
	var tail []*Node
	if !endNode.Atomic() {
		tail = spliceInline(endNode.Children, 0, end.Offset, nil)
	}
	startNode.Children = append(startNode.Children, tail...)

	// Drop everything between the trimmed start block and the merged end
	// block, inclusive of the end block itself.
	rest := make([]*Node, 0, len(d.Nodes))
	rest = append(rest, d.Nodes[:start.Block+1]...)
	if end.Block+1 < len(d.Nodes) {
		rest = append(rest, d.Nodes[end.Block+1:]...)
	}
	d.Nodes = rest
}

// InsertText inserts plain text at the caret, replacing any active range.
func InsertText(d *Document, sel Selection, text string) Pos {
	DeleteRange(d, sel)
	start, _ := sel.Ordered()
	n := d.BlockAt(start.Block)
	if n == nil || n.Atomic() {
		return start
	}
	n.Children = spliceInline(n.Children, start.Offset, start.Offset, []*Node{textNode(text)})
	return Pos{Block: start.Block, Offset: start.Offset + len(text)}
}

// InsertWidget inserts a new atomic widget node at the cursor position,
// embedding a copy of the given block. A non-empty selection is replaced.
// Splitting happens at the caret: text after the cursor moves into a new
// trailing block of the same type.
func InsertWidget(d *Document, sel Selection, b blocks.Block) int {
	return insertAtomic(d, sel, &Node{Type: NodeWidget, Block: b.Clone()})
}

// InsertImage inserts an image node at the cursor position, replacing any
// active selection. Used by the upload modal and by the drop/paste side
// entry points.
func InsertImage(d *Document, sel Selection, attrs ImageAttrs) int {
	a := attrs
	return insertAtomic(d, sel, &Node{Type: NodeImage, Attrs: &a})
}

// InsertHorizontalRule inserts a separator at the cursor position.
func InsertHorizontalRule(d *Document, sel Selection) int {
	return insertAtomic(d, sel, &Node{Type: NodeHorizontalRule})
}

func insertAtomic(d *Document, sel Selection, node *Node) int {
	DeleteRange(d, sel)
	start, _ := sel.Ordered()
	host := d.BlockAt(start.Block)
	if host == nil {
		d.Nodes = append(d.Nodes, node)
		return len(d.Nodes) - 1
	}
	if host.Atomic() {
		// Cannot split an atom; insert after it.
		d.Nodes = insertNodeAt(d.Nodes, start.Block+1, node)
		return start.Block + 1
	}

	text := host.plainText()
	if start.Offset <= 0 {
		d.Nodes = insertNodeAt(d.Nodes, start.Block, node)
		return start.Block
	}
	if start.Offset >= len(text) {
		d.Nodes = insertNodeAt(d.Nodes, start.Block+1, node)
		return start.Block + 1
	}

	// Split the host block at the caret.
	tail := &Node{Type: host.Type, Level: host.Level}
	tail.Children = spliceInline(host.Children, 0, start.Offset, nil)
	host.Children = spliceInline(host.Children, start.Offset, len(text), nil)
	d.Nodes = insertNodeAt(d.Nodes, start.Block+1, node)
	d.Nodes = insertNodeAt(d.Nodes, start.Block+2, tail)
	return start.Block + 1
}

// ToggleHeading converts the block at the index to a heading of the given
// level, or back to a paragraph when it already is one.
func ToggleHeading(d *Document, blockIndex, level int) {
	n := d.BlockAt(blockIndex)
	if n == nil || n.Atomic() {
		return
	}
	if n.Type == NodeHeading && n.Level == level {
		n.Type = NodeParagraph
		n.Level = 0
		return
	}
	if n.Type == NodeParagraph || n.Type == NodeHeading {
		n.Type = NodeHeading
		n.Level = level
	}
}

// ToggleBulletList wraps the block in a single-item bullet list, or unwraps
// a list back into paragraphs.
func ToggleBulletList(d *Document, blockIndex int) {
	toggleList(d, blockIndex, NodeBulletList)
}

// ToggleOrderedList wraps the block in a single-item ordered list, or
// unwraps it.
func ToggleOrderedList(d *Document, blockIndex int) {
	toggleList(d, blockIndex, NodeOrderedList)
}

func toggleList(d *Document, blockIndex int, listType NodeType) {
	n := d.BlockAt(blockIndex)
	if n == nil {
		return
	}
	switch n.Type {
	case listType:
		// Unwrap: each item becomes a paragraph.
		paras := make([]*Node, 0, len(n.Children))
		for _, item := range n.Children {
			paras = append(paras, &Node{Type: NodeParagraph, Children: item.Children})
		}
		if len(paras) == 0 {
			paras = []*Node{{Type: NodeParagraph}}
		}
		d.Nodes = replaceNodeAt(d.Nodes, blockIndex, paras...)
	case NodeParagraph, NodeHeading:
		item := &Node{Type: NodeListItem, Children: n.Children}
		d.Nodes[blockIndex] = &Node{Type: listType, Children: []*Node{item}}
	}
}

// ToggleBlockquote wraps the block in a blockquote, or unwraps one.
func ToggleBlockquote(d *Document, blockIndex int) {
	n := d.BlockAt(blockIndex)
	if n == nil {
		return
	}
	switch n.Type {
	case NodeBlockquote:
		inner := n.Children
		if len(inner) == 0 {
			inner = []*Node{{Type: NodeParagraph}}
		}
		d.Nodes = replaceNodeAt(d.Nodes, blockIndex, inner...)
	case NodeParagraph, NodeHeading:
		d.Nodes[blockIndex] = &Node{Type: NodeBlockquote, Children: []*Node{n}}
	}
}

// ToggleMark toggles an inline mark over the selection: when every covered
// text node already carries the mark it is removed, otherwise it is added.
func ToggleMark(d *Document, sel Selection, mark MarkType) {
	applyMark(d, sel, Mark{Type: mark}, false)
}

// ApplyLink applies a link mark with the given href over the selection. An
// empty href removes the link instead.
func ApplyLink(d *Document, sel Selection, href string) {
	if href == "" {
		removeMark(d, sel, MarkLink)
		return
	}
	applyMark(d, sel, Mark{Type: MarkLink, Href: href}, true)
}

func applyMark(d *Document, sel Selection, mark Mark, force bool) {
	if sel.Collapsed() {
		return
	}
	covered := coveredTextNodes(d, sel)
	if len(covered) == 0 {
		return
	}
	all := true
	for _, n := range covered {
		if !n.HasMark(mark.Type) {
			all = false
			break
		}
	}
	if all && !force {
		for _, n := range covered {
			n.Marks = withoutMark(n.Marks, mark.Type)
		}
		return
	}
	for _, n := range covered {
		n.Marks = appendMark(n.Marks, mark)
	}
}

func removeMark(d *Document, sel Selection, t MarkType) {
	for _, n := range coveredTextNodes(d, sel) {
		n.Marks = withoutMark(n.Marks, t)
	}
}

// coveredTextNodes splits text nodes at the selection boundaries and
// returns every text node fully inside the range.
func coveredTextNodes(d *Document, sel Selection) []*Node {
	start, end := sel.Ordered()
	var out []*Node
	for bi := start.Block; bi <= end.Block && bi < len(d.Nodes); bi++ {
		n := d.Nodes[bi]
		if n.Atomic() {
			continue
		}
		from := 0
		to := len(n.plainText())
		if bi == start.Block {
			from = start.Offset
		}
		if bi == end.Block {
			to = end.Offset
		}
		if from >= to {
			continue
		}
		switch n.Type {
		case NodeParagraph, NodeHeading:
			n.Children = splitInlineAt(n.Children, from)
			n.Children = splitInlineAt(n.Children, to)
			out = append(out, textNodesBetween(n.Children, from, to)...)
		default:
			// Containers (lists, blockquotes) are covered wholesale.
			out = append(out, collectTextNodes(n)...)
		}
	}
	return out
}

func collectTextNodes(n *Node) []*Node {
	if n.Type == NodeText {
		return []*Node{n}
	}
	var out []*Node
	for _, c := range n.Children {
		out = append(out, collectTextNodes(c)...)
	}
	return out
}

func withoutMark(marks []Mark, t MarkType) []Mark {
	out := make([]Mark, 0, len(marks))
	for _, m := range marks {
		if m.Type == t {
			continue
		}
		out = append(out, m)
	}
	return out
}

// splitInlineAt splits the text node straddling the offset into two nodes
// with identical marks, so a mark boundary can fall exactly at the offset.
func splitInlineAt(children []*Node, offset int) []*Node {
	pos := 0
	for i, c := range children {
		if c.Type != NodeText {
			pos += len(c.plainText())
			continue
		}
		next := pos + len(c.Text)
		if offset > pos && offset < next {
			cut := offset - pos
			left := textNode(c.Text[:cut], c.Marks...)
			right := textNode(c.Text[cut:], c.Marks...)
			out := make([]*Node, 0, len(children)+1)
			out = append(out, children[:i]...)
			out = append(out, left, right)
			out = append(out, children[i+1:]...)
			return out
		}
		pos = next
	}
	return children
}

// textNodesBetween returns the text nodes whose span lies inside [from, to).
func textNodesBetween(children []*Node, from, to int) []*Node {
	var out []*Node
	pos := 0
	for _, c := range children {
		width := len(c.plainText())
		if c.Type == NodeText && pos >= from && pos+width <= to && width > 0 {
			out = append(out, c)
		}
		pos += width
	}
	return out
}

// spliceInline replaces the inline text range [from, to) with the given
// replacement nodes, splitting boundary text nodes first so every node lies
// entirely inside or outside the range.
func spliceInline(children []*Node, from, to int, replacement []*Node) []*Node {
	children = splitInlineAt(children, from)
	children = splitInlineAt(children, to)
	out := make([]*Node, 0, len(children)+len(replacement))
	pos := 0
	inserted := false
	for _, c := range children {
		width := len(c.plainText())
		if pos >= from && !inserted {
			out = append(out, replacement...)
			inserted = true
		}
		dropped := width > 0 && pos >= from && pos+width <= to
		if !dropped {
			out = append(out, c)
		}
		pos += width
	}
	if !inserted {
		out = append(out, replacement...)
	}
	return out
}

func insertNodeAt(nodes []*Node, index int, n *Node) []*Node {
	if index < 0 {
		index = 0
	}
	if index > len(nodes) {
		index = len(nodes)
	}
	out := make([]*Node, 0, len(nodes)+1)
	out = append(out, nodes[:index]...)
	out = append(out, n)
	out = append(out, nodes[index:]...)
	return out
}

func replaceNodeAt(nodes []*Node, index int, replacement ...*Node) []*Node {
	out := make([]*Node, 0, len(nodes)-1+len(replacement))
	out = append(out, nodes[:index]...)
	out = append(out, replacement...)
	out = append(out, nodes[index+1:]...)
	return out
}
