package richtext

import (
	"github.com/google/uuid"

	"github.com/QTMarketing/lama-cms/pkg/blocks"
)

// Widget editing bridge. Positions shift as the document edits, so a widget
// node is never addressed by a captured tree position: every operation
// re-resolves the node by the embedded block's id immediately before
// writing, and no-ops safely when resolution finds no match or a node of
// the wrong type.

// FindWidget locates the widget node carrying the block with the given id.
// Returns the top-level index, the node, and whether it was found.
func FindWidget(d *Document, blockId string) (int, *Node, bool) {
	for i, n := range d.Nodes {
		if n.Type == NodeWidget && n.Block != nil && n.Block.Id == blockId {
			return i, n, true
		}
	}
	return 0, nil, false
}

// UpdateWidget overwrites the embedded block of the widget node matching
// the block id. Only the block payload changes; the node itself stays in
// place. The id of the embedded block is preserved regardless of the id on
// the replacement value. Returns false (and changes nothing) when no
// matching widget node exists.
func UpdateWidget(d *Document, blockId string, replacement blocks.Block) bool {
	_, n, ok := FindWidget(d, blockId)
	if !ok || n.Type != NodeWidget {
		return false
	}
	updated := replacement.Clone()
	updated.Id = blockId
	n.Block = updated
	return true
}

// PatchWidget shallow-merges a partial update into the widget's embedded
// block, resolving by id the same way UpdateWidget does.
func PatchWidget(d *Document, blockId string, patch blocks.Patch) bool {
	_, n, ok := FindWidget(d, blockId)
	if !ok || n.Type != NodeWidget || n.Block == nil {
		return false
	}
	updated := patch.Apply(*n.Block)
	n.Block = &updated
	return true
}

// RemoveWidget deletes the widget node's entire span from the document.
func RemoveWidget(d *Document, blockId string) bool {
	i, _, ok := FindWidget(d, blockId)
	if !ok {
		return false
	}
	d.Nodes = append(d.Nodes[:i], d.Nodes[i+1:]...)
	if len(d.Nodes) == 0 {
		d.Nodes = []*Node{{Type: NodeParagraph}}
	}
	return true
}

// ReassignWidgetIds regenerates the id of every embedded widget block.
// Applied when document HTML is pasted or imported across pages so block
// ids never collide between documents.
func ReassignWidgetIds(d *Document) {
	for _, n := range d.Nodes {
		if n.Type == NodeWidget && n.Block != nil {
			b := n.Block.Clone()
			b.Id = uuid.New().String()
			n.Block = b
		}
	}
}
