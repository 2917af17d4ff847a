// Package overlay derives the visibility and placement of the three
// cursor-driven editor menus (floating insert menu, slash command menu,
// bubble format menu) from raw selection state. The three affordances are
// modeled as one tagged union resolved by a single pure function, which
// structurally guarantees that at most one overlay is ever visible.
package overlay

import (
	"github.com/QTMarketing/lama-cms/pkg/richtext"
)

// Kind tags the overlay state union.
type Kind int

const (
	KindHidden Kind = iota
	KindInsertMenu
	KindSlashMenu
	KindBubbleMenu
)

func (k Kind) String() string {
	switch k {
	case KindInsertMenu:
		return "insert-menu"
	case KindSlashMenu:
		return "slash-menu"
	case KindBubbleMenu:
		return "bubble-menu"
	default:
		return "hidden"
	}
}

// State is the resolved overlay state. Exactly one overlay kind is active
// at a time. Insert menu expansion and the slash menu highlight are client
// concerns (see SlashMenu); State carries only what Resolve derives.
type State struct {
	Kind     Kind
	Position Point
}

// Hidden is the resting state.
var Hidden = State{Kind: KindHidden}

// SelectionContext is everything Resolve needs from a document session:
// the logical selection plus the on-screen geometry supplied by the caller.
// It is recomputed synchronously on every update/selectionUpdate event;
// there is no debouncing.
type SelectionContext struct {
	Selection richtext.Selection

	// EnclosingType is the type of the block immediately enclosing the
	// cursor.
	EnclosingType richtext.NodeType

	// InAtomAncestor is true when the cursor sits inside an image or
	// widget ancestor at any depth.
	InAtomAncestor bool

	// TextBefore is the text of the current paragraph before the cursor.
	TextBefore string

	// HasTextRange is true when a non-collapsed selection covers at least
	// one character of text.
	HasTextRange bool

	// Geometry, all in viewport coordinates.
	Cursor         Rect
	SelectionStart Rect
	SelectionEnd   Rect
	Container      Rect
	Viewport       Rect
}

// ContextFor builds a SelectionContext from a document and selection,
// leaving geometry for the caller to fill in.
func ContextFor(d *richtext.Document, sel richtext.Selection) SelectionContext {
	ctx := SelectionContext{Selection: sel}
	start, end := sel.Ordered()
	if n := d.BlockAt(start.Block); n != nil {
		ctx.EnclosingType = n.Type
		ctx.InAtomAncestor = n.Atomic() && n.Type != richtext.NodeHorizontalRule
	}
	ctx.TextBefore = d.TextBefore(start)
	if !sel.Collapsed() {
		if start.Block != end.Block || end.Offset > start.Offset {
			ctx.HasTextRange = true
		}
	}
	return ctx
}
