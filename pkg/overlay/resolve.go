package overlay

import (
	"strings"
	"unicode/utf8"

	"github.com/QTMarketing/lama-cms/pkg/richtext"
)

// Resolve computes the overlay state for a selection context. It is the
// single source of truth for all three menus: one switch, one state, so no
// two overlays can report visible for the same context.
func Resolve(ctx SelectionContext) State {
	switch {
	case ctx.HasTextRange:
		return State{
			Kind:     KindBubbleMenu,
			Position: placeAboveSelection(ctx.SelectionStart, ctx.SelectionEnd, ctx.Container, ctx.Viewport),
		}
	case ctx.Selection.Collapsed() &&
		ctx.EnclosingType == richtext.NodeParagraph &&
		SlashTriggered(ctx.TextBefore):
		return State{
			Kind:     KindSlashMenu,
			Position: placeNearCursor(ctx.Cursor, ctx.Container, ctx.Viewport),
		}
	case ctx.Selection.Collapsed() &&
		ctx.EnclosingType == richtext.NodeParagraph &&
		!ctx.InAtomAncestor:
		return State{
			Kind:     KindInsertMenu,
			Position: placeNearCursor(ctx.Cursor, ctx.Container, ctx.Viewport),
		}
	default:
		return Hidden
	}
}

// SlashTriggered reports whether the text before the cursor ends in a
// slash that should open the command menu: the slash must be the first
// character of the paragraph or immediately preceded by whitespace or a
// newline. A slash mid-word (http://...) never triggers.
func SlashTriggered(textBefore string) bool {
	if !strings.HasSuffix(textBefore, "/") {
		return false
	}
	rest := textBefore[:len(textBefore)-1]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(rest)
	return r == ' ' || r == '\t' || r == '\n'
}
