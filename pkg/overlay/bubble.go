package overlay

import (
	"github.com/QTMarketing/lama-cms/pkg/richtext"
)

// BubbleCommandId identifies one bubble format menu toggle.
type BubbleCommandId string

const (
	BubbleBold        BubbleCommandId = "bold"
	BubbleItalic      BubbleCommandId = "italic"
	BubbleHeading1    BubbleCommandId = "heading1"
	BubbleHeading2    BubbleCommandId = "heading2"
	BubbleBulletList  BubbleCommandId = "bulletList"
	BubbleOrderedList BubbleCommandId = "orderedList"
	BubbleBlockquote  BubbleCommandId = "blockquote"
	BubbleLink        BubbleCommandId = "link"
)

// ExecuteBubbleCommand applies an inline formatting toggle to the current
// selection. The link command carries the URL collected from the user
// prompt; an empty URL removes an existing link.
func ExecuteBubbleCommand(d *richtext.Document, sel richtext.Selection, id BubbleCommandId, linkURL string) bool {
	if sel.Collapsed() {
		return false
	}
	start, _ := sel.Ordered()
	switch id {
	case BubbleBold:
		richtext.ToggleMark(d, sel, richtext.MarkBold)
	case BubbleItalic:
		richtext.ToggleMark(d, sel, richtext.MarkItalic)
	case BubbleHeading1:
		richtext.ToggleHeading(d, start.Block, 1)
	case BubbleHeading2:
		richtext.ToggleHeading(d, start.Block, 2)
	case BubbleBulletList:
		richtext.ToggleBulletList(d, start.Block)
	case BubbleOrderedList:
		richtext.ToggleOrderedList(d, start.Block)
	case BubbleBlockquote:
		richtext.ToggleBlockquote(d, start.Block)
	case BubbleLink:
		richtext.ApplyLink(d, sel, linkURL)
	default:
		return false
	}
	return true
}
