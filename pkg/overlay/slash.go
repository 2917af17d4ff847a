package overlay

import (
	"github.com/QTMarketing/lama-cms/pkg/richtext"
)

// SlashCommandId identifies one slash menu command.
type SlashCommandId string

const (
	SlashHeading1   SlashCommandId = "heading1"
	SlashHeading2   SlashCommandId = "heading2"
	SlashBulletList SlashCommandId = "bulletList"
	SlashImage      SlashCommandId = "image"
	SlashQuote      SlashCommandId = "quote"
)

// SlashCommand is one entry of the fixed, ordered slash menu.
type SlashCommand struct {
	Id    SlashCommandId `json:"id"`
	Title string         `json:"title"`
}

// SlashCommands is the fixed command list, in menu order.
var SlashCommands = []SlashCommand{
	{Id: SlashHeading1, Title: "Heading 1"},
	{Id: SlashHeading2, Title: "Heading 2"},
	{Id: SlashBulletList, Title: "Bullet List"},
	{Id: SlashImage, Title: "Image"},
	{Id: SlashQuote, Title: "Quote"},
}

// SlashMenu tracks the highlighted entry while the slash menu is open.
// Arrow keys cycle the highlight with wrap-around; Enter executes; Escape
// dismisses without executing.
type SlashMenu struct {
	Selected int
}

// Next moves the highlight down, wrapping at the end.
func (m *SlashMenu) Next() {
	m.Selected = (m.Selected + 1) % len(SlashCommands)
}

// Prev moves the highlight up, wrapping at the start.
func (m *SlashMenu) Prev() {
	m.Selected = (m.Selected - 1 + len(SlashCommands)) % len(SlashCommands)
}

// Highlighted returns the currently highlighted command.
func (m *SlashMenu) Highlighted() SlashCommand {
	return SlashCommands[m.Selected]
}

// ExecuteSlashCommand runs a slash command against the document. The
// trigger slash - the character immediately before the cursor - is removed
// first via a ranged delete, then the command's transformation is applied
// at the block. The image command performs no document change itself; it
// reports that the image upload modal should open (via the returned
// signal) after the slash is cleaned up.
func ExecuteSlashCommand(d *richtext.Document, cursor richtext.Pos, id SlashCommandId) (openImageModal bool, ok bool) {
	if cursor.Offset < 1 || !SlashTriggered(d.TextBefore(cursor)) {
		return false, false
	}
	richtext.DeleteRange(d, richtext.Selection{
		Anchor: richtext.Pos{Block: cursor.Block, Offset: cursor.Offset - 1},
		Head:   cursor,
	})

	switch id {
	case SlashHeading1:
		richtext.ToggleHeading(d, cursor.Block, 1)
	case SlashHeading2:
		richtext.ToggleHeading(d, cursor.Block, 2)
	case SlashBulletList:
		richtext.ToggleBulletList(d, cursor.Block)
	case SlashQuote:
		richtext.ToggleBlockquote(d, cursor.Block)
	case SlashImage:
		return true, true
	default:
		return false, false
	}
	return false, true
}
