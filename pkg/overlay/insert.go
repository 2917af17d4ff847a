package overlay

import (
	"strings"

	"github.com/QTMarketing/lama-cms/pkg/richtext"
)

// InsertItemId identifies one entry of the floating insert menu grid.
type InsertItemId string

const (
	InsertText      InsertItemId = "text"
	InsertHeading   InsertItemId = "heading"
	InsertImageItem InsertItemId = "image"
	InsertList      InsertItemId = "list"
	InsertSeparator InsertItemId = "separator"
	InsertQuote     InsertItemId = "quote"
)

// InsertItem is one insertable block type in the expanded menu grid.
type InsertItem struct {
	Id    InsertItemId `json:"id"`
	Title string       `json:"title"`
	Icon  string       `json:"icon"`
}

// InsertItems is the full grid shown when the menu expands.
var InsertItems = []InsertItem{
	{Id: InsertText, Title: "Text", Icon: "📝"},
	{Id: InsertHeading, Title: "Heading", Icon: "🔠"},
	{Id: InsertImageItem, Title: "Image", Icon: "🖼️"},
	{Id: InsertList, Title: "List", Icon: "•"},
	{Id: InsertSeparator, Title: "Separator", Icon: "➖"},
	{Id: InsertQuote, Title: "Quote", Icon: "❝"},
}

// FilterInsertItems returns the items whose title matches the search query,
// case-insensitively. An empty query returns the full grid.
func FilterInsertItems(query string) []InsertItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return InsertItems
	}
	var out []InsertItem
	for _, item := range InsertItems {
		if strings.Contains(strings.ToLower(item.Title), q) {
			out = append(out, item)
		}
	}
	return out
}

// ExecuteInsertItem applies the selected item's document command at the
// cursor and collapses the menu back to its icon state (the caller owns the
// collapse). The image item reports that the upload modal should open
// instead of mutating the document.
func ExecuteInsertItem(d *richtext.Document, cursor richtext.Pos, id InsertItemId) (openImageModal bool, ok bool) {
	sel := richtext.Caret(cursor)
	switch id {
	case InsertText:
		// The enclosing block is already a paragraph; nothing to convert.
		return false, true
	case InsertHeading:
		richtext.ToggleHeading(d, cursor.Block, 2)
	case InsertList:
		richtext.ToggleBulletList(d, cursor.Block)
	case InsertSeparator:
		richtext.InsertHorizontalRule(d, sel)
	case InsertQuote:
		richtext.ToggleBlockquote(d, cursor.Block)
	case InsertImageItem:
		return true, true
	default:
		return false, false
	}
	return false, true
}
