package events

import "time"

// Topic names for the editor's in-process signals.
const (
	TopicDocumentUpdate      = "editor.document_update"
	TopicSelectionUpdate     = "editor.selection_update"
	TopicOpenImageModal      = "editor.open_image_modal"
	TopicToggleWidgetSidebar = "editor.toggle_widget_sidebar"
	TopicContentChanged      = "content.changed"
)

// Event defines the contract for all editor and content events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "DOCUMENT_UPDATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common concrete event shape.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// DocumentUpdated builds the event published after every document
// transaction. Observers re-evaluate overlay visibility on it.
func DocumentUpdated(sessionId, postId string) BaseEvent {
	return BaseEvent{
		Type: "DOCUMENT_UPDATED",
		Data: map[string]interface{}{
			"session_id": sessionId,
			"post_id":    postId,
		},
		OccurredAt: time.Now(),
	}
}

// SelectionUpdated builds the event published on every cursor move.
func SelectionUpdated(sessionId string, overlay string) BaseEvent {
	return BaseEvent{
		Type: "SELECTION_UPDATED",
		Data: map[string]interface{}{
			"session_id": sessionId,
			"overlay":    overlay,
		},
		OccurredAt: time.Now(),
	}
}

// OpenImageModal signals the editor shell to show the image upload modal.
// Emitted by the slash menu, the floating insert menu, and image node
// double-clicks.
func OpenImageModal(sessionId string) BaseEvent {
	return BaseEvent{
		Type:       "OPEN_IMAGE_MODAL",
		Data:       map[string]interface{}{"session_id": sessionId},
		OccurredAt: time.Now(),
	}
}

// ToggleWidgetSidebar signals the shell to show or hide the drag-source
// widget palette.
func ToggleWidgetSidebar(sessionId string) BaseEvent {
	return BaseEvent{
		Type:       "TOGGLE_WIDGET_SIDEBAR",
		Data:       map[string]interface{}{"session_id": sessionId},
		OccurredAt: time.Now(),
	}
}

// ContentChanged is published whenever a post's persisted content or
// page-builder data changes, so autosave listeners can react.
func ContentChanged(kind, id string) BaseEvent {
	return BaseEvent{
		Type: "CONTENT_CHANGED",
		Data: map[string]interface{}{
			"kind": kind,
			"id":   id,
		},
		OccurredAt: time.Now(),
	}
}
