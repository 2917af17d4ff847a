package service

import (
	"encoding/base64"
	"sync"

	"github.com/QTMarketing/lama-cms/internal/dto"
	"github.com/QTMarketing/lama-cms/internal/pkg/logger"
	"github.com/QTMarketing/lama-cms/internal/pkg/serverutils"
	"github.com/QTMarketing/lama-cms/internal/repository/memory"
	"github.com/QTMarketing/lama-cms/pkg/blocks"
	"github.com/QTMarketing/lama-cms/pkg/events"
	"github.com/QTMarketing/lama-cms/pkg/overlay"
	"github.com/QTMarketing/lama-cms/pkg/richtext"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEditorService interface {
	OpenSession(req *dto.OpenEditorSessionRequest) (*dto.OpenEditorSessionResponse, error)
	CloseSession(sessionId string)
	Serialize(sessionId string) (*dto.EditorDocumentResponse, error)

	UpdateSelection(req *dto.UpdateSelectionRequest) (*dto.OverlayStateResponse, error)
	ListInsertItems(sessionId, query string) ([]overlay.InsertItem, error)
	InsertText(req *dto.InsertTextRequest) (*dto.EditorDocumentResponse, error)
	ExecuteInsertItem(req *dto.InsertItemRequest) (*dto.EditorDocumentResponse, error)
	ExecuteSlashCommand(req *dto.SlashCommandRequest) (*dto.EditorDocumentResponse, error)
	ExecuteBubbleCommand(req *dto.BubbleCommandRequest) (*dto.EditorDocumentResponse, error)

	ToggleWidgetSidebar(sessionId string) error

	InsertWidget(req *dto.InsertWidgetRequest) (*dto.WidgetResponse, error)
	GetWidget(sessionId, blockId string) (*dto.WidgetResponse, error)
	UpdateWidget(req *dto.UpdateWidgetRequest) (*dto.WidgetResponse, error)
	RemoveWidget(req *dto.RemoveWidgetRequest) (*dto.EditorDocumentResponse, error)

	UploadImage(req *dto.UploadImageRequest) (*dto.EditorDocumentResponse, error)
	CancelUpload(sessionId string) error
}

// editorSession holds one open document with its live selection. All
// commands run against the session and the client re-renders from the
// serialized result.
type editorSession struct {
	Id            string
	Document      *richtext.Document
	Selection     richtext.Selection
	PendingUpload bool
}

type editorService struct {
	store  *memory.ContentStore
	bus    *events.Bus
	logger logger.ILogger

	mu        sync.Mutex
	uploading map[string]bool
}

func NewEditorService(store *memory.ContentStore, bus *events.Bus, log logger.ILogger) IEditorService {
	return &editorService{
		store:     store,
		bus:       bus,
		logger:    log,
		uploading: make(map[string]bool),
	}
}

func (s *editorService) OpenSession(req *dto.OpenEditorSessionRequest) (*dto.OpenEditorSessionResponse, error) {
	doc, err := richtext.Parse(req.Html)
	if err != nil {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "unparseable document")
	}

	session := &editorSession{
		Id:        uuid.New().String(),
		Document:  doc,
		Selection: richtext.Caret(richtext.Pos{}),
	}
	s.store.Set(sessionKey(session.Id), session)

	return &dto.OpenEditorSessionResponse{
		SessionId: session.Id,
		Html:      richtext.Serialize(doc),
	}, nil
}

func (s *editorService) CloseSession(sessionId string) {
	s.store.Delete(sessionKey(sessionId))
}

func (s *editorService) Serialize(sessionId string) (*dto.EditorDocumentResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	return s.documentResponse(session), nil
}

func (s *editorService) UpdateSelection(req *dto.UpdateSelectionRequest) (*dto.OverlayStateResponse, error) {
	session, err := s.session(req.SessionId)
	if err != nil {
		return nil, err
	}

	session.Selection = richtext.Selection{
		Anchor: richtext.Pos{Block: req.Selection.Anchor.Block, Offset: req.Selection.Anchor.Offset},
		Head:   richtext.Pos{Block: req.Selection.Head.Block, Offset: req.Selection.Head.Offset},
	}

	octx := overlay.ContextFor(session.Document, session.Selection)
	octx.Cursor = req.Geometry.Cursor
	octx.SelectionStart = req.Geometry.SelectionStart
	octx.SelectionEnd = req.Geometry.SelectionEnd
	octx.Container = req.Geometry.Container
	octx.Viewport = req.Geometry.Viewport

	state := overlay.Resolve(octx)
	s.store.Set(sessionKey(req.SessionId), session)
	s.publish(events.TopicSelectionUpdate, events.SelectionUpdated(req.SessionId, state.Kind.String()))

	return &dto.OverlayStateResponse{
		Kind:     state.Kind.String(),
		Position: state.Position,
	}, nil
}

// ListInsertItems serves the expanded insert menu grid, filtered by the
// search query.
func (s *editorService) ListInsertItems(sessionId, query string) ([]overlay.InsertItem, error) {
	if _, err := s.session(sessionId); err != nil {
		return nil, err
	}
	return overlay.FilterInsertItems(query), nil
}

func (s *editorService) InsertText(req *dto.InsertTextRequest) (*dto.EditorDocumentResponse, error) {
	session, err := s.session(req.SessionId)
	if err != nil {
		return nil, err
	}

	caret := richtext.InsertText(session.Document, session.Selection, req.Text)
	session.Selection = richtext.Caret(caret)
	return s.commit(session)
}

func (s *editorService) ExecuteInsertItem(req *dto.InsertItemRequest) (*dto.EditorDocumentResponse, error) {
	session, err := s.session(req.SessionId)
	if err != nil {
		return nil, err
	}

	cursor := session.Selection.Head
	openImageModal, ok := overlay.ExecuteInsertItem(session.Document, cursor, overlay.InsertItemId(req.ItemId))
	if !ok {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "unknown insert item")
	}
	if openImageModal {
		session.PendingUpload = true
		s.publish(events.TopicOpenImageModal, events.OpenImageModal(session.Id))
	}
	return s.commit(session)
}

func (s *editorService) ExecuteSlashCommand(req *dto.SlashCommandRequest) (*dto.EditorDocumentResponse, error) {
	session, err := s.session(req.SessionId)
	if err != nil {
		return nil, err
	}

	cursor := session.Selection.Head
	openImageModal, ok := overlay.ExecuteSlashCommand(session.Document, cursor, overlay.SlashCommandId(req.CommandId))
	if !ok {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "unknown slash command")
	}
	if openImageModal {
		session.PendingUpload = true
		s.publish(events.TopicOpenImageModal, events.OpenImageModal(session.Id))
	}

	// The trigger slash is gone, so the caret moves one rune back.
	if cursor.Offset > 0 {
		session.Selection = richtext.Caret(richtext.Pos{Block: cursor.Block, Offset: cursor.Offset - 1})
	}
	return s.commit(session)
}

func (s *editorService) ExecuteBubbleCommand(req *dto.BubbleCommandRequest) (*dto.EditorDocumentResponse, error) {
	session, err := s.session(req.SessionId)
	if err != nil {
		return nil, err
	}

	if !overlay.ExecuteBubbleCommand(session.Document, session.Selection, overlay.BubbleCommandId(req.CommandId), req.LinkURL) {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "unknown bubble command")
	}
	return s.commit(session)
}

// ToggleWidgetSidebar relays the toolbar's sidebar toggle to every shell
// listening on the bus. The service keeps no sidebar state of its own.
func (s *editorService) ToggleWidgetSidebar(sessionId string) error {
	if _, err := s.session(sessionId); err != nil {
		return err
	}
	s.publish(events.TopicToggleWidgetSidebar, events.ToggleWidgetSidebar(sessionId))
	return nil
}

func (s *editorService) InsertWidget(req *dto.InsertWidgetRequest) (*dto.WidgetResponse, error) {
	session, err := s.session(req.SessionId)
	if err != nil {
		return nil, err
	}
	if !blocks.IsValidType(req.Type) {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "unknown block type")
	}

	block := blocks.New(req.Type)
	idx := richtext.InsertWidget(session.Document, session.Selection, block)
	session.Selection = richtext.Caret(richtext.Pos{Block: idx + 1})

	if _, err := s.commit(session); err != nil {
		return nil, err
	}
	return &dto.WidgetResponse{
		Block:   &block,
		Preview: richtext.RenderPreview(&block),
	}, nil
}

func (s *editorService) GetWidget(sessionId, blockId string) (*dto.WidgetResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	_, node, ok := richtext.FindWidget(session.Document, blockId)
	if !ok {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "widget not found")
	}
	return &dto.WidgetResponse{
		Block:   node.Block,
		Preview: richtext.RenderPreview(node.Block),
	}, nil
}

func (s *editorService) UpdateWidget(req *dto.UpdateWidgetRequest) (*dto.WidgetResponse, error) {
	session, err := s.session(req.SessionId)
	if err != nil {
		return nil, err
	}

	if !richtext.PatchWidget(session.Document, req.BlockId, req.Patch) {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "widget not found")
	}
	if _, err := s.commit(session); err != nil {
		return nil, err
	}

	_, node, _ := richtext.FindWidget(session.Document, req.BlockId)
	return &dto.WidgetResponse{
		Block:   node.Block,
		Preview: richtext.RenderPreview(node.Block),
	}, nil
}

func (s *editorService) RemoveWidget(req *dto.RemoveWidgetRequest) (*dto.EditorDocumentResponse, error) {
	session, err := s.session(req.SessionId)
	if err != nil {
		return nil, err
	}

	if !richtext.RemoveWidget(session.Document, req.BlockId) {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "widget not found")
	}
	return s.commit(session)
}

func (s *editorService) UploadImage(req *dto.UploadImageRequest) (*dto.EditorDocumentResponse, error) {
	session, err := s.session(req.SessionId)
	if err != nil {
		return nil, err
	}
	if !s.beginUpload(req.SessionId) {
		return nil, serverutils.NewApiError(fiber.StatusConflict, "an image upload is already in progress")
	}
	defer s.endUpload(req.SessionId)

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "invalid image payload")
	}

	src, err := richtext.EncodeImageDataURL(req.MimeType, data)
	if err != nil {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, err.Error())
	}

	// An upload completing after its modal was closed is dropped, not
	// applied to a stale target.
	if req.FromModal && !session.PendingUpload {
		return s.documentResponse(session), nil
	}

	idx := richtext.InsertImage(session.Document, session.Selection, richtext.ImageAttrs{
		Src: src,
		Alt: req.Alt,
	})
	session.Selection = richtext.Caret(richtext.Pos{Block: idx + 1})
	session.PendingUpload = false
	return s.commit(session)
}

// CancelUpload is the modal close: the pending flag clears and any upload
// still in flight for the modal will be discarded on completion.
func (s *editorService) CancelUpload(sessionId string) error {
	session, err := s.session(sessionId)
	if err != nil {
		return err
	}
	session.PendingUpload = false
	s.store.Set(sessionKey(sessionId), session)
	return nil
}

func (s *editorService) beginUpload(sessionId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploading[sessionId] {
		return false
	}
	s.uploading[sessionId] = true
	return true
}

func (s *editorService) endUpload(sessionId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.uploading, sessionId)
}

func sessionKey(id string) string {
	return "editor:session:" + id
}

func (s *editorService) session(id string) (*editorSession, error) {
	v, ok := s.store.Get(sessionKey(id))
	if !ok {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "editor session not found")
	}
	session, ok := v.(*editorSession)
	if !ok {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "editor session not found")
	}
	return session, nil
}

func (s *editorService) commit(session *editorSession) (*dto.EditorDocumentResponse, error) {
	s.store.Set(sessionKey(session.Id), session)
	s.publish(events.TopicDocumentUpdate, events.DocumentUpdated(session.Id, ""))
	return s.documentResponse(session), nil
}

func (s *editorService) documentResponse(session *editorSession) *dto.EditorDocumentResponse {
	return &dto.EditorDocumentResponse{
		SessionId: session.Id,
		Html:      richtext.Serialize(session.Document),
	}
}

func (s *editorService) publish(topic string, evt events.BaseEvent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(topic, evt); err != nil {
		s.logger.Warn("editor", "failed to publish editor event", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
	}
}
