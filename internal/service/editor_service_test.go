package service

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QTMarketing/lama-cms/internal/dto"
	"github.com/QTMarketing/lama-cms/internal/pkg/serverutils"
	"github.com/QTMarketing/lama-cms/internal/repository/memory"
	"github.com/QTMarketing/lama-cms/pkg/blocks"
	"github.com/QTMarketing/lama-cms/pkg/events"
	"github.com/QTMarketing/lama-cms/pkg/overlay"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newEditorFixture(t *testing.T) (IEditorService, *events.Bus) {
	t.Helper()
	bus := events.NewBus(nil)
	t.Cleanup(func() { _ = bus.Close() })
	return NewEditorService(memory.NewContentStore(), bus, noopLogger{}), bus
}

func openSession(t *testing.T, svc IEditorService, html string) string {
	t.Helper()
	res, err := svc.OpenSession(&dto.OpenEditorSessionRequest{Html: html})
	require.NoError(t, err)
	require.NotEmpty(t, res.SessionId)
	return res.SessionId
}

func selectionReq(sessionId string, b1, o1, b2, o2 int) *dto.UpdateSelectionRequest {
	return &dto.UpdateSelectionRequest{
		SessionId: sessionId,
		Selection: dto.SelectionPayload{
			Anchor: dto.PosPayload{Block: b1, Offset: o1},
			Head:   dto.PosPayload{Block: b2, Offset: o2},
		},
		Geometry: dto.GeometryPayload{
			Cursor:    overlay.Rect{X: 100, Y: 300, Width: 2, Height: 18},
			Container: overlay.Rect{Width: 1024, Height: 2000},
			Viewport:  overlay.Rect{Width: 1024, Height: 768},
		},
	}
}

func TestOpenSessionNormalizesHtml(t *testing.T) {
	svc, _ := newEditorFixture(t)

	res, err := svc.OpenSession(&dto.OpenEditorSessionRequest{Html: ""})
	require.NoError(t, err)
	assert.Equal(t, "<p></p>", res.Html)
}

func TestSessionNotFound(t *testing.T) {
	svc, _ := newEditorFixture(t)

	_, err := svc.Serialize("missing")
	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
}

func TestCloseSessionDropsState(t *testing.T) {
	svc, _ := newEditorFixture(t)
	id := openSession(t, svc, "<p>hi</p>")

	svc.CloseSession(id)
	_, err := svc.Serialize(id)
	assert.Error(t, err)
}

func TestUpdateSelectionResolvesOverlayKinds(t *testing.T) {
	svc, _ := newEditorFixture(t)
	id := openSession(t, svc, "<p>hello world</p><p>/</p>")

	// collapsed cursor in a paragraph: insert menu
	st, err := svc.UpdateSelection(selectionReq(id, 0, 3, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, "insert-menu", st.Kind)

	// cursor right after the slash trigger: slash menu
	st, err = svc.UpdateSelection(selectionReq(id, 1, 1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, "slash-menu", st.Kind)

	// text range: bubble menu
	st, err = svc.UpdateSelection(selectionReq(id, 0, 0, 0, 5))
	require.NoError(t, err)
	assert.Equal(t, "bubble-menu", st.Kind)
}

func TestInsertTextMovesCaret(t *testing.T) {
	svc, _ := newEditorFixture(t)
	id := openSession(t, svc, "<p>helo</p>")

	_, err := svc.UpdateSelection(selectionReq(id, 0, 3, 0, 3))
	require.NoError(t, err)

	res, err := svc.InsertText(&dto.InsertTextRequest{SessionId: id, Text: "l"})
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", res.Html)
}

func TestExecuteSlashCommandTransformsBlock(t *testing.T) {
	svc, _ := newEditorFixture(t)
	id := openSession(t, svc, "<p>/</p>")

	_, err := svc.UpdateSelection(selectionReq(id, 0, 1, 0, 1))
	require.NoError(t, err)

	res, err := svc.ExecuteSlashCommand(&dto.SlashCommandRequest{SessionId: id, CommandId: "heading1"})
	require.NoError(t, err)
	assert.Equal(t, "<h1></h1>", res.Html)
}

func TestExecuteSlashCommandUnknownId(t *testing.T) {
	svc, _ := newEditorFixture(t)
	id := openSession(t, svc, "<p>/</p>")

	_, err := svc.UpdateSelection(selectionReq(id, 0, 1, 0, 1))
	require.NoError(t, err)

	_, err = svc.ExecuteSlashCommand(&dto.SlashCommandRequest{SessionId: id, CommandId: "bogus"})
	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Code)
}

func TestExecuteBubbleCommandFormatsRange(t *testing.T) {
	svc, _ := newEditorFixture(t)
	id := openSession(t, svc, "<p>hello world</p>")

	_, err := svc.UpdateSelection(selectionReq(id, 0, 0, 0, 5))
	require.NoError(t, err)

	res, err := svc.ExecuteBubbleCommand(&dto.BubbleCommandRequest{SessionId: id, CommandId: "bold"})
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>hello</strong> world</p>", res.Html)
}

func TestWidgetLifecycle(t *testing.T) {
	svc, _ := newEditorFixture(t)
	id := openSession(t, svc, "<p>before</p>")

	_, err := svc.UpdateSelection(selectionReq(id, 0, 6, 0, 6))
	require.NoError(t, err)

	created, err := svc.InsertWidget(&dto.InsertWidgetRequest{SessionId: id, Type: blocks.TypeButton})
	require.NoError(t, err)
	require.NotNil(t, created.Block)
	assert.Contains(t, created.Preview, "Button")

	got, err := svc.GetWidget(id, created.Block.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Block.Id, got.Block.Id)

	updated, err := svc.UpdateWidget(&dto.UpdateWidgetRequest{
		SessionId: id,
		BlockId:   created.Block.Id,
		Patch:     blocks.Patch{Content: map[string]any{"text": "Checkout"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Checkout", updated.Block.ContentString("text"))
	assert.Contains(t, updated.Preview, "Checkout")

	res, err := svc.RemoveWidget(&dto.RemoveWidgetRequest{SessionId: id, BlockId: created.Block.Id})
	require.NoError(t, err)
	assert.NotContains(t, res.Html, "data-type=\"widget\"")

	_, err = svc.GetWidget(id, created.Block.Id)
	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
}

func TestInsertWidgetRejectsUnknownType(t *testing.T) {
	svc, _ := newEditorFixture(t)
	id := openSession(t, svc, "<p></p>")

	_, err := svc.InsertWidget(&dto.InsertWidgetRequest{SessionId: id, Type: "carousel"})
	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Code)
}

func TestImageInsertItemSignalsModal(t *testing.T) {
	svc, bus := newEditorFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	msgs, err := bus.Subscribe(ctx, events.TopicOpenImageModal)
	require.NoError(t, err)

	id := openSession(t, svc, "<p></p>")
	_, err = svc.UpdateSelection(selectionReq(id, 0, 0, 0, 0))
	require.NoError(t, err)

	_, err = svc.ExecuteInsertItem(&dto.InsertItemRequest{SessionId: id, ItemId: "image"})
	require.NoError(t, err)

	select {
	case msg := <-msgs:
		msg.Ack()
		evt, err := events.Decode(msg)
		require.NoError(t, err)
		assert.Equal(t, "OPEN_IMAGE_MODAL", evt.Type)
		assert.Equal(t, id, evt.Data["session_id"])
	case <-time.After(time.Second):
		t.Fatal("no open image modal event received")
	}
}

func TestToggleWidgetSidebarPublishes(t *testing.T) {
	svc, bus := newEditorFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	msgs, err := bus.Subscribe(ctx, events.TopicToggleWidgetSidebar)
	require.NoError(t, err)

	id := openSession(t, svc, "<p></p>")
	require.NoError(t, svc.ToggleWidgetSidebar(id))

	select {
	case msg := <-msgs:
		msg.Ack()
		evt, err := events.Decode(msg)
		require.NoError(t, err)
		assert.Equal(t, "TOGGLE_WIDGET_SIDEBAR", evt.Type)
	case <-time.After(time.Second):
		t.Fatal("no sidebar toggle event received")
	}

	assert.Error(t, svc.ToggleWidgetSidebar("missing"))
}

func TestUploadImageEmbedsDataURL(t *testing.T) {
	svc, _ := newEditorFixture(t)
	id := openSession(t, svc, "<p>photo:</p>")

	_, err := svc.UpdateSelection(selectionReq(id, 0, 6, 0, 6))
	require.NoError(t, err)

	res, err := svc.UploadImage(&dto.UploadImageRequest{
		SessionId: id,
		MimeType:  "image/png",
		Data:      base64.StdEncoding.EncodeToString([]byte{1, 2, 3}),
		Alt:       "product shot",
	})
	require.NoError(t, err)
	assert.Contains(t, res.Html, `src="data:image/png;base64,`)
	assert.Contains(t, res.Html, `alt="product shot"`)
}

func TestModalUploadDroppedAfterCancel(t *testing.T) {
	svc, _ := newEditorFixture(t)
	id := openSession(t, svc, "<p></p>")

	_, err := svc.UpdateSelection(selectionReq(id, 0, 0, 0, 0))
	require.NoError(t, err)

	// open the modal through the insert menu, then close it
	_, err = svc.ExecuteInsertItem(&dto.InsertItemRequest{SessionId: id, ItemId: "image"})
	require.NoError(t, err)
	require.NoError(t, svc.CancelUpload(id))

	res, err := svc.UploadImage(&dto.UploadImageRequest{
		SessionId: id,
		MimeType:  "image/png",
		Data:      base64.StdEncoding.EncodeToString([]byte{1}),
		FromModal: true,
	})
	require.NoError(t, err)
	assert.NotContains(t, res.Html, "<img")
}

func TestListInsertItems(t *testing.T) {
	svc, _ := newEditorFixture(t)
	id := openSession(t, svc, "<p></p>")

	items, err := svc.ListInsertItems(id, "")
	require.NoError(t, err)
	assert.Len(t, items, len(overlay.InsertItems))

	items, err = svc.ListInsertItems(id, "quote")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, overlay.InsertQuote, items[0].Id)

	_, err = svc.ListInsertItems("missing", "")
	assert.Error(t, err)
}

func TestUploadImageRejectsBadPayload(t *testing.T) {
	svc, _ := newEditorFixture(t)
	id := openSession(t, svc, "<p></p>")

	_, err := svc.UploadImage(&dto.UploadImageRequest{SessionId: id, MimeType: "image/png", Data: "@@not base64@@"})
	assert.Error(t, err)

	_, err = svc.UploadImage(&dto.UploadImageRequest{
		SessionId: id,
		MimeType:  "text/html",
		Data:      base64.StdEncoding.EncodeToString([]byte("x")),
	})
	assert.Error(t, err)
}
