package service

import (
	"context"
	"fmt"
	"time"

	"github.com/QTMarketing/lama-cms/internal/dto"
	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/pkg/logger"
	"github.com/QTMarketing/lama-cms/internal/pkg/serverutils"
	"github.com/QTMarketing/lama-cms/internal/repository/memory"
	"github.com/QTMarketing/lama-cms/internal/repository/specification"
	"github.com/QTMarketing/lama-cms/internal/repository/unitofwork"
	"github.com/QTMarketing/lama-cms/pkg/blocks"
	"github.com/QTMarketing/lama-cms/pkg/builder"
	"github.com/QTMarketing/lama-cms/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	BuilderModeEdit    = "edit"
	BuilderModePreview = "preview"
)

type IBuilderService interface {
	GetState(ctx context.Context, pageId uuid.UUID) (*dto.BuilderStateResponse, error)
	SaveLayout(ctx context.Context, req *dto.SaveLayoutRequest) (*dto.LayoutResponse, error)
	AddSection(ctx context.Context, req *dto.AddSectionRequest) (*dto.BuilderStateResponse, error)
	DeleteSection(ctx context.Context, req *dto.DeleteSectionRequest) (*dto.BuilderStateResponse, error)
	MoveSection(ctx context.Context, req *dto.MoveSectionRequest) (*dto.BuilderStateResponse, error)
	AddColumn(ctx context.Context, req *dto.AddColumnRequest) (*dto.BuilderStateResponse, error)
	DeleteColumn(ctx context.Context, req *dto.DeleteColumnRequest) (*dto.BuilderStateResponse, error)
	AddBlock(ctx context.Context, req *dto.AddBlockRequest) (*dto.BuilderStateResponse, error)
	UpdateBlock(ctx context.Context, req *dto.UpdateBlockRequest) (*dto.BuilderStateResponse, error)
	DeleteBlock(ctx context.Context, req *dto.DeleteBlockRequest) (*dto.BuilderStateResponse, error)
	MoveBlock(ctx context.Context, req *dto.MoveBlockRequest) (*dto.BuilderStateResponse, error)
	SelectBlock(ctx context.Context, req *dto.SelectBlockRequest) (*dto.BuilderStateResponse, error)
	SetMode(ctx context.Context, req *dto.SetBuilderModeRequest) (*dto.BuilderStateResponse, error)
}

// builderState is the per page editing state that never touches the
// database: current mode and the selected block.
type builderState struct {
	Mode            string
	SelectedBlockId string
}

type builderService struct {
	uowFactory unitofwork.RepositoryFactory
	store      *memory.ContentStore
	bus        *events.Bus
	logger     logger.ILogger
}

func NewBuilderService(uowFactory unitofwork.RepositoryFactory, store *memory.ContentStore, bus *events.Bus, log logger.ILogger) IBuilderService {
	return &builderService{
		uowFactory: uowFactory,
		store:      store,
		bus:        bus,
		logger:     log,
	}
}

func (s *builderService) GetState(ctx context.Context, pageId uuid.UUID) (*dto.BuilderStateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := s.loadOrCreate(ctx, uow, pageId)
	if err != nil {
		return nil, err
	}
	return s.stateResponse(record), nil
}

func (s *builderService) SaveLayout(ctx context.Context, req *dto.SaveLayoutRequest) (*dto.LayoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := s.loadOrCreate(ctx, uow, req.PageId)
	if err != nil {
		return nil, err
	}

	record.Sections = req.Sections
	if err := s.persist(ctx, uow, record); err != nil {
		return nil, err
	}

	return &dto.LayoutResponse{
		PageId:    record.PageId,
		Sections:  record.Sections,
		Version:   record.Version,
		UpdatedAt: record.UpdatedAt,
	}, nil
}

func (s *builderService) AddSection(ctx context.Context, req *dto.AddSectionRequest) (*dto.BuilderStateResponse, error) {
	return s.mutate(ctx, req.PageId, func(record *entity.PageBuilderRecord, state *builderState) error {
		sections := builder.AddSection(record.Sections)
		if req.Type != "" {
			sections[len(sections)-1].Type = builder.SectionType(req.Type)
		}
		record.Sections = sections
		return nil
	})
}

func (s *builderService) DeleteSection(ctx context.Context, req *dto.DeleteSectionRequest) (*dto.BuilderStateResponse, error) {
	return s.mutate(ctx, req.PageId, func(record *entity.PageBuilderRecord, state *builderState) error {
		// Deleting the section holding the selected block clears the selection.
		if state.SelectedBlockId != "" && builder.SectionContainsBlock(record.Sections, req.SectionId, state.SelectedBlockId) {
			state.SelectedBlockId = ""
		}
		sections, ok := builder.DeleteSection(record.Sections, req.SectionId)
		if !ok {
			return serverutils.NewApiError(fiber.StatusNotFound, "section not found")
		}
		record.Sections = sections
		return nil
	})
}

func (s *builderService) MoveSection(ctx context.Context, req *dto.MoveSectionRequest) (*dto.BuilderStateResponse, error) {
	return s.mutate(ctx, req.PageId, func(record *entity.PageBuilderRecord, state *builderState) error {
		from := -1
		for i, sec := range record.Sections {
			if sec.Id == req.SectionId {
				from = i
				break
			}
		}
		if from < 0 {
			return serverutils.NewApiError(fiber.StatusNotFound, "section not found")
		}
		record.Sections = builder.MoveSection(record.Sections, from, req.Index)
		return nil
	})
}

func (s *builderService) AddColumn(ctx context.Context, req *dto.AddColumnRequest) (*dto.BuilderStateResponse, error) {
	return s.mutate(ctx, req.PageId, func(record *entity.PageBuilderRecord, state *builderState) error {
		sections, ok := builder.AddColumn(record.Sections, req.SectionId)
		if !ok {
			return serverutils.NewApiError(fiber.StatusNotFound, "section not found")
		}
		record.Sections = sections
		return nil
	})
}

func (s *builderService) DeleteColumn(ctx context.Context, req *dto.DeleteColumnRequest) (*dto.BuilderStateResponse, error) {
	return s.mutate(ctx, req.PageId, func(record *entity.PageBuilderRecord, state *builderState) error {
		sections, ok := builder.DeleteColumn(record.Sections, req.SectionId, req.ColumnId)
		if !ok {
			return serverutils.NewApiError(fiber.StatusNotFound, "column not found")
		}
		record.Sections = sections
		if state.SelectedBlockId != "" {
			if _, found := builder.FindBlock(sections, state.SelectedBlockId); !found {
				state.SelectedBlockId = ""
			}
		}
		return nil
	})
}

func (s *builderService) AddBlock(ctx context.Context, req *dto.AddBlockRequest) (*dto.BuilderStateResponse, error) {
	if !blocks.IsValidType(req.Type) {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, fmt.Sprintf("unknown block type %q", req.Type))
	}
	return s.mutate(ctx, req.PageId, func(record *entity.PageBuilderRecord, state *builderState) error {
		sections, block, ok := builder.AddBlock(record.Sections, req.SectionId, req.ColumnId, req.Type)
		if !ok {
			return serverutils.NewApiError(fiber.StatusNotFound, "column not found")
		}
		record.Sections = sections
		// A freshly dropped block becomes the selection.
		state.SelectedBlockId = block.Id
		return nil
	})
}

func (s *builderService) UpdateBlock(ctx context.Context, req *dto.UpdateBlockRequest) (*dto.BuilderStateResponse, error) {
	return s.mutate(ctx, req.PageId, func(record *entity.PageBuilderRecord, state *builderState) error {
		sectionId, columnId, ok := builder.LocateBlock(record.Sections, req.BlockId)
		if !ok {
			return serverutils.NewApiError(fiber.StatusNotFound, "block not found")
		}
		sections, ok := builder.UpdateBlock(record.Sections, sectionId, columnId, req.BlockId, req.Patch)
		if !ok {
			return serverutils.NewApiError(fiber.StatusNotFound, "block not found")
		}
		record.Sections = sections
		return nil
	})
}

func (s *builderService) DeleteBlock(ctx context.Context, req *dto.DeleteBlockRequest) (*dto.BuilderStateResponse, error) {
	return s.mutate(ctx, req.PageId, func(record *entity.PageBuilderRecord, state *builderState) error {
		sectionId, columnId, ok := builder.LocateBlock(record.Sections, req.BlockId)
		if !ok {
			return serverutils.NewApiError(fiber.StatusNotFound, "block not found")
		}
		sections, ok := builder.DeleteBlock(record.Sections, sectionId, columnId, req.BlockId)
		if !ok {
			return serverutils.NewApiError(fiber.StatusNotFound, "block not found")
		}
		record.Sections = sections
		if state.SelectedBlockId == req.BlockId {
			state.SelectedBlockId = ""
		}
		return nil
	})
}

func (s *builderService) MoveBlock(ctx context.Context, req *dto.MoveBlockRequest) (*dto.BuilderStateResponse, error) {
	return s.mutate(ctx, req.PageId, func(record *entity.PageBuilderRecord, state *builderState) error {
		sections, ok := builder.MoveBlock(record.Sections, req.BlockId, req.TargetSectionId, req.TargetColumnId, req.Index)
		if !ok {
			return serverutils.NewApiError(fiber.StatusNotFound, "block or target not found")
		}
		record.Sections = sections
		return nil
	})
}

func (s *builderService) SelectBlock(ctx context.Context, req *dto.SelectBlockRequest) (*dto.BuilderStateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := s.loadOrCreate(ctx, uow, req.PageId)
	if err != nil {
		return nil, err
	}

	state := s.loadState(req.PageId)
	if req.BlockId == "" {
		state.SelectedBlockId = ""
	} else {
		if _, found := builder.FindBlock(record.Sections, req.BlockId); !found {
			return nil, serverutils.NewApiError(fiber.StatusNotFound, "block not found")
		}
		if state.Mode == BuilderModePreview {
			return nil, serverutils.NewApiError(fiber.StatusConflict, "cannot select blocks in preview mode")
		}
		state.SelectedBlockId = req.BlockId
	}
	s.saveState(req.PageId, state)
	return s.stateResponse(record), nil
}

func (s *builderService) SetMode(ctx context.Context, req *dto.SetBuilderModeRequest) (*dto.BuilderStateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := s.loadOrCreate(ctx, uow, req.PageId)
	if err != nil {
		return nil, err
	}

	state := s.loadState(req.PageId)
	state.Mode = req.Mode
	if req.Mode == BuilderModePreview {
		// Preview hides all editing chrome.
		state.SelectedBlockId = ""
	}
	s.saveState(req.PageId, state)
	return s.stateResponse(record), nil
}

// mutate runs one tree operation against the stored layout and persists
// the result with a version bump.
func (s *builderService) mutate(ctx context.Context, pageId uuid.UUID, op func(record *entity.PageBuilderRecord, state *builderState) error) (*dto.BuilderStateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := s.loadOrCreate(ctx, uow, pageId)
	if err != nil {
		return nil, err
	}

	state := s.loadState(pageId)
	if state.Mode == BuilderModePreview {
		return nil, serverutils.NewApiError(fiber.StatusConflict, "layout is read-only in preview mode")
	}

	if err := op(record, &state); err != nil {
		return nil, err
	}

	if err := s.persist(ctx, uow, record); err != nil {
		return nil, err
	}
	s.saveState(pageId, state)

	return s.stateResponse(record), nil
}

func (s *builderService) loadOrCreate(ctx context.Context, uow unitofwork.UnitOfWork, pageId uuid.UUID) (*entity.PageBuilderRecord, error) {
	record, err := uow.PageBuilderRepository().FindOne(ctx, specification.ByPageID{PageID: pageId})
	if err != nil {
		return nil, err
	}
	if record != nil {
		return record, nil
	}

	// First visit: a page starts with one default section.
	record = &entity.PageBuilderRecord{
		Id:        uuid.New(),
		PageId:    pageId,
		Sections:  []builder.Section{builder.NewSection()},
		Version:   1,
		CreatedAt: time.Now(),
	}
	if err := uow.PageBuilderRepository().Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *builderService) persist(ctx context.Context, uow unitofwork.UnitOfWork, record *entity.PageBuilderRecord) error {
	now := time.Now()
	record.Version++
	record.UpdatedAt = &now
	if err := uow.PageBuilderRepository().Update(ctx, record); err != nil {
		return err
	}

	if s.bus != nil {
		if err := s.bus.Publish(events.TopicContentChanged, events.ContentChanged("page", record.PageId.String())); err != nil {
			s.logger.Warn("builder", "failed to publish content change", map[string]interface{}{
				"page_id": record.PageId,
				"error":   err.Error(),
			})
		}
	}
	return nil
}

func (s *builderService) stateKey(pageId uuid.UUID) string {
	return "builder:state:" + pageId.String()
}

func (s *builderService) loadState(pageId uuid.UUID) builderState {
	if v, ok := s.store.Get(s.stateKey(pageId)); ok {
		if state, ok := v.(builderState); ok {
			return state
		}
	}
	return builderState{Mode: BuilderModeEdit}
}

func (s *builderService) saveState(pageId uuid.UUID, state builderState) {
	s.store.Set(s.stateKey(pageId), state)
}

func (s *builderService) stateResponse(record *entity.PageBuilderRecord) *dto.BuilderStateResponse {
	state := s.loadState(record.PageId)
	return &dto.BuilderStateResponse{
		PageId:          record.PageId,
		Mode:            state.Mode,
		SelectedBlockId: state.SelectedBlockId,
		Sections:        record.Sections,
		Version:         record.Version,
	}
}
