package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/charmworks-backend/internal/engine"
	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/repos"
	"github.com/yungbote/charmworks-backend/internal/sse"
	"github.com/yungbote/charmworks-backend/internal/types"
)

var ErrSavedDesignNotFound = fmt.Errorf("saved design not found")

type SavedDesignService interface {
	SaveFromSession(ctx context.Context, userID, sessionID uuid.UUID, name string) (*types.SavedDesign, error)
	List(ctx context.Context, userID uuid.UUID) ([]*types.SavedDesign, error)
	Open(ctx context.Context, userID, designID uuid.UUID) (*RestoreView, error)
	Delete(ctx context.Context, userID, designID uuid.UUID) error
}

type savedDesignService struct {
	log       *logger.Logger
	repo      repos.SavedDesignRepo
	customize CustomizeService
	hub       *sse.SSEHub
}

func NewSavedDesignService(
	log *logger.Logger,
	repo repos.SavedDesignRepo,
	customize CustomizeService,
	hub *sse.SSEHub,
) SavedDesignService {
	return &savedDesignService{
		log:       log.With("service", "SavedDesignService"),
		repo:      repo,
		customize: customize,
		hub:       hub,
	}
}

// SaveFromSession snapshots the live session document and persists it. The
// stored copy is independent of the session; later edits never touch it.
func (ss *savedDesignService) SaveFromSession(ctx context.Context, userID, sessionID uuid.UUID, name string) (*types.SavedDesign, error) {
	doc, err := ss.customize.Snapshot(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	payload, err := engine.EncodeCartLine(engine.ToCartLine(doc, 1))
	if err != nil {
		return nil, err
	}
	design := &types.SavedDesign{
		UserID:    userID,
		ProductID: doc.ProductID,
		Name:      name,
		Design:    datatypes.JSON(payload),
	}
	created, err := ss.repo.Create(ctx, nil, design)
	if err != nil {
		return nil, fmt.Errorf("save design: %w", err)
	}
	ss.hub.BroadcastToUser(userID, sse.SSEEventDesignSaved, created)
	return created, nil
}

func (ss *savedDesignService) List(ctx context.Context, userID uuid.UUID) ([]*types.SavedDesign, error) {
	return ss.repo.GetForUser(ctx, nil, userID)
}

// Open reopens a saved design in a fresh customization session. Catalog
// entries retired since the save are substituted or dropped and reported so
// the UI can tell the shopper what changed.
func (ss *savedDesignService) Open(ctx context.Context, userID, designID uuid.UUID) (*RestoreView, error) {
	design, err := ss.repo.GetByID(ctx, nil, designID)
	if err != nil || design.UserID != userID {
		return nil, ErrSavedDesignNotFound
	}
	line, err := engine.DecodeCartLine(design.Design)
	if err != nil {
		return nil, err
	}
	session, err := ss.customize.Open(ctx, userID, design.ProductID)
	if err != nil {
		return nil, err
	}
	return ss.customize.Restore(ctx, userID, session.SessionID, line)
}

func (ss *savedDesignService) Delete(ctx context.Context, userID, designID uuid.UUID) error {
	design, err := ss.repo.GetByID(ctx, nil, designID)
	if err != nil || design.UserID != userID {
		return ErrSavedDesignNotFound
	}
	return ss.repo.Delete(ctx, nil, designID)
}
