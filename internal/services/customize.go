package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/engine"
	"github.com/yungbote/charmworks-backend/internal/logger"
	"github.com/yungbote/charmworks-backend/internal/repos"
	"github.com/yungbote/charmworks-backend/internal/sse"
)

var (
	ErrSessionNotFound        = fmt.Errorf("customization session not found")
	ErrProductNotCustomizable = fmt.Errorf("product is not customizable")
)

// SessionView is the API-facing snapshot of one customization session.
type SessionView struct {
	SessionID   uuid.UUID             `json:"session_id"`
	ProductID   uuid.UUID             `json:"product_id"`
	Doc         engine.Document       `json:"doc"`
	Price       engine.PriceBreakdown `json:"price"`
	Templates   []engine.Template     `json:"templates"`
	Accessories []engine.Accessory    `json:"accessories"`
}

// RenderView carries both renderer outputs for the same document state. The
// pair is consistency-checked before it leaves the service.
type RenderView struct {
	Stack engine.LayerStack `json:"stack"`
	Scene engine.Scene      `json:"scene"`
}

// RestoreView is the result of reopening a persisted design in a session.
type RestoreView struct {
	Session           *SessionView `json:"session"`
	PartiallyRestored bool         `json:"partially_restored"`
	MissingRefs       []string     `json:"missing_refs,omitempty"`
}

// CustomizeService owns the live customization sessions. Each session wraps
// one engine session plus its two render adapters; document changes are
// pushed to the owner over SSE.
type CustomizeService interface {
	Open(ctx context.Context, userID, productID uuid.UUID) (*SessionView, error)
	Get(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error)
	SelectTemplate(ctx context.Context, userID, sessionID uuid.UUID, templateKey string) (*SessionView, error)
	SetColor(ctx context.Context, userID, sessionID uuid.UUID, slot engine.ColorSlot, color string) (*SessionView, error)
	AddAccessory(ctx context.Context, userID, sessionID uuid.UUID, accessoryKey string) (*SessionView, error)
	RemoveAccessory(ctx context.Context, userID, sessionID uuid.UUID, accessoryKey string) (*SessionView, error)
	SetEngraving(ctx context.Context, userID, sessionID uuid.UUID, text, font string, position engine.EngravePosition) (*SessionView, error)
	ClearEngraving(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error)
	Reset(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error)
	Quote(ctx context.Context, userID, sessionID uuid.UUID) (engine.PriceBreakdown, error)
	Render(ctx context.Context, userID, sessionID uuid.UUID) (*RenderView, error)
	Restore(ctx context.Context, userID, sessionID uuid.UUID, line engine.CartLine) (*RestoreView, error)
	Snapshot(ctx context.Context, userID, sessionID uuid.UUID) (engine.Document, error)
	Close(ctx context.Context, userID, sessionID uuid.UUID) error
	Sweep(maxIdle time.Duration) int
}

type sessionRecord struct {
	userID      uuid.UUID
	productID   uuid.UUID
	productBase float64
	session     *engine.Session
	compositor  *engine.Compositor2D
	scene       *engine.SceneBuilder3D
	unsubscribe []func()
	lastActive  time.Time
}

type customizeService struct {
	mu          sync.RWMutex
	log         *logger.Logger
	productRepo repos.ProductRepo
	catalog     CatalogService
	hub         *sse.SSEHub
	engraveFee  float64
	sessions    map[uuid.UUID]*sessionRecord
}

func NewCustomizeService(
	log *logger.Logger,
	productRepo repos.ProductRepo,
	catalog CatalogService,
	hub *sse.SSEHub,
	engraveFee float64,
) CustomizeService {
	return &customizeService{
		log:         log.With("service", "CustomizeService"),
		productRepo: productRepo,
		catalog:     catalog,
		hub:         hub,
		engraveFee:  engraveFee,
		sessions:    make(map[uuid.UUID]*sessionRecord),
	}
}

func (cs *customizeService) Open(ctx context.Context, userID, productID uuid.UUID) (*SessionView, error) {
	product, err := cs.productRepo.GetByID(ctx, nil, productID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if !product.Customizable {
		return nil, ErrProductNotCustomizable
	}

	session := engine.NewSession(cs.log, cs.catalog, cs.engraveFee)
	if err := session.LoadProduct(ctx, productID, product.BasePrice); err != nil {
		return nil, err
	}

	assets, err := cs.catalog.AssetCatalogForProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load asset catalog: %w", err)
	}
	reg := session.Registry()
	compositor := engine.NewCompositor2D(cs.log, reg, assets)
	scene := engine.NewSceneBuilder3D(cs.log, reg, assets)

	seed := engine.Change{Kind: engine.ChangeProductLoaded, Doc: session.Snapshot()}
	compositor.Apply(seed)
	scene.Apply(seed)

	sessionID := uuid.New()
	rec := &sessionRecord{
		userID:      userID,
		productID:   productID,
		productBase: product.BasePrice,
		session:     session,
		compositor:  compositor,
		scene:       scene,
		lastActive:  time.Now(),
	}
	rec.unsubscribe = append(rec.unsubscribe,
		session.Subscribe(compositor.Apply),
		session.Subscribe(scene.Apply),
		session.Subscribe(func(change engine.Change) {
			cs.hub.BroadcastToUser(userID, sse.SSEEventDesignChanged, map[string]any{
				"session_id": sessionID,
				"kind":       change.Kind,
				"doc":        change.Doc,
			})
		}),
	)

	cs.mu.Lock()
	cs.sessions[sessionID] = rec
	cs.mu.Unlock()

	cs.log.Info("Customization session opened", "session_id", sessionID, "user_id", userID, "product_id", productID)
	return cs.viewLocked(sessionID, rec), nil
}

func (cs *customizeService) record(userID, sessionID uuid.UUID) (*sessionRecord, error) {
	cs.mu.RLock()
	rec, ok := cs.sessions[sessionID]
	cs.mu.RUnlock()
	if !ok || rec.userID != userID {
		return nil, ErrSessionNotFound
	}
	cs.mu.Lock()
	rec.lastActive = time.Now()
	cs.mu.Unlock()
	return rec, nil
}

func (cs *customizeService) viewLocked(sessionID uuid.UUID, rec *sessionRecord) *SessionView {
	reg := rec.session.Registry()
	return &SessionView{
		SessionID:   sessionID,
		ProductID:   rec.productID,
		Doc:         rec.session.Snapshot(),
		Price:       rec.session.Quote(),
		Templates:   reg.Templates(),
		Accessories: reg.Accessories(),
	}
}

func (cs *customizeService) Get(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error) {
	rec, err := cs.record(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return cs.viewLocked(sessionID, rec), nil
}

func (cs *customizeService) mutate(userID, sessionID uuid.UUID, fn func(*engine.Session) error) (*SessionView, error) {
	rec, err := cs.record(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(rec.session); err != nil {
		return nil, err
	}
	return cs.viewLocked(sessionID, rec), nil
}

func (cs *customizeService) SelectTemplate(ctx context.Context, userID, sessionID uuid.UUID, templateKey string) (*SessionView, error) {
	return cs.mutate(userID, sessionID, func(s *engine.Session) error {
		return s.SelectTemplate(templateKey)
	})
}

func (cs *customizeService) SetColor(ctx context.Context, userID, sessionID uuid.UUID, slot engine.ColorSlot, color string) (*SessionView, error) {
	return cs.mutate(userID, sessionID, func(s *engine.Session) error {
		return s.SetColor(slot, color)
	})
}

func (cs *customizeService) AddAccessory(ctx context.Context, userID, sessionID uuid.UUID, accessoryKey string) (*SessionView, error) {
	return cs.mutate(userID, sessionID, func(s *engine.Session) error {
		return s.AddAccessory(accessoryKey)
	})
}

func (cs *customizeService) RemoveAccessory(ctx context.Context, userID, sessionID uuid.UUID, accessoryKey string) (*SessionView, error) {
	return cs.mutate(userID, sessionID, func(s *engine.Session) error {
		return s.RemoveAccessory(accessoryKey)
	})
}

func (cs *customizeService) SetEngraving(ctx context.Context, userID, sessionID uuid.UUID, text, font string, position engine.EngravePosition) (*SessionView, error) {
	return cs.mutate(userID, sessionID, func(s *engine.Session) error {
		return s.SetEngraving(text, font, position)
	})
}

func (cs *customizeService) ClearEngraving(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error) {
	return cs.mutate(userID, sessionID, func(s *engine.Session) error {
		return s.ClearEngraving()
	})
}

func (cs *customizeService) Reset(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error) {
	return cs.mutate(userID, sessionID, func(s *engine.Session) error {
		s.Reset()
		return nil
	})
}

func (cs *customizeService) Quote(ctx context.Context, userID, sessionID uuid.UUID) (engine.PriceBreakdown, error) {
	rec, err := cs.record(userID, sessionID)
	if err != nil {
		return engine.PriceBreakdown{}, err
	}
	return rec.session.Quote(), nil
}

// Render returns the latest 2D layer stack and 3D scene. Drift between the
// two adapters is a server bug and surfaces as an error, never as a silently
// inconsistent preview.
func (cs *customizeService) Render(ctx context.Context, userID, sessionID uuid.UUID) (*RenderView, error) {
	rec, err := cs.record(userID, sessionID)
	if err != nil {
		return nil, err
	}
	stack := rec.compositor.Latest()
	scene := rec.scene.Latest()
	if err := engine.CheckConsistency(stack, scene); err != nil {
		cs.log.Error("Render adapters disagree", "error", err, "session_id", sessionID)
		return nil, err
	}
	return &RenderView{Stack: stack, Scene: scene}, nil
}

// Restore reopens a persisted cart line or saved design in an existing
// session. Discontinued references are substituted or dropped; the caller
// gets the list of what did not survive.
func (cs *customizeService) Restore(ctx context.Context, userID, sessionID uuid.UUID, line engine.CartLine) (*RestoreView, error) {
	rec, err := cs.record(userID, sessionID)
	if err != nil {
		return nil, err
	}
	result := engine.FromCartLine(rec.session.Registry(), line, rec.productBase, cs.engraveFee)
	rec.session.Restore(result.Doc)
	return &RestoreView{
		Session:           cs.viewLocked(sessionID, rec),
		PartiallyRestored: result.PartiallyRestored,
		MissingRefs:       result.MissingRefs,
	}, nil
}

func (cs *customizeService) Snapshot(ctx context.Context, userID, sessionID uuid.UUID) (engine.Document, error) {
	rec, err := cs.record(userID, sessionID)
	if err != nil {
		return engine.Document{}, err
	}
	return rec.session.Snapshot(), nil
}

func (cs *customizeService) Close(ctx context.Context, userID, sessionID uuid.UUID) error {
	cs.mu.Lock()
	rec, ok := cs.sessions[sessionID]
	if ok && rec.userID == userID {
		delete(cs.sessions, sessionID)
	}
	cs.mu.Unlock()
	if !ok || rec.userID != userID {
		return ErrSessionNotFound
	}
	for _, unsub := range rec.unsubscribe {
		unsub()
	}
	return nil
}

// Sweep drops sessions idle longer than maxIdle and returns how many went.
func (cs *customizeService) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	cs.mu.Lock()
	var stale []*sessionRecord
	for id, rec := range cs.sessions {
		if rec.lastActive.Before(cutoff) {
			stale = append(stale, rec)
			delete(cs.sessions, id)
		}
	}
	cs.mu.Unlock()
	for _, rec := range stale {
		for _, unsub := range rec.unsubscribe {
			unsub()
		}
	}
	if len(stale) > 0 {
		cs.log.Info("Swept idle customization sessions", "count", len(stale))
	}
	return len(stale)
}
