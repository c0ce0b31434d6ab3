package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/logger"
)

type ChangeKind string

const (
	ChangeProductLoaded    ChangeKind = "product_loaded"
	ChangeTemplateSelected ChangeKind = "template_selected"
	ChangeColorSet         ChangeKind = "color_set"
	ChangeAccessoryAdded   ChangeKind = "accessory_added"
	ChangeAccessoryRemoved ChangeKind = "accessory_removed"
	ChangeEngravingSet     ChangeKind = "engraving_set"
	ChangeEngravingCleared ChangeKind = "engraving_cleared"
	ChangeReset            ChangeKind = "reset"
)

// Change carries the kind of mutation plus a snapshot taken after the price
// recompute, so observers always see a consistent document.
type Change struct {
	Kind ChangeKind
	Doc  Document
}

// CatalogSource supplies registry data the engine does not own. Retries and
// backoff are the source's problem, not the engine's.
type CatalogSource interface {
	TemplatesForProduct(ctx context.Context, productID uuid.UUID) ([]Template, error)
	Accessories(ctx context.Context) ([]Accessory, error)
}

// Session owns one Document for one customization flow. Mutations are
// serialized under the mutex: each completes, including the price recompute
// and observer notification, before the next is accepted. The registry it
// holds is immutable and may be shared across sessions.
type Session struct {
	mu          sync.Mutex
	log         *logger.Logger
	source      CatalogSource
	reg         *Registry
	productID   uuid.UUID
	productBase float64
	engraveFee  float64
	doc         Document
	epoch       uint64
	subs        map[int]func(Change)
	nextSub     int
}

func NewSession(log *logger.Logger, source CatalogSource, engraveFee float64) *Session {
	if engraveFee <= 0 {
		engraveFee = DefaultEngraveFee
	}
	return &Session{
		log:        log.With("component", "EngineSession"),
		source:     source,
		reg:        NewRegistry(nil, nil),
		engraveFee: engraveFee,
		subs:       make(map[int]func(Change)),
	}
}

// LoadProduct fetches the registry for productID and seeds a fresh document
// from its first template. Switching products while a previous load is still
// in flight bumps the session epoch; the stale result is discarded when it
// lands instead of overwriting the newer state.
func (s *Session) LoadProduct(ctx context.Context, productID uuid.UUID, productBase float64) error {
	s.mu.Lock()
	s.epoch++
	myEpoch := s.epoch
	s.productID = productID
	s.productBase = productBase
	s.mu.Unlock()

	templates, err := s.source.TemplatesForProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("%w: load templates: %v", ErrRegistryUnavailable, err)
	}
	accessories, err := s.source.Accessories(ctx)
	if err != nil {
		return fmt.Errorf("%w: load accessories: %v", ErrRegistryUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != myEpoch {
		s.log.Debug("Discarding stale catalog fetch", "product_id", productID, "epoch", myEpoch, "current_epoch", s.epoch)
		return nil
	}
	s.reg = NewRegistry(templates, accessories)
	s.seedLocked()
	s.notifyLocked(ChangeProductLoaded)
	return nil
}

func (s *Session) seedLocked() {
	s.doc = Document{ProductID: s.productID}
	if tpl, ok := s.reg.FirstTemplate(); ok {
		s.doc.TemplateID = tpl.ID
		colors, usedNeutral := ResolveAll(&tpl, nil)
		if usedNeutral {
			s.log.Warn("Template colors incomplete, filled with neutral", "template_id", tpl.ID)
		}
		s.doc.Colors = colors
	} else {
		s.doc.Colors, _ = ResolveAll(nil, nil)
	}
	s.recomputeLocked()
}

func (s *Session) recomputeLocked() {
	s.doc.UnitPrice = Price(s.reg, s.doc, s.productBase, s.engraveFee).Total
}

// Subscribe registers an observer for document changes and returns an
// unsubscribe func. Observers run synchronously inside the mutation, in
// keeping with the single-owner, event-driven model.
func (s *Session) Subscribe(fn func(Change)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Session) notifyLocked(kind ChangeKind) {
	if len(s.subs) == 0 {
		return
	}
	change := Change{Kind: kind, Doc: s.doc.Clone()}
	for _, fn := range s.subs {
		fn(change)
	}
}

// Snapshot returns a deep copy of the current document; callers can hold it
// across suspension points without racing mutations.
func (s *Session) Snapshot() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Quote recomputes the full price breakdown from the current document.
func (s *Session) Quote() PriceBreakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Price(s.reg, s.doc, s.productBase, s.engraveFee)
}

// Registry exposes the immutable catalog snapshot backing this session.
func (s *Session) Registry() *Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg
}

func (s *Session) ProductID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productID
}

// Restore replaces the document with a previously persisted one, e.g. when a
// shopper reopens a saved design. The persisted copy itself is never mutated;
// this seeds a new in-memory document from it.
func (s *Session) Restore(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	s.doc.ProductID = s.productID
	if s.doc.Colors == nil {
		s.doc.Colors, _ = ResolveAll(s.currentTemplateLocked(), nil)
	}
	s.recomputeLocked()
	s.notifyLocked(ChangeReset)
}
