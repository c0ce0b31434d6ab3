package engine

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func testTemplates() []Template {
	return []Template{
		{
			ID:        "galaxy",
			Name:      "Galaxy",
			BasePrice: 49,
			DefaultColors: map[ColorSlot]string{
				SlotBand: "#1b1e34",
				SlotFace: "#2d3561",
				SlotRim:  "#c9b458",
			},
			Recommended: []string{"star", "moon"},
			PreviewKey:  "tpl-galaxy",
		},
		{
			ID:        "cute",
			Name:      "Cute",
			BasePrice: 39,
			DefaultColors: map[ColorSlot]string{
				SlotBand: "#f7c8d8",
				SlotFace: "#fdf1f5",
				SlotRim:  "#e791ae",
			},
			Recommended: []string{"heart"},
			PreviewKey:  "tpl-cute",
		},
		{
			// Deliberately incomplete color set: rim missing.
			ID:        "broken",
			Name:      "Broken",
			BasePrice: 29,
			DefaultColors: map[ColorSlot]string{
				SlotBand: "#000000",
			},
		},
	}
}

func testAccessories() []Accessory {
	return []Accessory{
		{ID: "star", DisplayName: "Star", VisualKey: "charm-star", UnitPrice: 3.5},
		{ID: "moon", DisplayName: "Moon", VisualKey: "charm-moon", UnitPrice: 4},
		{ID: "heart", DisplayName: "Heart", VisualKey: "charm-heart", UnitPrice: 2.5},
		{ID: "bolt", DisplayName: "Bolt", VisualKey: "charm-bolt", UnitPrice: 5},
	}
}

type fakeSource struct {
	mu          sync.Mutex
	templates   map[uuid.UUID][]Template
	accessories []Accessory
	gates       map[uuid.UUID]chan struct{}
	err         error
}

func newFakeSource(productID uuid.UUID) *fakeSource {
	return &fakeSource{
		templates:   map[uuid.UUID][]Template{productID: testTemplates()},
		accessories: testAccessories(),
		gates:       make(map[uuid.UUID]chan struct{}),
	}
}

func (f *fakeSource) gateFor(productID uuid.UUID) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[productID] = ch
	return ch
}

func (f *fakeSource) TemplatesForProduct(ctx context.Context, productID uuid.UUID) ([]Template, error) {
	f.mu.Lock()
	gate := f.gates[productID]
	tpls := f.templates[productID]
	err := f.err
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return tpls, nil
}

func (f *fakeSource) Accessories(ctx context.Context) ([]Accessory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.accessories, nil
}

func newTestSession(t *testing.T) (*Session, uuid.UUID) {
	t.Helper()
	productID := uuid.New()
	source := newFakeSource(productID)
	s := NewSession(testLogger(t), source, DefaultEngraveFee)
	if err := s.LoadProduct(context.Background(), productID, 25); err != nil {
		t.Fatalf("LoadProduct: %v", err)
	}
	return s, productID
}
