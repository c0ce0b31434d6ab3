package engine

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestStaleFetchDiscarded(t *testing.T) {
	p1 := uuid.New()
	p2 := uuid.New()
	source := newFakeSource(p1)
	source.mu.Lock()
	source.templates[p2] = []Template{{
		ID:        "ocean",
		Name:      "Ocean",
		BasePrice: 59,
		DefaultColors: map[ColorSlot]string{
			SlotBand: "#013a63",
			SlotFace: "#2a6f97",
			SlotRim:  "#a9d6e5",
		},
	}}
	source.mu.Unlock()

	gate := source.gateFor(p1)
	s := NewSession(testLogger(t), source, DefaultEngraveFee)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// This fetch blocks on the gate until after the session has moved on.
		if err := s.LoadProduct(context.Background(), p1, 25); err != nil {
			t.Errorf("stale load should be silently discarded, got %v", err)
		}
	}()

	if err := s.LoadProduct(context.Background(), p2, 30); err != nil {
		t.Fatalf("load p2: %v", err)
	}
	close(gate)
	wg.Wait()

	doc := s.Snapshot()
	if doc.ProductID != p2 {
		t.Fatalf("document reflects stale product: %s", doc.ProductID)
	}
	if doc.TemplateID != "ocean" {
		t.Fatalf("expected p2 defaults to survive, got template %q", doc.TemplateID)
	}
	if doc.Colors[SlotBand] != "#013a63" {
		t.Fatalf("expected p2 band color, got %q", doc.Colors[SlotBand])
	}
}

func TestLoadProductSourceFailure(t *testing.T) {
	productID := uuid.New()
	source := newFakeSource(productID)
	source.mu.Lock()
	source.err = errors.New("catalog unreachable")
	source.mu.Unlock()

	s := NewSession(testLogger(t), source, DefaultEngraveFee)
	err := s.LoadProduct(context.Background(), productID, 25)
	if !errors.Is(err, ErrRegistryUnavailable) {
		t.Fatalf("expected ErrRegistryUnavailable, got %v", err)
	}
}

func TestLoadProductNoTemplates(t *testing.T) {
	productID := uuid.New()
	source := &fakeSource{
		templates:   map[uuid.UUID][]Template{},
		accessories: testAccessories(),
		gates:       map[uuid.UUID]chan struct{}{},
	}
	s := NewSession(testLogger(t), source, DefaultEngraveFee)
	if err := s.LoadProduct(context.Background(), productID, 25); err != nil {
		t.Fatalf("load: %v", err)
	}
	doc := s.Snapshot()
	if doc.TemplateID != "" {
		t.Fatalf("expected no template, got %q", doc.TemplateID)
	}
	for _, slot := range colorSlots {
		if doc.Colors[slot] != NeutralColor {
			t.Fatalf("slot %s should be neutral, got %q", slot, doc.Colors[slot])
		}
	}
	if doc.UnitPrice != 25 {
		t.Fatalf("expected product base price, got %v", doc.UnitPrice)
	}
}

func TestRestoreSeedsNewDocument(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.AddAccessory("star"); err != nil {
		t.Fatalf("add: %v", err)
	}
	persisted := s.Snapshot()

	s2, _ := newTestSession(t)
	s2.Restore(persisted)
	restored := s2.Snapshot()
	if restored.TemplateID != persisted.TemplateID || len(restored.Accessories) != 1 {
		t.Fatalf("restore mismatch: %+v", restored)
	}

	// Mutating the new session must not touch the persisted snapshot.
	if err := s2.AddAccessory("moon"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(persisted.Accessories) != 1 {
		t.Fatalf("persisted snapshot mutated: %+v", persisted.Accessories)
	}
}
