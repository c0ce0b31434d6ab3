package engine

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestSessionSeedsFirstTemplate(t *testing.T) {
	s, _ := newTestSession(t)
	doc := s.Snapshot()
	if doc.TemplateID != "galaxy" {
		t.Fatalf("expected first template galaxy, got %q", doc.TemplateID)
	}
	if len(doc.Accessories) != 0 {
		t.Fatalf("expected no accessories, got %d", len(doc.Accessories))
	}
	if doc.Engrave != nil {
		t.Fatalf("expected no engraving")
	}
	if doc.Colors[SlotBand] != "#1b1e34" {
		t.Fatalf("expected galaxy band color, got %q", doc.Colors[SlotBand])
	}
	if doc.UnitPrice != 49 {
		t.Fatalf("expected seeded price 49, got %v", doc.UnitPrice)
	}
}

func TestPriceNeverStale(t *testing.T) {
	s, _ := newTestSession(t)

	mutations := []func() error{
		func() error { return s.AddAccessory("star") },
		func() error { return s.AddAccessory("moon") },
		func() error { return s.SetColor(SlotFace, "#ffffff") },
		func() error { return s.SetEngraving("An", "serif", EngraveInside) },
		func() error { return s.SelectTemplate("cute") },
		func() error { return s.AddAccessory("heart") },
		func() error { return s.RemoveAccessory("heart") },
		func() error { return s.ClearEngraving() },
	}
	for i, mutate := range mutations {
		if err := mutate(); err != nil {
			t.Fatalf("mutation %d: %v", i, err)
		}
		doc := s.Snapshot()
		want := Price(s.Registry(), doc, 25, DefaultEngraveFee).Total
		if math.Abs(doc.UnitPrice-want) > 1e-9 {
			t.Fatalf("mutation %d: stale price %v, recomputed %v", i, doc.UnitPrice, want)
		}
	}
}

func TestAddAccessoryCapacity(t *testing.T) {
	s, _ := newTestSession(t)
	ids := []string{"star", "moon", "heart", "bolt"}
	for i := 0; i < SlotCapacity; i++ {
		if err := s.AddAccessory(ids[i%len(ids)]); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	err := s.AddAccessory("star")
	if !errors.Is(err, ErrAccessoryCapacity) {
		t.Fatalf("expected ErrAccessoryCapacity, got %v", err)
	}
	if got := len(s.Snapshot().Accessories); got != SlotCapacity {
		t.Fatalf("expected exactly %d accessories, got %d", SlotCapacity, got)
	}
}

func TestRemoveAccessoryReflowsSlots(t *testing.T) {
	s, _ := newTestSession(t)
	for _, id := range []string{"star", "moon", "heart"} {
		if err := s.AddAccessory(id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := s.RemoveAccessory("moon"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	doc := s.Snapshot()
	if len(doc.Accessories) != 2 {
		t.Fatalf("expected 2 accessories, got %d", len(doc.Accessories))
	}
	want := []Placement{{AccessoryID: "star", SlotIndex: 0}, {AccessoryID: "heart", SlotIndex: 1}}
	for i, p := range doc.Accessories {
		if p != want[i] {
			t.Fatalf("slot %d: got %+v, want %+v", i, p, want[i])
		}
	}
}

func TestRemoveAccessoryFirstMatchOnDuplicates(t *testing.T) {
	s, _ := newTestSession(t)
	for _, id := range []string{"star", "star", "moon"} {
		if err := s.AddAccessory(id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := s.RemoveAccessory("star"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	doc := s.Snapshot()
	if len(doc.Accessories) != 2 || doc.Accessories[0].AccessoryID != "star" || doc.Accessories[1].AccessoryID != "moon" {
		t.Fatalf("expected [star moon] after removing first duplicate, got %+v", doc.Accessories)
	}
}

func TestRemoveAccessoryNotInDesign(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.RemoveAccessory("star"); !errors.Is(err, ErrAccessoryNotInDesign) {
		t.Fatalf("expected ErrAccessoryNotInDesign, got %v", err)
	}
}

func TestSelectTemplateSwitch(t *testing.T) {
	s, _ := newTestSession(t)
	for _, id := range []string{"star", "moon", "heart"} {
		if err := s.AddAccessory(id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := s.SetEngraving("An", "serif", EngraveInside); err != nil {
		t.Fatalf("engrave: %v", err)
	}

	if err := s.SelectTemplate("cute"); err != nil {
		t.Fatalf("select: %v", err)
	}
	doc := s.Snapshot()
	if len(doc.Accessories) != 0 {
		t.Fatalf("template switch should clear accessories, got %d", len(doc.Accessories))
	}
	if doc.Engrave == nil || doc.Engrave.Text != "An" {
		t.Fatalf("template switch should preserve engraving, got %+v", doc.Engrave)
	}
	if doc.Colors[SlotBand] != "#f7c8d8" || doc.Colors[SlotFace] != "#fdf1f5" || doc.Colors[SlotRim] != "#e791ae" {
		t.Fatalf("expected cute default colors, got %+v", doc.Colors)
	}
}

func TestSelectTemplateUnknownIsNoOp(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.AddAccessory("star"); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := s.Snapshot()

	err := s.SelectTemplate("does-not-exist")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	after := s.Snapshot()
	if after.TemplateID != before.TemplateID || len(after.Accessories) != len(before.Accessories) {
		t.Fatalf("document changed on failed template select: %+v vs %+v", after, before)
	}
}

func TestSetColorRejectsUnknownSlot(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.SetColor(ColorSlot("bezel"), "#123456"); !errors.Is(err, ErrInvalidColorSlot) {
		t.Fatalf("expected ErrInvalidColorSlot, got %v", err)
	}
}

func TestSetEngravingValidation(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.SetEngraving("hi", "serif", EngravePosition("sideways")); !errors.Is(err, ErrInvalidEngravePosition) {
		t.Fatalf("expected ErrInvalidEngravePosition, got %v", err)
	}
	if err := s.SetEngraving("  ", "serif", EngraveInside); err != nil {
		t.Fatalf("blank engraving should clear, got %v", err)
	}
	if s.Snapshot().Engrave != nil {
		t.Fatalf("blank engraving text should leave no engraving")
	}
}

func TestResetRestoresSeedState(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.SelectTemplate("cute"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.AddAccessory("heart"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.SetEngraving("yo", "serif", EngraveOutside); err != nil {
		t.Fatalf("engrave: %v", err)
	}

	s.Reset()
	doc := s.Snapshot()
	if doc.TemplateID != "galaxy" || len(doc.Accessories) != 0 || doc.Engrave != nil {
		t.Fatalf("reset did not restore seed state: %+v", doc)
	}
}

func TestSubscribersSeeEveryChange(t *testing.T) {
	s, _ := newTestSession(t)

	var got []ChangeKind
	unsubscribe := s.Subscribe(func(c Change) {
		got = append(got, c.Kind)
		// Observer snapshots must already carry the recomputed price.
		want := Price(s.reg, c.Doc, 25, DefaultEngraveFee).Total
		if math.Abs(c.Doc.UnitPrice-want) > 1e-9 {
			panic(fmt.Sprintf("observer saw stale price %v, want %v", c.Doc.UnitPrice, want))
		}
	})

	if err := s.AddAccessory("star"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.SetColor(SlotRim, "#ff0000"); err != nil {
		t.Fatalf("color: %v", err)
	}
	unsubscribe()
	if err := s.AddAccessory("moon"); err != nil {
		t.Fatalf("add: %v", err)
	}

	want := []ChangeKind{ChangeAccessoryAdded, ChangeColorSet}
	if len(got) != len(want) {
		t.Fatalf("expected %d changes, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("change %d: got %s, want %s", i, got[i], want[i])
		}
	}
}
