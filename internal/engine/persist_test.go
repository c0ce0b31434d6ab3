package engine

import (
	"math"
	"testing"
)

func TestCartLineRoundTrip(t *testing.T) {
	s, productID := newTestSession(t)
	if err := s.SelectTemplate("cute"); err != nil {
		t.Fatalf("select: %v", err)
	}
	for _, id := range []string{"heart", "star", "heart"} {
		if err := s.AddAccessory(id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := s.SetColor(SlotRim, "#aa00aa"); err != nil {
		t.Fatalf("color: %v", err)
	}
	if err := s.SetEngraving("An", "script", EngraveOutside); err != nil {
		t.Fatalf("engrave: %v", err)
	}
	doc := s.Snapshot()

	line := ToCartLine(doc, 2)
	if line.Quantity != 2 || line.ProductID != productID {
		t.Fatalf("unexpected line header: %+v", line)
	}

	encoded, err := EncodeCartLine(line)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeCartLine(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	res := FromCartLine(s.Registry(), decoded, 25, DefaultEngraveFee)
	if res.PartiallyRestored {
		t.Fatalf("unexpected partial restore: %v", res.MissingRefs)
	}
	got := res.Doc
	if got.TemplateID != doc.TemplateID {
		t.Fatalf("template: got %q want %q", got.TemplateID, doc.TemplateID)
	}
	for _, slot := range colorSlots {
		if got.Colors[slot] != doc.Colors[slot] {
			t.Fatalf("color %s: got %q want %q", slot, got.Colors[slot], doc.Colors[slot])
		}
	}
	if len(got.Accessories) != len(doc.Accessories) {
		t.Fatalf("accessories: got %d want %d", len(got.Accessories), len(doc.Accessories))
	}
	for i := range got.Accessories {
		if got.Accessories[i] != doc.Accessories[i] {
			t.Fatalf("accessory %d: got %+v want %+v", i, got.Accessories[i], doc.Accessories[i])
		}
	}
	if got.Engrave == nil || *got.Engrave != *doc.Engrave {
		t.Fatalf("engraving: got %+v want %+v", got.Engrave, doc.Engrave)
	}
	if math.Abs(got.UnitPrice-doc.UnitPrice) > 0.01 {
		t.Fatalf("price: got %v want %v", got.UnitPrice, doc.UnitPrice)
	}
}

func TestFromCartLineDiscontinuedAccessory(t *testing.T) {
	s, _ := newTestSession(t)
	for _, id := range []string{"star", "moon", "heart"} {
		if err := s.AddAccessory(id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	line := ToCartLine(s.Snapshot(), 1)

	// Registry without "moon": the persisted design references a charm that
	// has since been discontinued.
	reg := NewRegistry(testTemplates(), []Accessory{
		{ID: "star", VisualKey: "charm-star", UnitPrice: 3.5},
		{ID: "heart", VisualKey: "charm-heart", UnitPrice: 2.5},
	})

	res := FromCartLine(reg, line, 25, DefaultEngraveFee)
	if !res.PartiallyRestored {
		t.Fatalf("expected partial restore flag")
	}
	if len(res.MissingRefs) != 1 || res.MissingRefs[0] != "accessory:moon" {
		t.Fatalf("unexpected missing refs: %v", res.MissingRefs)
	}
	want := []Placement{{AccessoryID: "star", SlotIndex: 0}, {AccessoryID: "heart", SlotIndex: 1}}
	if len(res.Doc.Accessories) != 2 {
		t.Fatalf("expected 2 surviving accessories, got %d", len(res.Doc.Accessories))
	}
	for i, p := range res.Doc.Accessories {
		if p != want[i] {
			t.Fatalf("slot %d: got %+v want %+v", i, p, want[i])
		}
	}
	wantPrice := 49 + 3.5 + 2.5
	if math.Abs(res.Doc.UnitPrice-wantPrice) > 0.01 {
		t.Fatalf("restored price %v, want %v", res.Doc.UnitPrice, wantPrice)
	}
}

func TestFromCartLineDiscontinuedTemplate(t *testing.T) {
	s, _ := newTestSession(t)
	line := ToCartLine(s.Snapshot(), 1)

	reg := NewRegistry(nil, testAccessories())
	res := FromCartLine(reg, line, 25, DefaultEngraveFee)
	if !res.PartiallyRestored {
		t.Fatalf("expected partial restore flag")
	}
	if res.Doc.TemplateID != "" {
		t.Fatalf("discontinued template should clear template id, got %q", res.Doc.TemplateID)
	}
	// Persisted resolved colors survive the missing template.
	if res.Doc.Colors[SlotBand] != "#1b1e34" {
		t.Fatalf("expected persisted band color, got %q", res.Doc.Colors[SlotBand])
	}
	// No template anymore: product base price applies.
	if math.Abs(res.Doc.UnitPrice-25) > 0.01 {
		t.Fatalf("expected product base price 25, got %v", res.Doc.UnitPrice)
	}
}

func TestPricePureFunction(t *testing.T) {
	reg := NewRegistry(testTemplates(), testAccessories())
	doc := Document{
		TemplateID: "galaxy",
		Accessories: []Placement{
			{AccessoryID: "star", SlotIndex: 0},
			{AccessoryID: "ghost", SlotIndex: 1},
		},
		Engrave: &Engraving{Text: "x", Position: EngraveInside},
	}

	got := Price(reg, doc, 25, DefaultEngraveFee)
	if got.Base != 49 || got.Accessories != 3.5 || got.Engrave != DefaultEngraveFee {
		t.Fatalf("unexpected breakdown: %+v", got)
	}
	if math.Abs(got.Total-(49+3.5+DefaultEngraveFee)) > 1e-9 {
		t.Fatalf("unexpected total: %v", got.Total)
	}
	if len(got.UnknownAccessories) != 1 || got.UnknownAccessories[0] != "ghost" {
		t.Fatalf("unknown accessory not reported: %+v", got.UnknownAccessories)
	}

	// No template chosen: product base applies, never zero.
	got = Price(reg, Document{}, 25, DefaultEngraveFee)
	if got.Total != 25 {
		t.Fatalf("expected product base 25 with no template, got %v", got.Total)
	}
}
