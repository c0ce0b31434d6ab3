package services

import (
	"testing"

	"gorm.io/datatypes"

	"github.com/yungbote/charmworks-backend/internal/engine"
	"github.com/yungbote/charmworks-backend/internal/types"
)

func TestTemplateToEngine(t *testing.T) {
	row := &types.Template{
		Key:         "galaxy",
		Name:        "Galaxy",
		BasePrice:   49,
		BandColor:   "#1b1e34",
		FaceColor:   "#2d3561",
		RimColor:    "#c9b458",
		Recommended: datatypes.JSON(`["star","moon"]`),
		PreviewKey:  "tpl-galaxy",
	}

	tpl := templateToEngine(row)
	if tpl.ID != "galaxy" {
		t.Fatalf("engine template ID should be the business key, got %q", tpl.ID)
	}
	if tpl.BasePrice != 49 || tpl.PreviewKey != "tpl-galaxy" {
		t.Fatalf("unexpected template mapping: %+v", tpl)
	}
	if tpl.DefaultColors[engine.SlotBand] != "#1b1e34" ||
		tpl.DefaultColors[engine.SlotFace] != "#2d3561" ||
		tpl.DefaultColors[engine.SlotRim] != "#c9b458" {
		t.Fatalf("unexpected default colors: %v", tpl.DefaultColors)
	}
	if len(tpl.Recommended) != 2 || tpl.Recommended[0] != "star" {
		t.Fatalf("unexpected recommended list: %v", tpl.Recommended)
	}
}

func TestTemplateToEngineOmitsEmptyColors(t *testing.T) {
	row := &types.Template{Key: "bare", Name: "Bare", BandColor: "#000000"}

	tpl := templateToEngine(row)
	if len(tpl.DefaultColors) != 1 {
		t.Fatalf("empty color columns must not become defaults: %v", tpl.DefaultColors)
	}
	if _, ok := tpl.DefaultColors[engine.SlotFace]; ok {
		t.Fatal("face color should be absent")
	}
}

func TestAccessoryToEngine(t *testing.T) {
	row := &types.Accessory{
		Key:         "star",
		DisplayName: "Star",
		VisualKey:   "acc-star",
		UnitPrice:   6.5,
	}

	acc := accessoryToEngine(row)
	if acc.ID != "star" || acc.DisplayName != "Star" || acc.VisualKey != "acc-star" || acc.UnitPrice != 6.5 {
		t.Fatalf("unexpected accessory mapping: %+v", acc)
	}
}
