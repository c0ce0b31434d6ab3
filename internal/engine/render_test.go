package engine

import (
	"testing"
)

func testAssets() *AssetCatalog {
	return NewAssetCatalog(map[string]string{
		"galaxy": "wf-galaxy",
		"cute":   "wf-cute",
	}, "wf-default")
}

func TestRenderersAgreeOnSameDocument(t *testing.T) {
	s, _ := newTestSession(t)
	log := testLogger(t)
	reg := s.Registry()
	assets := testAssets()
	compositor := NewCompositor2D(log, reg, assets)
	builder := NewSceneBuilder3D(log, reg, assets)

	s.Subscribe(compositor.Apply)
	s.Subscribe(builder.Apply)

	for _, id := range []string{"star", "moon", "heart", "star"} {
		if err := s.AddAccessory(id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := s.SetColor(SlotFace, "#102030"); err != nil {
		t.Fatalf("color: %v", err)
	}
	if err := s.SetEngraving("An", "script", EngraveInside); err != nil {
		t.Fatalf("engrave: %v", err)
	}

	if err := CheckConsistency(compositor.Latest(), builder.Latest()); err != nil {
		t.Fatalf("renderers drifted: %v", err)
	}

	// A template switch must swap both visual assets from the shared mapping.
	if err := s.SelectTemplate("cute"); err != nil {
		t.Fatalf("select: %v", err)
	}
	stack, scene := compositor.Latest(), builder.Latest()
	if stack.TemplateAsset != "wf-cute" || scene.ModelAsset != "wf-cute" {
		t.Fatalf("asset swap mismatch: 2d=%q 3d=%q", stack.TemplateAsset, scene.ModelAsset)
	}
	if err := CheckConsistency(stack, scene); err != nil {
		t.Fatalf("renderers drifted after template switch: %v", err)
	}
}

func TestMissingAssetFallsBackToDefault(t *testing.T) {
	s, _ := newTestSession(t)
	log := testLogger(t)
	assets := testAssets()

	if err := s.SelectTemplate("broken"); err != nil {
		t.Fatalf("select: %v", err)
	}
	doc := s.Snapshot()

	stack := NewCompositor2D(log, s.Registry(), assets).Compose(doc)
	scene := NewSceneBuilder3D(log, s.Registry(), assets).Build(doc)
	if stack.TemplateAsset != "wf-default" || scene.ModelAsset != "wf-default" {
		t.Fatalf("expected default asset fallback, got 2d=%q 3d=%q", stack.TemplateAsset, scene.ModelAsset)
	}
	if err := CheckConsistency(stack, scene); err != nil {
		t.Fatalf("renderers drifted on fallback asset: %v", err)
	}
}

func TestUnknownCharmVisualFallsBack(t *testing.T) {
	reg := NewRegistry(testTemplates(), nil)
	doc := Document{
		TemplateID:  "galaxy",
		Accessories: []Placement{{AccessoryID: "star", SlotIndex: 0}},
	}
	log := testLogger(t)
	assets := testAssets()

	stack := NewCompositor2D(log, reg, assets).Compose(doc)
	var charm *Layer
	for i := range stack.Layers {
		if stack.Layers[i].Kind == LayerCharm {
			charm = &stack.Layers[i]
		}
	}
	if charm == nil {
		t.Fatalf("charm layer missing")
	}
	if charm.Key != DefaultCharmVisual {
		t.Fatalf("expected default charm visual, got %q", charm.Key)
	}
}

func TestCheckConsistencyDetectsDrift(t *testing.T) {
	s, _ := newTestSession(t)
	log := testLogger(t)
	assets := testAssets()
	if err := s.AddAccessory("star"); err != nil {
		t.Fatalf("add: %v", err)
	}
	doc := s.Snapshot()

	stack := NewCompositor2D(log, s.Registry(), assets).Compose(doc)
	scene := NewSceneBuilder3D(log, s.Registry(), assets).Build(doc)

	// Sabotage one renderer's output.
	for i := range scene.Nodes {
		if scene.Nodes[i].Kind == NodeSurface && scene.Nodes[i].Surface == string(SlotFace) {
			scene.Nodes[i].Color = "#badbad"
		}
	}
	if err := CheckConsistency(stack, scene); err == nil {
		t.Fatalf("expected drift to be detected")
	}
}

func TestEngravePositionReflectedInBothRenderers(t *testing.T) {
	s, _ := newTestSession(t)
	log := testLogger(t)
	assets := testAssets()
	compositor := NewCompositor2D(log, s.Registry(), assets)
	builder := NewSceneBuilder3D(log, s.Registry(), assets)

	for _, pos := range []EngravePosition{EngraveInside, EngraveOutside} {
		if err := s.SetEngraving("hey", "serif", pos); err != nil {
			t.Fatalf("engrave %s: %v", pos, err)
		}
		doc := s.Snapshot()
		stack := compositor.Compose(doc)
		scene := builder.Build(doc)
		if err := CheckConsistency(stack, scene); err != nil {
			t.Fatalf("drift at position %s: %v", pos, err)
		}
		if got := stack.view().engrave.Position; got != pos {
			t.Fatalf("2d engrave position %q, want %q", got, pos)
		}
	}
}
