package engine

import (
	"fmt"
)

// DefaultCharmVisual is drawn whenever an accessory's visual key cannot be
// resolved. A blank slot on the ring is a rendering bug, not a degraded state.
const DefaultCharmVisual = "charm-generic"

// AssetCatalog maps template ids to renderer asset keys. Both renderers must
// share one catalog so a template switch swaps the 2D artwork and the 3D
// model in lockstep, and a missing entry falls back to the default asset
// instead of rendering nothing.
type AssetCatalog struct {
	templateAssets map[string]string
	defaultAsset   string
}

func NewAssetCatalog(templateAssets map[string]string, defaultAsset string) *AssetCatalog {
	assets := make(map[string]string, len(templateAssets))
	for k, v := range templateAssets {
		assets[k] = v
	}
	if defaultAsset == "" {
		defaultAsset = "template-default"
	}
	return &AssetCatalog{templateAssets: assets, defaultAsset: defaultAsset}
}

// TemplateAsset resolves the asset key for a template id. The bool reports
// whether the default fallback was used.
func (c *AssetCatalog) TemplateAsset(templateID string) (string, bool) {
	if c == nil {
		return "template-default", true
	}
	if key, ok := c.templateAssets[templateID]; ok && key != "" {
		return key, false
	}
	return c.defaultAsset, true
}

// renderView is the renderer-agnostic projection both adapters must agree on.
// Consistency between the 2D layer stack and the 3D scene is checked on this
// view, not on the concrete primitives.
type renderView struct {
	asset   string
	colors  map[ColorSlot]string
	charms  []charmView
	engrave *Engraving
}

type charmView struct {
	accessoryID string
	visualKey   string
	anchor      string
}

func diffViews(a, b renderView) error {
	if a.asset != b.asset {
		return fmt.Errorf("template asset mismatch: %q vs %q", a.asset, b.asset)
	}
	for _, slot := range colorSlots {
		if a.colors[slot] != b.colors[slot] {
			return fmt.Errorf("color mismatch on %s: %q vs %q", slot, a.colors[slot], b.colors[slot])
		}
	}
	if len(a.charms) != len(b.charms) {
		return fmt.Errorf("accessory count mismatch: %d vs %d", len(a.charms), len(b.charms))
	}
	for i := range a.charms {
		if a.charms[i].accessoryID != b.charms[i].accessoryID {
			return fmt.Errorf("accessory order mismatch at %d: %q vs %q", i, a.charms[i].accessoryID, b.charms[i].accessoryID)
		}
		if a.charms[i].anchor != b.charms[i].anchor {
			return fmt.Errorf("anchor mismatch at %d: %q vs %q", i, a.charms[i].anchor, b.charms[i].anchor)
		}
		if a.charms[i].visualKey != b.charms[i].visualKey {
			return fmt.Errorf("visual key mismatch at %d: %q vs %q", i, a.charms[i].visualKey, b.charms[i].visualKey)
		}
	}
	if (a.engrave == nil) != (b.engrave == nil) {
		return fmt.Errorf("engraving presence mismatch")
	}
	if a.engrave != nil && a.engrave.Position != b.engrave.Position {
		return fmt.Errorf("engraving position mismatch: %q vs %q", a.engrave.Position, b.engrave.Position)
	}
	return nil
}

// CheckConsistency validates the cross-renderer contract: same resolved
// colors on the same logical surfaces, same accessory count, relative order
// and anchors, same engraving presence and position, same template asset.
func CheckConsistency(stack LayerStack, scene Scene) error {
	if err := diffViews(stack.view(), scene.view()); err != nil {
		return fmt.Errorf("renderer drift: %w", err)
	}
	return nil
}

func charmVisual(reg *Registry, accessoryID string) string {
	if acc, ok := reg.Accessory(accessoryID); ok && acc.VisualKey != "" {
		return acc.VisualKey
	}
	return DefaultCharmVisual
}
