package engine

import (
	"math"
	"sync"

	"github.com/yungbote/charmworks-backend/internal/logger"
)

// Layer kinds, bottom to top: band, face, rim, artwork, engraving (inside),
// charms, engraving (outside).
const (
	LayerBand      = "band"
	LayerFace      = "face"
	LayerRim       = "rim"
	LayerArtwork   = "artwork"
	LayerCharm     = "charm"
	LayerEngraving = "engraving"
)

// Layer is one sprite in the flat preview. X/Y are normalized 0..1 canvas
// coordinates, Z the compositing order.
type Layer struct {
	Kind        string  `json:"kind"`
	Key         string  `json:"key,omitempty"`
	Color       string  `json:"color,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           int     `json:"z"`
	Anchor      string  `json:"anchor,omitempty"`
	AccessoryID string  `json:"accessory_id,omitempty"`
	Text        string  `json:"text,omitempty"`
	Font        string  `json:"font,omitempty"`
}

type LayerStack struct {
	TemplateAsset string  `json:"template_asset"`
	Layers        []Layer `json:"layers"`
}

// Compositor2D projects a document onto an ordered layer stack. It holds no
// document state of its own beyond the latest composed output.
type Compositor2D struct {
	mu     sync.Mutex
	log    *logger.Logger
	reg    *Registry
	assets *AssetCatalog
	latest LayerStack
}

func NewCompositor2D(log *logger.Logger, reg *Registry, assets *AssetCatalog) *Compositor2D {
	return &Compositor2D{
		log:    log.With("renderer", "Compositor2D"),
		reg:    reg,
		assets: assets,
	}
}

func (c *Compositor2D) Name() string { return "2d" }

// Apply is the subscription entry point: recompose on every document change.
func (c *Compositor2D) Apply(change Change) {
	stack := c.Compose(change.Doc)
	c.mu.Lock()
	c.latest = stack
	c.mu.Unlock()
}

func (c *Compositor2D) Latest() LayerStack {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest
}

func (c *Compositor2D) Compose(doc Document) LayerStack {
	asset, fellBack := c.assets.TemplateAsset(doc.TemplateID)
	if fellBack && doc.TemplateID != "" {
		c.log.Warn("Missing 2D artwork for template, using default", "template_id", doc.TemplateID)
	}

	colors, _ := ResolveAll(nil, doc.Colors)
	layers := []Layer{
		{Kind: LayerBand, Color: colors[SlotBand], X: 0.5, Y: 0.5, Z: 0},
		{Kind: LayerFace, Color: colors[SlotFace], X: 0.5, Y: 0.5, Z: 1},
		{Kind: LayerRim, Color: colors[SlotRim], X: 0.5, Y: 0.5, Z: 2},
		{Kind: LayerArtwork, Key: asset, X: 0.5, Y: 0.5, Z: 3},
	}

	if doc.Engrave != nil && doc.Engrave.Position == EngraveInside {
		layers = append(layers, Layer{
			Kind: LayerEngraving, Text: doc.Engrave.Text, Font: doc.Engrave.Font,
			Anchor: string(doc.Engrave.Position), X: 0.5, Y: 0.62, Z: 4,
		})
	}

	positions := PositionsFor(len(doc.Accessories))
	for i, p := range doc.Accessories {
		pos := positions[i]
		x, y := ringPoint(pos)
		layers = append(layers, Layer{
			Kind:        LayerCharm,
			Key:         charmVisual(c.reg, p.AccessoryID),
			AccessoryID: p.AccessoryID,
			Anchor:      pos.Anchor,
			X:           x,
			Y:           y,
			Z:           10 + i,
		})
	}

	if doc.Engrave != nil && doc.Engrave.Position == EngraveOutside {
		layers = append(layers, Layer{
			Kind: LayerEngraving, Text: doc.Engrave.Text, Font: doc.Engrave.Font,
			Anchor: string(doc.Engrave.Position), X: 0.5, Y: 0.94, Z: 30,
		})
	}

	return LayerStack{TemplateAsset: asset, Layers: layers}
}

// ringPoint maps a ring slot to normalized canvas coordinates. Angle 0 is
// 12 o'clock, increasing clockwise.
func ringPoint(pos SlotPosition) (float64, float64) {
	rad := pos.Angle * math.Pi / 180
	x := 0.5 + 0.5*pos.Radius*math.Sin(rad)
	y := 0.5 - 0.5*pos.Radius*math.Cos(rad)
	return x, y
}

func (ls LayerStack) view() renderView {
	v := renderView{
		asset:  ls.TemplateAsset,
		colors: make(map[ColorSlot]string, len(colorSlots)),
	}
	for _, l := range ls.Layers {
		switch l.Kind {
		case LayerBand:
			v.colors[SlotBand] = l.Color
		case LayerFace:
			v.colors[SlotFace] = l.Color
		case LayerRim:
			v.colors[SlotRim] = l.Color
		case LayerCharm:
			v.charms = append(v.charms, charmView{
				accessoryID: l.AccessoryID,
				visualKey:   l.Key,
				anchor:      l.Anchor,
			})
		case LayerEngraving:
			v.engrave = &Engraving{Text: l.Text, Font: l.Font, Position: EngravePosition(l.Anchor)}
		}
	}
	return v
}
