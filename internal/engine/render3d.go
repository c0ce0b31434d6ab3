package engine

import (
	"math"
	"sync"

	"github.com/yungbote/charmworks-backend/internal/logger"
)

const (
	NodeSurface   = "surface"
	NodeCharm     = "charm"
	NodeEngraving = "engraving"
)

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// SceneNode is one procedurally placed object. Order preserves the document's
// accessory insertion order for charm nodes.
type SceneNode struct {
	Kind        string  `json:"kind"`
	Key         string  `json:"key,omitempty"`
	Surface     string  `json:"surface,omitempty"`
	Color       string  `json:"color,omitempty"`
	Position    Vec3    `json:"position"`
	Order       int     `json:"order"`
	Anchor      string  `json:"anchor,omitempty"`
	AccessoryID string  `json:"accessory_id,omitempty"`
	Text        string  `json:"text,omitempty"`
	Font        string  `json:"font,omitempty"`
}

type Scene struct {
	ModelAsset string      `json:"model_asset"`
	Nodes      []SceneNode `json:"nodes"`
}

// SceneBuilder3D projects a document onto a 3D scene graph. It shares the
// asset catalog and ring layout with the 2D compositor, so both views stay in
// agreement for the same document.
type SceneBuilder3D struct {
	mu     sync.Mutex
	log    *logger.Logger
	reg    *Registry
	assets *AssetCatalog
	latest Scene
}

func NewSceneBuilder3D(log *logger.Logger, reg *Registry, assets *AssetCatalog) *SceneBuilder3D {
	return &SceneBuilder3D{
		log:    log.With("renderer", "SceneBuilder3D"),
		reg:    reg,
		assets: assets,
	}
}

func (b *SceneBuilder3D) Name() string { return "3d" }

func (b *SceneBuilder3D) Apply(change Change) {
	scene := b.Build(change.Doc)
	b.mu.Lock()
	b.latest = scene
	b.mu.Unlock()
}

func (b *SceneBuilder3D) Latest() Scene {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.latest
}

func (b *SceneBuilder3D) Build(doc Document) Scene {
	asset, fellBack := b.assets.TemplateAsset(doc.TemplateID)
	if fellBack && doc.TemplateID != "" {
		b.log.Warn("Missing 3D model for template, using default", "template_id", doc.TemplateID)
	}

	colors, _ := ResolveAll(nil, doc.Colors)
	nodes := []SceneNode{
		{Kind: NodeSurface, Surface: string(SlotBand), Color: colors[SlotBand]},
		{Kind: NodeSurface, Surface: string(SlotFace), Color: colors[SlotFace]},
		{Kind: NodeSurface, Surface: string(SlotRim), Color: colors[SlotRim]},
	}

	positions := PositionsFor(len(doc.Accessories))
	for i, p := range doc.Accessories {
		pos := positions[i]
		nodes = append(nodes, SceneNode{
			Kind:        NodeCharm,
			Key:         charmVisual(b.reg, p.AccessoryID),
			AccessoryID: p.AccessoryID,
			Anchor:      pos.Anchor,
			Position:    ringPoint3D(pos),
			Order:       i,
		})
	}

	if doc.Engrave != nil {
		// Inside sits on the face plane, outside on the case back.
		y := 0.01
		if doc.Engrave.Position == EngraveOutside {
			y = -0.05
		}
		nodes = append(nodes, SceneNode{
			Kind:     NodeEngraving,
			Text:     doc.Engrave.Text,
			Font:     doc.Engrave.Font,
			Anchor:   string(doc.Engrave.Position),
			Position: Vec3{X: 0, Y: y, Z: 0},
		})
	}

	return Scene{ModelAsset: asset, Nodes: nodes}
}

// ringPoint3D places a ring slot on the face plane. Same angle convention as
// the 2D compositor: 0 degrees at 12 o'clock, clockwise.
func ringPoint3D(pos SlotPosition) Vec3 {
	rad := pos.Angle * math.Pi / 180
	return Vec3{
		X: pos.Radius * math.Sin(rad),
		Y: 0.02,
		Z: -pos.Radius * math.Cos(rad),
	}
}

func (sc Scene) view() renderView {
	v := renderView{
		asset:  sc.ModelAsset,
		colors: make(map[ColorSlot]string, len(colorSlots)),
	}
	for _, n := range sc.Nodes {
		switch n.Kind {
		case NodeSurface:
			v.colors[ColorSlot(n.Surface)] = n.Color
		case NodeCharm:
			v.charms = append(v.charms, charmView{
				accessoryID: n.AccessoryID,
				visualKey:   n.Key,
				anchor:      n.Anchor,
			})
		case NodeEngraving:
			v.engrave = &Engraving{Text: n.Text, Font: n.Font, Position: EngravePosition(n.Anchor)}
		}
	}
	return v
}
