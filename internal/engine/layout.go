package engine

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

// SlotCapacity is the fixed size of the placement ring. The mutation API
// rejects additions past this count, so layout code never sees an overflow.
const SlotCapacity = 12

// SlotPosition is one placement slot on the ring. Angle is degrees clockwise
// from 12 o'clock, Radius a 0..1 fraction of the face radius. Anchor is the
// conceptual location label both renderers must agree on for a given index.
type SlotPosition struct {
	Index  int     `yaml:"-" json:"index"`
	Anchor string  `yaml:"anchor" json:"anchor"`
	Angle  float64 `yaml:"angle" json:"angle"`
	Radius float64 `yaml:"radius" json:"radius"`
}

//go:embed layout.yaml
var layoutYAML []byte

type layoutConfig struct {
	Version int            `yaml:"version"`
	Slots   []SlotPosition `yaml:"slots"`
}

var (
	slotOnce  sync.Once
	slotTable []SlotPosition
)

// ring returns the slot table, parsing the embedded config once. A malformed
// or short config falls back to a generated even ring so the table is always
// exactly SlotCapacity entries.
func ring() []SlotPosition {
	slotOnce.Do(func() {
		var cfg layoutConfig
		if err := yaml.Unmarshal(layoutYAML, &cfg); err == nil && len(cfg.Slots) >= SlotCapacity {
			slotTable = cfg.Slots[:SlotCapacity]
		} else {
			slotTable = fallbackRing()
		}
		for i := range slotTable {
			slotTable[i].Index = i
		}
	})
	return slotTable
}

func fallbackRing() []SlotPosition {
	anchors := []string{
		"top", "bottom", "right", "left",
		"top-right", "bottom-left", "top-left", "bottom-right",
		"upper-right", "lower-left", "upper-left", "lower-right",
	}
	out := make([]SlotPosition, SlotCapacity)
	for i := 0; i < SlotCapacity; i++ {
		out[i] = SlotPosition{
			Anchor: anchors[i],
			Angle:  float64((i * 150) % 360),
			Radius: 0.7,
		}
	}
	return out
}

// PositionsFor returns the first count ring slots in table order. The result
// depends only on count, never on which accessories occupy the slots, so both
// renderers derive identical positions from the same document.
func PositionsFor(count int) []SlotPosition {
	if count <= 0 {
		return nil
	}
	if count > SlotCapacity {
		count = SlotCapacity
	}
	table := ring()
	out := make([]SlotPosition, count)
	copy(out, table[:count])
	return out
}
