package engine

// ColorSlot is a logical color target on the product. The set is closed; any
// other slot name is rejected at the mutation API.
type ColorSlot string

const (
	SlotBand ColorSlot = "band"
	SlotFace ColorSlot = "face"
	SlotRim  ColorSlot = "rim"
)

// NeutralColor is the last-resort fill. Rendering something plausible beats
// failing the UI, so color resolution never errors.
const NeutralColor = "#f5f5f4"

var colorSlots = []ColorSlot{SlotBand, SlotFace, SlotRim}

func ValidColorSlot(slot ColorSlot) bool {
	switch slot {
	case SlotBand, SlotFace, SlotRim:
		return true
	}
	return false
}

// ResolveColor applies the three-tier chain for one slot: explicit override,
// then the template default, then NeutralColor.
func ResolveColor(tpl *Template, slot ColorSlot, override string) string {
	if override != "" {
		return override
	}
	if tpl != nil {
		if v, ok := tpl.DefaultColors[slot]; ok && v != "" {
			return v
		}
	}
	return NeutralColor
}

// ResolveAll returns a fully populated slot map. The second return reports
// whether any slot fell through to NeutralColor, so callers can emit a
// warning signal without the resolver itself failing.
func ResolveAll(tpl *Template, overrides map[ColorSlot]string) (map[ColorSlot]string, bool) {
	out := make(map[ColorSlot]string, len(colorSlots))
	usedNeutral := false
	for _, slot := range colorSlots {
		v := ResolveColor(tpl, slot, overrides[slot])
		if v == NeutralColor {
			if overrides[slot] != NeutralColor {
				if tpl == nil || tpl.DefaultColors[slot] != NeutralColor {
					usedNeutral = true
				}
			}
		}
		out[slot] = v
	}
	return out, usedNeutral
}
