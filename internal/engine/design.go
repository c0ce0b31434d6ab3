package engine

import (
	"strings"

	"github.com/google/uuid"
)

type EngravePosition string

const (
	EngraveInside  EngravePosition = "inside"
	EngraveOutside EngravePosition = "outside"
)

func ValidEngravePosition(p EngravePosition) bool {
	return p == EngraveInside || p == EngraveOutside
}

type Engraving struct {
	Text     string          `json:"text"`
	Font     string          `json:"font"`
	Position EngravePosition `json:"position"`
}

// Placement is one selected charm. SlotIndex is the entry's position in the
// accessory list, which is also its index into the layout ring.
type Placement struct {
	AccessoryID string `json:"accessory_id"`
	SlotIndex   int    `json:"slot_index"`
}

// Document is the single source of truth for one in-progress customization.
// UnitPrice is derived; every mutation recomputes it before returning, so a
// reader never observes a stale price.
type Document struct {
	ProductID   uuid.UUID            `json:"product_id"`
	TemplateID  string               `json:"template_id,omitempty"`
	Colors      map[ColorSlot]string `json:"colors"`
	Accessories []Placement          `json:"accessories,omitempty"`
	Engrave     *Engraving           `json:"engrave,omitempty"`
	UnitPrice   float64              `json:"unit_price"`
}

func (d Document) Clone() Document {
	out := d
	if d.Colors != nil {
		out.Colors = make(map[ColorSlot]string, len(d.Colors))
		for k, v := range d.Colors {
			out.Colors[k] = v
		}
	}
	if d.Accessories != nil {
		out.Accessories = make([]Placement, len(d.Accessories))
		copy(out.Accessories, d.Accessories)
	}
	if d.Engrave != nil {
		e := *d.Engrave
		out.Engrave = &e
	}
	return out
}

// SelectTemplate replaces colors with the template defaults and clears the
// charm selection (placement geometry is template-specific), but keeps any
// engraving: the engraving belongs to the product, not the template. Unknown
// ids leave the document untouched.
func (s *Session) SelectTemplate(templateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tpl, ok := s.reg.Template(templateID)
	if !ok {
		return ErrTemplateNotFound
	}
	s.doc.TemplateID = tpl.ID
	colors, usedNeutral := ResolveAll(&tpl, nil)
	if usedNeutral {
		s.log.Warn("Template colors incomplete, filled with neutral", "template_id", tpl.ID)
	}
	s.doc.Colors = colors
	s.doc.Accessories = nil
	s.recomputeLocked()
	s.notifyLocked(ChangeTemplateSelected)
	return nil
}

func (s *Session) SetColor(slot ColorSlot, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !ValidColorSlot(slot) {
		return ErrInvalidColorSlot
	}
	if s.doc.Colors == nil {
		s.doc.Colors, _ = ResolveAll(nil, nil)
	}
	if color == "" {
		// Clearing an override falls back through the template chain.
		tpl := s.currentTemplateLocked()
		s.doc.Colors[slot] = ResolveColor(tpl, slot, "")
	} else {
		s.doc.Colors[slot] = color
	}
	s.recomputeLocked()
	s.notifyLocked(ChangeColorSet)
	return nil
}

func (s *Session) AddAccessory(accessoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.doc.Accessories) >= SlotCapacity {
		return ErrAccessoryCapacity
	}
	if _, ok := s.reg.Accessory(accessoryID); !ok {
		return ErrUnknownAccessory
	}
	s.doc.Accessories = append(s.doc.Accessories, Placement{
		AccessoryID: accessoryID,
		SlotIndex:   len(s.doc.Accessories),
	})
	s.recomputeLocked()
	s.notifyLocked(ChangeAccessoryAdded)
	return nil
}

// RemoveAccessory removes the first matching entry and reflows the slot
// indices of everything after it, keeping the ring populated without gaps.
// Duplicate charm ids are allowed; first match wins.
func (s *Session) RemoveAccessory(accessoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.doc.Accessories {
		if p.AccessoryID == accessoryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrAccessoryNotInDesign
	}
	s.doc.Accessories = append(s.doc.Accessories[:idx], s.doc.Accessories[idx+1:]...)
	for i := range s.doc.Accessories {
		s.doc.Accessories[i].SlotIndex = i
	}
	if len(s.doc.Accessories) == 0 {
		s.doc.Accessories = nil
	}
	s.recomputeLocked()
	s.notifyLocked(ChangeAccessoryRemoved)
	return nil
}

func (s *Session) SetEngraving(text, font string, position EngravePosition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		return s.clearEngravingLocked()
	}
	if !ValidEngravePosition(position) {
		return ErrInvalidEngravePosition
	}
	s.doc.Engrave = &Engraving{Text: text, Font: font, Position: position}
	s.recomputeLocked()
	s.notifyLocked(ChangeEngravingSet)
	return nil
}

func (s *Session) ClearEngraving() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearEngravingLocked()
}

func (s *Session) clearEngravingLocked() error {
	if s.doc.Engrave == nil {
		return nil
	}
	s.doc.Engrave = nil
	s.recomputeLocked()
	s.notifyLocked(ChangeEngravingCleared)
	return nil
}

// Reset returns the document to its freshly-opened state: first template of
// the registry, default colors, no charms, no engraving.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked()
	s.notifyLocked(ChangeReset)
}

func (s *Session) currentTemplateLocked() *Template {
	if s.doc.TemplateID == "" {
		return nil
	}
	if tpl, ok := s.reg.Template(s.doc.TemplateID); ok {
		return &tpl
	}
	return nil
}
