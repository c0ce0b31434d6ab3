package engine

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// CartLine is the wire form of a document attached to a cart line item or a
// saved design. Accessory order is preserved; UnitPrice is the engine's
// advisory price at conversion time and is revalidated server-side before it
// reaches an order.
type CartLine struct {
	ProductID   uuid.UUID            `json:"product_id"`
	TemplateID  string               `json:"template_id,omitempty"`
	Colors      map[ColorSlot]string `json:"colors"`
	Accessories []Placement          `json:"accessories,omitempty"`
	Engrave     *Engraving           `json:"engrave,omitempty"`
	UnitPrice   float64              `json:"unit_price"`
	Quantity    int                  `json:"quantity"`
}

// ToCartLine converts a document snapshot into a cart line. The document is
// consumed read-only; editing later seeds a new session via FromCartLine.
func ToCartLine(doc Document, quantity int) CartLine {
	if quantity < 1 {
		quantity = 1
	}
	d := doc.Clone()
	return CartLine{
		ProductID:   d.ProductID,
		TemplateID:  d.TemplateID,
		Colors:      d.Colors,
		Accessories: d.Accessories,
		Engrave:     d.Engrave,
		UnitPrice:   d.UnitPrice,
		Quantity:    quantity,
	}
}

// RestoreResult carries a rebuilt document plus whether any persisted
// reference no longer resolves against the current registry. Partial
// restores never fail; discontinued pieces are substituted or dropped and
// the caller decides how to message it.
type RestoreResult struct {
	Doc               Document
	PartiallyRestored bool
	MissingRefs       []string
}

// FromCartLine rebuilds an in-memory document from a persisted line. A
// discontinued template keeps the persisted colors (filling gaps with the
// neutral default); discontinued accessories are dropped and the remaining
// slots reflowed. The unit price is always recomputed from the restored
// document, never trusted from the persisted copy.
func FromCartLine(reg *Registry, line CartLine, productBase, engraveFee float64) RestoreResult {
	var res RestoreResult
	doc := Document{
		ProductID:  line.ProductID,
		TemplateID: line.TemplateID,
	}

	var tpl *Template
	if line.TemplateID != "" {
		if t, ok := reg.Template(line.TemplateID); ok {
			tpl = &t
		} else {
			res.PartiallyRestored = true
			res.MissingRefs = append(res.MissingRefs, "template:"+line.TemplateID)
			doc.TemplateID = ""
		}
	}
	doc.Colors, _ = ResolveAll(tpl, line.Colors)

	for _, p := range line.Accessories {
		if _, ok := reg.Accessory(p.AccessoryID); !ok {
			res.PartiallyRestored = true
			res.MissingRefs = append(res.MissingRefs, "accessory:"+p.AccessoryID)
			continue
		}
		doc.Accessories = append(doc.Accessories, Placement{
			AccessoryID: p.AccessoryID,
			SlotIndex:   len(doc.Accessories),
		})
	}

	if line.Engrave != nil && ValidEngravePosition(line.Engrave.Position) && line.Engrave.Text != "" {
		e := *line.Engrave
		doc.Engrave = &e
	}

	doc.UnitPrice = Price(reg, doc, productBase, engraveFee).Total
	res.Doc = doc
	return res
}

func EncodeCartLine(line CartLine) ([]byte, error) {
	b, err := json.Marshal(line)
	if err != nil {
		return nil, fmt.Errorf("encode cart line: %w", err)
	}
	return b, nil
}

func DecodeCartLine(data []byte) (CartLine, error) {
	var line CartLine
	if err := json.Unmarshal(data, &line); err != nil {
		return CartLine{}, fmt.Errorf("decode cart line: %w", err)
	}
	return line, nil
}
