package engine

// DefaultEngraveFee is the flat charge for an engraved plate. Deployments can
// override it per session via NewSession.
const DefaultEngraveFee = 4.5

// PriceBreakdown is the derived price of a document. Total is always
// Base + Accessories + Engrave; there is no other code path that produces a
// unit price.
type PriceBreakdown struct {
	Base               float64  `json:"base"`
	Accessories        float64  `json:"accessories"`
	Engrave            float64  `json:"engrave"`
	Total              float64  `json:"total"`
	UnknownAccessories []string `json:"unknown_accessories,omitempty"`
}

// Price is a pure function over a document snapshot. With no template chosen
// the product's listed base price applies, so the displayed price is never a
// nonsensical zero before customization begins. Accessory ids missing from
// the registry contribute nothing and are reported in the breakdown.
func Price(reg *Registry, doc Document, productBase, engraveFee float64) PriceBreakdown {
	var out PriceBreakdown

	out.Base = productBase
	if doc.TemplateID != "" {
		if tpl, ok := reg.Template(doc.TemplateID); ok {
			out.Base = tpl.BasePrice
		}
	}
	for _, p := range doc.Accessories {
		acc, ok := reg.Accessory(p.AccessoryID)
		if !ok {
			out.UnknownAccessories = append(out.UnknownAccessories, p.AccessoryID)
			continue
		}
		out.Accessories += acc.UnitPrice
	}
	if doc.Engrave != nil {
		out.Engrave = engraveFee
	}
	out.Total = out.Base + out.Accessories + out.Engrave
	return out
}
