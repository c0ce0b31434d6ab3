package engine

// Template is a named starting style: default colors per slot, its own base
// price and a recommended charm list. Immutable once loaded.
type Template struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	BasePrice     float64              `json:"base_price"`
	DefaultColors map[ColorSlot]string `json:"default_colors"`
	Recommended   []string             `json:"recommended"`
	PreviewKey    string               `json:"preview_key"`
}

// Accessory is a charm attachable to a design. Immutable once loaded.
type Accessory struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	VisualKey   string  `json:"visual_key"`
	UnitPrice   float64 `json:"unit_price"`
}

// Registry is the read-only template/accessory catalog for one product line.
// It is built once and safely shared by any number of sessions.
type Registry struct {
	templates     map[string]Template
	templateOrder []string
	accessories   map[string]Accessory
}

func NewRegistry(templates []Template, accessories []Accessory) *Registry {
	r := &Registry{
		templates:   make(map[string]Template, len(templates)),
		accessories: make(map[string]Accessory, len(accessories)),
	}
	for _, t := range templates {
		if t.ID == "" {
			continue
		}
		if _, dup := r.templates[t.ID]; dup {
			continue
		}
		r.templates[t.ID] = t
		r.templateOrder = append(r.templateOrder, t.ID)
	}
	for _, a := range accessories {
		if a.ID == "" {
			continue
		}
		if a.UnitPrice < 0 {
			a.UnitPrice = 0
		}
		r.accessories[a.ID] = a
	}
	return r
}

func (r *Registry) Template(id string) (Template, bool) {
	if r == nil {
		return Template{}, false
	}
	t, ok := r.templates[id]
	return t, ok
}

// Templates returns templates in registry load order. The first entry seeds a
// fresh session.
func (r *Registry) Templates() []Template {
	if r == nil {
		return nil
	}
	out := make([]Template, 0, len(r.templateOrder))
	for _, id := range r.templateOrder {
		out = append(out, r.templates[id])
	}
	return out
}

func (r *Registry) FirstTemplate() (Template, bool) {
	if r == nil || len(r.templateOrder) == 0 {
		return Template{}, false
	}
	return r.templates[r.templateOrder[0]], true
}

func (r *Registry) Accessory(id string) (Accessory, bool) {
	if r == nil {
		return Accessory{}, false
	}
	a, ok := r.accessories[id]
	return a, ok
}

func (r *Registry) Accessories() []Accessory {
	if r == nil {
		return nil
	}
	out := make([]Accessory, 0, len(r.accessories))
	for _, a := range r.accessories {
		out = append(out, a)
	}
	return out
}
