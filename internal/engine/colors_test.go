package engine

import "testing"

func TestResolveAllAlwaysFullyPopulated(t *testing.T) {
	tpls := testTemplates()

	cases := []struct {
		name string
		tpl  *Template
	}{
		{"complete template", &tpls[0]},
		{"incomplete template", &tpls[2]},
		{"nil template", nil},
	}
	for _, tc := range cases {
		colors, _ := ResolveAll(tc.tpl, nil)
		for _, slot := range colorSlots {
			if colors[slot] == "" {
				t.Fatalf("%s: slot %s unresolved", tc.name, slot)
			}
		}
	}
}

func TestResolveColorFallbackOrder(t *testing.T) {
	tpl := testTemplates()[0]

	if got := ResolveColor(&tpl, SlotBand, "#override"); got != "#override" {
		t.Fatalf("override should win, got %q", got)
	}
	if got := ResolveColor(&tpl, SlotBand, ""); got != "#1b1e34" {
		t.Fatalf("template default should apply, got %q", got)
	}
	if got := ResolveColor(nil, SlotBand, ""); got != NeutralColor {
		t.Fatalf("neutral fallback should apply, got %q", got)
	}
}

func TestSelectIncompleteTemplateFillsNeutral(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.SelectTemplate("broken"); err != nil {
		t.Fatalf("select: %v", err)
	}
	doc := s.Snapshot()
	if doc.Colors[SlotBand] != "#000000" {
		t.Fatalf("expected declared band color, got %q", doc.Colors[SlotBand])
	}
	if doc.Colors[SlotFace] != NeutralColor || doc.Colors[SlotRim] != NeutralColor {
		t.Fatalf("missing slots should fill neutral, got %+v", doc.Colors)
	}
}
