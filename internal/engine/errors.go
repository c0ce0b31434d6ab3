package engine

import "errors"

// Validation errors reject the operation and leave the document unchanged.
// Reference gaps (missing template at render time, discontinued accessory in a
// persisted design) are never surfaced as errors; they resolve through the
// fallback chains in colors.go, render.go and persist.go.
var (
	ErrTemplateNotFound       = errors.New("template not found")
	ErrInvalidColorSlot       = errors.New("invalid color slot")
	ErrAccessoryCapacity      = errors.New("accessory capacity exceeded")
	ErrUnknownAccessory       = errors.New("unknown accessory")
	ErrAccessoryNotInDesign   = errors.New("accessory not in design")
	ErrInvalidEngravePosition = errors.New("invalid engrave position")
	ErrRegistryUnavailable    = errors.New("registry unavailable")
)
