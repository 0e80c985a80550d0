package core

// Interaction is the per-viewport interaction state supplied by the host
// input/focus system. Samplers consume it read-only.
type Interaction uint8

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionPressed
)

// String returns human-readable interaction state name
func (i Interaction) String() string {
	switch i {
	case InteractionHovered:
		return "Hovered"
	case InteractionPressed:
		return "Pressed"
	default:
		return "None"
	}
}
