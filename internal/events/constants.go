package events

// Hook names
const (
	EventTypePreCreateCombatant EventType = "preCreateCombatant"
	EventTypeRenderChatMessage  EventType = "renderChatMessage"
	EventTypePrepareCheck       EventType = "prepareCheck"
	EventTypeDamageApplied      EventType = "damageApplied"
)

// Priority levels for listener order
const (
	PriorityGuard       = 0   // Vetoes run before anything else
	PrioritySystem      = 100 // Built-in rules listeners
	PriorityFeatures    = 200 // Class features
	PriorityTemporary   = 400 // Situational adjustments
	PriorityPostProcess = 500 // Caps, limits
)
