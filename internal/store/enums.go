package store

// Analytics event ENUMs
const (
	EventTypeView = "view"
	EventTypeCopy = "copy"
)

// IsValidEventType reports whether eventType is one of the recorded event kinds
func IsValidEventType(eventType string) bool {
	switch eventType {
	case EventTypeView, EventTypeCopy:
		return true
	default:
		return false
	}
}
