package conversation

type EventType string

const (
	EventUser EventType = "user"
	EventBot  EventType = "bot"
)

// Event is one recorded turn of a conversation. Events are append-only:
// once stored they are never reordered or deleted.
type Event struct {
	Type    EventType `json:"type"`
	Message string    `json:"message"`
}
