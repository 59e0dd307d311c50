package conversation

// Conversation is a view over one identifier's history, scoped to a single
// request. It appends to the shared store in place; the baseline index is
// the only state it owns.
type Conversation struct {
	svc      *Service
	id       string
	baseline int
}

func (c *Conversation) AddUserMessage(text string) {
	c.svc.append(c.id, Event{Type: EventUser, Message: text})
}

func (c *Conversation) AddBotMessage(text string) {
	c.svc.append(c.id, Event{Type: EventBot, Message: text})
}

// NewEvents returns a copy of the events appended since Begin, in order.
func (c *Conversation) NewEvents() []Event {
	c.svc.mu.Lock()
	defer c.svc.mu.Unlock()

	history := c.svc.histories[c.id]

	clone := make([]Event, len(history)-c.baseline)
	copy(clone, history[c.baseline:])

	return clone
}

// Len is the total number of stored events, prior history included.
func (c *Conversation) Len() int {
	c.svc.mu.Lock()
	defer c.svc.mu.Unlock()

	return len(c.svc.histories[c.id])
}
