package conversation

import (
	"sync"

	"github.com/samber/do"
)

// Service holds every conversation history for the lifetime of the
// process. Histories are kept in memory only; nothing survives a restart.
type Service struct {
	mu        sync.Mutex
	histories map[string][]Event
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		histories: make(map[string][]Event),
	}, nil
}

// Begin opens a request-scoped view over the history of id. Unknown ids
// start with an empty history; there is no failure case. The baseline
// marks how many events existed before this request so NewEvents can
// report only what the request produced.
func (s *Service) Begin(id string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &Conversation{
		svc:      s,
		id:       id,
		baseline: len(s.histories[id]),
	}
}

// History returns a copy of the full event sequence for id, empty if the
// id has never been seen.
func (s *Service) History(id string) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.histories[id]

	clone := make([]Event, len(history))
	copy(clone, history)

	return clone
}

func (s *Service) append(id string, ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.histories[id] = append(s.histories[id], ev)
}
