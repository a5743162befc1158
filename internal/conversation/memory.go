package conversation

import "sync"

// MemoryStore keeps per-conversation histories in a mutex-guarded map.
// maxTurns caps each history to the most recent N turns; zero means
// unbounded, which matches how the demo has always run.
type MemoryStore struct {
	mu        sync.RWMutex
	histories map[string][]Turn
	maxTurns  int
}

func NewMemoryStore(maxTurns int) *MemoryStore {
	return &MemoryStore{
		histories: make(map[string][]Turn),
		maxTurns:  maxTurns,
	}
}

func (s *MemoryStore) History(conversationID string) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.histories[conversationID]
	out := make([]Turn, len(history))
	copy(out, history)
	return out
}

func (s *MemoryStore) Append(conversationID string, turns ...Turn) {
	if len(turns) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.histories[conversationID], turns...)
	if s.maxTurns > 0 && len(history) > s.maxTurns {
		history = history[len(history)-s.maxTurns:]
	}
	s.histories[conversationID] = history
}
