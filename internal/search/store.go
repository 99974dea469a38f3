package search

import (
	"sync"

	"github.com/charmbracelet/log"

	"dexbar/internal/catalog"
	"dexbar/internal/domain"
	"dexbar/internal/eventbus"
)

// Option configures a Store
type Option func(*Store)

// WithHistoryLimit caps the history; 0 keeps it unbounded
func WithHistoryLimit(n int) Option {
	return func(s *Store) {
		s.history = NewHistory(n)
	}
}

// WithBus publishes domain events for every processed intent
func WithBus(bus eventbus.EventBus) Option {
	return func(s *Store) {
		s.bus = bus
	}
}

// WithLogger sets the logger used for intent tracing
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Store is the single owner of search state. Intents are applied one
// at a time; each produces exactly one published snapshot.
type Store struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	matcher *Matcher
	history *History
	state   State

	subs   map[uint64]chan State
	nextID uint64

	bus    eventbus.EventBus
	logger *log.Logger
}

// NewStore creates a store over cat in the idle state
func NewStore(cat *catalog.Catalog, opts ...Option) *Store {
	s := &Store{
		catalog: cat,
		matcher: NewMatcher(cat),
		history: NewHistory(0),
		subs:    make(map[uint64]chan State),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithPrefix("search")
	s.state = State{
		Results: cat.All(),
		History: s.history.Entries(),
	}
	return s
}

// State returns the latest published snapshot
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.copy()
}

// Dispatch applies intent and returns the resulting snapshot. A nil
// intent changes nothing.
func (s *Store) Dispatch(intent Intent) State {
	if intent == nil {
		return s.State()
	}

	s.mu.Lock()
	next := s.reduce(s.state, intent)
	next.Seq = s.state.Seq + 1
	s.state = next
	s.broadcast(next)
	published := next.copy()
	s.mu.Unlock()

	s.logger.Debug("intent applied",
		"intent", intent.Name(),
		"seq", published.Seq,
		"mode", published.Mode(),
		"query", published.Query,
		"results", len(published.Results),
	)
	s.publishEvents(intent, published)

	return published
}

// Matches returns the catalog entries matching query
func (s *Store) Matches(query string) []domain.Entity {
	return s.matcher.Matches(query)
}

// reduce computes the next state. Must hold s.mu.
func (s *Store) reduce(cur State, intent Intent) State {
	next := cur
	switch in := intent.(type) {
	case QueryChange:
		next.Query = in.Query
		if in.Query != "" {
			next.IsQuerying = true
			next.Results = s.matcher.Matches(in.Query)
		} else {
			next.IsQuerying = false
			next.Results = s.catalog.All()
		}

	case Select:
		// The caller keeps its Categories slice
		e := in.Entity.Clone()
		s.history.Push(e)
		selected := e.Clone()
		next.Query = e.DisplayName
		next.IsQuerying = true
		next.Selected = &selected
		next.Results = []domain.Entity{e.Clone()}
		next.History = s.history.Entries()

	case Back:
		next.Selected = nil

	case Cancel:
		next.Query = ""
		next.IsQuerying = false
		next.Selected = nil
		next.Results = s.catalog.All()
		next.History = s.history.Entries()
	}
	return next
}

// Subscribe returns a channel that receives every published snapshot.
// When the buffer is full the oldest pending snapshot is replaced, so a
// slow reader always ends up with the latest state. The returned func
// unsubscribes and closes the channel.
func (s *Store) Subscribe(buffer int) (<-chan State, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan State, buffer)

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			close(ch)
			s.mu.Unlock()
		})
	}
}

// broadcast delivers st to every subscriber. Must hold s.mu.
func (s *Store) broadcast(st State) {
	for _, ch := range s.subs {
		snapshot := st.copy()
		for {
			select {
			case ch <- snapshot:
			default:
				// Full: drop the oldest pending snapshot and retry
				select {
				case <-ch:
				default:
				}
				continue
			}
			break
		}
	}
}

func (s *Store) publishEvents(intent Intent, st State) {
	if s.bus == nil {
		return
	}
	switch in := intent.(type) {
	case QueryChange:
		s.bus.Publish(domain.QueryChangedEvent{Query: in.Query, MatchCount: len(st.Results)})
	case Select:
		s.bus.Publish(domain.EntitySelectedEvent{Entity: in.Entity, HistoryDepth: len(st.History)})
	case Back:
		s.bus.Publish(domain.SelectionClearedEvent{})
	case Cancel:
		s.bus.Publish(domain.SearchCancelledEvent{})
	}
	s.bus.Publish(domain.StateChangedEvent{Seq: st.Seq})
}
