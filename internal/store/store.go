// Package store implements a scoped state container: one state value, one
// reducer, and an explicit list of subscribers notified after every dispatch.
//
// Views never look a store up implicitly. They are handed a Reader or a
// Handle when they are built.
package store

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reducer combines the current state and an action into the next state. It
// must not modify its input.
type Reducer[S, A any] func(state S, action A) S

// Reader is the read-only capability given to views that only display state.
type Reader[S any] interface {
	State() S
}

type subscriber[S any] struct {
	id uint64
	fn func(S)
}

// Store owns the state of one scope.
type Store[S, A any] struct {
	id     string
	name   string
	log    *zap.Logger
	reduce Reducer[S, A]

	mu       sync.Mutex
	state    S
	subs     []subscriber[S]
	nextID   uint64
	pending  []S
	draining bool
}

type Option func(*options)

type options struct {
	id   string
	name string
	log  *zap.Logger
}

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithID overrides the generated scope ID.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// WithName labels the scope in log output.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// New mounts a scope holding initial.
func New[S, A any](initial S, reduce Reducer[S, A], opts ...Option) *Store[S, A] {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	s := &Store[S, A]{
		id:     o.id,
		name:   o.name,
		reduce: reduce,
		state:  initial,
	}
	s.log = o.log.With(zap.String("scope_id", s.id))
	if s.name != "" {
		s.log = s.log.With(zap.String("scope", s.name))
	}
	s.log.Debug("store created", zap.Any("initial", initial))
	return s
}

// State returns the current snapshot.
func (s *Store[S, A]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies the reducer to the current state and a, stores the
// result and notifies subscribers in registration order. If the reducer
// panics the state is left unchanged and the panic reaches the caller.
//
// Notifications are delivered in the order states were produced. When a
// dispatch arrives while another call is notifying, either from a subscriber
// or from another goroutine, its state is queued and delivered by that call,
// so Dispatch may return before its own subscribers have run.
func (s *Store[S, A]) Dispatch(a A) S {
	s.log.Debug("dispatch", zap.Any("action", a))

	next, drain := s.apply(a)
	if drain {
		s.drain()
	}
	return next
}

func (s *Store[S, A]) apply(a A) (S, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.reduce(s.state, a)
	s.state = next
	s.pending = append(s.pending, next)
	if s.draining {
		return next, false
	}
	s.draining = true
	return next, true
}

// drain delivers queued states until none are left. draining is cleared
// under the same lock that observes the empty queue, so a concurrent apply
// either sees draining and enqueues, or becomes the next drainer.
func (s *Store[S, A]) drain() {
	done := false
	defer func() {
		if !done {
			s.mu.Lock()
			s.draining = false
			s.mu.Unlock()
		}
	}()
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.draining = false
			done = true
			s.mu.Unlock()
			return
		}
		next := s.pending[0]
		s.pending = s.pending[1:]
		subs := make([]subscriber[S], len(s.subs))
		copy(subs, s.subs)
		s.mu.Unlock()

		for _, sub := range subs {
			sub.fn(next)
		}
	}
}

// Subscribe registers fn to be called with the new state after each
// dispatch. The returned function removes it and may be called more than
// once.
func (s *Store[S, A]) Subscribe(fn func(S)) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber[S]{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Store[S, A]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// Close unmounts the scope by dropping every subscriber.
func (s *Store[S, A]) Close() {
	s.mu.Lock()
	n := len(s.subs)
	s.subs = nil
	s.mu.Unlock()
	s.log.Debug("store closed", zap.Int("subscribers", n))
}

// Handle returns the read and dispatch capability for this scope.
func (s *Store[S, A]) Handle() Handle[S, A] {
	return Handle[S, A]{store: s}
}

// Handle is what a view that both reads and dispatches is constructed with.
type Handle[S, A any] struct {
	store *Store[S, A]
}

func (h Handle[S, A]) State() S       { return h.store.State() }
func (h Handle[S, A]) Dispatch(a A) S { return h.store.Dispatch(a) }

func (h Handle[S, A]) Subscribe(fn func(S)) func() { return h.store.Subscribe(fn) }
