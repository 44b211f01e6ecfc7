package models

import (
	"sync"

	"Pathfinder/astar"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many sessions")
)

// Session is a stepped search over its own grid. Every engine callback
// becomes a frame.
type Session struct {
	ID     string
	Grid   *astar.Grid
	Engine *astar.Engine

	mu      sync.Mutex
	steps   int
	pending []*StepFrame
}

func newSession(grid *astar.Grid, logger *zap.Logger) (*Session, error) {
	s := &Session{ID: uuid.New().String(), Grid: grid}
	engine, err := astar.NewEngine(grid, grid.Start(), grid.End(),
		astar.WithLogger(logger.With(zap.String("session", s.ID))),
		astar.WithStepFunc(s.capture))
	if err != nil {
		return nil, err
	}
	s.Engine = engine
	return s, nil
}

func (s *Session) capture() {
	s.steps++
	s.pending = append(s.pending, NewStepFrame(s.steps, s.Grid, s.Engine))
}

// Advance runs one engine step and returns the frames it produced. The step
// that finishes the search also yields a closing frame with the final status.
func (s *Session) Advance() ([]*StepFrame, astar.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Engine.Status() != astar.Running {
		return []*StepFrame{NewStepFrame(s.steps, s.Grid, s.Engine)}, s.Engine.Status()
	}
	s.pending = nil
	status := s.Engine.Step()
	if status != astar.Running {
		s.pending = append(s.pending, NewStepFrame(s.steps, s.Grid, s.Engine))
	}
	frames := s.pending
	s.pending = nil
	return frames, status
}

// Snapshot is a frame of the current state without stepping.
func (s *Session) Snapshot() *StepFrame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewStepFrame(s.steps, s.Grid, s.Engine)
}

// Done reports whether the search has finished.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Engine.Status() != astar.Running
}

// SessionManager keeps the live sessions by id.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	limit    int
	logger   *zap.Logger
}

// NewSessionManager holds at most limit sessions; limit <= 0 means no limit.
func NewSessionManager(limit int, logger *zap.Logger) *SessionManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionManager{
		sessions: make(map[string]*Session),
		limit:    limit,
		logger:   logger,
	}
}

// Create starts a session searching grid from its start to its end. At the
// limit, finished sessions are evicted to make room.
func (m *SessionManager) Create(grid *astar.Grid) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.limit > 0 && len(m.sessions) >= m.limit {
		m.evictDone()
	}
	if m.limit > 0 && len(m.sessions) >= m.limit {
		return nil, errors.Wrapf(ErrTooManySessions, "limit %d", m.limit)
	}
	s, err := newSession(grid, m.logger)
	if err != nil {
		return nil, err
	}
	m.sessions[s.ID] = s
	m.logger.Info("session created", zap.String("session", s.ID), zap.Int("dimension", grid.Dimension()))
	return s, nil
}

// evictDone drops finished sessions. Callers hold m.mu.
func (m *SessionManager) evictDone() {
	for id, s := range m.sessions {
		if s.Done() {
			delete(m.sessions, id)
			m.logger.Info("session evicted", zap.String("session", id))
		}
	}
}

func (m *SessionManager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.Wrapf(ErrSessionNotFound, "id %q", id)
	}
	return s, nil
}

func (m *SessionManager) Release(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return errors.Wrapf(ErrSessionNotFound, "id %q", id)
	}
	delete(m.sessions, id)
	m.logger.Info("session released", zap.String("session", id))
	return nil
}

func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
