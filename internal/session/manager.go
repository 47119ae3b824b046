package session

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/GriffinCanCode/calculator/internal/logging"
	"github.com/GriffinCanCode/calculator/internal/monitoring"
	"github.com/GriffinCanCode/calculator/internal/shared/id"
	"github.com/GriffinCanCode/calculator/internal/types"
)

// Manager tracks live sessions for a process. Sessions themselves are
// single-threaded; the manager is safe for concurrent use.
type Manager struct {
	sessions sync.Map
	logger   *logging.Logger
	metrics  *monitoring.Metrics
	ids      *id.Generator

	mu          sync.Mutex
	totalOpened int
	lastOpened  *time.Time
	lastClosed  *time.Time
}

// NewManager creates a new session manager. Logger and metrics are passed
// to every session it opens; either may be nil.
func NewManager(logger *logging.Logger, metrics *monitoring.Metrics) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Manager{
		logger:  logger,
		metrics: metrics,
		ids:     id.Default(),
	}
}

// Open creates and registers a new session
func (m *Manager) Open(scientific bool, opts ...Option) *Session {
	base := []Option{WithLogger(m.logger), WithMetrics(m.metrics), WithIDGenerator(m.ids)}
	if scientific {
		base = append(base, WithScientific())
	}
	s := New(append(base, opts...)...)

	m.sessions.Store(s.ID(), s)

	m.mu.Lock()
	m.totalOpened++
	opened := s.CreatedAt()
	m.lastOpened = &opened
	m.mu.Unlock()

	m.logger.Debug("session opened")
	return s
}

// Get returns a live session by ID
func (m *Manager) Get(sessionID id.SessionID) (*Session, bool) {
	v, ok := m.sessions.Load(sessionID)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

// Close tears down a session and forgets it
func (m *Manager) Close(sessionID id.SessionID) error {
	v, ok := m.sessions.LoadAndDelete(sessionID)
	if !ok {
		return fmt.Errorf("session %s not found", sessionID)
	}
	v.(*Session).Close()

	m.mu.Lock()
	now := time.Now()
	m.lastClosed = &now
	m.mu.Unlock()

	return nil
}

// CloseAll tears down every live session
func (m *Manager) CloseAll() {
	m.sessions.Range(func(key, _ interface{}) bool {
		_ = m.Close(key.(id.SessionID))
		return true
	})
}

// List returns metadata for all live sessions, oldest first
func (m *Manager) List() []types.SessionMetadata {
	var metadata []types.SessionMetadata

	m.sessions.Range(func(_, value interface{}) bool {
		metadata = append(metadata, value.(*Session).Metadata())
		return true
	})

	sort.Slice(metadata, func(i, j int) bool {
		return metadata[i].ID < metadata[j].ID
	})
	return metadata
}

// Stats returns session manager statistics
func (m *Manager) Stats() types.SessionStats {
	var active int
	m.sessions.Range(func(_, _ interface{}) bool {
		active++
		return true
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	return types.SessionStats{
		ActiveSessions: active,
		TotalOpened:    m.totalOpened,
		LastOpened:     m.lastOpened,
		LastClosed:     m.lastClosed,
	}
}
