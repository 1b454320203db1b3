// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/clarity/auth"
	"github.com/danielhkuo/clarity/insights"
	"github.com/danielhkuo/clarity/metrics"
	"github.com/danielhkuo/clarity/models"
	"github.com/danielhkuo/clarity/store"
)

// OrphanGrace is added to the insight timeout to decide when a Loading
// session with no local exchange has been abandoned.
const OrphanGrace = 15 * time.Second

// Fetcher produces the insights report for a code. *insights.Client
// satisfies it.
type Fetcher interface {
	FetchInsights(ctx context.Context, code models.PersonalityCode) (*models.InsightsReport, error)
}

// TransitionHook observes a state change after it has been saved. Hooks run
// while the Manager is locked and must not call back into it.
type TransitionHook func(id string, from, to models.SessionState)

// Manager owns every session's state. Mutations are serialised; the insight
// exchange runs in the background so callers never block on it.
type Manager struct {
	store   store.Store
	bank    Drawer
	fetcher Fetcher
	metrics *metrics.Metrics
	hooks   []TransitionHook
	now     func() time.Time

	orphanAfter time.Duration

	ctx context.Context // parent of every insight exchange

	mu       sync.Mutex
	inflight map[string]struct{}
	wg       sync.WaitGroup
}

type Option func(*Manager)

// WithMetrics records session activity on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(mgr *Manager) { mgr.metrics = m }
}

// WithTransitionHook registers h to run after every state change.
func WithTransitionHook(h TransitionHook) Option {
	return func(mgr *Manager) { mgr.hooks = append(mgr.hooks, h) }
}

// WithClock overrides time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(mgr *Manager) { mgr.now = now }
}

// WithOrphanAfter sets how long a session may sit in Loading without an
// exchange in this process before it is failed. Another replica sharing the
// store may still be running the exchange until then.
func WithOrphanAfter(d time.Duration) Option {
	return func(mgr *Manager) { mgr.orphanAfter = d }
}

// NewManager creates a Manager. Cancelling ctx aborts outstanding insight
// exchanges, which then fail like any other transport error.
func NewManager(ctx context.Context, st store.Store, bank Drawer, fetcher Fetcher, opts ...Option) *Manager {
	m := &Manager{
		store:    st,
		bank:     bank,
		fetcher:  fetcher,
		now:      time.Now,
		ctx:      ctx,
		inflight: make(map[string]struct{}),

		orphanAfter: insights.DefaultTimeout + OrphanGrace,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create stores a new session in Welcome.
func (m *Manager) Create(ctx context.Context) (models.SessionView, error) {
	now := m.now()
	s := &models.Session{
		ID:        auth.NewSessionID(),
		State:     models.StateWelcome,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.store.Put(ctx, s); err != nil {
		return models.SessionView{}, fmt.Errorf("failed to create session: %w", err)
	}

	m.metrics.IncSessionsCreated()
	slog.Info("session created", "session_id", s.ID)
	return View(s), nil
}

// Get returns the current view of session id.
func (m *Manager) Get(ctx context.Context, id string) (models.SessionView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.load(ctx, id)
	if err != nil {
		return models.SessionView{}, err
	}
	return View(s), nil
}

// Start begins a quiz of count questions.
func (m *Manager) Start(ctx context.Context, id string, count int) (models.SessionView, error) {
	view, err := m.update(ctx, id, func(s *models.Session) error {
		return Start(s, m.bank, count)
	})
	if err == nil {
		m.metrics.IncQuizStarted(count)
	}
	return view, err
}

// Answer records one answer. The final answer schedules the insight
// exchange and returns the Loading view immediately.
func (m *Manager) Answer(ctx context.Context, id string, value models.Answer) (models.SessionView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.load(ctx, id)
	if err != nil {
		return models.SessionView{}, err
	}

	from := s.State
	done, err := Answer(s, value)
	if err != nil {
		return models.SessionView{}, err
	}
	if err := m.save(ctx, s, from); err != nil {
		return models.SessionView{}, err
	}

	if done {
		m.metrics.IncQuizCompleted(string(s.Code))
		m.fetch(s.ID, s.Code)
	}
	return View(s), nil
}

// Restart resets session id to Welcome.
func (m *Manager) Restart(ctx context.Context, id string) (models.SessionView, error) {
	view, err := m.update(ctx, id, Restart)
	if err == nil {
		m.metrics.IncRestarts()
	}
	return view, err
}

// Wait blocks until every outstanding insight exchange has finished.
func (m *Manager) Wait() {
	m.wg.Wait()
}

// fetch starts the insight exchange for id. Must be called with m.mu held
// so the session is never observed in Loading without an exchange in flight.
func (m *Manager) fetch(id string, code models.PersonalityCode) {
	m.inflight[id] = struct{}{}
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()

		start := time.Now()
		report, err := m.fetcher.FetchInsights(m.ctx, code)
		m.metrics.ObserveInsightRequest(insights.Kind(err), time.Since(start))
		if err != nil {
			slog.Error("insight generation failed", "session_id", id, "code", code, "kind", insights.Kind(err), "error", err)
		}

		// The base context may already be cancelled at shutdown; the
		// outcome is still recorded.
		ctx := context.WithoutCancel(m.ctx)

		m.mu.Lock()
		defer m.mu.Unlock()
		// Cleared last so load below does not treat the session as orphaned.
		defer delete(m.inflight, id)

		s, loadErr := m.load(ctx, id)
		if loadErr != nil {
			slog.Warn("session gone before insights arrived", "session_id", id, "error", loadErr)
			return
		}
		if s.State != models.StateLoading || s.Code != code {
			return
		}

		from := s.State
		if err != nil {
			_ = Fail(s)
		} else {
			_ = Complete(s, report)
		}
		if saveErr := m.save(ctx, s, from); saveErr != nil {
			slog.Error("failed to save insight outcome", "session_id", id, "error", saveErr)
		}
	}()
}

// update runs fn on the stored session under the lock and saves the result.
// Nothing is saved when fn fails.
func (m *Manager) update(ctx context.Context, id string, fn func(*models.Session) error) (models.SessionView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.load(ctx, id)
	if err != nil {
		return models.SessionView{}, err
	}

	from := s.State
	if err := fn(s); err != nil {
		return models.SessionView{}, err
	}
	if err := m.save(ctx, s, from); err != nil {
		return models.SessionView{}, err
	}
	return View(s), nil
}

// load fetches session id. Must be called with m.mu held. A session left in
// Loading longer than orphanAfter with no exchange in this process (the
// owning process died mid-request) is failed so the user can retry. Younger
// ones may belong to another replica and are returned as they are.
func (m *Manager) load(ctx context.Context, id string) (*models.Session, error) {
	s, err := m.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if s.State == models.StateLoading {
		_, local := m.inflight[id]
		if age := m.now().Sub(s.UpdatedAt); !local && age > m.orphanAfter {
			slog.Warn("recovering orphaned loading session", "session_id", id, "age", age)
			_ = Fail(s)
			if err := m.save(ctx, s, models.StateLoading); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

// save persists s and notifies hooks when its state changed. Must be called
// with m.mu held.
func (m *Manager) save(ctx context.Context, s *models.Session, from models.SessionState) error {
	s.UpdatedAt = m.now()
	if err := m.store.Put(ctx, s); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	if from != s.State {
		slog.Debug("session transition", "session_id", s.ID, "from", from, "to", s.State)
		for _, h := range m.hooks {
			h(s.ID, from, s.State)
		}
	}
	return nil
}
