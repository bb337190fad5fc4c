package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/service/weekcache"
)

// Registry реестр сессий пользователей
// Сессия создаётся при первом обращении и удаляется после idleTTL без обращений.
type Registry struct {
	repo     ProfessionalRepository
	store    AppointmentStore
	clock    TimeProvider
	loc      *time.Location
	recorder Recorder
	idleTTL  time.Duration
	logger   Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry создает реестр сессий
// idleTTL <= 0 отключает вытеснение
func NewRegistry(
	repo ProfessionalRepository,
	store AppointmentStore,
	clock TimeProvider,
	loc *time.Location,
	recorder Recorder,
	idleTTL time.Duration,
	logger Logger,
) *Registry {
	return &Registry{
		repo:     repo,
		store:    store,
		clock:    clock,
		loc:      loc,
		recorder: recorder,
		idleTTL:  idleTTL,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Get возвращает сессию пользователя, создавая её при необходимости
func (r *Registry) Get(_ context.Context, userID string) (*Session, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[userID]; ok {
		s.lastUsed = now
		return s, nil
	}

	s := &Session{
		userID:   userID,
		repo:     r.repo,
		logger:   r.logger,
		lastUsed: now,
	}
	s.cache = weekcache.NewCache(r.store, s, r.clock, r.loc, r.recorder, r.logger)
	r.sessions[userID] = s

	r.logger.Info("Get: new session for user=%s", userID)
	return s, nil
}

// CacheFor возвращает недельный кэш сессии пользователя
func (r *Registry) CacheFor(ctx context.Context, userID string) (*weekcache.Cache, error) {
	s, err := r.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Cache(), nil
}

// EvictIdle удаляет сессии, к которым не обращались дольше idleTTL
// Возвращает количество удалённых сессий.
func (r *Registry) EvictIdle(now time.Time) int {
	if r.idleTTL <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for userID, s := range r.sessions {
		if now.Sub(s.lastUsed) > r.idleTTL {
			delete(r.sessions, userID)
			evicted++
		}
	}
	return evicted
}

// RunEviction периодически вытесняет простаивающие сессии до закрытия stopCh
func (r *Registry) RunEviction(interval time.Duration, stopCh <-chan struct{}) {
	if r.idleTTL <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := r.EvictIdle(r.now()); n > 0 {
				r.logger.Info("RunEviction: %d idle sessions evicted, %d active", n, r.Len())
			}
		case <-stopCh:
			return
		}
	}
}

// Len количество активных сессий
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) now() time.Time {
	if r.clock == nil {
		return time.Now()
	}
	return r.clock.Now()
}
