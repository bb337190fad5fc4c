package create_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/events"
	"github.com/m04kA/SMC-AgendaService/internal/service/weekcache"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type fakeStore struct {
	mu        sync.Mutex
	rows      []domain.Appointment
	creates   int
	createErr error

	createGate    chan struct{}
	createEntered chan struct{}
}

func (s *fakeStore) GetActiveByProfessionalAndDates(_ context.Context, professionalID int64, dates []time.Time) ([]domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Appointment, 0)
	for _, r := range s.rows {
		if r.Cancelled || ptr.Value(r.ProfessionalID) != professionalID {
			continue
		}
		for _, d := range dates {
			if domain.SameDay(r.Date, d) {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

func (s *fakeStore) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if s.createEntered != nil {
		s.createEntered <- struct{}{}
	}
	if s.createGate != nil {
		<-s.createGate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.creates++
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *a
	created.ID = int64(500 + s.creates)
	s.rows = append(s.rows, created)
	return &created, nil
}

func (s *fakeStore) UpdateDetails(context.Context, int64, domain.AppointmentDetails) (*domain.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeStore) Cancel(context.Context, int64, time.Time) error {
	return errors.New("not implemented")
}

type fakeIdentity struct{}

func (fakeIdentity) CurrentUserID(context.Context) (string, error)        { return "user-1", nil }
func (fakeIdentity) CurrentProfessionalID(context.Context) (int64, error) { return 7, nil }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type noopRecorder struct{}

func (noopRecorder) WeekCacheHit()  {}
func (noopRecorder) WeekCacheMiss() {}

type fakeCaches struct{ cache *weekcache.Cache }

func (f *fakeCaches) CacheFor(_ context.Context, userID string) (*weekcache.Cache, error) {
	if userID == "" {
		return nil, weekcache.ErrUnauthenticated
	}
	return f.cache, nil
}

type fakePublisher struct {
	mu    sync.Mutex
	types []events.Type
	err   error
}

func (p *fakePublisher) Publish(_ context.Context, eventType events.Type, _ string, _ *domain.Appointment) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.types = append(p.types, eventType)
	return p.err
}

var date = time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

func newUseCase(store *fakeStore) (*UseCase, *weekcache.Cache, *fakePublisher) {
	cache := weekcache.NewCache(store, fakeIdentity{}, fixedClock{now: date.Add(9 * time.Hour)}, time.UTC, noopRecorder{}, logger.Nop())
	publisher := &fakePublisher{}
	return NewUseCase(&fakeCaches{cache: cache}, publisher, logger.Nop()), cache, publisher
}

func validRequest() *Request {
	return &Request{
		UserID:    "user-1",
		ClientID:  ptr.Ptr(int64(3)),
		Date:      date,
		StartTime: "10:00",
		EndTime:   "11:00",
		Title:     "Consulta",
	}
}

func existing(start, end string) domain.Appointment {
	return domain.Appointment{
		ID:             1,
		ProfessionalID: ptr.Ptr(int64(7)),
		Date:           date,
		StartTime:      types.TimeString(start),
		EndTime:        types.TimeString(end),
		Title:          "Existente",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	store := &fakeStore{rows: []domain.Appointment{existing("09:00", "10:00")}}
	uc, cache, publisher := newUseCase(store)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(501), resp.ID)
	assert.Equal(t, domain.DefaultAppointmentColor, resp.Color)
	assert.Equal(t, "2024-06-12", resp.Date)
	require.NotNil(t, resp.ProfessionalID)
	assert.Equal(t, int64(7), *resp.ProfessionalID)

	week, err := cache.CurrentWeek(context.Background())
	require.NoError(t, err)
	require.Len(t, week, 2)
	assert.Equal(t, int64(1), week[0].ID)
	assert.Equal(t, int64(501), week[1].ID)

	assert.Equal(t, []events.Type{events.AppointmentCreated}, publisher.types)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "bad start", mutate: func(r *Request) { r.StartTime = "9:00" }},
		{name: "bad end", mutate: func(r *Request) { r.EndTime = "25:00" }},
		{name: "start after end", mutate: func(r *Request) { r.StartTime, r.EndTime = "11:00", "10:00" }},
		{name: "equal times", mutate: func(r *Request) { r.EndTime = r.StartTime }},
		{name: "empty title", mutate: func(r *Request) { r.Title = "" }},
		{name: "bad color", mutate: func(r *Request) { r.Color = "red" }},
		{name: "bad client", mutate: func(r *Request) { r.ClientID = ptr.Ptr(int64(0)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			uc, _, _ := newUseCase(store)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, store.creates)
		})
	}
}

func TestUseCase_Execute_Unauthenticated(t *testing.T) {
	uc, _, _ := newUseCase(&fakeStore{})
	req := validRequest()
	req.UserID = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUseCase_Execute_ConflictInCache(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		conflict bool
	}{
		{name: "overlapping", start: "10:30", end: "11:30", conflict: true},
		{name: "containing", start: "09:00", end: "12:00", conflict: true},
		{name: "touching end", start: "11:00", end: "12:00", conflict: false},
		{name: "touching start", start: "09:00", end: "10:00", conflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{rows: []domain.Appointment{existing(tt.start, tt.end)}}
			uc, _, _ := newUseCase(store)

			_, err := uc.Execute(context.Background(), validRequest())
			if tt.conflict {
				assert.ErrorIs(t, err, ErrTimeConflict)
				assert.Zero(t, store.creates)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, store.creates)
		})
	}
}

func TestUseCase_Execute_ConflictInStore(t *testing.T) {
	store := &fakeStore{createErr: appointmentRepo.ErrTimeConflict}
	uc, _, publisher := newUseCase(store)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.Empty(t, publisher.types)
}

func TestUseCase_Execute_StoreFailure(t *testing.T) {
	store := &fakeStore{createErr: errors.New("connection refused")}
	uc, _, _ := newUseCase(store)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_PublishFailureIgnored(t *testing.T) {
	uc, _, publisher := newUseCase(&fakeStore{})
	publisher.err = errors.New("broker down")

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}

func TestUseCase_Execute_SecondInsertRejected(t *testing.T) {
	store := &fakeStore{
		createGate:    make(chan struct{}),
		createEntered: make(chan struct{}, 1),
	}
	uc, _, _ := newUseCase(store)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := uc.Execute(ctx, validRequest())
		done <- err
	}()
	<-store.createEntered

	second := validRequest()
	second.StartTime, second.EndTime = "14:00", "15:00"
	_, err := uc.Execute(ctx, second)
	assert.ErrorIs(t, err, ErrInsertInProgress)

	close(store.createGate)
	require.NoError(t, <-done)
}

func TestUseCase_Execute_SundayConflictWestOfUTC(t *testing.T) {
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	booked := existing("09:00", "10:00")
	booked.Date = sunday
	store := &fakeStore{rows: []domain.Appointment{booked}}

	brt := time.FixedZone("BRT", -3*60*60)
	cache := weekcache.NewCache(store, fakeIdentity{}, fixedClock{now: date}, brt, noopRecorder{}, logger.Nop())
	uc := NewUseCase(&fakeCaches{cache: cache}, &fakePublisher{}, logger.Nop())

	req := validRequest()
	req.Date = sunday
	req.StartTime, req.EndTime = "09:30", "10:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.Zero(t, store.creates)
}
