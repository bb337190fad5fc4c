package weekcache

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type subscription struct {
	id int
	fn Listener
}

// Cache недельный кэш записей одного профессионала
// Принадлежит сессии пользователя, ключ бакета - unix-время воскресенья 00:00 недели
type Cache struct {
	store    Store
	identity Identity
	clock    TimeProvider
	loc      *time.Location
	recorder Recorder
	logger   Logger

	// mu защищает поля ниже и никогда не удерживается во время вызова store
	mu         sync.Mutex
	buckets    map[int64][]domain.Appointment
	reference  time.Time
	lastErr    string
	listeners  []subscription
	listenerID int

	loading   atomic.Int32
	inserting atomic.Bool
}

// NewCache создает кэш с опорной датой "сейчас"
// loc задаёт границы недель, nil означает UTC
func NewCache(
	store Store,
	identity Identity,
	clock TimeProvider,
	loc *time.Location,
	recorder Recorder,
	logger Logger,
) *Cache {
	if clock == nil {
		clock = &RealTimeProvider{}
	}
	if loc == nil {
		loc = time.UTC
	}

	return &Cache{
		store:     store,
		identity:  identity,
		clock:     clock,
		loc:       loc,
		recorder:  recorder,
		logger:    logger,
		buckets:   make(map[int64][]domain.Appointment),
		reference: domain.DateIn(clock.Now().In(loc), loc),
	}
}

// GetAppointmentsForWeek возвращает активные записи недели, содержащей ref
// Загруженная неделя отдаётся из кэша без обращения к хранилищу.
// При ошибке возвращается пустой список и ошибка, отрицательный результат не кэшируется.
// ref - календарная дата: берутся год, месяц и день в её собственной зоне.
func (c *Cache) GetAppointmentsForWeek(ctx context.Context, ref time.Time) ([]domain.Appointment, error) {
	ref = domain.DateIn(ref, c.loc)
	key := domain.WeekKey(ref)

	c.mu.Lock()
	list, ok := c.buckets[key]
	if ok {
		out := slices.Clone(list)
		c.mu.Unlock()
		c.hit()
		return out, nil
	}
	c.mu.Unlock()

	c.miss()
	return c.fetch(ctx, ref, key)
}

// CurrentWeek возвращает записи просматриваемой недели
func (c *Cache) CurrentWeek(ctx context.Context) ([]domain.Appointment, error) {
	return c.GetAppointmentsForWeek(ctx, c.ReferenceDate())
}

// ReferenceDate возвращает опорную дату просматриваемой недели
func (c *Cache) ReferenceDate() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reference
}

// SetReferenceDate переключает просматриваемую неделю и оповещает подписчиков
// ref - календарная дата, как в GetAppointmentsForWeek
func (c *Cache) SetReferenceDate(ctx context.Context, ref time.Time) ([]domain.Appointment, error) {
	ref = domain.DateIn(ref, c.loc)

	c.mu.Lock()
	c.reference = ref
	c.mu.Unlock()

	list, err := c.GetAppointmentsForWeek(ctx, ref)
	if err != nil {
		return list, err
	}

	c.notify(domain.WeekKey(ref), list)
	return list, nil
}

// NextWeek сдвигает опорную дату на неделю вперёд
func (c *Cache) NextWeek(ctx context.Context) ([]domain.Appointment, error) {
	return c.SetReferenceDate(ctx, c.ReferenceDate().AddDate(0, 0, domain.DaysInWeek))
}

// PreviousWeek сдвигает опорную дату на неделю назад
func (c *Cache) PreviousWeek(ctx context.Context) ([]domain.Appointment, error) {
	return c.SetReferenceDate(ctx, c.ReferenceDate().AddDate(0, 0, -domain.DaysInWeek))
}

// Today возвращает просмотр к текущей неделе
func (c *Cache) Today(ctx context.Context) ([]domain.Appointment, error) {
	return c.SetReferenceDate(ctx, c.clock.Now().In(c.loc))
}

// Subscribe регистрирует слушателя изменений просматриваемой недели
// Возвращает функцию отписки
func (c *Cache) Subscribe(fn Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listenerID++
	id := c.listenerID
	c.listeners = append(c.listeners, subscription{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.listeners = slices.DeleteFunc(c.listeners, func(s subscription) bool { return s.id == id })
	}
}

// LastError возвращает сообщение последней ошибки хранилища (пустая строка после успешной загрузки)
func (c *Cache) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Loading возвращает true, пока выполняется обращение к хранилищу
func (c *Cache) Loading() bool {
	return c.loading.Load() > 0
}

// Insert сохраняет новую запись и обновляет кэш
// Владелец и профессионал определяются до обращения к хранилищу.
// Одновременно выполняется не более одной вставки.
func (c *Cache) Insert(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error) {
	if !c.inserting.CompareAndSwap(false, true) {
		return nil, ErrInsertInProgress
	}
	defer c.inserting.Store(false)

	userID, err := c.identity.CurrentUserID(ctx)
	if err != nil {
		return nil, wrapIdentity(ErrUnauthenticated, err)
	}
	professionalID, err := c.identity.CurrentProfessionalID(ctx)
	if err != nil {
		return nil, wrapIdentity(ErrProfessionalNotResolved, err)
	}

	appointment.UserID = &userID
	appointment.ProfessionalID = &professionalID
	appointment.Cancelled = false
	appointment.CancelledAt = nil

	c.loading.Add(1)
	created, err := c.store.Create(ctx, &appointment)
	c.loading.Add(-1)
	if err != nil {
		c.setLastError(err)
		return nil, fmt.Errorf("%w: Insert - create appointment: %w", ErrStore, err)
	}

	created.Date = domain.DateIn(created.Date, c.loc)
	key := domain.WeekKey(created.Date)

	c.mu.Lock()
	list, cached := c.buckets[key]
	if cached {
		list = append(list, *created)
		slices.SortStableFunc(list, domain.CompareAppointments)
		c.buckets[key] = list
	}
	viewed := key == domain.WeekKey(c.reference)
	c.mu.Unlock()

	if viewed {
		if !cached {
			// Запись уже сохранена, ошибку перезагрузки недели только логируем
			if _, err := c.fetch(ctx, created.Date, key); err != nil {
				c.logf("Insert: failed to reload week %d after insert id=%d: %v", key, created.ID, err)
				return created, nil
			}
		}
		c.notifyCached(key)
	}

	c.logInfo("Insert: appointment id=%d cached in week %d", created.ID, key)
	return created, nil
}

// Edit меняет заголовок, описание и цвет записи
// Запись ищется только в загруженных неделях, иначе хранилище не вызывается.
func (c *Cache) Edit(ctx context.Context, id int64, details domain.AppointmentDetails) (*domain.Appointment, error) {
	if _, ok := c.locate(id); !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrAppointmentNotCached, id)
	}

	c.loading.Add(1)
	updated, err := c.store.UpdateDetails(ctx, id, details)
	c.loading.Add(-1)
	if err != nil {
		c.setLastError(err)
		return nil, fmt.Errorf("%w: Edit - update appointment id=%d: %w", ErrStore, id, err)
	}
	updated.Date = domain.DateIn(updated.Date, c.loc)

	c.mu.Lock()
	key, found := c.locateLocked(id)
	if found {
		list := c.buckets[key]
		for i := range list {
			if list[i].ID == id {
				list[i] = *updated
				break
			}
		}
	}
	viewed := found && key == domain.WeekKey(c.reference)
	c.mu.Unlock()

	if viewed {
		c.notifyCached(key)
	}
	return updated, nil
}

// Cancel отменяет запись и убирает её из кэша
func (c *Cache) Cancel(ctx context.Context, id int64) error {
	if _, ok := c.locate(id); !ok {
		return fmt.Errorf("%w: id=%d", ErrAppointmentNotCached, id)
	}

	c.loading.Add(1)
	err := c.store.Cancel(ctx, id, c.clock.Now())
	c.loading.Add(-1)
	if err != nil {
		c.setLastError(err)
		return fmt.Errorf("%w: Cancel - cancel appointment id=%d: %w", ErrStore, id, err)
	}

	c.mu.Lock()
	key, found := c.locateLocked(id)
	if found {
		c.buckets[key] = slices.DeleteFunc(c.buckets[key], func(a domain.Appointment) bool { return a.ID == id })
	}
	viewed := found && key == domain.WeekKey(c.reference)
	c.mu.Unlock()

	if viewed {
		c.notifyCached(key)
	}
	return nil
}

// Find возвращает копию записи из загруженных недель
func (c *Cache) Find(id int64) (domain.Appointment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key, ok := c.locateLocked(id)
	if !ok {
		return domain.Appointment{}, false
	}
	for _, a := range c.buckets[key] {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Appointment{}, false
}

// Invalidate удаляет неделю из кэша, следующее чтение загрузит её заново
func (c *Cache) Invalidate(ref time.Time) {
	c.mu.Lock()
	delete(c.buckets, domain.WeekKey(domain.DateIn(ref, c.loc)))
	c.mu.Unlock()
}

func (c *Cache) fetch(ctx context.Context, ref time.Time, key int64) ([]domain.Appointment, error) {
	professionalID, err := c.identity.CurrentProfessionalID(ctx)
	if err != nil {
		err = wrapIdentity(ErrProfessionalNotResolved, err)
		c.setLastError(err)
		return []domain.Appointment{}, err
	}

	dates := domain.WeekDates(ref)

	c.loading.Add(1)
	list, err := c.store.GetActiveByProfessionalAndDates(ctx, professionalID, dates[:])
	c.loading.Add(-1)
	if err != nil {
		c.setLastError(err)
		c.logf("fetch: failed to load week %d for professional=%d: %v", key, professionalID, err)
		return []domain.Appointment{}, fmt.Errorf("%w: GetAppointmentsForWeek - week=%s: %w",
			ErrStore, dates[0].Format(domain.DateFormat), err)
	}

	active := make([]domain.Appointment, 0, len(list))
	for _, a := range list {
		if !a.IsActive() {
			continue
		}
		a.Date = domain.DateIn(a.Date, c.loc)
		active = append(active, a)
	}
	slices.SortStableFunc(active, domain.CompareAppointments)

	c.mu.Lock()
	c.buckets[key] = active
	c.lastErr = ""
	c.mu.Unlock()

	return slices.Clone(active), nil
}

func (c *Cache) locate(id int64) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locateLocked(id)
}

func (c *Cache) locateLocked(id int64) (int64, bool) {
	for key, list := range c.buckets {
		for i := range list {
			if list[i].ID == id {
				return key, true
			}
		}
	}
	return 0, false
}

func (c *Cache) notifyCached(key int64) {
	c.mu.Lock()
	list := slices.Clone(c.buckets[key])
	c.mu.Unlock()

	c.notify(key, list)
}

func (c *Cache) notify(key int64, list []domain.Appointment) {
	c.mu.Lock()
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		l.fn(key, slices.Clone(list))
	}
}

func (c *Cache) setLastError(err error) {
	c.mu.Lock()
	c.lastErr = err.Error()
	c.mu.Unlock()
}

func (c *Cache) hit() {
	if c.recorder != nil {
		c.recorder.WeekCacheHit()
	}
}

func (c *Cache) miss() {
	if c.recorder != nil {
		c.recorder.WeekCacheMiss()
	}
}

func (c *Cache) logf(format string, v ...interface{}) {
	if c.logger != nil {
		c.logger.Error(format, v...)
	}
}

func (c *Cache) logInfo(format string, v ...interface{}) {
	if c.logger != nil {
		c.logger.Info(format, v...)
	}
}

func wrapIdentity(sentinel, err error) error {
	if errors.Is(err, sentinel) {
		return err
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}
