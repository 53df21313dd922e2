package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/shenikar/zasahy_monitor/internal/models"
	"github.com/sirupsen/logrus"
)

// Persister определяет контракт хранилища снапшота стора
type Persister interface {
	// Load возвращает nil, nil если снапшот ещё не сохранялся
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snapshot *models.Snapshot) error
}

const persistTimeout = 5 * time.Second

// Store - единственный владелец списка инцидентов и пользовательских настроек.
// Все мутации атомарны для читателей и после себя планируют запись снапшота.
type Store struct {
	mu                   sync.RWMutex
	incidents            []models.Incident
	shifts               []models.ShiftDay
	notifications        []models.NotificationFlag
	filterSettings       models.FilterSettings
	notificationSettings models.NotificationSettings
	fetchError           string
	loaded               bool
	// generation растет при каждой полной замене списка
	generation uint64

	persister Persister
	logger    *logrus.Logger
	now       func() time.Time

	pending chan *models.Snapshot
	errs    chan error
}

// Option настраивает Store
type Option func(*Store)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New создает пустой стор. persister может быть nil, тогда состояние живет только в памяти.
func New(persister Persister, logger *logrus.Logger, opts ...Option) *Store {
	s := &Store{
		incidents:            []models.Incident{},
		notifications:        []models.NotificationFlag{},
		filterSettings:       models.DefaultFilterSettings(),
		notificationSettings: models.DefaultNotificationSettings(),
		persister:            persister,
		logger:               logger,
		now:                  time.Now,
		pending:              make(chan *models.Snapshot, 1),
		errs:                 make(chan error, 16),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.shifts = GenerateShifts(s.now())
	return s
}

// Restore загружает сохраненный снапшот. Смены не восстанавливаются, а пересчитываются.
func (s *Store) Restore(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	snapshot, err := s.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("store: could not load snapshot: %w", err)
	}
	if snapshot == nil {
		s.logger.WithField("service", "store").Info("No stored snapshot, starting with defaults")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.incidents = cloneIncidents(snapshot.Incidents)
	s.notifications = append([]models.NotificationFlag{}, snapshot.Notifications...)
	s.filterSettings = normalizeFilterSettings(snapshot.FilterSettings)
	s.notificationSettings = normalizeNotificationSettings(snapshot.NotificationSettings)
	s.ensureFlagsLocked(s.incidents)
	s.loaded = len(s.incidents) > 0

	s.logger.WithFields(logrus.Fields{
		"service":   "store",
		"incidents": len(s.incidents),
	}).Info("Store restored from snapshot")
	return nil
}

// SetIncidents заменяет весь список и отмечает стор загруженным. Повторы id
// отбрасываются, остается первый. Флаги уведомлений сохраняются по id.
func (s *Store) SetIncidents(list []models.Incident) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.incidents = cloneIncidents(lo.UniqBy(list, incidentID))
	s.generation++
	s.loaded = true
	s.ensureFlagsLocked(s.incidents)
	s.schedulePersistLocked()
}

// AppendIncidents дописывает список в конец. Дедупликация - ответственность вызывающего.
func (s *Store) AppendIncidents(list []models.Incident) {
	if len(list) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	appended := cloneIncidents(list)
	s.incidents = append(s.incidents, appended...)
	s.ensureFlagsLocked(appended)
	s.schedulePersistLocked()
}

// SetEmptyIfNotLoaded выставляет пустой список, если ни одна загрузка еще не завершилась.
// Возвращает true, если список был выставлен.
func (s *Store) SetEmptyIfNotLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return false
	}
	s.incidents = []models.Incident{}
	s.generation++
	s.loaded = true
	s.schedulePersistLocked()
	return true
}

// Generation возвращает поколение списка. Меняется при каждом SetIncidents.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.generation
}

// AppendIncidentsIfCurrent дописывает в конец неизвестные стору инциденты, но только если
// список не заменялся с поколения generation. Так устаревшая страница не попадет в новый список.
func (s *Store) AppendIncidentsIfCurrent(generation uint64, list []models.Incident) ([]models.Incident, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return nil, false
	}
	s.loaded = true
	fresh := s.unknownLocked(list)
	if len(fresh) == 0 {
		return nil, true
	}
	s.incidents = append(s.incidents, fresh...)
	s.ensureFlagsLocked(fresh)
	s.schedulePersistLocked()
	return cloneIncidents(fresh), true
}

// AddIncident добавляет инцидент в начало списка с непрочитанным уведомлением
func (s *Store) AddIncident(incident models.Incident) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.incidents = append([]models.Incident{incident.Clone()}, s.incidents...)
	others := lo.Reject(s.notifications, func(n models.NotificationFlag, _ int) bool { return n.ID == incident.ID })
	s.notifications = append([]models.NotificationFlag{{ID: incident.ID, Read: false}}, others...)
	s.schedulePersistLocked()
}

// MergeNew добавляет в конец только те инциденты, id которых еще нет в сторе,
// и возвращает их. Стор после этого считается загруженным. Повторный вызов с тем же списком ничего не меняет.
func (s *Store) MergeNew(list []models.Incident) []models.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = true
	fresh := s.unknownLocked(list)
	if len(fresh) == 0 {
		return nil
	}

	merged := make([]models.Incident, 0, len(s.incidents)+len(fresh))
	merged = append(merged, s.incidents...)
	merged = append(merged, fresh...)
	s.incidents = merged
	s.ensureFlagsLocked(fresh)
	s.schedulePersistLocked()

	return cloneIncidents(fresh)
}

// UpdateIncident сливает patch в инцидент и проставляет UpdatedAt. false если id не найден.
func (s *Store) UpdateIncident(id string, patch models.IncidentPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, idx, ok := lo.FindIndexOf(s.incidents, func(in models.Incident) bool { return in.ID == id })
	if !ok {
		return false
	}

	updated := patch.Apply(current)
	now := s.now()
	if now.Before(updated.UpdatedAt) {
		now = updated.UpdatedAt
	}
	updated.UpdatedAt = now

	incidents := append([]models.Incident{}, s.incidents...)
	incidents[idx] = updated
	s.incidents = incidents
	s.schedulePersistLocked()
	return true
}

// MarkNotificationRead помечает уведомление прочитанным. false если флага с таким id нет.
func (s *Store) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, changed := false, false
	for i := range s.notifications {
		if s.notifications[i].ID != id {
			continue
		}
		exists = true
		if !s.notifications[i].Read {
			s.notifications[i].Read = true
			changed = true
		}
	}
	if changed {
		s.schedulePersistLocked()
	}
	return exists
}

// UnreadCount возвращает число непрочитанных уведомлений
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.CountBy(s.notifications, func(n models.NotificationFlag) bool { return !n.Read })
}

// IsRead сообщает, прочитано ли уведомление инцидента
func (s *Store) IsRead(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flag, ok := lo.Find(s.notifications, func(n models.NotificationFlag) bool { return n.ID == id })
	return ok && flag.Read
}

// GetByID ищет инцидент. Отсутствие - не ошибка.
func (s *Store) GetByID(id string) (models.Incident, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	incident, ok := lo.Find(s.incidents, func(in models.Incident) bool { return in.ID == id })
	if !ok {
		return models.Incident{}, false
	}
	return incident.Clone(), true
}

// Has сообщает, известен ли id
func (s *Store) Has(id string) bool {
	_, ok := s.GetByID(id)
	return ok
}

func (s *Store) Incidents() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneIncidents(s.incidents)
}

// Len возвращает количество инцидентов в сторе
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.incidents)
}

// SourceLen возвращает количество инцидентов, пришедших из источника, без локальных
func (s *Store) SourceLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.CountBy(s.incidents, func(in models.Incident) bool { return !in.Local })
}

func (s *Store) Shifts() []models.ShiftDay {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.ShiftDay{}, s.shifts...)
}

// RefreshShifts пересчитывает график смен на месяц, которому принадлежит now
func (s *Store) RefreshShifts(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shifts = GenerateShifts(now)
	s.schedulePersistLocked()
}

func (s *Store) FilterSettings() models.FilterSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterSettings.Clone()
}

func (s *Store) UpdateFilterSettings(patch models.FilterSettingsPatch) models.FilterSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filterSettings = patch.Apply(s.filterSettings)
	s.schedulePersistLocked()
	return s.filterSettings.Clone()
}

func (s *Store) NotificationSettings() models.NotificationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.notificationSettings.Clone()
}

func (s *Store) UpdateNotificationSettings(patch models.NotificationSettingsPatch) models.NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSettings = patch.Apply(s.notificationSettings)
	s.schedulePersistLocked()
	return s.notificationSettings.Clone()
}

// FilteredIncidents применяет текущие фильтры к списку инцидентов
func (s *Store) FilteredIncidents() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneIncidents(Filter(s.incidents, s.filterSettings))
}

// Statistics считает инциденты по состояниям и типам
func (s *Store) Statistics() models.Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ComputeStatistics(s.incidents)
}

// SetFetchError выставляет сообщение об ошибке последней загрузки
func (s *Store) SetFetchError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fetchError = msg
}

func (s *Store) ClearFetchError() {
	s.SetFetchError("")
}

func (s *Store) FetchError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fetchError
}

// MarkLoaded отмечает, что первая загрузка завершилась (успешно или нет)
func (s *Store) MarkLoaded() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = true
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded
}

// Snapshot возвращает копию сохраняемого состояния
func (s *Store) Snapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() *models.Snapshot {
	return &models.Snapshot{
		Incidents:            cloneIncidents(s.incidents),
		Shifts:               append([]models.ShiftDay{}, s.shifts...),
		Notifications:        append([]models.NotificationFlag{}, s.notifications...),
		FilterSettings:       s.filterSettings.Clone(),
		NotificationSettings: s.notificationSettings.Clone(),
	}
}

// unknownLocked возвращает копии инцидентов, чьих id нет в сторе, без повторов
func (s *Store) unknownLocked(list []models.Incident) []models.Incident {
	known := lo.SliceToMap(s.incidents, func(in models.Incident) (string, struct{}) {
		return in.ID, struct{}{}
	})
	fresh := lo.Filter(lo.UniqBy(list, incidentID),
		func(in models.Incident, _ int) bool {
			_, ok := known[in.ID]
			return !ok
		})
	return cloneIncidents(fresh)
}

// ensureFlagsLocked добавляет непрочитанный флаг каждому инциденту без флага
func (s *Store) ensureFlagsLocked(incidents []models.Incident) {
	known := lo.SliceToMap(s.notifications, func(n models.NotificationFlag) (string, struct{}) {
		return n.ID, struct{}{}
	})
	for _, in := range incidents {
		if _, ok := known[in.ID]; ok {
			continue
		}
		known[in.ID] = struct{}{}
		s.notifications = append(s.notifications, models.NotificationFlag{ID: in.ID, Read: false})
	}
}

func incidentID(in models.Incident) string {
	return in.ID
}

func cloneIncidents(list []models.Incident) []models.Incident {
	return lo.Map(list, func(in models.Incident, _ int) models.Incident { return in.Clone() })
}

// normalize* заменяют nil слайсы из старых снапшотов пустыми
func normalizeFilterSettings(fs models.FilterSettings) models.FilterSettings {
	return fs.Clone()
}

func normalizeNotificationSettings(ns models.NotificationSettings) models.NotificationSettings {
	return ns.Clone()
}
