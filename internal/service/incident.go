package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/zasahy_monitor/internal/models"
	"github.com/shenikar/zasahy_monitor/internal/store"
	"github.com/sirupsen/logrus"
)

// ErrIncidentNotFound возвращается, если инцидента с таким id нет в сторе
var ErrIncidentNotFound = errors.New("incident not found")

// Fetcher определяет контракт загрузок из удаленного источника
type Fetcher interface {
	Refresh(ctx context.Context) error
	LoadMore(ctx context.Context) ([]models.Incident, error)
	PollNew(ctx context.Context) ([]models.Incident, error)
	SetForeground(active bool) bool
	Foreground() bool
}

// RemoteInfo определяет контракт справочных запросов к источнику
type RemoteInfo interface {
	Statistics(ctx context.Context) (*models.RemoteStatistics, error)
	Status(ctx context.Context) (string, error)
}

// IncidentService определяет контракт бизнес-логики над стором инцидентов
type IncidentService interface {
	ListIncidents(ctx context.Context) models.IncidentList
	AllIncidents(ctx context.Context) []models.Incident
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	MarkRead(ctx context.Context, id string) error
	CreateTestIncident(ctx context.Context, incident *models.Incident) error
	UpdateIncident(ctx context.Context, id string, patch models.IncidentPatch) (*models.Incident, error)
	Refresh(ctx context.Context) (models.IncidentList, error)
	LoadMore(ctx context.Context) ([]models.Incident, error)
	PollNew(ctx context.Context) ([]models.Incident, error)
	UnreadCount(ctx context.Context) int
	FilterSettings(ctx context.Context) models.FilterSettings
	UpdateFilterSettings(ctx context.Context, patch models.FilterSettingsPatch) models.FilterSettings
	NotificationSettings(ctx context.Context) models.NotificationSettings
	UpdateNotificationSettings(ctx context.Context, patch models.NotificationSettingsPatch) models.NotificationSettings
	Shifts(ctx context.Context) []models.ShiftDay
	Statistics(ctx context.Context) models.StatisticsReport
	SetAppState(ctx context.Context, active bool) bool
	Health(ctx context.Context) models.HealthReport
}

type incidentService struct {
	store   *store.Store
	fetcher Fetcher
	remote  RemoteInfo
	logger  *logrus.Logger
	now     func() time.Time
}

func NewIncidentService(st *store.Store, fetcher Fetcher, remote RemoteInfo, logger *logrus.Logger) IncidentService {
	return &incidentService{
		store:   st,
		fetcher: fetcher,
		remote:  remote,
		logger:  logger,
		now:     time.Now,
	}
}

// ListIncidents возвращает инциденты после пользовательских фильтров
func (s *incidentService) ListIncidents(ctx context.Context) models.IncidentList {
	return s.list()
}

func (s *incidentService) list() models.IncidentList {
	return models.IncidentList{
		Incidents:   s.store.FilteredIncidents(),
		Error:       s.store.FetchError(),
		Loaded:      s.store.Loaded(),
		UnreadCount: s.store.UnreadCount(),
	}
}

func (s *incidentService) AllIncidents(ctx context.Context) []models.Incident {
	return s.store.Incidents()
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	incident, ok := s.store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("service: incident %s: %w", id, ErrIncidentNotFound)
	}
	return &incident, nil
}

// MarkRead отмечает уведомление инцидента прочитанным, как при открытии детали
func (s *incidentService) MarkRead(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "MarkRead",
		"incident_id": id,
	})
	if !s.store.MarkNotificationRead(id) {
		log.Warn("Notification flag not found")
		return fmt.Errorf("service: incident %s: %w", id, ErrIncidentNotFound)
	}
	log.Debug("Notification marked as read")
	return nil
}

// CreateTestIncident дополняет инцидент id, временем и значениями по умолчанию
// и кладет его в начало списка
func (s *incidentService) CreateTestIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateTestIncident",
		"title":   incident.Title,
	})
	log.Info("Attempting to create a test incident")

	if incident.Type == "" {
		incident.Type = models.TypeOther
	}
	if !incident.Type.Valid() {
		return fmt.Errorf("service: unknown incident type %q", incident.Type)
	}
	if incident.Status == "" {
		incident.Status = models.StatusActive
	}
	if incident.Priority == 0 {
		incident.Priority = incident.Type.DefaultPriority()
	}
	if incident.Units == nil {
		incident.Units = []string{}
	}
	now := s.now()
	incident.ID = uuid.New().String()
	incident.Local = true
	incident.CreatedAt = now
	incident.UpdatedAt = now

	s.store.AddIncident(*incident)
	log.WithField("incident_id", incident.ID).Info("Test incident created successfully")
	return nil
}

// UpdateIncident сливает изменения в инцидент и возвращает результат
func (s *incidentService) UpdateIncident(ctx context.Context, id string, patch models.IncidentPatch) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	if !s.store.UpdateIncident(id, patch) {
		log.Warn("Incident not found for update")
		return nil, fmt.Errorf("service: incident %s: %w", id, ErrIncidentNotFound)
	}
	log.Info("Incident updated successfully")
	return s.GetIncident(ctx, id)
}

// Refresh выполняет pull-to-refresh. Ошибка загрузки уже лежит в сторе,
// поэтому список возвращается в любом случае.
func (s *incidentService) Refresh(ctx context.Context) (models.IncidentList, error) {
	err := s.fetcher.Refresh(ctx)
	if err != nil {
		err = fmt.Errorf("service: could not refresh incidents: %w", err)
	}
	return s.list(), err
}

func (s *incidentService) LoadMore(ctx context.Context) ([]models.Incident, error) {
	appended, err := s.fetcher.LoadMore(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not load more incidents: %w", err)
	}
	return appended, nil
}

func (s *incidentService) PollNew(ctx context.Context) ([]models.Incident, error) {
	fresh, err := s.fetcher.PollNew(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not poll new incidents: %w", err)
	}
	return fresh, nil
}

func (s *incidentService) UnreadCount(ctx context.Context) int {
	return s.store.UnreadCount()
}

func (s *incidentService) FilterSettings(ctx context.Context) models.FilterSettings {
	return s.store.FilterSettings()
}

func (s *incidentService) UpdateFilterSettings(ctx context.Context, patch models.FilterSettingsPatch) models.FilterSettings {
	settings := s.store.UpdateFilterSettings(patch)
	s.logger.WithFields(logrus.Fields{"service": "incident", "method": "UpdateFilterSettings"}).Info("Filter settings updated")
	return settings
}

func (s *incidentService) NotificationSettings(ctx context.Context) models.NotificationSettings {
	return s.store.NotificationSettings()
}

func (s *incidentService) UpdateNotificationSettings(ctx context.Context, patch models.NotificationSettingsPatch) models.NotificationSettings {
	settings := s.store.UpdateNotificationSettings(patch)
	s.logger.WithFields(logrus.Fields{"service": "incident", "method": "UpdateNotificationSettings"}).Info("Notification settings updated")
	return settings
}

func (s *incidentService) Shifts(ctx context.Context) []models.ShiftDay {
	return s.store.Shifts()
}

// Statistics считает локальную статистику и добавляет удаленную, если источник доступен
func (s *incidentService) Statistics(ctx context.Context) models.StatisticsReport {
	report := models.StatisticsReport{Local: s.store.Statistics()}
	if s.remote == nil {
		return report
	}
	remote, err := s.remote.Statistics(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"service": "incident", "method": "Statistics"}).
			WithError(err).Warn("Remote statistics unavailable, returning local only")
		report.RemoteError = err.Error()
		return report
	}
	report.Remote = remote
	return report
}

// SetAppState переключает активное/фоновое состояние. true если запущен внеочередной опрос.
func (s *incidentService) SetAppState(ctx context.Context, active bool) bool {
	triggered := s.fetcher.SetForeground(active)
	s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "SetAppState",
		"active":    active,
		"triggered": triggered,
	}).Info("App state changed")
	return triggered
}

// Health собирает состояние стора и опрашивает статус источника
func (s *incidentService) Health(ctx context.Context) models.HealthReport {
	report := models.HealthReport{
		Status:     "ok",
		Loaded:     s.store.Loaded(),
		FetchError: s.store.FetchError(),
		Foreground: s.fetcher.Foreground(),
		Incidents:  s.store.Len(),
	}
	if s.remote == nil {
		return report
	}
	status, err := s.remote.Status(ctx)
	if err != nil {
		report.Status = "degraded"
		report.SourceError = err.Error()
		return report
	}
	report.SourceStatus = status
	return report
}
