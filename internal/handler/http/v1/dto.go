package v1

import (
	"time"
)

// CoordinatesDTO - координаты места события
type CoordinatesDTO struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// CreateIncidentRequest DTO для создания тестового инцидента
// @Description DTO для создания тестового инцидента
type CreateIncidentRequest struct {
	Title       string          `json:"title" validate:"required,min=2,max=255"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty" validate:"max=255"`
	Coordinates *CoordinatesDTO `json:"coordinates,omitempty"`
	Type        string          `json:"type" validate:"required,oneof=fire accident rescue technical chemical other"`
	Status      string          `json:"status,omitempty" validate:"omitempty,oneof=active completed pending"`
	Units       []string        `json:"units,omitempty" validate:"omitempty,dive,required"`
	Priority    int             `json:"priority,omitempty" validate:"omitempty,min=1,max=3"`
	Region      string          `json:"region,omitempty"`
	District    string          `json:"district,omitempty"`
	Station     string          `json:"station,omitempty"`
}

// UpdateIncidentRequest DTO для частичного обновления инцидента, отсутствующие поля не меняются
// @Description DTO для частичного обновления инцидента
type UpdateIncidentRequest struct {
	Title       *string         `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string         `json:"description,omitempty"`
	Location    *string         `json:"location,omitempty" validate:"omitempty,max=255"`
	Coordinates *CoordinatesDTO `json:"coordinates,omitempty"`
	Type        *string         `json:"type,omitempty" validate:"omitempty,oneof=fire accident rescue technical chemical other"`
	Status      *string         `json:"status,omitempty" validate:"omitempty,oneof=active completed pending"`
	Units       []string        `json:"units,omitempty" validate:"omitempty,dive,required"`
	Priority    *int            `json:"priority,omitempty" validate:"omitempty,min=1,max=3"`
	Region      *string         `json:"region,omitempty"`
	District    *string         `json:"district,omitempty"`
	Station     *string         `json:"station,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Coordinates *CoordinatesDTO `json:"coordinates,omitempty"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Units       []string        `json:"units"`
	Priority    int             `json:"priority"`
	Region      string          `json:"region,omitempty"`
	District    string          `json:"district,omitempty"`
	Station     string          `json:"station,omitempty"`
	Local       bool            `json:"local"`
}

// IncidentListResponse DTO для списка инцидентов вместе с состоянием загрузки
// @Description DTO для списка инцидентов
type IncidentListResponse struct {
	Incidents   []*IncidentResponse `json:"incidents"`
	Error       string              `json:"error,omitempty"`
	Loaded      bool                `json:"loaded"`
	UnreadCount int                 `json:"unread_count"`
}

// IncidentsResponse DTO для порции инцидентов (load-more, poll)
// @Description DTO для порции инцидентов
type IncidentsResponse struct {
	Incidents []*IncidentResponse `json:"incidents"`
	Count     int                 `json:"count"`
}

// UnreadCountResponse DTO для счетчика непрочитанных уведомлений
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

// FilterSettingsDTO - пользовательские фильтры списка
// @Description DTO для фильтров списка
type FilterSettingsDTO struct {
	Regions        []string `json:"regions"`
	Districts      []string `json:"districts"`
	Stations       []string `json:"stations"`
	EmergencyTypes []string `json:"emergency_types"`
	ShowActive     bool     `json:"show_active"`
	ShowCompleted  bool     `json:"show_completed"`
	ShowPending    bool     `json:"show_pending"`
}

// UpdateFilterSettingsRequest DTO для частичного обновления фильтров
// @Description DTO для частичного обновления фильтров
type UpdateFilterSettingsRequest struct {
	Regions        *[]string `json:"regions,omitempty"`
	Districts      *[]string `json:"districts,omitempty"`
	Stations       *[]string `json:"stations,omitempty"`
	EmergencyTypes *[]string `json:"emergency_types,omitempty" validate:"omitempty,dive,oneof=fire accident rescue technical chemical other"`
	ShowActive     *bool     `json:"show_active,omitempty"`
	ShowCompleted  *bool     `json:"show_completed,omitempty"`
	ShowPending    *bool     `json:"show_pending,omitempty"`
}

// NotificationSettingsDTO - настройки уведомлений
// @Description DTO для настроек уведомлений
type NotificationSettingsDTO struct {
	Enabled         bool     `json:"enabled"`
	EmergencyAlerts bool     `json:"emergency_alerts"`
	StatusUpdates   bool     `json:"status_updates"`
	RegionFilters   []string `json:"region_filters"`
	DistrictFilters []string `json:"district_filters"`
	StationFilters  []string `json:"station_filters"`
	TypeFilters     []string `json:"type_filters"`
}

// UpdateNotificationSettingsRequest DTO для частичного обновления настроек уведомлений
// @Description DTO для частичного обновления настроек уведомлений
type UpdateNotificationSettingsRequest struct {
	Enabled         *bool     `json:"enabled,omitempty"`
	EmergencyAlerts *bool     `json:"emergency_alerts,omitempty"`
	StatusUpdates   *bool     `json:"status_updates,omitempty"`
	RegionFilters   *[]string `json:"region_filters,omitempty"`
	DistrictFilters *[]string `json:"district_filters,omitempty"`
	StationFilters  *[]string `json:"station_filters,omitempty"`
	TypeFilters     *[]string `json:"type_filters,omitempty" validate:"omitempty,dive,oneof=fire accident rescue technical chemical other"`
}

// ShiftResponse DTO для дня графика смен
type ShiftResponse struct {
	Date  string `json:"date"`
	Shift string `json:"shift"`
}

// RemoteStatisticsResponse - счетчики удаленного источника
type RemoteStatisticsResponse struct {
	DailyStats  map[string]int `json:"daily_stats"`
	YearlyStats map[string]int `json:"yearly_stats"`
}

// StatisticsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatisticsResponse struct {
	Total       int                       `json:"total"`
	ByStatus    map[string]int            `json:"by_status"`
	ByType      map[string]int            `json:"by_type"`
	Remote      *RemoteStatisticsResponse `json:"remote,omitempty"`
	RemoteError string                    `json:"remote_error,omitempty"`
}

// AppStateRequest DTO для смены состояния приложения
// @Description DTO для смены состояния приложения
type AppStateRequest struct {
	State string `json:"state" validate:"required,oneof=active background"`
}

// AppStateResponse DTO для ответа на смену состояния
type AppStateResponse struct {
	State          string `json:"state"`
	FetchTriggered bool   `json:"fetch_triggered"`
}

// HealthResponse DTO для health-check
type HealthResponse struct {
	Status       string `json:"status"`
	SourceStatus string `json:"source_status,omitempty"`
	SourceError  string `json:"source_error,omitempty"`
	Loaded       bool   `json:"loaded"`
	FetchError   string `json:"fetch_error,omitempty"`
	Foreground   bool   `json:"foreground"`
	Incidents    int    `json:"incidents"`
}
