package models

// Statistics - агрегаты для экрана статистики
type Statistics struct {
	Total    int                    `json:"total"`
	ByStatus map[IncidentStatus]int `json:"by_status"`
	ByType   map[IncidentType]int   `json:"by_type"`
}

// RemoteStatistics - счётчики, которые отдаёт удалённый источник
type RemoteStatistics struct {
	DailyStats  map[string]int `json:"daily_stats"`
	YearlyStats map[string]int `json:"yearly_stats"`
}
