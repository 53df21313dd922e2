package models

// IncidentList - отфильтрованный список вместе с состоянием загрузки
type IncidentList struct {
	Incidents   []Incident
	Error       string
	Loaded      bool
	UnreadCount int
}

// StatisticsReport - локальные счетчики и, если источник ответил, удаленные
type StatisticsReport struct {
	Local       Statistics
	Remote      *RemoteStatistics
	RemoteError string
}

// HealthReport - состояние процесса и источника
type HealthReport struct {
	Status       string
	SourceStatus string
	SourceError  string
	Loaded       bool
	FetchError   string
	Foreground   bool
	Incidents    int
}
