package models

// FilterSettings - пользовательские фильтры списка инцидентов.
// Пустой набор означает "показывать всё".
type FilterSettings struct {
	Regions        []string       `json:"regions"`
	Districts      []string       `json:"districts"`
	Stations       []string       `json:"stations"`
	EmergencyTypes []IncidentType `json:"emergencyTypes"`
	ShowActive     bool           `json:"showActive"`
	ShowCompleted  bool           `json:"showCompleted"`
	ShowPending    bool           `json:"showPending"`
}

func DefaultFilterSettings() FilterSettings {
	return FilterSettings{
		Regions:        []string{},
		Districts:      []string{},
		Stations:       []string{},
		EmergencyTypes: []IncidentType{},
		ShowActive:     true,
		ShowCompleted:  true,
		ShowPending:    true,
	}
}

// FilterSettingsPatch - частичное обновление FilterSettings (shallow merge)
type FilterSettingsPatch struct {
	Regions        *[]string
	Districts      *[]string
	Stations       *[]string
	EmergencyTypes *[]IncidentType
	ShowActive     *bool
	ShowCompleted  *bool
	ShowPending    *bool
}

func (p FilterSettingsPatch) Apply(s FilterSettings) FilterSettings {
	if p.Regions != nil {
		s.Regions = append([]string{}, (*p.Regions)...)
	}
	if p.Districts != nil {
		s.Districts = append([]string{}, (*p.Districts)...)
	}
	if p.Stations != nil {
		s.Stations = append([]string{}, (*p.Stations)...)
	}
	if p.EmergencyTypes != nil {
		s.EmergencyTypes = append([]IncidentType{}, (*p.EmergencyTypes)...)
	}
	if p.ShowActive != nil {
		s.ShowActive = *p.ShowActive
	}
	if p.ShowCompleted != nil {
		s.ShowCompleted = *p.ShowCompleted
	}
	if p.ShowPending != nil {
		s.ShowPending = *p.ShowPending
	}
	return s
}

// NotificationSettings определяет, какие инциденты порождают уведомления
type NotificationSettings struct {
	Enabled         bool           `json:"enabled"`
	EmergencyAlerts bool           `json:"emergencyAlerts"`
	StatusUpdates   bool           `json:"statusUpdates"`
	RegionFilters   []string       `json:"regionFilters"`
	DistrictFilters []string       `json:"districtFilters"`
	StationFilters  []string       `json:"stationFilters"`
	TypeFilters     []IncidentType `json:"typeFilters"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Enabled:         true,
		EmergencyAlerts: true,
		StatusUpdates:   true,
		RegionFilters:   []string{},
		DistrictFilters: []string{},
		StationFilters:  []string{},
		TypeFilters:     []IncidentType{},
	}
}

type NotificationSettingsPatch struct {
	Enabled         *bool
	EmergencyAlerts *bool
	StatusUpdates   *bool
	RegionFilters   *[]string
	DistrictFilters *[]string
	StationFilters  *[]string
	TypeFilters     *[]IncidentType
}

func (p NotificationSettingsPatch) Apply(s NotificationSettings) NotificationSettings {
	if p.Enabled != nil {
		s.Enabled = *p.Enabled
	}
	if p.EmergencyAlerts != nil {
		s.EmergencyAlerts = *p.EmergencyAlerts
	}
	if p.StatusUpdates != nil {
		s.StatusUpdates = *p.StatusUpdates
	}
	if p.RegionFilters != nil {
		s.RegionFilters = append([]string{}, (*p.RegionFilters)...)
	}
	if p.DistrictFilters != nil {
		s.DistrictFilters = append([]string{}, (*p.DistrictFilters)...)
	}
	if p.StationFilters != nil {
		s.StationFilters = append([]string{}, (*p.StationFilters)...)
	}
	if p.TypeFilters != nil {
		s.TypeFilters = append([]IncidentType{}, (*p.TypeFilters)...)
	}
	return s
}

// Clone возвращает копию настроек с собственными слайсами
func (s FilterSettings) Clone() FilterSettings {
	s.Regions = append([]string{}, s.Regions...)
	s.Districts = append([]string{}, s.Districts...)
	s.Stations = append([]string{}, s.Stations...)
	s.EmergencyTypes = append([]IncidentType{}, s.EmergencyTypes...)
	return s
}

// Clone возвращает копию настроек с собственными слайсами
func (s NotificationSettings) Clone() NotificationSettings {
	s.RegionFilters = append([]string{}, s.RegionFilters...)
	s.DistrictFilters = append([]string{}, s.DistrictFilters...)
	s.StationFilters = append([]string{}, s.StationFilters...)
	s.TypeFilters = append([]IncidentType{}, s.TypeFilters...)
	return s
}
