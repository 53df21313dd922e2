package v1

import (
	"github.com/samber/lo"
	"github.com/shenikar/zasahy_monitor/internal/models"
)

const shiftDateLayout = "2006-01-02"

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Title:       dto.Title,
		Description: dto.Description,
		Location:    dto.Location,
		Coordinates: dtoToCoordinates(dto.Coordinates),
		Type:        models.IncidentType(dto.Type),
		Status:      models.IncidentStatus(dto.Status),
		Units:       dto.Units,
		Priority:    dto.Priority,
		Region:      dto.Region,
		District:    dto.District,
		Station:     dto.Station,
	}
}

// DTOToIncidentPatch преобразует DTO обновления в патч, nil поля остаются nil
func DTOToIncidentPatch(dto UpdateIncidentRequest) models.IncidentPatch {
	patch := models.IncidentPatch{
		Title:       dto.Title,
		Description: dto.Description,
		Location:    dto.Location,
		Coordinates: dtoToCoordinates(dto.Coordinates),
		Units:       dto.Units,
		Priority:    dto.Priority,
		Region:      dto.Region,
		District:    dto.District,
		Station:     dto.Station,
	}
	if dto.Type != nil {
		t := models.IncidentType(*dto.Type)
		patch.Type = &t
	}
	if dto.Status != nil {
		s := models.IncidentStatus(*dto.Status)
		patch.Status = &s
	}
	return patch
}

func dtoToCoordinates(dto *CoordinatesDTO) *models.Coordinates {
	if dto == nil {
		return nil
	}
	return &models.Coordinates{Latitude: dto.Latitude, Longitude: dto.Longitude}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	resp := &IncidentResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Location:    model.Location,
		Type:        string(model.Type),
		Status:      string(model.Status),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		Units:       model.Units,
		Priority:    model.Priority,
		Region:      model.Region,
		District:    model.District,
		Station:     model.Station,
		Local:       model.Local,
	}
	if resp.Units == nil {
		resp.Units = []string{}
	}
	if model.Coordinates != nil {
		resp.Coordinates = &CoordinatesDTO{Latitude: model.Coordinates.Latitude, Longitude: model.Coordinates.Longitude}
	}
	return resp
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []models.Incident) []*IncidentResponse {
	return lo.Map(incidents, func(in models.Incident, _ int) *IncidentResponse {
		return ModelToIncidentResponse(&in)
	})
}

func ModelToIncidentListResponse(list models.IncidentList) IncidentListResponse {
	return IncidentListResponse{
		Incidents:   ModelsToIncidentResponses(list.Incidents),
		Error:       list.Error,
		Loaded:      list.Loaded,
		UnreadCount: list.UnreadCount,
	}
}

func ModelsToIncidentsResponse(incidents []models.Incident) IncidentsResponse {
	return IncidentsResponse{
		Incidents: ModelsToIncidentResponses(incidents),
		Count:     len(incidents),
	}
}

func typesToStrings(types []models.IncidentType) []string {
	return lo.Map(types, func(t models.IncidentType, _ int) string { return string(t) })
}

func stringsToTypes(values *[]string) *[]models.IncidentType {
	if values == nil {
		return nil
	}
	types := lo.Map(*values, func(v string, _ int) models.IncidentType { return models.IncidentType(v) })
	return &types
}

func ModelToFilterSettingsDTO(fs models.FilterSettings) FilterSettingsDTO {
	return FilterSettingsDTO{
		Regions:        fs.Regions,
		Districts:      fs.Districts,
		Stations:       fs.Stations,
		EmergencyTypes: typesToStrings(fs.EmergencyTypes),
		ShowActive:     fs.ShowActive,
		ShowCompleted:  fs.ShowCompleted,
		ShowPending:    fs.ShowPending,
	}
}

func DTOToFilterSettingsPatch(dto UpdateFilterSettingsRequest) models.FilterSettingsPatch {
	return models.FilterSettingsPatch{
		Regions:        dto.Regions,
		Districts:      dto.Districts,
		Stations:       dto.Stations,
		EmergencyTypes: stringsToTypes(dto.EmergencyTypes),
		ShowActive:     dto.ShowActive,
		ShowCompleted:  dto.ShowCompleted,
		ShowPending:    dto.ShowPending,
	}
}

func ModelToNotificationSettingsDTO(ns models.NotificationSettings) NotificationSettingsDTO {
	return NotificationSettingsDTO{
		Enabled:         ns.Enabled,
		EmergencyAlerts: ns.EmergencyAlerts,
		StatusUpdates:   ns.StatusUpdates,
		RegionFilters:   ns.RegionFilters,
		DistrictFilters: ns.DistrictFilters,
		StationFilters:  ns.StationFilters,
		TypeFilters:     typesToStrings(ns.TypeFilters),
	}
}

func DTOToNotificationSettingsPatch(dto UpdateNotificationSettingsRequest) models.NotificationSettingsPatch {
	return models.NotificationSettingsPatch{
		Enabled:         dto.Enabled,
		EmergencyAlerts: dto.EmergencyAlerts,
		StatusUpdates:   dto.StatusUpdates,
		RegionFilters:   dto.RegionFilters,
		DistrictFilters: dto.DistrictFilters,
		StationFilters:  dto.StationFilters,
		TypeFilters:     stringsToTypes(dto.TypeFilters),
	}
}

func ModelsToShiftResponses(shifts []models.ShiftDay) []ShiftResponse {
	return lo.Map(shifts, func(day models.ShiftDay, _ int) ShiftResponse {
		return ShiftResponse{Date: day.Date.Format(shiftDateLayout), Shift: string(day.Shift)}
	})
}

func ModelToStatisticsResponse(report models.StatisticsReport) StatisticsResponse {
	resp := StatisticsResponse{
		Total:       report.Local.Total,
		ByStatus:    lo.MapKeys(report.Local.ByStatus, func(_ int, k models.IncidentStatus) string { return string(k) }),
		ByType:      lo.MapKeys(report.Local.ByType, func(_ int, k models.IncidentType) string { return string(k) }),
		RemoteError: report.RemoteError,
	}
	if report.Remote != nil {
		resp.Remote = &RemoteStatisticsResponse{
			DailyStats:  report.Remote.DailyStats,
			YearlyStats: report.Remote.YearlyStats,
		}
	}
	return resp
}

func ModelToHealthResponse(report models.HealthReport) HealthResponse {
	return HealthResponse{
		Status:       report.Status,
		SourceStatus: report.SourceStatus,
		SourceError:  report.SourceError,
		Loaded:       report.Loaded,
		FetchError:   report.FetchError,
		Foreground:   report.Foreground,
		Incidents:    report.Incidents,
	}
}
