package store

import (
	"github.com/samber/lo"
	"github.com/shenikar/zasahy_monitor/internal/models"
)

// Filter возвращает инциденты, проходящие все фильтры, в исходном порядке
func Filter(incidents []models.Incident, settings models.FilterSettings) []models.Incident {
	return lo.Filter(incidents, func(in models.Incident, _ int) bool {
		return matchesFilter(in, settings)
	})
}

func matchesFilter(in models.Incident, settings models.FilterSettings) bool {
	switch in.Status {
	case models.StatusActive:
		if !settings.ShowActive {
			return false
		}
	case models.StatusCompleted:
		if !settings.ShowCompleted {
			return false
		}
	case models.StatusPending:
		if !settings.ShowPending {
			return false
		}
	}

	if len(settings.EmergencyTypes) > 0 && !lo.Contains(settings.EmergencyTypes, in.Type) {
		return false
	}

	return inSet(settings.Regions, in.Region) &&
		inSet(settings.Districts, in.District) &&
		inSet(settings.Stations, in.Station)
}

// MatchesNotification решает, должен ли инцидент породить уведомление о новом выезде
func MatchesNotification(in models.Incident, settings models.NotificationSettings) bool {
	if !settings.Enabled || !settings.EmergencyAlerts {
		return false
	}
	if len(settings.TypeFilters) > 0 && !lo.Contains(settings.TypeFilters, in.Type) {
		return false
	}
	return inSet(settings.RegionFilters, in.Region) &&
		inSet(settings.DistrictFilters, in.District) &&
		inSet(settings.StationFilters, in.Station)
}

// inSet: пустой набор или пустое значение не ограничивают выборку
func inSet(set []string, value string) bool {
	if len(set) == 0 || value == "" {
		return true
	}
	return lo.Contains(set, value)
}
