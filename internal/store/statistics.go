package store

import (
	"github.com/samber/lo"
	"github.com/shenikar/zasahy_monitor/internal/models"
)

// ComputeStatistics считает инциденты по состояниям и типам
func ComputeStatistics(incidents []models.Incident) models.Statistics {
	stats := models.Statistics{
		Total:    len(incidents),
		ByStatus: map[models.IncidentStatus]int{},
		ByType:   lo.SliceToMap(models.IncidentTypes, func(t models.IncidentType) (models.IncidentType, int) { return t, 0 }),
	}
	for _, status := range []models.IncidentStatus{models.StatusActive, models.StatusCompleted, models.StatusPending} {
		stats.ByStatus[status] = 0
	}
	for status, n := range lo.CountValuesBy(incidents, func(in models.Incident) models.IncidentStatus { return in.Status }) {
		stats.ByStatus[status] = n
	}
	for t, n := range lo.CountValuesBy(incidents, func(in models.Incident) models.IncidentType { return in.Type }) {
		stats.ByType[t] = n
	}
	return stats
}
