package store

import (
	"testing"

	"github.com/shenikar/zasahy_monitor/internal/models"
	"github.com/stretchr/testify/assert"
)

func filterFixture() []models.Incident {
	a := incident("1", models.StatusActive)
	b := incident("2", models.StatusCompleted)
	b.Type = models.TypeAccident
	b.District = "Třebíč"
	c := incident("3", models.StatusPending)
	c.Type = models.TypeChemical
	c.Station = "Stanice Pelhřimov"
	c.District = "Pelhřimov"
	d := incident("4", models.StatusActive)
	d.Region = ""
	d.District = ""
	d.Type = models.TypeTechnical
	e := incident("5", models.StatusCompleted)
	return []models.Incident{a, b, c, d, e}
}

func TestFilter_DefaultSettingsReturnInputUnchanged(t *testing.T) {
	incidents := filterFixture()

	got := Filter(incidents, models.DefaultFilterSettings())

	assert.Equal(t, incidents, got)
}

func TestFilter_HideActiveRemovesExactlyActive(t *testing.T) {
	incidents := filterFixture()
	settings := models.DefaultFilterSettings()
	settings.ShowActive = false

	got := Filter(incidents, settings)

	assert.Equal(t, []string{"2", "3", "5"}, ids(got))
}

func TestFilter_StatusFlags(t *testing.T) {
	settings := models.DefaultFilterSettings()
	settings.ShowCompleted = false
	settings.ShowPending = false

	assert.Equal(t, []string{"1", "4"}, ids(Filter(filterFixture(), settings)))
}

func TestFilter_EmergencyTypes(t *testing.T) {
	settings := models.DefaultFilterSettings()
	settings.EmergencyTypes = []models.IncidentType{models.TypeFire, models.TypeChemical}

	assert.Equal(t, []string{"1", "3", "5"}, ids(Filter(filterFixture(), settings)))
}

func TestFilter_DistrictSkipsIncidentsWithoutDistrict(t *testing.T) {
	settings := models.DefaultFilterSettings()
	settings.Districts = []string{"Jihlava"}

	// инцидент 4 без округа проходит фильтр
	assert.Equal(t, []string{"1", "4", "5"}, ids(Filter(filterFixture(), settings)))
}

func TestFilter_StationAndRegion(t *testing.T) {
	settings := models.DefaultFilterSettings()
	settings.Stations = []string{"Stanice Pelhřimov"}
	settings.Regions = []string{"Kraj Vysočina"}

	// только у инцидента 3 задана станция; остальные без станции не ограничиваются
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(Filter(filterFixture(), settings)))

	settings.Stations = []string{"Stanice Jihlava"}
	assert.Equal(t, []string{"1", "2", "4", "5"}, ids(Filter(filterFixture(), settings)))

	settings.Regions = []string{"Jihomoravský kraj"}
	assert.Equal(t, []string{"4"}, ids(Filter(filterFixture(), settings)))
}

func TestFilter_EmptyInput(t *testing.T) {
	got := Filter(nil, models.DefaultFilterSettings())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatchesNotification(t *testing.T) {
	in := incident("1", models.StatusActive)

	settings := models.DefaultNotificationSettings()
	assert.True(t, MatchesNotification(in, settings))

	settings.TypeFilters = []models.IncidentType{models.TypeAccident}
	assert.False(t, MatchesNotification(in, settings))

	settings = models.DefaultNotificationSettings()
	settings.DistrictFilters = []string{"Jihlava"}
	assert.True(t, MatchesNotification(in, settings))

	settings.EmergencyAlerts = false
	assert.False(t, MatchesNotification(in, settings))

	settings = models.DefaultNotificationSettings()
	settings.Enabled = false
	assert.False(t, MatchesNotification(in, settings))
}
