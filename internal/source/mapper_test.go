package source

import (
	"errors"
	"testing"
	"time"

	"github.com/shenikar/zasahy_monitor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReportedAt_UTC(t *testing.T) {
	got, err := ParseReportedAt("24.05.2024 14:30", time.UTC)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 24, 14, 30, 0, 0, time.UTC), got)
	assert.Equal(t, "2024-05-24T14:30:00Z", got.Format(time.RFC3339))
}

func TestParseReportedAt_PinnedLocation(t *testing.T) {
	cest := time.FixedZone("CEST", 2*60*60)

	got, err := ParseReportedAt("24.05.2024 14:30", cest)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 24, 12, 30, 0, 0, time.UTC), got.UTC())
}

func TestParseReportedAt_Malformed(t *testing.T) {
	cases := []string{
		"",
		"24.05.2024",
		"2024-05-24 14:30",
		"24.05.2024 25:30",
		"32.05.2024 14:30",
		"24/05/2024 14:30",
	}
	for _, value := range cases {
		t.Run(value, func(t *testing.T) {
			_, err := ParseReportedAt(value, time.UTC)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParse))
			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr))
		})
	}
}

func TestMapper_Map(t *testing.T) {
	m := NewMapper(time.UTC, "Kraj Vysočina")
	raw := RawIncident{
		ID:             "42",
		DatumOhlaseni:  "24.05.2024 14:30",
		TypUdalosti:    "POŽÁR",
		PodtypUdalosti: "RODINNÝ DŮM",
		Okres:          "Jihlava",
		Obec:           "Jihlava",
		Ulice:          "Masarykova",
		Poznamka:       "N/A",
	}

	got, err := m.Map(raw)

	require.NoError(t, err)
	assert.Equal(t, "42", got.ID)
	assert.Equal(t, "POŽÁR - RODINNÝ DŮM", got.Title)
	assert.Equal(t, "Masarykova, Jihlava", got.Location)
	assert.Empty(t, got.Description)
	assert.Equal(t, models.TypeFire, got.Type)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.Equal(t, 1, got.Priority)
	assert.Equal(t, "Kraj Vysočina", got.Region)
	assert.Equal(t, "Jihlava", got.District)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	assert.NotNil(t, got.Units)
}

func TestMapper_SynthesizedIDIsStable(t *testing.T) {
	m := NewMapper(time.UTC, "")
	raw := RawIncident{
		Datum:       "24.05.2024 14:30",
		TypUdalosti: "DOPRAVNÍ NEHODA",
		Okres:       "Třebíč",
		Obec:        "Třebíč",
		Ulice:       "N/A",
	}

	first, err := m.Map(raw)
	require.NoError(t, err)
	second, err := m.Map(raw)
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.TypeAccident, first.Type)
	assert.Equal(t, "Třebíč", first.Location)

	raw.Obec = "Jemnice"
	other, err := m.Map(raw)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestClassify(t *testing.T) {
	cases := map[string]models.IncidentType{
		"POŽÁR":                   models.TypeFire,
		"Dopravní nehoda":         models.TypeAccident,
		"ÚNIK NEBEZPEČNÝCH LÁTEK": models.TypeChemical,
		"ZÁCHRANA OSOB A ZVÍŘAT":  models.TypeRescue,
		"TECHNICKÁ POMOC":         models.TypeTechnical,
		"PLANÝ POPLACH":           models.TypeOther,
		"":                        models.TypeOther,
	}
	for in, want := range cases {
		assert.Equal(t, want, classify(in), in)
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, models.StatusCompleted, status("Ukončená"))
	assert.Equal(t, models.StatusPending, status("Nová"))
	assert.Equal(t, models.StatusActive, status("Probíhající"))
	assert.Equal(t, models.StatusActive, status(""))
}

func TestMapper_MapAllStopsOnBadDate(t *testing.T) {
	m := NewMapper(time.UTC, "")
	raws := []RawIncident{
		{Datum: "24.05.2024 14:30", TypUdalosti: "POŽÁR"},
		{Datum: "včera", TypUdalosti: "POŽÁR"},
	}

	got, err := m.MapAll(raws)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrParse)
}
