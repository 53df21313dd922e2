package source

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shenikar/zasahy_monitor/internal/models"
)

const (
	// layout после перестановки "DD.MM.YYYY HH:MM" -> "YYYY-MM-DDTHH:MM:00"
	isoLayout   = "2006-01-02T15:04:05"
	missingText = "N/A"
)

// incidentNamespace - пространство имен для детерминированных id записей без id
var incidentNamespace = uuid.MustParse("6f1c7a52-4d0b-4f55-9a4e-7b1e2c3d9a10")

var typeKeywords = []struct {
	keyword string
	kind    models.IncidentType
}{
	{"POŽÁR", models.TypeFire},
	{"NEHOD", models.TypeAccident},
	{"ÚNIK", models.TypeChemical},
	{"NEBEZPEČN", models.TypeChemical},
	{"CHEMI", models.TypeChemical},
	{"ZÁCHRAN", models.TypeRescue},
	{"TECHNICK", models.TypeTechnical},
}

// Mapper превращает записи источника в models.Incident
type Mapper struct {
	location *time.Location
	region   string
}

// NewMapper создает Mapper. Даты источника трактуются во временной зоне loc.
func NewMapper(loc *time.Location, region string) *Mapper {
	if loc == nil {
		loc = time.UTC
	}
	return &Mapper{location: loc, region: region}
}

// ParseReportedAt разбирает дату формата "DD.MM.YYYY HH:MM"
func ParseReportedAt(value string, loc *time.Location) (time.Time, error) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return time.Time{}, &ParseError{Value: value, Err: fmt.Errorf("expected date and time separated by space")}
	}
	dateParts := strings.Split(parts[0], ".")
	if len(dateParts) != 3 {
		return time.Time{}, &ParseError{Value: value, Err: fmt.Errorf("expected DD.MM.YYYY date")}
	}

	iso := strings.Join(lo.Reverse(dateParts), "-") + "T" + parts[1] + ":00"
	t, err := time.ParseInLocation(isoLayout, iso, loc)
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Err: err}
	}
	return t, nil
}

// Map преобразует одну запись
func (m *Mapper) Map(raw RawIncident) (models.Incident, error) {
	reportedAt, err := ParseReportedAt(raw.ReportedAt(), m.location)
	if err != nil {
		return models.Incident{}, err
	}

	kind := classify(raw.TypUdalosti)
	incident := models.Incident{
		ID:          m.identity(raw),
		Title:       title(raw),
		Description: text(raw.Poznamka),
		Location:    strings.Join(lo.Compact([]string{text(raw.Ulice), text(raw.Obec)}), ", "),
		Type:        kind,
		Status:      status(raw.Stav),
		CreatedAt:   reportedAt,
		UpdatedAt:   reportedAt,
		Units:       []string{},
		Priority:    kind.DefaultPriority(),
		Region:      m.region,
		District:    text(raw.Okres),
	}
	return incident, nil
}

// MapAll преобразует пачку записей. Первая ошибка прерывает всю пачку.
func (m *Mapper) MapAll(raws []RawIncident) ([]models.Incident, error) {
	result := make([]models.Incident, 0, len(raws))
	for _, raw := range raws {
		incident, err := m.Map(raw)
		if err != nil {
			return nil, err
		}
		result = append(result, incident)
	}
	return result, nil
}

// identity берет id источника, а если его нет - хеш содержимого записи
func (m *Mapper) identity(raw RawIncident) string {
	if id := strings.TrimSpace(string(raw.ID)); id != "" {
		return id
	}
	key := strings.Join([]string{
		strings.TrimSpace(raw.ReportedAt()),
		strings.TrimSpace(raw.TypUdalosti),
		strings.TrimSpace(raw.PodtypUdalosti),
		strings.TrimSpace(raw.Okres),
		strings.TrimSpace(raw.Obec),
		strings.TrimSpace(raw.Ulice),
	}, "|")
	return uuid.NewSHA1(incidentNamespace, []byte(key)).String()
}

func classify(typ string) models.IncidentType {
	upper := strings.ToUpper(typ)
	for _, tk := range typeKeywords {
		if strings.Contains(upper, tk.keyword) {
			return tk.kind
		}
	}
	return models.TypeOther
}

func status(stav string) models.IncidentStatus {
	upper := strings.ToUpper(stav)
	switch {
	case strings.Contains(upper, "UKONČ"):
		return models.StatusCompleted
	case strings.Contains(upper, "NOV"), strings.Contains(upper, "ČEK"):
		return models.StatusPending
	default:
		return models.StatusActive
	}
}

func title(raw RawIncident) string {
	return strings.Join(lo.Compact([]string{text(raw.TypUdalosti), text(raw.PodtypUdalosti)}), " - ")
}

// text убирает пробелы и заглушку "N/A"
func text(s string) string {
	s = strings.TrimSpace(s)
	if s == missingText {
		return ""
	}
	return s
}
