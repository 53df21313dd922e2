package source

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shenikar/zasahy_monitor/internal/models"
)

// SourceID - id записи источника. Приходит строкой или числом.
type SourceID string

func (id *SourceID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = SourceID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = SourceID(n.String())
	return nil
}

// RawIncident - запись в формате удаленного источника.
// Список отдает дату в datum_ohlaseni, лента новых - в datum.
type RawIncident struct {
	ID             SourceID `json:"id,omitempty"`
	DatumOhlaseni  string   `json:"datum_ohlaseni,omitempty"`
	Datum          string   `json:"datum,omitempty"`
	Stav           string   `json:"stav,omitempty"`
	TypUdalosti    string   `json:"typ_udalosti"`
	PodtypUdalosti string   `json:"podtyp_udalosti"`
	Okres          string   `json:"okres"`
	Obec           string   `json:"obec"`
	Ulice          string   `json:"ulice"`
	Poznamka       string   `json:"poznamka"`
}

// ReportedAt возвращает строку даты из того поля, которое заполнено
func (r RawIncident) ReportedAt() string {
	if r.DatumOhlaseni != "" {
		return r.DatumOhlaseni
	}
	return r.Datum
}

type listResponse struct {
	Zasahy *[]RawIncident `json:"zasahy"`
}

type newResponse struct {
	NoveZasahy *[]RawIncident `json:"nove_zasahy"`
}

type statisticsResponse struct {
	DailyStats  map[string]int `json:"daily_stats"`
	YearlyStats map[string]int `json:"yearly_stats"`
}

func (r statisticsResponse) toModel() *models.RemoteStatistics {
	return &models.RemoteStatistics{
		DailyStats:  r.DailyStats,
		YearlyStats: r.YearlyStats,
	}
}

type statusResponse struct {
	Status string `json:"status"`
}
