package models

import (
	"time"
)

// IncidentType - тип события (výjezd)
type IncidentType string

const (
	TypeFire      IncidentType = "fire"
	TypeAccident  IncidentType = "accident"
	TypeRescue    IncidentType = "rescue"
	TypeTechnical IncidentType = "technical"
	TypeChemical  IncidentType = "chemical"
	TypeOther     IncidentType = "other"
)

// IncidentTypes перечисляет все известные типы в порядке отображения
var IncidentTypes = []IncidentType{TypeFire, TypeAccident, TypeRescue, TypeTechnical, TypeChemical, TypeOther}

// IncidentStatus - состояние инцидента
type IncidentStatus string

const (
	StatusActive    IncidentStatus = "active"
	StatusCompleted IncidentStatus = "completed"
	StatusPending   IncidentStatus = "pending"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Incident - один выезд (zásah), как его видит клиент
type Incident struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	Coordinates *Coordinates   `json:"coordinates,omitempty"`
	Type        IncidentType   `json:"type"`
	Status      IncidentStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Units       []string       `json:"units"`
	Priority    int            `json:"priority"`
	Region      string         `json:"region,omitempty"`
	District    string         `json:"district,omitempty"`
	Station     string         `json:"station,omitempty"`
	// Local - инцидент создан локально и отсутствует в удаленном списке
	Local bool `json:"local,omitempty"`
}

// IncidentPatch - частичное обновление инцидента, nil поля не трогаются
type IncidentPatch struct {
	Title       *string
	Description *string
	Location    *string
	Coordinates *Coordinates
	Type        *IncidentType
	Status      *IncidentStatus
	Units       []string
	Priority    *int
	Region      *string
	District    *string
	Station     *string
}

// Apply накладывает патч на копию инцидента
func (p IncidentPatch) Apply(in Incident) Incident {
	if p.Title != nil {
		in.Title = *p.Title
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.Location != nil {
		in.Location = *p.Location
	}
	if p.Coordinates != nil {
		c := *p.Coordinates
		in.Coordinates = &c
	}
	if p.Type != nil {
		in.Type = *p.Type
	}
	if p.Status != nil {
		in.Status = *p.Status
	}
	if p.Units != nil {
		in.Units = append([]string(nil), p.Units...)
	}
	if p.Priority != nil {
		in.Priority = *p.Priority
	}
	if p.Region != nil {
		in.Region = *p.Region
	}
	if p.District != nil {
		in.District = *p.District
	}
	if p.Station != nil {
		in.Station = *p.Station
	}
	return in
}

// Clone возвращает глубокую копию инцидента
func (i Incident) Clone() Incident {
	if i.Coordinates != nil {
		c := *i.Coordinates
		i.Coordinates = &c
	}
	if i.Units != nil {
		i.Units = append([]string(nil), i.Units...)
	}
	return i
}

// NotificationFlag - признак прочтения уведомления по инциденту
type NotificationFlag struct {
	ID   string `json:"id"`
	Read bool   `json:"read"`
}

var typeLabels = map[IncidentType]string{
	TypeFire:      "Požár",
	TypeAccident:  "Dopravní nehoda",
	TypeRescue:    "Záchrana",
	TypeTechnical: "Technická pomoc",
	TypeChemical:  "Únik nebezpečné látky",
	TypeOther:     "Jiná událost",
}

// Label возвращает чешское название типа для уведомлений
func (t IncidentType) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return typeLabels[TypeOther]
}

// Valid проверяет, что тип из известного перечня
func (t IncidentType) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}

// DefaultPriority - приоритет по типу: 1 для пожаров, аварий и утечек, 2 для спасательных работ, иначе 3
func (t IncidentType) DefaultPriority() int {
	switch t {
	case TypeFire, TypeAccident, TypeChemical:
		return 1
	case TypeRescue:
		return 2
	default:
		return 3
	}
}
