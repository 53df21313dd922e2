package models

// Snapshot - сохраняемое состояние стора целиком
type Snapshot struct {
	Incidents            []Incident           `json:"incidents"`
	Shifts               []ShiftDay           `json:"shifts"`
	Notifications        []NotificationFlag   `json:"notifications"`
	FilterSettings       FilterSettings       `json:"filterSettings"`
	NotificationSettings NotificationSettings `json:"notificationSettings"`
}
