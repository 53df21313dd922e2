package repository

import (
	"encoding/json"
	"fmt"

	"github.com/shenikar/zasahy_monitor/internal/models"
)

// encodeSnapshot сериализует снапшот в JSON для хранения
func encodeSnapshot(snapshot *models.Snapshot) ([]byte, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("snapshot is nil")
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return payload, nil
}

// decodeSnapshot разбирает снапшот поверх настроек по умолчанию,
// чтобы отсутствующие в старых снапшотах поля не выключали фильтры.
func decodeSnapshot(payload []byte) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{
		FilterSettings:       models.DefaultFilterSettings(),
		NotificationSettings: models.DefaultNotificationSettings(),
	}
	if err := json.Unmarshal(payload, snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snapshot, nil
}
