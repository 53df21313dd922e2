package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/zasahy_monitor/internal/models"
)

const (
	notificationQueueKey = "notification_events"
)

// NotificationEvent - уведомление о новом выезде
type NotificationEvent struct {
	IncidentID string              `json:"incident_id"`
	Type       models.IncidentType `json:"type"`
	Title      string              `json:"title"`
	Location   string              `json:"location"`
	Message    string              `json:"message"`
	Priority   int                 `json:"priority"`
	Timestamp  time.Time           `json:"timestamp"`
}

// NewNotificationEvent собирает уведомление с кратким текстом "тип - место"
func NewNotificationEvent(incident models.Incident, now time.Time) NotificationEvent {
	message := "Nový zásah: " + incident.Type.Label()
	if incident.Location != "" {
		message += " – " + incident.Location
	}
	return NotificationEvent{
		IncidentID: incident.ID,
		Type:       incident.Type,
		Title:      incident.Title,
		Location:   incident.Location,
		Message:    message,
		Priority:   incident.Priority,
		Timestamp:  now,
	}
}

// NotificationPublisher - интерфейс для публикации уведомлений
type NotificationPublisher interface {
	Publish(ctx context.Context, event NotificationEvent) error
}

// RedisNotificationPublisher кладет уведомления в очередь Redis
type RedisNotificationPublisher struct {
	redisClient *redis.Client
}

func NewRedisNotificationPublisher(client *redis.Client) *RedisNotificationPublisher {
	return &RedisNotificationPublisher{
		redisClient: client,
	}
}

// Publish публикует уведомление в очередь Redis
func (p *RedisNotificationPublisher) Publish(ctx context.Context, event NotificationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	// LPUSH + BRPOP на стороне воркера дают FIFO
	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification event to Redis: %w", err)
	}
	return nil
}
