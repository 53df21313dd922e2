package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/zasahy_monitor/internal/config"
	"github.com/shenikar/zasahy_monitor/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, cfg *config.Config) *NotificationWorker {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewNotificationWorker(nil, logger, cfg)
}

func testEvent(t *testing.T) (NotificationEvent, string) {
	t.Helper()
	event := NewNotificationEvent(models.Incident{
		ID:       "42",
		Title:    "POŽÁR - LES",
		Location: "Věžnice",
		Type:     models.TypeFire,
		Priority: 1,
	}, time.Date(2024, time.May, 24, 14, 30, 0, 0, time.UTC))
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(payload)
}

func TestNewNotificationEvent_Message(t *testing.T) {
	event, _ := testEvent(t)
	assert.Equal(t, "Nový zásah: Požár – Věžnice", event.Message)

	noLocation := NewNotificationEvent(models.Incident{ID: "1", Type: models.TypeOther}, time.Now())
	assert.Equal(t, "Nový zásah: Jiná událost", noLocation.Message)
}

func TestProcessEvent_SignsPayload(t *testing.T) {
	event, payload := testEvent(t)

	var gotSignature, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	worker := newTestWorker(t, &config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	ok := worker.processEvent(context.Background(), event, payload)

	assert.True(t, ok)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestProcessEvent_RetriesUntilSuccess(t *testing.T) {
	event, payload := testEvent(t)

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("X-Webhook-Signature"))
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(t, &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.True(t, worker.processEvent(context.Background(), event, payload))
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessEvent_GivesUpAfterMaxRetries(t *testing.T) {
	event, payload := testEvent(t)

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker := newTestWorker(t, &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.False(t, worker.processEvent(context.Background(), event, payload))
	assert.Equal(t, int32(2), calls.Load())
}

func TestProcessEvent_NoURLSkipsDelivery(t *testing.T) {
	event, payload := testEvent(t)
	worker := newTestWorker(t, &config.Config{WebhookTimeout: time.Second})

	assert.False(t, worker.processEvent(context.Background(), event, payload))
}

func TestGenerateHMACSHA256(t *testing.T) {
	// HMAC-SHA256("message", "key")
	assert.Equal(t,
		"6e9ef29b75fffc5b7abae527d58fdadb2fe42e7219011976917343065f58ed4a",
		generateHMACSHA256("message", "key"))
}
