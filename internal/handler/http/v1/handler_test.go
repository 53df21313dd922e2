package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/zasahy_monitor/internal/config"
	"github.com/shenikar/zasahy_monitor/internal/models"
	"github.com/shenikar/zasahy_monitor/internal/service"
	"github.com/shenikar/zasahy_monitor/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testIncident(id string) models.Incident {
	created := time.Date(2024, time.May, 24, 14, 30, 0, 0, time.UTC)
	return models.Incident{
		ID:        id,
		Title:     "POŽÁR - LES",
		Location:  "Věžnice",
		Type:      models.TypeFire,
		Status:    models.StatusActive,
		CreatedAt: created,
		UpdatedAt: created,
		Units:     []string{},
		Priority:  1,
		Region:    "Kraj Vysočina",
		District:  "Jihlava",
	}
}

func TestAuth_MissingAndInvalidKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListIncidents(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAuth_BearerToken(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().UnreadCount(gomock.Any()).Return(3)

	w := makeRequest(router, "GET", "/api/v1/notifications/unread-count", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"unread_count":3}`, w.Body.String())
}

func TestAuth_DisabledWithoutKeys(t *testing.T) {
	handler, mockService, router := newTestHandler(t)
	handler.cfg.APIKeys = nil
	mockService.EXPECT().UnreadCount(gomock.Any()).Return(0)

	w := makeRequest(router, "GET", "/api/v1/notifications/unread-count", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListIncidents(gomock.Any()).Return(models.IncidentList{
		Incidents:   []models.Incident{testIncident("1"), testIncident("2")},
		Error:       "Nepodařilo se načíst výjezdy: server je nedostupný",
		Loaded:      true,
		UnreadCount: 2,
	})

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Incidents, 2)
	assert.Equal(t, "1", resp.Incidents[0].ID)
	assert.Equal(t, "fire", resp.Incidents[0].Type)
	assert.True(t, resp.Loaded)
	assert.Equal(t, 2, resp.UnreadCount)
	assert.Equal(t, "Nepodařilo se načíst výjezdy: server je nedostupný", resp.Error)
}

func TestListAllIncidents_EmptyIsArray(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().AllIncidents(gomock.Any()).Return([]models.Incident{})

	w := makeRequest(router, "GET", "/api/v1/incidents/all", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	incident := testIncident("abc")
	mockService.EXPECT().GetIncident(gomock.Any(), "abc").Return(&incident, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents/abc", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "abc", resp.ID)
	assert.Equal(t, "Věžnice", resp.Location)
	assert.Equal(t, incident.CreatedAt, resp.CreatedAt)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		GetIncident(gomock.Any(), "missing").
		Return(nil, fmt.Errorf("service: incident missing: %w", service.ErrIncidentNotFound))

	w := makeRequest(router, "GET", "/api/v1/incidents/missing", nil, apiKeyHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestMarkRead(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	gomock.InOrder(
		mockService.EXPECT().MarkRead(gomock.Any(), "1").Return(nil),
		mockService.EXPECT().UnreadCount(gomock.Any()).Return(4),
	)

	w := makeRequest(router, "POST", "/api/v1/incidents/1/read", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"unread_count":4}`, w.Body.String())
}

func TestMarkRead_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().MarkRead(gomock.Any(), "missing").Return(service.ErrIncidentNotFound)

	w := makeRequest(router, "POST", "/api/v1/incidents/missing/read", nil, apiKeyHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Title:    "Testovací zásah",
		Location: "Jihlava",
		Type:     "rescue",
	}

	mockService.EXPECT().
		CreateTestIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, models.TypeRescue, inc.Type)
			assert.Empty(t, inc.Status)
			inc.ID = "generated"
			inc.Status = models.StatusActive
			inc.Priority = 2
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "generated", resp.ID)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, 2, resp.Priority)
	assert.Equal(t, []string{}, resp.Units)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateTestIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"title": "test"`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	tests := []struct {
		name string
		body CreateIncidentRequest
		want string
	}{
		{
			name: "missing title",
			body: CreateIncidentRequest{Type: "fire"},
			want: "Error:Field validation for 'Title' failed on the 'required' tag",
		},
		{
			name: "unknown type",
			body: CreateIncidentRequest{Title: "Test", Type: "flood"},
			want: "Error:Field validation for 'Type' failed on the 'oneof' tag",
		},
		{
			name: "priority out of range",
			body: CreateIncidentRequest{Title: "Test", Type: "fire", Priority: 5},
			want: "Error:Field validation for 'Priority' failed on the 'max' tag",
		},
		{
			name: "bad latitude",
			body: CreateIncidentRequest{Title: "Test", Type: "fire", Coordinates: &CoordinatesDTO{Latitude: 123, Longitude: 15}},
			want: "Error:Field validation for 'Latitude' failed on the 'latitude' tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().CreateTestIncident(gomock.Any(), gomock.Any()).Times(0)

			bodyBytes, _ := json.Marshal(tt.body)
			w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), apiKeyHeader)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestCreateIncident_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().CreateTestIncident(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"title":"Test","type":"fire"}`), apiKeyHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestUpdateIncident_PartialPatch(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	updated := testIncident("1")
	updated.Status = models.StatusCompleted

	mockService.EXPECT().
		UpdateIncident(gomock.Any(), "1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, patch models.IncidentPatch) (*models.Incident, error) {
			require.NotNil(t, patch.Status)
			assert.Equal(t, models.StatusCompleted, *patch.Status)
			assert.Nil(t, patch.Title)
			assert.Nil(t, patch.Type)
			assert.Nil(t, patch.Units)
			return &updated, nil
		})

	w := makeRequest(router, "PATCH", "/api/v1/incidents/1", bytes.NewBufferString(`{"status":"completed"}`), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"completed"`)
}

func TestUpdateIncident_NotFoundAndInvalid(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		UpdateIncident(gomock.Any(), "missing", gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", service.ErrIncidentNotFound))

	w := makeRequest(router, "PATCH", "/api/v1/incidents/missing", bytes.NewBufferString(`{"title":"New title"}`), apiKeyHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = makeRequest(router, "PATCH", "/api/v1/incidents/1", bytes.NewBufferString(`{"status":"unknown"}`), apiKeyHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefresh(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	gomock.InOrder(
		mockService.EXPECT().Refresh(gomock.Any()).Return(models.IncidentList{
			Incidents: []models.Incident{testIncident("1")},
			Loaded:    true,
		}, nil),
		mockService.EXPECT().Refresh(gomock.Any()).Return(models.IncidentList{
			Incidents: []models.Incident{testIncident("1")},
			Loaded:    true,
			Error:     "Nepodařilo se načíst výjezdy: server je nedostupný",
		}, errors.New("network error")),
	)

	w := makeRequest(router, "POST", "/api/v1/incidents/refresh", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "POST", "/api/v1/incidents/refresh", nil, apiKeyHeader)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	var resp IncidentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Incidents, 1)
	assert.NotEmpty(t, resp.Error)
}

func TestLoadMoreAndPoll(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().LoadMore(gomock.Any()).Return([]models.Incident{testIncident("3")}, nil)
	mockService.EXPECT().PollNew(gomock.Any()).Return(nil, errors.New("network error"))

	w := makeRequest(router, "POST", "/api/v1/incidents/load-more", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)

	w = makeRequest(router, "POST", "/api/v1/incidents/poll", nil, apiKeyHeader)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "failed to fetch incidents")
}

func TestFilterSettings(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().FilterSettings(gomock.Any()).Return(models.DefaultFilterSettings())
	mockService.EXPECT().
		UpdateFilterSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, patch models.FilterSettingsPatch) models.FilterSettings {
			require.NotNil(t, patch.EmergencyTypes)
			assert.Equal(t, []models.IncidentType{models.TypeFire}, *patch.EmergencyTypes)
			require.NotNil(t, patch.ShowActive)
			assert.False(t, *patch.ShowActive)
			assert.Nil(t, patch.Regions)
			return patch.Apply(models.DefaultFilterSettings())
		})

	w := makeRequest(router, "GET", "/api/v1/settings/filters", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"regions":[],"districts":[],"stations":[],"emergency_types":[],"show_active":true,"show_completed":true,"show_pending":true}`, w.Body.String())

	w = makeRequest(router, "PATCH", "/api/v1/settings/filters", bytes.NewBufferString(`{"emergency_types":["fire"],"show_active":false}`), apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"show_active":false`)
}

func TestFilterSettings_InvalidType(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().UpdateFilterSettings(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PATCH", "/api/v1/settings/filters", bytes.NewBufferString(`{"emergency_types":["flood"]}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationSettings(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().NotificationSettings(gomock.Any()).Return(models.DefaultNotificationSettings())
	mockService.EXPECT().
		UpdateNotificationSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, patch models.NotificationSettingsPatch) models.NotificationSettings {
			return patch.Apply(models.DefaultNotificationSettings())
		})

	w := makeRequest(router, "GET", "/api/v1/settings/notifications", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"enabled":true`)

	w = makeRequest(router, "PATCH", "/api/v1/settings/notifications", bytes.NewBufferString(`{"enabled":false,"district_filters":["Jihlava"]}`), apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp NotificationSettingsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Enabled)
	assert.True(t, resp.EmergencyAlerts)
	assert.Equal(t, []string{"Jihlava"}, resp.DistrictFilters)
}

func TestGetShifts(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Shifts(gomock.Any()).Return([]models.ShiftDay{
		{Date: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), Shift: models.ShiftA},
		{Date: time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC), Shift: models.ShiftB},
	})

	w := makeRequest(router, "GET", "/api/v1/shifts", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"date":"2024-05-01","shift":"A"},{"date":"2024-05-02","shift":"B"}]`, w.Body.String())
}

func TestGetStatistics(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Statistics(gomock.Any()).Return(models.StatisticsReport{
		Local: models.Statistics{
			Total:    1,
			ByStatus: map[models.IncidentStatus]int{models.StatusActive: 1},
			ByType:   map[models.IncidentType]int{models.TypeFire: 1},
		},
		RemoteError: "request failed",
	})

	w := makeRequest(router, "GET", "/api/v1/statistics", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":1,"by_status":{"active":1},"by_type":{"fire":1},"remote_error":"request failed"}`, w.Body.String())
}

func TestSetAppState(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SetAppState(gomock.Any(), true).Return(true)
	mockService.EXPECT().SetAppState(gomock.Any(), false).Return(false)

	w := makeRequest(router, "POST", "/api/v1/app/state", bytes.NewBufferString(`{"state":"active"}`), apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"state":"active","fetch_triggered":true}`, w.Body.String())

	w = makeRequest(router, "POST", "/api/v1/app/state", bytes.NewBufferString(`{"state":"background"}`), apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "POST", "/api/v1/app/state", bytes.NewBufferString(`{"state":"sleeping"}`), apiKeyHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck_NoAuth(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Health(gomock.Any()).Return(models.HealthReport{
		Status:       "ok",
		SourceStatus: "ok",
		Loaded:       true,
		Foreground:   true,
		Incidents:    20,
	})

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","source_status":"ok","loaded":true,"foreground":true,"incidents":20}`, w.Body.String())
}
