package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/zasahy_monitor/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	incidentsPath    = "/api/zasahy"
	newIncidentsPath = "/api/nove-zasahy"
	statisticsPath   = "/api/statistics"
	statusPath       = "/api/status"
)

// Client - HTTP клиент удаленного источника выездов
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает клиент. baseURL задается конфигурацией, timeout ограничивает каждый запрос.
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ListIncidents запрашивает страницу списка инцидентов
func (c *Client) ListIncidents(ctx context.Context, limit, offset int) ([]RawIncident, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var resp listResponse
	endpoint, err := c.getJSON(ctx, incidentsPath, query, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Zasahy == nil {
		return nil, &ShapeError{URL: endpoint, Reason: "missing zasahy array"}
	}
	return *resp.Zasahy, nil
}

// NewIncidents запрашивает ленту новых инцидентов
func (c *Client) NewIncidents(ctx context.Context) ([]RawIncident, error) {
	var resp newResponse
	endpoint, err := c.getJSON(ctx, newIncidentsPath, nil, &resp)
	if err != nil {
		return nil, err
	}
	if resp.NoveZasahy == nil {
		return nil, &ShapeError{URL: endpoint, Reason: "missing nove_zasahy array"}
	}
	return *resp.NoveZasahy, nil
}

// Statistics запрашивает агрегированные счетчики
func (c *Client) Statistics(ctx context.Context) (*models.RemoteStatistics, error) {
	var resp statisticsResponse
	endpoint, err := c.getJSON(ctx, statisticsPath, nil, &resp)
	if err != nil {
		return nil, err
	}
	if resp.DailyStats == nil && resp.YearlyStats == nil {
		return nil, &ShapeError{URL: endpoint, Reason: "missing daily_stats and yearly_stats"}
	}
	return resp.toModel(), nil
}

// Status возвращает состояние источника ("online" / "offline")
func (c *Client) Status(ctx context.Context) (string, error) {
	var resp statusResponse
	endpoint, err := c.getJSON(ctx, statusPath, nil, &resp)
	if err != nil {
		return "", err
	}
	if resp.Status == "" {
		return "", &ShapeError{URL: endpoint, Reason: "missing status"}
	}
	return resp.Status, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) (string, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	log := c.logger.WithFields(logrus.Fields{
		"service": "source",
		"url":     endpoint,
	})
	log.Debug("Requesting remote source")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return endpoint, &NetworkError{URL: endpoint, Err: fmt.Errorf("failed to create http request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Remote source request failed")
		return endpoint, &NetworkError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithField("status_code", resp.StatusCode).Warn("Remote source returned non-2xx status")
		return endpoint, &NetworkError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		log.WithError(err).Warn("Failed to decode remote source response")
		return endpoint, &ShapeError{URL: endpoint, Reason: "invalid json", Err: err}
	}
	return endpoint, nil
}
