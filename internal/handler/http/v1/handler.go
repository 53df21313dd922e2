package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/zasahy_monitor/internal/config"
	"github.com/shenikar/zasahy_monitor/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	appStateActive = "active"
)

type Handler struct {
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// bind разбирает JSON и валидирует его. При ошибке ответ уже записан.
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Get filtered incidents
// @Description Get incidents after the user's filter settings, with load state and unread count. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} IncidentListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	list := h.incidentService.ListIncidents(c.Request.Context())
	c.JSON(http.StatusOK, ModelToIncidentListResponse(list))
}

// @Summary Get all incidents
// @Description Get the full unfiltered incident list. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents/all [get]
func (h *Handler) listAllIncidents(c *gin.Context) {
	incidents := h.incidentService.AllIncidents(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Create a test incident
// @Description Synthesize an incident locally and put it at the top of the list. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateTestIncident(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Mark incident notification as read
// @Description Mark the notification flag of an incident as read, as opening the detail view does. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} UnreadCountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/read [post]
func (h *Handler) markRead(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "markRead").WithField("id", id)

	if err := h.incidentService.MarkRead(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to mark incident as read")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, UnreadCountResponse{UnreadCount: h.incidentService.UnreadCount(c.Request.Context())})
}

// @Summary Update an existing incident
// @Description Merge the given fields into an incident. Omitted fields are left unchanged. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [patch]
func (h *Handler) updateIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	if !h.bind(c, log, &input) {
		return
	}

	incident, err := h.incidentService.UpdateIncident(c.Request.Context(), id, DTOToIncidentPatch(input))
	if err != nil {
		if errors.Is(err, service.ErrIncidentNotFound) {
			log.WithError(err).Warn("Incident not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to update incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update incident in service"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Refresh incidents
// @Description Reload the first page from the source and replace the list. Requires API key.
// @Tags Fetch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} IncidentListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} IncidentListResponse "Source unavailable, list left unchanged"
// @Router /incidents/refresh [post]
func (h *Handler) refresh(c *gin.Context) {
	log := h.logger.WithField("method", "refresh")

	list, err := h.incidentService.Refresh(c.Request.Context())
	if err != nil {
		log.WithError(err).Warn("Refresh failed")
		c.JSON(http.StatusBadGateway, ModelToIncidentListResponse(list))
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentListResponse(list))
}

// @Summary Load next page
// @Description Fetch the next page from the source and append it to the list. Requires API key.
// @Tags Fetch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} IncidentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Source unavailable"
// @Router /incidents/load-more [post]
func (h *Handler) loadMore(c *gin.Context) {
	log := h.logger.WithField("method", "loadMore")

	appended, err := h.incidentService.LoadMore(c.Request.Context())
	if err != nil {
		log.WithError(err).Warn("Load more failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch incidents"})
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentsResponse(appended))
}

// @Summary Poll new incidents
// @Description Fetch the new-incidents feed and merge incidents that are not in the list yet. Requires API key.
// @Tags Fetch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} IncidentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Source unavailable"
// @Router /incidents/poll [post]
func (h *Handler) pollNew(c *gin.Context) {
	log := h.logger.WithField("method", "pollNew")

	fresh, err := h.incidentService.PollNew(c.Request.Context())
	if err != nil {
		log.WithError(err).Warn("Poll failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch incidents"})
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentsResponse(fresh))
}

// @Summary Get unread notification count
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} UnreadCountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications/unread-count [get]
func (h *Handler) unreadCount(c *gin.Context) {
	c.JSON(http.StatusOK, UnreadCountResponse{UnreadCount: h.incidentService.UnreadCount(c.Request.Context())})
}

// @Summary Get filter settings
// @Tags Settings
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} FilterSettingsDTO
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /settings/filters [get]
func (h *Handler) getFilterSettings(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToFilterSettingsDTO(h.incidentService.FilterSettings(c.Request.Context())))
}

// @Summary Update filter settings
// @Description Shallow merge of the given fields into the filter settings. Requires API key.
// @Tags Settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param settings body UpdateFilterSettingsRequest true "Filter settings patch"
// @Success 200 {object} FilterSettingsDTO
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /settings/filters [patch]
func (h *Handler) updateFilterSettings(c *gin.Context) {
	var input UpdateFilterSettingsRequest
	log := h.logger.WithField("method", "updateFilterSettings")

	if !h.bind(c, log, &input) {
		return
	}

	settings := h.incidentService.UpdateFilterSettings(c.Request.Context(), DTOToFilterSettingsPatch(input))
	c.JSON(http.StatusOK, ModelToFilterSettingsDTO(settings))
}

// @Summary Get notification settings
// @Tags Settings
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} NotificationSettingsDTO
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /settings/notifications [get]
func (h *Handler) getNotificationSettings(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToNotificationSettingsDTO(h.incidentService.NotificationSettings(c.Request.Context())))
}

// @Summary Update notification settings
// @Description Shallow merge of the given fields into the notification settings. Requires API key.
// @Tags Settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param settings body UpdateNotificationSettingsRequest true "Notification settings patch"
// @Success 200 {object} NotificationSettingsDTO
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /settings/notifications [patch]
func (h *Handler) updateNotificationSettings(c *gin.Context) {
	var input UpdateNotificationSettingsRequest
	log := h.logger.WithField("method", "updateNotificationSettings")

	if !h.bind(c, log, &input) {
		return
	}

	settings := h.incidentService.UpdateNotificationSettings(c.Request.Context(), DTOToNotificationSettingsPatch(input))
	c.JSON(http.StatusOK, ModelToNotificationSettingsDTO(settings))
}

// @Summary Get shift roster
// @Description Get the A/B/C shift roster for the current month. Requires API key.
// @Tags Shifts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ShiftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /shifts [get]
func (h *Handler) getShifts(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToShiftResponses(h.incidentService.Shifts(c.Request.Context())))
}

// @Summary Get statistics
// @Description Local counts by status and type, plus the source's daily and yearly counts when it is reachable. Requires API key.
// @Tags Statistics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatisticsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /statistics [get]
func (h *Handler) getStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToStatisticsResponse(h.incidentService.Statistics(c.Request.Context())))
}

// @Summary Change app state
// @Description Report a foreground/background transition. Returning to foreground triggers an immediate fetch. Requires API key.
// @Tags App
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param state body AppStateRequest true "App state"
// @Success 200 {object} AppStateResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /app/state [post]
func (h *Handler) setAppState(c *gin.Context) {
	var input AppStateRequest
	log := h.logger.WithField("method", "setAppState")

	if !h.bind(c, log, &input) {
		return
	}

	triggered := h.incidentService.SetAppState(c.Request.Context(), input.State == appStateActive)
	c.JSON(http.StatusOK, AppStateResponse{State: input.State, FetchTriggered: triggered})
}

// @Summary Get application health status
// @Description Get health status of the application and the remote source
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToHealthResponse(h.incidentService.Health(c.Request.Context())))
}
