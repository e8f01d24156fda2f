package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/glofwatch/glof-alerts/internal/i18n"
	"github.com/glofwatch/glof-alerts/internal/models"
	"github.com/glofwatch/glof-alerts/internal/repository"
)

// AlertService is the alert-dispatch surface the web layer invokes.
type AlertService interface {
	SendAlert(ctx context.Context, lakeName string, level models.RiskLevel, extraInfo string, roles []models.Role) (*models.Alert, bool)
	SendAllClear(ctx context.Context, lakeName string, roles []models.Role) bool
	ReplayQueued(ctx context.Context) (delivered, requeued int)
	Contacts() []models.Contact
	QueuedCount() int
}

type WeatherClient interface {
	Current(ctx context.Context, lat, lon string) (json.RawMessage, error)
}

type Handler struct {
	alerts    AlertService
	repo      repository.LakeRepository
	weather   WeatherClient
	staticDir string
}

func NewHandler(alerts AlertService, repo repository.LakeRepository, weather WeatherClient, staticDir string) *Handler {
	return &Handler{
		alerts:    alerts,
		repo:      repo,
		weather:   weather,
		staticDir: staticDir,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.dashboard)
	r.GET("/health", h.health)
	r.GET("/api/translations/:lang", h.getTranslations)
	r.GET("/api/lakes", h.getLakes)
	r.GET("/api/weather", h.getWeather)
	r.GET("/api/contacts", h.getContacts)
	r.POST("/alert", h.sendAlert)
	r.POST("/all-clear", h.sendAllClear)
	r.POST("/api/alerts/replay", h.replayAlerts)
}

func (h *Handler) dashboard(c *gin.Context) {
	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err == nil {
		c.File(index)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": "glof-alerts"})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) getTranslations(c *gin.Context) {
	c.JSON(http.StatusOK, i18n.Translations(c.Param("lang")))
}

func (h *Handler) getLakes(c *gin.Context) {
	ctx := c.Request.Context()

	lakes, err := h.repo.ListLakes(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch lakes"})
		return
	}
	events, err := h.repo.ListEvents(ctx, repository.HimalayanRegions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch glof events"})
		return
	}

	lakesOut := make([]gin.H, 0, len(lakes))
	for _, l := range lakes {
		lakesOut = append(lakesOut, gin.H{
			"name":      l.Name,
			"state":     l.State,
			"latitude":  l.Latitude,
			"longitude": l.Longitude,
		})
	}
	eventsOut := make([]gin.H, 0, len(events))
	for _, e := range events {
		eventsOut = append(eventsOut, gin.H{
			"lake_name":          e.LakeName,
			"latitude":           e.Latitude,
			"longitude":          e.Longitude,
			"elevation":          e.ElevationM,
			"region":             e.Region,
			"outburst_count":     e.OutburstCount,
			"glof_period":        e.GLOFPeriod,
			"lake_type":          e.LakeType,
			"weather_conditions": e.WeatherConditions,
			"glof_occurred":      e.GLOFOccurred,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"lakes":       lakesOut,
		"glof_events": eventsOut,
	})
}

func (h *Handler) getWeather(c *gin.Context) {
	lat := c.Query("lat")
	lon := c.Query("lon")
	if lat == "" || lon == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing coordinates"})
		return
	}

	payload, err := h.weather.Current(c.Request.Context(), lat, lon)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}

func (h *Handler) getContacts(c *gin.Context) {
	contacts := h.alerts.Contacts()
	out := make([]gin.H, 0, len(contacts))
	for _, ct := range contacts {
		out = append(out, gin.H{
			"id":        ct.ID,
			"name":      ct.Name,
			"phone":     ct.Phone,
			"email":     ct.Email,
			"user_type": ct.Role,
			"region":    ct.Region,
			"lake_area": ct.LakeArea,
		})
	}
	c.JSON(http.StatusOK, gin.H{"contacts": out})
}

type alertRequest struct {
	LakeName  string  `json:"lake_name"`
	RiskScore float64 `json:"risk_score"`
}

func (h *Handler) sendAlert(c *gin.Context) {
	req := alertRequest{LakeName: "Unknown Lake"}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.LakeName == "" {
		req.LakeName = "Unknown Lake"
	}

	level := models.RiskLevelFromScore(req.RiskScore)
	extraInfo := formatScoreInfo(req.RiskScore)

	_, ok := h.alerts.SendAlert(c.Request.Context(), req.LakeName, level, extraInfo, nil)

	c.JSON(http.StatusOK, gin.H{"status": statusText(ok)})
}

type allClearRequest struct {
	LakeName string `json:"lake_name"`
}

func (h *Handler) sendAllClear(c *gin.Context) {
	var req allClearRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.LakeName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lake_name is required"})
		return
	}

	ok := h.alerts.SendAllClear(c.Request.Context(), req.LakeName, nil)
	c.JSON(http.StatusOK, gin.H{"status": statusText(ok)})
}

func (h *Handler) replayAlerts(c *gin.Context) {
	delivered, requeued := h.alerts.ReplayQueued(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"delivered": delivered,
		"requeued":  requeued,
		"queued":    h.alerts.QueuedCount(),
	})
}

func statusText(ok bool) string {
	if ok {
		return "success"
	}
	return "failed"
}

func formatScoreInfo(score float64) string {
	return fmt.Sprintf("Automated alert: Risk score %s%%", strconv.FormatFloat(score, 'f', -1, 64))
}
