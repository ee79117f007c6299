package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/VindiceCode/plantprince/config"
	"github.com/VindiceCode/plantprince/models"
	"github.com/VindiceCode/plantprince/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	agent  *utils.AgentClient
	spaces *utils.SpacesClient
	logger = zap.NewNop()
)

// Init wires the controllers to their runtime collaborators. Call it
// once before registering routes.
func Init(cfg *config.Config, log *zap.Logger) {
	logger = log
	agent = utils.NewAgentClient(utils.AgentConfig{
		BaseURL:   cfg.AgentBaseURL,
		APIKey:    cfg.AgentAPIKey,
		Model:     cfg.AgentModel,
		Timeout:   cfg.AgentTimeout,
		MaxTokens: cfg.AgentMaxTokens,
	})

	sc, err := utils.NewSpacesClient(utils.SpacesConfig{
		Key:      cfg.SpacesKey,
		Secret:   cfg.SpacesSecret,
		Endpoint: cfg.SpacesEndpoint,
		Region:   cfg.SpacesRegion,
		Bucket:   cfg.SpacesBucket,
	})
	if err != nil {
		log.Warn("spaces backup disabled", zap.Error(err))
		sc = nil
	}
	spaces = sc
}

// GetRecommendations handles POST /api/recommendations. Once the
// request validates, the client always gets HTTP 200 with at least one
// plant: any agent failure is logged and answered from the fallback
// bundles.
func GetRecommendations(c *gin.Context) {
	start := time.Now()

	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			"invalid_request", "request body must be valid JSON: "+err.Error(), false))
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			"validation_failed", err.Error(), false))
		return
	}

	season := utils.CurrentSeason(time.Now())
	sun := utils.SunExposure(req.Direction)
	zone := utils.HardinessZone(req.Location)
	prompt := utils.BuildPrompt(req, zone, season, sun)

	resp, err := agent.Recommend(c.Request.Context(), prompt, req.Location, season)
	if err != nil {
		var aerr *utils.AgentError
		if errors.As(err, &aerr) {
			logger.Warn("agent call failed, serving fallback",
				zap.String("kind", string(aerr.Kind)),
				zap.String("request_id", c.GetString("request_id")),
				zap.Error(err),
			)
		} else {
			logger.Warn("agent call failed, serving fallback", zap.Error(err))
		}
		resp = utils.FallbackRecommendations(req, season)
	}

	elapsed := time.Since(start)
	config.RecordRequest(resp.GeneratedBy, elapsed.Milliseconds())

	entry := newRequestLog(c.GetString("request_id"), req, resp, err, elapsed)
	persistLog(entry)

	BroadcastActivity(models.ActivityEvent{
		Timestamp:   time.Now().UTC(),
		Location:    req.Location,
		GardenType:  req.GardenType,
		GeneratedBy: resp.GeneratedBy,
		PlantCount:  len(resp.Plants),
		DurationMs:  elapsed.Milliseconds(),
	})

	c.JSON(http.StatusOK, resp)
}

// RecommendationsHealth reports whether the agent integration is
// usable. It never calls the agent.
func RecommendationsHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":          "recommendations",
		"status":           "ok",
		"agent_configured": agent.Configured(),
		"backup_enabled":   spaces.Enabled(),
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
	})
}
