package controllers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/VindiceCode/plantprince/config"
	"github.com/VindiceCode/plantprince/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newRequestLog builds the audit entry for one completed request.
func newRequestLog(requestID string, req models.RecommendationRequest, resp *models.RecommendationResponse, agentErr error, elapsed time.Duration) *models.RequestLog {
	entry := &models.RequestLog{
		RequestID:        requestID,
		Timestamp:        time.Now().UTC(),
		Location:         req.Location,
		Direction:        req.Direction,
		Water:            req.Water,
		Maintenance:      req.Maintenance,
		GardenType:       req.GardenType,
		Season:           resp.Season,
		GeneratedBy:      resp.GeneratedBy,
		PlantCount:       len(resp.Plants),
		Success:          agentErr == nil,
		ProcessingTimeMs: elapsed.Milliseconds(),
	}
	if agentErr != nil {
		entry.ErrorMessage = agentErr.Error()
	}
	if body, err := json.Marshal(resp); err == nil {
		entry.ResponseJSON = string(body)
	}
	return entry
}

// persistLog backs the entry up to Spaces and stores it in the
// database. Both are best effort and never affect the API response.
func persistLog(entry *models.RequestLog) {
	if key, err := spaces.BackupRequestLog(entry); err != nil {
		logger.Warn("spaces backup failed", zap.Error(err))
	} else if key != "" {
		now := time.Now().UTC()
		entry.SpacesBackupKey = key
		entry.SpacesBackupAt = &now
	}

	if config.DB == nil {
		return
	}
	if err := config.DB.Create(entry).Error; err != nil {
		logger.Warn("failed to store request log", zap.Error(err))
	}
}

// GetRecentLogs returns the latest audit entries, newest first.
// Optional query params: limit (default 50, max 500) and location
// (substring filter).
func GetRecentLogs(c *gin.Context) {
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.NewErrorResponse(
			"audit_log_unavailable", "request logging requires DATABASE_URL", false))
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	query := config.DB.Order("timestamp desc").Limit(limit)
	if loc := c.Query("location"); loc != "" {
		query = query.Where("location ILIKE ?", "%"+loc+"%")
	}

	var entries []models.RequestLog
	if err := query.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			"audit_log_query_failed", "failed to fetch request logs", true))
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(entries), "logs": entries})
}

// GetLogStats aggregates the audit history. Without a database it
// falls back to the in-memory counters.
func GetLogStats(c *gin.Context) {
	if config.DB == nil {
		s := config.CurrentStats()
		var avg int64
		if s.Requests > 0 {
			avg = s.TotalTimeMs / s.Requests
		}
		c.JSON(http.StatusOK, gin.H{
			"source":             "memory",
			"total_requests":     s.Requests,
			"served_by_llm":      s.ServedByLLM,
			"served_by_fallback": s.ServedByFallback,
			"avg_processing_ms":  avg,
		})
		return
	}

	var total, llmCount, fallbackCount, succeeded, backedUp int64
	config.DB.Model(&models.RequestLog{}).Count(&total)
	config.DB.Model(&models.RequestLog{}).Where("generated_by = ?", models.GeneratedByLLM).Count(&llmCount)
	config.DB.Model(&models.RequestLog{}).Where("generated_by = ?", models.GeneratedByFallback).Count(&fallbackCount)
	config.DB.Model(&models.RequestLog{}).Where("success = ?", true).Count(&succeeded)
	config.DB.Model(&models.RequestLog{}).Where("spaces_backup_key <> ''").Count(&backedUp)

	var avg float64
	config.DB.Model(&models.RequestLog{}).Select("COALESCE(AVG(processing_time_ms), 0)").Scan(&avg)

	type locationCount struct {
		Location string `json:"location"`
		Count    int64  `json:"count"`
	}
	var topLocations []locationCount
	config.DB.Model(&models.RequestLog{}).
		Select("location, COUNT(*) as count").
		Group("location").
		Order("count desc").
		Limit(5).
		Scan(&topLocations)

	c.JSON(http.StatusOK, gin.H{
		"source":             "database",
		"total_requests":     total,
		"served_by_llm":      llmCount,
		"served_by_fallback": fallbackCount,
		"succeeded":          succeeded,
		"backed_up":          backedUp,
		"avg_processing_ms":  avg,
		"top_locations":      topLocations,
	})
}

// DownloadLogsCSV sends the audit log as a CSV file.
func DownloadLogsCSV(c *gin.Context) {
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.NewErrorResponse(
			"audit_log_unavailable", "request logging requires DATABASE_URL", false))
		return
	}

	var entries []models.RequestLog
	if err := config.DB.Order("timestamp desc").Limit(1000).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			"audit_log_query_failed", "failed to fetch request logs", true))
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=request_logs.csv")
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"timestamp", "request_id", "location", "direction", "water", "maintenance", "garden_type", "season", "generated_by", "plant_count", "success", "processing_time_ms"})
	for _, e := range entries {
		writer.Write([]string{
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.RequestID,
			e.Location,
			e.Direction,
			e.Water,
			e.Maintenance,
			e.GardenType,
			e.Season,
			e.GeneratedBy,
			strconv.Itoa(e.PlantCount),
			strconv.FormatBool(e.Success),
			strconv.FormatInt(e.ProcessingTimeMs, 10),
		})
	}
}

// ListLogBackups returns the object keys stored in Spaces.
func ListLogBackups(c *gin.Context) {
	if !spaces.Enabled() {
		c.JSON(http.StatusServiceUnavailable, models.NewErrorResponse(
			"backup_unavailable", "spaces backup is not configured", false))
		return
	}

	max := int64(100)
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 && n <= 1000 {
			max = n
		}
	}

	keys, err := spaces.ListBackups(max)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			"backup_list_failed", "failed to list log backups", true))
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(keys), "keys": keys})
}
