package models

import "time"

// RequestLog is one audit entry per recommendation request.
type RequestLog struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	RequestID        string     `json:"request_id" gorm:"index"`
	Timestamp        time.Time  `json:"timestamp" gorm:"index"`
	Location         string     `json:"location"`
	Direction        string     `json:"direction"`
	Water            string     `json:"water"`
	Maintenance      string     `json:"maintenance"`
	GardenType       string     `json:"garden_type"`
	Season           string     `json:"season"`
	GeneratedBy      string     `json:"generated_by"`
	PlantCount       int        `json:"plant_count"`
	Success          bool       `json:"success"`
	ErrorMessage     string     `json:"error_message"`
	ProcessingTimeMs int64      `json:"processing_time_ms"`
	ResponseJSON     string     `json:"response_json" gorm:"type:text"`
	SpacesBackupKey  string     `json:"spaces_backup_key"`
	SpacesBackupAt   *time.Time `json:"spaces_backup_at"`
}

// ActivityEvent is broadcast to WebSocket clients after each request.
type ActivityEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location"`
	GardenType  string    `json:"garden_type"`
	GeneratedBy string    `json:"generated_by"`
	PlantCount  int       `json:"plant_count"`
	DurationMs  int64     `json:"duration_ms"`
}
