package models

import (
	"errors"
	"fmt"
	"strings"
)

// Values for RecommendationResponse.GeneratedBy.
const (
	GeneratedByLLM      = "llm"
	GeneratedByFallback = "fallback"
)

// Directions lists the accepted yard-facing compass points.
var Directions = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Levels lists the accepted water and maintenance values.
var Levels = []string{"Low", "Medium", "High"}

type RecommendationRequest struct {
	Location    string `json:"location"`
	Direction   string `json:"direction"`
	Water       string `json:"water"`
	Maintenance string `json:"maintenance"`
	GardenType  string `json:"garden_type"`
}

// Normalize trims whitespace and fixes casing so validation and the
// prompt always see canonical values.
func (r *RecommendationRequest) Normalize() {
	r.Location = strings.TrimSpace(r.Location)
	r.Direction = strings.ToUpper(strings.TrimSpace(r.Direction))
	r.Water = titleLevel(r.Water)
	r.Maintenance = titleLevel(r.Maintenance)
	r.GardenType = strings.TrimSpace(r.GardenType)
}

// Validate checks every request field and returns the first problem found.
func (r *RecommendationRequest) Validate() error {
	if r.Location == "" {
		return errors.New("location is required")
	}
	if len(r.Location) < 3 || len(r.Location) > 100 {
		return errors.New("location must be between 3 and 100 characters")
	}
	if !strings.Contains(r.Location, ",") {
		return errors.New(`location must include a city and state, e.g. "Denver, Colorado"`)
	}
	if r.Direction == "" {
		return errors.New("direction is required")
	}
	if !contains(Directions, r.Direction) {
		return fmt.Errorf("direction must be one of %s", strings.Join(Directions, ", "))
	}
	if r.Water == "" {
		return errors.New("water is required")
	}
	if !contains(Levels, r.Water) {
		return errors.New("water must be Low, Medium, or High")
	}
	if r.Maintenance == "" {
		return errors.New("maintenance is required")
	}
	if !contains(Levels, r.Maintenance) {
		return errors.New("maintenance must be Low, Medium, or High")
	}
	if r.GardenType == "" {
		return errors.New("garden_type is required")
	}
	if len(r.GardenType) > 50 {
		return errors.New("garden_type must be at most 50 characters")
	}
	return nil
}

type Plant struct {
	Name             string `json:"name"`
	Scientific       string `json:"scientific"`
	Sun              string `json:"sun"`
	Water            string `json:"water"`
	Maintenance      string `json:"maintenance"`
	PlantNow         bool   `json:"plant_now"`
	CareInstructions string `json:"care_instructions"`
	Notes            string `json:"notes"`
}

type RecommendationResponse struct {
	Location    string  `json:"location"`
	Season      string  `json:"season"`
	GeneratedBy string  `json:"generated_by"`
	Plants      []Plant `json:"plants"`
}

// ErrorDetail is the body of every non-200 response.
type ErrorDetail struct {
	Error          string `json:"error"`
	Message        string `json:"message"`
	RetrySuggested bool   `json:"retry_suggested"`
}

type ErrorResponse struct {
	Detail ErrorDetail `json:"detail"`
}

// NewErrorResponse wraps an error code and message in the detail envelope.
func NewErrorResponse(code, message string, retry bool) ErrorResponse {
	return ErrorResponse{Detail: ErrorDetail{
		Error:          code,
		Message:        message,
		RetrySuggested: retry,
	}}
}

func titleLevel(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
