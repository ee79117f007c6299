package utils

import (
	"fmt"

	"github.com/VindiceCode/plantprince/models"
)

const promptTemplate = `You are a professional gardening expert. Recommend 4-6 plants for this garden:

Location: %s (USDA hardiness zone %s)
Yard Direction: %s (Sun Exposure: %s)
Water Availability: %s
Maintenance Level: %s
Garden Type: %s
Current Season: %s

Respond with ONLY a valid JSON object in exactly this format:
{
  "location": "city, state",
  "season": "current season",
  "plants": [
    {
      "name": "Common Plant Name",
      "scientific": "Scientific name",
      "sun": "Full Sun|Partial Sun|Partial Shade|Shade",
      "water": "Low|Medium|High",
      "maintenance": "Low|Medium|High",
      "plant_now": true,
      "care_instructions": "Brief care tips (50-100 words)",
      "notes": "Why this plant suits the preferences (50-100 words)"
    }
  ]
}

Requirements:
- 4-6 plants suited to the location, hardiness zone, and sun exposure
- Match the water availability and maintenance preferences
- Set plant_now based on whether planting is advisable in the current season
- Respond with ONLY the JSON object, no additional text`

// BuildPrompt renders the agent prompt for a recommendation request.
// The same request and derived values always produce the same prompt.
func BuildPrompt(req models.RecommendationRequest, zone, season, sun string) string {
	return fmt.Sprintf(promptTemplate,
		req.Location, zone,
		req.Direction, sun,
		req.Water,
		req.Maintenance,
		req.GardenType,
		season,
	)
}
