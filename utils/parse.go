package utils

import (
	"encoding/json"
	"strings"

	"github.com/VindiceCode/plantprince/models"
)

// Stock values for plant fields the agent left out.
const (
	defaultScientific = "Unknown species"
	defaultLevel      = "Medium"
	defaultCare       = "No care instructions available"
	defaultNotes      = "No additional notes available"
)

// maxPlants caps how many plants one response may carry.
const maxPlants = 10

// rawPlant tolerates the field aliases agents use for plant attributes.
type rawPlant struct {
	Name             string `json:"name"`
	Scientific       string `json:"scientific"`
	ScientificName   string `json:"scientific_name"`
	Sun              string `json:"sun"`
	SunRequirements  string `json:"sun_requirements"`
	Water            string `json:"water"`
	WaterNeeds       string `json:"water_needs"`
	Maintenance      string `json:"maintenance"`
	MaintenanceLevel string `json:"maintenance_level"`
	PlantNow         *bool  `json:"plant_now"`
	CareInstructions string `json:"care_instructions"`
	Notes            string `json:"notes"`
	Description      string `json:"description"`
}

type rawRecommendation struct {
	Location string            `json:"location"`
	Season   string            `json:"season"`
	Plants   []json.RawMessage `json:"plants"`
}

// ParseRecommendation turns raw agent output into a recommendation
// response. location and season fill in when the agent omits them.
// Failures are *AgentError with Kind AgentMalformedResponse.
func ParseRecommendation(content, location, season string) (*models.RecommendationResponse, error) {
	jsonText := ExtractJSON(content)
	if jsonText == "" {
		return nil, agentErr(AgentMalformedResponse, "no JSON object found in agent reply", nil)
	}

	var raw rawRecommendation
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, agentErr(AgentMalformedResponse, "agent reply JSON does not decode", err)
	}
	if len(raw.Plants) == 0 {
		return nil, agentErr(AgentMalformedResponse, "agent reply has no plants", nil)
	}

	// Plants are decoded one by one so a single bad entry cannot sink
	// the rest of the reply.
	plants := make([]models.Plant, 0, len(raw.Plants))
	for _, item := range raw.Plants {
		var rp rawPlant
		if err := json.Unmarshal(item, &rp); err != nil {
			continue
		}
		p, ok := coercePlant(rp)
		if !ok {
			continue
		}
		plants = append(plants, p)
		if len(plants) == maxPlants {
			break
		}
	}
	if len(plants) == 0 {
		return nil, agentErr(AgentMalformedResponse, "agent reply has no usable plants", nil)
	}

	resp := &models.RecommendationResponse{
		Location: strings.TrimSpace(raw.Location),
		Season:   strings.TrimSpace(raw.Season),
		Plants:   plants,
	}
	if resp.Location == "" {
		resp.Location = location
	}
	if resp.Season == "" {
		resp.Season = season
	}
	return resp, nil
}

// coercePlant fills missing optional fields and rejects plants without
// a usable name.
func coercePlant(rp rawPlant) (models.Plant, bool) {
	name := strings.TrimSpace(rp.Name)
	if name == "" {
		return models.Plant{}, false
	}
	p := models.Plant{
		Name:             name,
		Scientific:       firstNonEmpty(rp.Scientific, rp.ScientificName, defaultScientific),
		Sun:              firstNonEmpty(rp.Sun, rp.SunRequirements, DefaultSunExposure),
		Water:            firstNonEmpty(rp.Water, rp.WaterNeeds, defaultLevel),
		Maintenance:      firstNonEmpty(rp.Maintenance, rp.MaintenanceLevel, defaultLevel),
		CareInstructions: firstNonEmpty(rp.CareInstructions, rp.Description, defaultCare),
		Notes:            firstNonEmpty(rp.Notes, rp.Description, defaultNotes),
	}
	if rp.PlantNow != nil {
		p.PlantNow = *rp.PlantNow
	}
	return p, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// ExtractJSON pulls a JSON object out of agent output that may wrap it
// in markdown fences or prose. Returns "" when nothing decodable is found.
func ExtractJSON(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	if strings.HasPrefix(content, "{") && json.Valid([]byte(content)) {
		return content
	}

	for _, fence := range []string{"```json", "```"} {
		start := strings.Index(content, fence)
		if start == -1 {
			continue
		}
		rest := content[start+len(fence):]
		end := strings.Index(rest, "```")
		if end == -1 {
			continue
		}
		candidate := strings.TrimSpace(rest[:end])
		if json.Valid([]byte(candidate)) {
			return candidate
		}
	}

	// Last resort: scan from the first brace to its matching close.
	start := strings.Index(content, "{")
	if start == -1 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		ch := content[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			escaped = inString
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					candidate := content[start : i+1]
					if json.Valid([]byte(candidate)) {
						return candidate
					}
					return ""
				}
			}
		}
	}
	return ""
}
