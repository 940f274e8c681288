package flavor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/ayoisaiah/focusexpress/internal/models"
)

// DefaultModel is the Gemini model queried for flavor data.
const DefaultModel = "gemini-2.5-flash"

const promptTmpl = `Act as a travel conductor and real-time data fetcher.

1. Search for the current local time in %q (format HH:MM).
2. Search for the current weather in %q (temperature in Celsius as a number,
   and a short condition description like "Cloudy", "Sunny", "Raining").
3. Create a fictional train station name and a 1-sentence description for a
   traveler arriving at %q. %s
4. Select the most appropriate environment for the visualizer from this list:
   [%s].

Return only a JSON object with the fields weather, station and localTime.`

// Gemini looks up flavor data with the Gemini API, using Google Search
// grounding and a response schema.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini source.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errNoAPIKey
	}

	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

func prompt(destination, task string) string {
	theme := fmt.Sprintf("Capture the vibe of %s.", destination)
	if task = strings.TrimSpace(task); task != "" {
		theme = fmt.Sprintf(
			"The traveler is focusing on: %q. Incorporate this theme subtly.",
			task,
		)
	}

	envs := make([]string, len(models.Environments))
	for i, e := range models.Environments {
		envs[i] = string(e)
	}

	return fmt.Sprintf(
		promptTmpl,
		destination,
		destination,
		destination,
		theme,
		strings.Join(envs, ", "),
	)
}

func responseSchema() *genai.Schema {
	envs := make([]string, len(models.Environments))
	for i, e := range models.Environments {
		envs[i] = string(e)
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"weather": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"temp":      {Type: genai.TypeNumber},
					"condition": {Type: genai.TypeString},
				},
				Required: []string{"temp", "condition"},
			},
			"station": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":        {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
					"environment": {
						Type: genai.TypeString,
						Enum: envs,
					},
				},
				Required: []string{"name", "description", "environment"},
			},
			"localTime": {Type: genai.TypeString},
		},
		Required: []string{"weather", "station", "localTime"},
	}
}

// response mirrors the JSON requested from the model.
type response struct {
	Weather   models.Weather `json:"weather"`
	Station   models.Station `json:"station"`
	LocalTime string         `json:"localTime"`
}

// decode extracts flavor data from the text and grounding metadata of the
// first candidate.
func decode(resp *genai.GenerateContentResponse) (Data, error) {
	if resp == nil || len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil {
		return Data{}, errEmptyResponse
	}

	cand := resp.Candidates[0]

	var text strings.Builder

	for _, p := range cand.Content.Parts {
		if p != nil {
			text.WriteString(p.Text)
		}
	}

	raw := strings.TrimSpace(text.String())
	if raw == "" {
		return Data{}, errEmptyResponse
	}

	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var r response

	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return Data{}, errDecodeResponse.Wrap(err)
	}

	d := Data{
		Weather:      r.Weather,
		Station:      r.Station,
		LocalTime:    r.LocalTime,
		Attributions: []models.Attribution{},
	}

	if cand.GroundingMetadata != nil {
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil {
				continue
			}

			d.Attributions = append(d.Attributions, models.Attribution{
				URI:   chunk.Web.URI,
				Title: chunk.Web.Title,
			})
		}
	}

	return d, nil
}

// Lookup queries the model for destination.
func (g *Gemini) Lookup(
	ctx context.Context,
	destination, task string,
) (Data, error) {
	resp, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt(destination, task)),
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema(),
		},
	)
	if err != nil {
		return Data{}, err
	}

	return decode(resp)
}
