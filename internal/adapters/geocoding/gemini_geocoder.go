package geocoding

import (
	"context"
	"disposal-locator-service/internal/domain"
	"disposal-locator-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultRegion      = "South Korea"
)

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGeocoder asks a Gemini model for the coordinates of an address and
// requires a {"lat": number, "lng": number} JSON answer.
type GeminiGeocoder struct {
	models contentGenerator
	model  string
	region string
}

type GeminiOptions struct {
	Model  string
	Region string
}

func NewGeminiGeocoder(ctx context.Context, apiKey string, opts GeminiOptions) (*GeminiGeocoder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("new gemini geocoder: create client: %w", err)
	}

	return newGeminiGeocoder(client.Models, opts), nil
}

func newGeminiGeocoder(models contentGenerator, opts GeminiOptions) *GeminiGeocoder {
	if opts.Model == "" {
		opts.Model = DefaultGeminiModel
	}
	if opts.Region == "" {
		opts.Region = DefaultRegion
	}
	return &GeminiGeocoder{models: models, model: opts.Model, region: opts.Region}
}

func (g *GeminiGeocoder) ResolveAddress(ctx context.Context, address string) (domain.Coordinates, bool) {
	coords, err := g.geocode(ctx, address)
	if err != nil {
		zap.L().Warn("gemini geocode failed",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.String("address", address),
			zap.Error(err),
		)
		return domain.Coordinates{}, false
	}
	return coords, true
}

func (g *GeminiGeocoder) geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "gemini.geocode")(&err)

	norm := Normalize(address)
	if norm == "" {
		return domain.Coordinates{}, errors.New("address must be non-empty")
	}

	prompt := fmt.Sprintf("Given the address %q in %s, provide its latitude and longitude.", norm, g.region)

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"lat": {Type: genai.TypeNumber, Description: "Latitude of the address"},
				"lng": {Type: genai.TypeNumber, Description: "Longitude of the address"},
			},
		},
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("generate content: %w", err)
	}
	if resp == nil {
		return domain.Coordinates{}, errors.New("generate content: empty response")
	}

	return parseCoordinates(resp.Text())
}

// parseCoordinates accepts only a JSON object whose lat and lng are numbers.
func parseCoordinates(text string) (domain.Coordinates, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Coordinates{}, errors.New("parse coordinates: empty text")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse coordinates: %w", err)
	}

	lat, err := number(raw, "lat")
	if err != nil {
		return domain.Coordinates{}, err
	}
	lng, err := number(raw, "lng")
	if err != nil {
		return domain.Coordinates{}, err
	}

	return domain.Coordinates{Lat: lat, Lng: lng}, nil
}

func number(raw map[string]json.RawMessage, key string) (float64, error) {
	v, ok := raw[key]
	if !ok || strings.TrimSpace(string(v)) == "null" {
		return 0, fmt.Errorf("parse coordinates: missing %q", key)
	}

	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		return 0, fmt.Errorf("parse coordinates: %q is not a number: %w", key, err)
	}
	return f, nil
}
