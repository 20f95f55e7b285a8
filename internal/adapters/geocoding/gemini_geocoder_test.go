package geocoding

import (
	"context"
	"disposal-locator-service/internal/domain"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	text string
	err  error

	model  string
	prompt string
	config *genai.GenerateContentConfig
	calls  int
}

func (f *fakeGenerator) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: f.text}}}},
		},
	}, nil
}

func TestGeminiGeocoderResolveAddress(t *testing.T) {
	gen := &fakeGenerator{text: `{"lat": 37.4979, "lng": 127.0276}`}
	g := newGeminiGeocoder(gen, GeminiOptions{})

	coords, ok := g.ResolveAddress(context.Background(), "서울특별시 강남구 테헤란로")
	require.True(t, ok)
	assert.Equal(t, domain.Coordinates{Lat: 37.4979, Lng: 127.0276}, coords)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, DefaultGeminiModel, gen.model)
	assert.Equal(t, `Given the address "서울특별시 강남구 테헤란로" in South Korea, provide its latitude and longitude.`, gen.prompt)
	require.NotNil(t, gen.config)
	assert.Equal(t, "application/json", gen.config.ResponseMIMEType)
	assert.Contains(t, gen.config.ResponseSchema.Properties, "lat")
	assert.Contains(t, gen.config.ResponseSchema.Properties, "lng")
}

func TestGeminiGeocoderFailuresCollapseToAbsent(t *testing.T) {
	cases := map[string]*fakeGenerator{
		"api error":      {err: errors.New("quota exceeded")},
		"not json":       {text: "somewhere in Seoul"},
		"missing lng":    {text: `{"lat": 37.5}`},
		"string lat":     {text: `{"lat": "37.5", "lng": 127.0}`},
		"null lat":       {text: `{"lat": null, "lng": 127.0}`},
		"empty response": {text: ""},
	}

	for name, gen := range cases {
		t.Run(name, func(t *testing.T) {
			g := newGeminiGeocoder(gen, GeminiOptions{Model: "m", Region: "Korea"})
			_, ok := g.ResolveAddress(context.Background(), "address")
			assert.False(t, ok)
			assert.Equal(t, 1, gen.calls)
		})
	}
}

func TestNewGeminiGeocoderRequiresKey(t *testing.T) {
	_, err := NewGeminiGeocoder(context.Background(), " ", GeminiOptions{})
	assert.Error(t, err)
}
