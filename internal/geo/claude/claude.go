// Package claude resolves places by asking an Anthropic model, for setups
// without a geocoding service.
package claude

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/vbonduro/taptime/internal/catalog"
	"github.com/vbonduro/taptime/internal/domain"
	"github.com/vbonduro/taptime/internal/geo"
)

const systemPrompt = `You are a geocoder. Answer with a single JSON object and nothing else.
If the place exists, answer:
{"found": true, "name": "<city or locality>", "country": "<English country name>", "country_code": "<ISO 3166-1 alpha-2>", "zone": "<IANA time zone identifier>", "latitude": <number>, "longitude": <number>}
If the coordinate is in open water or the place does not exist, answer:
{"found": false}`

// answer mirrors the JSON object requested in systemPrompt.
type answer struct {
	Found       bool    `json:"found"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Zone        string  `json:"zone"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type Resolver struct {
	client *anthropic.Client
	model  string
}

func NewResolver(apiKey, model string, opts ...anthropic.ClientOption) *Resolver {
	return &Resolver{
		client: anthropic.NewClient(apiKey, opts...),
		model:  model,
	}
}

func (r *Resolver) ReverseGeocode(ctx context.Context, c domain.Coordinate) (*geo.Place, error) {
	if err := geo.ValidateCoordinate(c); err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf("Which place is at latitude %.5f, longitude %.5f?", c.Latitude, c.Longitude)
	p, err := r.ask(ctx, prompt)
	if err != nil {
		return nil, err
	}
	p.Coordinate = c
	return p, nil
}

func (r *Resolver) ForwardGeocode(ctx context.Context, query string) (*geo.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, geo.ErrNoResult
	}
	return r.ask(ctx, fmt.Sprintf("Where is %q?", query))
}

func (r *Resolver) ask(ctx context.Context, prompt string) (*geo.Place, error) {
	resp, err := r.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(r.model),
		System:    systemPrompt,
		MaxTokens: 256,
		Messages:  []anthropic.Message{anthropic.NewUserTextMessage(prompt)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call claude: %w", err)
	}
	return parseAnswer(resp.GetFirstContentText())
}

func parseAnswer(text string) (*geo.Place, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object in claude response: %q", text)
	}

	var a answer
	if err := json.Unmarshal([]byte(text[start:end+1]), &a); err != nil {
		return nil, fmt.Errorf("failed to decode claude response: %w", err)
	}
	if !a.Found {
		return nil, geo.ErrNoResult
	}
	if a.Zone == "" {
		return nil, errors.New("claude response has no time zone")
	}
	if _, err := time.LoadLocation(a.Zone); err != nil {
		return nil, fmt.Errorf("claude returned unknown time zone %q: %w", a.Zone, err)
	}

	code := strings.ToUpper(a.CountryCode)
	country := catalog.CountryName(code)
	if country == "" {
		country = a.Country
	}
	return &geo.Place{
		Name:        a.Name,
		Country:     country,
		CountryCode: code,
		ZoneID:      a.Zone,
		Coordinate:  domain.Coordinate{Latitude: a.Latitude, Longitude: a.Longitude},
	}, nil
}
