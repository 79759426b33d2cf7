package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aviary-ai/aviary/schema"
	"github.com/aviary-ai/aviary/tools"
)

// Input Tool for fetching current weather conditions for a location.
// Use this tool whenever a request needs live weather information.
type Input struct {
	schema.Base
	// Location City or place name to fetch the weather for.
	Location string `json:"location" jsonschema:"title=location,description=City or place name to fetch the weather for." validate:"required"`
}

func NewInput(location string) *Input {
	return &Input{
		Location: location,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Output Schema for the output of the WeatherTool
type Output struct {
	schema.Base
	// Location the resolved place name
	Location string `json:"location" jsonschema:"title=location,description=The resolved place name."`
	// TemperatureC current temperature in degrees Celsius
	TemperatureC float64 `json:"temperature_c" jsonschema:"title=temperature_c,description=Current temperature in degrees Celsius."`
	// WindSpeedKmh current wind speed in km/h
	WindSpeedKmh float64 `json:"wind_speed_kmh" jsonschema:"title=wind_speed_kmh,description=Current wind speed in km/h."`
	// Condition human readable weather condition
	Condition string `json:"condition" jsonschema:"title=condition,description=Human readable weather condition."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
	} `json:"results"`
}

type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// WMO weather interpretation codes, grouped
var conditions = map[int]string{
	0:  "clear sky",
	1:  "mainly clear",
	2:  "partly cloudy",
	3:  "overcast",
	45: "fog",
	48: "depositing rime fog",
	51: "light drizzle",
	53: "moderate drizzle",
	55: "dense drizzle",
	61: "slight rain",
	63: "moderate rain",
	65: "heavy rain",
	71: "slight snow",
	73: "moderate snow",
	75: "heavy snow",
	80: "rain showers",
	81: "moderate rain showers",
	82: "violent rain showers",
	85: "snow showers",
	95: "thunderstorm",
	96: "thunderstorm with slight hail",
	99: "thunderstorm with heavy hail",
}

type Config struct {
	tools.Config
	geocodeURL  string
	forecastURL string
	httpClient  *http.Client
}

// Tool fetches current conditions from the open-meteo API. The location is
// geocoded first, then the forecast endpoint is queried for its coordinates.
type Tool struct {
	Config
}

var _ tools.Tool[Input, Output] = (*Tool)(nil)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("WeatherTool")
	}
	if ret.geocodeURL == "" {
		ret.geocodeURL = "https://geocoding-api.open-meteo.com/v1/search"
	}
	if ret.forecastURL == "" {
		ret.forecastURL = "https://api.open-meteo.com/v1/forecast"
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

// Run Runs the WeatherTool synchronously with the given parameters
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	if input.Location == "" {
		return nil, fmt.Errorf("missing location")
	}
	name, lat, lon, err := t.geocode(ctx, input.Location)
	if err != nil {
		return nil, err
	}
	forecast, err := t.fetchForecast(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	condition, ok := conditions[forecast.CurrentWeather.WeatherCode]
	if !ok {
		condition = "unknown"
	}
	return &Output{
		Location:     name,
		TemperatureC: forecast.CurrentWeather.Temperature,
		WindSpeedKmh: forecast.CurrentWeather.WindSpeed,
		Condition:    condition,
	}, nil
}

func (t *Tool) RunAnonymous(ctx context.Context, input any) (any, error) {
	in, ok := input.(*Input)
	if !ok {
		return nil, fmt.Errorf("invalid input schema")
	}
	return t.Run(ctx, in)
}

// geocode resolves a place name to coordinates
func (t *Tool) geocode(ctx context.Context, location string) (string, float64, float64, error) {
	values := url.Values{}
	values.Set("name", location)
	values.Set("count", "1")
	reqURL := fmt.Sprintf("%s?%s", t.geocodeURL, values.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", 0, 0, err
	}
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return "", 0, 0, fmt.Errorf("error querying geocoding service: %v", err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return "", 0, 0, fmt.Errorf("non-200 response from geocoding service: %d", httpResp.StatusCode)
	}
	var geocoded geocodeResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&geocoded); err != nil {
		return "", 0, 0, err
	}
	if len(geocoded.Results) == 0 {
		return "", 0, 0, fmt.Errorf("unknown location %q", location)
	}
	hit := geocoded.Results[0]
	return hit.Name, hit.Latitude, hit.Longitude, nil
}

// fetchForecast queries the forecast endpoint for current conditions
func (t *Tool) fetchForecast(ctx context.Context, lat, lon float64) (*forecastResponse, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%.4f", lat))
	values.Set("longitude", fmt.Sprintf("%.4f", lon))
	values.Set("current_weather", "true")
	reqURL := fmt.Sprintf("%s?%s", t.forecastURL, values.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error querying forecast service: %v", err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response from forecast service: %d", httpResp.StatusCode)
	}
	forecast := new(forecastResponse)
	if err := json.NewDecoder(httpResp.Body).Decode(forecast); err != nil {
		return nil, err
	}
	return forecast, nil
}
