package weather

import (
	"net/http"

	"github.com/aviary-ai/aviary/tools"
)

type Option func(c *Config)

func WithToolOptions(opts ...tools.Option) Option {
	return func(c *Config) {
		for _, opt := range opts {
			opt(&c.Config)
		}
	}
}

func WithGeocodeURL(uri string) Option {
	return func(c *Config) {
		c.geocodeURL = uri
	}
}

func WithForecastURL(uri string) Option {
	return func(c *Config) {
		c.forecastURL = uri
	}
}

func WithHttpClient(clt *http.Client) Option {
	return func(c *Config) {
		c.httpClient = clt
	}
}
