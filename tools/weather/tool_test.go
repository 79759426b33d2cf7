package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func startWeatherServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/geocode", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") == "Nowhere" {
			w.Write([]byte(`{"results":[]}`))
			return
		}
		w.Write([]byte(`{"results":[{"name":"New York","latitude":40.71,"longitude":-74.01,"country":"United States"}]}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_weather":{"temperature":21.5,"windspeed":12.3,"weathercode":2}}`))
	})
	return httptest.NewServer(mux)
}

func Test(t *testing.T) {
	srv := startWeatherServer(t)
	defer srv.Close()
	ctx := context.Background()
	tool := New(
		WithGeocodeURL(srv.URL+"/geocode"),
		WithForecastURL(srv.URL+"/forecast"),
	)
	ret, err := tool.Run(ctx, NewInput("New York"))
	if err != nil {
		t.Fatal(err)
	}
	if ret.Location != "New York" {
		t.Errorf("unexpected location: %s", ret.Location)
	}
	if ret.TemperatureC != 21.5 {
		t.Errorf("unexpected temperature: %.1f", ret.TemperatureC)
	}
	if ret.Condition != "partly cloudy" {
		t.Errorf("unexpected condition: %s", ret.Condition)
	}
}

func TestUnknownLocation(t *testing.T) {
	srv := startWeatherServer(t)
	defer srv.Close()
	ctx := context.Background()
	tool := New(
		WithGeocodeURL(srv.URL+"/geocode"),
		WithForecastURL(srv.URL+"/forecast"),
	)
	if _, err := tool.Run(ctx, NewInput("Nowhere")); err == nil {
		t.Error("expecting error for unknown location")
	}
}
