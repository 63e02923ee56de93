package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"

	"github.com/floodrelief/relief-api/schema"
)

func geocodeServer(t *testing.T, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		assert.Equal(t, "th", r.URL.Query().Get("region"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestResolve(t *testing.T) {
	ts := geocodeServer(t, `{
		"status": "OK",
		"results": [{
			"formatted_address": "Hat Yai, Songkhla, Thailand",
			"geometry": {"location": {"lat": 7.0086, "lng": 100.4747}}
		}]
	}`)
	defer ts.Close()

	r, err := NewGeocodingLocationResolver("test-key", maps.WithBaseURL(ts.URL))
	assert.NoError(t, err)

	loc, err := r.Resolve(context.Background(), schema.Location{Address: "หาดใหญ่ สงขลา"})
	assert.NoError(t, err)
	assert.Equal(t, 7.0086, *loc.Lat)
	assert.Equal(t, 100.4747, *loc.Lng)
	assert.Equal(t, "หาดใหญ่ สงขลา", loc.Address)
}

func TestResolveNoResult(t *testing.T) {
	ts := geocodeServer(t, `{"status": "ZERO_RESULTS", "results": []}`)
	defer ts.Close()

	r, err := NewGeocodingLocationResolver("test-key", maps.WithBaseURL(ts.URL))
	assert.NoError(t, err)

	loc, err := r.Resolve(context.Background(), schema.Location{Address: "ไม่มีที่นี่"})
	assert.Equal(t, ErrNoGeoInfoFound, err)
	assert.Nil(t, loc.Lat)
}

func TestResolveKeepsExistingCoordinates(t *testing.T) {
	r, err := NewGeocodingLocationResolver("test-key", maps.WithBaseURL("http://127.0.0.1:1"))
	assert.NoError(t, err)

	lat, lng := 1.0, 2.0
	loc, err := r.Resolve(context.Background(), schema.Location{Address: "x", Lat: &lat, Lng: &lng})
	assert.NoError(t, err)
	assert.Equal(t, &lat, loc.Lat)

	_, err = r.Resolve(context.Background(), schema.Location{Address: "  "})
	assert.Equal(t, ErrEmptyAddress, err)
}
