package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/floodrelief/relief-api/schema"
)

const (
	logPrefix      = "geo"
	defaultTimeout = 5 * time.Second
	defaultRegion  = "th"
)

var (
	ErrNoGeoInfoFound = fmt.Errorf("no geo information found")
	ErrEmptyAddress   = fmt.Errorf("empty address")
)

// LocationResolver attaches coordinates to a request location
type LocationResolver interface {
	Resolve(ctx context.Context, loc schema.Location) (schema.Location, error)
}

type GeocodingLocationResolver struct {
	client *maps.Client
	region string
}

// NewGeocodingLocationResolver returns a resolver backed by the Google Maps
// geocoding API. Extra client options are passed to the maps client.
func NewGeocodingLocationResolver(apiKey string, opts ...maps.ClientOption) (*GeocodingLocationResolver, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &GeocodingLocationResolver{
		client: client,
		region: defaultRegion,
	}, nil
}

// Resolve geocodes the address of loc. A location that already carries
// coordinates is returned as is.
func (g *GeocodingLocationResolver) Resolve(ctx context.Context, loc schema.Location) (schema.Location, error) {
	if loc.Lat != nil && loc.Lng != nil {
		return loc, nil
	}

	address := strings.TrimSpace(loc.Address)
	if address == "" {
		return loc, ErrEmptyAddress
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"address": address,
	}).Debug("geocode address")

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Region:   g.region,
		Language: "th",
	})
	if nil != err {
		return loc, err
	}

	if len(geos) == 0 {
		return loc, ErrNoGeoInfoFound
	}

	lat := geos[0].Geometry.Location.Lat
	lng := geos[0].Geometry.Location.Lng
	loc.Lat = &lat
	loc.Lng = &lng

	return loc, nil
}
