package adapter

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/model"
	"googlemaps.github.io/maps"
)

// Places looks up nearby places and resolves the device position via the
// Google Maps Platform APIs
type Places struct {
	client *maps.Client
	radius uint
}

type PlacesOption func(*Places)

func WithSearchRadius(meters uint) PlacesOption {
	return func(p *Places) {
		p.radius = meters
	}
}

func NewPlaces(apiKey string, opts ...PlacesOption) (*Places, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create maps client")
	}

	p := &Places{
		client: client,
		radius: 1500,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Nearby returns at most one page of places of the given category around
// the coordinate
func (p *Places) Nearby(ctx context.Context, category string, coord model.Coordinate) ([]model.PlaceRef, error) {
	resp, err := p.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: coord.Lat, Lng: coord.Lng},
		Radius:   p.radius,
		Type:     maps.PlaceType(category),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search nearby places", goerr.V("category", category))
	}

	places := make([]model.PlaceRef, 0, len(resp.Results))
	for _, r := range resp.Results {
		places = append(places, model.PlaceRef{
			Name:     r.Name,
			Category: category,
			Rating:   r.Rating,
			Address:  r.Vicinity,
			MapsURL:  "https://www.google.com/maps/place/?q=place_id:" + r.PlaceID,
		})
	}

	return places, nil
}

// Locate resolves the current position from the calling network. The caller
// caches the result for the session; this is not called more than once.
func (p *Places) Locate(ctx context.Context) (*model.Coordinate, error) {
	resp, err := p.client.Geolocate(ctx, &maps.GeolocationRequest{
		ConsiderIP: true,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to geolocate")
	}

	return &model.Coordinate{
		Lat: resp.Location.Lat,
		Lng: resp.Location.Lng,
	}, nil
}
