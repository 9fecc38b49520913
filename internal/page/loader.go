// Package page loads the data behind the map page and shapes it for the
// browser: the raw location rows plus a GeoJSON view the map script draws.
package page

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/leggiero/spotmap/internal/domain"
	"github.com/leggiero/spotmap/internal/marker"
)

// Lister is the read operation the loader needs.
type Lister interface {
	List(ctx context.Context) ([]domain.Location, error)
}

// Loader fetches everything the map page renders.
type Loader struct {
	locations Lister
}

// NewLoader constructs a Loader backed by the given lister.
func NewLoader(locations Lister) *Loader {
	return &Loader{locations: locations}
}

// Data is the page's view model.
type Data struct {
	Locations []domain.Location `json:"locations"`
}

// Load returns every stored location. No filtering or paging is applied.
func (l *Loader) Load(ctx context.Context) (Data, error) {
	locations, err := l.locations.List(ctx)
	if err != nil {
		return Data{}, fmt.Errorf("page.Loader.Load: %w", err)
	}
	if locations == nil {
		locations = []domain.Location{}
	}
	return Data{Locations: locations}, nil
}

// FeatureCollection renders the locations as GeoJSON points. Each feature
// carries the location's fields and the Leaflet icon for its type under
// the "icon" property.
func (d Data) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, loc := range d.Locations {
		// GeoJSON positions are [longitude, latitude].
		f := geojson.NewFeature(orb.Point{loc.Lng, loc.Lat})
		f.ID = loc.ID
		f.Properties["id"] = loc.ID
		f.Properties["name"] = loc.Name
		f.Properties["type"] = loc.Type
		f.Properties["description"] = loc.Description
		f.Properties["vehicle_accessibility"] = loc.VehicleAccessibility
		f.Properties["vehicle_accessibility_note"] = loc.VehicleAccessibilityNote
		f.Properties["water_availability"] = loc.WaterAvailability
		f.Properties["water_availability_note"] = loc.WaterAvailabilityNote
		f.Properties["icon"] = marker.IconFor(loc.Kind())
		fc.Append(f)
	}
	return fc
}
