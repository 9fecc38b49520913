// Package domain contains the core data types for the spot map application.
// It is imported by every other internal package (repo, service, handler, page)
// and by the API client, so it carries no infrastructure dependencies.
package domain

// Location is a point of interest shown as a marker on the map.
// ID is assigned by the database on insert and never changes afterwards.
// Optional text fields are nil when the column is NULL; they serialize as
// JSON null so the API shape matches a raw table row.
type Location struct {
	ID                       int64   `json:"id" validate:"required"`
	Name                     string  `json:"name" validate:"required"`
	Lat                      float64 `json:"lat"`
	Lng                      float64 `json:"lng"`
	Type                     *string `json:"type"`
	Description              *string `json:"description"`
	VehicleAccessibility     *string `json:"vehicle_accessibility"`
	VehicleAccessibilityNote *string `json:"vehicle_accessibility_note"`
	WaterAvailability        *string `json:"water_availability"`
	WaterAvailabilityNote    *string `json:"water_availability_note"`
}

// Kind returns the marker category of the location, or "" when unset.
func (l Location) Kind() string {
	if l.Type == nil {
		return ""
	}
	return *l.Type
}

// LocationInput is the payload accepted when creating a location.
// The JSON keys are the short names used by the map's "add spot" form.
//
// Lat and Lng are pointers so that an absent coordinate can be told apart
// from a coordinate of 0 (the equator or the prime meridian).
type LocationInput struct {
	Name                     string   `json:"name" validate:"required"`
	Lat                      *float64 `json:"lat" validate:"required"`
	Lng                      *float64 `json:"lng" validate:"required"`
	Description              *string  `json:"desc,omitempty"`
	Type                     *string  `json:"type,omitempty"`
	WaterAvailability        *string  `json:"wa,omitempty"`
	WaterAvailabilityNote    *string  `json:"waNote,omitempty"`
	VehicleAccessibility     *string  `json:"va,omitempty"`
	VehicleAccessibilityNote *string  `json:"vaNote,omitempty"`
}
