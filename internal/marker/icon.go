// Package marker maps a location's type to the icon Leaflet draws for it.
// The values are presentation constants matching the images under web/static.
package marker

// Kinds with a dedicated icon. Any other value gets the default pin.
const (
	KindAdventure = "adventure"
	KindLeggiero  = "leggiero"
)

// Icon mirrors the options object of Leaflet's L.icon, so it can be passed to
// the map script as-is. Sizes and offsets are in pixels.
type Icon struct {
	IconURL     string `json:"iconUrl"`
	IconSize    [2]int `json:"iconSize"`
	IconAnchor  [2]int `json:"iconAnchor"`
	PopupAnchor [2]int `json:"popupAnchor"`
}

var (
	pinIcon = Icon{
		IconURL:     "/static/location-pin.svg",
		IconSize:    [2]int{38, 95},
		IconAnchor:  [2]int{19, 70},
		PopupAnchor: [2]int{-3, -76},
	}
	leggieroIcon = Icon{
		IconURL:     "/static/leggiero-pin.svg",
		IconSize:    [2]int{60, 60},
		IconAnchor:  [2]int{31, 72},
		PopupAnchor: [2]int{-3, -76},
	}
	adventureIcon = Icon{
		IconURL:     "/static/mountain-pin.svg",
		IconSize:    [2]int{70, 60},
		IconAnchor:  [2]int{37, 70},
		PopupAnchor: [2]int{-3, -76},
	}
)

// IconFor returns the icon for a location type. Unknown and empty types get
// the default pin.
func IconFor(kind string) Icon {
	switch kind {
	case KindAdventure:
		return adventureIcon
	case KindLeggiero:
		return leggieroIcon
	default:
		return pinIcon
	}
}
