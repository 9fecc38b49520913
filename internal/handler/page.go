package handler

import (
	"bytes"
	"net/http"

	"github.com/paulmach/orb/geojson"
)

// indexView is what templates/index.html renders.
type indexView struct {
	Title    string
	Count    int
	Features *geojson.FeatureCollection
}

// GetIndex handles GET / and renders the map with every stored location.
// The page is rendered into a buffer first so a template failure still
// produces a clean 500.
func (s *Server) GetIndex(w http.ResponseWriter, r *http.Request) {
	data, err := s.pages.Load(r.Context())
	if err != nil {
		s.writeInternal(w, r, err)
		return
	}

	view := indexView{
		Title:    "Spot map",
		Count:    len(data.Locations),
		Features: data.FeatureCollection(),
	}

	var buf bytes.Buffer
	if err := s.index.Execute(&buf, view); err != nil {
		s.writeInternal(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
