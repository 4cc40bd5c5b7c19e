package web

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/camtraplabs/camtrapdp/internal/camtrap"
	"github.com/camtraplabs/camtrapdp/internal/schema"
	"github.com/camtraplabs/camtrapdp/internal/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// fieldInfo is the JSON shape of one schema field.
type fieldInfo struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required,omitempty"`
	Enum     []string `json:"enum,omitempty"`
}

// resourceInfo is the JSON shape of one resource listing.
type resourceInfo struct {
	Name   string      `json:"name"`
	Fields []fieldInfo `json:"fields"`
}

// handleListResources returns the three resources with their declared
// field order, types and vocabularies.
func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	out := make([]resourceInfo, 0, 3)
	for _, res := range camtrap.Resources() {
		info := resourceInfo{Name: res.Name}
		for _, f := range res.Schema.Fields {
			info.Fields = append(info.Fields, fieldInfo{
				Name:     f.Name,
				Type:     f.Type.String(),
				Required: f.Required,
				Enum:     f.Enum,
			})
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, out)
}

// handleTemplate returns a header-only CSV template in declared column
// order.
func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	res, ok := s.resource(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, res.Name))

	cw := csv.NewWriter(w)
	cw.Write(res.Schema.Names())
	cw.Flush()
}

// handleValidate runs report-style validation over the uploaded CSV and
// returns every finding with its line number.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	res, ok := s.resource(w, r)
	if !ok {
		return
	}

	rep, err := res.Validate(http.MaxBytesReader(w, r.Body, s.maxBodySize))
	if err != nil {
		respondConversionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// handleNormalize reads the uploaded CSV into typed records and responds
// with their canonical serialization.
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	res, ok := s.resource(w, r)
	if !ok {
		return
	}

	// Buffer the output so a parse failure can still produce an error
	// response instead of a half-written body.
	var buf bytes.Buffer
	if err := res.Normalize(http.MaxBytesReader(w, r.Body, s.maxBodySize), &buf); err != nil {
		respondConversionError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Write(buf.Bytes())
}

// handleImport parses the uploaded CSV into typed records and stores them
// atomically.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	res, ok := s.resource(w, r)
	if !ok {
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.maxBodySize)

	var imp store.Import
	var err error
	switch res.Name {
	case schema.Deployments.Resource:
		var ds camtrap.Deployments
		if ds, err = camtrap.ReadDeployments(body); err == nil {
			imp, err = s.store.ImportDeployments(r.Context(), ds)
		}
	case schema.Media.Resource:
		var ms camtrap.MediaSet
		if ms, err = camtrap.ReadMedia(body); err == nil {
			imp, err = s.store.ImportMedia(r.Context(), ms)
		}
	case schema.Observations.Resource:
		var obs camtrap.Observations
		if obs, err = camtrap.ReadObservations(body); err == nil {
			imp, err = s.store.ImportObservations(r.Context(), obs)
		}
	}
	if err != nil {
		respondConversionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, imp)
}

// handleCounts returns stored row counts per resource.
func (s *Server) handleCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := s.store.RowCounts(r.Context())
	if err != nil {
		respondConversionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// resource resolves the {resource} URL parameter, writing a 404 when it
// names no known record kind.
func (s *Server) resource(w http.ResponseWriter, r *http.Request) (camtrap.Resource, bool) {
	name := chi.URLParam(r, "resource")
	res, ok := camtrap.Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown resource %q", name))
		return camtrap.Resource{}, false
	}
	return res, true
}
