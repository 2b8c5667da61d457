package handlers

import "net/http"

// ExportHandler serves the full entity-graph export.
type ExportHandler struct {
	catalog Catalog
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(c Catalog) *ExportHandler {
	return &ExportHandler{catalog: c}
}

// ServeHTTP handles GET /api/export. Pass ?content=false to omit note
// body text from the export.
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	includeContent := r.URL.Query().Get("content") != "false"
	writeJSON(w, http.StatusOK, h.catalog.Export(includeContent))
}
