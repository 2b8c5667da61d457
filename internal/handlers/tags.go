package handlers

import (
	"net/http"
	"sort"
)

// TagsHandler serves store-wide tag aggregates.
type TagsHandler struct {
	catalog Catalog
}

// NewTagsHandler creates a new TagsHandler.
func NewTagsHandler(c Catalog) *TagsHandler {
	return &TagsHandler{catalog: c}
}

type tagCount struct {
	Tag   string `json:"tag"`
	Notes int    `json:"notes"`
}

// ServeHTTP handles GET /api/tags: per-tag note counts, sorted by tag.
func (h *TagsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	counts := h.catalog.TagCounts()

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	result := make([]tagCount, 0, len(tags))
	for _, tag := range tags {
		result = append(result, tagCount{Tag: tag, Notes: counts[tag]})
	}
	writeJSON(w, http.StatusOK, result)
}
