package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"notestash/internal/catalog"
	"notestash/internal/contextutil"
)

// NotesHandler serves note listings and single-note detail.
type NotesHandler struct {
	catalog Catalog
}

// NewNotesHandler creates a new NotesHandler.
func NewNotesHandler(c Catalog) *NotesHandler {
	return &NotesHandler{catalog: c}
}

// noteSummary is the listing shape: everything except body content.
type noteSummary struct {
	ID       int64    `json:"id"`
	Title    *string  `json:"title"`
	Account  string   `json:"account"`
	Folder   string   `json:"folder"`
	Pinned   bool     `json:"pinned"`
	Tags     []string `json:"tags"`
	Mentions []string `json:"mentions"`
	Links    []string `json:"links"`
	Modified *string  `json:"modified"`
}

// noteDetail adds body content and attachment metadata.
type noteDetail struct {
	noteSummary
	Content     *string            `json:"content"`
	Created     *string            `json:"created"`
	Protected   bool               `json:"protected"`
	Attachments []attachmentDetail `json:"attachments"`
}

type attachmentDetail struct {
	ID       int64   `json:"id"`
	Filename *string `json:"filename"`
	Size     *int64  `json:"size"`
	TypeUTI  *string `json:"type_uti"`
	Kind     string  `json:"kind"`
	MIME     string  `json:"mime,omitempty"`
}

// List handles GET /api/notes. Supports ?tag= and ?q= filters; q is a
// case-insensitive free-text search over title and content.
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	var notes []*catalog.Note
	switch {
	case r.URL.Query().Get("tag") != "":
		notes = h.catalog.NotesByTag(r.URL.Query().Get("tag"))
	case r.URL.Query().Get("q") != "":
		notes = h.catalog.SearchNotes(r.URL.Query().Get("q"), false)
	default:
		notes = h.catalog.Notes()
	}

	summaries := make([]noteSummary, 0, len(notes))
	for _, note := range notes {
		summaries = append(summaries, summarize(note))
	}
	writeJSON(w, http.StatusOK, summaries)
}

// Get handles GET /api/notes/{id}.
func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := contextutil.Logger(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	note, ok := h.catalog.NoteByID(id)
	if !ok {
		logger.Debug("note not found", "id", id)
		writeError(w, http.StatusNotFound, "note not found")
		return
	}

	detail := noteDetail{
		noteSummary: summarize(note),
		Content:     note.Content,
		Created:     formatTime(note.CreationDate),
		Protected:   note.IsPasswordProtected,
		Attachments: make([]attachmentDetail, 0, len(note.Attachments)),
	}
	for _, att := range note.Attachments {
		detail.Attachments = append(detail.Attachments, attachmentDetail{
			ID:       att.ID,
			Filename: att.Filename,
			Size:     att.FileSize,
			TypeUTI:  att.TypeUTI,
			Kind:     string(att.Kind()),
			MIME:     att.MIMEType(),
		})
	}
	writeJSON(w, http.StatusOK, detail)
}

func summarize(note *catalog.Note) noteSummary {
	return noteSummary{
		ID:       note.NoteID,
		Title:    note.Title,
		Account:  note.Account.Name,
		Folder:   note.Folder.Name,
		Pinned:   note.IsPinned,
		Tags:     emptyIfNil(note.Tags),
		Mentions: emptyIfNil(note.Mentions),
		Links:    emptyIfNil(note.Links),
		Modified: formatTime(note.ModificationDate),
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
