package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"notestash/internal/contextutil"
)

// NoteViewHandler serves a note's content as a rendered HTML page. Note
// text is treated as markdown: plain text passes through unchanged and
// any markdown-ish structure picks up formatting for free.
type NoteViewHandler struct {
	catalog  Catalog
	markdown goldmark.Markdown
	template *template.Template
}

type notePageData struct {
	Title   string
	Folder  string
	Account string
	Content template.HTML
}

// NewNoteViewHandler creates a new handler for rendered note pages.
func NewNoteViewHandler(c Catalog) *NoteViewHandler {
	tmpl := template.Must(template.New("note").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 760px;
      line-height: 1.6;
    }
    header {
      margin-bottom: 1.5rem;
      border-bottom: 1px solid #ddd;
      padding-bottom: 1rem;
      color: #555;
    }
    h1 { margin-top: 0; }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <span>{{.Folder}} &middot; {{.Account}}</span>
  </header>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &NoteViewHandler{
		catalog: c,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		template: tmpl,
	}
}

// ServeHTTP handles GET /api/notes/{id}/view.
func (h *NoteViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := contextutil.Logger(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	note, ok := h.catalog.NoteByID(id)
	if !ok {
		http.Error(w, "note not found", http.StatusNotFound)
		return
	}

	var rendered bytes.Buffer
	content := ""
	if note.Content != nil {
		content = *note.Content
	}
	if err := h.markdown.Convert([]byte(content), &rendered); err != nil {
		logger.Error("markdown conversion failed", "id", id, "error", err)
		http.Error(w, "failed to render note", http.StatusInternalServerError)
		return
	}

	title := "Untitled"
	if note.Title != nil && *note.Title != "" {
		title = *note.Title
	}

	data := notePageData{
		Title:   title,
		Folder:  note.Folder.Name,
		Account: note.Account.Name,
		Content: template.HTML(rendered.String()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, data); err != nil {
		logger.Error("template execution failed", "id", id, "error", err)
	}
}
