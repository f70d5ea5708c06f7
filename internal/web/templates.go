package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/justestif/go-music-vibe-assistant/internal/history"
	"github.com/justestif/go-music-vibe-assistant/internal/mood"
	"github.com/justestif/go-music-vibe-assistant/internal/search"
)

// Templates manages HTML template rendering.
type Templates struct {
	templates map[string]*template.Template
	partials  map[string]*template.Template
	funcs     template.FuncMap
}

// NewTemplates creates a new template manager by loading templates from the given filesystem.
func NewTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{
		templates: make(map[string]*template.Template),
		partials:  make(map[string]*template.Template),
		funcs:     defaultFuncs(time.Now),
	}

	if err := t.load(templatesFS); err != nil {
		return nil, err
	}

	return t, nil
}

// Render renders a page template with the given data.
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.templates[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}

	// Execute the "base" template which includes the page content
	return tmpl.ExecuteTemplate(w, "base", data)
}

// RenderPartial renders a partial template (without base layout) with the given data.
func (t *Templates) RenderPartial(w io.Writer, partial string, data any) error {
	tmpl, ok := t.partials[partial]
	if !ok {
		return fmt.Errorf("partial %q not found", partial)
	}
	return tmpl.ExecuteTemplate(w, partial, data)
}

// load parses all templates from the filesystem.
func (t *Templates) load(templatesFS fs.FS) error {
	layouts, err := fs.Glob(templatesFS, "layouts/*.html")
	if err != nil {
		return fmt.Errorf("finding layouts: %w", err)
	}

	partials, err := fs.Glob(templatesFS, "partials/*.html")
	if err != nil {
		return fmt.Errorf("finding partials: %w", err)
	}

	pages, err := fs.Glob(templatesFS, "pages/*.html")
	if err != nil {
		return fmt.Errorf("finding pages: %w", err)
	}

	// Common files to include with every page
	commonFiles := append(layouts, partials...)

	for _, page := range pages {
		name := templateName(page)
		files := append([]string{page}, commonFiles...)

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}
		t.templates[name] = tmpl
	}

	// Partials are parsed together so they can include each other as
	// htmx fragments.
	for _, partial := range partials {
		name := templateName(partial)

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, partials...)
		if err != nil {
			return fmt.Errorf("parsing partial %s: %w", name, err)
		}
		t.partials[name] = tmpl
	}

	return nil
}

// templateName strips the directory and .html extension.
func templateName(path string) string {
	name := filepath.Base(path)
	return name[:len(name)-len(".html")]
}

// defaultFuncs returns the default template functions.
func defaultFuncs(now func() time.Time) template.FuncMap {
	return template.FuncMap{
		// timeAgo formats a timestamp relative to now ("5m ago").
		"timeAgo": func(t time.Time) string {
			return mood.TimeAgo(t, now())
		},

		// formatTime formats a time as "Jan 2, 2006 3:04 PM"
		"formatTime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 3:04 PM")
		},

		// truncate shortens s to n characters, adding "..." when cut.
		"truncate": mood.Truncate,

		// add adds two integers (for 1-based indexing in loops)
		"add": func(a, b int) int {
			return a + b
		},
	}
}

// PageData contains common data passed to all page templates.
type PageData struct {
	Title string
	Flash *FlashMessage
}

// FlashMessage represents a temporary notification message.
type FlashMessage struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// HomePageData contains data for the home page template and the
// workspace partial.
type HomePageData struct {
	PageData
	Input        string
	Current      *ResultData
	History      []HistoryItemData
	HistoryLimit int
	Spotify      SpotifyData
}

// ResultData contains a classification result prepared for display.
type ResultData struct {
	ID          string
	Summary     string
	Vibe        string
	RawInput    string
	CreatedAt   time.Time
	Suggestions []string
	Links       []search.Link
	Fallback    bool
}

// HistoryItemData contains a single history entry in templates.
type HistoryItemData struct {
	ID        string
	Summary   string
	Vibe      string
	RawInput  string
	CreatedAt time.Time
	Active    bool
}

// SpotifyData contains the demo Spotify panel state.
type SpotifyData struct {
	Connected bool
	Query     string
	OpenURL   string
}

func newResultData(r mood.Result) *ResultData {
	return &ResultData{
		ID:          r.ID,
		Summary:     r.Profile.Summary,
		Vibe:        r.Profile.Vibe,
		RawInput:    r.RawInput,
		CreatedAt:   r.CreatedAt,
		Suggestions: r.Profile.Suggestions,
		Links:       search.ForProfile(r.Profile),
		Fallback:    r.IsFallback(),
	}
}

func newHistoryData(store *history.Store, currentID string) []HistoryItemData {
	results := store.List()
	items := make([]HistoryItemData, len(results))
	for i, r := range results {
		items[i] = HistoryItemData{
			ID:        r.ID,
			Summary:   r.Profile.Summary,
			Vibe:      r.Profile.Vibe,
			RawInput:  r.RawInput,
			CreatedAt: r.CreatedAt,
			Active:    r.ID == currentID,
		}
	}
	return items
}
