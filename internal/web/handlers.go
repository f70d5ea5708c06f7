package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/justestif/go-music-vibe-assistant/internal/analyzer"
	"github.com/justestif/go-music-vibe-assistant/internal/mood"
	"github.com/justestif/go-music-vibe-assistant/internal/spotify"
)

const (
	pageTitle         = "Music Vibe Assistant"
	workspacePartial  = "workspace"
	historyPartial    = "history"
	maxMoodInputBytes = 1 << 20
)

// Notification texts.
const (
	msgEmptyInput     = "Tell us how you're feeling first."
	msgHistoryCleared = "Mood history cleared!"
	msgNotInHistory   = "That mood is no longer in your history."
	msgNotConnected   = "Connect Spotify first."
	msgInputTooLarge  = "That's a lot of feelings! Try a shorter description."
	msgInvalidForm    = "Something went wrong reading your mood. Please try again."
)

// Handlers contains HTTP handlers for the web application.
type Handlers struct {
	analyzer  *analyzer.Service
	sessions  *SessionStore
	templates *Templates
	logger    *zap.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(a *analyzer.Service, sessions *SessionStore, templates *Templates, logger *zap.Logger) *Handlers {
	return &Handlers{
		analyzer:  a,
		sessions:  sessions,
		templates: templates,
		logger:    logger,
	}
}

// Home handles the home page (GET /).
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	h.renderPage(w, session, "", http.StatusOK)
}

// Analyze runs the mood analysis on the submitted text (POST /analyze).
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxMoodInputBytes)
	if err := r.ParseForm(); err != nil {
		h.logger.Debug("parsing analyze form", zap.Error(err))
		status, msg := http.StatusBadRequest, msgInvalidForm
		if maxErr := new(http.MaxBytesError); errors.As(err, &maxErr) {
			status, msg = http.StatusRequestEntityTooLarge, msgInputTooLarge
		}
		session.SetFlash("error", msg)
		h.respond(w, r, session, "", status)
		return
	}
	input := r.PostForm.Get("mood")

	result, err := h.analyzer.Analyze(r.Context(), input)
	switch {
	case errors.Is(err, analyzer.ErrEmptyInput):
		session.SetFlash("error", msgEmptyInput)
		h.respond(w, r, session, input, http.StatusBadRequest)
		return
	case err != nil:
		// The client went away during the analysis delay.
		h.logger.Debug("analysis aborted", zap.Error(err))
		return
	}

	session.History.Append(result)
	session.SetCurrent(result)

	h.respond(w, r, session, "", http.StatusOK)
}

// History renders the history list (GET /history).
func (h *Handlers) History(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	data := h.pageData(session, "")
	h.renderPartial(w, historyPartial, data, http.StatusOK)
}

// ClearHistory empties the session's history (POST /history/clear).
func (h *Handlers) ClearHistory(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	session.History.Clear()
	session.SetFlash("success", msgHistoryCleared)

	h.respond(w, r, session, "", http.StatusOK)
}

// SelectHistory shows a past result again (POST /history/{id}/select).
func (h *Handlers) SelectHistory(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	result, found := session.History.SelectByID(chi.URLParam(r, "id"))
	if !found {
		session.SetFlash("error", msgNotInHistory)
		h.respond(w, r, session, "", http.StatusNotFound)
		return
	}

	session.SetCurrent(result)
	h.respond(w, r, session, "", http.StatusOK)
}

// SpotifyConnect simulates connecting a Spotify account (POST /spotify/connect).
func (h *Handlers) SpotifyConnect(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	notice, err := session.Spotify.Connect(r.Context())
	if err != nil {
		h.logger.Debug("spotify connect aborted", zap.Error(err))
		return
	}

	session.SetFlash("success", notice)
	h.respond(w, r, session, "", http.StatusOK)
}

// SpotifyDisconnect resets the demo Spotify panel (POST /spotify/disconnect).
func (h *Handlers) SpotifyDisconnect(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	session.Spotify.Disconnect()
	h.respond(w, r, session, "", http.StatusOK)
}

// SpotifyPlaylist handles the demo playlist button (POST /spotify/playlist).
func (h *Handlers) SpotifyPlaylist(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	notice, err := session.Spotify.CreatePlaylist()
	if errors.Is(err, spotify.ErrNotConnected) {
		session.SetFlash("warning", msgNotConnected)
		h.respond(w, r, session, "", http.StatusConflict)
		return
	}

	session.SetFlash("info", notice)
	h.respond(w, r, session, "", http.StatusOK)
}

// Health reports liveness (GET /healthz).
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// session returns the request's session, creating one if needed.
// On failure it writes an error response and returns false.
func (h *Handlers) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	session, err := h.sessions.GetOrCreate(w, r)
	if err != nil {
		h.logger.Error("creating session", zap.Error(err))
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return nil, false
	}
	return session, true
}

// respond writes the outcome of an action. htmx requests get the
// workspace fragment; plain form posts are redirected home on success
// (post/redirect/get) and get the full page on failure.
func (h *Handlers) respond(w http.ResponseWriter, r *http.Request, session *Session, input string, status int) {
	if isHTMX(r) {
		data := h.pageData(session, input)
		h.renderPartial(w, workspacePartial, data, status)
		return
	}

	if status == http.StatusOK {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.renderPage(w, session, input, status)
}

func (h *Handlers) renderPage(w http.ResponseWriter, session *Session, input string, status int) {
	data := h.pageData(session, input)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.templates.Render(w, "home", data); err != nil {
		h.logger.Error("rendering page", zap.Error(err))
	}
}

func (h *Handlers) renderPartial(w http.ResponseWriter, name string, data HomePageData, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.templates.RenderPartial(w, name, data); err != nil {
		h.logger.Error("rendering partial", zap.String("partial", name), zap.Error(err))
	}
}

// pageData assembles template data and consumes the pending flash.
func (h *Handlers) pageData(session *Session, input string) HomePageData {
	data := HomePageData{
		PageData: PageData{
			Title: pageTitle,
			Flash: session.PopFlash(),
		},
		Input:        input,
		HistoryLimit: session.History.Limit(),
		Spotify: SpotifyData{
			Connected: session.Spotify.Connected(),
		},
	}

	var currentID string
	if current, ok := session.Current(); ok {
		currentID = current.ID
		data.Current = newResultData(current)

		q := current.Profile.Query(mood.Spotify)
		data.Spotify.Query = q
		data.Spotify.OpenURL = session.Spotify.EmbedURL(q)
	}

	data.History = newHistoryData(session.History, currentID)
	return data
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
