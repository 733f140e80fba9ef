// Package web serves the weather lookup page. Each browser session owns a
// view.Store; the page is rendered from its current snapshot.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"ulascansenturk/weather-lookup/internal/inmemorycache"
	"ulascansenturk/weather-lookup/internal/proxyclient"
	"ulascansenturk/weather-lookup/internal/tiles"
	"ulascansenturk/weather-lookup/internal/view"
	"ulascansenturk/weather-lookup/internal/weather"
)

const SessionCookie = "weather_session"

//go:embed templates/*.html
var templateFS embed.FS

type Options struct {
	TileAPIKey string
	SessionTTL time.Duration
	Location   *time.Location
	Logger     zerolog.Logger
}

type Server struct {
	client     proxyclient.WeatherClient
	sessions   inmemorycache.Cache[*view.Store]
	sessionTTL time.Duration
	tileAPIKey string
	location   *time.Location
	page       *template.Template
	router     chi.Router
}

func NewServer(client proxyclient.WeatherClient, sessions inmemorycache.Cache[*view.Store], opts Options) (*Server, error) {
	page, err := template.New("index.html").Funcs(template.FuncMap{
		"iconURL": weather.IconURL,
	}).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	location := opts.Location
	if location == nil {
		location = time.Local
	}

	s := &Server{
		client:     client,
		sessions:   sessions,
		sessionTTL: opts.SessionTTL,
		tileAPIKey: opts.TileAPIKey,
		location:   location,
		page:       page,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(hlog.NewHandler(opts.Logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Dur("duration", duration).
			Msg("request handled")
	}))

	r.Get("/", s.handleIndex)
	r.Post("/query", s.handleQuery)
	r.Post("/layer", s.handleLayer)
	r.Get("/state", s.handleState)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.router = r
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// session returns the caller's store, starting a new session when the cookie
// is missing or has expired.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *view.Store {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if store, ok := s.sessions.Get(cookie.Value); ok {
			return store
		}
	}

	id := uuid.NewString()
	store := view.NewStore(s.client, s.location)
	s.sessions.Set(id, store, s.sessionTTL)

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	hlog.FromRequest(r).Debug().Str("session", id).Msg("session started")

	return store
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	store := s.session(w, r)
	data := s.buildPage(store.Snapshot(), store.Location())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to render page")
	}
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	store := s.session(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if tz := strings.TrimSpace(r.PostForm.Get("tz")); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			store.SetLocation(loc)
		} else {
			hlog.FromRequest(r).Warn().Err(err).Str("tz", tz).Msg("ignoring unknown viewer time zone")
		}
	}

	state, err := store.Submit(r.Context(), r.PostForm.Get("city"))
	switch {
	case errors.Is(err, view.ErrEmptyQuery), errors.Is(err, view.ErrSuperseded):
		hlog.FromRequest(r).Debug().Err(err).Msg("query not applied")
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("query failed")
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, s.buildStateResponse(state))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLayer(w http.ResponseWriter, r *http.Request) {
	store := s.session(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	layer, err := tiles.ParseLayer(r.PostForm.Get("layer"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := store.SelectLayer(layer)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, s.buildStateResponse(state))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	store := s.session(w, r)
	writeJSON(w, http.StatusOK, s.buildStateResponse(store.Snapshot()))
}

type stateResponse struct {
	State view.State     `json:"state"`
	Map   *tiles.MapView `json:"map,omitempty"`
}

func (s *Server) buildStateResponse(state view.State) stateResponse {
	resp := stateResponse{State: state}
	if mapView, ok := state.Map(s.tileAPIKey); ok {
		resp.Map = &mapView
	}
	return resp
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
