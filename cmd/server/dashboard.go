package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Simplici0/growthboard/internal/chart"
	"github.com/Simplici0/growthboard/internal/dashboard"
	"github.com/Simplici0/growthboard/internal/finance"
	"github.com/Simplici0/growthboard/internal/middleware"
	"github.com/Simplici0/growthboard/web"
)

const pageTitle = "Company Performance Dashboard"

type server struct {
	pages       map[string]*template.Template
	static      http.Handler
	chartConfig chart.Config
}

type boundsView struct {
	MinVolume       int
	MaxVolume       int
	MinPrice        float64
	MinVariableCost float64
	MinFixedCost    float64
}

type chartsView struct {
	Bar   template.HTML
	Pie   template.HTML
	Trend template.HTML
}

type dashboardViewData struct {
	PageTitle string
	Input     finance.Input
	Bounds    boundsView
	Metrics   []dashboard.Metric
	Charts    chartsView
}

func newServer() (*server, error) {
	pages := make(map[string]*template.Template)
	for _, page := range []string{"dashboard.html"} {
		t, err := template.ParseFS(web.Templates, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		pages[page] = t
	}

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, fmt.Errorf("open static assets: %w", err)
	}

	return &server{
		pages:       pages,
		static:      http.FileServer(http.FS(static)),
		chartConfig: chart.DefaultConfig(),
	}, nil
}

func (s *server) routes(logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(&logger))
	r.Use(chimw.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", s.static))
	r.Get("/", s.handleDashboard)
	r.Get("/api/dashboard", s.handleDashboardAPI)
	r.Get("/healthz", s.handleHealth)

	return r
}

// handleDashboard recomputes the whole dashboard for the submitted inputs.
func (s *server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	view := s.evaluate(r)
	charts := view.Render(s.chartConfig)

	s.renderTemplate(w, r, "dashboard.html", dashboardViewData{
		PageTitle: pageTitle,
		Input:     view.Input,
		Bounds: boundsView{
			MinVolume:       finance.MinVolume,
			MaxVolume:       finance.MaxVolume,
			MinPrice:        finance.MinPrice,
			MinVariableCost: finance.MinVariableCost,
			MinFixedCost:    finance.MinFixedCost,
		},
		Metrics: view.Metrics,
		// SVG is built from escaped text only.
		Charts: chartsView{
			Bar:   template.HTML(charts.Bar),
			Pie:   template.HTML(charts.Pie),
			Trend: template.HTML(charts.Trend),
		},
	})
}

func (s *server) handleDashboardAPI(w http.ResponseWriter, r *http.Request) {
	view := s.evaluate(r)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view.Payload()); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode dashboard")
	}
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *server) evaluate(r *http.Request) dashboard.View {
	view := dashboard.Evaluate(parseDashboardInput(r.URL.Query()))

	zerolog.Ctx(r.Context()).Debug().
		Int("volume", view.Input.Volume).
		Float64("price", view.Input.Price).
		Float64("variable_cost", view.Input.VariableCost).
		Float64("fixed_cost", view.Input.FixedCost).
		Float64("profit", view.Result.Profit).
		Msg("dashboard recomputed")

	return view
}

func (s *server) renderTemplate(w http.ResponseWriter, r *http.Request, page string, data any) {
	templates, ok := s.pages[page]
	if !ok {
		http.Error(w, "unknown page", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("page", page).Msg("failed to render template")
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
