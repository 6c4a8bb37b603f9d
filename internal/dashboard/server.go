package dashboard

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/KaramelBytes/surveyboard/internal/chart"
	"github.com/KaramelBytes/surveyboard/internal/survey"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	introGeneral     = "**Supports visual analysis of all questions with multiple chart types and interactive features**"
	introSpecialized = "**In-depth analysis focused on implementation frameworks, policy areas, and target groups**"
)

// Server renders the report pages.
type Server struct {
	opts      Options
	router    *chi.Mux
	templates *template.Template
	intro     map[string]template.HTML
}

// New parses the page templates and wires the routes.
func New(opts Options) (*Server, error) {
	funcMap := template.FuncMap{
		"plotly": plotlyJS,
		"lines":  chart.TitleLines,
	}
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	s := &Server{
		opts:      opts,
		router:    chi.NewRouter(),
		templates: tmpl,
		intro: map[string]template.HTML{
			"general":     renderMarkdown(introGeneral),
			"specialized": renderMarkdown(introSpecialized),
		},
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/general", http.StatusFound)
	})
	s.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Get("/general", s.handleGeneral)
	s.router.Get("/general/chart.{format}", s.handleGeneralChart)
	s.router.Get("/specialized", s.handleSpecialized)
	s.router.Get("/specialized/{group}.{format}", s.handleGroupChart)
}

// filter reads year/region from the query, falling back to the configured
// selection when a parameter is absent.
func (s *Server) filter(r *http.Request) survey.Filter {
	q := r.URL.Query()
	f := s.opts.Defaults
	if q.Has("year") {
		f.Year = q.Get("year")
	}
	if q.Has("region") {
		f.Region = q.Get("region")
	}
	if strings.TrimSpace(f.Year) == "" {
		f.Year = survey.All
	}
	if strings.TrimSpace(f.Region) == "" {
		f.Region = survey.All
	}
	return f
}

func (s *Server) generalQuery(r *http.Request) GeneralQuery {
	return GeneralQuery{
		Filter:   s.filter(r),
		Question: r.URL.Query().Get("q"),
		Chart:    r.URL.Query().Get("chart"),
	}
}

type generalPage struct {
	*GeneralView
	Intro template.HTML
}

type specializedPage struct {
	*SpecializedView
	Intro template.HTML
}

func (s *Server) handleGeneral(w http.ResponseWriter, r *http.Request) {
	v := BuildGeneral(s.opts, s.generalQuery(r))
	s.renderTemplate(w, "general.html", generalPage{GeneralView: v, Intro: s.intro["general"]})
}

func (s *Server) handleSpecialized(w http.ResponseWriter, r *http.Request) {
	v := BuildSpecialized(s.opts, s.filter(r))
	s.renderTemplate(w, "specialized.html", specializedPage{SpecializedView: v, Intro: s.intro["specialized"]})
}

func (s *Server) handleGeneralChart(w http.ResponseWriter, r *http.Request) {
	rend, ok := s.renderer(chi.URLParam(r, "format"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	v := BuildGeneral(s.opts, s.generalQuery(r))
	fig := v.Figure
	if fig == nil {
		fig = chart.NoData("No data available. Please check the data files.", v.Title)
	}
	s.renderFigure(w, rend, fig)
}

func (s *Server) handleGroupChart(w http.ResponseWriter, r *http.Request) {
	rend, ok := s.renderer(chi.URLParam(r, "format"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	g, ok := survey.GroupByID(chi.URLParam(r, "group"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	v := BuildSpecialized(s.opts, s.filter(r))
	gv, _ := v.Group(g.ID)
	s.renderFigure(w, rend, gv.Figure)
}

func (s *Server) renderer(format string) (chart.Renderer, bool) {
	switch strings.ToLower(format) {
	case "png":
		return chart.Snapshot{Width: s.opts.SnapshotWidth}, true
	case "json":
		return chart.PlotlyJSON{}, true
	}
	return nil, false
}

func (s *Server) renderFigure(w http.ResponseWriter, rend chart.Renderer, fig *chart.Figure) {
	var buf bytes.Buffer
	if err := rend.Render(&buf, fig); err != nil {
		slog.Error("render figure failed", "id", fig.ID, "content_type", rend.ContentType(), "err", err)
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", rend.ContentType())
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderTemplate(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("template failed", "template", name, "err", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func plotlyJS(f *chart.Figure) (template.JS, error) {
	if f == nil {
		return "null", nil
	}
	b, err := json.Marshal(f.Plotly())
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

func renderMarkdown(md string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(md), p, r))
}
