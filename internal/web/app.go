// Package web serves the browser page and its JSON API.
package web

import (
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phyten/contrastx/internal/metrics"
	"github.com/phyten/contrastx/internal/palette"
	"github.com/phyten/contrastx/internal/palette/opts"
)

const (
	stylesPath = "/assets/styles.css"
	scriptPath = "/assets/ui.js"

	contentSecurityPolicy = "default-src 'none'; style-src 'self'; script-src 'self'; img-src 'self'; connect-src 'self'; form-action 'self'; base-uri 'none'"
)

var (
	//go:embed templates/index.html
	indexHTML string
	indexOnce sync.Once
	indexTmpl *template.Template

	//go:embed assets/styles.css
	stylesCSS string

	//go:embed assets/ui.js
	scriptJS string
)

// Config carries the server-side defaults the page starts from. The page
// keeps its own colour state afterwards; the server never stores it.
type Config struct {
	Colours  []string
	Preset   string
	Options  palette.Options
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

type Server struct {
	cfg Config
}

func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewMetrics()
	}
	if cfg.Options.Threshold == 0 {
		cfg.Options = opts.Defaults()
	}
	return &Server{cfg: cfg}
}

// Register attaches the page, assets and API to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", s.indexHandler)
	mux.HandleFunc(stylesPath, stylesHandler)
	mux.HandleFunc(scriptPath, scriptHandler)
	mux.HandleFunc("/api/analyze", s.analyzeHandler)
	mux.HandleFunc("/api/convert", s.convertHandler)
	mux.HandleFunc("/api/presets", presetsHandler)
	mux.HandleFunc("/healthz", healthHandler)
	if s.cfg.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.cfg.Gatherer, promhttp.HandlerOpts{}))
	}
}

// Handler returns the full middleware-wrapped handler tree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	var h http.Handler = mux
	h = HTTPMetrics(s.cfg.Metrics)(h)
	h = Logging(s.cfg.Logger)(h)
	return RequestID(h)
}

type slot struct {
	Index int
	Value string
}

type indexData struct {
	StylesPath string
	ScriptPath string
	Slots      []slot
	Threshold  string
	Suppress   bool
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data := indexData{
		StylesPath: stylesPath,
		ScriptPath: scriptPath,
		Slots:      s.initialSlots(),
		Threshold:  strconv.FormatFloat(s.cfg.Options.Threshold, 'f', -1, 64),
		Suppress:   s.cfg.Options.Suppress,
	}
	tmpl := loadTemplate()
	setSecurityHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

// initialSlots fills the five inputs from the configured colours, or from
// the preset when none were given.
func (s *Server) initialSlots() []slot {
	values := s.cfg.Colours
	if len(values) == 0 {
		name := s.cfg.Preset
		if name == "" {
			name = palette.DefaultPreset
		}
		values, _ = palette.PresetColours(name)
	}
	slots := make([]slot, palette.MaxColours)
	for i := range slots {
		slots[i].Index = i + 1
		if i < len(values) {
			slots[i].Value = values[i]
		}
	}
	return slots
}

func setSecurityHeaders(w http.ResponseWriter) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Content-Security-Policy", contentSecurityPolicy)
}

func stylesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(stylesCSS))
}

func scriptHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(scriptJS))
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func loadTemplate() *template.Template {
	indexOnce.Do(func() {
		indexTmpl = template.Must(template.New("index").Parse(indexHTML))
	})
	return indexTmpl
}
