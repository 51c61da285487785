package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/palette"
	"github.com/phyten/contrastx/internal/palette/opts"
)

type entryError struct {
	Index   int    `json:"index"`
	Input   string `json:"input"`
	Message string `json:"message"`
}

type errorBody struct {
	Error   string       `json:"error"`
	Entries []entryError `json:"entries,omitempty"`
}

type presetBody struct {
	Name    string   `json:"name"`
	Colours []string `json:"colours"`
}

type presetsBody struct {
	Default string       `json:"default"`
	Presets []presetBody `json:"presets"`
}

func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	q := r.URL.Query()
	o, err := opts.ApplyWebQueryToOptions(s.cfg.Options, q)
	if err == nil {
		err = opts.NormalizeAndValidate(&o)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := s.paletteFromQuery(q)
	if err != nil {
		if !errors.Is(err, palette.ErrUnknownPreset) {
			s.cfg.Metrics.IncParseErrors(err)
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.cfg.Metrics.IncAnalyses(o.Suppress)
	writeJSON(w, http.StatusOK, palette.Analyze(p, o))
}

// paletteFromQuery builds the palette for a request. Any c parameter, even
// an empty one, means the slots are authoritative: blank slots are skipped
// and no preset fills them in.
func (s *Server) paletteFromQuery(q url.Values) (palette.Palette, error) {
	colours, preset := opts.ColoursFromQuery(q)
	if q.Has("c") {
		return palette.New(colours)
	}
	if preset != "" {
		return palette.Preset(preset)
	}
	return palette.Resolve(s.cfg.Colours, s.cfg.Preset)
}

func (s *Server) convertHandler(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	rgb, err := rgbFromQuery(r.URL.Query())
	if err != nil {
		s.cfg.Metrics.IncParseErrors(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.cfg.Metrics.IncConversions()
	writeJSON(w, http.StatusOK, colorutil.Check(rgb))
}

// rgbFromQuery reads c (hex or colour name) or the r, g and b channels.
// With none of them present the reference colour 105 32 177 is used.
func rgbFromQuery(q url.Values) (colorutil.RGB, error) {
	if c := strings.TrimSpace(q.Get("c")); c != "" {
		return colorutil.ParseColor(c)
	}
	keys := [3]string{"r", "g", "b"}
	present := 0
	for _, k := range keys {
		if q.Has(k) {
			present++
		}
	}
	if present == 0 {
		return colorutil.RGB{R: 105, G: 32, B: 177}, nil
	}
	var ch [3]int
	for i, k := range keys {
		n, err := opts.ParseIntInRange(q.Get(k), k, 0, 255)
		if err != nil {
			return colorutil.RGB{}, &colorutil.ParseError{Input: q.Get(k), Err: fmt.Errorf("%w: %v", colorutil.ErrChannelRange, err)}
		}
		ch[i] = n
	}
	return colorutil.NewRGB(ch[0], ch[1], ch[2])
}

func presetsHandler(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	body := presetsBody{Default: palette.DefaultPreset}
	for _, name := range palette.PresetNames() {
		colours, _ := palette.PresetColours(name)
		body.Presets = append(body.Presets, presetBody{Name: name, Colours: colours})
	}
	writeJSON(w, http.StatusOK, body)
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	return false
}

// writeError renders err as JSON. Palette entry failures are listed one per
// bad slot so the page can mark the offending inputs.
func writeError(w http.ResponseWriter, status int, err error) {
	body := errorBody{Error: err.Error()}
	var leaves []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		leaves = joined.Unwrap()
	} else {
		leaves = []error{err}
	}
	for _, leaf := range leaves {
		var ee *palette.EntryError
		if errors.As(leaf, &ee) {
			body.Entries = append(body.Entries, entryError{Index: ee.Index, Input: ee.Input, Message: ee.Err.Error()})
		}
	}
	if len(body.Entries) > 0 {
		body.Error = "invalid colours"
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
