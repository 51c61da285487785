package opts

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/palette"
)

const (
	minThreshold = 1
	maxThreshold = 21
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Defaults returns the shared baseline options for both CLI and Web inputs.
func Defaults() palette.Options {
	return palette.Options{
		Threshold: colorutil.DefaultThreshold,
		Suppress:  false,
	}
}

// ApplyWebQueryToOptions copies recognised values from the query string into the
// provided options. Validation happens separately via NormalizeAndValidate.
func ApplyWebQueryToOptions(def palette.Options, q url.Values) (palette.Options, error) {
	out := def

	if raw, ok := lastLiteralValue(q["threshold"]); ok {
		f, err := parseFloat(raw, "threshold")
		if err != nil {
			return out, err
		}
		out.Threshold = f
	}
	if raw, ok := lastLiteralValue(q["suppress"]); ok {
		v, err := ParseBool(raw, "suppress")
		if err != nil {
			return out, err
		}
		out.Suppress = v
	}
	return out, nil
}

// ColoursFromQuery returns the colour inputs and preset name carried by a
// request. Repeated c parameters keep their positions so blank slots stay
// blank; a single c may also hold a comma-separated list.
func ColoursFromQuery(q url.Values) (colours []string, preset string) {
	raw := q["c"]
	if len(raw) == 1 && strings.Contains(raw[0], ",") {
		colours = strings.Split(raw[0], ",")
	} else {
		colours = append(colours, raw...)
	}
	for i := range colours {
		colours[i] = strings.TrimSpace(colours[i])
	}
	if p, ok := lastLiteralValue(q["preset"]); ok {
		preset = p
	}
	return colours, preset
}

// NormalizeAndValidate ensures the options are canonical and within the allowed ranges.
func NormalizeAndValidate(o *palette.Options) error {
	if math.IsNaN(o.Threshold) || math.IsInf(o.Threshold, 0) {
		return fmt.Errorf("threshold must be a finite number")
	}
	if o.Threshold == 0 {
		o.Threshold = colorutil.DefaultThreshold
	}
	if o.Threshold < minThreshold || o.Threshold > maxThreshold {
		return fmt.Errorf("threshold must be between %d and %d", minThreshold, maxThreshold)
	}
	return nil
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// ParseThreshold parses a contrast threshold such as "4.5" or "4.5:1".
func ParseThreshold(raw, key string) (float64, error) {
	f, err := parseFloat(strings.TrimSuffix(strings.TrimSpace(raw), ":1"), key)
	if err != nil {
		return 0, err
	}
	if f < minThreshold || f > maxThreshold {
		return 0, fmt.Errorf("%s must be between %d and %d", key, minThreshold, maxThreshold)
	}
	return f, nil
}

// NormalizeOutput validates and lower-cases the CLI/Web output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "auto":
		return "auto", nil
	case "table", "grid", "tsv", "csv", "markdown", "json", "ndjson":
		return v, nil
	case "md":
		return "markdown", nil
	}
	return "", fmt.Errorf("invalid --output: %s", value)
}

// SplitMulti turns repeated query parameters (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}

func parseFloat(raw, key string) (float64, error) {
	v := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid number for %s: %q", key, raw)
	}
	return f, nil
}

func lastLiteralValue(vals []string) (string, bool) {
	flat := SplitMulti(vals)
	if len(flat) == 0 {
		return "", false
	}
	return flat[len(flat)-1], true
}
