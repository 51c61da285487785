package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/palette"
)

type testCLI struct {
	*cli
	out *bytes.Buffer
	err *bytes.Buffer
}

func newTestCLI(t *testing.T, env map[string]string) testCLI {
	t.Helper()
	dir := t.TempDir()
	if env == nil {
		env = map[string]string{}
	}
	if _, ok := env["HOME"]; !ok {
		env["HOME"] = dir
	}
	var environ []string
	for k, v := range env {
		environ = append(environ, k+"="+v)
	}
	var out, errBuf bytes.Buffer
	return testCLI{
		cli: &cli{
			stdout:  &out,
			stderr:  &errBuf,
			environ: environ,
			getenv:  func(k string) string { return env[k] },
			getwd:   func() (string, error) { return dir, nil },
			logger:  log.New(&errBuf, "contrastx: ", 0),
		},
		out: &out,
		err: &errBuf,
	}
}

func (tc testCLI) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	if code := tc.run(args); code != exitOK {
		t.Fatalf("run(%q) exit=%d stderr=%s", args, code, tc.err.String())
	}
	return tc.out.String()
}

func TestConvertPrintsReferenceCheck(t *testing.T) {
	want := "RGB in:    105 32 177\nHSV / HSL: 270 82 69 | 270 69 41\nRGB out:   105 32 177\n"
	for _, args := range [][]string{{"convert"}, {"convert", "105", "32", "177"}, {"convert", "#6920B1"}} {
		tc := newTestCLI(t, nil)
		if got := tc.mustRun(t, args...); got != want {
			t.Fatalf("run(%q)=%q want %q", args, got, want)
		}
	}
}

func TestConvertJSON(t *testing.T) {
	tc := newTestCLI(t, nil)
	var conv colorutil.Conversion
	if err := json.Unmarshal([]byte(tc.mustRun(t, "convert", "-o", "json", "navy")), &conv); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if conv.In != (colorutil.RGB{R: 0, G: 0, B: 128}) || conv.Out != conv.In {
		t.Fatalf("conversion=%+v", conv)
	}
}

func TestConvertRejectsBadInputWithExit2(t *testing.T) {
	cases := [][]string{
		{"convert", "300", "0", "0"},
		{"convert", "1", "2"},
		{"convert", "x", "0", "0"},
		{"convert", "#12345"},
		{"convert", "-o", "yaml"},
	}
	for _, args := range cases {
		tc := newTestCLI(t, nil)
		if code := tc.run(args); code != exitUsage {
			t.Fatalf("run(%q) exit=%d want %d", args, code, exitUsage)
		}
		if !strings.HasPrefix(tc.err.String(), "contrastx: ") {
			t.Fatalf("run(%q) stderr=%q", args, tc.err.String())
		}
		if tc.out.Len() != 0 {
			t.Fatalf("run(%q) wrote stdout: %q", args, tc.out.String())
		}
	}
}

func TestGridPlain(t *testing.T) {
	tc := newTestCLI(t, nil)
	got := tc.mustRun(t, "grid", "-c", "#6920b1")
	if !strings.HasPrefix(got, `bg \ fg   #6920b1  #000000  #ffffff`) {
		t.Fatalf("grid=%q", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatal("non-tty output should not carry escapes")
	}
}

func TestDefaultCommandIsGrid(t *testing.T) {
	tc := newTestCLI(t, nil)
	got := tc.mustRun(t, "#6920b1", "--suppress", "-o", "csv")
	if !strings.HasPrefix(got, "bg,fg,bg_hex,fg_hex") {
		t.Fatalf("csv=%q", got)
	}
	if !strings.Contains(got, "0,1,#6920b1,#000000,2.44,fail,false,true,below-threshold\r\n") {
		t.Fatalf("suppressed cell missing: %q", got)
	}

	tc = newTestCLI(t, nil)
	if got := tc.mustRun(t); !strings.Contains(got, "#004fb0") {
		t.Fatalf("no-arg run should use the blue preset: %q", got)
	}
}

func TestGridForcedColour(t *testing.T) {
	tc := newTestCLI(t, map[string]string{"COLORTERM": "truecolor"})
	got := tc.mustRun(t, "grid", "--color", "always", "-c", "#6920b1")
	if !strings.Contains(got, "\x1b[38;2;255;255;255;48;2;105;32;177m") {
		t.Fatalf("expected truecolor swatches: %q", got)
	}
}

func TestTableReportsEveryBadColour(t *testing.T) {
	tc := newTestCLI(t, nil)
	if code := tc.run([]string{"table", "#zzzzzz", "navy", "nope"}); code != exitUsage {
		t.Fatalf("exit=%d want %d", code, exitUsage)
	}
	lines := strings.Split(strings.TrimSpace(tc.err.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one line per bad colour, got %q", lines)
	}
	if !strings.Contains(lines[0], "colour 1") || !strings.Contains(lines[1], "colour 3") {
		t.Fatalf("stderr=%q", lines)
	}
}

func TestTooManyColoursExit2(t *testing.T) {
	tc := newTestCLI(t, nil)
	if code := tc.run([]string{"table", "-c", "#000001,#000002,#000003,#000004,#000005,#000006"}); code != exitUsage {
		t.Fatalf("exit=%d", code)
	}
}

func TestEnvironmentLayer(t *testing.T) {
	tc := newTestCLI(t, map[string]string{"CONTRASTX_PRESET": "purple", "CONTRASTX_OUTPUT": "tsv"})
	got := tc.mustRun(t, "table")
	lines := strings.Split(got, "\n")
	if !strings.HasPrefix(lines[1], "0\t0\t#2020b0\t#2020b0") {
		t.Fatalf("env preset not applied: %q", lines[1])
	}

	tc = newTestCLI(t, map[string]string{"CONTRASTX_THRESHOLD": "high"})
	if code := tc.run([]string{"grid"}); code != exitUsage {
		t.Fatalf("bad env threshold exit=%d", code)
	}
}

func TestConfigFileLayerAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contrastx.yaml")
	yaml := "palette:\n  colours: [\"#6920b1\"]\n  threshold: 7\n  suppress: true\nui:\n  output: json\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	tc := newTestCLI(t, nil)
	var rep palette.Report
	if err := json.Unmarshal([]byte(tc.mustRun(t, "grid", "--config", path)), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.Threshold != 7 || !rep.Suppress || len(rep.Rows) != 1 {
		t.Fatalf("file layer not applied: threshold=%v suppress=%v rows=%d", rep.Threshold, rep.Suppress, len(rep.Rows))
	}

	tc = newTestCLI(t, map[string]string{"CONTRASTX_CONFIG": path, "CONTRASTX_THRESHOLD": "4.5"})
	rep = palette.Report{}
	if err := json.Unmarshal([]byte(tc.mustRun(t, "grid", "-t", "3:1")), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.Threshold != 3 {
		t.Fatalf("flag should win over env and file: %v", rep.Threshold)
	}
}

func TestPresetFlagOverridesConfigColours(t *testing.T) {
	tc := newTestCLI(t, nil)
	dir, _ := tc.getwd()
	if err := os.WriteFile(filepath.Join(dir, ".contrastx.yaml"), []byte("colors: [\"#6920b1\"]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	got := tc.mustRun(t, "table", "--preset", "purple", "-o", "tsv")
	if strings.Contains(got, "#6920b1") || !strings.Contains(got, "#2020b0") || !strings.Contains(got, "#b02020") {
		t.Fatalf("--preset should override config colours: %q", got)
	}

	tc = newTestCLI(t, map[string]string{"CONTRASTX_COLORS": "#6920b1"})
	got = tc.mustRun(t, "table", "-p", "blue", "-o", "tsv")
	if strings.Contains(got, "#6920b1") || !strings.Contains(got, "#004fb0") {
		t.Fatalf("-p should override CONTRASTX_COLORS: %q", got)
	}

	tc = newTestCLI(t, map[string]string{"CONTRASTX_COLORS": "#6920b1"})
	got = tc.mustRun(t, "table", "-p", "blue", "-c", "navy", "-o", "tsv")
	if !strings.Contains(got, "#000080") || strings.Contains(got, "#004fb0") {
		t.Fatalf("-c should win over -p in the same layer: %q", got)
	}
}

func TestConfigDiscoveredFromWorkingDirectory(t *testing.T) {
	tc := newTestCLI(t, nil)
	dir, _ := tc.getwd()
	if err := os.WriteFile(filepath.Join(dir, ".contrastx.toml"), []byte("preset = \"purple\"\noutput = \"tsv\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if got := tc.mustRun(t, "table"); !strings.Contains(got, "#6820b0") {
		t.Fatalf("toml config not discovered: %q", got)
	}
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"grid", "--threshold", "0.5"},
		{"grid", "--bogus"},
		{"grid", "-o", "yaml"},
		{"grid", "--color", "sometimes"},
		{"grid", "--preset", "neon"},
		{"serve", "--log-format", "xml"},
	} {
		tc := newTestCLI(t, nil)
		if code := tc.run(args); code != exitUsage {
			t.Fatalf("run(%q) exit=%d want %d (stderr=%s)", args, code, exitUsage, tc.err.String())
		}
	}
}

func TestHelpAndPresets(t *testing.T) {
	tc := newTestCLI(t, nil)
	if got := tc.mustRun(t, "help"); !strings.Contains(got, "Usage:") {
		t.Fatalf("help=%q", got)
	}
	tc = newTestCLI(t, nil)
	if got := tc.mustRun(t, "table", "-h"); !strings.Contains(got, "contrastx table") {
		t.Fatalf("-h=%q", got)
	}
	tc = newTestCLI(t, nil)
	want := "* blue    #004fb0 #002d63 #197ffc #634000 #b07200\n  purple  #2020b0 #6820b0 #b020b0 #b02068 #b02020\n"
	if got := tc.mustRun(t, "presets"); got != want {
		t.Fatalf("presets=%q want %q", got, want)
	}
}

func TestPageURL(t *testing.T) {
	cases := map[string]string{
		"[::]:8080":      "http://localhost:8080/",
		"0.0.0.0:9000":   "http://localhost:9000/",
		"127.0.0.1:8080": "http://127.0.0.1:8080/",
	}
	for in, want := range cases {
		addr, err := net.ResolveTCPAddr("tcp", in)
		if err != nil {
			t.Fatalf("resolve %s: %v", in, err)
		}
		if got := pageURL(addr); got != want {
			t.Fatalf("pageURL(%s)=%q want %q", in, got, want)
		}
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, ln, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}))
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "ok" {
		t.Fatalf("body=%q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}
