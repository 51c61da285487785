package web

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dop251/goja"

	"github.com/phyten/contrastx/internal/palette"
)

// loadUI evaluates the embedded script without a DOM and returns its
// ContrastUI helpers.
func loadUI(t *testing.T) (*goja.Runtime, *goja.Object) {
	t.Helper()
	vm := goja.New()
	if _, err := vm.RunString(scriptJS); err != nil {
		t.Fatalf("evaluating ui.js: %v", err)
	}
	ui := vm.Get("ContrastUI")
	if ui == nil || goja.IsUndefined(ui) {
		t.Fatal("ContrastUI is not defined")
	}
	return vm, ui.ToObject(vm)
}

func callUI(t *testing.T, vm *goja.Runtime, ui *goja.Object, name string, args ...any) string {
	t.Helper()
	fn, ok := goja.AssertFunction(ui.Get(name))
	if !ok {
		t.Fatalf("ContrastUI.%s is not a function", name)
	}
	vals := make([]goja.Value, len(args))
	for i, a := range args {
		vals[i] = vm.ToValue(a)
	}
	out, err := fn(ui, vals...)
	if err != nil {
		t.Fatalf("ContrastUI.%s: %v", name, err)
	}
	return out.String()
}

func TestUIEscape(t *testing.T) {
	vm, ui := loadUI(t)
	got := callUI(t, vm, ui, "esc", `<img src=x onerror="alert(1)"> & 'q'`)
	want := "&lt;img src=x onerror=&quot;alert(1)&quot;&gt; &amp; &#39;q&#39;"
	if got != want {
		t.Fatalf("esc=%q want %q", got, want)
	}
	if got := callUI(t, vm, ui, "esc", goja.Undefined()); got != "" {
		t.Fatalf("esc(undefined)=%q", got)
	}
}

func TestUIRatioLabelAndQuery(t *testing.T) {
	vm, ui := loadUI(t)
	if got := callUI(t, vm, ui, "ratioLabel", 4.5); got != "4.50:1" {
		t.Fatalf("ratioLabel=%q", got)
	}
	got := callUI(t, vm, ui, "buildQuery", []string{"#6920b1", "", "navy"}, "4.5", true)
	if got != "c=%236920b1&c=&c=navy&threshold=4.5&suppress=1" {
		t.Fatalf("buildQuery=%q", got)
	}
	got = callUI(t, vm, ui, "buildQuery", []string{"a&b"}, "", false)
	if got != "c=a%26b&suppress=0" {
		t.Fatalf("buildQuery escaping=%q", got)
	}
}

func TestUIRenderGridFromReport(t *testing.T) {
	p, err := palette.New([]string{"#6920b1"})
	if err != nil {
		t.Fatalf("palette.New: %v", err)
	}
	raw, err := json.Marshal(palette.Analyze(p, palette.Options{Threshold: 4.4, Suppress: true}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	vm, _ := loadUI(t)
	if err := vm.Set("fixture", string(raw)); err != nil {
		t.Fatalf("set fixture: %v", err)
	}
	v, err := vm.RunString(`ContrastUI.renderGrid(JSON.parse(fixture).matrix)`)
	if err != nil {
		t.Fatalf("renderGrid: %v", err)
	}
	html := v.String()
	if got := strings.Count(html, `class="colour-block suppressed"`); got != 5 {
		t.Fatalf("suppressed blocks=%d want 5\n%s", got, html)
	}
	want := `<p id="block-13" class="colour-block" data-bg="#6920b1" data-fg="#ffffff">#6920b1<br>#ffffff<br>8.60:1</p>`
	if !strings.Contains(html, want) {
		t.Fatalf("renderGrid missing %q\n%s", want, html)
	}

	v, err = vm.RunString(`ContrastUI.renderTable(JSON.parse(fixture).rows)`)
	if err != nil {
		t.Fatalf("renderTable: %v", err)
	}
	row := v.String()
	for _, want := range []string{`<td class="hex">#6920b1</td>`, "<td>105</td><td>32</td><td>177</td>", "<td>0.072</td>", "<td>270</td><td>82</td><td>69</td>", "<td>69</td><td>41</td>"} {
		if !strings.Contains(row, want) {
			t.Fatalf("renderTable missing %q\n%s", want, row)
		}
	}
}

func TestUIRenderTableShowsInputSlot(t *testing.T) {
	p, err := palette.New([]string{"", "", "#6920b1"})
	if err != nil {
		t.Fatalf("palette.New: %v", err)
	}
	raw, err := json.Marshal(p.Rows())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	vm, _ := loadUI(t)
	if err := vm.Set("fixture", string(raw)); err != nil {
		t.Fatalf("set fixture: %v", err)
	}
	v, err := vm.RunString(`ContrastUI.renderTable(JSON.parse(fixture))`)
	if err != nil {
		t.Fatalf("renderTable: %v", err)
	}
	if row := v.String(); !strings.HasPrefix(row, `<tr><td class="slot">3</td><td class="swatch" data-bg="#6920b1">`) {
		t.Fatalf("renderTable should lead with the input slot:\n%s", row)
	}
}

func TestUIRenderErrorsEscapes(t *testing.T) {
	vm, _ := loadUI(t)
	v, err := vm.RunString(`ContrastUI.renderErrors({error: "invalid colours", entries: [{index: 2, input: "<b>x</b>", message: "unknown"}]})`)
	if err != nil {
		t.Fatalf("renderErrors: %v", err)
	}
	want := "<p>invalid colours</p><ul><li>#3 &lt;b&gt;x&lt;/b&gt;: unknown</li></ul>"
	if v.String() != want {
		t.Fatalf("renderErrors=%q want %q", v.String(), want)
	}
}
