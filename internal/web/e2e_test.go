//go:build e2e

package web

import (
	"context"
	"net/http/httptest"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
)

func TestページがブロックとプレビューをAPIから描画する(t *testing.T) {
	if !hasBrowser() {
		t.Skip("Chrome/Chromiumが見つからないためスキップします")
	}

	srv := httptest.NewServer(New(Config{Preset: "blue"}).Handler())
	t.Cleanup(srv.Close)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var blocks int
	var label, previewBG, previewFG string
	err := chromedp.Run(ctx,
		chromedp.Navigate(srv.URL),
		chromedp.WaitVisible(`#block-17`, chromedp.ByID),
		chromedp.Evaluate(`document.querySelectorAll('#grid .colour-block').length`, &blocks),
		chromedp.Text(`#block-17`, &label, chromedp.ByID),
		chromedp.Click(`#block-17`, chromedp.ByID),
		chromedp.Evaluate(`document.getElementById('text-display').style.backgroundColor`, &previewBG),
		chromedp.Evaluate(`document.getElementById('text-display').style.color`, &previewFG),
	)
	if err != nil {
		t.Fatalf("chromedpの操作に失敗しました: %v", err)
	}
	if blocks != 49 {
		t.Fatalf("ブロック数が期待値と異なります: %d", blocks)
	}
	if !strings.Contains(label, "#004fb0") || !strings.Contains(label, "7.65:1") {
		t.Fatalf("ブロックのラベルが期待値と異なります: %q", label)
	}
	if previewBG != "rgb(0, 79, 176)" || previewFG != "rgb(255, 255, 255)" {
		t.Fatalf("プレビューの色が期待値と異なります: bg=%q fg=%q", previewBG, previewFG)
	}
}

func Test不正な入力はエスケープされたエラーとして表示される(t *testing.T) {
	if !hasBrowser() {
		t.Skip("Chrome/Chromiumが見つからないためスキップします")
	}

	srv := httptest.NewServer(New(Config{}).Handler())
	t.Cleanup(srv.Close)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var errorsText string
	var nodeCount int
	var invalid bool
	err := chromedp.Run(ctx,
		chromedp.Navigate(srv.URL),
		chromedp.WaitVisible(`#block-11`, chromedp.ByID),
		chromedp.Focus(`#input-2`, chromedp.ByID),
		chromedp.SetValue(`#input-2`, `<img src=x onerror=alert(1)>`, chromedp.ByID),
		chromedp.Blur(`#input-2`, chromedp.ByID),
		chromedp.WaitVisible(`#errors li`, chromedp.ByQuery),
		chromedp.Text(`#errors`, &errorsText, chromedp.ByID),
		chromedp.Evaluate(`document.querySelectorAll('#errors img, #errors script').length`, &nodeCount),
		chromedp.Evaluate(`document.getElementById('input-2').classList.contains('invalid')`, &invalid),
	)
	if err != nil {
		t.Fatalf("chromedpの操作に失敗しました: %v", err)
	}
	if !strings.Contains(errorsText, "<img src=x onerror=alert(1)>") {
		t.Fatalf("エラー表示が期待値と異なります: %q", errorsText)
	}
	if nodeCount != 0 {
		t.Fatalf("危険なノードが挿入されています: %d", nodeCount)
	}
	if !invalid {
		t.Fatal("不正な入力欄にinvalidクラスが付与されていません")
	}
}

func hasBrowser() bool {
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}
