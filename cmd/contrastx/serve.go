package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/browser"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/phyten/contrastx/internal/metrics"
	"github.com/phyten/contrastx/internal/web"
)

var openBrowser = browser.OpenURL

func (c *cli) serveCmd(args []string) error {
	f := newCommonFlags("serve", c.stderr, true)
	positional, err := f.parse(args)
	if err != nil {
		if err == errHelpShown {
			c.usage()
		}
		return err
	}
	layer, err := f.layer(positional)
	if err != nil {
		return err
	}
	s, err := c.loadSettings(f.configPath, layer)
	if err != nil {
		return err
	}

	logger := web.NewLogger(c.stderr, s.LogFormat)
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics()
	if err := m.Register(reg); err != nil {
		return err
	}
	srv := web.New(web.Config{
		Colours:  s.Colors,
		Preset:   s.Preset,
		Options:  s.PaletteOptions(),
		Logger:   logger,
		Metrics:  m,
		Gatherer: reg,
	})

	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	url := pageURL(ln.Addr())
	logger.Info("listening", slog.String("addr", ln.Addr().String()), slog.String("url", url))
	if s.Open {
		if err := openBrowser(url); err != nil {
			logger.Warn("could not open browser", slog.String("error", err.Error()))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serve(ctx, ln, srv.Handler())
}

// serve runs until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, ln net.Listener, h http.Handler) error {
	hs := &http.Server{Handler: h, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- hs.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// pageURL turns a listener address into something a browser can open;
// wildcard hosts become localhost.
func pageURL(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String() + "/"
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s/", net.JoinHostPort(host, port))
}
