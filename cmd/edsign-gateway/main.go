package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/choria-io/fisk"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/davidahmann/edsign/internal/api"
	"github.com/davidahmann/edsign/internal/auth"
	"github.com/davidahmann/edsign/internal/config"
	"github.com/davidahmann/edsign/internal/crypto"
	"github.com/davidahmann/edsign/internal/logging"
	"github.com/davidahmann/edsign/internal/metrics"
)

func main() {
	if err := runFn(os.Args[1:], os.Getenv, listenAndServe, newServer); err != nil {
		fatalf("server error: %v", err)
	}
}

var runFn = run
var fatalf = logrus.Fatalf

type envFn func(string) string
type listenFn func(*http.Server) error
type serverFactory func(cfg config.Config, log *logrus.Logger) (*http.Server, error)

func newServer(cfg config.Config, log *logrus.Logger) (*http.Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	primitive, err := crypto.PrimitiveByName(cfg.Signing.Primitive)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	entry := log.WithField("component", "gateway")
	h := &api.Handler{
		Auth: auth.NewTokenAuthenticator(cfg.Auth.Token),
		Service: crypto.NewSigningService(
			crypto.WithPrimitive(primitive),
			crypto.WithLogger(entry),
			crypto.WithRecorder(m),
		),
		Log: entry,
	}

	opts := api.RouterOptions{Observer: m}
	if cfg.Metrics.Enabled {
		opts.MetricsPath = cfg.Metrics.Path
		opts.Gatherer = reg
	}

	return &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewRouter(h, opts),
		ReadHeaderTimeout: 5 * time.Second,
	}, nil
}

func run(args []string, getenv envFn, listen listenFn, factory serverFactory) error {
	app := fisk.New("edsign-gateway", "HTTP gateway for deterministic Ed25519 signing")
	configPath := app.Flag("config", "Path to the edsign config file").PlaceHolder("FILE").String()

	helped := false
	app.Terminate(func(code int) {
		helped = code == 0
	})
	if _, err := app.Parse(args); err != nil {
		return err
	}
	if helped {
		return nil
	}

	cfg := config.Default()
	if cfgFile := firstNonEmpty(*configPath, getenv("EDSIGN_CONFIG_PATH")); cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	cfg.ListenAddr = firstNonEmpty(getenv("EDSIGN_LISTEN_ADDR"), cfg.ListenAddr, ":8080")
	cfg.Auth.Token = firstNonEmpty(getenv("EDSIGN_TOKEN"), cfg.Auth.Token)

	log, logFile, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer logFile.Close()

	server, err := factory(cfg, log)
	if err != nil {
		return err
	}

	if cfg.Auth.Token == "" {
		log.Warn("no auth token configured, the gateway accepts unauthenticated requests")
	}
	log.Infof("edsign-gateway listening on %s", cfg.ListenAddr)
	if err := listen(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// listenAndServe serves until the listener fails or SIGINT/SIGTERM arrives.
func listenAndServe(server *http.Server) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
