package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jroosing/dabmux-gui/internal/api"
	"github.com/jroosing/dabmux-gui/internal/config"
	"github.com/jroosing/dabmux-gui/internal/logging"
	"github.com/jroosing/dabmux-gui/internal/rc"
)

func main() {
	var (
		configPath    = flag.String("config", "", "Path to TOML configuration file (or set DABMUXGUI_CONFIG)")
		host          = flag.String("host", "", "Override API bind host")
		port          = flag.Int("port", 0, "Override API bind port")
		rcEndpoint    = flag.String("rc-endpoint", "", "Override mux RC endpoint")
		statsEndpoint = flag.String("stats-endpoint", "", "Override mux stats endpoint")
		staticDir     = flag.String("static", "", "Serve the web UI from this directory")
		jsonLogs      = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug         = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.API.Host = *host
	}
	if *port != 0 {
		cfg.API.Port = *port
	}
	if *rcEndpoint != "" {
		cfg.Mux.RCEndpoint = *rcEndpoint
	}
	if *statsEndpoint != "" {
		cfg.Mux.StatsEndpoint = *statsEndpoint
	}
	if *staticDir != "" {
		cfg.API.StaticDir = *staticDir
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Configure(logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	})
	logger.Info("dabmux-gui starting",
		"instance", cfg.Instance.Name,
		"rc_endpoint", cfg.Mux.RCEndpoint,
		"stats_endpoint", cfg.Mux.StatsEndpoint,
		"set_reply_format", cfg.Mux.SetReplyFormat.String(),
	)

	opts := cfg.RCOptions()
	opts.Logger = logger
	client := rc.New(opts)

	server := api.New(cfg, client, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
