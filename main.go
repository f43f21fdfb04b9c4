package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/metrics"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/notify"
	"github.com/danielhkuo/quickly-vote/poll"
	"github.com/danielhkuo/quickly-vote/router"
)

func main() {
	var err error

	// Values from .env never override the real environment
	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	registry, err := poll.NewRegistry(cfg.OptionLabels)
	if err != nil {
		slog.Error("invalid option labels", "error", err)
		os.Exit(1)
	}

	m := metrics.New()

	engineCfg := poll.Config{
		Registry:      registry,
		MaxVotes:      cfg.MaxVotes,
		MaxPerOption:  cfg.MaxPerOption,
		Mode:          cfg.PollMode,
		InitialActive: cfg.PollActive,
		AdminKey:      cfg.AdminKey,
	}

	var hub *notify.Hub
	if cfg.LiveUpdates {
		hub = notify.NewHub(notify.DefaultBuffer)
		hub.OnChange = m.SetObservers
		engineCfg.Sink = hub
	}

	// Open the ballot ledger
	ledger, closeLedger, err := db.OpenLedger(cfg)
	if err != nil {
		slog.Error("ledger open failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer closeLedger()

	engine, err := poll.NewEngine(ledger, engineCfg)
	if err != nil {
		slog.Error("engine setup failed", "error", err)
		closeLedger()
		os.Exit(1)
	}

	slog.Info("Poll configured",
		"mode", engine.Mode(),
		"options", registry.Len(),
		"max_votes", engine.MaxVotes(),
		"max_per_option", engine.MaxPerOption(),
		"live", cfg.LiveUpdates,
	)

	// Create router
	mux := router.NewRouter(engine, hub, m, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		if hub != nil {
			// Ends open /live streams so Close does not wait on them
			hub.Close()
		}
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
