package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"property-search/api"
	"property-search/catalogue"
	"property-search/config"
	"property-search/services"
	"property-search/storage"
	"property-search/utils"
)

const usage = `Usage:
  property-search [serve]                 run the HTTP API
  property-search search [-csv file] QUERY run one search, e.g. "propertyType=house&sort=price-low"
`

func main() {
	cfg := config.Load()
	logger, closeLogger := newLogger(cfg)
	defer closeLogger()

	cat, err := loadCatalogue(cfg, logger)
	if err != nil {
		logger.Error("Failed to load catalogue: %v", err)
		os.Exit(1)
	}
	search := services.NewSearchController(cat, logger)

	args := os.Args[1:]
	mode := "serve"
	if len(args) > 0 {
		mode, args = args[0], args[1:]
	}

	switch mode {
	case "serve":
		err = serve(cfg, search, logger)
	case "search":
		err = runSearch(cfg, search, logger, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) (*utils.Logger, func()) {
	lc := utils.LoggerConfig{Level: utils.ParseLevel(cfg.LogLevel)}
	if !cfg.FluentBitEnabled {
		return utils.NewLoggerWithConfig(lc), func() {}
	}

	client, err := utils.NewFluentClient(cfg.FluentBitHost, cfg.FluentBitPort, "property-search")
	if err != nil {
		logger := utils.NewLoggerWithConfig(lc)
		logger.Warn("[main] Fluent Bit unavailable, logging to stdout only: %v", err)
		return logger, func() {}
	}
	lc.Fluent = client
	return utils.NewLoggerWithConfig(lc), func() { client.Close() }
}

func loadCatalogue(cfg *config.Config, logger *utils.Logger) (*catalogue.Catalogue, error) {
	if cfg.CataloguePath == "" {
		cat := catalogue.Default()
		logger.Info("[main] Using the built-in catalogue (%d properties)", cat.Len())
		return cat, nil
	}
	cat, err := catalogue.LoadFile(cfg.CataloguePath)
	if err != nil {
		return nil, err
	}
	logger.Info("[main] Loaded %d properties from %s", cat.Len(), cfg.CataloguePath)
	return cat, nil
}

// openStore returns the configured selection store, or a MemoryStore when
// the durable backend cannot be reached.
func openStore(cfg *config.Config, logger *utils.Logger) (storage.KeyValueStore, func() error) {
	retry := &utils.RetryConfig{
		MaxAttempts: cfg.StorageMaxRetries,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    5 * time.Second,
		Logger:      logger,
	}

	switch cfg.StorageBackend {
	case config.BackendPostgres:
		store, err := storage.NewPostgresStore(cfg.DSN(), retry)
		if err == nil {
			logger.Info("[main] Selection state stored in PostgreSQL")
			return store, store.Close
		}
		logger.Error("[main] PostgreSQL unavailable, selection state kept in memory: %v", err)
	case config.BackendBrowser:
		store, err := storage.NewBrowserStore(cfg.BrowserOrigin, cfg.ChromeBin, retry, logger)
		if err == nil {
			logger.Info("[main] Selection state stored in browser localStorage at %s", cfg.BrowserOrigin)
			return store, store.Close
		}
		logger.Error("[main] Browser storage unavailable, selection state kept in memory: %v", err)
	case config.BackendMemory:
	default:
		logger.Warn("[main] Unknown STORAGE_BACKEND %q, using memory", cfg.StorageBackend)
	}
	return storage.NewMemoryStore(), func() error { return nil }
}

func serve(cfg *config.Config, search *services.SearchController, logger *utils.Logger) error {
	store, closeStore := openStore(cfg, logger)
	defer closeStore()

	sessions := services.NewSessionRegistry(store, logger)
	srv := api.NewServer(cfg.HTTPPort, api.NewHandler(search, sessions, logger), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

func runSearch(cfg *config.Config, search *services.SearchController, logger *utils.Logger, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	csvPath := fs.String("csv", cfg.CSVExportPath, "also write the matches to this CSV file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	values, err := url.ParseQuery(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parse query %q: %w", fs.Arg(0), err)
	}

	res := search.SearchQuery(values)
	search.Print(os.Stdout, res)

	if *csvPath == "" {
		return nil
	}
	w, err := storage.NewCSVWriter(*csvPath)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Write(res.Properties); err != nil {
		return err
	}
	logger.Info("[main] %s written to %s", services.ResultCountLabel(res.Count), *csvPath)
	return nil
}
