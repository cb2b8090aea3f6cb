package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"jobhunt-reconciler/internal/catalogue"
	"jobhunt-reconciler/internal/config"
	"jobhunt-reconciler/internal/events"
	"jobhunt-reconciler/internal/httpapi"
	"jobhunt-reconciler/internal/metrics"
	"jobhunt-reconciler/internal/profile"
	"jobhunt-reconciler/internal/recommend"
	"jobhunt-reconciler/internal/store"
)

func main() {
	_ = godotenv.Load()

	// Data dir from JOBHUNT_DATA_DIR, else the working directory.
	dataDir := os.Getenv("JOBHUNT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	userCfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if cfg.App.DataDir == "" {
			cfg.App.DataDir = dataDir
		}
		return cfg, err
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("%s: %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	hist, err := store.OpenHistory(cfg.HistoryPath())
	if err != nil {
		log.Fatalf("history store: %v", err)
	}
	cat, err := catalogue.Load(cfg.CataloguePath())
	if err != nil {
		log.Fatalf("catalogue: %v", err)
	}
	prof, err := profile.Load(cfg.ProfilePath())
	if err != nil {
		log.Fatalf("profile: %v", err)
	}

	var sel *recommend.Selector
	if cfg.Recommend.Seed != 0 {
		sel = recommend.NewSeeded(cfg.Recommend.Seed)
		log.Printf("[recommend] seeded sampling seed=%d", cfg.Recommend.Seed)
	} else {
		sel = recommend.New(nil)
	}

	reg := prometheus.NewRegistry()
	hub := events.NewHub()

	mux := httpapi.NewMux(httpapi.Deps{
		History:        hist,
		Catalogue:      cat,
		Selector:       sel,
		Profile:        prof,
		Hub:            hub,
		Metrics:        metrics.NewCollector(reg),
		MetricsHandler: metrics.Handler(reg),
		CfgVal:         &cfgVal,
		UserCfgPath:    userCfgPath,
		LoadCfg:        loadCfg,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	token := os.Getenv("JOBHUNT_SHUTDOWN_TOKEN")
	if token == "" {
		if token, err = randomToken(16); err != nil {
			log.Fatal(err)
		}
		// A launcher process reads this line to learn the token.
		fmt.Printf("SHUTDOWN_TOKEN=%s\n", token)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(token, stop))

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (history=%s postings=%d leads=%d)",
		addr, hist.Path(), len(cat.Postings()), len(cat.Leads()))

	srv := &http.Server{
		Handler: httpapi.Chain(mux,
			httpapi.Cors,
			httpapi.RequestID,
			httpapi.AccessLog,
			httpapi.Recover,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Printf("engine shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("engine: %v", err)
	}
}
