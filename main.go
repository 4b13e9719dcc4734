package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"restaurant-pos/config"
	"restaurant-pos/mq"
	"restaurant-pos/services"
	"restaurant-pos/store"
	"restaurant-pos/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// Check for migrate subcommand
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		runMigrate(cfg)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "store:", err)
		os.Exit(1)
	}
	defer closeStore()

	if err := store.EnsureDefaultMenu(ctx, st); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}

	var printer services.BillPrinter = services.TextPrinter{W: os.Stdout, Header: cfg.Bill.Header}
	if cfg.Receipt.AMQPURL != "" {
		pub, err := mq.NewReceiptPublisher(cfg.Receipt.AMQPURL, cfg.Receipt.Queue)
		if err != nil {
			fmt.Fprintln(os.Stderr, "receipt publisher:", err)
			os.Exit(1)
		}
		defer pub.Close()
		printer = pub
	}

	srv := web.NewServer(
		services.NewBilling(st),
		services.NewCheckout(st, printer),
		services.NewMenu(st),
		services.NewReports(st),
	)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Router()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	fmt.Println("POS listening on", cfg.HTTPAddr, "storage:", cfg.Storage)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintln(os.Stderr, "http:", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch strings.ToLower(cfg.Storage) {
	case "file":
		fs, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	case "postgres":
		pg, err := store.NewPGStore(ctx, cfg.DB.ConnString())
		if err != nil {
			return nil, nil, err
		}
		// Optional auto-migration for fresh databases. Set AUTO_MIGRATE=1
		// (or "true") to enable.
		if v := strings.TrimSpace(os.Getenv("AUTO_MIGRATE")); v == "1" || strings.EqualFold(v, "true") {
			if err := applyMigrations(ctx, pg, false); err != nil {
				pg.Close()
				return nil, nil, err
			}
		}
		return pg, pg.Close, nil
	case "memory":
		return store.NewMemory(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORAGE %q (want file, postgres or memory)", cfg.Storage)
	}
}

func runMigrate(cfg *config.Config) {
	ctx := context.Background()
	pg, err := store.NewPGStore(ctx, cfg.DB.ConnString())
	if err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer pg.Close()

	if err := applyMigrations(ctx, pg, true); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}
