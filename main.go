package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/clarity/cliparse"
	"github.com/danielhkuo/clarity/db"
	"github.com/danielhkuo/clarity/insights"
	"github.com/danielhkuo/clarity/metrics"
	"github.com/danielhkuo/clarity/middleware"
	"github.com/danielhkuo/clarity/questionbank"
	"github.com/danielhkuo/clarity/router"
	"github.com/danielhkuo/clarity/session"
	"github.com/danielhkuo/clarity/store"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

func run(cfg cliparse.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bank, err := questionbank.Load(cfg.QuestionBankPath)
	if err != nil {
		return err
	}
	slog.Info("Question bank ready", "questions", bank.Len())

	gen, err := insights.NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return err
	}
	client := insights.NewClient(gen, insights.WithTimeout(cfg.InsightTimeout))

	st, sqlStore, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Insight exchanges outlive the request that triggered them
	exchangeCtx, cancelExchanges := context.WithCancel(context.Background())
	defer cancelExchanges()

	mgr := session.NewManager(exchangeCtx, st, bank, client,
		session.WithMetrics(metrics.MustNewMetrics(reg)),
		session.WithOrphanAfter(exchangeBound(cfg)+session.OrphanGrace),
	)

	server := &http.Server{
		Handler:           middleware.CORS(router.NewRouter(mgr, cfg, reg)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Listening", "port", cfg.Port, "model", gen.Model())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), exchangeBound(cfg)+5*time.Second)
		defer cancel()
		err := server.Shutdown(shutdownCtx)

		// Let pending insight requests land, then abort the rest
		done := make(chan struct{})
		go func() {
			mgr.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-shutdownCtx.Done():
			cancelExchanges()
			<-done
		}
		return err
	})

	if sqlStore != nil {
		g.Go(func() error {
			return purgeLoop(gctx, sqlStore, janitorInterval(cfg.SessionTTL))
		})
	}

	return g.Wait()
}

// openStore picks the SQL store when a database URL is configured and the
// in-memory LRU otherwise.
func openStore(cfg cliparse.Config) (store.Store, *store.SQLStore, func(), error) {
	if cfg.DatabaseURL == "" {
		slog.Info("Using in-memory session store", "capacity", cfg.SessionCacheSize, "ttl", cfg.SessionTTL)
		return store.NewMemoryStore(cfg.SessionCacheSize, cfg.SessionTTL), nil, func() {}, nil
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		conn.Close()
		return nil, nil, nil, fmt.Errorf("schema creation failed: %w", err)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	sqlStore := store.NewSQLStore(conn, cfg.DatabaseType, cfg.SessionTTL)
	return sqlStore, sqlStore, func() { conn.Close() }, nil
}

func janitorInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return time.Hour
	}
	return max(ttl/4, time.Minute)
}

// purgeLoop removes expired sessions from the SQL store until ctx ends.
func purgeLoop(ctx context.Context, s *store.SQLStore, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := s.PurgeExpired(ctx)
			if err != nil {
				slog.Warn("session purge failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("expired sessions purged", "count", n)
			}
		}
	}
}

// exchangeBound is how long one insight exchange may take. With the timeout
// disabled the default is used for orphan recovery and shutdown.
func exchangeBound(cfg cliparse.Config) time.Duration {
	if cfg.InsightTimeout > 0 {
		return cfg.InsightTimeout
	}
	return insights.DefaultTimeout
}
