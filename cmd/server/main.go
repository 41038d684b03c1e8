package main

import (
    "context"
    "errors"
    "net"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "golang.org/x/net/netutil"

    httpadapter "github.com/pm5/Disfactory/internal/adapters/http"
    pg "github.com/pm5/Disfactory/internal/adapters/postgres"
    "github.com/pm5/Disfactory/internal/config"
    "github.com/pm5/Disfactory/internal/logger"
    "github.com/pm5/Disfactory/internal/ports"
    "github.com/pm5/Disfactory/internal/regions"
    "github.com/pm5/Disfactory/internal/services/statistics"
)

func main() {
    if err := run(); err != nil {
        logger.FromContext(context.Background()).Error("server exited", logger.Error(err))
        os.Exit(1)
    }
}

func run() error {
    envErr := config.LoadEnvFiles()
    cfg, cfgErr := config.Load()

    log, err := logger.New(logger.Config{Level: cfg.LogLevel, Development: cfg.Development()})
    if err != nil {
        return err
    }
    defer func() { _ = log.Sync() }()
    if envErr != nil {
        log.Warn("env files", logger.Error(envErr))
    }
    if cfgErr != nil {
        log.Warn("config", logger.Error(cfgErr))
    }

    lookup, err := regions.Load(cfg.RegionsFile)
    if err != nil {
        return err
    }
    log.Info("regions loaded", logger.Int("cities", len(lookup.Cities())))

    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    db, err := pg.Connect(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
    if err != nil {
        return err
    }
    defer db.Close()

    if cfg.MigrateOnStart {
        if err := db.Migrate(ctx); err != nil {
            return err
        }
        log.Info("migrations applied")
    }

    var _ ports.StatsRepository = db
    svc := statistics.New(db, lookup,
        statistics.WithWorkers(cfg.StatsWorkers),
        statistics.WithLogger(log),
    )
    srv := httpadapter.New(svc, db, log)
    httpSrv := &http.Server{
        Handler:           srv.Routes(),
        ReadHeaderTimeout: 10 * time.Second,
    }

    ln, err := net.Listen("tcp", cfg.ListenAddr)
    if err != nil {
        return err
    }
    if cfg.MaxHTTPConns > 0 {
        ln = netutil.LimitListener(ln, cfg.MaxHTTPConns)
    }

    errCh := make(chan error, 1)
    go func() { errCh <- httpSrv.Serve(ln) }()
    log.Info("listening",
        logger.String("addr", cfg.ListenAddr),
        logger.Int("stats_workers", cfg.StatsWorkers),
        logger.Int("max_http_conns", cfg.MaxHTTPConns),
    )

    sigCh := make(chan os.Signal, 1)
    signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
    select {
    case sig := <-sigCh:
        log.Info("shutting down", logger.String("signal", sig.String()))
        shutdownCtx, done := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
        defer done()
        return httpSrv.Shutdown(shutdownCtx)
    case err := <-errCh:
        if errors.Is(err, http.ErrServerClosed) {
            return nil
        }
        return err
    }
}
