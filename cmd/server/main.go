package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	httpadapter "gridcourier/internal/adapter/http"
	"gridcourier/internal/adapter/mapfile"
	metricsinmem "gridcourier/internal/adapter/metrics/inmemory"
	gormrepo "gridcourier/internal/adapter/repo/gorm"
	"gridcourier/internal/adapter/repo/memory"
	"gridcourier/internal/app/maps"
	"gridcourier/internal/app/plan"
	"gridcourier/internal/app/ports"
	"gridcourier/internal/app/replay"
	"gridcourier/internal/app/run"
	"gridcourier/internal/config"
	"gridcourier/internal/observability"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file found, using environment")
	}
	cfg, err := config.Load(viper.New(), os.Getenv("COURIER_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	observability.InitializeLogger(cfg.Logger)
	defer observability.Sync()
	logger := observability.GetLogger()

	repos, err := buildRepos(context.Background(), cfg.Database, logger)
	if err != nil {
		logger.Fatal("build repositories", zap.Error(err))
	}
	h := newHandler(repos, metricsinmem.NewRecorder(), logger)
	h.AllowOrigins = cfg.Server.AllowOrigins
	if cfg.Server.MapsDir != "" {
		imported, err := mapfile.Library{Root: cfg.Server.MapsDir}.Import(context.Background(), h.MapsUC, logger)
		if err != nil {
			logger.Fatal("import maps", zap.String("dir", cfg.Server.MapsDir), zap.Error(err))
		}
		logger.Info("maps imported", zap.Strings("names", imported))
	}

	s := server.Default(server.WithHostPorts(cfg.Server.Addr))
	h.RegisterRoutes(s)

	logger.Info("courier server listening", zap.String("addr", cfg.Server.Addr), zap.String("driver", cfg.Database.Driver))
	s.Spin()
}

type repositories struct {
	Tx     ports.TxManager
	Maps   ports.MapRepository
	Runs   ports.RunRepository
	Events ports.EventRepository
}

func buildRepos(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (repositories, error) {
	if cfg.Driver == config.DriverMemory {
		store := memory.NewStore()
		return repositories{
			Tx:     memory.NewTxManager(store),
			Maps:   memory.NewMapRepo(store),
			Runs:   memory.NewRunRepo(store),
			Events: memory.NewEventRepo(store),
		}, nil
	}

	db, err := gormrepo.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return repositories{}, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	if cfg.AutoMigrate {
		applied, err := gormrepo.Migrate(ctx, db, cfg.Driver, cfg.MigrationsDir)
		if err != nil {
			return repositories{}, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", zap.Strings("versions", applied))
	}
	return repositories{
		Tx:     gormrepo.NewTxManager(db),
		Maps:   gormrepo.NewMapRepo(db),
		Runs:   gormrepo.NewRunRepo(db),
		Events: gormrepo.NewEventRepo(db),
	}, nil
}

func newHandler(r repositories, recorder *metricsinmem.Recorder, logger *zap.Logger) httpadapter.Handler {
	mapsUC := maps.UseCase{Maps: r.Maps, Now: time.Now}
	return httpadapter.Handler{
		MapsUC: mapsUC,
		PlanUC: plan.UseCase{Maps: mapsUC, Logger: logger.Named("plan")},
		RunUC: run.UseCase{
			TxManager: r.Tx,
			Maps:      mapsUC,
			Runs:      r.Runs,
			Events:    r.Events,
			Metrics:   recorder,
			Logger:    logger.Named("run"),
			Now:       time.Now,
		},
		ReplayUC: replay.UseCase{Runs: r.Runs, Events: r.Events},
		KPI:      recorder,
	}
}
