package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	cacheadapter "portfolio-builder/internal/adapter/cache"
	deployadapter "portfolio-builder/internal/adapter/deploy"
	httpadapter "portfolio-builder/internal/adapter/http"
	repo "portfolio-builder/internal/adapter/repository"
	"portfolio-builder/internal/config"
	"portfolio-builder/internal/infrastructure/migration"
	"portfolio-builder/internal/usecase"
	infra "portfolio-builder/pkg/infrastructure"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	if cfg.IsDev {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// infra setup; the editor keeps working without persistence
	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Warn("portfolios DB not available, running without persistence")
		pool = nil
	}
	if pool != nil {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			logrus.WithError(err).Fatal("migrations failed")
		}
	}

	siteCache, err := cacheadapter.New(cfg.RedisURL)
	if err != nil {
		logrus.WithError(err).Warn("site cache not available, generating on every export")
		siteCache = nil
	}

	portfolios := repo.NewPortfoliosRepo(pool)

	var exporter *usecase.Exporter
	if siteCache != nil {
		exporter = usecase.NewExporter(siteCache)
	} else {
		exporter = usecase.NewExporter(nil)
	}

	var deployer *usecase.Deployer
	if cfg.Deploy.Token != "" {
		client, err := deployadapter.NewClient(deployadapter.Config{
			BaseURL:    cfg.Deploy.BaseURL,
			Token:      cfg.Deploy.Token,
			TeamID:     cfg.Deploy.TeamID,
			Timeout:    cfg.Deploy.Timeout,
			RetryLimit: cfg.Deploy.RetryLimit,
		})
		if err != nil {
			logrus.WithError(err).Fatal("invalid deploy configuration")
		}
		deployer = usecase.NewDeployer(client, portfolios, exporter)
	} else {
		logrus.Info("no deploy token configured, deployment endpoints disabled")
	}

	snapshotter := infra.NewChromedpSnapshotter(cfg.ChromePath)

	app := fiber.New(fiber.Config{
		AppName:   "portfolio-builder",
		BodyLimit: 4 * 1024 * 1024,
	})

	h := httpadapter.NewHandler(portfolios, exporter, deployer, snapshotter)
	h.Register(app)

	logrus.WithField("port", cfg.Port).Info("server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server failed")
	}
}
