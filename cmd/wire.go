package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/bnema/evaldash/internal/adapters/api"
	"github.com/bnema/evaldash/internal/adapters/cookies"
	"github.com/bnema/evaldash/internal/adapters/importer"
	recrender "github.com/bnema/evaldash/internal/adapters/render/recommendations"
	tomlrepo "github.com/bnema/evaldash/internal/adapters/repo/toml"
	"github.com/bnema/evaldash/internal/application"
	"github.com/bnema/evaldash/internal/config"
	"github.com/bnema/evaldash/internal/coordinator"
	"github.com/bnema/evaldash/internal/domain"
	"github.com/bnema/evaldash/internal/logger"
	"github.com/bnema/evaldash/internal/metrics"
	"github.com/bnema/evaldash/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg         config.Config
	logger      *zap.Logger
	registry    *prometheus.Registry
	service     *application.Service
	repo        *tomlrepo.Repository
	importer    *importer.Importer
	jar         *cookies.Jar
	itemsRender func([]domain.RecommendationItem) (string, error)
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	cfg, err := config.Load(v, homeDir)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire dashboard repository: %w", err)
	}

	jar := cookies.NewJar(cfg.CookiesPath)
	client := &api.Client{
		BaseURL:        cfg.API.BaseURL,
		CSRFCookie:     cfg.API.CSRFCookie,
		CSRFHeader:     cfg.API.CSRFHeader,
		Tokens:         jar,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.API.Timeout,
		Logger:         log.Named("api"),
	}

	return &app{
		cfg:         cfg,
		logger:      log,
		registry:    prometheus.NewRegistry(),
		service:     application.NewService(repo, client, ports.SystemClock{}),
		repo:        repo,
		importer:    importer.New(repo, log.Named("import")),
		jar:         jar,
		itemsRender: recrender.Render,
	}, nil
}

// newCoordinator builds a recommendations coordinator whose collectors are
// labelled with surface.
func (a *app) newCoordinator(surface string) *coordinator.Coordinator[[]domain.RecommendationItem] {
	opts := []coordinator.Option{
		coordinator.WithLogger(a.logger.Named("coordinator").With(zap.String("surface", surface))),
		coordinator.WithMetrics(metrics.NewCoordinatorCollectors(a.registry, surface)),
	}
	if a.cfg.CancelSuperseded {
		opts = append(opts, coordinator.WithCancelSuperseded())
	}

	return coordinator.New[[]domain.RecommendationItem](opts...)
}

// flush writes the metrics textfile when one is configured and syncs the logger.
func (a *app) flush() error {
	_ = a.logger.Sync()
	if a.cfg.MetricsTextfile == "" {
		return nil
	}

	return metrics.WriteTextfile(a.cfg.MetricsTextfile, a.registry)
}
