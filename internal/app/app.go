package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"fpltransfer/external/fplapi"
	"fpltransfer/internal/config"
	"fpltransfer/internal/infrastructure/repository/sqlite"
	"fpltransfer/internal/infrastructure/squadfile"
	"fpltransfer/internal/interfaces/httpapi"
	"fpltransfer/internal/platform/logging"
	"fpltransfer/internal/platform/resilience"
	"fpltransfer/internal/usecase"
)

// Services bundles the wired use cases plus the database handle that owns
// their storage. Callers close the database when done.
type Services struct {
	DB             *sqlx.DB
	Player         *usecase.PlayerService
	Squad          *usecase.SquadService
	Recommendation *usecase.RecommendationService
	Ingestion      *usecase.IngestionService
}

func (s *Services) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func NewServices(cfg config.Config, logger *logging.Logger) (*Services, error) {
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	playerRepo := sqlite.NewPlayerRepository(db)
	squadStore := squadfile.NewStore(cfg.SquadFilePath)
	statsClient := fplapi.NewClient(fplapi.ClientConfig{
		BaseURL:    cfg.FPLBaseURL,
		UserAgent:  cfg.FPLUserAgent,
		Timeout:    cfg.FPLTimeout,
		MaxRetries: cfg.FPLMaxRetries,
		CacheTTL:   cfg.FPLCacheTTL,
		Breaker:    resilience.DefaultCircuitBreakerConfig(),
		Logger:     logger,
	})

	return &Services{
		DB:             db,
		Player:         usecase.NewPlayerService(playerRepo, logger),
		Squad:          usecase.NewSquadService(playerRepo, squadStore, logger),
		Recommendation: usecase.NewRecommendationService(playerRepo, logger),
		Ingestion:      usecase.NewIngestionService(statsClient, playerRepo, logger),
	}, nil
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, *Services, error) {
	services, err := NewServices(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	handler := httpapi.NewHandler(
		services.Player,
		services.Squad,
		services.Recommendation,
		services.Ingestion,
		logger,
	)
	router := httpapi.NewRouter(handler, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		services.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, services, nil
}
