package httpapi

import (
	"github.com/go-playground/validator/v10"

	"fpltransfer/internal/platform/logging"
	"fpltransfer/internal/usecase"
)

type Handler struct {
	playerService         *usecase.PlayerService
	squadService          *usecase.SquadService
	recommendationService *usecase.RecommendationService
	ingestionService      *usecase.IngestionService
	logger                *logging.Logger
	validator             *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	squadService *usecase.SquadService,
	recommendationService *usecase.RecommendationService,
	ingestionService *usecase.IngestionService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:         playerService,
		squadService:          squadService,
		recommendationService: recommendationService,
		ingestionService:      ingestionService,
		logger:                logger,
		validator:             validator.New(),
	}
}
