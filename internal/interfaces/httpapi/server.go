package httpapi

import (
	"net/http"

	"fpltransfer/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerDomainRoutes(mux, handler)

	return RequestLogging(logger, recoverPanic(logger, mux))
}
