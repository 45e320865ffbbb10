package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/status", handler.GetStatus)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/squad", handler.GetSquad)
	mux.HandleFunc("PUT /v1/squad", handler.SaveSquad)
	mux.HandleFunc("POST /v1/ingestion/refresh", handler.RefreshData)
	mux.HandleFunc("POST /v1/recommendations/transfer", handler.RecommendTransfer)
	mux.HandleFunc("POST /v1/recommendations/best", handler.RecommendBestTransfers)
}
