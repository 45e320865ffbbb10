package httpapi

import (
	"net/http"
)

// RefreshData runs a full ingestion pass against the upstream API and reports
// the outcome. The run is synchronous; the surface blocks until data is fresh.
func (h *Handler) RefreshData(w http.ResponseWriter, r *http.Request) {
	result, err := h.ingestionService.Run(r.Context())
	if err != nil {
		h.logger.Error("data refresh failed", "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, refreshResultDTO{
		PlayerCount:     result.PlayerCount,
		Gameweeks:       result.Gameweeks,
		FailedGameweeks: result.FailedGameweeks,
		Message:         "Data refreshed successfully.",
	})
}
