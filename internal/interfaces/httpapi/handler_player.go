package httpapi

import (
	"net/http"

	"fpltransfer/internal/domain/player"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListPlayers serves the squad picker. An optional position query narrows the
// listing to one role ordered by recent form.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	position := player.Position(r.URL.Query().Get("position"))

	players, err := h.playerService.List(r.Context(), position)
	if err != nil {
		h.logger.Error("list players failed", "error", err)
		writeError(w, err)
		return
	}

	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, toPlayerDTO(p))
	}

	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.playerService.Status(r.Context())
	if err != nil {
		h.logger.Error("get status failed", "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, statusDTO{
		PlayerCount: status.PlayerCount,
		LastUpdated: formatTimestamp(status.LastUpdated),
	})
}
