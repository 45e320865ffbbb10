package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"fpltransfer/internal/usecase"
)

type saveSquadRequest struct {
	PlayerIDs []int64 `json:"playerIds" validate:"required,len=15"`
}

func (h *Handler) GetSquad(w http.ResponseWriter, r *http.Request) {
	sq, err := h.squadService.Load(r.Context())
	if err != nil {
		h.logger.Error("load squad failed", "error", err)
		writeError(w, err)
		return
	}

	players := make([]playerDTO, 0, len(sq.Players))
	for _, p := range sq.Players {
		players = append(players, toPlayerDTO(p))
	}
	grouped := make(map[string][]int64, 4)
	for pos, ids := range sq.GroupIDs() {
		grouped[string(pos)] = ids
	}

	writeSuccess(w, http.StatusOK, squadDTO{
		Players:  players,
		Grouped:  grouped,
		Complete: sq.Complete() == nil,
	})
}

func (h *Handler) SaveSquad(w http.ResponseWriter, r *http.Request) {
	var req saveSquadRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %s", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, fmt.Errorf("%w: %s", usecase.ErrInvalidInput, err))
		return
	}

	sq, err := h.squadService.Save(r.Context(), req.PlayerIDs)
	if err != nil {
		h.logger.Error("save squad failed", "error", err)
		writeError(w, err)
		return
	}

	players := make([]playerDTO, 0, len(sq.Players))
	for _, p := range sq.Players {
		players = append(players, toPlayerDTO(p))
	}
	grouped := make(map[string][]int64, 4)
	for pos, ids := range sq.GroupIDs() {
		grouped[string(pos)] = ids
	}
	writeSuccess(w, http.StatusOK, squadDTO{
		Players:  players,
		Grouped:  grouped,
		Complete: true,
	})
}
