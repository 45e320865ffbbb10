package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"fpltransfer/internal/domain/player"
	"fpltransfer/internal/usecase"
)

type transferRequest struct {
	PlayerOutID       int64 `json:"playerOutId" validate:"required,gt=0"`
	ExtraBudgetTenths int   `json:"extraBudgetTenths"`
}

type bestTransfersRequest struct {
	ExtraBudgetTenths int `json:"extraBudgetTenths"`
}

// RecommendTransfer ranks replacements for one squad player.
func (h *Handler) RecommendTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %s", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, fmt.Errorf("%w: %s", usecase.ErrInvalidInput, err))
		return
	}

	sq, err := h.squadService.CurrentSquad(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var (
		playerOut player.Player
		found     bool
	)
	for _, p := range sq.Players {
		if p.ID == req.PlayerOutID {
			playerOut, found = p, true
			break
		}
	}
	if !found {
		writeError(w, fmt.Errorf("%w: player %d is not in the squad", usecase.ErrInvalidInput, req.PlayerOutID))
		return
	}

	candidates, err := h.recommendationService.RecommendTransfers(r.Context(), sq, playerOut, req.ExtraBudgetTenths)
	if err != nil {
		h.logger.Error("recommend transfer failed", "error", err, "player_out", req.PlayerOutID)
		writeError(w, err)
		return
	}

	out := recommendationsDTO{Candidates: make([]candidateDTO, 0, len(candidates))}
	for _, c := range candidates {
		out.Candidates = append(out.Candidates, toCandidateDTO(c))
	}
	if len(out.Candidates) == 0 {
		out.Hint = relaxBudgetHint
	}

	writeSuccess(w, http.StatusOK, out)
}

// RecommendBestTransfers ranks the best single move per squad player.
func (h *Handler) RecommendBestTransfers(w http.ResponseWriter, r *http.Request) {
	var req bestTransfersRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %s", usecase.ErrInvalidInput, err))
		return
	}

	sq, err := h.squadService.CurrentSquad(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	moves, err := h.recommendationService.RecommendAllTransfers(r.Context(), sq, req.ExtraBudgetTenths)
	if err != nil {
		h.logger.Error("recommend best transfers failed", "error", err)
		writeError(w, err)
		return
	}

	out := movesDTO{Moves: make([]moveDTO, 0, len(moves))}
	for _, m := range moves {
		out.Moves = append(out.Moves, toMoveDTO(m))
	}
	if len(out.Moves) == 0 {
		out.Hint = relaxBudgetHint
	}

	writeSuccess(w, http.StatusOK, out)
}
