package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/benson/poolbuilder/internal/domain"
	"github.com/benson/poolbuilder/internal/service"
)

type PoolHandler struct {
	poolService *service.PoolService
}

func NewPoolHandler(poolService *service.PoolService) *PoolHandler {
	return &PoolHandler{poolService: poolService}
}

// Daily serves today's snapshot, pre-generated when available, built on
// demand otherwise.
func (h *PoolHandler) Daily(w http.ResponseWriter, r *http.Request) {
	snap, err := h.poolService.Daily(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoEligibleSets) {
			log.Printf("ERROR [pool.Daily] no eligible sets")
			writeError(w, http.StatusInternalServerError, "no sets available for today")
			return
		}
		log.Printf("ERROR [pool.Daily]: %v", err)
		writeError(w, http.StatusBadGateway, "failed to build today's pool, try again")
		return
	}

	writeJSON(w, http.StatusOK, snap)
}
